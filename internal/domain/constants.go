package domain

// Default configuration values
const (
	// DefaultExtraGuestSurcharge доплата за каждого дополнительного гостя
	// за ночь (₽), если не задана в конфигурации
	DefaultExtraGuestSurcharge = 1400.0

	// DefaultCurrency валюта платежей
	DefaultCurrency = "RUB"
)

// Business validation constants
const (
	MinAdults        = 1
	MaxAdults        = 10
	MaxChildren      = 10
	MaxNightsPerStay = 90
	MaxNotesLength   = 500

	// BookingNumberAttempts число попыток генерации номера бронирования
	// при коллизии по уникальному индексу
	BookingNumberAttempts = 5
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingNumberPrefix префикс человекочитаемого номера бронирования
const BookingNumberPrefix = "BK"
