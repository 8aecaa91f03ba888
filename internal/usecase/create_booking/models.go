package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	RoomID   string    // ID номера отеля
	CheckIn  time.Time // Дата заезда
	CheckOut time.Time // Дата выезда (строго позже заезда)
	Adults   int       // Количество взрослых (>= 1)
	Children int       // Количество детей (>= 0)

	GuestName  string  // Имя гостя
	GuestEmail string  // Email гостя (для чека и уведомлений)
	GuestPhone string  // Телефон гостя
	Notes      *string // Пожелания (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID            int64  // Внутренний ID бронирования
	BookingNumber string // Человекочитаемый номер
	Status        string // Статус (waiting_for_payment)

	// ConfirmationURL адрес страницы оплаты ЮKassa для редиректа гостя
	ConfirmationURL string

	RoomTitle string  // Название номера
	TotalCost float64 // Итоговая стоимость проживания
	Nights    int     // Количество ночей
}
