package domain

// Room модель номера отеля
// Для бронирования номер является read-only зависимостью:
// сервис использует только цену за ночь и название
type Room struct {
	ID            string
	Title         string
	PricePerNight float64
	Capacity      int
	IsAvailable   bool
}
