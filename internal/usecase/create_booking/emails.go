package create_booking

import (
	"fmt"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
)

// buildCreatedEmail собирает письмо о созданном бронировании
func buildCreatedEmail(booking *domain.Booking, room *domain.Room) (subject, body string) {
	subject = "Подтверждение бронирования"
	body = fmt.Sprintf(`
		<h2>Бронирование успешно создано!</h2>
		<p>Уважаемый(ая) %s,</p>
		<p>Ваше бронирование номера «%s» было успешно создано.</p>
		<p>Номер бронирования: <strong>%s</strong></p>
		<p>Даты проживания: с %s по %s</p>
		<p>Общая стоимость: %.2f ₽</p>
		<p>Для завершения бронирования, пожалуйста, оплатите его по ссылке из формы оплаты.</p>
		<p>С уважением,<br>Команда «Лесной дворик»</p>
	`,
		booking.GuestName,
		room.Title,
		booking.BookingNumber,
		booking.CheckIn.Format(domain.DateFormat),
		booking.CheckOut.Format(domain.DateFormat),
		booking.TotalCost,
	)
	return subject, body
}
