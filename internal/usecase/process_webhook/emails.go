package process_webhook

import (
	"fmt"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
)

// buildPaidEmail собирает письмо об успешной оплате бронирования
func buildPaidEmail(booking *domain.Booking, roomTitle string) (subject, body string) {
	subject = "Оплата бронирования успешно завершена"
	body = fmt.Sprintf(`
		<h2>Оплата получена!</h2>
		<p>Уважаемый(ая) %s,</p>
		<p>Ваше бронирование номера «%s» успешно оплачено.</p>
		<p>Номер бронирования: <strong>%s</strong></p>
		<p>Даты проживания: с %s по %s</p>
		<p>Оплаченная сумма: %.2f ₽</p>
		<p>Ждем вас в отеле «Лесной дворик»!</p>
		<p>С уважением,<br>Команда «Лесной дворик»</p>
	`,
		booking.GuestName,
		roomTitle,
		booking.BookingNumber,
		booking.CheckIn.Format(domain.DateFormat),
		booking.CheckOut.Format(domain.DateFormat),
		booking.TotalCost,
	)
	return subject, body
}
