package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// Mailer отправляет письма гостям через SMTP.
// Используется как best-effort коллаборатор: ошибки отправки логируются
// вызывающей стороной и не влияют на результат бизнес-операции.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New создает новый экземпляр отправителя писем
func New(host string, port int, username, password, from string) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(host, port, username, password),
		from:   from,
	}
}

// Send отправляет HTML письмо
func (m *Mailer) Send(to, subject, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("mailer: failed to send email to %s: %w", to, err)
	}

	return nil
}
