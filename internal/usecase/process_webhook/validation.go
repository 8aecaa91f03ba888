package process_webhook

import (
	"fmt"

	"github.com/lesnoy-dvorik/booking-service/internal/integrations/yookassa"
)

// validateNotification проверяет форму конверта уведомления
func validateNotification(req *Request) error {
	if req.Type != yookassa.NotificationTypeNotification {
		return fmt.Errorf("%w: unexpected notification type %q", ErrInvalidNotification, req.Type)
	}

	if req.PaymentID == "" {
		return fmt.Errorf("%w: payment id is missing", ErrInvalidNotification)
	}

	if req.PaymentStatus == "" {
		return fmt.Errorf("%w: payment status is missing", ErrInvalidNotification)
	}

	return nil
}
