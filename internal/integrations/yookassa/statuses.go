package yookassa

// Статусы платежа ЮKassa
const (
	PaymentStatusPending           = "pending"
	PaymentStatusWaitingForCapture = "waiting_for_capture"
	PaymentStatusSucceeded         = "succeeded"
	PaymentStatusCanceled          = "canceled"
)

// NotificationTypeNotification единственный поддерживаемый тип webhook-уведомления
const NotificationTypeNotification = "notification"
