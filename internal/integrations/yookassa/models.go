package yookassa

// Amount денежная сумма в формате ЮKassa: строковое значение с двумя знаками
type Amount struct {
	Value    string `json:"value"`    // "7200.00"
	Currency string `json:"currency"` // "RUB"
}

// Confirmation параметры подтверждения платежа пользователем
type Confirmation struct {
	Type            string `json:"type"` // "redirect"
	ReturnURL       string `json:"return_url,omitempty"`
	ConfirmationURL string `json:"confirmation_url,omitempty"` // только в ответе
}

// ReceiptCustomer контакт покупателя для фискального чека
// Должен быть указан email или телефон
type ReceiptCustomer struct {
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// ReceiptItem позиция фискального чека
type ReceiptItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity"` // "1.00"
	Amount      Amount `json:"amount"`
	VatCode     int    `json:"vat_code"`
}

// Receipt фискальный чек (54-ФЗ)
type Receipt struct {
	Customer ReceiptCustomer `json:"customer"`
	Items    []ReceiptItem   `json:"items"`
}

// CreatePaymentRequest запрос создания платежа
type CreatePaymentRequest struct {
	Amount       Amount            `json:"amount"`
	Capture      bool              `json:"capture"`
	Confirmation Confirmation      `json:"confirmation"`
	Description  string            `json:"description,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	Receipt      *Receipt          `json:"receipt,omitempty"`
}

// Payment платеж ЮKassa
type Payment struct {
	ID           string            `json:"id"`
	Status       string            `json:"status"` // pending | waiting_for_capture | succeeded | canceled
	Paid         bool              `json:"paid"`
	Amount       Amount            `json:"amount"`
	Confirmation *Confirmation     `json:"confirmation,omitempty"`
	Metadata     map[string]string `json:"metadata,omitempty"`
	CreatedAt    string            `json:"created_at"`
}

// errorResponse тело ошибки API ЮKassa
type errorResponse struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	Parameter   string `json:"parameter"`
}
