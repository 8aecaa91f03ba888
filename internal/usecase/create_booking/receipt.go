package create_booking

import (
	"net/mail"
	"strconv"
	"strings"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
	"github.com/lesnoy-dvorik/booking-service/internal/integrations/yookassa"
)

// vatCodeNoVAT код "без НДС" для позиций чека
const vatCodeNoVAT = 1

// buildReceipt собирает фискальный чек для платежа.
// Контакт покупателя: приоритетно email, иначе нормализованный телефон.
// Если ни один контакт не пригоден - ErrReceiptDataMissing.
func buildReceipt(email, phone, description string, totalCost float64) (*yookassa.Receipt, error) {
	customer := yookassa.ReceiptCustomer{}

	if _, err := mail.ParseAddress(email); err == nil {
		customer.Email = email
	} else if normalized := normalizePhone(phone); normalized != "" {
		customer.Phone = normalized
	} else {
		return nil, ErrReceiptDataMissing
	}

	return &yookassa.Receipt{
		Customer: customer,
		Items: []yookassa.ReceiptItem{
			{
				Description: description,
				Quantity:    "1.00",
				Amount: yookassa.Amount{
					Value:    formatAmount(totalCost),
					Currency: domain.DefaultCurrency,
				},
				VatCode: vatCodeNoVAT,
			},
		},
	}, nil
}

// normalizePhone приводит телефон к формату ЮKassa (только цифры, код страны 7).
// Возвращает пустую строку, если из введенного не получается валидный номер.
func normalizePhone(raw string) string {
	var digits strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	phone := digits.String()

	// Российский номер, записанный через 8
	if len(phone) == 11 && phone[0] == '8' {
		phone = "7" + phone[1:]
	}

	if len(phone) < 10 || len(phone) > 15 {
		return ""
	}

	return phone
}

// formatAmount форматирует сумму в строку с двумя знаками после запятой
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
