package create_booking

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/lesnoy-dvorik/booking-service/internal/domain"
)

var bookingNumberMax = big.NewInt(1_000_000)

// generateBookingNumber генерирует номер бронирования вида BK-XXXXXX.
// Глобальная уникальность обеспечивается не генератором, а уникальным
// индексом в БД: при коллизии создание повторяется с новым номером.
func generateBookingNumber() (string, error) {
	n, err := rand.Int(rand.Reader, bookingNumberMax)
	if err != nil {
		return "", fmt.Errorf("%w: failed to generate booking number: %v", ErrInternal, err)
	}
	return fmt.Sprintf("%s-%06d", domain.BookingNumberPrefix, n.Int64()), nil
}
