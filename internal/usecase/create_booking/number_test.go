package create_booking

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBookingNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^BK-\d{6}$`)

	// Генератор случайный, проверяем форму на серии значений
	for i := 0; i < 100; i++ {
		number, err := generateBookingNumber()
		require.NoError(t, err)
		assert.Regexp(t, pattern, number)
	}
}
