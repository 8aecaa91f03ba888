package create_booking

import (
	"fmt"
	"math"
	"time"
)

// stayQuote результат расчета стоимости проживания
type stayQuote struct {
	Nights    int
	TotalCost float64
}

// computeStay вычисляет количество ночей и итоговую стоимость проживания.
// Чистая функция без I/O.
//
// Ночи считаются как округление вверх разницы дат в целых сутках: заезд
// 2024-06-01 и выезд 2024-06-04 - это 3 ночи.
//
// Доплата за дополнительных гостей линейная: extraGuestSurcharge за ночь
// за каждого взрослого сверх первого. Дети на стоимость не влияют.
func computeStay(checkIn, checkOut time.Time, adults int, pricePerNight, extraGuestSurcharge float64) (*stayQuote, error) {
	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights <= 0 {
		return nil, ErrInvalidDateRange
	}

	if pricePerNight <= 0 {
		return nil, fmt.Errorf("%w: price per night must be positive", ErrRoomUnavailable)
	}

	total := float64(nights) * pricePerNight
	if adults > 1 {
		total += float64(nights) * extraGuestSurcharge * float64(adults-1)
	}

	return &stayQuote{
		Nights:    nights,
		TotalCost: total,
	}, nil
}
