package booking

import (
	"koskita/internal/domain/kos"
)

type PriceCalculator interface {
	TotalPrice(monthly kos.MonthlyPrice, period StayPeriod) int64
}

// MonthlyRateCalculator prices a stay as monthly rate times whole months.
// Both sides are whole-rupiah integers, so there is no rounding.
type MonthlyRateCalculator struct{}

func NewMonthlyRateCalculator() *MonthlyRateCalculator {
	return &MonthlyRateCalculator{}
}

func (c *MonthlyRateCalculator) TotalPrice(monthly kos.MonthlyPrice, period StayPeriod) int64 {
	return monthly.Amount() * int64(period.Months())
}
