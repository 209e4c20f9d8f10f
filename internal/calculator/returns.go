package calculator

import (
	"fmt"
	"insightengine/internal/domain"
	"time"

	"github.com/shopspring/decimal"
)

const (
	returnPrecision     = 6
	volatilityPrecision = 6
	forecastPrecision   = 4
)

// CalculateReturns converts an ordered close series into period-over-period
// fractional returns. each sample carries the date of the later close
func CalculateReturns(closes []decimal.Decimal, dates []time.Time) ([]domain.ReturnSample, error) {
	if len(closes) != len(dates) {
		return nil, fmt.Errorf("got %d close prices but %d dates", len(closes), len(dates))
	}

	returns, err := rawReturns(closes)
	if err != nil {
		return nil, err
	}

	out := make([]domain.ReturnSample, 0, len(returns))
	for i, r := range returns {
		out = append(out, domain.ReturnSample{
			Date:        dates[i+1],
			DailyReturn: round(r, returnPrecision),
		})
	}

	return out, nil
}

// rawReturns does the division in decimal and only converts at the
// end, so the float error doesn't compound across the series
func rawReturns(closes []decimal.Decimal) ([]float64, error) {
	if len(closes) < 2 {
		return nil, fmt.Errorf("cannot calculate returns on %d prices: %w", len(closes), domain.ErrInsufficientData)
	}

	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		prev := closes[i-1]
		if prev.IsZero() {
			return nil, fmt.Errorf("close price at position %d is zero: %w", i-1, domain.ErrDivisionByZero)
		}
		ret := closes[i].Sub(prev).Div(prev).InexactFloat64()
		returns = append(returns, ret)
	}

	return returns, nil
}

func round(f float64, places int32) float64 {
	return decimal.NewFromFloat(f).Round(places).InexactFloat64()
}
