package calculator

import (
	"fmt"
	"math"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// CalculateVolatility is the population standard deviation of the
// daily returns, i.e. returns are centered on their own mean
func CalculateVolatility(closes []decimal.Decimal) (float64, error) {
	returns, err := rawReturns(closes)
	if err != nil {
		return 0, err
	}

	stdev, err := stats.StandardDeviationPopulation(returns)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate stdev of returns: %w", err)
	}

	return round(stdev, volatilityPrecision), nil
}

// CalculateRMSVolatility is the root mean square of the raw daily
// returns. it assumes a zero mean return, so a steady trend shows
// up as volatility. this is the number risk scoring is based on
func CalculateRMSVolatility(closes []decimal.Decimal) (float64, error) {
	returns, err := rawReturns(closes)
	if err != nil {
		return 0, err
	}

	squared := make([]float64, len(returns))
	for i, r := range returns {
		squared[i] = r * r
	}

	meanSquare, err := stats.Mean(squared)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate mean square of returns: %w", err)
	}

	return round(math.Sqrt(meanSquare), volatilityPrecision), nil
}
