package calculator

import (
	"fmt"
	"insightengine/internal/domain"

	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

const minForecastPoints = 5

// PredictNextClose fits a least squares line through (index, close)
// and evaluates it one index past the end of the series. the index is
// the position in the series, not the calendar date, so gaps like
// weekends don't change the fit
func PredictNextClose(closes []decimal.Decimal) (*domain.TrendForecast, error) {
	if len(closes) < minForecastPoints {
		return nil, fmt.Errorf("need at least %d prices to forecast, got %d: %w", minForecastPoints, len(closes), domain.ErrInsufficientData)
	}

	xs := make(stats.Float64Data, len(closes))
	ys := make(stats.Float64Data, len(closes))
	for i, c := range closes {
		xs[i] = float64(i)
		ys[i] = c.InexactFloat64()
	}

	covariance, err := stats.CovariancePopulation(xs, ys)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate covariance: %w", err)
	}
	variance, err := stats.PopulationVariance(xs)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate variance: %w", err)
	}
	meanX, err := stats.Mean(xs)
	if err != nil {
		return nil, err
	}
	meanY, err := stats.Mean(ys)
	if err != nil {
		return nil, err
	}

	slope := covariance / variance
	intercept := meanY - slope*meanX

	return &domain.TrendForecast{
		Slope:              slope,
		Intercept:          intercept,
		PredictedNextClose: round(intercept+slope*float64(len(closes)), forecastPrecision),
	}, nil
}
