package calculator

import (
	"insightengine/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPredictNextClose(t *testing.T) {
	t.Run("perfect line", func(t *testing.T) {
		out, err := PredictNextClose(decimals(10, 11, 12, 13, 14))
		require.NoError(t, err)

		require.Equal(t, 1.0, out.Slope)
		require.Equal(t, 10.0, out.Intercept)
		require.Equal(t, 15.0, out.PredictedNextClose)
	})

	t.Run("flat series", func(t *testing.T) {
		out, err := PredictNextClose(decimals(50, 50, 50, 50, 50, 50))
		require.NoError(t, err)
		require.Equal(t, 0.0, out.Slope)
		require.Equal(t, 50.0, out.PredictedNextClose)
	})

	t.Run("noisy series", func(t *testing.T) {
		// x mean 2, y mean 12; cov 2.2 / var 2 -> slope 1.1, intercept 9.8
		out, err := PredictNextClose(decimals(10, 10, 13, 13, 14))
		require.NoError(t, err)
		require.InDelta(t, 1.1, out.Slope, 1e-9)
		require.InDelta(t, 9.8, out.Intercept, 1e-9)
		require.Equal(t, 15.3, out.PredictedNextClose)
	})

	t.Run("rounds to four places", func(t *testing.T) {
		out, err := PredictNextClose(decimals(1, 1, 1, 1, 2, 2))
		require.NoError(t, err)
		predicted := out.PredictedNextClose
		require.Equal(t, predicted, round(predicted, 4))
	})

	t.Run("less than five prices", func(t *testing.T) {
		_, err := PredictNextClose(decimals(10, 11, 12, 13))
		require.ErrorIs(t, err, domain.ErrInsufficientData)
	})

	t.Run("same input gives same output", func(t *testing.T) {
		closes := decimals(101.3, 99.87, 102.45, 104.01, 103.22, 107.9)
		first, err := PredictNextClose(closes)
		require.NoError(t, err)
		second, err := PredictNextClose(closes)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}
