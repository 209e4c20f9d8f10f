package repository

import (
	"context"
	"fmt"
	"insightengine/internal/domain"
	"insightengine/internal/logger"
	"insightengine/internal/util"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// YahooRepository pulls daily OHLCV bars from the Yahoo chart API
type YahooRepository interface {
	GetDailyBars(ctx context.Context, symbol string, start, end time.Time) ([]domain.DailyBar, error)
}

type yahooRepositoryHandler struct{}

func NewYahooRepository() YahooRepository {
	return yahooRepositoryHandler{}
}

func (h yahooRepositoryHandler) GetDailyBars(ctx context.Context, symbol string, start, end time.Time) ([]domain.DailyBar, error) {
	log := logger.FromContext(ctx)

	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Symbol:   symbol,
		Interval: datetime.OneDay,
	}
	iter := chart.Get(params)

	out := []domain.DailyBar{}
	for iter.Next() {
		bar := iter.Bar()
		// yahoo sometimes returns an empty bar for the current session
		if bar.Close.IsZero() {
			log.Warnf("skipping empty bar for %s at %d", symbol, bar.Timestamp)
			continue
		}
		out = append(out, domain.DailyBar{
			Symbol: symbol,
			Date:   util.TruncateToDate(time.Unix(int64(bar.Timestamp), 0).UTC()),
			Open:   bar.Open,
			High:   bar.High,
			Low:    bar.Low,
			Close:  bar.Close,
			Volume: int64(bar.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get prices for %s: %w", symbol, err)
	}

	log.Infof("fetched %d daily bars for %s", len(out), symbol)

	return out, nil
}
