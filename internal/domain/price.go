package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceSeries is the chronologically ordered price history of
// one stock, split into the parallel slices the calculators use
type PriceSeries struct {
	StockID uuid.UUID
	Symbol  string
	Dates   []time.Time
	Closes  []decimal.Decimal
}

func (s PriceSeries) Len() int {
	return len(s.Closes)
}

// DailyBar is one day of OHLCV data from an external source,
// before it is attached to a registered stock
type DailyBar struct {
	Symbol string
	Date   time.Time
	Open   decimal.Decimal
	High   decimal.Decimal
	Low    decimal.Decimal
	Close  decimal.Decimal
	Volume int64
}
