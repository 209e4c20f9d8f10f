package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"insightengine/internal/db/models/postgres/public/model"
	"insightengine/internal/domain"
	"insightengine/internal/logger"
	"insightengine/internal/repository"
	"insightengine/internal/util"
	"io"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IngestService loads price history in bulk, either from a csv
// export or from Yahoo. every symbol must already be registered
type IngestService interface {
	ImportCsv(ctx context.Context, tx *sql.Tx, r io.Reader) (int, error)
	Backfill(ctx context.Context, tx *sql.Tx, symbol string, start, end time.Time) (int, error)
}

type ingestServiceHandler struct {
	StockRepository           repository.StockRepository
	HistoricalPriceRepository repository.HistoricalPriceRepository
	YahooRepository           repository.YahooRepository
}

func NewIngestService(
	stockRepository repository.StockRepository,
	historicalPriceRepository repository.HistoricalPriceRepository,
	yahooRepository repository.YahooRepository,
) IngestService {
	return ingestServiceHandler{
		StockRepository:           stockRepository,
		HistoricalPriceRepository: historicalPriceRepository,
		YahooRepository:           yahooRepository,
	}
}

type PriceCsvRow struct {
	Symbol string `csv:"symbol"`
	Date   string `csv:"date"`
	Open   string `csv:"open"`
	High   string `csv:"high"`
	Low    string `csv:"low"`
	Close  string `csv:"close"`
	Volume int64  `csv:"volume"`
}

func (row PriceCsvRow) toInput() (*AddPriceInput, error) {
	date, err := util.ParseDate(row.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", row.Date, domain.ErrInvalidInput)
	}

	in := AddPriceInput{
		StockSymbol: row.Symbol,
		Date:        date,
		Volume:      row.Volume,
	}
	fields := []struct {
		name  string
		value string
		dest  *decimal.Decimal
	}{
		{"open", row.Open, &in.Open},
		{"high", row.High, &in.High},
		{"low", row.Low, &in.Low},
		{"close", row.Close, &in.Close},
	}
	for _, f := range fields {
		d, err := decimal.NewFromString(f.value)
		if err != nil {
			return nil, fmt.Errorf("invalid %s price %q: %w", f.name, f.value, domain.ErrInvalidInput)
		}
		*f.dest = d
	}

	if err := in.Validate(); err != nil {
		return nil, err
	}

	return &in, nil
}

// ImportCsv reads rows of symbol,date,open,high,low,close,volume and
// upserts them. any bad row fails the whole import
func (h ingestServiceHandler) ImportCsv(ctx context.Context, tx *sql.Tx, r io.Reader) (int, error) {
	log := logger.FromContext(ctx)

	rows := []PriceCsvRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return 0, fmt.Errorf("failed to parse csv: %w", err)
	}

	stockIDs := map[string]uuid.UUID{}
	models := []model.HistoricalPrice{}
	for i, row := range rows {
		// +2 for the header and 1-indexing
		lineNumber := i + 2

		in, err := row.toInput()
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		symbol := NormalizeSymbol(in.StockSymbol)
		stockID, ok := stockIDs[symbol]
		if !ok {
			stock, err := h.StockRepository.GetBySymbol(tx, symbol)
			if err != nil {
				return 0, fmt.Errorf("line %d: %w", lineNumber, err)
			}
			stockID = stock.StockID
			stockIDs[symbol] = stockID
		}

		models = append(models, in.toModel(stockID))
	}
	models = dedupeByStockDate(models)

	if err := h.HistoricalPriceRepository.UpsertMany(tx, models); err != nil {
		return 0, err
	}

	log.Infow("imported prices", "numRows", len(models), "numStocks", len(stockIDs))

	return len(models), nil
}

// dedupeByStockDate keeps one price per stock and date, since a single
// upsert statement can't touch the same row twice. the last row wins
func dedupeByStockDate(prices []model.HistoricalPrice) []model.HistoricalPrice {
	type stockDate struct {
		stockID uuid.UUID
		date    string
	}

	index := map[stockDate]int{}
	out := make([]model.HistoricalPrice, 0, len(prices))
	for _, p := range prices {
		key := stockDate{stockID: p.StockID, date: p.Date.Format(time.DateOnly)}
		if i, ok := index[key]; ok {
			out[i] = p
			continue
		}
		index[key] = len(out)
		out = append(out, p)
	}

	return out
}

var errNoBars = errors.New("no bars returned")

// Backfill pulls daily bars from Yahoo for [start, end] and upserts them
func (h ingestServiceHandler) Backfill(ctx context.Context, tx *sql.Tx, symbol string, start, end time.Time) (int, error) {
	if end.Before(start) {
		return 0, fmt.Errorf("end %s is before start %s: %w", end.Format(time.DateOnly), start.Format(time.DateOnly), domain.ErrInvalidInput)
	}

	stock, err := h.StockRepository.GetBySymbol(tx, NormalizeSymbol(symbol))
	if err != nil {
		return 0, err
	}

	bars, err := h.YahooRepository.GetDailyBars(ctx, stock.Symbol, start, end)
	if err != nil {
		return 0, err
	}
	if len(bars) == 0 {
		return 0, fmt.Errorf("failed to backfill %s: %w", stock.Symbol, errNoBars)
	}

	models := make([]model.HistoricalPrice, 0, len(bars))
	for _, bar := range bars {
		in := AddPriceInput{
			StockSymbol: stock.Symbol,
			Date:        bar.Date,
			Open:        bar.Open,
			High:        bar.High,
			Low:         bar.Low,
			Close:       bar.Close,
			Volume:      bar.Volume,
		}
		if err := in.Validate(); err != nil {
			return 0, fmt.Errorf("bad bar for %s on %s: %w", stock.Symbol, bar.Date.Format(time.DateOnly), err)
		}
		models = append(models, in.toModel(stock.StockID))
	}
	models = dedupeByStockDate(models)

	if err := h.HistoricalPriceRepository.UpsertMany(tx, models); err != nil {
		return 0, err
	}

	logger.FromContext(ctx).Infow("backfilled prices", "symbol", stock.Symbol, "numBars", len(models))

	return len(models), nil
}
