package service

import (
	"context"
	"database/sql"
	"fmt"
	"insightengine/internal/db/models/postgres/public/model"
	"insightengine/internal/domain"
	"insightengine/internal/logger"
	"insightengine/internal/repository"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockService owns the write side: registering stocks and
// recording their daily prices
type StockService interface {
	CreateStock(ctx context.Context, tx *sql.Tx, in CreateStockInput) (*model.Stock, error)
	GetStock(ctx context.Context, tx *sql.Tx, symbol string) (*model.Stock, error)
	ListStocks(ctx context.Context, tx *sql.Tx) ([]model.Stock, error)
	DeleteStock(ctx context.Context, tx *sql.Tx, symbol string) error

	AddPrice(ctx context.Context, tx *sql.Tx, in AddPriceInput) (*model.HistoricalPrice, error)
	ListPrices(ctx context.Context, tx *sql.Tx, symbol string) ([]model.HistoricalPrice, error)
}

type CreateStockInput struct {
	Symbol      string
	CompanyName string
	Sector      *string
}

const (
	maxSymbolLength      = 10
	maxCompanyNameLength = 255
	maxSectorLength      = 100
)

func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

func (in CreateStockInput) Validate() error {
	symbol := NormalizeSymbol(in.Symbol)
	if len(symbol) == 0 || len(symbol) > maxSymbolLength {
		return fmt.Errorf("symbol must be 1-%d characters: %w", maxSymbolLength, domain.ErrInvalidInput)
	}
	name := strings.TrimSpace(in.CompanyName)
	if len(name) == 0 || len(name) > maxCompanyNameLength {
		return fmt.Errorf("company name must be 1-%d characters: %w", maxCompanyNameLength, domain.ErrInvalidInput)
	}
	if in.Sector != nil && len(*in.Sector) > maxSectorLength {
		return fmt.Errorf("sector must be at most %d characters: %w", maxSectorLength, domain.ErrInvalidInput)
	}
	return nil
}

type AddPriceInput struct {
	StockSymbol string
	Date        time.Time
	Open        decimal.Decimal
	High        decimal.Decimal
	Low         decimal.Decimal
	Close       decimal.Decimal
	Volume      int64
}

// NUMERIC(10, 2)
const priceScale = 2

var maxPrice = decimal.New(1, 8)

// rounded returns the input with prices at the scale they are stored at
func (in AddPriceInput) rounded() AddPriceInput {
	in.Open = in.Open.Round(priceScale)
	in.High = in.High.Round(priceScale)
	in.Low = in.Low.Round(priceScale)
	in.Close = in.Close.Round(priceScale)
	return in
}

// Validate checks prices as they will be stored, so a value that only
// goes out of range or to zero after rounding is rejected
func (in AddPriceInput) Validate() error {
	if NormalizeSymbol(in.StockSymbol) == "" {
		return fmt.Errorf("stock symbol is required: %w", domain.ErrInvalidInput)
	}
	if in.Date.IsZero() {
		return fmt.Errorf("date is required: %w", domain.ErrInvalidInput)
	}

	r := in.rounded()
	prices := []struct {
		name    string
		price   decimal.Decimal
		rounded decimal.Decimal
	}{
		{"open", in.Open, r.Open},
		{"high", in.High, r.High},
		{"low", in.Low, r.Low},
		{"close", in.Close, r.Close},
	}
	for _, p := range prices {
		if p.rounded.IsNegative() || p.price.IsNegative() {
			return fmt.Errorf("%s price cannot be negative: %w", p.name, domain.ErrInvalidInput)
		}
		if p.rounded.GreaterThanOrEqual(maxPrice) {
			return fmt.Errorf("%s price must be less than %s: %w", p.name, maxPrice, domain.ErrInvalidInput)
		}
		if p.rounded.IsZero() && !p.price.IsZero() {
			return fmt.Errorf("%s price %s rounds to zero: %w", p.name, p.price, domain.ErrInvalidInput)
		}
	}
	if r.High.LessThan(r.Low) {
		return fmt.Errorf("high price %s is below low price %s: %w", r.High, r.Low, domain.ErrInvalidInput)
	}
	if in.Volume < 0 {
		return fmt.Errorf("volume cannot be negative: %w", domain.ErrInvalidInput)
	}
	return nil
}

func (in AddPriceInput) toModel(stockID uuid.UUID) model.HistoricalPrice {
	r := in.rounded()
	return model.HistoricalPrice{
		StockID:    stockID,
		Date:       r.Date,
		OpenPrice:  r.Open,
		ClosePrice: r.Close,
		HighPrice:  r.High,
		LowPrice:   r.Low,
		Volume:     r.Volume,
	}
}

type stockServiceHandler struct {
	StockRepository           repository.StockRepository
	HistoricalPriceRepository repository.HistoricalPriceRepository
}

func NewStockService(
	stockRepository repository.StockRepository,
	historicalPriceRepository repository.HistoricalPriceRepository,
) StockService {
	return stockServiceHandler{
		StockRepository:           stockRepository,
		HistoricalPriceRepository: historicalPriceRepository,
	}
}

func (h stockServiceHandler) CreateStock(ctx context.Context, tx *sql.Tx, in CreateStockInput) (*model.Stock, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	var sector *string
	if in.Sector != nil && strings.TrimSpace(*in.Sector) != "" {
		s := strings.TrimSpace(*in.Sector)
		sector = &s
	}

	stock, err := h.StockRepository.Add(tx, model.Stock{
		Symbol:      NormalizeSymbol(in.Symbol),
		CompanyName: strings.TrimSpace(in.CompanyName),
		Sector:      sector,
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Infow("registered stock", "symbol", stock.Symbol, "stockID", stock.StockID)

	return stock, nil
}

func (h stockServiceHandler) GetStock(ctx context.Context, tx *sql.Tx, symbol string) (*model.Stock, error) {
	return h.StockRepository.GetBySymbol(tx, NormalizeSymbol(symbol))
}

func (h stockServiceHandler) ListStocks(ctx context.Context, tx *sql.Tx) ([]model.Stock, error) {
	return h.StockRepository.List(tx)
}

func (h stockServiceHandler) DeleteStock(ctx context.Context, tx *sql.Tx, symbol string) error {
	stock, err := h.StockRepository.GetBySymbol(tx, NormalizeSymbol(symbol))
	if err != nil {
		return err
	}

	if err := h.StockRepository.Delete(tx, stock.StockID); err != nil {
		return err
	}

	logger.FromContext(ctx).Infow("deleted stock", "symbol", stock.Symbol, "stockID", stock.StockID)

	return nil
}

// AddPrice records one daily bar for a registered stock. a bar for
// a date that already has one replaces it
func (h stockServiceHandler) AddPrice(ctx context.Context, tx *sql.Tx, in AddPriceInput) (*model.HistoricalPrice, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	stock, err := h.StockRepository.GetBySymbol(tx, NormalizeSymbol(in.StockSymbol))
	if err != nil {
		return nil, err
	}

	price, err := h.HistoricalPriceRepository.Upsert(tx, in.toModel(stock.StockID))
	if err != nil {
		return nil, err
	}

	return price, nil
}

func (h stockServiceHandler) ListPrices(ctx context.Context, tx *sql.Tx, symbol string) ([]model.HistoricalPrice, error) {
	stock, err := h.StockRepository.GetBySymbol(tx, NormalizeSymbol(symbol))
	if err != nil {
		return nil, err
	}

	return h.HistoricalPriceRepository.ListForStock(tx, stock.StockID)
}
