package service

import (
	"context"
	"database/sql"
	"fmt"
	"insightengine/internal/calculator"
	"insightengine/internal/domain"
	"insightengine/internal/logger"
	"insightengine/internal/repository"
	"time"

	"github.com/shopspring/decimal"
)

// AnalyticsService loads a stock's price history and runs the
// calculators over it. nothing is written back
type AnalyticsService interface {
	GetReturns(ctx context.Context, tx *sql.Tx, symbol string) ([]domain.ReturnSample, error)
	GetVolatility(ctx context.Context, tx *sql.Tx, symbol string) (float64, error)
	GetRiskScore(ctx context.Context, tx *sql.Tx, symbol string) (*domain.RiskScore, error)
	PredictNextClose(ctx context.Context, tx *sql.Tx, symbol string) (*domain.TrendForecast, error)
}

type analyticsServiceHandler struct {
	StockRepository           repository.StockRepository
	HistoricalPriceRepository repository.HistoricalPriceRepository
}

func NewAnalyticsService(
	stockRepository repository.StockRepository,
	historicalPriceRepository repository.HistoricalPriceRepository,
) AnalyticsService {
	return analyticsServiceHandler{
		StockRepository:           stockRepository,
		HistoricalPriceRepository: historicalPriceRepository,
	}
}

// loadPriceSeries returns ErrStockNotFound for unregistered symbols. a
// registered stock with no prices is an empty series, not an error
func (h analyticsServiceHandler) loadPriceSeries(ctx context.Context, tx *sql.Tx, symbol string) (*domain.PriceSeries, error) {
	stock, err := h.StockRepository.GetBySymbol(tx, NormalizeSymbol(symbol))
	if err != nil {
		return nil, err
	}

	prices, err := h.HistoricalPriceRepository.ListForStock(tx, stock.StockID)
	if err != nil {
		return nil, err
	}

	out := &domain.PriceSeries{
		StockID: stock.StockID,
		Symbol:  stock.Symbol,
		Dates:   make([]time.Time, 0, len(prices)),
		Closes:  make([]decimal.Decimal, 0, len(prices)),
	}
	for _, p := range prices {
		out.Dates = append(out.Dates, p.Date)
		out.Closes = append(out.Closes, p.ClosePrice)
	}

	logger.FromContext(ctx).Debugw("loaded price series", "symbol", stock.Symbol, "numPrices", out.Len())

	return out, nil
}

func (h analyticsServiceHandler) GetReturns(ctx context.Context, tx *sql.Tx, symbol string) ([]domain.ReturnSample, error) {
	series, err := h.loadPriceSeries(ctx, tx, symbol)
	if err != nil {
		return nil, err
	}

	returns, err := calculator.CalculateReturns(series.Closes, series.Dates)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate returns for %s: %w", series.Symbol, err)
	}

	return returns, nil
}

func (h analyticsServiceHandler) GetVolatility(ctx context.Context, tx *sql.Tx, symbol string) (float64, error) {
	series, err := h.loadPriceSeries(ctx, tx, symbol)
	if err != nil {
		return 0, err
	}

	volatility, err := calculator.CalculateVolatility(series.Closes)
	if err != nil {
		return 0, fmt.Errorf("failed to calculate volatility for %s: %w", series.Symbol, err)
	}

	return volatility, nil
}

func (h analyticsServiceHandler) GetRiskScore(ctx context.Context, tx *sql.Tx, symbol string) (*domain.RiskScore, error) {
	series, err := h.loadPriceSeries(ctx, tx, symbol)
	if err != nil {
		return nil, err
	}

	score, err := calculator.CalculateRiskScore(series.Closes)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate risk score for %s: %w", series.Symbol, err)
	}

	return score, nil
}

func (h analyticsServiceHandler) PredictNextClose(ctx context.Context, tx *sql.Tx, symbol string) (*domain.TrendForecast, error) {
	series, err := h.loadPriceSeries(ctx, tx, symbol)
	if err != nil {
		return nil, err
	}

	forecast, err := calculator.PredictNextClose(series.Closes)
	if err != nil {
		return nil, fmt.Errorf("failed to predict next close for %s: %w", series.Symbol, err)
	}

	return forecast, nil
}
