package cmd

import (
	"database/sql"
	"fmt"
	"insightengine/api"
	"insightengine/internal/repository"
	"insightengine/internal/service"
	"insightengine/internal/util"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		zap.S().Errorw("failed to close db", "error", err)
	}
}

func InitializeDependencies(secrets *util.Secrets) (*api.ApiHandler, error) {
	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	stockRepository := repository.NewStockRepository(dbConn)
	historicalPriceRepository := repository.NewHistoricalPriceRepository(dbConn)
	yahooRepository := repository.NewYahooRepository()

	apiHandler := &api.ApiHandler{
		Db: dbConn,
		StockService: service.NewStockService(
			stockRepository,
			historicalPriceRepository,
		),
		AnalyticsService: service.NewAnalyticsService(
			stockRepository,
			historicalPriceRepository,
		),
		IngestService: service.NewIngestService(
			stockRepository,
			historicalPriceRepository,
			yahooRepository,
		),
	}

	return apiHandler, nil
}
