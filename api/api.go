package api

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"insightengine/internal/domain"
	"insightengine/internal/logger"
	"insightengine/internal/service"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ApiHandler struct {
	Db               *sql.DB
	StockService     service.StockService
	AnalyticsService service.AnalyticsService
	IngestService    service.IngestService
}

func (m ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())
	router.Use(m.logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "InsightEngine is running"})
	})

	router.POST("/stocks", m.createStock)
	router.GET("/stocks", m.listStocks)
	router.GET("/stocks/:symbol", m.getStock)
	router.DELETE("/stocks/:symbol", m.deleteStock)

	router.POST("/prices", m.createPrice)
	router.GET("/stocks/:symbol/prices", m.listPrices)

	router.GET("/stocks/:symbol/returns", m.getReturns)
	router.GET("/stocks/:symbol/volatility", m.getVolatility)
	router.GET("/stocks/:symbol/risk-score", m.getRiskScore)
	router.GET("/stocks/:symbol/predict", m.predict)

	return router
}

func (m ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	log := logger.FromContext(c.Request.Context())
	if code >= 500 {
		log.Errorw("request failed", "error", err.Error(), "status", code)
	} else {
		log.Infow("request rejected", "error", err.Error(), "status", code)
	}
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

// returnServiceError maps the domain errors onto the status codes
// clients expect. insufficient data is informational, not a failure
func returnServiceError(err error, c *gin.Context) {
	switch {
	case errors.Is(err, domain.ErrStockNotFound):
		logger.FromContext(c.Request.Context()).Infow("stock not found", "error", err.Error())
		c.AbortWithStatusJSON(404, gin.H{"detail": "Stock not found"})
	case errors.Is(err, domain.ErrInsufficientData):
		c.JSON(200, gin.H{"message": "Not enough data"})
	case errors.Is(err, domain.ErrDivisionByZero):
		returnErrorJsonCode(err, c, 422)
	case errors.Is(err, domain.ErrDuplicateSymbol):
		returnErrorJsonCode(err, c, 409)
	case errors.Is(err, domain.ErrInvalidInput):
		returnErrorJsonCode(err, c, 400)
	default:
		returnErrorJson(err, c)
	}
}

func (m ApiHandler) readOnlyTx(ctx context.Context) (*sql.Tx, error) {
	return m.Db.BeginTx(
		ctx,
		&sql.TxOptions{
			Isolation: sql.LevelReadCommitted,
			ReadOnly:  true,
		},
	)
}

func (m ApiHandler) logRequestMiddleware(c *gin.Context) {
	start := time.Now().UTC()

	log := logger.FromContext(c.Request.Context()).With(
		"requestID", uuid.New(),
		"method", c.Request.Method,
		"route", c.FullPath(),
		"ip", c.ClientIP(),
	)
	c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), log))

	c.Next()

	log.Infow(
		"handled request",
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"durationMs", time.Since(start).Milliseconds(),
	)
}
