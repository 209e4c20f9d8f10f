package api

import (
	"fmt"
	"insightengine/internal/db/models/postgres/public/model"
	"insightengine/internal/service"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createStockRequest struct {
	Symbol      string  `json:"symbol"`
	CompanyName string  `json:"company_name"`
	Sector      *string `json:"sector"`
}

type stockResponse struct {
	StockID     uuid.UUID `json:"stock_id"`
	Symbol      string    `json:"symbol"`
	CompanyName string    `json:"company_name"`
	Sector      *string   `json:"sector"`
	CreatedAt   time.Time `json:"created_at"`
}

func newStockResponse(s model.Stock) stockResponse {
	return stockResponse{
		StockID:     s.StockID,
		Symbol:      s.Symbol,
		CompanyName: s.CompanyName,
		Sector:      s.Sector,
		CreatedAt:   s.CreatedAt,
	}
}

func (h ApiHandler) createStock(c *gin.Context) {
	var requestBody createStockRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	ctx := c.Request.Context()
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	stock, err := h.StockService.CreateStock(ctx, tx, service.CreateStockInput{
		Symbol:      requestBody.Symbol,
		CompanyName: requestBody.CompanyName,
		Sector:      requestBody.Sector,
	})
	if err != nil {
		returnServiceError(err, c)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(fmt.Errorf("failed to commit stock %s: %w", stock.Symbol, err), c)
		return
	}

	c.JSON(200, newStockResponse(*stock))
}
