package api

import (
	"errors"
	"fmt"
	"insightengine/internal/db/models/postgres/public/model"
	"insightengine/internal/domain"
	"insightengine/internal/service"
	"insightengine/internal/util"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type createPriceRequest struct {
	StockSymbol string           `json:"stock_symbol"`
	Date        string           `json:"date"`
	OpenPrice   *decimal.Decimal `json:"open_price"`
	HighPrice   *decimal.Decimal `json:"high_price"`
	LowPrice    *decimal.Decimal `json:"low_price"`
	ClosePrice  *decimal.Decimal `json:"close_price"`
	Volume      int64            `json:"volume"`
}

func (r createPriceRequest) toInput() (*service.AddPriceInput, error) {
	date, err := util.ParseDate(r.Date)
	if err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD, got %q: %w", r.Date, domain.ErrInvalidInput)
	}
	if r.OpenPrice == nil || r.HighPrice == nil || r.LowPrice == nil || r.ClosePrice == nil {
		return nil, fmt.Errorf("open_price, high_price, low_price and close_price are required: %w", domain.ErrInvalidInput)
	}

	return &service.AddPriceInput{
		StockSymbol: r.StockSymbol,
		Date:        date,
		Open:        *r.OpenPrice,
		High:        *r.HighPrice,
		Low:         *r.LowPrice,
		Close:       *r.ClosePrice,
		Volume:      r.Volume,
	}, nil
}

type priceResponse struct {
	HistoricalPriceID uuid.UUID       `json:"historical_price_id"`
	StockID           uuid.UUID       `json:"stock_id"`
	Date              string          `json:"date"`
	OpenPrice         decimal.Decimal `json:"open_price"`
	HighPrice         decimal.Decimal `json:"high_price"`
	LowPrice          decimal.Decimal `json:"low_price"`
	ClosePrice        decimal.Decimal `json:"close_price"`
	Volume            int64           `json:"volume"`
}

func newPriceResponse(p model.HistoricalPrice) priceResponse {
	return priceResponse{
		HistoricalPriceID: p.HistoricalPriceID,
		StockID:           p.StockID,
		Date:              p.Date.Format(time.DateOnly),
		OpenPrice:         p.OpenPrice,
		HighPrice:         p.HighPrice,
		LowPrice:          p.LowPrice,
		ClosePrice:        p.ClosePrice,
		Volume:            p.Volume,
	}
}

func (h ApiHandler) createPrice(c *gin.Context) {
	var requestBody createPriceRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJsonCode(fmt.Errorf("failed to read request body: %w", err), c, 400)
		return
	}

	in, err := requestBody.toInput()
	if err != nil {
		returnServiceError(err, c)
		return
	}

	ctx := c.Request.Context()
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	price, err := h.StockService.AddPrice(ctx, tx, *in)
	if err != nil {
		returnServiceError(err, c)
		return
	}
	if price == nil {
		returnErrorJson(errors.New("no price returned after insert"), c)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(fmt.Errorf("failed to commit price: %w", err), c)
		return
	}

	c.JSON(200, newPriceResponse(*price))
}
