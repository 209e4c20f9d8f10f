package api

import (
	"github.com/gin-gonic/gin"
)

func (h ApiHandler) listPrices(c *gin.Context) {
	ctx := c.Request.Context()
	tx, err := h.readOnlyTx(ctx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	prices, err := h.StockService.ListPrices(ctx, tx, c.Param("symbol"))
	if err != nil {
		returnServiceError(err, c)
		return
	}

	out := make([]priceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, newPriceResponse(p))
	}

	c.JSON(200, out)
}
