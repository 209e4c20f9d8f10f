package api

import (
	"github.com/gin-gonic/gin"
)

func (h ApiHandler) listStocks(c *gin.Context) {
	ctx := c.Request.Context()
	tx, err := h.readOnlyTx(ctx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	stocks, err := h.StockService.ListStocks(ctx, tx)
	if err != nil {
		returnServiceError(err, c)
		return
	}

	out := make([]stockResponse, 0, len(stocks))
	for _, s := range stocks {
		out = append(out, newStockResponse(s))
	}

	c.JSON(200, out)
}
