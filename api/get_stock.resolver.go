package api

import (
	"github.com/gin-gonic/gin"
)

func (h ApiHandler) getStock(c *gin.Context) {
	ctx := c.Request.Context()
	tx, err := h.readOnlyTx(ctx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	stock, err := h.StockService.GetStock(ctx, tx, c.Param("symbol"))
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, newStockResponse(*stock))
}
