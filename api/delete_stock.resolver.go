package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// deleteStock removes the stock along with its whole price history
func (h ApiHandler) deleteStock(c *gin.Context) {
	ctx := c.Request.Context()
	tx, err := h.Db.BeginTx(ctx, nil)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	symbol := c.Param("symbol")
	if err := h.StockService.DeleteStock(ctx, tx, symbol); err != nil {
		returnServiceError(err, c)
		return
	}

	if err := tx.Commit(); err != nil {
		returnErrorJson(fmt.Errorf("failed to commit delete of %s: %w", symbol, err), c)
		return
	}

	c.JSON(200, map[string]string{"message": "deleted"})
}
