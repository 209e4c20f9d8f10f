package api

import (
	"github.com/gin-gonic/gin"
)

type volatilityResponse struct {
	Volatility float64 `json:"volatility"`
}

func (h ApiHandler) getVolatility(c *gin.Context) {
	ctx := c.Request.Context()
	tx, err := h.readOnlyTx(ctx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	volatility, err := h.AnalyticsService.GetVolatility(ctx, tx, c.Param("symbol"))
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, volatilityResponse{Volatility: volatility})
}
