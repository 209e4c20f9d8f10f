package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

type returnSampleResponse struct {
	Date        string  `json:"date"`
	DailyReturn float64 `json:"daily_return"`
}

func (h ApiHandler) getReturns(c *gin.Context) {
	ctx := c.Request.Context()
	tx, err := h.readOnlyTx(ctx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	returns, err := h.AnalyticsService.GetReturns(ctx, tx, c.Param("symbol"))
	if err != nil {
		returnServiceError(err, c)
		return
	}

	out := make([]returnSampleResponse, 0, len(returns))
	for _, r := range returns {
		out = append(out, returnSampleResponse{
			Date:        r.Date.Format(time.DateOnly),
			DailyReturn: r.DailyReturn,
		})
	}

	c.JSON(200, out)
}
