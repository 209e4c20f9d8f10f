package api

import (
	"github.com/gin-gonic/gin"
)

type predictResponse struct {
	PredictedNextClose float64 `json:"predicted_next_close"`
}

func (h ApiHandler) predict(c *gin.Context) {
	ctx := c.Request.Context()
	tx, err := h.readOnlyTx(ctx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	forecast, err := h.AnalyticsService.PredictNextClose(ctx, tx, c.Param("symbol"))
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, predictResponse{PredictedNextClose: forecast.PredictedNextClose})
}
