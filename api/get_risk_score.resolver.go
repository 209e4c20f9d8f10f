package api

import (
	"github.com/gin-gonic/gin"
)

type riskScoreResponse struct {
	RiskScore float64 `json:"risk_score"`
	RiskLevel string  `json:"risk_level"`
}

func (h ApiHandler) getRiskScore(c *gin.Context) {
	ctx := c.Request.Context()
	tx, err := h.readOnlyTx(ctx)
	if err != nil {
		returnErrorJson(err, c)
		return
	}
	defer tx.Rollback()

	score, err := h.AnalyticsService.GetRiskScore(ctx, tx, c.Param("symbol"))
	if err != nil {
		returnServiceError(err, c)
		return
	}

	c.JSON(200, riskScoreResponse{
		RiskScore: score.Score,
		RiskLevel: score.Level.String(),
	})
}
