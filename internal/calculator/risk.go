package calculator

import (
	"insightengine/internal/domain"

	"github.com/shopspring/decimal"
)

const (
	lowRiskCeiling    = 0.01
	mediumRiskCeiling = 0.03
)

// ClassifyRisk buckets a volatility. lower bounds are inclusive,
// so exactly 0.01 is Medium and exactly 0.03 is High
func ClassifyRisk(volatility float64) domain.RiskLevel {
	switch {
	case volatility < lowRiskCeiling:
		return domain.RiskLevel_Low
	case volatility < mediumRiskCeiling:
		return domain.RiskLevel_Medium
	default:
		return domain.RiskLevel_High
	}
}

func CalculateRiskScore(closes []decimal.Decimal) (*domain.RiskScore, error) {
	volatility, err := CalculateRMSVolatility(closes)
	if err != nil {
		return nil, err
	}

	return &domain.RiskScore{
		Score: volatility,
		Level: ClassifyRisk(volatility),
	}, nil
}
