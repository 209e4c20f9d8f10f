package domain

import "time"

type ReturnSample struct {
	Date        time.Time
	DailyReturn float64
}

type RiskLevel string

const (
	RiskLevel_Low    RiskLevel = "Low"
	RiskLevel_Medium RiskLevel = "Medium"
	RiskLevel_High   RiskLevel = "High"
)

func (r RiskLevel) String() string {
	return string(r)
}

type RiskScore struct {
	Score float64
	Level RiskLevel
}

// TrendForecast holds the fitted line along with the value
// it predicts one step past the last observation
type TrendForecast struct {
	Slope              float64
	Intercept          float64
	PredictedNextClose float64
}
