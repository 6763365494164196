package domain

import "time"

type ForecastPeriod string

const (
	ForecastPeriodMonthly   ForecastPeriod = "monthly"
	ForecastPeriodQuarterly ForecastPeriod = "quarterly"
	ForecastPeriodYearly    ForecastPeriod = "yearly"
)

type ForecastCategory string

const (
	ForecastCategoryCommitted ForecastCategory = "committed"
	ForecastCategoryBestCase  ForecastCategory = "best_case"
	ForecastCategoryPipeline  ForecastCategory = "pipeline"
	ForecastCategoryOmitted   ForecastCategory = "omitted"
)

// Forecast representa uma previsão de receita para um período.
// Os campos agregados são recalculados sob demanda e refletem o estado
// dos negócios apenas no momento de LastCalculatedAt.
type Forecast struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Period           ForecastPeriod `json:"period"`
	StartDate        time.Time      `json:"start_date"`
	EndDate          time.Time      `json:"end_date"`
	PipelineID       *string        `json:"pipeline_id"`
	TargetRevenue    float64        `json:"target_revenue"`
	Committed        float64        `json:"committed"`
	BestCase         float64        `json:"best_case"`
	Pipeline         float64        `json:"pipeline"`
	Closed           float64        `json:"closed"`
	PredictedRevenue float64        `json:"predicted_revenue"`
	Confidence       float64        `json:"confidence"`
	LastCalculatedAt *time.Time     `json:"last_calculated_at"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

type CreateForecastRequest struct {
	Name          string         `json:"name"`
	Period        ForecastPeriod `json:"period"`
	StartDate     string         `json:"start_date"` // formato 2006-01-02
	EndDate       string         `json:"end_date"`
	PipelineID    *string        `json:"pipeline_id"`
	TargetRevenue float64        `json:"target_revenue"`
}

// CategorizedDeals agrupa negócios abertos por categoria de previsão
type CategorizedDeals struct {
	Committed []*Deal `json:"committed"`
	BestCase  []*Deal `json:"best_case"`
	Pipeline  []*Deal `json:"pipeline"`
	Omitted   []*Deal `json:"omitted"`
}

// ByCategory retorna o grupo de negócios correspondente à categoria
func (c *CategorizedDeals) ByCategory(category ForecastCategory) []*Deal {
	switch category {
	case ForecastCategoryCommitted:
		return c.Committed
	case ForecastCategoryBestCase:
		return c.BestCase
	case ForecastCategoryPipeline:
		return c.Pipeline
	case ForecastCategoryOmitted:
		return c.Omitted
	}
	return nil
}

// DealPrediction é a previsão individual de um negócio após a análise de risco
type DealPrediction struct {
	DealID              string           `json:"deal_id"`
	Title               string           `json:"title"`
	Amount              float64          `json:"amount"`
	BaseProbability     float64          `json:"base_probability"`
	AdjustedProbability float64          `json:"adjusted_probability"`
	Category            ForecastCategory `json:"category"`
	RiskFactors         []string         `json:"risk_factors"`
	WeightedAmount      float64          `json:"weighted_amount"`
}

// Adjusted indica se a análise de risco alterou a probabilidade base
func (p *DealPrediction) Adjusted() bool {
	return p.AdjustedProbability != p.BaseProbability
}

// PredictionFactor é um fator qualitativo que compõe a confiança ajustada
type PredictionFactor struct {
	Name        string  `json:"name"`
	Impact      float64 `json:"impact"`
	Description string  `json:"description"`
}

// ForecastPrediction é o resultado da previsão ajustada por risco
type ForecastPrediction struct {
	ForecastID       string             `json:"forecast_id"`
	Committed        float64            `json:"committed"`
	BestCase         float64            `json:"best_case"`
	Pipeline         float64            `json:"pipeline"`
	PredictedRevenue float64            `json:"predicted_revenue"`
	Confidence       float64            `json:"confidence"`
	Factors          []PredictionFactor `json:"factors"`
	Deals            []DealPrediction   `json:"deals"`
	GeneratedAt      time.Time          `json:"generated_at"`
}

// ForecastSnapshot é uma cópia imutável dos agregados de uma previsão em um
// ponto no tempo. Append-only, ordenada por SnapshotDate.
type ForecastSnapshot struct {
	ID               int              `json:"id"`
	ForecastID       string           `json:"forecast_id"`
	SnapshotDate     time.Time        `json:"snapshot_date"`
	Committed        float64          `json:"committed"`
	BestCase         float64          `json:"best_case"`
	Pipeline         float64          `json:"pipeline"`
	Closed           float64          `json:"closed"`
	PredictedRevenue float64          `json:"predicted_revenue"`
	Confidence       float64          `json:"confidence"`
	TargetRevenue    float64          `json:"target_revenue"`
	Predictions      []DealPrediction `json:"predictions"`
	CreatedAt        time.Time        `json:"created_at"`
}

// ForecastAccuracyEntry compara o previsto e o realizado de uma previsão encerrada
type ForecastAccuracyEntry struct {
	ForecastID         string    `json:"forecast_id"`
	Name               string    `json:"name"`
	EndDate            time.Time `json:"end_date"`
	PredictedRevenue   float64   `json:"predicted_revenue"`
	ActualRevenue      float64   `json:"actual_revenue"`
	TargetRevenue      float64   `json:"target_revenue"`
	PredictionAccuracy float64   `json:"prediction_accuracy"`
	TargetAttainment   float64   `json:"target_attainment"`
}

type ForecastAccuracyResponse struct {
	ForecastCount         int                     `json:"forecast_count"`
	AvgPredictionAccuracy float64                 `json:"avg_prediction_accuracy"`
	AvgTargetAttainment   float64                 `json:"avg_target_attainment"`
	Entries               []ForecastAccuracyEntry `json:"entries"`
}
