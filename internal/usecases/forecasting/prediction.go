package forecasting

import (
	"time"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/pkg/utils"
)

// Nomes e impactos dos fatores qualitativos da previsão ajustada
const (
	FactorStrongPipeline  = "pipeline_quality"
	FactorDealHealth      = "deal_health"
	FactorTimePressure    = "time_pressure"
	strongPipelineRatio   = 0.5
	earlyStageRatio       = 0.2
	riskyDealsRatio       = 0.5
	lateElapsedFraction   = 0.75
	earlyElapsedFraction  = 0.25
	adjustedPenaltyRatio  = 0.5
	aiConfidenceBase      = 60.0
	aiVolumeBonusCap      = 15.0
	aiAdjustedPenalty     = 5.0
	factorImpactWeight    = 0.5
)

// GeneratePrediction recategoriza os negócios usando as probabilidades
// ajustadas pela análise de risco, recalcula a receita ponderada e deriva os
// fatores qualitativos e a confiança ajustada.
func GeneratePrediction(
	forecast *domain.Forecast,
	openDeals []*domain.Deal,
	closed float64,
	now time.Time,
) *domain.ForecastPrediction {
	prediction := &domain.ForecastPrediction{
		ForecastID:  forecast.ID,
		Deals:       make([]domain.DealPrediction, 0, len(openDeals)),
		Factors:     make([]domain.PredictionFactor, 0, 3),
		GeneratedAt: now,
	}

	committedCount := 0
	riskyCount := 0
	adjustedCount := 0
	weighted := 0.0

	for _, deal := range openDeals {
		risk := AnalyzeDealRisk(deal, now)
		category := CategorizeProbability(risk.AdjustedProbability)
		weightedAmount := deal.Amount * risk.AdjustedProbability / 100

		switch category {
		case domain.ForecastCategoryCommitted:
			prediction.Committed += deal.Amount
			committedCount++
		case domain.ForecastCategoryBestCase:
			prediction.BestCase += deal.Amount
		case domain.ForecastCategoryPipeline:
			prediction.Pipeline += deal.Amount
		}

		if len(risk.RiskFactors) > 0 {
			riskyCount++
		}
		if risk.AdjustedProbability != risk.BaseProbability {
			adjustedCount++
		}
		weighted += weightedAmount

		prediction.Deals = append(prediction.Deals, domain.DealPrediction{
			DealID:              deal.ID,
			Title:               deal.Title,
			Amount:              deal.Amount,
			BaseProbability:     risk.BaseProbability,
			AdjustedProbability: risk.AdjustedProbability,
			Category:            category,
			RiskFactors:         risk.RiskFactors,
			WeightedAmount:      utils.RoundWithTwoDecimalPlace(weightedAmount),
		})
	}

	prediction.Committed = utils.RoundWithTwoDecimalPlace(prediction.Committed)
	prediction.BestCase = utils.RoundWithTwoDecimalPlace(prediction.BestCase)
	prediction.Pipeline = utils.RoundWithTwoDecimalPlace(prediction.Pipeline)
	prediction.PredictedRevenue = utils.RoundWithTwoDecimalPlace(closed + weighted)

	dealCount := len(openDeals)
	if dealCount > 0 {
		prediction.Factors = derivePredictionFactors(
			forecast, committedCount, riskyCount, dealCount, now,
		)
	}

	prediction.Confidence = aiConfidence(prediction.Factors, dealCount, adjustedCount)

	return prediction
}

// derivePredictionFactors avalia qualidade do funil, saúde dos negócios e
// pressão de prazo do período
func derivePredictionFactors(
	forecast *domain.Forecast,
	committedCount, riskyCount, dealCount int,
	now time.Time,
) []domain.PredictionFactor {
	factors := make([]domain.PredictionFactor, 0, 3)

	committedRatio := float64(committedCount) / float64(dealCount)
	if committedRatio > strongPipelineRatio {
		factors = append(factors, domain.PredictionFactor{
			Name:        FactorStrongPipeline,
			Impact:      15,
			Description: "Funil forte: maioria dos negócios comprometidos",
		})
	} else if committedRatio < earlyStageRatio {
		factors = append(factors, domain.PredictionFactor{
			Name:        FactorStrongPipeline,
			Impact:      -10,
			Description: "Funil concentrado em estágios iniciais",
		})
	}

	if float64(riskyCount)/float64(dealCount) > riskyDealsRatio {
		factors = append(factors, domain.PredictionFactor{
			Name:        FactorDealHealth,
			Impact:      -15,
			Description: "Mais da metade dos negócios apresenta fatores de risco",
		})
	}

	elapsed := elapsedFraction(forecast.StartDate, forecast.EndDate, now)
	if elapsed > lateElapsedFraction {
		factors = append(factors, domain.PredictionFactor{
			Name:        FactorTimePressure,
			Impact:      -5,
			Description: "Período próximo do fim com funil em aberto",
		})
	} else if elapsed < earlyElapsedFraction {
		factors = append(factors, domain.PredictionFactor{
			Name:        FactorTimePressure,
			Impact:      5,
			Description: "Ainda há tempo hábil no período",
		})
	}

	return factors
}

// elapsedFraction calcula a fração decorrida do período, limitada a [0, 1]
func elapsedFraction(start, end, now time.Time) float64 {
	total := end.Sub(start)
	if total <= 0 {
		return 1
	}
	return clamp(float64(now.Sub(start))/float64(total), 0, 1)
}

// aiConfidence deriva a confiança ajustada: base 60, metade do impacto de cada
// fator, bônus de volume limitado a 15 e penalidade quando mais da metade dos
// negócios teve a probabilidade ajustada
func aiConfidence(factors []domain.PredictionFactor, dealCount, adjustedCount int) float64 {
	confidence := aiConfidenceBase

	for _, factor := range factors {
		confidence += factor.Impact * factorImpactWeight
	}

	volumeBonus := float64(dealCount) * 0.5
	if volumeBonus > aiVolumeBonusCap {
		volumeBonus = aiVolumeBonusCap
	}
	confidence += volumeBonus

	if dealCount > 0 && float64(adjustedCount)/float64(dealCount) > adjustedPenaltyRatio {
		confidence -= aiAdjustedPenalty
	}

	return utils.RoundWithTwoDecimalPlace(clamp(confidence, 0, 100))
}
