package forecasting

import (
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/pkg/utils"
)

// BaseForecast é o resultado do cálculo base de uma previsão
type BaseForecast struct {
	Committed        float64
	BestCase         float64
	Pipeline         float64
	Omitted          float64
	Closed           float64
	WeightedPipeline float64
	PredictedRevenue float64
	Confidence       float64
	DealCount        int
}

// WeightedPipelineValue soma amount × probability/100 sobre todos os negócios
// abertos da janela, incluindo os omitidos
func WeightedPipelineValue(deals []*domain.Deal) float64 {
	weighted := 0.0
	for _, deal := range deals {
		weighted += deal.Amount * deal.ProbabilityValue() / 100
	}
	return weighted
}

// CalculateBase calcula os agregados da previsão a partir dos negócios abertos
// da janela e da receita já fechada (status won com actualCloseDate na janela).
// predictedRevenue = closed + weightedPipeline.
func CalculateBase(openDeals []*domain.Deal, closed float64) BaseForecast {
	categorized := Categorize(openDeals)

	base := BaseForecast{
		Committed: utils.RoundWithTwoDecimalPlace(SumAmounts(categorized.Committed)),
		BestCase:  utils.RoundWithTwoDecimalPlace(SumAmounts(categorized.BestCase)),
		Pipeline:  utils.RoundWithTwoDecimalPlace(SumAmounts(categorized.Pipeline)),
		Omitted:   utils.RoundWithTwoDecimalPlace(SumAmounts(categorized.Omitted)),
		Closed:    utils.RoundWithTwoDecimalPlace(closed),
		DealCount: len(openDeals),
	}

	base.WeightedPipeline = utils.RoundWithTwoDecimalPlace(WeightedPipelineValue(openDeals))
	base.PredictedRevenue = utils.RoundWithTwoDecimalPlace(base.Closed + base.WeightedPipeline)
	base.Confidence = confidenceScore(base)

	return base
}

// confidenceScore deriva um escore heurístico de confiança (0-100) da
// composição das categorias e do número de negócios
func confidenceScore(base BaseForecast) float64 {
	if base.DealCount == 0 {
		return 0
	}

	totalOpen := base.Committed + base.BestCase + base.Pipeline + base.Omitted
	if totalOpen == 0 {
		// Prior neutro quando há negócios mas nenhum valor em aberto
		return 50
	}

	committedRatio := base.Committed / totalOpen
	bestCaseRatio := base.BestCase / totalOpen

	confidence := 50.0
	confidence += committedRatio * 40
	confidence += bestCaseRatio * 20

	volumeBonus := float64(base.DealCount) * 0.5
	if volumeBonus > 10 {
		volumeBonus = 10
	}
	confidence += volumeBonus

	return utils.RoundWithTwoDecimalPlace(clamp(confidence, 0, 100))
}

func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
