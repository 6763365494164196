package forecasting

import (
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/pkg/utils"
)

// AccuracyEntry compara o previsto e o realizado de uma previsão encerrada.
// predictionAccuracy = 100 − |actual−predicted|/predicted×100, com 0 quando o
// previsto é 0; targetAttainment = actual/target×100, com 0 quando a meta é 0.
func AccuracyEntry(forecast *domain.Forecast, actual float64) domain.ForecastAccuracyEntry {
	entry := domain.ForecastAccuracyEntry{
		ForecastID:       forecast.ID,
		Name:             forecast.Name,
		EndDate:          forecast.EndDate,
		PredictedRevenue: forecast.PredictedRevenue,
		ActualRevenue:    actual,
		TargetRevenue:    forecast.TargetRevenue,
	}

	if forecast.PredictedRevenue != 0 {
		deviation := actual - forecast.PredictedRevenue
		if deviation < 0 {
			deviation = -deviation
		}
		entry.PredictionAccuracy = utils.RoundWithTwoDecimalPlace(
			100 - deviation/forecast.PredictedRevenue*100,
		)
	}

	if forecast.TargetRevenue != 0 {
		entry.TargetAttainment = utils.RoundWithTwoDecimalPlace(
			actual / forecast.TargetRevenue * 100,
		)
	}

	return entry
}

// AggregateAccuracy calcula as médias de acurácia sobre as previsões encerradas
func AggregateAccuracy(entries []domain.ForecastAccuracyEntry) *domain.ForecastAccuracyResponse {
	response := &domain.ForecastAccuracyResponse{
		ForecastCount: len(entries),
		Entries:       entries,
	}

	if len(entries) == 0 {
		return response
	}

	sumAccuracy := 0.0
	sumAttainment := 0.0
	for _, entry := range entries {
		sumAccuracy += entry.PredictionAccuracy
		sumAttainment += entry.TargetAttainment
	}

	count := float64(len(entries))
	response.AvgPredictionAccuracy = utils.RoundWithTwoDecimalPlace(sumAccuracy / count)
	response.AvgTargetAttainment = utils.RoundWithTwoDecimalPlace(sumAttainment / count)

	return response
}
