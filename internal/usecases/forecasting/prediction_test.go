package forecasting

import (
	"testing"
	"time"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGeneratePrediction_FunilSaudavel(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	forecast := &domain.Forecast{
		ID:        "FC0001",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	deals := []*domain.Deal{
		{
			ID:                "DL0001",
			Title:             "Licenças anuais",
			Amount:            100000,
			Probability:       floatPtr(95),
			CreatedAt:         now.AddDate(0, 0, -10),
			StageChangedAt:    now.AddDate(0, 0, -5),
			ExpectedCloseDate: timePtr(now.AddDate(0, 0, 10)),
		},
		{
			ID:                "DL0002",
			Title:             "Expansão de contrato",
			Amount:            50000,
			Probability:       floatPtr(75),
			CreatedAt:         now.AddDate(0, 0, -10),
			StageChangedAt:    now.AddDate(0, 0, -5),
			ExpectedCloseDate: timePtr(now.AddDate(0, 0, 10)),
		},
	}

	prediction := GeneratePrediction(forecast, deals, 10000, now)

	assert.Equal(t, "FC0001", prediction.ForecastID)
	assert.Equal(t, 100000.0, prediction.Committed)
	assert.Equal(t, 50000.0, prediction.BestCase)
	assert.Equal(t, 0.0, prediction.Pipeline)

	// 10000 fechado + 95000 + 37500 ponderados
	assert.Equal(t, 142500.0, prediction.PredictedRevenue)

	// Sem fatores qualitativos: base 60 + bônus de volume 1
	assert.Empty(t, prediction.Factors)
	assert.Equal(t, 61.0, prediction.Confidence)

	assert.Len(t, prediction.Deals, 2)
	assert.Equal(t, domain.ForecastCategoryCommitted, prediction.Deals[0].Category)
	assert.Equal(t, 95000.0, prediction.Deals[0].WeightedAmount)
	assert.Empty(t, prediction.Deals[0].RiskFactors)
	assert.False(t, prediction.Deals[0].Adjusted())
}

func TestGeneratePrediction_FunilArriscado(t *testing.T) {
	now := time.Date(2024, 6, 28, 12, 0, 0, 0, time.UTC)
	forecast := &domain.Forecast{
		ID:        "FC0002",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	deals := []*domain.Deal{
		{
			ID:                "DL0003",
			Title:             "Projeto corporativo",
			Amount:            150000,
			Probability:       floatPtr(90),
			CreatedAt:         now.AddDate(0, 0, -100),
			StageChangedAt:    now.AddDate(0, 0, -40),
			ExpectedCloseDate: timePtr(time.Date(2024, 6, 29, 0, 0, 0, 0, time.UTC)),
		},
	}

	prediction := GeneratePrediction(forecast, deals, 0, now)

	// 90 - 10 (idade) - 15 (estágio) - 5 (valor alto) rebaixa para pipeline
	assert.Len(t, prediction.Deals, 1)
	assert.Equal(t, 90.0, prediction.Deals[0].BaseProbability)
	assert.Equal(t, 60.0, prediction.Deals[0].AdjustedProbability)
	assert.Equal(t, domain.ForecastCategoryPipeline, prediction.Deals[0].Category)
	assert.True(t, prediction.Deals[0].Adjusted())

	assert.Equal(t, 0.0, prediction.Committed)
	assert.Equal(t, 0.0, prediction.BestCase)
	assert.Equal(t, 150000.0, prediction.Pipeline)
	assert.Equal(t, 90000.0, prediction.PredictedRevenue)

	// Funil concentrado no início, negócios com risco e período quase no fim
	assert.Len(t, prediction.Factors, 3)
	assert.Equal(t, FactorStrongPipeline, prediction.Factors[0].Name)
	assert.Equal(t, -10.0, prediction.Factors[0].Impact)
	assert.Equal(t, FactorDealHealth, prediction.Factors[1].Name)
	assert.Equal(t, -15.0, prediction.Factors[1].Impact)
	assert.Equal(t, FactorTimePressure, prediction.Factors[2].Name)
	assert.Equal(t, -5.0, prediction.Factors[2].Impact)

	// 60 - 15 (metade dos impactos) + 0.5 (volume) - 5 (maioria ajustada)
	assert.Equal(t, 40.5, prediction.Confidence)
}

func TestGeneratePrediction_SemNegocios(t *testing.T) {
	now := time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC)
	forecast := &domain.Forecast{
		ID:        "FC0003",
		StartDate: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC),
	}

	prediction := GeneratePrediction(forecast, nil, 25000, now)

	assert.Empty(t, prediction.Deals)
	assert.Empty(t, prediction.Factors)
	assert.Equal(t, 25000.0, prediction.PredictedRevenue)

	// Apenas a base de confiança, sem bônus nem penalidades
	assert.Equal(t, 60.0, prediction.Confidence)
}

func TestElapsedFraction(t *testing.T) {
	start := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0.0, elapsedFraction(start, end, start))
	assert.Equal(t, 1.0, elapsedFraction(start, end, end.AddDate(0, 0, 5)))

	// Período invertido conta como totalmente decorrido
	assert.Equal(t, 1.0, elapsedFraction(end, start, start))
}
