package forecasting

import (
	"testing"
	"time"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAnalyzeDealRisk(t *testing.T) {
	now := time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name             string
		deal             *domain.Deal
		expectedAdjusted float64
		expectedFactors  []string
	}{
		{
			name: "Negócio saudável não recebe penalidades",
			deal: &domain.Deal{
				Amount:            50000,
				Probability:       floatPtr(60),
				CreatedAt:         now.AddDate(0, 0, -10),
				StageChangedAt:    now.AddDate(0, 0, -5),
				ExpectedCloseDate: timePtr(now.AddDate(0, 0, 30)),
			},
			expectedAdjusted: 60,
			expectedFactors:  []string{},
		},
		{
			name: "Negócio aberto há mais de 90 dias perde 10 pontos",
			deal: &domain.Deal{
				Amount:            50000,
				Probability:       floatPtr(60),
				CreatedAt:         now.AddDate(0, 0, -100),
				StageChangedAt:    now.AddDate(0, 0, -5),
				ExpectedCloseDate: timePtr(now.AddDate(0, 0, 30)),
			},
			expectedAdjusted: 50,
			expectedFactors:  []string{RiskFactorAgeOver90},
		},
		{
			name: "Negócio aberto há mais de 60 dias perde 5 pontos",
			deal: &domain.Deal{
				Amount:            50000,
				Probability:       floatPtr(60),
				CreatedAt:         now.AddDate(0, 0, -70),
				StageChangedAt:    now.AddDate(0, 0, -5),
				ExpectedCloseDate: timePtr(now.AddDate(0, 0, 30)),
			},
			expectedAdjusted: 55,
			expectedFactors:  []string{RiskFactorAgeOver60},
		},
		{
			name: "Parado no mesmo estágio há mais de 30 dias perde 15 pontos",
			deal: &domain.Deal{
				Amount:            50000,
				Probability:       floatPtr(60),
				CreatedAt:         now.AddDate(0, 0, -40),
				StageChangedAt:    now.AddDate(0, 0, -35),
				ExpectedCloseDate: timePtr(now.AddDate(0, 0, 30)),
			},
			expectedAdjusted: 45,
			expectedFactors:  []string{RiskFactorStageOver30},
		},
		{
			name: "Parado no mesmo estágio há mais de 14 dias perde 5 pontos",
			deal: &domain.Deal{
				Amount:            50000,
				Probability:       floatPtr(60),
				CreatedAt:         now.AddDate(0, 0, -20),
				StageChangedAt:    now.AddDate(0, 0, -16),
				ExpectedCloseDate: timePtr(now.AddDate(0, 0, 30)),
			},
			expectedAdjusted: 55,
			expectedFactors:  []string{RiskFactorStageOver14},
		},
		{
			name: "Fechamento próximo com probabilidade baixa perde 10 pontos",
			deal: &domain.Deal{
				Amount:            50000,
				Probability:       floatPtr(70),
				CreatedAt:         now.AddDate(0, 0, -10),
				StageChangedAt:    now.AddDate(0, 0, -5),
				ExpectedCloseDate: timePtr(now.AddDate(0, 0, 3)),
			},
			expectedAdjusted: 60,
			expectedFactors:  []string{RiskFactorClosingSoon},
		},
		{
			name: "Fechamento próximo com probabilidade alta não penaliza",
			deal: &domain.Deal{
				Amount:            50000,
				Probability:       floatPtr(85),
				CreatedAt:         now.AddDate(0, 0, -10),
				StageChangedAt:    now.AddDate(0, 0, -5),
				ExpectedCloseDate: timePtr(now.AddDate(0, 0, 3)),
			},
			expectedAdjusted: 85,
			expectedFactors:  []string{},
		},
		{
			name: "Valor alto perde 5 pontos",
			deal: &domain.Deal{
				Amount:            150000,
				Probability:       floatPtr(60),
				CreatedAt:         now.AddDate(0, 0, -10),
				StageChangedAt:    now.AddDate(0, 0, -5),
				ExpectedCloseDate: timePtr(now.AddDate(0, 0, 30)),
			},
			expectedAdjusted: 55,
			expectedFactors:  []string{RiskFactorLargeDeal},
		},
		{
			name: "Penalidades acumulam entre categorias",
			deal: &domain.Deal{
				Amount:            150000,
				Probability:       floatPtr(50),
				CreatedAt:         now.AddDate(0, 0, -100),
				StageChangedAt:    now.AddDate(0, 0, -40),
				ExpectedCloseDate: timePtr(now.AddDate(0, 0, 60)),
			},
			// 50 - 10 (idade) - 15 (estágio) - 5 (valor alto)
			expectedAdjusted: 20,
			expectedFactors: []string{
				RiskFactorAgeOver90,
				RiskFactorStageOver30,
				RiskFactorLargeDeal,
			},
		},
		{
			name: "Probabilidade ajustada não fica negativa",
			deal: &domain.Deal{
				Amount:            150000,
				Probability:       floatPtr(5),
				CreatedAt:         now.AddDate(0, 0, -100),
				StageChangedAt:    now.AddDate(0, 0, -40),
				ExpectedCloseDate: timePtr(now.AddDate(0, 0, 2)),
			},
			expectedAdjusted: 0,
			expectedFactors: []string{
				RiskFactorAgeOver90,
				RiskFactorStageOver30,
				RiskFactorClosingSoon,
				RiskFactorLargeDeal,
			},
		},
		{
			name: "Probabilidade ausente é tratada como zero",
			deal: &domain.Deal{
				Amount:            50000,
				Probability:       nil,
				CreatedAt:         now.AddDate(0, 0, -10),
				StageChangedAt:    now.AddDate(0, 0, -5),
				ExpectedCloseDate: timePtr(now.AddDate(0, 0, 30)),
			},
			expectedAdjusted: 0,
			expectedFactors:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			risk := AnalyzeDealRisk(tt.deal, now)

			assert.Equal(t, tt.deal.ProbabilityValue(), risk.BaseProbability)
			assert.Equal(t, tt.expectedAdjusted, risk.AdjustedProbability)
			assert.Equal(t, tt.expectedFactors, risk.RiskFactors)
		})
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}
