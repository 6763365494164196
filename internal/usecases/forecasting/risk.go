package forecasting

import (
	"time"

	"github.com/adamanz/crm-api/internal/domain"
)

// Textos fixos dos fatores de risco, na ordem de avaliação
const (
	RiskFactorAgeOver90     = "Negócio aberto há mais de 90 dias"
	RiskFactorAgeOver60     = "Negócio aberto há mais de 60 dias"
	RiskFactorStageOver30   = "Parado no mesmo estágio há mais de 30 dias"
	RiskFactorStageOver14   = "Parado no mesmo estágio há mais de 14 dias"
	RiskFactorClosingSoon   = "Fechamento em menos de 7 dias com probabilidade baixa"
	RiskFactorLargeDeal     = "Valor alto do negócio aumenta a incerteza"
	largeDealThreshold      = 100000.0
	closingSoonDays         = 7
	closingSoonMaxBaseProba = 80.0
)

// DealRisk é o resultado da análise de risco de um negócio
type DealRisk struct {
	BaseProbability     float64
	AdjustedProbability float64
	RiskFactors         []string
}

// AnalyzeDealRisk aplica penalidades heurísticas independentes sobre a
// probabilidade base. As penalidades acumulam entre categorias; dentro de cada
// categoria (idade, estagnação de estágio) apenas a faixa maior se aplica.
// O resultado é limitado a [0, 100].
func AnalyzeDealRisk(deal *domain.Deal, now time.Time) DealRisk {
	base := deal.ProbabilityValue()
	adjusted := base
	factors := make([]string, 0, 4)

	age := now.Sub(deal.CreatedAt)
	switch {
	case age > 90*24*time.Hour:
		adjusted -= 10
		factors = append(factors, RiskFactorAgeOver90)
	case age > 60*24*time.Hour:
		adjusted -= 5
		factors = append(factors, RiskFactorAgeOver60)
	}

	stageAge := now.Sub(deal.StageChangedAt)
	switch {
	case stageAge > 30*24*time.Hour:
		adjusted -= 15
		factors = append(factors, RiskFactorStageOver30)
	case stageAge > 14*24*time.Hour:
		adjusted -= 5
		factors = append(factors, RiskFactorStageOver14)
	}

	if deal.ExpectedCloseDate != nil {
		untilClose := deal.ExpectedCloseDate.Sub(now)
		if untilClose <= closingSoonDays*24*time.Hour && base < closingSoonMaxBaseProba {
			adjusted -= 10
			factors = append(factors, RiskFactorClosingSoon)
		}
	}

	if deal.Amount > largeDealThreshold {
		adjusted -= 5
		factors = append(factors, RiskFactorLargeDeal)
	}

	return DealRisk{
		BaseProbability:     base,
		AdjustedProbability: clamp(adjusted, 0, 100),
		RiskFactors:         factors,
	}
}
