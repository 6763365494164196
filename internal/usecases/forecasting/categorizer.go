// Package forecasting implementa o motor de previsão de receita: categorização
// de negócios, cálculo ponderado, análise de risco e previsão ajustada.
package forecasting

import (
	"time"

	"github.com/adamanz/crm-api/internal/domain"
)

// Limites de probabilidade das categorias de previsão
const (
	CommittedThreshold = 90.0
	BestCaseThreshold  = 70.0
	PipelineThreshold  = 20.0
)

// CategorizeProbability determina a categoria de previsão de uma probabilidade.
// Função pura e determinística: p >= 90 committed, 70 <= p < 90 best_case,
// 20 <= p < 70 pipeline, p < 20 omitted.
func CategorizeProbability(probability float64) domain.ForecastCategory {
	switch {
	case probability >= CommittedThreshold:
		return domain.ForecastCategoryCommitted
	case probability >= BestCaseThreshold:
		return domain.ForecastCategoryBestCase
	case probability >= PipelineThreshold:
		return domain.ForecastCategoryPipeline
	default:
		return domain.ForecastCategoryOmitted
	}
}

// FilterDealsInWindow retorna os negócios abertos com data prevista de
// fechamento dentro da janela [start, end]. Negócios sem data prevista são
// excluídos por completo.
func FilterDealsInWindow(deals []*domain.Deal, start, end time.Time) []*domain.Deal {
	filtered := make([]*domain.Deal, 0, len(deals))
	for _, deal := range deals {
		if deal.Status != domain.DealStatusOpen {
			continue
		}
		if deal.ExpectedCloseDate == nil {
			continue
		}
		closeDate := *deal.ExpectedCloseDate
		if closeDate.Before(start) || closeDate.After(end) {
			continue
		}
		filtered = append(filtered, deal)
	}
	return filtered
}

// Categorize agrupa negócios abertos pela probabilidade bruta.
// Probabilidade ausente é tratada como 0.
func Categorize(deals []*domain.Deal) *domain.CategorizedDeals {
	categorized := &domain.CategorizedDeals{
		Committed: make([]*domain.Deal, 0),
		BestCase:  make([]*domain.Deal, 0),
		Pipeline:  make([]*domain.Deal, 0),
		Omitted:   make([]*domain.Deal, 0),
	}

	for _, deal := range deals {
		switch CategorizeProbability(deal.ProbabilityValue()) {
		case domain.ForecastCategoryCommitted:
			categorized.Committed = append(categorized.Committed, deal)
		case domain.ForecastCategoryBestCase:
			categorized.BestCase = append(categorized.BestCase, deal)
		case domain.ForecastCategoryPipeline:
			categorized.Pipeline = append(categorized.Pipeline, deal)
		case domain.ForecastCategoryOmitted:
			categorized.Omitted = append(categorized.Omitted, deal)
		}
	}

	return categorized
}

// SumAmounts soma os valores de um grupo de negócios
func SumAmounts(deals []*domain.Deal) float64 {
	total := 0.0
	for _, deal := range deals {
		total += deal.Amount
	}
	return total
}
