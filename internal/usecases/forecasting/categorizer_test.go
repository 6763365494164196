package forecasting

import (
	"testing"
	"time"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestCategorizeProbability(t *testing.T) {
	tests := []struct {
		name        string
		probability float64
		expected    domain.ForecastCategory
	}{
		{
			name:        "Probabilidade 100 é committed",
			probability: 100,
			expected:    domain.ForecastCategoryCommitted,
		},
		{
			name:        "Limite exato de 90 é committed",
			probability: 90,
			expected:    domain.ForecastCategoryCommitted,
		},
		{
			name:        "Logo abaixo de 90 é best_case",
			probability: 89.99,
			expected:    domain.ForecastCategoryBestCase,
		},
		{
			name:        "Limite exato de 70 é best_case",
			probability: 70,
			expected:    domain.ForecastCategoryBestCase,
		},
		{
			name:        "Logo abaixo de 70 é pipeline",
			probability: 69.99,
			expected:    domain.ForecastCategoryPipeline,
		},
		{
			name:        "Limite exato de 20 é pipeline",
			probability: 20,
			expected:    domain.ForecastCategoryPipeline,
		},
		{
			name:        "Logo abaixo de 20 é omitted",
			probability: 19.99,
			expected:    domain.ForecastCategoryOmitted,
		},
		{
			name:        "Probabilidade zero é omitted",
			probability: 0,
			expected:    domain.ForecastCategoryOmitted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CategorizeProbability(tt.probability))
		})
	}
}

func TestFilterDealsInWindow(t *testing.T) {
	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	inWindow := time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC)
	beforeWindow := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)
	afterWindow := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	deals := []*domain.Deal{
		{ID: "DL0001", Status: domain.DealStatusOpen, ExpectedCloseDate: &inWindow},
		{ID: "DL0002", Status: domain.DealStatusOpen, ExpectedCloseDate: &beforeWindow},
		{ID: "DL0003", Status: domain.DealStatusOpen, ExpectedCloseDate: &afterWindow},
		{ID: "DL0004", Status: domain.DealStatusWon, ExpectedCloseDate: &inWindow},
		{ID: "DL0005", Status: domain.DealStatusOpen, ExpectedCloseDate: nil},
		{ID: "DL0006", Status: domain.DealStatusOpen, ExpectedCloseDate: &start},
		{ID: "DL0007", Status: domain.DealStatusOpen, ExpectedCloseDate: &end},
	}

	filtered := FilterDealsInWindow(deals, start, end)

	ids := make([]string, 0, len(filtered))
	for _, deal := range filtered {
		ids = append(ids, deal.ID)
	}

	// Apenas negócios abertos com data prevista dentro da janela, bordas inclusas
	assert.Equal(t, []string{"DL0001", "DL0006", "DL0007"}, ids)
}

func TestCategorize(t *testing.T) {
	deals := []*domain.Deal{
		{ID: "DL0001", Amount: 100000, Probability: floatPtr(95)},
		{ID: "DL0002", Amount: 50000, Probability: floatPtr(75)},
		{ID: "DL0003", Amount: 40000, Probability: floatPtr(50)},
		{ID: "DL0004", Amount: 10000, Probability: floatPtr(10)},
		{ID: "DL0005", Amount: 5000, Probability: nil}, // sem probabilidade vira omitted
	}

	categorized := Categorize(deals)

	assert.Len(t, categorized.Committed, 1)
	assert.Len(t, categorized.BestCase, 1)
	assert.Len(t, categorized.Pipeline, 1)
	assert.Len(t, categorized.Omitted, 2)
	assert.Equal(t, "DL0001", categorized.Committed[0].ID)
	assert.Equal(t, "DL0005", categorized.Omitted[1].ID)
}

func TestSumAmounts(t *testing.T) {
	deals := []*domain.Deal{
		{Amount: 1000.50},
		{Amount: 2000.25},
	}

	assert.Equal(t, 3000.75, SumAmounts(deals))
	assert.Equal(t, 0.0, SumAmounts(nil))
}

func floatPtr(f float64) *float64 {
	return &f
}
