package forecasting

import (
	"testing"
	"time"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestAccuracyEntry(t *testing.T) {
	endDate := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name               string
		forecast           *domain.Forecast
		actual             float64
		expectedAccuracy   float64
		expectedAttainment float64
	}{
		{
			name: "Realizado abaixo do previsto",
			forecast: &domain.Forecast{
				ID:               "FC0001",
				Name:             "Abril 2024",
				EndDate:          endDate,
				PredictedRevenue: 100000,
				TargetRevenue:    120000,
			},
			actual:             95000,
			expectedAccuracy:   95,
			expectedAttainment: 79.17,
		},
		{
			name: "Realizado acima do previsto",
			forecast: &domain.Forecast{
				ID:               "FC0002",
				Name:             "Maio 2024",
				EndDate:          endDate,
				PredictedRevenue: 100000,
				TargetRevenue:    100000,
			},
			actual:             120000,
			expectedAccuracy:   80,
			expectedAttainment: 120,
		},
		{
			name: "Previsto zerado não divide por zero",
			forecast: &domain.Forecast{
				ID:               "FC0003",
				Name:             "Junho 2024",
				EndDate:          endDate,
				PredictedRevenue: 0,
				TargetRevenue:    50000,
			},
			actual:             10000,
			expectedAccuracy:   0,
			expectedAttainment: 20,
		},
		{
			name: "Meta zerada não divide por zero",
			forecast: &domain.Forecast{
				ID:               "FC0004",
				Name:             "Julho 2024",
				EndDate:          endDate,
				PredictedRevenue: 50000,
				TargetRevenue:    0,
			},
			actual:             50000,
			expectedAccuracy:   100,
			expectedAttainment: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := AccuracyEntry(tt.forecast, tt.actual)

			assert.Equal(t, tt.forecast.ID, entry.ForecastID)
			assert.Equal(t, tt.actual, entry.ActualRevenue)
			assert.Equal(t, tt.expectedAccuracy, entry.PredictionAccuracy)
			assert.Equal(t, tt.expectedAttainment, entry.TargetAttainment)
		})
	}
}

func TestAggregateAccuracy(t *testing.T) {
	entries := []domain.ForecastAccuracyEntry{
		{ForecastID: "FC0001", PredictionAccuracy: 90, TargetAttainment: 110},
		{ForecastID: "FC0002", PredictionAccuracy: 80, TargetAttainment: 70},
	}

	response := AggregateAccuracy(entries)

	assert.Equal(t, 2, response.ForecastCount)
	assert.Equal(t, 85.0, response.AvgPredictionAccuracy)
	assert.Equal(t, 90.0, response.AvgTargetAttainment)
	assert.Equal(t, entries, response.Entries)
}

func TestAggregateAccuracy_SemPrevisoesEncerradas(t *testing.T) {
	response := AggregateAccuracy(nil)

	assert.Equal(t, 0, response.ForecastCount)
	assert.Equal(t, 0.0, response.AvgPredictionAccuracy)
	assert.Equal(t, 0.0, response.AvgTargetAttainment)
}
