package forecasting

import (
	"errors"
	"testing"
	"time"

	"github.com/adamanz/crm-api/infrastructure/repository/mocks"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalculateForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDealRepo := mocks.NewMockDealRepository(ctrl)
	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockForecastSnapshotRepository(ctrl)

	service := NewForecastService(mockDealRepo, mockForecastRepo, mockSnapshotRepo)

	startDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	forecast := &domain.Forecast{
		ID:        "FC0001",
		Name:      "Maio 2024",
		StartDate: startDate,
		EndDate:   endDate,
	}

	closeDate := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	openDeals := []*domain.Deal{
		{ID: "DL0001", Amount: 100000, Probability: floatPtr(95), Status: domain.DealStatusOpen, ExpectedCloseDate: &closeDate},
		{ID: "DL0002", Amount: 50000, Probability: floatPtr(50), Status: domain.DealStatusOpen, ExpectedCloseDate: &closeDate},
	}

	mockForecastRepo.EXPECT().GetForecastByID("FC0001").Return(forecast, nil)
	mockDealRepo.EXPECT().ListOpenDealsInWindow(startDate, endDate, nil).Return(openDeals, nil)
	mockDealRepo.EXPECT().SumWonAmountInWindow(startDate, endDate, nil).Return(20000.0, nil)
	mockForecastRepo.EXPECT().UpdateAggregates(gomock.Any()).Return(nil)

	result, err := service.CalculateForecast("FC0001")

	assert.NoError(t, err)
	assert.Equal(t, 100000.0, result.Committed)
	assert.Equal(t, 0.0, result.BestCase)
	assert.Equal(t, 50000.0, result.Pipeline)
	assert.Equal(t, 20000.0, result.Closed)

	// 95000 + 25000 ponderados + 20000 fechados
	assert.Equal(t, 140000.0, result.PredictedRevenue)
	assert.NotNil(t, result.LastCalculatedAt)
}

func TestSnapshotForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDealRepo := mocks.NewMockDealRepository(ctrl)
	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockForecastSnapshotRepository(ctrl)

	service := NewForecastService(mockDealRepo, mockForecastRepo, mockSnapshotRepo)

	startDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

	forecast := &domain.Forecast{
		ID:            "FC0001",
		Name:          "Maio 2024",
		StartDate:     startDate,
		EndDate:       endDate,
		TargetRevenue: 150000,
	}

	closeDate := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	openDeals := []*domain.Deal{
		{ID: "DL0001", Amount: 100000, Probability: floatPtr(95), Status: domain.DealStatusOpen, ExpectedCloseDate: &closeDate},
		{ID: "DL0002", Amount: 50000, Probability: floatPtr(50), Status: domain.DealStatusOpen, ExpectedCloseDate: &closeDate},
	}

	// O recálculo e a previsão carregam a janela separadamente
	mockForecastRepo.EXPECT().GetForecastByID("FC0001").Return(forecast, nil).Times(3)
	mockDealRepo.EXPECT().ListOpenDealsInWindow(startDate, endDate, nil).Return(openDeals, nil).Times(2)
	mockDealRepo.EXPECT().SumWonAmountInWindow(startDate, endDate, nil).Return(20000.0, nil).Times(2)
	mockForecastRepo.EXPECT().UpdateAggregates(gomock.Any()).Return(nil)
	mockSnapshotRepo.EXPECT().InsertSnapshot(gomock.Any()).DoAndReturn(
		func(snapshot *domain.ForecastSnapshot) (*domain.ForecastSnapshot, error) {
			return snapshot, nil
		},
	)

	snapshot, err := service.SnapshotForecast("FC0001")

	assert.NoError(t, err)
	assert.Equal(t, "FC0001", snapshot.ForecastID)
	assert.WithinDuration(t, time.Now(), snapshot.SnapshotDate, time.Minute)

	// Os agregados congelados batem com os recém-calculados da previsão
	assert.Equal(t, forecast.Committed, snapshot.Committed)
	assert.Equal(t, forecast.BestCase, snapshot.BestCase)
	assert.Equal(t, forecast.Pipeline, snapshot.Pipeline)
	assert.Equal(t, forecast.Closed, snapshot.Closed)
	assert.Equal(t, 100000.0, snapshot.Committed)
	assert.Equal(t, 0.0, snapshot.BestCase)
	assert.Equal(t, 50000.0, snapshot.Pipeline)
	assert.Equal(t, 20000.0, snapshot.Closed)
	assert.Equal(t, 140000.0, snapshot.PredictedRevenue)
	assert.Equal(t, 150000.0, snapshot.TargetRevenue)
	assert.Len(t, snapshot.Predictions, 2)

	// A leitura devolve o snapshot recém-gravado como entrada mais recente
	mockSnapshotRepo.EXPECT().
		ListSnapshotsByForecastID("FC0001", 10).
		Return([]*domain.ForecastSnapshot{snapshot}, nil)

	snapshots, err := service.GetForecastSnapshots("FC0001", 10)

	assert.NoError(t, err)
	assert.Len(t, snapshots, 1)
	assert.Equal(t, snapshot, snapshots[0])
}

func TestGetForecast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDealRepo := mocks.NewMockDealRepository(ctrl)
	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockForecastSnapshotRepository(ctrl)

	service := NewForecastService(mockDealRepo, mockForecastRepo, mockSnapshotRepo)

	tests := []struct {
		name     string
		setup    func()
		validate func(forecast *domain.Forecast, err error)
	}{
		{
			name: "Deve retornar a previsão quando encontrada",
			setup: func() {
				mockForecastRepo.EXPECT().
					GetForecastByID("FC0001").
					Return(&domain.Forecast{ID: "FC0001"}, nil)
			},
			validate: func(forecast *domain.Forecast, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "FC0001", forecast.ID)
			},
		},
		{
			name: "Deve retornar FORECAST_001 quando a previsão não existe",
			setup: func() {
				mockForecastRepo.EXPECT().
					GetForecastByID("FC0001").
					Return(nil, nil)
			},
			validate: func(forecast *domain.Forecast, err error) {
				assert.Nil(t, forecast)

				var forecastErr *ForecastError
				assert.True(t, errors.As(err, &forecastErr))
				assert.Equal(t, "FORECAST_001", forecastErr.Code)
			},
		},
		{
			name: "Deve retornar FORECAST_003 quando o banco falha",
			setup: func() {
				mockForecastRepo.EXPECT().
					GetForecastByID("FC0001").
					Return(nil, errors.New("conexão recusada"))
			},
			validate: func(forecast *domain.Forecast, err error) {
				assert.Nil(t, forecast)

				var forecastErr *ForecastError
				assert.True(t, errors.As(err, &forecastErr))
				assert.Equal(t, "FORECAST_003", forecastErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			forecast, err := service.GetForecast("FC0001")
			tt.validate(forecast, err)
		})
	}
}

func TestGetDealsByCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDealRepo := mocks.NewMockDealRepository(ctrl)
	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockForecastSnapshotRepository(ctrl)

	service := NewForecastService(mockDealRepo, mockForecastRepo, mockSnapshotRepo)

	t.Run("Deve rejeitar categoria desconhecida sem consultar o banco", func(t *testing.T) {
		deals, err := service.GetDealsByCategory("FC0001", domain.ForecastCategory("desconhecida"))

		assert.Nil(t, deals)

		var forecastErr *ForecastError
		assert.True(t, errors.As(err, &forecastErr))
		assert.Equal(t, "FORECAST_002", forecastErr.Code)
	})

	t.Run("Deve retornar apenas os negócios da categoria pedida", func(t *testing.T) {
		startDate := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
		endDate := time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)

		forecast := &domain.Forecast{ID: "FC0001", StartDate: startDate, EndDate: endDate}

		closeDate := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
		openDeals := []*domain.Deal{
			{ID: "DL0001", Amount: 100000, Probability: floatPtr(95), Status: domain.DealStatusOpen, ExpectedCloseDate: &closeDate},
			{ID: "DL0002", Amount: 50000, Probability: floatPtr(75), Status: domain.DealStatusOpen, ExpectedCloseDate: &closeDate},
			{ID: "DL0003", Amount: 40000, Probability: floatPtr(75), Status: domain.DealStatusOpen, ExpectedCloseDate: &closeDate},
		}

		mockForecastRepo.EXPECT().GetForecastByID("FC0001").Return(forecast, nil)
		mockDealRepo.EXPECT().ListOpenDealsInWindow(startDate, endDate, nil).Return(openDeals, nil)
		mockDealRepo.EXPECT().SumWonAmountInWindow(startDate, endDate, nil).Return(0.0, nil)

		deals, err := service.GetDealsByCategory("FC0001", domain.ForecastCategoryBestCase)

		assert.NoError(t, err)
		assert.Len(t, deals, 2)
		assert.Equal(t, "DL0002", deals[0].ID)
		assert.Equal(t, "DL0003", deals[1].ID)
	})
}

func TestGetHistoricalAccuracy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDealRepo := mocks.NewMockDealRepository(ctrl)
	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockForecastSnapshotRepository(ctrl)

	service := NewForecastService(mockDealRepo, mockForecastRepo, mockSnapshotRepo)

	firstStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	firstEnd := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	secondStart := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	secondEnd := time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC)

	closedForecasts := []*domain.Forecast{
		{
			ID:               "FC0001",
			Name:             "Março 2024",
			StartDate:        firstStart,
			EndDate:          firstEnd,
			PredictedRevenue: 100000,
			TargetRevenue:    100000,
		},
		{
			ID:               "FC0002",
			Name:             "Abril 2024",
			StartDate:        secondStart,
			EndDate:          secondEnd,
			PredictedRevenue: 100000,
			TargetRevenue:    200000,
		},
	}

	mockForecastRepo.EXPECT().
		ListClosedForecasts(gomock.Any(), accuracyHistoryLimit).
		Return(closedForecasts, nil)
	mockDealRepo.EXPECT().
		SumWonAmountInWindow(firstStart, firstEnd, nil).
		Return(90000.0, nil)
	mockDealRepo.EXPECT().
		SumWonAmountInWindow(secondStart, secondEnd, nil).
		Return(120000.0, nil)

	response, err := service.GetHistoricalAccuracy()

	assert.NoError(t, err)
	assert.Equal(t, 2, response.ForecastCount)
	assert.Equal(t, 90.0, response.Entries[0].PredictionAccuracy)
	assert.Equal(t, 80.0, response.Entries[1].PredictionAccuracy)

	// Médias: (90 + 80) / 2 e (90 + 60) / 2
	assert.Equal(t, 85.0, response.AvgPredictionAccuracy)
	assert.Equal(t, 75.0, response.AvgTargetAttainment)
}

func TestCreateForecast_ValidacaoDePeriodo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDealRepo := mocks.NewMockDealRepository(ctrl)
	mockForecastRepo := mocks.NewMockForecastRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockForecastSnapshotRepository(ctrl)

	service := NewForecastService(mockDealRepo, mockForecastRepo, mockSnapshotRepo)

	tests := []struct {
		name    string
		request *domain.CreateForecastRequest
	}{
		{
			name: "Deve rejeitar período desconhecido",
			request: &domain.CreateForecastRequest{
				Name:      "Previsão inválida",
				Period:    domain.ForecastPeriod("semanal"),
				StartDate: "2024-05-01",
				EndDate:   "2024-05-31",
			},
		},
		{
			name: "Deve rejeitar data final anterior à inicial",
			request: &domain.CreateForecastRequest{
				Name:      "Previsão inválida",
				Period:    domain.ForecastPeriodMonthly,
				StartDate: "2024-05-31",
				EndDate:   "2024-05-01",
			},
		},
		{
			name: "Deve rejeitar data em formato inválido",
			request: &domain.CreateForecastRequest{
				Name:      "Previsão inválida",
				Period:    domain.ForecastPeriodMonthly,
				StartDate: "01/05/2024",
				EndDate:   "2024-05-31",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast, err := service.CreateForecast(tt.request)

			assert.Nil(t, forecast)

			var forecastErr *ForecastError
			assert.True(t, errors.As(err, &forecastErr))
			assert.Equal(t, "FORECAST_002", forecastErr.Code)
		})
	}
}
