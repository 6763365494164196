package forecasting

import (
	"time"

	"github.com/adamanz/crm-api/infrastructure/repository"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Limite de previsões encerradas consideradas no relatório de acurácia
const accuracyHistoryLimit = 12

type Forecaster interface {
	ListForecasts() ([]*domain.Forecast, error)
	GetForecast(id string) (*domain.Forecast, error)
	CreateForecast(request *domain.CreateForecastRequest) (*domain.Forecast, error)
	CalculateForecast(id string) (*domain.Forecast, error)
	SnapshotForecast(id string) (*domain.ForecastSnapshot, error)
	GetForecastSnapshots(id string, limit int) ([]*domain.ForecastSnapshot, error)
	GeneratePredictions(id string) (*domain.ForecastPrediction, error)
	GetHistoricalAccuracy() (*domain.ForecastAccuracyResponse, error)
	GetDealsByCategory(id string, category domain.ForecastCategory) ([]*domain.Deal, error)
}

type ForecastService struct {
	DealRepository     repository.DealRepository
	ForecastRepository repository.ForecastRepository
	SnapshotRepository repository.ForecastSnapshotRepository
}

func NewForecastService(
	dealRepository repository.DealRepository,
	forecastRepository repository.ForecastRepository,
	snapshotRepository repository.ForecastSnapshotRepository,
) Forecaster {
	return &ForecastService{
		DealRepository:     dealRepository,
		ForecastRepository: forecastRepository,
		SnapshotRepository: snapshotRepository,
	}
}

func (s *ForecastService) ListForecasts() ([]*domain.Forecast, error) {
	forecasts, err := s.ForecastRepository.ListForecasts()
	if err != nil {
		logrus.Errorf("Erro ao listar previsões: %v", err)
		return nil, NewForecastError(ErrDatabaseOperation, "FORECAST_003", err.Error())
	}
	return forecasts, nil
}

func (s *ForecastService) GetForecast(id string) (*domain.Forecast, error) {
	forecast, err := s.ForecastRepository.GetForecastByID(id)
	if err != nil {
		logrus.Errorf("Erro ao buscar previsão %s: %v", id, err)
		return nil, NewForecastError(ErrDatabaseOperation, "FORECAST_003", err.Error())
	}
	if forecast == nil {
		return nil, NewForecastError(ErrForecastNotFound, "FORECAST_001", "")
	}
	return forecast, nil
}

func (s *ForecastService) CreateForecast(request *domain.CreateForecastRequest) (*domain.Forecast, error) {
	switch request.Period {
	case domain.ForecastPeriodMonthly, domain.ForecastPeriodQuarterly, domain.ForecastPeriodYearly:
	default:
		return nil, NewForecastError(ErrInvalidPeriod, "FORECAST_002", string(request.Period))
	}

	startDate, err := utils.ParseDate(request.StartDate)
	if err != nil {
		return nil, NewForecastError(ErrInvalidDateRange, "FORECAST_002", "data inicial inválida")
	}

	endDate, err := utils.ParseDate(request.EndDate)
	if err != nil {
		return nil, NewForecastError(ErrInvalidDateRange, "FORECAST_002", "data final inválida")
	}

	if !endDate.After(*startDate) {
		return nil, NewForecastError(ErrInvalidDateRange, "FORECAST_002", "a data final deve ser posterior à inicial")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	forecast := &domain.Forecast{
		ID:            id,
		Name:          request.Name,
		Period:        request.Period,
		StartDate:     *startDate,
		EndDate:       *endDate,
		PipelineID:    request.PipelineID,
		TargetRevenue: request.TargetRevenue,
	}

	created, err := s.ForecastRepository.CreateForecast(forecast)
	if err != nil {
		logrus.Errorf("Erro ao criar previsão: %v", err)
		return nil, NewForecastError(ErrDatabaseOperation, "FORECAST_003", err.Error())
	}

	logrus.Infof("Previsão %s criada para o período %s a %s",
		created.ID,
		created.StartDate.Format("2006-01-02"),
		created.EndDate.Format("2006-01-02"),
	)

	return created, nil
}

// CalculateForecast recalcula os agregados da previsão a partir do estado
// atual dos negócios e persiste o resultado
func (s *ForecastService) CalculateForecast(id string) (*domain.Forecast, error) {
	forecast, err := s.GetForecast(id)
	if err != nil {
		return nil, err
	}

	openDeals, closed, err := s.loadWindow(forecast)
	if err != nil {
		return nil, err
	}

	base := CalculateBase(openDeals, closed)
	now := time.Now()

	forecast.Committed = base.Committed
	forecast.BestCase = base.BestCase
	forecast.Pipeline = base.Pipeline
	forecast.Closed = base.Closed
	forecast.PredictedRevenue = base.PredictedRevenue
	forecast.Confidence = base.Confidence
	forecast.LastCalculatedAt = &now

	if err := s.ForecastRepository.UpdateAggregates(forecast); err != nil {
		logrus.Errorf("Erro ao persistir agregados da previsão %s: %v", id, err)
		return nil, NewForecastError(ErrDatabaseOperation, "FORECAST_003", err.Error())
	}

	logrus.Infof("Previsão %s recalculada: receita prevista %.2f, confiança %.2f",
		forecast.ID, forecast.PredictedRevenue, forecast.Confidence)

	return forecast, nil
}

// SnapshotForecast recalcula a previsão e grava uma linha imutável com os
// agregados e as previsões por negócio do momento
func (s *ForecastService) SnapshotForecast(id string) (*domain.ForecastSnapshot, error) {
	forecast, err := s.CalculateForecast(id)
	if err != nil {
		return nil, err
	}

	prediction, err := s.GeneratePredictions(id)
	if err != nil {
		return nil, err
	}

	snapshot := &domain.ForecastSnapshot{
		ForecastID:       forecast.ID,
		SnapshotDate:     time.Now(),
		Committed:        forecast.Committed,
		BestCase:         forecast.BestCase,
		Pipeline:         forecast.Pipeline,
		Closed:           forecast.Closed,
		PredictedRevenue: forecast.PredictedRevenue,
		Confidence:       forecast.Confidence,
		TargetRevenue:    forecast.TargetRevenue,
		Predictions:      prediction.Deals,
	}

	created, err := s.SnapshotRepository.InsertSnapshot(snapshot)
	if err != nil {
		logrus.Errorf("Erro ao gravar snapshot da previsão %s: %v", id, err)
		return nil, NewForecastError(ErrDatabaseOperation, "FORECAST_003", err.Error())
	}

	return created, nil
}

func (s *ForecastService) GetForecastSnapshots(id string, limit int) ([]*domain.ForecastSnapshot, error) {
	if _, err := s.GetForecast(id); err != nil {
		return nil, err
	}

	snapshots, err := s.SnapshotRepository.ListSnapshotsByForecastID(id, limit)
	if err != nil {
		logrus.Errorf("Erro ao listar snapshots da previsão %s: %v", id, err)
		return nil, NewForecastError(ErrDatabaseOperation, "FORECAST_003", err.Error())
	}

	return snapshots, nil
}

// GeneratePredictions executa a previsão ajustada por risco sem persistir
// nada; o resultado reflete apenas o momento da chamada
func (s *ForecastService) GeneratePredictions(id string) (*domain.ForecastPrediction, error) {
	forecast, err := s.GetForecast(id)
	if err != nil {
		return nil, err
	}

	openDeals, closed, err := s.loadWindow(forecast)
	if err != nil {
		return nil, err
	}

	return GeneratePrediction(forecast, openDeals, closed, time.Now()), nil
}

// GetHistoricalAccuracy compara o previsto e o realizado das previsões cujo
// período já terminou
func (s *ForecastService) GetHistoricalAccuracy() (*domain.ForecastAccuracyResponse, error) {
	forecasts, err := s.ForecastRepository.ListClosedForecasts(time.Now(), accuracyHistoryLimit)
	if err != nil {
		logrus.Errorf("Erro ao listar previsões encerradas: %v", err)
		return nil, NewForecastError(ErrDatabaseOperation, "FORECAST_003", err.Error())
	}

	entries := make([]domain.ForecastAccuracyEntry, 0, len(forecasts))
	for _, forecast := range forecasts {
		actual, err := s.DealRepository.SumWonAmountInWindow(
			forecast.StartDate, forecast.EndDate, forecast.PipelineID,
		)
		if err != nil {
			logrus.Errorf("Erro ao somar receita realizada da previsão %s: %v", forecast.ID, err)
			return nil, NewForecastError(ErrDatabaseOperation, "FORECAST_003", err.Error())
		}

		entries = append(entries, AccuracyEntry(forecast, actual))
	}

	return AggregateAccuracy(entries), nil
}

// GetDealsByCategory retorna os negócios da janela cuja probabilidade bruta
// cai na categoria pedida
func (s *ForecastService) GetDealsByCategory(id string, category domain.ForecastCategory) ([]*domain.Deal, error) {
	switch category {
	case domain.ForecastCategoryCommitted, domain.ForecastCategoryBestCase,
		domain.ForecastCategoryPipeline, domain.ForecastCategoryOmitted:
	default:
		return nil, NewForecastError(ErrInvalidCategory, "FORECAST_002", string(category))
	}

	forecast, err := s.GetForecast(id)
	if err != nil {
		return nil, err
	}

	openDeals, _, err := s.loadWindow(forecast)
	if err != nil {
		return nil, err
	}

	return Categorize(openDeals).ByCategory(category), nil
}

// loadWindow carrega os negócios abertos da janela da previsão e a receita já
// fechada no período
func (s *ForecastService) loadWindow(forecast *domain.Forecast) ([]*domain.Deal, float64, error) {
	openDeals, err := s.DealRepository.ListOpenDealsInWindow(
		forecast.StartDate, forecast.EndDate, forecast.PipelineID,
	)
	if err != nil {
		logrus.Errorf("Erro ao listar negócios da previsão %s: %v", forecast.ID, err)
		return nil, 0, NewForecastError(ErrDatabaseOperation, "FORECAST_003", err.Error())
	}

	// Somente negócios abertos com fechamento previsto na janela entram no cálculo
	openDeals = FilterDealsInWindow(openDeals, forecast.StartDate, forecast.EndDate)

	closed, err := s.DealRepository.SumWonAmountInWindow(
		forecast.StartDate, forecast.EndDate, forecast.PipelineID,
	)
	if err != nil {
		logrus.Errorf("Erro ao somar receita fechada da previsão %s: %v", forecast.ID, err)
		return nil, 0, NewForecastError(ErrDatabaseOperation, "FORECAST_003", err.Error())
	}

	return openDeals, closed, nil
}
