// Package pipeline gerencia o ciclo de vida dos negócios no funil de vendas:
// criação, transições de estágio, encerramento e o resumo do painel.
package pipeline

import (
	"time"

	"github.com/adamanz/crm-api/infrastructure/repository"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/usecases/forecasting"
	"github.com/adamanz/crm-api/internal/usecases/webhooking"
	"github.com/adamanz/crm-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

type DealService interface {
	CreateDeal(request *domain.CreateDealRequest) (*domain.Deal, error)
	UpdateDeal(request *domain.UpdateDealRequest) (*domain.Deal, error)
	GetDeal(id string) (*domain.Deal, error)
	ListDeals(filters *domain.DealFilters) ([]*domain.Deal, error)
	MoveDealStage(request *domain.MoveDealStageRequest) (*domain.Deal, error)
	DeleteDeal(id string) error
	ListStages() []domain.PipelineStage
	GetDashboardSummary() (*domain.DashboardSummary, error)
}

type PipelineService struct {
	DealRepository repository.DealRepository
	Notifier       webhooking.Notifier
}

func NewPipelineService(
	dealRepository repository.DealRepository,
	notifier webhooking.Notifier,
) DealService {
	return &PipelineService{
		DealRepository: dealRepository,
		Notifier:       notifier,
	}
}

func (s *PipelineService) CreateDeal(request *domain.CreateDealRequest) (*domain.Deal, error) {
	if request.Title == "" {
		return nil, NewDealError(ErrInvalidDeal, "DEAL_002", "o título é obrigatório")
	}
	if request.Amount < 0 {
		return nil, NewDealError(ErrInvalidDeal, "DEAL_002", "o valor não pode ser negativo")
	}

	stageID := request.StageID
	if stageID == "" {
		stageID = domain.PipelineStages[0].ID
	}

	stage, ok := domain.StageByID(stageID)
	if !ok {
		return nil, NewDealError(ErrStageNotFound, "DEAL_003", stageID)
	}

	pipelineID := request.PipelineID
	if pipelineID == "" {
		pipelineID = domain.DefaultPipelineID
	}

	expectedCloseDate, err := parseOptionalDate(request.ExpectedCloseDate)
	if err != nil {
		return nil, NewDealError(ErrInvalidDeal, "DEAL_002", "data prevista de fechamento inválida")
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	// Sem probabilidade explícita, herda a padrão do estágio
	probability := request.Probability
	if probability == nil {
		defaultProbability := stage.DefaultProbability
		probability = &defaultProbability
	}

	deal := &domain.Deal{
		ID:                id,
		Title:             request.Title,
		CompanyID:         request.CompanyID,
		ContactID:         request.ContactID,
		PipelineID:        pipelineID,
		StageID:           stage.ID,
		Amount:            request.Amount,
		Probability:       probability,
		Status:            domain.DealStatusOpen,
		ExpectedCloseDate: expectedCloseDate,
		StageChangedAt:    time.Now(),
		OwnerID:           request.OwnerID,
	}

	created, err := s.DealRepository.CreateDeal(deal)
	if err != nil {
		logrus.Errorf("Erro ao criar negócio: %v", err)
		return nil, NewDealError(ErrDatabaseOperation, "DEAL_004", err.Error())
	}

	logrus.Infof("Negócio %s criado no estágio %s", created.ID, created.StageID)

	return created, nil
}

func (s *PipelineService) UpdateDeal(request *domain.UpdateDealRequest) (*domain.Deal, error) {
	deal, err := s.GetDeal(request.ID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		deal.Title = *request.Title
	}
	if request.CompanyID != nil {
		deal.CompanyID = request.CompanyID
	}
	if request.ContactID != nil {
		deal.ContactID = request.ContactID
	}
	if request.Amount != nil {
		if *request.Amount < 0 {
			return nil, NewDealError(ErrInvalidDeal, "DEAL_002", "o valor não pode ser negativo")
		}
		deal.Amount = *request.Amount
	}
	if request.Probability != nil {
		deal.Probability = request.Probability
	}
	if request.ExpectedCloseDate != nil {
		expectedCloseDate, err := parseOptionalDate(request.ExpectedCloseDate)
		if err != nil {
			return nil, NewDealError(ErrInvalidDeal, "DEAL_002", "data prevista de fechamento inválida")
		}
		deal.ExpectedCloseDate = expectedCloseDate
	}
	if request.OwnerID != nil {
		deal.OwnerID = request.OwnerID
	}

	if err := s.DealRepository.UpdateDeal(deal); err != nil {
		logrus.Errorf("Erro ao atualizar negócio %s: %v", deal.ID, err)
		return nil, NewDealError(ErrDatabaseOperation, "DEAL_004", err.Error())
	}

	return deal, nil
}

func (s *PipelineService) GetDeal(id string) (*domain.Deal, error) {
	deal, err := s.DealRepository.GetDealByID(id)
	if err != nil {
		logrus.Errorf("Erro ao buscar negócio %s: %v", id, err)
		return nil, NewDealError(ErrDatabaseOperation, "DEAL_004", err.Error())
	}
	if deal == nil {
		return nil, NewDealError(ErrDealNotFound, "DEAL_001", "")
	}
	return deal, nil
}

func (s *PipelineService) ListDeals(filters *domain.DealFilters) ([]*domain.Deal, error) {
	deals, err := s.DealRepository.ListDeals(filters)
	if err != nil {
		logrus.Errorf("Erro ao listar negócios: %v", err)
		return nil, NewDealError(ErrDatabaseOperation, "DEAL_004", err.Error())
	}
	return deals, nil
}

// MoveDealStage move o negócio para outro estágio do funil. A probabilidade
// passa a ser a padrão do estágio destino e estágios terminais encerram o
// negócio, registrando a data real de fechamento.
func (s *PipelineService) MoveDealStage(request *domain.MoveDealStageRequest) (*domain.Deal, error) {
	deal, err := s.GetDeal(request.DealID)
	if err != nil {
		return nil, err
	}

	if deal.Status != domain.DealStatusOpen {
		return nil, NewDealError(ErrDealClosed, "DEAL_005", string(deal.Status))
	}

	stage, ok := domain.StageByID(request.StageID)
	if !ok {
		return nil, NewDealError(ErrStageNotFound, "DEAL_003", request.StageID)
	}

	previousStageID := deal.StageID
	now := time.Now()

	deal.StageID = stage.ID
	deal.StageChangedAt = now
	defaultProbability := stage.DefaultProbability
	deal.Probability = &defaultProbability

	switch {
	case stage.IsWon:
		deal.Status = domain.DealStatusWon
		deal.ActualCloseDate = &now
	case stage.IsLost:
		deal.Status = domain.DealStatusLost
		deal.ActualCloseDate = &now
	}

	if err := s.DealRepository.UpdateDeal(deal); err != nil {
		logrus.Errorf("Erro ao mover negócio %s para o estágio %s: %v", deal.ID, stage.ID, err)
		return nil, NewDealError(ErrDatabaseOperation, "DEAL_004", err.Error())
	}

	logrus.Infof("Negócio %s movido de %s para %s", deal.ID, previousStageID, stage.ID)

	s.Notifier.Emit(domain.WebhookEventDealStageChanged, map[string]interface{}{
		"deal_id":    deal.ID,
		"from_stage": previousStageID,
		"to_stage":   stage.ID,
	})

	switch deal.Status {
	case domain.DealStatusWon:
		s.Notifier.Emit(domain.WebhookEventDealWon, deal)
	case domain.DealStatusLost:
		s.Notifier.Emit(domain.WebhookEventDealLost, deal)
	}

	return deal, nil
}

func (s *PipelineService) DeleteDeal(id string) error {
	if _, err := s.GetDeal(id); err != nil {
		return err
	}

	if err := s.DealRepository.DeleteDeal(id); err != nil {
		logrus.Errorf("Erro ao excluir negócio %s: %v", id, err)
		return NewDealError(ErrDatabaseOperation, "DEAL_004", err.Error())
	}

	return nil
}

func (s *PipelineService) ListStages() []domain.PipelineStage {
	return domain.PipelineStages
}

// GetDashboardSummary agrega o funil aberto e os fechamentos do mês corrente
func (s *PipelineService) GetDashboardSummary() (*domain.DashboardSummary, error) {
	stages, err := s.DealRepository.GetStageSummaries()
	if err != nil {
		logrus.Errorf("Erro ao agregar estágios do painel: %v", err)
		return nil, NewDealError(ErrDatabaseOperation, "DEAL_004", err.Error())
	}

	openDeals, err := s.DealRepository.ListDeals(&domain.DealFilters{
		Status: []domain.DealStatus{domain.DealStatusOpen},
	})
	if err != nil {
		logrus.Errorf("Erro ao listar negócios abertos do painel: %v", err)
		return nil, NewDealError(ErrDatabaseOperation, "DEAL_004", err.Error())
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	won, err := s.DealRepository.SumClosedAmountInWindow(domain.DealStatusWon, monthStart, monthEnd)
	if err != nil {
		return nil, NewDealError(ErrDatabaseOperation, "DEAL_004", err.Error())
	}

	lost, err := s.DealRepository.SumClosedAmountInWindow(domain.DealStatusLost, monthStart, monthEnd)
	if err != nil {
		return nil, NewDealError(ErrDatabaseOperation, "DEAL_004", err.Error())
	}

	summary := &domain.DashboardSummary{
		Stages:           stages,
		OpenDealCount:    len(openDeals),
		OpenDealValue:    utils.RoundWithTwoDecimalPlace(forecasting.SumAmounts(openDeals)),
		WeightedPipeline: utils.RoundWithTwoDecimalPlace(forecasting.WeightedPipelineValue(openDeals)),
		WonThisMonth:     utils.RoundWithTwoDecimalPlace(won),
		LostThisMonth:    utils.RoundWithTwoDecimalPlace(lost),
		GeneratedAt:      now,
	}

	return summary, nil
}

// parseOptionalDate interpreta uma data opcional no formato 2006-01-02.
// Strings vazias limpam o campo.
func parseOptionalDate(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}

	date, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, err
	}

	return &date, nil
}
