package pipeline

import (
	"errors"
	"testing"

	"github.com/adamanz/crm-api/infrastructure/repository/mocks"
	"github.com/adamanz/crm-api/internal/domain"
	webhookingMocks "github.com/adamanz/crm-api/internal/usecases/webhooking/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCreateDeal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDealRepo := mocks.NewMockDealRepository(ctrl)
	mockNotifier := webhookingMocks.NewMockNotifier(ctrl)

	service := NewPipelineService(mockDealRepo, mockNotifier)

	tests := []struct {
		name     string
		request  *domain.CreateDealRequest
		setup    func()
		validate func(deal *domain.Deal, err error)
	}{
		{
			name:    "Deve rejeitar negócio sem título",
			request: &domain.CreateDealRequest{Amount: 1000},
			setup:   func() {},
			validate: func(deal *domain.Deal, err error) {
				assert.Nil(t, deal)

				var dealErr *DealError
				assert.True(t, errors.As(err, &dealErr))
				assert.Equal(t, "DEAL_002", dealErr.Code)
			},
		},
		{
			name: "Deve rejeitar valor negativo",
			request: &domain.CreateDealRequest{
				Title:  "Negócio inválido",
				Amount: -100,
			},
			setup: func() {},
			validate: func(deal *domain.Deal, err error) {
				assert.Nil(t, deal)

				var dealErr *DealError
				assert.True(t, errors.As(err, &dealErr))
				assert.Equal(t, "DEAL_002", dealErr.Code)
			},
		},
		{
			name: "Deve rejeitar estágio desconhecido",
			request: &domain.CreateDealRequest{
				Title:   "Negócio inválido",
				Amount:  1000,
				StageID: "inexistente",
			},
			setup: func() {},
			validate: func(deal *domain.Deal, err error) {
				assert.Nil(t, deal)

				var dealErr *DealError
				assert.True(t, errors.As(err, &dealErr))
				assert.Equal(t, "DEAL_003", dealErr.Code)
			},
		},
		{
			name: "Deve aplicar estágio, funil e probabilidade padrão",
			request: &domain.CreateDealRequest{
				Title:  "Licenças anuais",
				Amount: 50000,
			},
			setup: func() {
				mockDealRepo.EXPECT().
					CreateDeal(gomock.Any()).
					DoAndReturn(func(deal *domain.Deal) (*domain.Deal, error) {
						return deal, nil
					})
			},
			validate: func(deal *domain.Deal, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, deal.ID)
				assert.Equal(t, "lead", deal.StageID)
				assert.Equal(t, domain.DefaultPipelineID, deal.PipelineID)
				assert.Equal(t, domain.DealStatusOpen, deal.Status)
				assert.NotNil(t, deal.Probability)
				assert.Equal(t, 10.0, *deal.Probability)
			},
		},
		{
			name: "Deve manter a probabilidade informada na requisição",
			request: &domain.CreateDealRequest{
				Title:       "Expansão de contrato",
				Amount:      30000,
				StageID:     "proposal",
				Probability: floatPtr(65),
			},
			setup: func() {
				mockDealRepo.EXPECT().
					CreateDeal(gomock.Any()).
					DoAndReturn(func(deal *domain.Deal) (*domain.Deal, error) {
						return deal, nil
					})
			},
			validate: func(deal *domain.Deal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "proposal", deal.StageID)
				assert.Equal(t, 65.0, *deal.Probability)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			deal, err := service.CreateDeal(tt.request)
			tt.validate(deal, err)
		})
	}
}

func TestMoveDealStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDealRepo := mocks.NewMockDealRepository(ctrl)
	mockNotifier := webhookingMocks.NewMockNotifier(ctrl)

	service := NewPipelineService(mockDealRepo, mockNotifier)

	openDeal := func() *domain.Deal {
		return &domain.Deal{
			ID:          "DL0001",
			Title:       "Licenças anuais",
			PipelineID:  domain.DefaultPipelineID,
			StageID:     "negotiation",
			Amount:      50000,
			Probability: floatPtr(75),
			Status:      domain.DealStatusOpen,
		}
	}

	tests := []struct {
		name     string
		request  *domain.MoveDealStageRequest
		setup    func()
		validate func(deal *domain.Deal, err error)
	}{
		{
			name:    "Deve fechar o negócio como ganho ao mover para closed_won",
			request: &domain.MoveDealStageRequest{DealID: "DL0001", StageID: "closed_won"},
			setup: func() {
				mockDealRepo.EXPECT().GetDealByID("DL0001").Return(openDeal(), nil)
				mockDealRepo.EXPECT().UpdateDeal(gomock.Any()).Return(nil)
				mockNotifier.EXPECT().Emit(domain.WebhookEventDealStageChanged, map[string]interface{}{
					"deal_id":    "DL0001",
					"from_stage": "negotiation",
					"to_stage":   "closed_won",
				})
				mockNotifier.EXPECT().Emit(domain.WebhookEventDealWon, gomock.Any())
			},
			validate: func(deal *domain.Deal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.DealStatusWon, deal.Status)
				assert.Equal(t, "closed_won", deal.StageID)
				assert.Equal(t, 100.0, *deal.Probability)
				assert.NotNil(t, deal.ActualCloseDate)
			},
		},
		{
			name:    "Deve fechar o negócio como perdido ao mover para closed_lost",
			request: &domain.MoveDealStageRequest{DealID: "DL0001", StageID: "closed_lost"},
			setup: func() {
				mockDealRepo.EXPECT().GetDealByID("DL0001").Return(openDeal(), nil)
				mockDealRepo.EXPECT().UpdateDeal(gomock.Any()).Return(nil)
				mockNotifier.EXPECT().Emit(domain.WebhookEventDealStageChanged, gomock.Any())
				mockNotifier.EXPECT().Emit(domain.WebhookEventDealLost, gomock.Any())
			},
			validate: func(deal *domain.Deal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.DealStatusLost, deal.Status)
				assert.Equal(t, 0.0, *deal.Probability)
				assert.NotNil(t, deal.ActualCloseDate)
			},
		},
		{
			name:    "Deve manter o negócio aberto em estágio intermediário",
			request: &domain.MoveDealStageRequest{DealID: "DL0001", StageID: "proposal"},
			setup: func() {
				mockDealRepo.EXPECT().GetDealByID("DL0001").Return(openDeal(), nil)
				mockDealRepo.EXPECT().UpdateDeal(gomock.Any()).Return(nil)
				mockNotifier.EXPECT().Emit(domain.WebhookEventDealStageChanged, gomock.Any())
			},
			validate: func(deal *domain.Deal, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.DealStatusOpen, deal.Status)
				assert.Equal(t, 50.0, *deal.Probability)
				assert.Nil(t, deal.ActualCloseDate)
			},
		},
		{
			name:    "Deve rejeitar movimentação de negócio encerrado",
			request: &domain.MoveDealStageRequest{DealID: "DL0001", StageID: "proposal"},
			setup: func() {
				closedDeal := openDeal()
				closedDeal.Status = domain.DealStatusWon
				mockDealRepo.EXPECT().GetDealByID("DL0001").Return(closedDeal, nil)
			},
			validate: func(deal *domain.Deal, err error) {
				assert.Nil(t, deal)

				var dealErr *DealError
				assert.True(t, errors.As(err, &dealErr))
				assert.Equal(t, "DEAL_005", dealErr.Code)
			},
		},
		{
			name:    "Deve rejeitar estágio destino desconhecido",
			request: &domain.MoveDealStageRequest{DealID: "DL0001", StageID: "inexistente"},
			setup: func() {
				mockDealRepo.EXPECT().GetDealByID("DL0001").Return(openDeal(), nil)
			},
			validate: func(deal *domain.Deal, err error) {
				assert.Nil(t, deal)

				var dealErr *DealError
				assert.True(t, errors.As(err, &dealErr))
				assert.Equal(t, "DEAL_003", dealErr.Code)
			},
		},
		{
			name:    "Deve retornar DEAL_001 quando o negócio não existe",
			request: &domain.MoveDealStageRequest{DealID: "DL0001", StageID: "proposal"},
			setup: func() {
				mockDealRepo.EXPECT().GetDealByID("DL0001").Return(nil, nil)
			},
			validate: func(deal *domain.Deal, err error) {
				assert.Nil(t, deal)

				var dealErr *DealError
				assert.True(t, errors.As(err, &dealErr))
				assert.Equal(t, "DEAL_001", dealErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			deal, err := service.MoveDealStage(tt.request)
			tt.validate(deal, err)
		})
	}
}

func TestGetDashboardSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDealRepo := mocks.NewMockDealRepository(ctrl)
	mockNotifier := webhookingMocks.NewMockNotifier(ctrl)

	service := NewPipelineService(mockDealRepo, mockNotifier)

	stages := []domain.StageSummary{
		{StageID: "lead", StageName: "Lead", DealCount: 2, TotalValue: 30000},
		{StageID: "proposal", StageName: "Proposta", DealCount: 1, TotalValue: 50000},
	}

	openDeals := []*domain.Deal{
		{ID: "DL0001", Amount: 50000, Probability: floatPtr(50)},
		{ID: "DL0002", Amount: 20000, Probability: floatPtr(10)},
		{ID: "DL0003", Amount: 10000, Probability: floatPtr(10)},
	}

	mockDealRepo.EXPECT().GetStageSummaries().Return(stages, nil)
	mockDealRepo.EXPECT().
		ListDeals(&domain.DealFilters{Status: []domain.DealStatus{domain.DealStatusOpen}}).
		Return(openDeals, nil)
	mockDealRepo.EXPECT().
		SumClosedAmountInWindow(domain.DealStatusWon, gomock.Any(), gomock.Any()).
		Return(80000.0, nil)
	mockDealRepo.EXPECT().
		SumClosedAmountInWindow(domain.DealStatusLost, gomock.Any(), gomock.Any()).
		Return(15000.0, nil)

	summary, err := service.GetDashboardSummary()

	assert.NoError(t, err)
	assert.Equal(t, stages, summary.Stages)
	assert.Equal(t, 3, summary.OpenDealCount)
	assert.Equal(t, 80000.0, summary.OpenDealValue)

	// 25000 + 2000 + 1000 ponderados pela probabilidade
	assert.Equal(t, 28000.0, summary.WeightedPipeline)
	assert.Equal(t, 80000.0, summary.WonThisMonth)
	assert.Equal(t, 15000.0, summary.LostThisMonth)
	assert.False(t, summary.GeneratedAt.IsZero())
}

func TestDeleteDeal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDealRepo := mocks.NewMockDealRepository(ctrl)
	mockNotifier := webhookingMocks.NewMockNotifier(ctrl)

	service := NewPipelineService(mockDealRepo, mockNotifier)

	t.Run("Deve excluir o negócio quando existir", func(t *testing.T) {
		mockDealRepo.EXPECT().GetDealByID("DL0001").Return(&domain.Deal{ID: "DL0001"}, nil)
		mockDealRepo.EXPECT().DeleteDeal("DL0001").Return(nil)

		assert.NoError(t, service.DeleteDeal("DL0001"))
	})

	t.Run("Deve retornar DEAL_001 quando o negócio não existe", func(t *testing.T) {
		mockDealRepo.EXPECT().GetDealByID("DL0001").Return(nil, nil)

		err := service.DeleteDeal("DL0001")

		var dealErr *DealError
		assert.True(t, errors.As(err, &dealErr))
		assert.Equal(t, "DEAL_001", dealErr.Code)
	})
}

func floatPtr(f float64) *float64 {
	return &f
}
