package compliance

import (
	"errors"
	"testing"
	"time"

	"github.com/adamanz/crm-api/infrastructure/repository/mocks"
	"github.com/adamanz/crm-api/internal/config"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newTestConfig() *config.Config {
	return &config.Config{
		RetentionCron: config.RetentionCron{
			MaxPerRun:    2,
			DefaultDays:  730,
			ActivityDays: 1095,
			MessageDays:  365,
		},
		DSRCron: config.DSRCron{
			DueDays:   30,
			MaxPerRun: 10,
		},
	}
}

func TestRunRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRetentionRepo := mocks.NewMockRetentionRepository(ctrl)
	mockDSRRepo := mocks.NewMockDSRRepository(ctrl)
	mockContactRepo := mocks.NewMockContactRepository(ctrl)
	mockActivityRepo := mocks.NewMockActivityRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)

	service := NewComplianceService(
		mockRetentionRepo, mockDSRRepo, mockContactRepo,
		mockActivityRepo, mockMessageRepo, newTestConfig(),
	)

	contactPolicy := &domain.RetentionPolicy{
		ID:            "contact-inactive",
		EntityType:    domain.RetentionEntityContact,
		RetentionDays: 730,
		Action:        domain.RetentionActionAnonymize,
		Active:        true,
	}

	mockRetentionRepo.EXPECT().ListActivePolicies().Return([]*domain.RetentionPolicy{contactPolicy}, nil)

	// Cinco contatos elegíveis, teto de dois por execução
	mockContactRepo.EXPECT().CountInactiveBefore(gomock.Any()).Return(5, nil)
	mockContactRepo.EXPECT().ListInactiveBefore(gomock.Any(), 2).Return([]*domain.Contact{
		{ID: "CT0001"},
		{ID: "CT0002"},
	}, nil)

	mockContactRepo.EXPECT().AnonymizeContact("CT0001").Return(nil)
	mockContactRepo.EXPECT().AnonymizeContact("CT0002").Return(errors.New("contato referenciado"))

	mockRetentionRepo.EXPECT().InsertAuditEntry(gomock.Any()).Return(nil)
	mockRetentionRepo.EXPECT().InsertRun(gomock.Any()).DoAndReturn(
		func(run *domain.RetentionRun) (*domain.RetentionRun, error) {
			return run, nil
		},
	)

	runs, err := service.RunRetention()

	assert.NoError(t, err)
	assert.Len(t, runs, 1)

	run := runs[0]
	assert.Equal(t, "contact-inactive", run.PolicyID)
	assert.Equal(t, 5, run.Matched)
	assert.Equal(t, 3, run.Skipped)
	assert.Equal(t, 1, run.Processed)
	assert.Equal(t, 1, run.Failed)
	assert.Equal(t, domain.RetentionRunPartial, run.Status)
	assert.Len(t, run.Errors, 1)
}

func TestRunRetention_ExclusaoDeAtividades(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRetentionRepo := mocks.NewMockRetentionRepository(ctrl)
	mockDSRRepo := mocks.NewMockDSRRepository(ctrl)
	mockContactRepo := mocks.NewMockContactRepository(ctrl)
	mockActivityRepo := mocks.NewMockActivityRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)

	service := NewComplianceService(
		mockRetentionRepo, mockDSRRepo, mockContactRepo,
		mockActivityRepo, mockMessageRepo, newTestConfig(),
	)

	activityPolicy := &domain.RetentionPolicy{
		ID:            "activity-age",
		EntityType:    domain.RetentionEntityActivity,
		RetentionDays: 1095,
		Action:        domain.RetentionActionDelete,
		Active:        true,
	}

	mockRetentionRepo.EXPECT().ListActivePolicies().Return([]*domain.RetentionPolicy{activityPolicy}, nil)
	mockActivityRepo.EXPECT().CountOlderThan(gomock.Any()).Return(1, nil)
	mockActivityRepo.EXPECT().ListOlderThan(gomock.Any(), 2).Return([]*domain.Activity{{ID: "AC0001"}}, nil)
	mockActivityRepo.EXPECT().DeleteActivity("AC0001").Return(nil)
	mockRetentionRepo.EXPECT().InsertAuditEntry(gomock.Any()).Return(nil)
	mockRetentionRepo.EXPECT().InsertRun(gomock.Any()).DoAndReturn(
		func(run *domain.RetentionRun) (*domain.RetentionRun, error) {
			return run, nil
		},
	)

	runs, err := service.RunRetention()

	assert.NoError(t, err)
	assert.Len(t, runs, 1)
	assert.Equal(t, 1, runs[0].Matched)
	assert.Equal(t, 1, runs[0].Processed)
	assert.Equal(t, 0, runs[0].Skipped)
	assert.Equal(t, domain.RetentionRunCompleted, runs[0].Status)
}

func TestCreateDSR(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRetentionRepo := mocks.NewMockRetentionRepository(ctrl)
	mockDSRRepo := mocks.NewMockDSRRepository(ctrl)
	mockContactRepo := mocks.NewMockContactRepository(ctrl)
	mockActivityRepo := mocks.NewMockActivityRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)

	service := NewComplianceService(
		mockRetentionRepo, mockDSRRepo, mockContactRepo,
		mockActivityRepo, mockMessageRepo, newTestConfig(),
	)

	tests := []struct {
		name     string
		request  *CreateDSRRequest
		setup    func()
		validate func(dsr *domain.DataSubjectRequest, err error)
	}{
		{
			name:    "Deve rejeitar tipo de solicitação desconhecido",
			request: &CreateDSRRequest{ContactID: "CT0001", Type: domain.DSRType("portabilidade")},
			setup:   func() {},
			validate: func(dsr *domain.DataSubjectRequest, err error) {
				assert.Nil(t, dsr)

				var complianceErr *ComplianceError
				assert.True(t, errors.As(err, &complianceErr))
				assert.Equal(t, "COMP_002", complianceErr.Code)
			},
		},
		{
			name:    "Deve rejeitar contato inexistente",
			request: &CreateDSRRequest{ContactID: "CT0001", Type: domain.DSRTypeAccess},
			setup: func() {
				mockContactRepo.EXPECT().GetContactByID("CT0001").Return(nil, nil)
			},
			validate: func(dsr *domain.DataSubjectRequest, err error) {
				assert.Nil(t, dsr)

				var complianceErr *ComplianceError
				assert.True(t, errors.As(err, &complianceErr))
				assert.Equal(t, "COMP_002", complianceErr.Code)
			},
		},
		{
			name:    "Deve abrir a solicitação com prazo configurado",
			request: &CreateDSRRequest{ContactID: "CT0001", Type: domain.DSRTypeErasure},
			setup: func() {
				mockContactRepo.EXPECT().
					GetContactByID("CT0001").
					Return(&domain.Contact{ID: "CT0001"}, nil)
				mockDSRRepo.EXPECT().CreateRequest(gomock.Any()).DoAndReturn(
					func(dsr *domain.DataSubjectRequest) (*domain.DataSubjectRequest, error) {
						return dsr, nil
					},
				)
			},
			validate: func(dsr *domain.DataSubjectRequest, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, dsr.ID)
				assert.Equal(t, domain.DSRStatusOpen, dsr.Status)
				assert.Equal(t, domain.DSRTypeErasure, dsr.Type)
				assert.WithinDuration(t, time.Now().AddDate(0, 0, 30), dsr.DueAt, time.Minute)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			dsr, err := service.CreateDSR(tt.request)
			tt.validate(dsr, err)
		})
	}
}

func TestCompleteDSR(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRetentionRepo := mocks.NewMockRetentionRepository(ctrl)
	mockDSRRepo := mocks.NewMockDSRRepository(ctrl)
	mockContactRepo := mocks.NewMockContactRepository(ctrl)
	mockActivityRepo := mocks.NewMockActivityRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)

	service := NewComplianceService(
		mockRetentionRepo, mockDSRRepo, mockContactRepo,
		mockActivityRepo, mockMessageRepo, newTestConfig(),
	)

	t.Run("Deve anonimizar o contato antes de encerrar solicitação de exclusão", func(t *testing.T) {
		mockDSRRepo.EXPECT().GetRequestByID("DS0001").Return(&domain.DataSubjectRequest{
			ID:        "DS0001",
			ContactID: "CT0001",
			Type:      domain.DSRTypeErasure,
			Status:    domain.DSRStatusOpen,
		}, nil)
		mockContactRepo.EXPECT().AnonymizeContact("CT0001").Return(nil)
		mockDSRRepo.EXPECT().
			UpdateStatus("DS0001", domain.DSRStatusCompleted, gomock.Any()).
			Return(nil)

		assert.NoError(t, service.CompleteDSR("DS0001"))
	})

	t.Run("Deve encerrar solicitação de acesso sem tocar no contato", func(t *testing.T) {
		mockDSRRepo.EXPECT().GetRequestByID("DS0002").Return(&domain.DataSubjectRequest{
			ID:        "DS0002",
			ContactID: "CT0001",
			Type:      domain.DSRTypeAccess,
			Status:    domain.DSRStatusOpen,
		}, nil)
		mockDSRRepo.EXPECT().
			UpdateStatus("DS0002", domain.DSRStatusCompleted, gomock.Any()).
			Return(nil)

		assert.NoError(t, service.CompleteDSR("DS0002"))
	})

	t.Run("Deve retornar COMP_001 quando a solicitação não existe", func(t *testing.T) {
		mockDSRRepo.EXPECT().GetRequestByID("DS0003").Return(nil, nil)

		err := service.CompleteDSR("DS0003")

		var complianceErr *ComplianceError
		assert.True(t, errors.As(err, &complianceErr))
		assert.Equal(t, "COMP_001", complianceErr.Code)
	})
}

func TestCheckOverdueDSRs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRetentionRepo := mocks.NewMockRetentionRepository(ctrl)
	mockDSRRepo := mocks.NewMockDSRRepository(ctrl)
	mockContactRepo := mocks.NewMockContactRepository(ctrl)
	mockActivityRepo := mocks.NewMockActivityRepository(ctrl)
	mockMessageRepo := mocks.NewMockMessageRepository(ctrl)

	service := NewComplianceService(
		mockRetentionRepo, mockDSRRepo, mockContactRepo,
		mockActivityRepo, mockMessageRepo, newTestConfig(),
	)

	overdue := []*domain.DataSubjectRequest{
		{ID: "DS0001", ContactID: "CT0001"},
		{ID: "DS0002", ContactID: "CT0002"},
	}

	// A consulta respeita o teto configurado por execução
	mockDSRRepo.EXPECT().ListOpenPastDue(gomock.Any(), 10).Return(overdue, nil)
	mockDSRRepo.EXPECT().UpdateStatus("DS0001", domain.DSRStatusOverdue, nil).Return(nil)
	mockDSRRepo.EXPECT().
		UpdateStatus("DS0002", domain.DSRStatusOverdue, nil).
		Return(errors.New("conexão recusada"))

	// Falha individual não interrompe a varredura
	marked, err := service.CheckOverdueDSRs()

	assert.NoError(t, err)
	assert.Equal(t, 1, marked)
}
