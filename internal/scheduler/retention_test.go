package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/adamanz/crm-api/internal/config"
	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/usecases/compliance/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestRetentionService_RunRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompliance := mocks.NewMockComplianceService(ctrl)

	cfg := &config.Config{
		RetentionCron: config.RetentionCron{
			CronSchedule: "0 2 * * *",
			MaxPerRun:    500,
			Enabled:      true,
		},
	}

	service := NewRetentionService(mockCompliance, cfg)

	tests := []struct {
		name     string
		setup    func()
		validate func(err error)
	}{
		{
			name: "Deve executar a varredura e registrar as execuções",
			setup: func() {
				mockCompliance.EXPECT().RunRetention().Return([]*domain.RetentionRun{
					{
						PolicyID:  "contact-inactive",
						Status:    domain.RetentionRunCompleted,
						Matched:   3,
						Processed: 3,
					},
				}, nil)
			},
			validate: func(err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Deve propagar o erro da varredura",
			setup: func() {
				mockCompliance.EXPECT().RunRetention().Return(nil, errors.New("conexão recusada"))
			},
			validate: func(err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			tt.validate(service.RunRetention())
		})
	}
}

func TestRetentionService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompliance := mocks.NewMockComplianceService(ctrl)

	t.Run("Não deve agendar nada quando desabilitado", func(t *testing.T) {
		cfg := &config.Config{
			RetentionCron: config.RetentionCron{Enabled: false},
		}

		service := NewRetentionService(mockCompliance, cfg)

		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("Deve semear as políticas padrão antes de agendar", func(t *testing.T) {
		cfg := &config.Config{
			RetentionCron: config.RetentionCron{
				CronSchedule: "0 2 * * *",
				Enabled:      true,
			},
		}

		mockCompliance.EXPECT().SeedDefaultPolicies().Return(nil)

		service := NewRetentionService(mockCompliance, cfg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		assert.NoError(t, service.Start(ctx))
	})
}

func TestRetentionService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompliance := mocks.NewMockComplianceService(ctrl)

	cfg := &config.Config{
		RetentionCron: config.RetentionCron{
			CronSchedule: "0 2 * * *",
			MaxPerRun:    500,
			Enabled:      true,
		},
	}

	service := NewRetentionService(mockCompliance, cfg)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 2 * * *", status["sync_cron"])
	assert.Equal(t, 500, status["max_per_run"])
	assert.Contains(t, status, "last_sync_started_at")
	assert.Contains(t, status, "last_sync_completed_at")
}
