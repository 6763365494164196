package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/adamanz/crm-api/internal/config"
	"github.com/adamanz/crm-api/internal/usecases/compliance/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDSROverdueService_CheckOverdue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompliance := mocks.NewMockComplianceService(ctrl)

	cfg := &config.Config{
		DSRCron: config.DSRCron{
			CronSchedule: "0 7 * * *",
			Enabled:      true,
		},
	}

	service := NewDSROverdueService(mockCompliance, cfg)

	tests := []struct {
		name     string
		setup    func()
		validate func(err error)
	}{
		{
			name: "Deve concluir a checagem com solicitações marcadas",
			setup: func() {
				mockCompliance.EXPECT().CheckOverdueDSRs().Return(2, nil)
			},
			validate: func(err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Deve propagar o erro da checagem",
			setup: func() {
				mockCompliance.EXPECT().CheckOverdueDSRs().Return(0, errors.New("conexão recusada"))
			},
			validate: func(err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			tt.validate(service.CheckOverdue())
		})
	}
}

func TestDSROverdueService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompliance := mocks.NewMockComplianceService(ctrl)

	t.Run("Não deve agendar nada quando desabilitado", func(t *testing.T) {
		cfg := &config.Config{
			DSRCron: config.DSRCron{Enabled: false},
		}

		service := NewDSROverdueService(mockCompliance, cfg)

		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("Deve agendar a checagem quando habilitado", func(t *testing.T) {
		cfg := &config.Config{
			DSRCron: config.DSRCron{
				CronSchedule: "0 7 * * *",
				Enabled:      true,
			},
		}

		service := NewDSROverdueService(mockCompliance, cfg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		assert.NoError(t, service.Start(ctx))
	})
}

func TestDSROverdueService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCompliance := mocks.NewMockComplianceService(ctrl)

	cfg := &config.Config{
		DSRCron: config.DSRCron{
			CronSchedule: "0 7 * * *",
			MaxPerRun:    500,
			Enabled:      false,
		},
	}

	service := NewDSROverdueService(mockCompliance, cfg)

	status := service.GetStatus()

	assert.Equal(t, false, status["sync_enabled"])
	assert.Equal(t, "0 7 * * *", status["sync_cron"])
	assert.Equal(t, 500, status["max_per_run"])
	assert.Contains(t, status, "last_sync_started_at")
	assert.Contains(t, status, "last_sync_completed_at")
}
