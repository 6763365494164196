package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/adamanz/crm-api/internal/config"
	"github.com/adamanz/crm-api/internal/usecases/calendaring/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCalendarSyncService_SyncCalendars(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCalendar := mocks.NewMockCalendarService(ctrl)

	cfg := &config.Config{
		CalendarSyncCron: config.CalendarSyncCron{
			CronSchedule: "*/30 * * * *",
			Enabled:      true,
		},
	}

	service := NewCalendarSyncService(mockCalendar, cfg)

	tests := []struct {
		name     string
		setup    func()
		validate func(err error)
	}{
		{
			name: "Deve sincronizar todas as conexões",
			setup: func() {
				mockCalendar.EXPECT().SyncAll().Return(nil)
			},
			validate: func(err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Deve propagar o erro da sincronização",
			setup: func() {
				mockCalendar.EXPECT().SyncAll().Return(errors.New("quota excedida"))
			},
			validate: func(err error) {
				assert.Error(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			tt.validate(service.SyncCalendars())
		})
	}
}

func TestCalendarSyncService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCalendar := mocks.NewMockCalendarService(ctrl)

	t.Run("Não deve agendar nada quando desabilitado", func(t *testing.T) {
		cfg := &config.Config{
			CalendarSyncCron: config.CalendarSyncCron{Enabled: false},
		}

		service := NewCalendarSyncService(mockCalendar, cfg)

		assert.NoError(t, service.Start(context.Background()))
	})

	t.Run("Deve agendar a sincronização quando habilitado", func(t *testing.T) {
		cfg := &config.Config{
			CalendarSyncCron: config.CalendarSyncCron{
				CronSchedule: "0 3 * * *",
				Enabled:      true,
			},
		}

		service := NewCalendarSyncService(mockCalendar, cfg)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		assert.NoError(t, service.Start(ctx))
	})
}

func TestCalendarSyncService_GetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCalendar := mocks.NewMockCalendarService(ctrl)

	cfg := &config.Config{
		CalendarSyncCron: config.CalendarSyncCron{
			CronSchedule: "*/30 * * * *",
			Enabled:      true,
		},
	}

	service := NewCalendarSyncService(mockCalendar, cfg)

	status := service.GetStatus()

	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "*/30 * * * *", status["sync_cron"])
	assert.Contains(t, status, "last_sync_started_at")
	assert.Contains(t, status, "last_sync_completed_at")
}
