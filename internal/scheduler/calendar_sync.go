package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/adamanz/crm-api/internal/config"
	"github.com/adamanz/crm-api/internal/usecases/calendaring"
	"github.com/sirupsen/logrus"
)

type CalendarSyncConfig struct {
	CronSchedule string
	Enabled      bool
}

// CalendarSyncService agenda a sincronização periódica dos calendários conectados
type CalendarSyncService struct {
	scheduler           *gocron.Scheduler
	calendarService     calendaring.CalendarService
	config              CalendarSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewCalendarSyncService(
	calendarService calendaring.CalendarService,
	cfg *config.Config,
) *CalendarSyncService {
	syncConfig := CalendarSyncConfig{
		CronSchedule: cfg.CalendarSyncCron.CronSchedule, // Default: a cada 30 minutos
		Enabled:      cfg.CalendarSyncCron.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
	}).Info("Configuração do agendador de sincronização de calendários carregada")

	return &CalendarSyncService{
		scheduler:       scheduler,
		calendarService: calendarService,
		config:          syncConfig,
	}
}

func (s *CalendarSyncService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de sincronização de calendários desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de sincronização de calendários")

	// Agendar a sincronização de calendários
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.SyncCalendars(); err != nil {
			logrus.WithError(err).Error("Erro na sincronização de calendários")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização de calendários: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de sincronização de calendários")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *CalendarSyncService) SyncCalendars() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Sincronização de calendários já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando sincronização de calendários")

	if err := s.calendarService.SyncAll(); err != nil {
		logrus.WithError(err).Error("Erro ao sincronizar calendários")
		return err
	}

	logrus.Info("Sincronização de calendários concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma sincronização de calendários
func (s *CalendarSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Sincronização de calendários já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando sincronização manual de calendários")
	go s.SyncCalendars()
}

// GetStatus retorna o status atual do agendador
func (s *CalendarSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
