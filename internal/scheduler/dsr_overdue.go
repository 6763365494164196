package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/adamanz/crm-api/internal/config"
	"github.com/adamanz/crm-api/internal/usecases/compliance"
	"github.com/sirupsen/logrus"
)

type DSROverdueConfig struct {
	CronSchedule string
	MaxPerRun    int
	Enabled      bool
}

// DSROverdueService agenda a checagem diária de solicitações de dados vencidas
type DSROverdueService struct {
	scheduler           *gocron.Scheduler
	complianceService   compliance.ComplianceService
	config              DSROverdueConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewDSROverdueService(
	complianceService compliance.ComplianceService,
	cfg *config.Config,
) *DSROverdueService {
	overdueConfig := DSROverdueConfig{
		CronSchedule: cfg.DSRCron.CronSchedule, // Default: 7h da manhã todos os dias
		MaxPerRun:    cfg.DSRCron.MaxPerRun,    // Default: 500 solicitações por execução
		Enabled:      cfg.DSRCron.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": overdueConfig.CronSchedule,
	}).Info("Configuração do agendador de solicitações vencidas carregada")

	return &DSROverdueService{
		scheduler:         scheduler,
		complianceService: complianceService,
		config:            overdueConfig,
	}
}

func (s *DSROverdueService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de solicitações de dados vencidas desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de solicitações de dados vencidas")

	// Agendar a checagem de prazos
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.CheckOverdue(); err != nil {
			logrus.WithError(err).Error("Erro na checagem de solicitações vencidas")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar checagem de solicitações vencidas: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de solicitações de dados vencidas")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DSROverdueService) CheckOverdue() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Checagem de solicitações vencidas já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando checagem de solicitações de dados vencidas")

	marked, err := s.complianceService.CheckOverdueDSRs()
	if err != nil {
		logrus.WithError(err).Error("Erro ao checar solicitações vencidas")
		return err
	}

	logrus.WithField("marked", marked).Info("Checagem de solicitações de dados vencidas concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma checagem de prazos
func (s *DSROverdueService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Checagem de solicitações vencidas já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando checagem manual de solicitações vencidas")
	go s.CheckOverdue()
}

// GetStatus retorna o status atual do agendador
func (s *DSROverdueService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"max_per_run":            s.config.MaxPerRun,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
