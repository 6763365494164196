// Package scheduler contém os serviços de agendamento das rotinas periódicas
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

type RetentionConfig struct {
	CronSchedule string
	MaxPerRun    int
	Enabled      bool
}

// RetentionService agenda a varredura diária das políticas de retenção
type RetentionService struct {
	scheduler           *gocron.Scheduler
	complianceService   compliance.ComplianceService
	config              RetentionConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewRetentionService(
	complianceService compliance.ComplianceService,
	cfg *config.Config,
) *RetentionService {
	retentionConfig := RetentionConfig{
		CronSchedule: cfg.RetentionCron.CronSchedule, // Default: 2h da manhã todos os dias
		MaxPerRun:    cfg.RetentionCron.MaxPerRun,    // Default: 500 registros por execução
		Enabled:      cfg.RetentionCron.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": retentionConfig.CronSchedule,
		"max_per_run":   retentionConfig.MaxPerRun,
	}).Info("Configuração do agendador de retenção de dados carregada")

	return &RetentionService{
		scheduler:         scheduler,
		complianceService: complianceService,
		config:            retentionConfig,
	}
}

func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron de retenção de dados desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de retenção de dados")

	// Garantir as políticas padrão antes da primeira execução
	if err := s.complianceService.SeedDefaultPolicies(); err != nil {
		logrus.WithError(err).Error("Erro ao semear políticas padrão de retenção")
	}

	// Agendar a varredura de retenção
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunRetention(); err != nil {
			logrus.WithError(err).Error("Erro na varredura de retenção de dados")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de retenção: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de retenção de dados")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *RetentionService) RunRetention() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Varredura de retenção já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando varredura de retenção de dados")

	runs, err := s.complianceService.RunRetention()
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar políticas de retenção")
		return err
	}

	for _, run := range runs {
		logrus.WithFields(logrus.Fields{
			"policy":    run.PolicyID,
			"status":    run.Status,
			"matched":   run.Matched,
			"processed": run.Processed,
			"failed":    run.Failed,
			"skipped":   run.Skipped,
		}).Info("Execução de política de retenção registrada")
	}

	logrus.Info("Varredura de retenção de dados concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma varredura de retenção
func (s *RetentionService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Varredura de retenção já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando varredura manual de retenção de dados")
	go s.RunRetention()
}

// GetStatus retorna o status atual do agendador
func (s *RetentionService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.Enabled,
		"sync_cron":              s.config.CronSchedule,
		"max_per_run":            s.config.MaxPerRun,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
