package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adamanz/crm-api/infrastructure/database/postgres"
	calendarclient "github.com/adamanz/crm-api/infrastructure/integrator/calendar"
	"github.com/adamanz/crm-api/infrastructure/integrator/sendblue"
	"github.com/adamanz/crm-api/infrastructure/repository"
	"github.com/adamanz/crm-api/internal/api"
	"github.com/adamanz/crm-api/internal/config"
	"github.com/adamanz/crm-api/internal/scheduler"
	"github.com/adamanz/crm-api/internal/usecases/authenticating"
	"github.com/adamanz/crm-api/internal/usecases/calendaring"
	"github.com/adamanz/crm-api/internal/usecases/compliance"
	"github.com/adamanz/crm-api/internal/usecases/crm"
	"github.com/adamanz/crm-api/internal/usecases/forecasting"
	"github.com/adamanz/crm-api/internal/usecases/messaging"
	"github.com/adamanz/crm-api/internal/usecases/pipeline"
	"github.com/adamanz/crm-api/internal/usecases/webhooking"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	contactRepo := repository.NewContactRepository(pgConn)
	companyRepo := repository.NewCompanyRepository(pgConn)
	activityRepo := repository.NewActivityRepository(pgConn)
	dealRepo := repository.NewDealRepository(pgConn)
	forecastRepo := repository.NewForecastRepository(pgConn)
	snapshotRepo := repository.NewForecastSnapshotRepository(pgConn)
	webFormRepo := repository.NewWebFormRepository(pgConn)
	messageRepo := repository.NewMessageRepository(pgConn)
	calendarRepo := repository.NewCalendarRepository(pgConn)
	retentionRepo := repository.NewRetentionRepository(pgConn)
	dsrRepo := repository.NewDSRRepository(pgConn)
	webhookRepo := repository.NewWebhookRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	// O notificador de webhooks é compartilhado pelos casos de uso que emitem eventos
	notifier := webhooking.NewWebhookService(webhookRepo)

	crmService := crm.NewService(contactRepo, companyRepo, activityRepo, webFormRepo, notifier)
	dealService := pipeline.NewPipelineService(dealRepo, notifier)
	forecastService := forecasting.NewForecastService(dealRepo, forecastRepo, snapshotRepo)

	sendblueClient := sendblue.NewClient(cfg)
	messengerService := messaging.NewMessagingService(messageRepo, contactRepo, sendblueClient, notifier, cfg)

	calendarClient := calendarclient.NewClient(cfg)
	calendarService := calendaring.NewCalendarService(calendarRepo, calendarClient)

	complianceService := compliance.NewComplianceService(
		retentionRepo,
		dsrRepo,
		contactRepo,
		activityRepo,
		messageRepo,
		cfg,
	)

	// Inicializa os agendadores das rotinas periódicas
	retentionService := scheduler.NewRetentionService(complianceService, cfg)
	dsrOverdueService := scheduler.NewDSROverdueService(complianceService, cfg)
	calendarSyncService := scheduler.NewCalendarSyncService(calendarService, cfg)

	// Inicia os agendadores em background
	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção de dados")
	} else {
		logrus.Info("Agendador de retenção de dados iniciado com sucesso")
	}

	if err := dsrOverdueService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de solicitações de dados vencidas")
	} else {
		logrus.Info("Agendador de solicitações de dados vencidas iniciado com sucesso")
	}

	if err := calendarSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de calendários")
	} else {
		logrus.Info("Agendador de sincronização de calendários iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		authenticator,
		crmService,
		dealService,
		forecastService,
		messengerService,
		calendarService,
		complianceService,
		notifier,
		retentionService,
		dsrOverdueService,
		calendarSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
