package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adamanz/crm-api/internal/api/handler"
	"github.com/adamanz/crm-api/internal/api/handler/router"
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
	"github.com/adamanz/crm-api/pkg/middleware"
	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	authenticator authenticating.Authenticator,
	crmService crm.CRMService,
	dealService pipeline.DealService,
	forecastService forecasting.Forecaster,
	messengerService messaging.Messenger,
	calendarService calendaring.CalendarService,
	complianceService compliance.ComplianceService,
	notifierService webhooking.Notifier,
	retentionService *scheduler.RetentionService,
	dsrOverdueService *scheduler.DSROverdueService,
	calendarSyncService *scheduler.CalendarSyncService,
) (*Server, error) {
	// Inicializar o struct com os serviços de cron jobs
	cronServices := handler.CronJobServices{
		RetentionService:    retentionService,
		DSROverdueService:   dsrOverdueService,
		CalendarSyncService: calendarSyncService,
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.User(authenticator)...),
		router.WithRoutes(handler.Contacts(crmService)...),
		router.WithRoutes(handler.Companies(crmService)...),
		router.WithRoutes(handler.Activities(crmService)...),
		router.WithRoutes(handler.WebForms(crmService)...),
		router.WithRoutes(handler.Deals(dealService)...),
		router.WithRoutes(handler.Forecasts(forecastService)...),
		router.WithRoutes(handler.Messages(messengerService)...),
		router.WithRoutes(handler.Calendars(calendarService)...),
		router.WithRoutes(handler.Webhooks(notifierService)...),
		router.WithRoutes(handler.Compliance(complianceService)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	// Aguardar pelo sinal ou pelo cancelamento do contexto
	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	// Define timeout para desligamento
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Log de início do desligamento
	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	logrus.Info("Executando operações de limpeza antes do desligamento")

	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
