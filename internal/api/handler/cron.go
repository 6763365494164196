package handler

import (
	"encoding/json"
	"net/http"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/scheduler"
	"github.com/adamanz/crm-api/pkg/apiErrors"
	"github.com/adamanz/crm-api/pkg/middleware"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeRetention    = "retention"
	CronJobTypeDSROverdue   = "dsr-overdue"
	CronJobTypeCalendarSync = "calendar-sync"
	CronJobTypeAll          = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	RetentionService    *scheduler.RetentionService
	DSROverdueService   *scheduler.DSROverdueService
	CalendarSyncService *scheduler.CalendarSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Verificar permissões - apenas administradores podem executar cron jobs
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem executar cron jobs", nil)
			return
		}

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		// Validar o tipo de cron job
		switch cronType {
		case CronJobTypeRetention:
			// Executar varredura de retenção de dados
			if services.RetentionService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de retenção de dados não disponível", nil)
				return
			}
			services.RetentionService.TriggerManualSync()

		case CronJobTypeDSROverdue:
			// Executar checagem de solicitações de dados vencidas
			if services.DSROverdueService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de checagem de solicitações vencidas não disponível", nil)
				return
			}
			services.DSROverdueService.TriggerManualSync()

		case CronJobTypeCalendarSync:
			// Executar sincronização de calendários
			if services.CalendarSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de sincronização de calendários não disponível", nil)
				return
			}
			services.CalendarSyncService.TriggerManualSync()

		case CronJobTypeAll:
			// Executar todas as rotinas
			if services.RetentionService != nil {
				services.RetentionService.TriggerManualSync()
			}
			if services.DSROverdueService != nil {
				services.DSROverdueService.TriggerManualSync()
			}
			if services.CalendarSyncService != nil {
				services.CalendarSyncService.TriggerManualSync()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: retention, dsr-overdue, calendar-sync, all", nil)
			return
		}

		// Responder com sucesso
		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		// Verificar permissões - apenas administradores podem ver status das crons
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok || userClaims.UserRoleID != 1 {
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Apenas administradores podem verificar status de cron jobs", nil)
			return
		}

		status := map[string]any{
			"retention":     services.RetentionService.GetStatus(),
			"dsr-overdue":   services.DSROverdueService.GetStatus(),
			"calendar-sync": services.CalendarSyncService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
