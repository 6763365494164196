package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/adamanz/crm-api/internal/usecases/calendaring"
	"github.com/adamanz/crm-api/pkg/apiErrors"
	"github.com/adamanz/crm-api/pkg/log"
	"github.com/adamanz/crm-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
)

// handleCalendarError traduz erros de calendário em respostas HTTP padronizadas
func handleCalendarError(w http.ResponseWriter, err error) {
	var calErr *calendaring.CalendarError
	if errors.As(err, &calErr) {
		apiErrors.WriteError(w, calErr.Code, calErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}

func ConnectCalendar(service calendaring.CalendarService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req calendaring.ConnectCalendarRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		connection, err := service.ConnectCalendar(&req)
		if err != nil {
			handleCalendarError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(connection)
	})
}

func ListCalendarConnections(service calendaring.CalendarService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		connections, err := service.ListConnections()
		if err != nil {
			handleCalendarError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(connections)
	})
}

func DisconnectCalendar(service calendaring.CalendarService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DisconnectCalendar(id); err != nil {
			handleCalendarError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListCalendarEvents(service calendaring.CalendarService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		// Janela padrão: dos últimos 7 dias até 30 dias à frente
		from := time.Now().AddDate(0, 0, -7)
		to := time.Now().AddDate(0, 0, 30)

		if fromStr := r.URL.Query().Get("from"); fromStr != "" {
			parsed, err := utils.ParseDate(fromStr)
			if err != nil {
				logger.WithFields(log.Fields{
					"from":  fromStr,
					"error": err.Error(),
				}).Warn("calendar: invalid from parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "from inválido", nil)
				return
			}
			from = *parsed
		}

		if toStr := r.URL.Query().Get("to"); toStr != "" {
			parsed, err := utils.ParseDate(toStr)
			if err != nil {
				logger.WithFields(log.Fields{
					"to":    toStr,
					"error": err.Error(),
				}).Warn("calendar: invalid to parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "to inválido", nil)
				return
			}
			to = *parsed
		}

		events, err := service.ListEvents(id, from, to)
		if err != nil {
			logger.WithError(err).Error("calendar: failed to list events")
			handleCalendarError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(events); err != nil {
			logger.WithError(err).Error("calendar: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// SyncCalendarConnection dispara a sincronização imediata de uma conexão
func SyncCalendarConnection(service calendaring.CalendarService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.SyncConnection(id); err != nil {
			logger.WithFields(log.Fields{
				"connection_id": id,
				"error":         err.Error(),
			}).Error("calendar: sync failed")

			handleCalendarError(w, err)
			return
		}

		logger.WithField("connection_id", id).Info("calendar: sync completed")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Sincronização concluída com sucesso",
		})
	})
}
