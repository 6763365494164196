package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/usecases/webhooking"
	"github.com/adamanz/crm-api/pkg/apiErrors"
	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
)

// CreateWebhookSubscription cadastra uma assinatura de eventos. O segredo HMAC
// é retornado apenas nesta resposta.
func CreateWebhookSubscription(service webhooking.Notifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateWebhookRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		subscription, err := service.CreateSubscription(&req)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar assinatura de webhook")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao criar assinatura de webhook", nil)
			return
		}

		// Incluir o segredo apenas na resposta de criação
		response := map[string]any{
			"id":         subscription.ID,
			"url":        subscription.URL,
			"events":     subscription.Events,
			"secret":     subscription.Secret,
			"active":     subscription.Active,
			"created_at": subscription.CreatedAt,
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(response)
	})
}

func ListWebhookSubscriptions(service webhooking.Notifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subscriptions, err := service.ListSubscriptions()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar assinaturas de webhook")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar assinaturas de webhook", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(subscriptions)
	})
}

func RemoveWebhookSubscription(service webhooking.Notifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.RemoveSubscription(id); err != nil {
			logrus.WithError(err).Error("Erro ao remover assinatura de webhook")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao remover assinatura de webhook", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListWebhookDeliveries(service webhooking.Notifier) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		limit := 50
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		deliveries, err := service.ListDeliveries(id, limit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar entregas de webhook")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar entregas de webhook", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(deliveries)
	})
}
