package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/usecases/messaging"
	"github.com/adamanz/crm-api/pkg/apiErrors"
	"github.com/adamanz/crm-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// handleMessageError traduz erros de mensageria em respostas HTTP padronizadas
func handleMessageError(w http.ResponseWriter, err error) {
	var msgErr *messaging.MessageError
	if errors.As(err, &msgErr) {
		apiErrors.WriteError(w, msgErr.Code, msgErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}

func SendMessage(service messaging.Messenger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.SendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		message, err := service.SendMessage(&req)
		if err != nil {
			logger.WithFields(log.Fields{
				"contact_id": req.ContactID,
				"error":      err.Error(),
			}).Error("messages: failed to send message")

			handleMessageError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"message_id": message.ID,
			"contact_id": message.ContactID,
			"status":     message.Status,
		}).Info("messages: outbound message processed")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(message)
	})
}

func ListContactMessages(service messaging.Messenger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contactID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		limit := 50
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		messages, err := service.ListMessages(contactID, limit)
		if err != nil {
			handleMessageError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(messages)
	})
}

// ReceiveInboundMessage é o webhook público chamado pelo Sendblue quando um
// contato responde. Números desconhecidos são rejeitados.
func ReceiveInboundMessage(service messaging.Messenger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var inbound messaging.InboundMessage
		if err := json.NewDecoder(r.Body).Decode(&inbound); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		message, err := service.ReceiveInbound(&inbound)
		if err != nil {
			logger.WithFields(log.Fields{
				"number": inbound.Number,
				"error":  err.Error(),
			}).Warn("messages: inbound message rejected")

			handleMessageError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"message_id": message.ID,
			"contact_id": message.ContactID,
		}).Info("messages: inbound message recorded")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(message)
	})
}
