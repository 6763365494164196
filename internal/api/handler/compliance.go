package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/usecases/compliance"
	"github.com/adamanz/crm-api/pkg/apiErrors"
	"github.com/adamanz/crm-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// handleComplianceError traduz erros de conformidade em respostas HTTP padronizadas
func handleComplianceError(w http.ResponseWriter, err error) {
	var compErr *compliance.ComplianceError
	if errors.As(err, &compErr) {
		apiErrors.WriteError(w, compErr.Code, compErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}

func ListRetentionPolicies(service compliance.ComplianceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		policies, err := service.ListPolicies()
		if err != nil {
			handleComplianceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(policies)
	})
}

func ListRetentionRuns(service compliance.ComplianceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := 30
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		runs, err := service.ListRuns(limit)
		if err != nil {
			handleComplianceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(runs)
	})
}

func CreateDSR(service compliance.ComplianceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req compliance.CreateDSRRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		request, err := service.CreateDSR(&req)
		if err != nil {
			logger.WithFields(log.Fields{
				"contact_id": req.ContactID,
				"type":       req.Type,
				"error":      err.Error(),
			}).Warn("compliance: data subject request rejected")

			handleComplianceError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"request_id": request.ID,
			"contact_id": request.ContactID,
			"due_at":     request.DueAt,
		}).Info("compliance: data subject request created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(request)
	})
}

func ListDSRs(service compliance.ComplianceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var status *domain.DSRStatus
		if statusStr := r.URL.Query().Get("status"); statusStr != "" {
			s := domain.DSRStatus(statusStr)
			status = &s
		}

		requests, err := service.ListDSRs(status)
		if err != nil {
			handleComplianceError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(requests)
	})
}

// CompleteDSR conclui uma solicitação de dados. Solicitações de exclusão
// anonimizam o contato antes da conclusão.
func CompleteDSR(service compliance.ComplianceService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.CompleteDSR(id); err != nil {
			logger.WithFields(log.Fields{
				"request_id": id,
				"error":      err.Error(),
			}).Error("compliance: failed to complete data subject request")

			handleComplianceError(w, err)
			return
		}

		logger.WithField("request_id", id).Info("compliance: data subject request completed")

		w.WriteHeader(http.StatusOK)
	})
}
