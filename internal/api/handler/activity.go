package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/usecases/crm"
	"github.com/adamanz/crm-api/pkg/apiErrors"
	"github.com/adamanz/crm-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

func CreateActivity(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateActivityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		activity, err := service.CreateActivity(&req)
		if err != nil {
			handleCRMError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(activity)
	})
}

func ListActivities(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := &domain.ActivityFilters{}

		if contactID := r.URL.Query().Get("contact_id"); contactID != "" {
			filters.ContactID = &contactID
		}

		if dealID := r.URL.Query().Get("deal_id"); dealID != "" {
			filters.DealID = &dealID
		}

		if companyID := r.URL.Query().Get("company_id"); companyID != "" {
			filters.CompanyID = &companyID
		}

		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			limit, err := strconv.Atoi(limitStr)
			if err != nil {
				logger.WithFields(log.Fields{
					"limit": limitStr,
					"error": err.Error(),
				}).Warn("activities: invalid limit parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			filters.Limit = limit
		}

		activities, err := service.ListActivities(filters)
		if err != nil {
			logger.WithError(err).Error("activities: failed to list activities")
			handleCRMError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(activities); err != nil {
			logger.WithError(err).Error("activities: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func CompleteActivity(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.CompleteActivity(id); err != nil {
			handleCRMError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
	})
}
