package handler

import (
	"encoding/json"
	"net/http"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/usecases/crm"
	"github.com/adamanz/crm-api/pkg/apiErrors"
	"github.com/adamanz/crm-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

func CreateCompany(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateCompanyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		company, err := service.CreateCompany(&req)
		if err != nil {
			handleCRMError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(company)
	})
}

func GetCompany(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		company, err := service.GetCompany(id)
		if err != nil {
			handleCRMError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(company)
	})
}

func ListCompanies(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		companies, err := service.ListCompanies()
		if err != nil {
			logger.WithError(err).Error("companies: failed to list companies")
			handleCRMError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(companies); err != nil {
			logger.WithError(err).Error("companies: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func UpdateCompany(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateCompanyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = id

		company, err := service.UpdateCompany(&req)
		if err != nil {
			handleCRMError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(company)
	})
}
