package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/usecases/crm"
	"github.com/adamanz/crm-api/pkg/apiErrors"
	"github.com/adamanz/crm-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// handleCRMError traduz erros do caso de uso de CRM em respostas HTTP padronizadas
func handleCRMError(w http.ResponseWriter, err error) {
	var crmErr *crm.CRMError
	if errors.As(err, &crmErr) {
		apiErrors.WriteError(w, crmErr.Code, crmErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}

func CreateContact(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		contact, err := service.CreateContact(&req)
		if err != nil {
			handleCRMError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(contact)
	})
}

func GetContact(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		contact, err := service.GetContact(id)
		if err != nil {
			handleCRMError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(contact)
	})
}

func ListContacts(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := &domain.ContactFilters{}

		if companyID := r.URL.Query().Get("company_id"); companyID != "" {
			filters.CompanyID = &companyID
		}

		if ownerIDStr := r.URL.Query().Get("owner_id"); ownerIDStr != "" {
			ownerID, err := strconv.Atoi(ownerIDStr)
			if err != nil {
				logger.WithFields(log.Fields{
					"owner_id": ownerIDStr,
					"error":    err.Error(),
				}).Warn("contacts: invalid owner_id parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "owner_id inválido", nil)
				return
			}
			filters.OwnerID = &ownerID
		}

		if search := r.URL.Query().Get("search"); search != "" {
			filters.Search = &search
		}

		contacts, err := service.ListContacts(filters)
		if err != nil {
			logger.WithError(err).Error("contacts: failed to list contacts")
			handleCRMError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(contacts); err != nil {
			logger.WithError(err).Error("contacts: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func UpdateContact(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateContactRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = id

		contact, err := service.UpdateContact(&req)
		if err != nil {
			handleCRMError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(contact)
	})
}

func DeleteContact(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteContact(id); err != nil {
			handleCRMError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
