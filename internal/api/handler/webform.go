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

func CreateWebForm(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateWebFormRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		form, err := service.CreateWebForm(&req)
		if err != nil {
			handleCRMError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(form)
	})
}

func ListWebForms(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forms, err := service.ListWebForms()
		if err != nil {
			handleCRMError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(forms)
	})
}

// SubmitWebForm é o endpoint público de captura de leads. A autenticação é
// feita pelo token do formulário presente na URL.
func SubmitWebForm(service crm.CRMService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		token := httprouter.ParamsFromContext(r.Context()).ByName("token")

		var submission domain.WebFormSubmission
		if err := json.NewDecoder(r.Body).Decode(&submission); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		contact, err := service.SubmitWebForm(token, &submission)
		if err != nil {
			logger.WithFields(log.Fields{
				"token": token,
				"error": err.Error(),
			}).Warn("webforms: submission rejected")

			handleCRMError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"token":      token,
			"contact_id": contact.ID,
		}).Info("webforms: submission accepted")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{
			"contact_id": contact.ID,
		})
	})
}
