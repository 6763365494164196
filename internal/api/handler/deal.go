package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/usecases/pipeline"
	"github.com/adamanz/crm-api/pkg/apiErrors"
	"github.com/adamanz/crm-api/pkg/log"
	"github.com/adamanz/crm-api/pkg/utils"
	"github.com/julienschmidt/httprouter"
)

// handleDealError traduz erros do funil de vendas em respostas HTTP padronizadas
func handleDealError(w http.ResponseWriter, err error) {
	var dealErr *pipeline.DealError
	if errors.As(err, &dealErr) {
		apiErrors.WriteError(w, dealErr.Code, dealErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}

func CreateDeal(service pipeline.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateDealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		deal, err := service.CreateDeal(&req)
		if err != nil {
			handleDealError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(deal)
	})
}

func GetDeal(service pipeline.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		deal, err := service.GetDeal(id)
		if err != nil {
			handleDealError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(deal)
	})
}

func ListDeals(service pipeline.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := &domain.DealFilters{}

		if startDateStr := r.URL.Query().Get("start_date"); startDateStr != "" {
			startDate, err := utils.ParseDate(startDateStr)
			if err != nil {
				logger.WithFields(log.Fields{
					"start_date": startDateStr,
					"error":      err.Error(),
				}).Warn("deals: invalid start_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválida", nil)
				return
			}
			filters.StartDate = startDate
		}

		if endDateStr := r.URL.Query().Get("end_date"); endDateStr != "" {
			endDate, err := utils.ParseDate(endDateStr)
			if err != nil {
				logger.WithFields(log.Fields{
					"end_date": endDateStr,
					"error":    err.Error(),
				}).Warn("deals: invalid end_date parameter")

				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválida", nil)
				return
			}
			filters.EndDate = endDate
		}

		if pipelineID := r.URL.Query().Get("pipeline_id"); pipelineID != "" {
			filters.PipelineID = &pipelineID
		}

		if status := r.URL.Query().Get("status"); status != "" {
			filters.Status = []domain.DealStatus{domain.DealStatus(status)}
		}

		deals, err := service.ListDeals(filters)
		if err != nil {
			logger.WithError(err).Error("deals: failed to list deals")
			handleDealError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(deals); err != nil {
			logger.WithError(err).Error("deals: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func UpdateDeal(service pipeline.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.UpdateDealRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.ID = id

		deal, err := service.UpdateDeal(&req)
		if err != nil {
			handleDealError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(deal)
	})
}

// MoveDealStage move um negócio para outro estágio do funil. Estágios de
// fechamento resolvem o negócio como ganho ou perdido.
func MoveDealStage(service pipeline.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var req domain.MoveDealStageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}
		req.DealID = id

		deal, err := service.MoveDealStage(&req)
		if err != nil {
			logger.WithFields(log.Fields{
				"deal_id":  id,
				"stage_id": req.StageID,
				"error":    err.Error(),
			}).Warn("deals: stage transition rejected")

			handleDealError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"deal_id":  deal.ID,
			"stage_id": deal.StageID,
			"status":   deal.Status,
		}).Info("deals: stage transition applied")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(deal)
	})
}

func DeleteDeal(service pipeline.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteDeal(id); err != nil {
			handleDealError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func ListPipelineStages(service pipeline.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.ListStages())
	})
}

func GetDashboardSummary(service pipeline.DealService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary, err := service.GetDashboardSummary()
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to build summary")
			handleDealError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
