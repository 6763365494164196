package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/adamanz/crm-api/internal/domain"
	"github.com/adamanz/crm-api/internal/usecases/forecasting"
	"github.com/adamanz/crm-api/pkg/apiErrors"
	"github.com/adamanz/crm-api/pkg/log"
	"github.com/julienschmidt/httprouter"
)

// handleForecastError traduz erros de previsão em respostas HTTP padronizadas
func handleForecastError(w http.ResponseWriter, err error) {
	var forecastErr *forecasting.ForecastError
	if errors.As(err, &forecastErr) {
		apiErrors.WriteError(w, forecastErr.Code, forecastErr.Error(), nil)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
}

func ListForecasts(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		forecasts, err := service.ListForecasts()
		if err != nil {
			handleForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(forecasts)
	})
}

func GetForecast(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		forecast, err := service.GetForecast(id)
		if err != nil {
			handleForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(forecast)
	})
}

func CreateForecast(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req domain.CreateForecastRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		forecast, err := service.CreateForecast(&req)
		if err != nil {
			handleForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(forecast)
	})
}

// CalculateForecast recalcula os agregados da previsão a partir dos negócios
// abertos na janela do período
func CalculateForecast(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		forecast, err := service.CalculateForecast(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"forecast_id": id,
				"error":       err.Error(),
			}).Error("forecast: calculation failed")

			handleForecastError(w, err)
			return
		}

		logger.WithFields(log.Fields{
			"forecast_id": forecast.ID,
			"predicted":   forecast.PredictedRevenue,
			"confidence":  forecast.Confidence,
		}).Info("forecast: calculation completed")

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(forecast)
	})
}

func SnapshotForecast(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		snapshot, err := service.SnapshotForecast(id)
		if err != nil {
			handleForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(snapshot)
	})
}

func GetForecastSnapshots(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		limit := 30
		if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
			parsed, err := strconv.Atoi(limitStr)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit inválido", nil)
				return
			}
			limit = parsed
		}

		snapshots, err := service.GetForecastSnapshots(id, limit)
		if err != nil {
			handleForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshots)
	})
}

func GetForecastPredictions(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		prediction, err := service.GeneratePredictions(id)
		if err != nil {
			handleForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(prediction)
	})
}

func GetForecastAccuracy(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accuracy, err := service.GetHistoricalAccuracy()
		if err != nil {
			handleForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(accuracy)
	})
}

func GetForecastDealsByCategory(service forecasting.Forecaster) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		id := params.ByName("id")
		category := domain.ForecastCategory(params.ByName("category"))

		deals, err := service.GetDealsByCategory(id, category)
		if err != nil {
			handleForecastError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(deals)
	})
}
