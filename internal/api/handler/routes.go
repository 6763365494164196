package handler

import (
	"net/http"

	"github.com/adamanz/crm-api/internal/api/handler/router"
	"github.com/adamanz/crm-api/internal/usecases/authenticating"
	"github.com/adamanz/crm-api/internal/usecases/calendaring"
	"github.com/adamanz/crm-api/internal/usecases/compliance"
	"github.com/adamanz/crm-api/internal/usecases/crm"
	"github.com/adamanz/crm-api/internal/usecases/forecasting"
	"github.com/adamanz/crm-api/internal/usecases/messaging"
	"github.com/adamanz/crm-api/internal/usecases/pipeline"
	"github.com/adamanz/crm-api/internal/usecases/webhooking"
	"github.com/adamanz/crm-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Contacts(service crm.CRMService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/contacts",
			Method:      http.MethodGet,
			Handler:     ListContacts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts",
			Method:      http.MethodPost,
			Handler:     CreateContact(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts/:id",
			Method:      http.MethodGet,
			Handler:     GetContact(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts/:id",
			Method:      http.MethodPut,
			Handler:     UpdateContact(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteContact(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func Companies(service crm.CRMService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/companies",
			Method:      http.MethodGet,
			Handler:     ListCompanies(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies",
			Method:      http.MethodPost,
			Handler:     CreateCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id",
			Method:      http.MethodGet,
			Handler:     GetCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/companies/:id",
			Method:      http.MethodPut,
			Handler:     UpdateCompany(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Activities(service crm.CRMService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/activities",
			Method:      http.MethodGet,
			Handler:     ListActivities(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/activities",
			Method:      http.MethodPost,
			Handler:     CreateActivity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/activities/:id/complete",
			Method:      http.MethodPost,
			Handler:     CompleteActivity(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// WebForms inclui o endpoint público de submissão, autenticado pelo token do
// formulário em vez de JWT
func WebForms(service crm.CRMService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/forms",
			Method:      http.MethodGet,
			Handler:     ListWebForms(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/forms",
			Method:      http.MethodPost,
			Handler:     CreateWebForm(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:    "/v1/forms/:token/submissions",
			Method:  http.MethodPost,
			Handler: SubmitWebForm(service),
		},
	}
}

func Deals(service pipeline.DealService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/deals",
			Method:      http.MethodGet,
			Handler:     ListDeals(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals",
			Method:      http.MethodPost,
			Handler:     CreateDeal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id",
			Method:      http.MethodGet,
			Handler:     GetDeal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id",
			Method:      http.MethodPut,
			Handler:     UpdateDeal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/deals/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteDeal(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/deals/:id/stage",
			Method:      http.MethodPut,
			Handler:     MoveDealStage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/pipeline/stages",
			Method:      http.MethodGet,
			Handler:     ListPipelineStages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/summary",
			Method:      http.MethodGet,
			Handler:     GetDashboardSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Forecasts(service forecasting.Forecaster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/forecasts",
			Method:      http.MethodGet,
			Handler:     ListForecasts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/forecasts",
			Method:      http.MethodPost,
			Handler:     CreateForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/forecasting/accuracy",
			Method:      http.MethodGet,
			Handler:     GetForecastAccuracy(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/forecasts/:id",
			Method:      http.MethodGet,
			Handler:     GetForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/forecasts/:id/calculate",
			Method:      http.MethodPost,
			Handler:     CalculateForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/forecasts/:id/snapshots",
			Method:      http.MethodPost,
			Handler:     SnapshotForecast(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/forecasts/:id/snapshots",
			Method:      http.MethodGet,
			Handler:     GetForecastSnapshots(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/forecasts/:id/predictions",
			Method:      http.MethodGet,
			Handler:     GetForecastPredictions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/forecasts/:id/deals/:category",
			Method:      http.MethodGet,
			Handler:     GetForecastDealsByCategory(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

// Messages inclui o webhook público de entrada do Sendblue
func Messages(service messaging.Messenger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/messages",
			Method:      http.MethodPost,
			Handler:     SendMessage(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/contacts/:id/messages",
			Method:      http.MethodGet,
			Handler:     ListContactMessages(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:    "/v1/messages/inbound",
			Method:  http.MethodPost,
			Handler: ReceiveInboundMessage(service),
		},
	}
}

func Calendars(service calendaring.CalendarService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/calendars",
			Method:      http.MethodGet,
			Handler:     ListCalendarConnections(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calendars",
			Method:      http.MethodPost,
			Handler:     ConnectCalendar(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calendars/:id",
			Method:      http.MethodDelete,
			Handler:     DisconnectCalendar(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calendars/:id/events",
			Method:      http.MethodGet,
			Handler:     ListCalendarEvents(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/calendars/:id/sync",
			Method:      http.MethodPost,
			Handler:     SyncCalendarConnection(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Webhooks(service webhooking.Notifier) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/webhooks",
			Method:      http.MethodGet,
			Handler:     ListWebhookSubscriptions(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/webhooks",
			Method:      http.MethodPost,
			Handler:     CreateWebhookSubscription(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/webhooks/:id",
			Method:      http.MethodDelete,
			Handler:     RemoveWebhookSubscription(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/webhooks/:id/deliveries",
			Method:      http.MethodGet,
			Handler:     ListWebhookDeliveries(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func Compliance(service compliance.ComplianceService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/compliance/policies",
			Method:      http.MethodGet,
			Handler:     ListRetentionPolicies(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/compliance/runs",
			Method:      http.MethodGet,
			Handler:     ListRetentionRuns(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/compliance/requests",
			Method:      http.MethodGet,
			Handler:     ListDSRs(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/compliance/requests",
			Method:      http.MethodPost,
			Handler:     CreateDSR(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/compliance/requests/:id/complete",
			Method:      http.MethodPost,
			Handler:     CompleteDSR(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
