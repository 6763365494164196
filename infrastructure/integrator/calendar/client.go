// Package calendar integra com a API do provedor de calendário externo:
// renovação de tokens OAuth e listagem incremental de eventos.
package calendar

import (
	"net/http"
	"time"

	"github.com/adamanz/crm-api/internal/config"
	"golang.org/x/oauth2"
)

type Client interface {
	RefreshToken(refreshToken string) (*oauth2.Token, error)
	ListEvents(params ListEventsParams) (*EventsPage, error)
}

type CalendarClient struct {
	httpClient *http.Client
	oauth      *oauth2.Config
	config     *config.Config
}

// NewClient cria uma nova instância do cliente de calendário
func NewClient(cfg *config.Config) Client {
	return &CalendarClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		oauth: &oauth2.Config{
			ClientID:     cfg.CalendarOAuth.ClientID,
			ClientSecret: cfg.CalendarOAuth.ClientSecret,
			Endpoint: oauth2.Endpoint{
				TokenURL: cfg.CalendarOAuth.TokenURL,
			},
		},
		config: cfg,
	}
}
