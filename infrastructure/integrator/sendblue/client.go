// Package sendblue integra com a API do Sendblue para envio de SMS/iMessage.
package sendblue

import (
	"net/http"
	"time"

	"github.com/adamanz/crm-api/internal/config"
)

type Client interface {
	SendMessage(params SendMessageParams) (*SendMessageResponse, error)
}

type SendblueClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente Sendblue
func NewClient(cfg *config.Config) Client {
	return &SendblueClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
