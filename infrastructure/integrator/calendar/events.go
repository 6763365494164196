package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"
)

type ListEventsParams struct {
	AccessToken string
	CalendarID  string
	SyncToken   string // vazio na primeira sincronização
	PageToken   string
}

// ExternalEvent é um evento na representação do provedor
type ExternalEvent struct {
	ID          string  `json:"id"`
	Summary     string  `json:"summary"`
	Description *string `json:"description"`
	Status      string  `json:"status"` // cancelled marca remoção
	Start       struct {
		DateTime time.Time `json:"dateTime"`
	} `json:"start"`
	End struct {
		DateTime time.Time `json:"dateTime"`
	} `json:"end"`
}

// EventsPage é uma página da listagem incremental de eventos
type EventsPage struct {
	Items         []ExternalEvent `json:"items"`
	NextPageToken string          `json:"nextPageToken"`
	NextSyncToken string          `json:"nextSyncToken"`
}

// ListEvents busca uma página de eventos. Com SyncToken, o provedor devolve
// apenas o delta desde a última sincronização.
func (c *CalendarClient) ListEvents(params ListEventsParams) (*EventsPage, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	calendarID := params.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.CalendarOAuth.APIBaseURL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/calendars/", url.PathEscape(calendarID), "/events")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("singleEvents", "true")
	query.Set("showDeleted", "true")
	if params.SyncToken != "" {
		query.Set("syncToken", params.SyncToken)
	}
	if params.PageToken != "" {
		query.Set("pageToken", params.PageToken)
	}
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	req.Header.Set("Authorization", "Bearer "+params.AccessToken)
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Sync token expirado exige sincronização completa.
	if resp.StatusCode == http.StatusGone {
		return nil, ErrSyncTokenExpired
	}

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	page := &EventsPage{}
	if err := json.NewDecoder(resp.Body).Decode(page); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return page, nil
}
