package domain

import "time"

type CalendarConnectionStatus string

const (
	CalendarConnectionConnected CalendarConnectionStatus = "connected"
	CalendarConnectionError     CalendarConnectionStatus = "error"
)

// CalendarConnection guarda as credenciais OAuth e o cursor de sincronização
// de um calendário externo vinculado a um usuário
type CalendarConnection struct {
	ID             string                   `json:"id"`
	UserID         int                      `json:"user_id"`
	Provider       string                   `json:"provider"` // google, outlook
	Email          string                   `json:"email"`
	AccessToken    string                   `json:"-"`
	RefreshToken   string                   `json:"-"`
	TokenExpiresAt time.Time                `json:"token_expires_at"`
	SyncToken      *string                  `json:"-"` // cursor de paginação incremental do provedor
	Status         CalendarConnectionStatus `json:"status"`
	LastError      *string                  `json:"last_error"`
	LastSyncedAt   *time.Time               `json:"last_synced_at"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

// CalendarEvent é a cópia local de um evento do calendário externo,
// reconciliada a cada sincronização
type CalendarEvent struct {
	ID           string     `json:"id"`
	ConnectionID string     `json:"connection_id"`
	ExternalID   string     `json:"external_id"`
	Title        string     `json:"title"`
	Description  *string    `json:"description"`
	StartsAt     time.Time  `json:"starts_at"`
	EndsAt       time.Time  `json:"ends_at"`
	ContactID    *string    `json:"contact_id"`
	DealID       *string    `json:"deal_id"`
	Cancelled    bool       `json:"cancelled"`
	SyncedAt     *time.Time `json:"synced_at"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
