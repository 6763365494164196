package domain

import (
	"encoding/json"
	"time"
)

// Eventos emitidos para assinaturas de webhook
const (
	WebhookEventDealStageChanged = "deal.stage_changed"
	WebhookEventDealWon          = "deal.won"
	WebhookEventDealLost         = "deal.lost"
	WebhookEventFormSubmitted    = "form.submitted"
	WebhookEventMessageReceived  = "message.received"
)

type WebhookSubscription struct {
	ID        string    `json:"id"`
	URL       string    `json:"url"`
	Secret    string    `json:"-"` // chave HMAC da assinatura do payload
	Events    []string  `json:"events"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

// WantsEvent indica se a assinatura deve receber o evento informado
func (s *WebhookSubscription) WantsEvent(event string) bool {
	for _, e := range s.Events {
		if e == event || e == "*" {
			return true
		}
	}
	return false
}

type CreateWebhookRequest struct {
	URL    string   `json:"url"`
	Events []string `json:"events"`
}

type WebhookDeliveryStatus string

const (
	WebhookDeliveryPending   WebhookDeliveryStatus = "pending"
	WebhookDeliveryDelivered WebhookDeliveryStatus = "delivered"
	WebhookDeliveryFailed    WebhookDeliveryStatus = "failed"
)

// WebhookDelivery registra uma tentativa de entrega de evento assinado
type WebhookDelivery struct {
	ID             string                `json:"id"`
	SubscriptionID string                `json:"subscription_id"`
	Event          string                `json:"event"`
	Payload        json.RawMessage       `json:"payload"`
	Status         WebhookDeliveryStatus `json:"status"`
	Attempts       int                   `json:"attempts"`
	LastError      *string               `json:"last_error"`
	DeliveredAt    *time.Time            `json:"delivered_at"`
	CreatedAt      time.Time             `json:"created_at"`
}
