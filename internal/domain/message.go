package domain

import "time"

type MessageDirection string

const (
	MessageDirectionInbound  MessageDirection = "inbound"
	MessageDirectionOutbound MessageDirection = "outbound"
)

type MessageChannel string

const (
	MessageChannelSMS      MessageChannel = "sms"
	MessageChannelIMessage MessageChannel = "imessage"
)

type MessageStatus string

const (
	MessageStatusQueued   MessageStatus = "queued"
	MessageStatusSent     MessageStatus = "sent"
	MessageStatusFailed   MessageStatus = "failed"
	MessageStatusReceived MessageStatus = "received"
)

// Message é uma mensagem trocada com um contato via provedor externo.
// Falhas de envio ficam registradas em Status e ErrorMessage; o reenvio é
// responsabilidade do chamador.
type Message struct {
	ID           string           `json:"id"`
	ContactID    string           `json:"contact_id"`
	Direction    MessageDirection `json:"direction"`
	Channel      MessageChannel   `json:"channel"`
	PhoneNumber  string           `json:"phone_number"`
	Body         string           `json:"body"`
	Status       MessageStatus    `json:"status"`
	ProviderID   *string          `json:"provider_id"`
	ErrorMessage *string          `json:"error_message"`
	SentAt       *time.Time       `json:"sent_at"`
	CreatedAt    time.Time        `json:"created_at"`
}

type SendMessageRequest struct {
	ContactID string         `json:"contact_id"`
	Channel   MessageChannel `json:"channel"`
	Body      string         `json:"body"`
}
