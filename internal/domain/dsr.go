package domain

import "time"

type DSRType string

const (
	DSRTypeAccess  DSRType = "access"
	DSRTypeErasure DSRType = "erasure"
)

type DSRStatus string

const (
	DSRStatusOpen       DSRStatus = "open"
	DSRStatusInProgress DSRStatus = "in_progress"
	DSRStatusCompleted  DSRStatus = "completed"
	DSRStatusOverdue    DSRStatus = "overdue"
)

// DataSubjectRequest é uma solicitação de acesso/exclusão de dados (LGPD/GDPR)
// acompanhada para fins de prazo de atendimento
type DataSubjectRequest struct {
	ID          string     `json:"id"`
	ContactID   string     `json:"contact_id"`
	Type        DSRType    `json:"type"`
	Status      DSRStatus  `json:"status"`
	RequestedAt time.Time  `json:"requested_at"`
	DueAt       time.Time  `json:"due_at"`
	CompletedAt *time.Time `json:"completed_at"`
	Notes       *string    `json:"notes"`
}
