package domain

import "time"

type RetentionAction string

const (
	RetentionActionDelete    RetentionAction = "delete"
	RetentionActionAnonymize RetentionAction = "anonymize"
)

type RetentionEntityType string

const (
	RetentionEntityContact  RetentionEntityType = "contact"
	RetentionEntityActivity RetentionEntityType = "activity"
	RetentionEntityMessage  RetentionEntityType = "message"
)

// RetentionPolicy define por quanto tempo registros de um tipo são mantidos
// e o que fazer quando o prazo vence
type RetentionPolicy struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	EntityType    RetentionEntityType `json:"entity_type"`
	RetentionDays int                 `json:"retention_days"`
	Action        RetentionAction     `json:"action"`
	Active        bool                `json:"active"`
	CreatedAt     time.Time           `json:"created_at"`
}

type RetentionRunStatus string

const (
	RetentionRunCompleted RetentionRunStatus = "completed"
	RetentionRunPartial   RetentionRunStatus = "partial"
	RetentionRunFailed    RetentionRunStatus = "failed"
)

// RetentionRun é o relatório de uma execução de política.
// Skipped conta os registros além do limite por execução, adiados para o
// próximo dia.
type RetentionRun struct {
	ID         int                `json:"id"`
	PolicyID   string             `json:"policy_id"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
	Status     RetentionRunStatus `json:"status"`
	Matched    int                `json:"matched"`
	Processed  int                `json:"processed"`
	Failed     int                `json:"failed"`
	Skipped    int                `json:"skipped"`
	Errors     []string           `json:"errors"`
}

// RetentionAuditEntry registra cada exclusão/anonimização individual
type RetentionAuditEntry struct {
	ID         int                 `json:"id"`
	PolicyID   string              `json:"policy_id"`
	EntityType RetentionEntityType `json:"entity_type"`
	EntityID   string              `json:"entity_id"`
	Action     RetentionAction     `json:"action"`
	ExecutedAt time.Time           `json:"executed_at"`
}
