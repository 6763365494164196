package domain

import "time"

type ActivityType string

const (
	ActivityTypeNote    ActivityType = "note"
	ActivityTypeCall    ActivityType = "call"
	ActivityTypeEmail   ActivityType = "email"
	ActivityTypeMeeting ActivityType = "meeting"
	ActivityTypeTask    ActivityType = "task"
	ActivityTypeForm    ActivityType = "form_submission"
)

type Activity struct {
	ID          string       `json:"id"`
	Type        ActivityType `json:"type"`
	Subject     string       `json:"subject"`
	Body        *string      `json:"body"`
	ContactID   *string      `json:"contact_id"`
	CompanyID   *string      `json:"company_id"`
	DealID      *string      `json:"deal_id"`
	OwnerID     *int         `json:"owner_id"`
	DueAt       *time.Time   `json:"due_at"`
	CompletedAt *time.Time   `json:"completed_at"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type CreateActivityRequest struct {
	Type      ActivityType `json:"type"`
	Subject   string       `json:"subject"`
	Body      *string      `json:"body"`
	ContactID *string      `json:"contact_id"`
	CompanyID *string      `json:"company_id"`
	DealID    *string      `json:"deal_id"`
	OwnerID   *int         `json:"owner_id"`
	DueAt     *string      `json:"due_at"` // formato 2006-01-02
}

// ActivityFilters filtra a timeline de atividades
type ActivityFilters struct {
	ContactID *string
	DealID    *string
	CompanyID *string
	Limit     int
}
