// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import "time"

type DealStatus string

const (
	DealStatusOpen DealStatus = "open"
	DealStatusWon  DealStatus = "won"
	DealStatusLost DealStatus = "lost"
)

type Deal struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	CompanyID         *string    `json:"company_id"`
	ContactID         *string    `json:"contact_id"`
	PipelineID        string     `json:"pipeline_id"`
	StageID           string     `json:"stage_id"`
	Amount            float64    `json:"amount"`
	Probability       *float64   `json:"probability"` // 0-100; ausente é tratado como 0 na previsão
	Status            DealStatus `json:"status"`
	ExpectedCloseDate *time.Time `json:"expected_close_date"`
	ActualCloseDate   *time.Time `json:"actual_close_date"`
	StageChangedAt    time.Time  `json:"stage_changed_at"`
	OwnerID           *int       `json:"owner_id"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// ProbabilityValue retorna a probabilidade do negócio, com 0 para valores ausentes
func (d *Deal) ProbabilityValue() float64 {
	if d.Probability == nil {
		return 0
	}
	return *d.Probability
}

type CreateDealRequest struct {
	Title             string   `json:"title"`
	CompanyID         *string  `json:"company_id"`
	ContactID         *string  `json:"contact_id"`
	PipelineID        string   `json:"pipeline_id"`
	StageID           string   `json:"stage_id"`
	Amount            float64  `json:"amount"`
	Probability       *float64 `json:"probability"`
	ExpectedCloseDate *string  `json:"expected_close_date"` // formato 2006-01-02
	OwnerID           *int     `json:"owner_id"`
}

type UpdateDealRequest struct {
	ID                string   `json:"id"`
	Title             *string  `json:"title"`
	CompanyID         *string  `json:"company_id"`
	ContactID         *string  `json:"contact_id"`
	Amount            *float64 `json:"amount"`
	Probability       *float64 `json:"probability"`
	ExpectedCloseDate *string  `json:"expected_close_date"`
	OwnerID           *int     `json:"owner_id"`
}

// MoveDealStageRequest representa a transição de estágio de um negócio no funil
type MoveDealStageRequest struct {
	DealID  string `json:"deal_id"`
	StageID string `json:"stage_id"`
}

// DealFilters filtra negócios por janela de datas e funil
type DealFilters struct {
	StartDate  *time.Time
	EndDate    *time.Time
	PipelineID *string
	Status     []DealStatus
}
