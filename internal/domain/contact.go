package domain

import "time"

type Contact struct {
	ID         string     `json:"id"`
	FirstName  string     `json:"first_name"`
	LastName   string     `json:"last_name"`
	Email      *string    `json:"email"`
	Phone      *string    `json:"phone"`
	CompanyID  *string    `json:"company_id"`
	OwnerID    *int       `json:"owner_id"`
	Source     *string    `json:"source"` // origem: web_form, import, manual
	Anonymized bool       `json:"anonymized"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	LastTouch  *time.Time `json:"last_touch"`
}

type CreateContactRequest struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	CompanyID *string `json:"company_id"`
	OwnerID   *int    `json:"owner_id"`
	Source    *string `json:"source"`
}

type UpdateContactRequest struct {
	ID        string  `json:"id"`
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	CompanyID *string `json:"company_id"`
	OwnerID   *int    `json:"owner_id"`
}

type ContactFilters struct {
	CompanyID *string
	OwnerID   *int
	Search    *string
}
