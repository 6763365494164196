package domain

import "time"

// WebForm é um formulário público de captura de leads identificado por um
// token curto
type WebForm struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateWebFormRequest struct {
	Name string `json:"name"`
}

// WebFormSubmission é o payload enviado pelo formulário público
type WebFormSubmission struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Message   *string `json:"message"`
}
