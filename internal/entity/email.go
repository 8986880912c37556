package entity

import "time"

type EmailRequest struct {
	Lead        Lead    `json:"lead"`
	Persona     Persona `json:"persona"`
	Probability string  `json:"probability"`
}

type GeneratedEmail struct {
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// EmailGeneratedEvent is published after a successful generation.
type EmailGeneratedEvent struct {
	ID             string    `json:"id"`
	LeadIdentifier string    `json:"lead_identifier"`
	FirstName      string    `json:"first_name"`
	FullName       string    `json:"full_name"`
	WorkEmail      string    `json:"work_email"`
	CompanyName    string    `json:"company_name"`
	PersonaName    string    `json:"persona_name"`
	Probability    string    `json:"probability"`
	Subject        string    `json:"subject"`
	Body           string    `json:"body"`
	GeneratedAt    time.Time `json:"generated_at"`
}
