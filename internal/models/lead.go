package models

import "time"

// Lead is a contact-form submission. Rows are append-only.
type Lead struct {
	ID         int64     `json:"id" db:"id" csv:"id"`
	CreatedAt  time.Time `json:"created_at" db:"created_at" csv:"created_at"`
	Name       string    `json:"name" db:"name" csv:"name"`
	Email      string    `json:"email" db:"email" csv:"email"`
	Phone      string    `json:"phone" db:"phone" csv:"phone"`
	Message    string    `json:"message" db:"message" csv:"message"`
	SourcePath string    `json:"source_path" db:"source_path" csv:"source_path"`
}

// LeadSubmission is the raw form payload before validation.
type LeadSubmission struct {
	Name       string `form:"name"`
	Email      string `form:"email"`
	Phone      string `form:"phone"`
	Message    string `form:"message"`
	Consent    string `form:"consent"`
	SourcePath string `form:"-"`
}
