package models

import "time"

// Contact is a contact-form submission. Unlike a Lead it needs no phone
// number; it exists so admin triage can see form traffic alongside the
// two notification emails each submission triggers.
type Contact struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	EnquiryType string    `json:"enquiryType"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}
