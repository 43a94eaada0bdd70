// Package queue defines message payloads exchanged over the message broker.
package queue

// RegistrationQueueName is the durable queue registrations are published to.
const RegistrationQueueName = "registration.submitted"

// RegistrationSubmittedEvent is published after a registration row has been
// appended to the row store.  It carries the row itself so consumers never
// need to read the spreadsheet back.
type RegistrationSubmittedEvent struct {
	SessionID     string `json:"session_id,omitempty"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	ContactNumber string `json:"contact_number"`
	RollNumber    string `json:"roll_number"`
	Department    string `json:"department"`
	EventName     string `json:"event"`
	SubmittedAt   string `json:"submitted_at"`
}
