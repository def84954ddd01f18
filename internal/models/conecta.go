package models

import "time"

// Connection states as reported by the backend.
const (
	ConnectionPending  = "pending"
	ConnectionAccepted = "accepted"
	ConnectionRejected = "rejected"
)

// Connection is a mentoring link between a user and a Conecta.
type Connection struct {
	ID        int64     `json:"id"`
	Conecta   *User     `json:"conecta,omitempty"`
	Requester *User     `json:"requester,omitempty"`
	Status    string    `json:"status"`
	Message   string    `json:"message,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
