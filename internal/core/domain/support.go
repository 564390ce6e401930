package domain

import "time"

// SupportTicket represents a service request tied to exactly one client.
// Tickets are removed together with their client (ON DELETE CASCADE).
type SupportTicket struct {
	TicketID    int64     `json:"ticketID"`
	Subject     string    `json:"subject"`
	Requester   string    `json:"requester,omitempty"`
	Description string    `json:"description,omitempty"`
	OpenedAt    time.Time `json:"openedAt"` // Defaults to now at insert time
	ClientID    int64     `json:"clientID"`
}
