package domain

// Lead represents a prospective client captured before conversion.
type Lead struct {
	LeadID       int64   `json:"leadID"`
	Name         string  `json:"name"`
	Phone        string  `json:"phone,omitempty"`
	Email        string  `json:"email,omitempty"`
	Origin       string  `json:"origin,omitempty"`
	FunnelStatus string  `json:"funnelStatus,omitempty"`
	TaxID        *string `json:"taxID,omitempty"` // Unique when present
}
