package domain

// Client represents an onboarded customer, optionally traced back to a Lead.
type Client struct {
	ClientID   int64   `json:"clientID"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone,omitempty"`
	Email      string  `json:"email,omitempty"`
	TaxID      *string `json:"taxID,omitempty"` // Unique when present, independent of leads
	ActivePlan bool    `json:"activePlan"`
	LeadID     *int64  `json:"leadID,omitempty"` // Nulled when the lead is deleted
}
