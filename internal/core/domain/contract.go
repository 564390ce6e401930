package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultContractStatus is applied when a contract is created without a status.
const DefaultContractStatus = "Active"

// Contract is linked to clients through the client_contracts join table and
// optionally carries a responsible user (nulled if that user is deleted).
type Contract struct {
	ContractID       int64           `json:"contractID"`
	StartDate        time.Time       `json:"startDate"`
	EndDate          *time.Time      `json:"endDate,omitempty"`
	Amount           decimal.Decimal `json:"amount"`
	Status           string          `json:"status"`
	ResponsibleTaxID *string         `json:"responsibleTaxID,omitempty"`
}
