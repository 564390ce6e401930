package repositories

import (
	"context"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
)

// ContractRepository defines persistence operations for contracts, including
// the client_contracts join table.
type ContractRepository interface {
	SaveContract(ctx context.Context, contract domain.Contract) (*domain.Contract, error)
	FindContractByID(ctx context.Context, contractID int64) (*domain.Contract, error)
	FindContracts(ctx context.Context) ([]domain.Contract, error)
	UpdateContract(ctx context.Context, contract domain.Contract) error
	DeleteContract(ctx context.Context, contractID int64) error

	AttachClient(ctx context.Context, contractID int64, clientID int64) error
	DetachClient(ctx context.Context, contractID int64, clientID int64) error
	FindContractClients(ctx context.Context, contractID int64) ([]domain.Client, error)
}

// FinancialEntryRepository defines persistence operations for revenue and
// expense entries.
type FinancialEntryRepository interface {
	SaveEntry(ctx context.Context, entry domain.FinancialEntry) (*domain.FinancialEntry, error)
	FindEntryByID(ctx context.Context, entryID int64) (*domain.FinancialEntry, error)
	FindEntries(ctx context.Context) ([]domain.FinancialEntry, error)
	UpdateEntry(ctx context.Context, entry domain.FinancialEntry) error
	DeleteEntry(ctx context.Context, entryID int64) error
}

// PayableRepository defines persistence operations for accounts payable.
type PayableRepository interface {
	SavePayable(ctx context.Context, payable domain.Payable) (*domain.Payable, error)
	FindPayableByID(ctx context.Context, payableID int64) (*domain.Payable, error)
	FindPayables(ctx context.Context) ([]domain.Payable, error)
	UpdatePayable(ctx context.Context, payable domain.Payable) error
	DeletePayable(ctx context.Context, payableID int64) error
}

// ReceivableRepository defines persistence operations for accounts receivable.
type ReceivableRepository interface {
	SaveReceivable(ctx context.Context, receivable domain.Receivable) (*domain.Receivable, error)
	FindReceivableByID(ctx context.Context, receivableID int64) (*domain.Receivable, error)
	FindReceivables(ctx context.Context) ([]domain.Receivable, error)
	UpdateReceivable(ctx context.Context, receivable domain.Receivable) error
	DeleteReceivable(ctx context.Context, receivableID int64) error
}
