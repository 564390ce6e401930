package services

import (
	"context"

	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	"github.com/wevomedia/wevo_media_app/internal/dto"
)

// ContractSvcFacade defines the service operations for contracts and their
// client links.
type ContractSvcFacade interface {
	CreateContract(ctx context.Context, req dto.CreateContractRequest) (*domain.Contract, error)
	GetContractByID(ctx context.Context, contractID int64) (*domain.Contract, error)
	ListContracts(ctx context.Context) ([]domain.Contract, error)
	UpdateContract(ctx context.Context, contractID int64, req dto.UpdateContractRequest) (*domain.Contract, error)
	DeleteContract(ctx context.Context, contractID int64) error

	AttachClient(ctx context.Context, contractID int64, clientID int64) error
	DetachClient(ctx context.Context, contractID int64, clientID int64) error
	ListContractClients(ctx context.Context, contractID int64) ([]domain.Client, error)
}

// FinancialEntrySvcFacade defines the service operations for revenue and
// expense entries.
type FinancialEntrySvcFacade interface {
	CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.FinancialEntry, error)
	GetEntryByID(ctx context.Context, entryID int64) (*domain.FinancialEntry, error)
	ListEntries(ctx context.Context) ([]domain.FinancialEntry, error)
	UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateEntryRequest) (*domain.FinancialEntry, error)
	DeleteEntry(ctx context.Context, entryID int64) error
}

// PayableSvcFacade defines the service operations for accounts payable.
type PayableSvcFacade interface {
	CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.Payable, error)
	GetPayableByID(ctx context.Context, payableID int64) (*domain.Payable, error)
	ListPayables(ctx context.Context) ([]domain.Payable, error)
	UpdatePayable(ctx context.Context, payableID int64, req dto.UpdatePayableRequest) (*domain.Payable, error)
	DeletePayable(ctx context.Context, payableID int64) error
}

// ReceivableSvcFacade defines the service operations for accounts receivable.
type ReceivableSvcFacade interface {
	CreateReceivable(ctx context.Context, req dto.CreateReceivableRequest) (*domain.Receivable, error)
	GetReceivableByID(ctx context.Context, receivableID int64) (*domain.Receivable, error)
	ListReceivables(ctx context.Context) ([]domain.Receivable, error)
	UpdateReceivable(ctx context.Context, receivableID int64, req dto.UpdateReceivableRequest) (*domain.Receivable, error)
	DeleteReceivable(ctx context.Context, receivableID int64) error
}
