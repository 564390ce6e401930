package services

import (
	"context"
	"fmt"
	"time"

	"github.com/wevomedia/wevo_media_app/internal/apperrors"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	portsrepo "github.com/wevomedia/wevo_media_app/internal/core/ports/repositories"
	"github.com/wevomedia/wevo_media_app/internal/dto"
)

const dateLayout = "2006-01-02"

// parseDate parses a required YYYY-MM-DD form field. Binding validates the
// layout already; a failure here means the DTO tag and this layout diverged.
func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date %q", apperrors.ErrValidation, value)
	}
	return t, nil
}

func parseOptionalDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

type ContractService struct {
	contractRepo portsrepo.ContractRepository
}

func NewContractService(contractRepo portsrepo.ContractRepository) *ContractService {
	return &ContractService{contractRepo: contractRepo}
}

func (s *ContractService) CreateContract(ctx context.Context, req dto.CreateContractRequest) (*domain.Contract, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = domain.DefaultContractStatus
	}
	contract := domain.Contract{
		StartDate:        startDate,
		EndDate:          endDate,
		Amount:           req.Amount,
		Status:           status,
		ResponsibleTaxID: optionalTaxID(req.ResponsibleTaxID),
	}
	saved, err := s.contractRepo.SaveContract(ctx, contract)
	if err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}
	return saved, nil
}

func (s *ContractService) GetContractByID(ctx context.Context, contractID int64) (*domain.Contract, error) {
	return s.contractRepo.FindContractByID(ctx, contractID)
}

func (s *ContractService) ListContracts(ctx context.Context) ([]domain.Contract, error) {
	return s.contractRepo.FindContracts(ctx)
}

func (s *ContractService) UpdateContract(ctx context.Context, contractID int64, req dto.UpdateContractRequest) (*domain.Contract, error) {
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseOptionalDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	contract := domain.Contract{
		ContractID:       contractID,
		StartDate:        startDate,
		EndDate:          endDate,
		Amount:           req.Amount,
		Status:           req.Status,
		ResponsibleTaxID: optionalTaxID(req.ResponsibleTaxID),
	}
	if err := s.contractRepo.UpdateContract(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to update contract %d: %w", contractID, err)
	}
	return &contract, nil
}

func (s *ContractService) DeleteContract(ctx context.Context, contractID int64) error {
	return s.contractRepo.DeleteContract(ctx, contractID)
}

func (s *ContractService) AttachClient(ctx context.Context, contractID int64, clientID int64) error {
	return s.contractRepo.AttachClient(ctx, contractID, clientID)
}

func (s *ContractService) DetachClient(ctx context.Context, contractID int64, clientID int64) error {
	return s.contractRepo.DetachClient(ctx, contractID, clientID)
}

func (s *ContractService) ListContractClients(ctx context.Context, contractID int64) ([]domain.Client, error) {
	if _, err := s.contractRepo.FindContractByID(ctx, contractID); err != nil {
		return nil, err
	}
	return s.contractRepo.FindContractClients(ctx, contractID)
}

type FinancialEntryService struct {
	entryRepo portsrepo.FinancialEntryRepository
}

func NewFinancialEntryService(entryRepo portsrepo.FinancialEntryRepository) *FinancialEntryService {
	return &FinancialEntryService{entryRepo: entryRepo}
}

func (s *FinancialEntryService) CreateEntry(ctx context.Context, req dto.CreateEntryRequest) (*domain.FinancialEntry, error) {
	entry := domain.FinancialEntry{
		Description: req.Description,
		Amount:      req.Amount,
		EntryType:   domain.EntryType(req.EntryType),
		ProjectID:   req.ProjectID,
	}
	saved, err := s.entryRepo.SaveEntry(ctx, entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create financial entry: %w", err)
	}
	return saved, nil
}

func (s *FinancialEntryService) GetEntryByID(ctx context.Context, entryID int64) (*domain.FinancialEntry, error) {
	return s.entryRepo.FindEntryByID(ctx, entryID)
}

func (s *FinancialEntryService) ListEntries(ctx context.Context) ([]domain.FinancialEntry, error) {
	return s.entryRepo.FindEntries(ctx)
}

func (s *FinancialEntryService) UpdateEntry(ctx context.Context, entryID int64, req dto.UpdateEntryRequest) (*domain.FinancialEntry, error) {
	existing, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry := domain.FinancialEntry{
		EntryID:     entryID,
		Description: req.Description,
		Amount:      req.Amount,
		EntryDate:   existing.EntryDate,
		EntryType:   domain.EntryType(req.EntryType),
		ProjectID:   req.ProjectID,
	}
	if err := s.entryRepo.UpdateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to update financial entry %d: %w", entryID, err)
	}
	return &entry, nil
}

func (s *FinancialEntryService) DeleteEntry(ctx context.Context, entryID int64) error {
	return s.entryRepo.DeleteEntry(ctx, entryID)
}

type PayableService struct {
	payableRepo portsrepo.PayableRepository
}

func NewPayableService(payableRepo portsrepo.PayableRepository) *PayableService {
	return &PayableService{payableRepo: payableRepo}
}

func (s *PayableService) CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.Payable, error) {
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	payable := domain.Payable{
		Beneficiary: req.Beneficiary,
		DueDate:     dueDate,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      status,
	}
	saved, err := s.payableRepo.SavePayable(ctx, payable)
	if err != nil {
		return nil, fmt.Errorf("failed to create payable: %w", err)
	}
	return saved, nil
}

func (s *PayableService) GetPayableByID(ctx context.Context, payableID int64) (*domain.Payable, error) {
	return s.payableRepo.FindPayableByID(ctx, payableID)
}

func (s *PayableService) ListPayables(ctx context.Context) ([]domain.Payable, error) {
	return s.payableRepo.FindPayables(ctx)
}

func (s *PayableService) UpdatePayable(ctx context.Context, payableID int64, req dto.UpdatePayableRequest) (*domain.Payable, error) {
	dueDate, err := parseDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	payable := domain.Payable{
		PayableID:   payableID,
		Beneficiary: req.Beneficiary,
		DueDate:     dueDate,
		Amount:      req.Amount,
		Description: req.Description,
		Status:      req.Status,
	}
	if err := s.payableRepo.UpdatePayable(ctx, payable); err != nil {
		return nil, fmt.Errorf("failed to update payable %d: %w", payableID, err)
	}
	return &payable, nil
}

func (s *PayableService) DeletePayable(ctx context.Context, payableID int64) error {
	return s.payableRepo.DeletePayable(ctx, payableID)
}

type ReceivableService struct {
	receivableRepo portsrepo.ReceivableRepository
}

func NewReceivableService(receivableRepo portsrepo.ReceivableRepository) *ReceivableService {
	return &ReceivableService{receivableRepo: receivableRepo}
}

func (s *ReceivableService) CreateReceivable(ctx context.Context, req dto.CreateReceivableRequest) (*domain.Receivable, error) {
	receivedAt, err := parseOptionalDate(req.ReceivedAt)
	if err != nil {
		return nil, err
	}
	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	receivable := domain.Receivable{
		ReceivedAt:  receivedAt,
		Amount:      req.Amount,
		Description: req.Description,
		ClientID:    req.ClientID,
		Status:      status,
	}
	saved, err := s.receivableRepo.SaveReceivable(ctx, receivable)
	if err != nil {
		return nil, fmt.Errorf("failed to create receivable: %w", err)
	}
	return saved, nil
}

func (s *ReceivableService) GetReceivableByID(ctx context.Context, receivableID int64) (*domain.Receivable, error) {
	return s.receivableRepo.FindReceivableByID(ctx, receivableID)
}

func (s *ReceivableService) ListReceivables(ctx context.Context) ([]domain.Receivable, error) {
	return s.receivableRepo.FindReceivables(ctx)
}

func (s *ReceivableService) UpdateReceivable(ctx context.Context, receivableID int64, req dto.UpdateReceivableRequest) (*domain.Receivable, error) {
	receivedAt, err := parseOptionalDate(req.ReceivedAt)
	if err != nil {
		return nil, err
	}
	receivable := domain.Receivable{
		ReceivableID: receivableID,
		ReceivedAt:   receivedAt,
		Amount:       req.Amount,
		Description:  req.Description,
		ClientID:     req.ClientID,
		Status:       req.Status,
	}
	if err := s.receivableRepo.UpdateReceivable(ctx, receivable); err != nil {
		return nil, fmt.Errorf("failed to update receivable %d: %w", receivableID, err)
	}
	return &receivable, nil
}

func (s *ReceivableService) DeleteReceivable(ctx context.Context, receivableID int64) error {
	return s.receivableRepo.DeleteReceivable(ctx, receivableID)
}
