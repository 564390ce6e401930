package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/wevomedia/wevo_media_app/internal/apperrors"
	"github.com/wevomedia/wevo_media_app/internal/core/domain"
	portsrepo "github.com/wevomedia/wevo_media_app/internal/core/ports/repositories"
)

type PgxContractRepository struct {
	db *pgxpool.Pool
}

func newPgxContractRepository(db *pgxpool.Pool) portsrepo.ContractRepository {
	return &PgxContractRepository{db: db}
}

var _ portsrepo.ContractRepository = (*PgxContractRepository)(nil)

func (r *PgxContractRepository) SaveContract(ctx context.Context, contract domain.Contract) (*domain.Contract, error) {
	query := `
		INSERT INTO contracts (start_date, end_date, amount, status, responsible_tax_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		contract.StartDate,
		contract.EndDate,
		contract.Amount,
		contract.Status,
		contract.ResponsibleTaxID,
	).Scan(&contract.ContractID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: responsible user does not exist", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to save contract: %w", err)
	}
	return &contract, nil
}

func (r *PgxContractRepository) FindContractByID(ctx context.Context, contractID int64) (*domain.Contract, error) {
	query := `
		SELECT id, start_date, end_date, amount, status, responsible_tax_id
		FROM contracts
		WHERE id = $1;
	`
	var contract domain.Contract
	err := r.db.QueryRow(ctx, query, contractID).Scan(
		&contract.ContractID,
		&contract.StartDate,
		&contract.EndDate,
		&contract.Amount,
		&contract.Status,
		&contract.ResponsibleTaxID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find contract %d: %w", contractID, err)
	}
	return &contract, nil
}

func (r *PgxContractRepository) FindContracts(ctx context.Context) ([]domain.Contract, error) {
	query := `
		SELECT id, start_date, end_date, amount, status, responsible_tax_id
		FROM contracts
		ORDER BY start_date DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query contracts: %w", err)
	}
	defer rows.Close()

	contracts := []domain.Contract{}
	for rows.Next() {
		var contract domain.Contract
		if err := rows.Scan(
			&contract.ContractID,
			&contract.StartDate,
			&contract.EndDate,
			&contract.Amount,
			&contract.Status,
			&contract.ResponsibleTaxID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan contract row: %w", err)
		}
		contracts = append(contracts, contract)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating contract rows: %w", rows.Err())
	}
	return contracts, nil
}

func (r *PgxContractRepository) UpdateContract(ctx context.Context, contract domain.Contract) error {
	query := `
		UPDATE contracts
		SET start_date = $1, end_date = $2, amount = $3, status = $4, responsible_tax_id = $5
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		contract.StartDate,
		contract.EndDate,
		contract.Amount,
		contract.Status,
		contract.ResponsibleTaxID,
		contract.ContractID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: responsible user does not exist", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update contract %d: %w", contract.ContractID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteContract removes the contract; its client_contracts rows go with it (CASCADE).
func (r *PgxContractRepository) DeleteContract(ctx context.Context, contractID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM contracts WHERE id = $1;`, contractID)
	if err != nil {
		return fmt.Errorf("failed to delete contract %d: %w", contractID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxContractRepository) AttachClient(ctx context.Context, contractID int64, clientID int64) error {
	query := `INSERT INTO client_contracts (client_id, contract_id) VALUES ($1, $2);`
	_, err := r.db.Exec(ctx, query, clientID, contractID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client %d is already attached to contract %d", apperrors.ErrDuplicate, clientID, contractID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: client %d or contract %d does not exist", apperrors.ErrNotFound, clientID, contractID)
		}
		return fmt.Errorf("failed to attach client to contract %d: %w", contractID, err)
	}
	return nil
}

func (r *PgxContractRepository) DetachClient(ctx context.Context, contractID int64, clientID int64) error {
	query := `DELETE FROM client_contracts WHERE client_id = $1 AND contract_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, clientID, contractID)
	if err != nil {
		return fmt.Errorf("failed to detach client from contract %d: %w", contractID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxContractRepository) FindContractClients(ctx context.Context, contractID int64) ([]domain.Client, error) {
	query := `
		SELECT c.id, c.name, COALESCE(c.phone, ''), COALESCE(c.email, ''), c.tax_id, c.active_plan, c.lead_id
		FROM clients c
		JOIN client_contracts cc ON cc.client_id = c.id
		WHERE cc.contract_id = $1
		ORDER BY c.name ASC;
	`
	rows, err := r.db.Query(ctx, query, contractID)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients of contract %d: %w", contractID, err)
	}
	defer rows.Close()

	clients := []domain.Client{}
	for rows.Next() {
		var client domain.Client
		if err := rows.Scan(
			&client.ClientID,
			&client.Name,
			&client.Phone,
			&client.Email,
			&client.TaxID,
			&client.ActivePlan,
			&client.LeadID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clients = append(clients, client)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", rows.Err())
	}
	return clients, nil
}
