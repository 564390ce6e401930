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

type PgxPayableRepository struct {
	db *pgxpool.Pool
}

func newPgxPayableRepository(db *pgxpool.Pool) portsrepo.PayableRepository {
	return &PgxPayableRepository{db: db}
}

var _ portsrepo.PayableRepository = (*PgxPayableRepository)(nil)

func (r *PgxPayableRepository) SavePayable(ctx context.Context, payable domain.Payable) (*domain.Payable, error) {
	query := `
		INSERT INTO payables (beneficiary, due_date, amount, description, status)
		VALUES (NULLIF($1, ''), $2, $3, NULLIF($4, ''), $5)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		payable.Beneficiary,
		payable.DueDate,
		payable.Amount,
		payable.Description,
		payable.Status,
	).Scan(&payable.PayableID)
	if err != nil {
		return nil, fmt.Errorf("failed to save payable: %w", err)
	}
	return &payable, nil
}

func (r *PgxPayableRepository) FindPayableByID(ctx context.Context, payableID int64) (*domain.Payable, error) {
	query := `
		SELECT id, COALESCE(beneficiary, ''), due_date, amount, COALESCE(description, ''), status
		FROM payables
		WHERE id = $1;
	`
	var payable domain.Payable
	err := r.db.QueryRow(ctx, query, payableID).Scan(
		&payable.PayableID,
		&payable.Beneficiary,
		&payable.DueDate,
		&payable.Amount,
		&payable.Description,
		&payable.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find payable %d: %w", payableID, err)
	}
	return &payable, nil
}

func (r *PgxPayableRepository) FindPayables(ctx context.Context) ([]domain.Payable, error) {
	query := `
		SELECT id, COALESCE(beneficiary, ''), due_date, amount, COALESCE(description, ''), status
		FROM payables
		ORDER BY due_date ASC, id ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query payables: %w", err)
	}
	defer rows.Close()

	payables := []domain.Payable{}
	for rows.Next() {
		var payable domain.Payable
		if err := rows.Scan(
			&payable.PayableID,
			&payable.Beneficiary,
			&payable.DueDate,
			&payable.Amount,
			&payable.Description,
			&payable.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payable row: %w", err)
		}
		payables = append(payables, payable)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating payable rows: %w", rows.Err())
	}
	return payables, nil
}

func (r *PgxPayableRepository) UpdatePayable(ctx context.Context, payable domain.Payable) error {
	query := `
		UPDATE payables
		SET beneficiary = NULLIF($1, ''), due_date = $2, amount = $3, description = NULLIF($4, ''), status = $5
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		payable.Beneficiary,
		payable.DueDate,
		payable.Amount,
		payable.Description,
		payable.Status,
		payable.PayableID,
	)
	if err != nil {
		return fmt.Errorf("failed to update payable %d: %w", payable.PayableID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxPayableRepository) DeletePayable(ctx context.Context, payableID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM payables WHERE id = $1;`, payableID)
	if err != nil {
		return fmt.Errorf("failed to delete payable %d: %w", payableID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
