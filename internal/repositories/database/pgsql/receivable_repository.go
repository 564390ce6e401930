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

type PgxReceivableRepository struct {
	db *pgxpool.Pool
}

func newPgxReceivableRepository(db *pgxpool.Pool) portsrepo.ReceivableRepository {
	return &PgxReceivableRepository{db: db}
}

var _ portsrepo.ReceivableRepository = (*PgxReceivableRepository)(nil)

func (r *PgxReceivableRepository) SaveReceivable(ctx context.Context, receivable domain.Receivable) (*domain.Receivable, error) {
	query := `
		INSERT INTO receivables (received_at, amount, description, client_id, status)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		receivable.ReceivedAt,
		receivable.Amount,
		receivable.Description,
		receivable.ClientID,
		receivable.Status,
	).Scan(&receivable.ReceivableID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: client does not exist", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to save receivable: %w", err)
	}
	return &receivable, nil
}

func (r *PgxReceivableRepository) FindReceivableByID(ctx context.Context, receivableID int64) (*domain.Receivable, error) {
	query := `
		SELECT id, received_at, amount, COALESCE(description, ''), client_id, status
		FROM receivables
		WHERE id = $1;
	`
	var receivable domain.Receivable
	err := r.db.QueryRow(ctx, query, receivableID).Scan(
		&receivable.ReceivableID,
		&receivable.ReceivedAt,
		&receivable.Amount,
		&receivable.Description,
		&receivable.ClientID,
		&receivable.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find receivable %d: %w", receivableID, err)
	}
	return &receivable, nil
}

func (r *PgxReceivableRepository) FindReceivables(ctx context.Context) ([]domain.Receivable, error) {
	query := `
		SELECT id, received_at, amount, COALESCE(description, ''), client_id, status
		FROM receivables
		ORDER BY id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query receivables: %w", err)
	}
	defer rows.Close()

	receivables := []domain.Receivable{}
	for rows.Next() {
		var receivable domain.Receivable
		if err := rows.Scan(
			&receivable.ReceivableID,
			&receivable.ReceivedAt,
			&receivable.Amount,
			&receivable.Description,
			&receivable.ClientID,
			&receivable.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan receivable row: %w", err)
		}
		receivables = append(receivables, receivable)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating receivable rows: %w", rows.Err())
	}
	return receivables, nil
}

func (r *PgxReceivableRepository) UpdateReceivable(ctx context.Context, receivable domain.Receivable) error {
	query := `
		UPDATE receivables
		SET received_at = $1, amount = $2, description = NULLIF($3, ''), client_id = $4, status = $5
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		receivable.ReceivedAt,
		receivable.Amount,
		receivable.Description,
		receivable.ClientID,
		receivable.Status,
		receivable.ReceivableID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: client does not exist", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update receivable %d: %w", receivable.ReceivableID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxReceivableRepository) DeleteReceivable(ctx context.Context, receivableID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM receivables WHERE id = $1;`, receivableID)
	if err != nil {
		return fmt.Errorf("failed to delete receivable %d: %w", receivableID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
