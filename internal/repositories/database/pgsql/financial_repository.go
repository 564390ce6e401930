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

type PgxFinancialEntryRepository struct {
	db *pgxpool.Pool
}

func newPgxFinancialEntryRepository(db *pgxpool.Pool) portsrepo.FinancialEntryRepository {
	return &PgxFinancialEntryRepository{db: db}
}

var _ portsrepo.FinancialEntryRepository = (*PgxFinancialEntryRepository)(nil)

func (r *PgxFinancialEntryRepository) SaveEntry(ctx context.Context, entry domain.FinancialEntry) (*domain.FinancialEntry, error) {
	query := `
		INSERT INTO financial_entries (description, amount, entry_type, project_id)
		VALUES (NULLIF($1, ''), $2, $3, $4)
		RETURNING id, entry_date;
	`
	err := r.db.QueryRow(ctx, query,
		entry.Description,
		entry.Amount,
		entry.EntryType,
		entry.ProjectID,
	).Scan(&entry.EntryID, &entry.EntryDate)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: project does not exist", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to save financial entry: %w", err)
	}
	return &entry, nil
}

func (r *PgxFinancialEntryRepository) FindEntryByID(ctx context.Context, entryID int64) (*domain.FinancialEntry, error) {
	query := `
		SELECT id, COALESCE(description, ''), amount, entry_date, entry_type, project_id
		FROM financial_entries
		WHERE id = $1;
	`
	var entry domain.FinancialEntry
	err := r.db.QueryRow(ctx, query, entryID).Scan(
		&entry.EntryID,
		&entry.Description,
		&entry.Amount,
		&entry.EntryDate,
		&entry.EntryType,
		&entry.ProjectID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find financial entry %d: %w", entryID, err)
	}
	return &entry, nil
}

func (r *PgxFinancialEntryRepository) FindEntries(ctx context.Context) ([]domain.FinancialEntry, error) {
	query := `
		SELECT id, COALESCE(description, ''), amount, entry_date, entry_type, project_id
		FROM financial_entries
		ORDER BY entry_date DESC, id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query financial entries: %w", err)
	}
	defer rows.Close()

	entries := []domain.FinancialEntry{}
	for rows.Next() {
		var entry domain.FinancialEntry
		if err := rows.Scan(
			&entry.EntryID,
			&entry.Description,
			&entry.Amount,
			&entry.EntryDate,
			&entry.EntryType,
			&entry.ProjectID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan financial entry row: %w", err)
		}
		entries = append(entries, entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating financial entry rows: %w", rows.Err())
	}
	return entries, nil
}

// UpdateEntry leaves entry_date untouched; it records when the entry was
// originally made.
func (r *PgxFinancialEntryRepository) UpdateEntry(ctx context.Context, entry domain.FinancialEntry) error {
	query := `
		UPDATE financial_entries
		SET description = NULLIF($1, ''), amount = $2, entry_type = $3, project_id = $4
		WHERE id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		entry.Description,
		entry.Amount,
		entry.EntryType,
		entry.ProjectID,
		entry.EntryID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: project does not exist", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update financial entry %d: %w", entry.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFinancialEntryRepository) DeleteEntry(ctx context.Context, entryID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM financial_entries WHERE id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete financial entry %d: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
