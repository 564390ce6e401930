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

type PgxLeadRepository struct {
	db *pgxpool.Pool
}

func newPgxLeadRepository(db *pgxpool.Pool) portsrepo.LeadRepository {
	return &PgxLeadRepository{db: db}
}

var _ portsrepo.LeadRepository = (*PgxLeadRepository)(nil)

func (r *PgxLeadRepository) SaveLead(ctx context.Context, lead domain.Lead) (*domain.Lead, error) {
	query := `
		INSERT INTO leads (name, phone, email, origin, funnel_status, tax_id)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), NULLIF($4, ''), NULLIF($5, ''), $6)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		lead.Name,
		lead.Phone,
		lead.Email,
		lead.Origin,
		lead.FunnelStatus,
		lead.TaxID,
	).Scan(&lead.LeadID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: lead with this tax id already exists", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save lead: %w", err)
	}
	return &lead, nil
}

func (r *PgxLeadRepository) FindLeadByID(ctx context.Context, leadID int64) (*domain.Lead, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(origin, ''), COALESCE(funnel_status, ''), tax_id
		FROM leads
		WHERE id = $1;
	`
	var lead domain.Lead
	err := r.db.QueryRow(ctx, query, leadID).Scan(
		&lead.LeadID,
		&lead.Name,
		&lead.Phone,
		&lead.Email,
		&lead.Origin,
		&lead.FunnelStatus,
		&lead.TaxID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find lead %d: %w", leadID, err)
	}
	return &lead, nil
}

func (r *PgxLeadRepository) FindLeads(ctx context.Context) ([]domain.Lead, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), COALESCE(origin, ''), COALESCE(funnel_status, ''), tax_id
		FROM leads
		ORDER BY id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query leads: %w", err)
	}
	defer rows.Close()

	leads := []domain.Lead{}
	for rows.Next() {
		var lead domain.Lead
		if err := rows.Scan(
			&lead.LeadID,
			&lead.Name,
			&lead.Phone,
			&lead.Email,
			&lead.Origin,
			&lead.FunnelStatus,
			&lead.TaxID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan lead row: %w", err)
		}
		leads = append(leads, lead)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating lead rows: %w", rows.Err())
	}
	return leads, nil
}

func (r *PgxLeadRepository) UpdateLead(ctx context.Context, lead domain.Lead) error {
	query := `
		UPDATE leads
		SET name = $1, phone = NULLIF($2, ''), email = NULLIF($3, ''), origin = NULLIF($4, ''),
		    funnel_status = NULLIF($5, ''), tax_id = $6
		WHERE id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		lead.Name,
		lead.Phone,
		lead.Email,
		lead.Origin,
		lead.FunnelStatus,
		lead.TaxID,
		lead.LeadID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: lead with this tax id already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update lead %d: %w", lead.LeadID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxLeadRepository) DeleteLead(ctx context.Context, leadID int64) error {
	// Clients referencing this lead keep their row; the FK is ON DELETE SET NULL.
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM leads WHERE id = $1;`, leadID)
	if err != nil {
		return fmt.Errorf("failed to delete lead %d: %w", leadID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
