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

type PgxClientRepository struct {
	db *pgxpool.Pool
}

func newPgxClientRepository(db *pgxpool.Pool) portsrepo.ClientRepository {
	return &PgxClientRepository{db: db}
}

var _ portsrepo.ClientRepository = (*PgxClientRepository)(nil)

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) (*domain.Client, error) {
	query := `
		INSERT INTO clients (name, phone, email, tax_id, active_plan, lead_id)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4, $5, $6)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		client.Name,
		client.Phone,
		client.Email,
		client.TaxID,
		client.ActivePlan,
		client.LeadID,
	).Scan(&client.ClientID)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: client with this tax id already exists", apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save client: %w", err)
	}
	return &client, nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID int64) (*domain.Client, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), tax_id, active_plan, lead_id
		FROM clients
		WHERE id = $1;
	`
	var client domain.Client
	err := r.db.QueryRow(ctx, query, clientID).Scan(
		&client.ClientID,
		&client.Name,
		&client.Phone,
		&client.Email,
		&client.TaxID,
		&client.ActivePlan,
		&client.LeadID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client %d: %w", clientID, err)
	}
	return &client, nil
}

func (r *PgxClientRepository) FindClients(ctx context.Context) ([]domain.Client, error) {
	query := `
		SELECT id, name, COALESCE(phone, ''), COALESCE(email, ''), tax_id, active_plan, lead_id
		FROM clients
		ORDER BY id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
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

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	query := `
		UPDATE clients
		SET name = $1, phone = NULLIF($2, ''), email = NULLIF($3, ''), tax_id = $4,
		    active_plan = $5, lead_id = $6
		WHERE id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		client.Name,
		client.Phone,
		client.Email,
		client.TaxID,
		client.ActivePlan,
		client.LeadID,
		client.ClientID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: client with this tax id already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update client %d: %w", client.ClientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxClientRepository) DeleteClient(ctx context.Context, clientID int64) error {
	// Support tickets and client_contracts rows go with the client (CASCADE);
	// receivables keep their row with client_id nulled (SET NULL).
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM clients WHERE id = $1;`, clientID)
	if err != nil {
		return fmt.Errorf("failed to delete client %d: %w", clientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
