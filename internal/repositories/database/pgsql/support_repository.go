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

type PgxSupportRepository struct {
	db *pgxpool.Pool
}

func newPgxSupportRepository(db *pgxpool.Pool) portsrepo.SupportRepository {
	return &PgxSupportRepository{db: db}
}

var _ portsrepo.SupportRepository = (*PgxSupportRepository)(nil)

func (r *PgxSupportRepository) SaveTicket(ctx context.Context, ticket domain.SupportTicket) (*domain.SupportTicket, error) {
	query := `
		INSERT INTO support_tickets (subject, requester, description, client_id)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4)
		RETURNING id, opened_at;
	`
	err := r.db.QueryRow(ctx, query,
		ticket.Subject,
		ticket.Requester,
		ticket.Description,
		ticket.ClientID,
	).Scan(&ticket.TicketID, &ticket.OpenedAt)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: client %d does not exist", apperrors.ErrValidation, ticket.ClientID)
		}
		return nil, fmt.Errorf("failed to save support ticket: %w", err)
	}
	return &ticket, nil
}

func (r *PgxSupportRepository) FindTicketByID(ctx context.Context, ticketID int64) (*domain.SupportTicket, error) {
	query := `
		SELECT id, subject, COALESCE(requester, ''), COALESCE(description, ''), opened_at, client_id
		FROM support_tickets
		WHERE id = $1;
	`
	var ticket domain.SupportTicket
	err := r.db.QueryRow(ctx, query, ticketID).Scan(
		&ticket.TicketID,
		&ticket.Subject,
		&ticket.Requester,
		&ticket.Description,
		&ticket.OpenedAt,
		&ticket.ClientID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find support ticket %d: %w", ticketID, err)
	}
	return &ticket, nil
}

func (r *PgxSupportRepository) FindTickets(ctx context.Context) ([]domain.SupportTicket, error) {
	query := `
		SELECT id, subject, COALESCE(requester, ''), COALESCE(description, ''), opened_at, client_id
		FROM support_tickets
		ORDER BY opened_at DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query support tickets: %w", err)
	}
	defer rows.Close()

	tickets := []domain.SupportTicket{}
	for rows.Next() {
		var ticket domain.SupportTicket
		if err := rows.Scan(
			&ticket.TicketID,
			&ticket.Subject,
			&ticket.Requester,
			&ticket.Description,
			&ticket.OpenedAt,
			&ticket.ClientID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan support ticket row: %w", err)
		}
		tickets = append(tickets, ticket)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating support ticket rows: %w", rows.Err())
	}
	return tickets, nil
}

func (r *PgxSupportRepository) UpdateTicket(ctx context.Context, ticket domain.SupportTicket) error {
	query := `
		UPDATE support_tickets
		SET subject = $1, requester = NULLIF($2, ''), description = NULLIF($3, ''), client_id = $4
		WHERE id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		ticket.Subject,
		ticket.Requester,
		ticket.Description,
		ticket.ClientID,
		ticket.TicketID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: client %d does not exist", apperrors.ErrValidation, ticket.ClientID)
		}
		return fmt.Errorf("failed to update support ticket %d: %w", ticket.TicketID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxSupportRepository) DeleteTicket(ctx context.Context, ticketID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM support_tickets WHERE id = $1;`, ticketID)
	if err != nil {
		return fmt.Errorf("failed to delete support ticket %d: %w", ticketID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
