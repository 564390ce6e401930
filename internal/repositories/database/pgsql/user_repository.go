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

type PgxUserRepository struct {
	db *pgxpool.Pool
}

func newPgxUserRepository(db *pgxpool.Pool) portsrepo.UserRepository {
	return &PgxUserRepository{db: db}
}

var _ portsrepo.UserRepository = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	query := `
		INSERT INTO users (tax_id, name, email, password_hash, role)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.db.Exec(ctx, query,
		user.TaxID,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.Role,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user with that tax id or email already exists", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByTaxID(ctx context.Context, taxID string) (*domain.User, error) {
	return r.findUserWhere(ctx, "tax_id = $1", taxID)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findUserWhere(ctx, "email = $1", email)
}

func (r *PgxUserRepository) findUserWhere(ctx context.Context, cond string, arg any) (*domain.User, error) {
	query := `
		SELECT tax_id, name, email, password_hash, role
		FROM users
		WHERE ` + cond + `;
	`
	var user domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&user.TaxID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

func (r *PgxUserRepository) FindUsers(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT tax_id, name, email, password_hash, role
		FROM users
		ORDER BY name ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.TaxID,
			&user.Name,
			&user.Email,
			&user.PasswordHash,
			&user.Role,
		); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", rows.Err())
	}
	return users, nil
}

func (r *PgxUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	query := `
		UPDATE users
		SET name = $1, email = $2, password_hash = $3
		WHERE tax_id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		user.Name,
		user.Email,
		user.PasswordHash,
		user.TaxID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: email already in use", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to update user %s: %w", user.TaxID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxUserRepository) UpdateUserRole(ctx context.Context, taxID string, role domain.UserRole) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE users SET role = $1 WHERE tax_id = $2;`, role, taxID)
	if err != nil {
		return fmt.Errorf("failed to update role for user %s: %w", taxID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteUser removes the account. Contracts keep their row with the
// responsible nulled (SET NULL); user_projects and user_tasks rows go with the
// user (CASCADE).
func (r *PgxUserRepository) DeleteUser(ctx context.Context, taxID string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM users WHERE tax_id = $1;`, taxID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", taxID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
