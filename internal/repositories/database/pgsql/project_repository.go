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

type PgxProjectRepository struct {
	db *pgxpool.Pool
}

func newPgxProjectRepository(db *pgxpool.Pool) portsrepo.ProjectRepository {
	return &PgxProjectRepository{db: db}
}

var _ portsrepo.ProjectRepository = (*PgxProjectRepository)(nil)

func (r *PgxProjectRepository) SaveProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	query := `
		INSERT INTO projects (name, description, status)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		project.Name,
		project.Description,
		project.Status,
	).Scan(&project.ProjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}
	return &project, nil
}

func (r *PgxProjectRepository) FindProjectByID(ctx context.Context, projectID int64) (*domain.Project, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), status
		FROM projects
		WHERE id = $1;
	`
	var project domain.Project
	err := r.db.QueryRow(ctx, query, projectID).Scan(
		&project.ProjectID,
		&project.Name,
		&project.Description,
		&project.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find project %d: %w", projectID, err)
	}
	return &project, nil
}

func (r *PgxProjectRepository) FindProjects(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), status
		FROM projects
		ORDER BY id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	projects := []domain.Project{}
	for rows.Next() {
		var project domain.Project
		if err := rows.Scan(
			&project.ProjectID,
			&project.Name,
			&project.Description,
			&project.Status,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", rows.Err())
	}
	return projects, nil
}

func (r *PgxProjectRepository) UpdateProject(ctx context.Context, project domain.Project) error {
	query := `
		UPDATE projects
		SET name = $1, description = NULLIF($2, ''), status = $3
		WHERE id = $4;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		project.Name,
		project.Description,
		project.Status,
		project.ProjectID,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %d: %w", project.ProjectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteProject removes the project. Its tasks go with it (CASCADE); financial
// entries keep their row with project_id nulled (SET NULL).
func (r *PgxProjectRepository) DeleteProject(ctx context.Context, projectID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM projects WHERE id = $1;`, projectID)
	if err != nil {
		return fmt.Errorf("failed to delete project %d: %w", projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) AddMember(ctx context.Context, projectID int64, userTaxID string) error {
	query := `INSERT INTO user_projects (user_tax_id, project_id) VALUES ($1, $2);`
	_, err := r.db.Exec(ctx, query, userTaxID, projectID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user %s is already a member of project %d", apperrors.ErrDuplicate, userTaxID, projectID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %s or project %d does not exist", apperrors.ErrNotFound, userTaxID, projectID)
		}
		return fmt.Errorf("failed to add member to project %d: %w", projectID, err)
	}
	return nil
}

func (r *PgxProjectRepository) RemoveMember(ctx context.Context, projectID int64, userTaxID string) error {
	query := `DELETE FROM user_projects WHERE user_tax_id = $1 AND project_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, userTaxID, projectID)
	if err != nil {
		return fmt.Errorf("failed to remove member from project %d: %w", projectID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxProjectRepository) FindMembers(ctx context.Context, projectID int64) ([]domain.User, error) {
	query := `
		SELECT u.tax_id, u.name, u.email, u.password_hash, u.role
		FROM users u
		JOIN user_projects up ON up.user_tax_id = u.tax_id
		WHERE up.project_id = $1
		ORDER BY u.name ASC;
	`
	rows, err := r.db.Query(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members of project %d: %w", projectID, err)
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
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", rows.Err())
	}
	return users, nil
}
