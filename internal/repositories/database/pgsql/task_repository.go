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

type PgxTaskRepository struct {
	db *pgxpool.Pool
}

func newPgxTaskRepository(db *pgxpool.Pool) portsrepo.TaskRepository {
	return &PgxTaskRepository{db: db}
}

var _ portsrepo.TaskRepository = (*PgxTaskRepository)(nil)

func (r *PgxTaskRepository) SaveTask(ctx context.Context, task domain.Task) (*domain.Task, error) {
	query := `
		INSERT INTO tasks (responsible, status, priority, description, project_id)
		VALUES (NULLIF($1, ''), $2, NULLIF($3, ''), NULLIF($4, ''), $5)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		task.Responsible,
		task.Status,
		string(task.Priority),
		task.Description,
		task.ProjectID,
	).Scan(&task.TaskID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, fmt.Errorf("%w: project does not exist", apperrors.ErrValidation)
		}
		return nil, fmt.Errorf("failed to save task: %w", err)
	}
	return &task, nil
}

func (r *PgxTaskRepository) FindTaskByID(ctx context.Context, taskID int64) (*domain.Task, error) {
	query := `
		SELECT id, COALESCE(responsible, ''), status, COALESCE(priority, ''), COALESCE(description, ''), project_id
		FROM tasks
		WHERE id = $1;
	`
	var task domain.Task
	err := r.db.QueryRow(ctx, query, taskID).Scan(
		&task.TaskID,
		&task.Responsible,
		&task.Status,
		&task.Priority,
		&task.Description,
		&task.ProjectID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find task %d: %w", taskID, err)
	}
	return &task, nil
}

func (r *PgxTaskRepository) FindTasks(ctx context.Context) ([]domain.Task, error) {
	query := `
		SELECT id, COALESCE(responsible, ''), status, COALESCE(priority, ''), COALESCE(description, ''), project_id
		FROM tasks
		ORDER BY id DESC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(
			&task.TaskID,
			&task.Responsible,
			&task.Status,
			&task.Priority,
			&task.Description,
			&task.ProjectID,
		); err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating task rows: %w", rows.Err())
	}
	return tasks, nil
}

func (r *PgxTaskRepository) UpdateTask(ctx context.Context, task domain.Task) error {
	query := `
		UPDATE tasks
		SET responsible = NULLIF($1, ''), status = $2, priority = NULLIF($3, ''), description = NULLIF($4, ''), project_id = $5
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		task.Responsible,
		task.Status,
		string(task.Priority),
		task.Description,
		task.ProjectID,
		task.TaskID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: project does not exist", apperrors.ErrValidation)
		}
		return fmt.Errorf("failed to update task %d: %w", task.TaskID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaskRepository) DeleteTask(ctx context.Context, taskID int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1;`, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaskRepository) AssignUser(ctx context.Context, taskID int64, userTaxID string) error {
	query := `INSERT INTO user_tasks (user_tax_id, task_id) VALUES ($1, $2);`
	_, err := r.db.Exec(ctx, query, userTaxID, taskID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: user %s is already assigned to task %d", apperrors.ErrDuplicate, userTaxID, taskID)
		}
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: user %s or task %d does not exist", apperrors.ErrNotFound, userTaxID, taskID)
		}
		return fmt.Errorf("failed to assign user to task %d: %w", taskID, err)
	}
	return nil
}

func (r *PgxTaskRepository) UnassignUser(ctx context.Context, taskID int64, userTaxID string) error {
	query := `DELETE FROM user_tasks WHERE user_tax_id = $1 AND task_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, userTaxID, taskID)
	if err != nil {
		return fmt.Errorf("failed to unassign user from task %d: %w", taskID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxTaskRepository) FindAssignees(ctx context.Context, taskID int64) ([]domain.User, error) {
	query := `
		SELECT u.tax_id, u.name, u.email, u.password_hash, u.role
		FROM users u
		JOIN user_tasks ut ON ut.user_tax_id = u.tax_id
		WHERE ut.task_id = $1
		ORDER BY u.name ASC;
	`
	rows, err := r.db.Query(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignees of task %d: %w", taskID, err)
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
			return nil, fmt.Errorf("failed to scan assignee row: %w", err)
		}
		users = append(users, user)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating assignee rows: %w", rows.Err())
	}
	return users, nil
}
