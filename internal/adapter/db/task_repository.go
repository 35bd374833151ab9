package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/ports"
)

const (
	insertTaskQuery = `
INSERT INTO tasks (title, description, due_date, is_completed, created_at, updated_at, user_id)
VALUES (?, ?, ?, ?, ?, ?, ?);
`

	findTaskByIDQuery = `
SELECT id, title, description, due_date, is_completed, created_at, updated_at, user_id
FROM tasks
WHERE id = ? AND user_id = ?;
`

	listTasksQuery = `
SELECT id, title, description, due_date, is_completed, created_at, updated_at, user_id
FROM tasks
WHERE user_id = ?`

	updateTaskQuery = `
UPDATE tasks
SET title = ?, description = ?, due_date = ?, is_completed = ?, updated_at = ?
WHERE id = ? AND user_id = ?;
`

	deleteTaskQuery = `
DELETE FROM tasks
WHERE id = ? AND user_id = ?;
`

	countTasksByOwnerQuery = `
SELECT COUNT(*)
FROM tasks
WHERE user_id = ?;
`
)

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID          uint64       `db:"id"`
	Title       string       `db:"title"`
	Description string       `db:"description"`
	DueDate     sql.NullTime `db:"due_date"`
	IsCompleted bool         `db:"is_completed"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	UserID      uint64       `db:"user_id"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	result, err := r.db.ExecContext(
		ctx,
		insertTaskQuery,
		task.Title,
		task.Description,
		nullableTime(task.DueDate),
		task.IsCompleted,
		task.CreatedAt,
		task.UpdatedAt,
		task.UserID,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	task.ID = uint64(id)
	return nil
}

func (r *TaskRepository) FindByID(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findTaskByIDQuery, taskID, ownerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// A missing row and someone else's row look the same on purpose.
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) List(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	query := listTasksQuery
	args := []interface{}{ownerID}

	if filter.Completed != nil {
		query += " AND is_completed = ?"
		args = append(args, *filter.Completed)
	}

	if filter.Search != "" {
		query += " AND (LOWER(title) LIKE ? OR LOWER(description) LIKE ?)"
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		args = append(args, pattern, pattern)
	}

	query += "\nORDER BY created_at DESC, id DESC;"

	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	_, err := r.db.ExecContext(
		ctx,
		updateTaskQuery,
		task.Title,
		task.Description,
		nullableTime(task.DueDate),
		task.IsCompleted,
		task.UpdatedAt,
		task.ID,
		task.UserID,
	)
	return err
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, taskID uint64) error {
	result, err := r.db.ExecContext(ctx, deleteTaskQuery, taskID, ownerID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrTaskNotFound
	}

	return nil
}

func (r *TaskRepository) CountByOwner(ctx context.Context, ownerID uint64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, countTasksByOwnerQuery, ownerID); err != nil {
		return 0, err
	}

	return count, nil
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		IsCompleted: row.IsCompleted,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		UserID:      row.UserID,
	}

	if row.DueDate.Valid {
		value := row.DueDate.Time
		task.DueDate = &value
	}

	return task
}

func nullableTime(value *time.Time) sql.NullTime {
	if value == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *value, Valid: true}
}
