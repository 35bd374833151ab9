package ports

import (
	"context"

	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
)

type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	FindByID(ctx context.Context, ownerID, taskID uint64) (domain.Task, error)
	List(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, ownerID, taskID uint64) error
	CountByOwner(ctx context.Context, ownerID uint64) (int, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error)
	GetTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error)
	CreateTask(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error)
	DeleteTask(ctx context.Context, ownerID, taskID uint64) error
}
