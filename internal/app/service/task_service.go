package service

import (
	"context"
	"time"

	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
}

var _ ports.TaskService = (*TaskService)(nil)

func NewTaskService(taskRepository ports.TaskRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository}
}

func (s *TaskService) ListTasks(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	return s.taskRepository.List(ctx, ownerID, filter)
}

func (s *TaskService) GetTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	return s.taskRepository.FindByID(ctx, ownerID, taskID)
}

func (s *TaskService) CreateTask(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	now := time.Now().UTC()
	task := domain.Task{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		IsCompleted: input.IsCompleted,
		CreatedAt:   now,
		UpdatedAt:   now,
		UserID:      ownerID,
	}

	if err := s.taskRepository.Create(ctx, &task); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	task, err := s.taskRepository.FindByID(ctx, ownerID, taskID)
	if err != nil {
		return domain.Task{}, err
	}

	if input.Title != nil {
		task.Title = *input.Title
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.DueDateSet {
		task.DueDate = input.DueDate
	}
	if input.IsCompleted != nil {
		task.IsCompleted = *input.IsCompleted
	}

	// Bumped even when the payload changed nothing.
	task.UpdatedAt = time.Now().UTC()

	if err := s.taskRepository.Update(ctx, &task); err != nil {
		return domain.Task{}, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, ownerID, taskID uint64) error {
	return s.taskRepository.Delete(ctx, ownerID, taskID)
}
