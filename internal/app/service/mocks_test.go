package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
)

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *userRepositoryMock) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) FindByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) Create(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepositoryMock) FindByID(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) List(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, task *domain.Task) error {
	args := m.Called(ctx, task)
	return args.Error(0)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, ownerID, taskID uint64) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}

func (m *taskRepositoryMock) CountByOwner(ctx context.Context, ownerID uint64) (int, error) {
	args := m.Called(ctx, ownerID)
	return args.Int(0), args.Error(1)
}
