package tests

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	appservice "github.com/WinchoCode/Qpurpuse-API/internal/app/service"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/ports"
)

const testJWTSecret = "this-is-a-test-secret-with-32-bytes!"

// newTestTokenService backs the auth middleware in handler tests; bearer
// tokens are real, only the services behind the handlers are mocked.
func newTestTokenService() ports.TokenService {
	return appservice.NewTokenService(testJWTSecret, time.Hour)
}

type authServiceMock struct {
	mock.Mock
}

func (m *authServiceMock) Register(ctx context.Context, username, password string) (domain.User, string, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *authServiceMock) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(domain.User), args.String(1), args.Error(2)
}

func (m *authServiceMock) CurrentUser(ctx context.Context, userID uint64) (domain.User, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *authServiceMock) DeleteAccount(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context, ownerID uint64, filter domain.TaskFilter) ([]domain.Task, error) {
	args := m.Called(ctx, ownerID, filter)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, ownerID, taskID uint64) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, ownerID uint64, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, ownerID, taskID uint64, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, ownerID, taskID, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, ownerID, taskID uint64) error {
	args := m.Called(ctx, ownerID, taskID)
	return args.Error(0)
}
