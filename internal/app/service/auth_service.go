package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/ports"
)

type AuthService struct {
	userRepository ports.UserRepository
	taskRepository ports.TaskRepository
	tokenService   ports.TokenService
}

var _ ports.AuthService = (*AuthService)(nil)

func NewAuthService(userRepository ports.UserRepository, taskRepository ports.TaskRepository, tokenService ports.TokenService) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		taskRepository: taskRepository,
		tokenService:   tokenService,
	}
}

func (s *AuthService) Register(ctx context.Context, username, password string) (domain.User, string, error) {
	username = strings.TrimSpace(username)

	// Pre-check keeps the common case friendly; the unique index on username
	// still catches the concurrent-registration race inside Create.
	_, err := s.userRepository.FindByUsername(ctx, username)
	if err == nil {
		return domain.User{}, "", domain.ErrUsernameTaken
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, "", err
	}

	user := domain.User{
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.userRepository.Create(ctx, &user); err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokenService.Generate(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (domain.User, string, error) {
	user, err := s.userRepository.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			// Unknown username and wrong password are indistinguishable.
			return domain.User{}, "", domain.ErrInvalidCredentials
		}
		return domain.User{}, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return domain.User{}, "", domain.ErrInvalidCredentials
	}

	user.TaskCount, err = s.taskRepository.CountByOwner(ctx, user.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	token, err := s.tokenService.Generate(user.ID)
	if err != nil {
		return domain.User{}, "", err
	}

	return user, token, nil
}

func (s *AuthService) CurrentUser(ctx context.Context, userID uint64) (domain.User, error) {
	user, err := s.userRepository.FindByID(ctx, userID)
	if err != nil {
		return domain.User{}, err
	}

	user.TaskCount, err = s.taskRepository.CountByOwner(ctx, user.ID)
	if err != nil {
		return domain.User{}, err
	}

	return user, nil
}

func (s *AuthService) DeleteAccount(ctx context.Context, userID uint64) error {
	// Owned tasks go with the account via the foreign key cascade.
	return s.userRepository.Delete(ctx, userID)
}
