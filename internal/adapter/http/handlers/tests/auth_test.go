package tests

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/dto"
	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/handlers"
	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/middleware"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
	"github.com/WinchoCode/Qpurpuse-API/pkg/apierrors"
	"github.com/WinchoCode/Qpurpuse-API/pkg/translator"
)

func newAuthRouter(serviceMock *authServiceMock) *gin.Engine {
	handler := handlers.NewAuthHandler(serviceMock)
	tokenService := newTestTokenService()

	router := gin.New()
	api := router.Group("/api", middleware.LanguageMiddleware())
	api.POST("/register", handler.Register)
	api.POST("/login", handler.Login)
	api.GET("/me", middleware.AuthMiddleware(tokenService), handler.Me)
	return router
}

func TestAuthHandler_Register_Success(t *testing.T) {
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)

	serviceMock := new(authServiceMock)
	serviceMock.On("Register", mock.Anything, "alice", "secret1").Return(
		domain.User{ID: 1, Username: "alice", PasswordHash: "$2a$10$hash", CreatedAt: createdAt},
		"signed-token",
		nil,
	).Once()

	router := newAuthRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":"  alice  ","password":"secret1"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "User registered successfully", got.Message)
	require.Equal(t, uint64(1), got.User.ID)
	require.Equal(t, "alice", got.User.Username)
	require.Equal(t, "2026-02-13T10:20:30Z", got.User.CreatedAt)
	require.Equal(t, 0, got.User.TaskCount)
	require.Equal(t, "signed-token", got.AccessToken)

	// The serialized user must never expose the stored hash.
	require.NotContains(t, rec.Body.String(), "password")
	require.NotContains(t, rec.Body.String(), "$2a$")

	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Register_UsernameTaken(t *testing.T) {
	serviceMock := new(authServiceMock)
	serviceMock.On("Register", mock.Anything, "alice", "secret1").
		Return(domain.User{}, "", domain.ErrUsernameTaken).Once()

	router := newAuthRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":"alice","password":"secret1"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Username already exists.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Register_ShortUsername(t *testing.T) {
	serviceMock := new(authServiceMock)
	router := newAuthRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":"ab","password":"secret1"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Username must be at least 3 characters.", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_MissingFields(t *testing.T) {
	serviceMock := new(authServiceMock)
	router := newAuthRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(`{"username":"alice"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Username and password are required.", got.ErrDetails.Message)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)

	serviceMock := new(authServiceMock)
	serviceMock.On("Login", mock.Anything, "alice", "secret1").Return(
		domain.User{ID: 1, Username: "alice", CreatedAt: createdAt, TaskCount: 3},
		"fresh-token",
		nil,
	).Once()

	router := newAuthRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"alice","password":"secret1"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Login successful", got.Message)
	require.Equal(t, uint64(1), got.User.ID)
	require.Equal(t, 3, got.User.TaskCount)
	require.Equal(t, "fresh-token", got.AccessToken)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	serviceMock := new(authServiceMock)
	serviceMock.On("Login", mock.Anything, "alice", "wrong").
		Return(domain.User{}, "", domain.ErrInvalidCredentials).Once()

	router := newAuthRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"username":"alice","password":"wrong"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid username or password.", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Me_Success(t *testing.T) {
	createdAt := time.Date(2026, 2, 13, 10, 20, 30, 0, time.UTC)

	serviceMock := new(authServiceMock)
	serviceMock.On("CurrentUser", mock.Anything, uint64(42)).Return(
		domain.User{ID: 42, Username: "alice", CreatedAt: createdAt, TaskCount: 2},
		nil,
	).Once()

	router := newAuthRouter(serviceMock)
	token, err := newTestTokenService().Generate(42)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(42), got.User.ID)
	require.Equal(t, 2, got.User.TaskCount)
	serviceMock.AssertExpectations(t)
}

func TestAuthHandler_Me_MissingToken(t *testing.T) {
	serviceMock := new(authServiceMock)
	router := newAuthRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Authorization token is required.", got.ErrDetails.Message)
	serviceMock.AssertNotCalled(t, "CurrentUser", mock.Anything, mock.Anything)
}

func TestAuthHandler_Me_InvalidToken(t *testing.T) {
	serviceMock := new(authServiceMock)
	router := newAuthRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid or expired token.", got.ErrDetails.Message)
}
