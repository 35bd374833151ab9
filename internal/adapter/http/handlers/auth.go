package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/dto"
	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/mapper"
	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/middleware"
	"github.com/WinchoCode/Qpurpuse-API/internal/adapter/http/validation"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/domain"
	"github.com/WinchoCode/Qpurpuse-API/internal/core/ports"
	"github.com/WinchoCode/Qpurpuse-API/pkg/apierrors"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *gin.Context) {
	lang := middleware.GetLang(c)

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAuthPayload, lang),
		)
		return
	}

	var req dto.RegisterRequest
	raw, err := validation.DecodeJSON(body, &req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAuthPayload, lang),
		)
		return
	}

	username, password, err := validation.BuildRegisterCredentials(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, registerValidationKey(err), lang),
		)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameTaken) {
			c.JSON(
				http.StatusBadRequest,
				apierrors.CreateError(http.StatusBadRequest, apierrors.MsgUsernameTaken, lang),
			)
			return
		}

		zap.L().Error("failed to register user", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailRegister, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message:     "User registered successfully",
		User:        mapper.ToUserItem(user),
		AccessToken: token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	lang := middleware.GetLang(c)

	body, err := c.GetRawData()
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAuthPayload, lang),
		)
		return
	}

	var req dto.LoginRequest
	raw, err := validation.DecodeJSON(body, &req)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidAuthPayload, lang),
		)
		return
	}

	username, password, err := validation.RequireLoginCredentials(req, raw)
	if err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgMissingCredentials, lang),
		)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidCredentials, lang),
			)
			return
		}

		zap.L().Error("failed to log user in", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailLogin, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Message:     "Login successful",
		User:        mapper.ToUserItem(user),
		AccessToken: token,
	})
}

func (h *AuthHandler) Me(c *gin.Context) {
	lang := middleware.GetLang(c)

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(
			http.StatusUnauthorized,
			apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidToken, lang),
		)
		return
	}

	user, err := h.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(
				http.StatusNotFound,
				apierrors.CreateError(http.StatusNotFound, apierrors.MsgUserNotFound, lang),
			)
			return
		}

		zap.L().Error("failed to load profile", zap.Uint64("user_id", userID), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailGetProfile, lang),
		)
		return
	}

	c.JSON(http.StatusOK, dto.UserResponse{User: mapper.ToUserItem(user)})
}

func registerValidationKey(err error) string {
	switch {
	case errors.Is(err, validation.ErrUsernameTooShort):
		return apierrors.MsgUsernameTooShort
	case errors.Is(err, validation.ErrPasswordTooShort):
		return apierrors.MsgPasswordTooShort
	default:
		return apierrors.MsgMissingCredentials
	}
}
