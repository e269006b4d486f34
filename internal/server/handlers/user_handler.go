package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/service/users"
)

// UserService describes the account operations used by the HTTP layer.
type UserService interface {
	Register(ctx context.Context, profile models.User) error
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
}

// UserHandler serves /signup and /login.
type UserHandler struct {
	svc    UserService
	logger *zap.Logger
}

// NewUserHandler constructs the HTTP handler adapter.
func NewUserHandler(svc UserService, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{svc: svc, logger: logger}
}

// Signup registers a new farm account.
func (h *UserHandler) Signup(c *gin.Context) {
	var profile models.User
	if !bindJSON(c, h.logger, &profile) {
		return
	}

	err := h.svc.Register(c.Request.Context(), profile)
	switch {
	case errors.Is(err, users.ErrEmailExists):
		respondError(c, http.StatusConflict, "Email already exists")
		return
	case err != nil:
		h.logger.Error("failed to sign up", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to sign up")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User signed up successfully"})
}

// Login checks credentials and returns the stored account.
func (h *UserHandler) Login(c *gin.Context) {
	var creds models.Credentials
	if !bindJSON(c, h.logger, &creds) {
		return
	}

	user, err := h.svc.Authenticate(c.Request.Context(), creds.Email, creds.Password)
	switch {
	case errors.Is(err, users.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, users.ErrInvalidPassword):
		respondError(c, http.StatusUnauthorized, "Invalid password")
		return
	case err != nil:
		h.logger.Error("failed to log in", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User logged in successfully", "user": user})
}
