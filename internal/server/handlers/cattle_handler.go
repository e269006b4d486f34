package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
	"github.com/mamadbah2/dairyfarm/internal/service/cattle"
)

// CattleService describes the herd registry operations.
type CattleService interface {
	List(ctx context.Context) ([]models.Cattle, error)
	Register(ctx context.Context, record models.Cattle) (*models.Cattle, error)
}

// CattleHandler serves /cattles and /cattle.
type CattleHandler struct {
	svc    CattleService
	logger *zap.Logger
}

// NewCattleHandler constructs the HTTP handler adapter.
func NewCattleHandler(svc CattleService, logger *zap.Logger) *CattleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CattleHandler{svc: svc, logger: logger}
}

type cattlePayload struct {
	Name       string   `json:"name"`
	Age        jsonText `json:"age"`
	Breed      string   `json:"breed"`
	Gender     string   `json:"gender"`
	IsPregnant jsonBool `json:"isPregnant"`
}

// List returns the whole herd.
func (h *CattleHandler) List(c *gin.Context) {
	herd, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("error fetching cattle data", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}
	c.JSON(http.StatusOK, herd)
}

// Register adds an animal to the herd.
func (h *CattleHandler) Register(c *gin.Context) {
	var payload cattlePayload
	if !bindJSON(c, h.logger, &payload) {
		return
	}

	created, err := h.svc.Register(c.Request.Context(), models.Cattle{
		Name:       payload.Name,
		Age:        string(payload.Age),
		Breed:      payload.Breed,
		Gender:     payload.Gender,
		IsPregnant: bool(payload.IsPregnant),
	})
	switch {
	case errors.Is(err, cattle.ErrMissingFields):
		respondError(c, http.StatusBadRequest, "Required fields are missing")
		return
	case err != nil:
		h.logger.Error("error registering new cattle", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	c.JSON(http.StatusCreated, created)
}
