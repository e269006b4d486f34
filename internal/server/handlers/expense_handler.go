package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mamadbah2/dairyfarm/internal/domain/models"
)

// ExpenseService describes the expense ledger operations.
type ExpenseService interface {
	Create(ctx context.Context, expense models.Expense) (*models.Expense, error)
	List(ctx context.Context) ([]models.Expense, error)
}

// ExpenseHandler serves /expenses.
type ExpenseHandler struct {
	svc    ExpenseService
	logger *zap.Logger
}

// NewExpenseHandler constructs the HTTP handler adapter.
func NewExpenseHandler(svc ExpenseService, logger *zap.Logger) *ExpenseHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExpenseHandler{svc: svc, logger: logger}
}

type expensePayload struct {
	Description string     `json:"description"`
	Amount      jsonNumber `json:"amount"`
	Date        jsonDate   `json:"date"`
}

// Create stores an expense as received.
func (h *ExpenseHandler) Create(c *gin.Context) {
	var payload expensePayload
	if !bindJSON(c, h.logger, &payload) {
		return
	}

	date, err := payload.Date.Time()
	if err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := h.svc.Create(c.Request.Context(), models.Expense{
		Description: payload.Description,
		Amount:      float64(payload.Amount),
		Date:        date,
	})
	if err != nil {
		h.logger.Error("failed to save the expense record", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to save the expense record")
		return
	}

	c.JSON(http.StatusOK, saved)
}

// List returns every expense.
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.svc.List(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to retrieve expense records", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to retrieve expense records")
		return
	}
	c.JSON(http.StatusOK, expenses)
}
