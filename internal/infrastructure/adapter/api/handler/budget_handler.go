package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// BudgetHandler handles weekly budget requests
type BudgetHandler struct {
	budgets usecase.BudgetLedger
	logger  coreport.Logger
}

// NewBudgetHandler creates a new budget handler instance
func NewBudgetHandler(budgets usecase.BudgetLedger, logger coreport.Logger) *BudgetHandler {
	return &BudgetHandler{
		budgets: budgets,
		logger:  logger,
	}
}

// SetBudget handles the PUT /api/budgets/:userId endpoint
func (h *BudgetHandler) SetBudget(c *gin.Context) {
	var req dto.SetBudgetRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	budget, err := h.budgets.SetBudget(c.Request.Context(), c.Param("userId"), *req.AmountCents, req.PermissionExpiresAt)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}

// GetBudget handles the GET /api/budgets/:userId endpoint
func (h *BudgetHandler) GetBudget(c *gin.Context) {
	budget, err := h.budgets.GetBudget(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewBudgetResponse(budget))
}
