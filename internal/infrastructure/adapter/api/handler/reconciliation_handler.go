package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// ReconciliationHandler exposes the liability ledger
type ReconciliationHandler struct {
	reconciliations usecase.ReconciliationUseCase
	logger          coreport.Logger
}

// NewReconciliationHandler creates a new reconciliation handler instance
func NewReconciliationHandler(reconciliations usecase.ReconciliationUseCase, logger coreport.Logger) *ReconciliationHandler {
	return &ReconciliationHandler{
		reconciliations: reconciliations,
		logger:          logger,
	}
}

// ListOpen handles the GET /api/reconciliations endpoint
func (h *ReconciliationHandler) ListOpen(c *gin.Context) {
	items, err := h.reconciliations.ListOpen(c.Request.Context(), c.Query("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	resp := dto.ReconciliationListResponse{
		OK:    true,
		Items: make([]dto.ReconciliationResponse, 0, len(items)),
	}
	for _, item := range items {
		resp.Items = append(resp.Items, dto.NewReconciliationResponse(item))
	}
	c.JSON(http.StatusOK, resp)
}

// Resolve handles the POST /api/reconciliations/:id/resolve endpoint
func (h *ReconciliationHandler) Resolve(c *gin.Context) {
	var req dto.ResolveRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	item, err := h.reconciliations.Resolve(c.Request.Context(), c.Param("id"), req.Resolution)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("Reconciliation item resolved", map[string]any{
		"reconciliation_id": item.ID,
		"user_id":           item.UserID,
		"amount_units":      item.AmountUnits,
	})
	c.JSON(http.StatusOK, dto.ReconciliationEnvelope{
		OK:   true,
		Item: dto.NewReconciliationResponse(item),
	})
}
