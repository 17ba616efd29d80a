package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// TradeHandler handles trade and sell requests
type TradeHandler struct {
	trades usecase.TradeUseCase
	logger coreport.Logger
}

// NewTradeHandler creates a new trade handler instance
func NewTradeHandler(trades usecase.TradeUseCase, logger coreport.Logger) *TradeHandler {
	return &TradeHandler{
		trades: trades,
		logger: logger,
	}
}

// ExecuteTrade handles the POST /api/trades endpoint
func (h *TradeHandler) ExecuteTrade(c *gin.Context) {
	var req dto.TradeRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.trades.ExecuteTrade(c.Request.Context(), req.ToIntent())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	txIDs := result.TxIDs
	if txIDs == nil {
		txIDs = []string{}
	}
	c.JSON(http.StatusOK, dto.TradeResponse{
		OK:            true,
		Order:         dto.NewOrderResponse(result.Order),
		ReservationID: result.ReservationID,
		CostCents:     result.CostCents,
		TxIDs:         txIDs,
	})
}

// SellPosition handles the POST /api/positions/sell endpoint
func (h *TradeHandler) SellPosition(c *gin.Context) {
	var req dto.SellRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	result, err := h.trades.SellPosition(c.Request.Context(), req.ToIntent())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.SellResponse{
		OK:            true,
		Order:         dto.NewOrderResponse(result.Order),
		LedgerOrderID: result.LedgerOrderID,
	})
}
