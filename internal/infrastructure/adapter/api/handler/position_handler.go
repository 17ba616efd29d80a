package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PositionHandler serves aggregated positions
type PositionHandler struct {
	positions usecase.PositionUseCase
	logger    coreport.Logger
}

// NewPositionHandler creates a new position handler instance
func NewPositionHandler(positions usecase.PositionUseCase, logger coreport.Logger) *PositionHandler {
	return &PositionHandler{
		positions: positions,
		logger:    logger,
	}
}

// GetPositions handles the GET /api/positions/:userId endpoint
func (h *PositionHandler) GetPositions(c *gin.Context) {
	ctx := c.Request.Context()
	userID := c.Param("userId")

	positions, err := h.positions.Build(ctx, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	exposure, err := h.positions.NetExposure(ctx, userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPositionsResponse(positions, exposure))
}
