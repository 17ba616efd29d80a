package handler

import (
	"net/http"

	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// PermissionHandler handles spend permission requests
type PermissionHandler struct {
	permissions usecase.SpendPermissionStore
	logger      coreport.Logger
}

// NewPermissionHandler creates a new permission handler instance
func NewPermissionHandler(permissions usecase.SpendPermissionStore, logger coreport.Logger) *PermissionHandler {
	return &PermissionHandler{
		permissions: permissions,
		logger:      logger,
	}
}

// StorePermission handles the POST /api/spend-permissions endpoint
func (h *PermissionHandler) StorePermission(c *gin.Context) {
	var req dto.SpendPermissionRequest
	if !bindJSON(c, h.logger, &req) {
		return
	}

	record, err := req.ToEntity()
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	stored, err := h.permissions.Store(c.Request.Context(), record)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	h.logger.Info("Spend permission stored", map[string]any{
		"user_id":         stored.UserID,
		"permission_hash": stored.PermissionHash,
		"allowance_units": stored.AllowanceUnits,
	})
	c.JSON(http.StatusOK, dto.NewPermissionEnvelope(stored))
}

// GetLatest handles the GET /api/spend-permissions/:userId endpoint
func (h *PermissionHandler) GetLatest(c *gin.Context) {
	permission, err := h.permissions.GetLatest(c.Request.Context(), c.Param("userId"))
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPermissionEnvelope(permission))
}
