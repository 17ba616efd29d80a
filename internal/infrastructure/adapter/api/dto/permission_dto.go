package dto

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/trade-saga/internal/domain/entity"
	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
)

// SpendPermissionRequest represents the API request for storing a spend permission.
// permissionPayload may be the signed permission object or a JSON string holding it.
type SpendPermissionRequest struct {
	UserID            string          `json:"userId" binding:"required"`
	PermissionHash    string          `json:"permissionHash"`
	PermissionPayload json.RawMessage `json:"permissionPayload" binding:"required"`
	Token             string          `json:"token" binding:"required"`
	Allowance         json.Number     `json:"allowance" binding:"required"`
	PeriodSeconds     int64           `json:"periodSeconds" binding:"required"`
	StartUnix         int64           `json:"startUnix"`
	EndUnix           int64           `json:"endUnix"`
}

// ToEntity maps the request to a permission record
func (r SpendPermissionRequest) ToEntity() (*entity.SpendPermission, error) {
	allowance, err := strconv.ParseInt(r.Allowance.String(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: allowance must be an integer amount of base units", errs.ErrInvalidPermission)
	}

	payload := string(r.PermissionPayload)
	var quoted string
	if err := json.Unmarshal(r.PermissionPayload, &quoted); err == nil {
		payload = quoted
	}

	return &entity.SpendPermission{
		UserID:            r.UserID,
		PermissionHash:    r.PermissionHash,
		TokenAddress:      r.Token,
		AllowanceUnits:    allowance,
		PeriodSeconds:     r.PeriodSeconds,
		StartUnix:         r.StartUnix,
		EndUnix:           r.EndUnix,
		PermissionPayload: payload,
	}, nil
}

// SpendPermissionResponse is a stored permission
type SpendPermissionResponse struct {
	UserID         string     `json:"userId"`
	PermissionHash string     `json:"permissionHash"`
	Token          string     `json:"token"`
	AllowanceUnits int64      `json:"allowance"`
	PeriodSeconds  int64      `json:"periodSeconds"`
	StartUnix      int64      `json:"startUnix"`
	EndUnix        int64      `json:"endUnix"`
	ExpiresAt      *time.Time `json:"expiresAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
}

// PermissionEnvelope wraps a permission in a success response
type PermissionEnvelope struct {
	OK         bool                    `json:"ok"`
	Permission SpendPermissionResponse `json:"permission"`
}

// NewPermissionEnvelope maps a permission
func NewPermissionEnvelope(p *entity.SpendPermission) PermissionEnvelope {
	return PermissionEnvelope{
		OK: true,
		Permission: SpendPermissionResponse{
			UserID:         p.UserID,
			PermissionHash: p.PermissionHash,
			Token:          p.TokenAddress,
			AllowanceUnits: p.AllowanceUnits,
			PeriodSeconds:  p.PeriodSeconds,
			StartUnix:      p.StartUnix,
			EndUnix:        p.EndUnix,
			ExpiresAt:      p.ExpiresAt(),
			CreatedAt:      p.CreatedAt,
		},
	}
}
