package handler

import (
	"net/http"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/dto"
	"github.com/gin-gonic/gin"
)

// serverMessages replaces internal error text on 5xx responses
var serverMessages = map[string]string{
	errs.CodeSpendFailed:    "Failed to pull funds under the spend permission",
	errs.CodeOrderFailed:    "Exchange order failed",
	errs.CodeStoreError:     "Storage is unavailable",
	errs.CodeInternalServer: "Internal server error",
}

// respondError writes the error envelope and logs with the error's correlation fields
func respondError(c *gin.Context, logger coreport.Logger, err error) {
	status := errs.HTTPStatus(err)
	code := errs.Code(err)

	fields := errs.LogFields(err)
	fields["path"] = c.FullPath()
	fields["method"] = c.Request.Method
	if id := coreport.RequestIDFromContext(c.Request.Context()); id != "" {
		fields["request_id"] = id
	}

	message := err.Error()
	if status >= http.StatusInternalServerError {
		logger.Error("Request failed", fields)
		if m, ok := serverMessages[code]; ok {
			message = m
		}
	} else {
		logger.Warn("Request rejected", fields)
	}

	_ = c.Error(err)
	c.JSON(status, dto.ErrorResponse{
		OK:      false,
		Error:   code,
		Message: message,
	})
}

// bindJSON decodes the body and reports a malformed body as missing params
func bindJSON(c *gin.Context, logger coreport.Logger, obj any) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		logger.Warn("Invalid request format", map[string]any{
			"path":  c.FullPath(),
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			OK:      false,
			Error:   errs.CodeMissingParams,
			Message: "Invalid request format: " + err.Error(),
		})
		return false
	}
	return true
}
