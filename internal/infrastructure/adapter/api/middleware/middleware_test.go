package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/trade-saga/internal/domain/error"
	coreport "github.com/amirhossein-jamali/trade-saga/internal/domain/port/core"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/trade-saga/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/trade-saga/mocks/port/core"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type observation struct {
	method string
	path   string
	status int
}

type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *recordingObserver) ObserveHTTP(method, path string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{method: method, path: path, status: status})
}

func TestRequestID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
	}{
		{"propagates caller id", "req-123"},
		{"assigns an id when absent", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			var seen string
			router := gin.New()
			router.Use(RequestID())
			router.GET("/x", func(c *gin.Context) {
				seen = coreport.RequestIDFromContext(c.Request.Context())
				c.Status(http.StatusNoContent)
			})
			req := httptest.NewRequest(http.MethodGet, "/x", nil)
			if tt.incoming != "" {
				req.Header.Set(RequestIDHeader, tt.incoming)
			}
			w := httptest.NewRecorder()

			// Act
			router.ServeHTTP(w, req)

			// Assert
			require.NotEmpty(t, seen)
			assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, seen)
			}
		})
	}
}

func TestErrorHandler_RecoversPanic(t *testing.T) {
	// Arrange
	log := coremocks.NewMockLogger(t)
	log.EXPECT().Error("Panic recovered in API request", mock.MatchedBy(func(fields map[string]any) bool {
		return fields["error"] == "boom" && fields["path"] == "/panic"
	})).Once()

	router := gin.New()
	router.Use(ErrorHandler(log))
	router.GET("/panic", func(c *gin.Context) { panic("boom") })
	w := httptest.NewRecorder()

	// Act
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	// Assert
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Equal(t, errs.CodeInternalServer, body.Error)
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	// Arrange
	observer := &recordingObserver{}
	router := gin.New()
	router.Use(Logger(logger.NewNoopLogger()), Metrics(observer))
	router.GET("/api/budgets/:userId", func(c *gin.Context) { c.Status(http.StatusOK) })

	// Act
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/budgets/0xabc", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	// Assert
	require.Len(t, observer.seen, 2)
	assert.Equal(t, observation{http.MethodGet, "/api/budgets/:userId", http.StatusOK}, observer.seen[0])
	assert.Equal(t, observation{http.MethodGet, "unmatched", http.StatusNotFound}, observer.seen[1])
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "Success", statusText(204))
	assert.Equal(t, "Client Error", statusText(402))
	assert.Equal(t, "Server Error", statusText(503))
}
