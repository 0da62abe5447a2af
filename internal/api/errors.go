package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/persistorai/graphrag/internal/httputil"
	"github.com/persistorai/graphrag/internal/metrics"
)

// Error code constants for standardized API responses.
const (
	ErrCodeInvalidRequest = "invalid_request"
	ErrCodeNotFound       = "not_found"
	ErrCodeInternalError  = "internal_error"
)

// respondError writes a standardized JSON error response and counts it.
func respondError(c *gin.Context, status int, code, message string) {
	metrics.ErrorsTotal.WithLabelValues(code).Inc()
	httputil.RespondError(c, status, code, message)
}

// noRoute answers unknown paths with the standard error body.
func noRoute(c *gin.Context) {
	respondError(c, http.StatusNotFound, ErrCodeNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
}
