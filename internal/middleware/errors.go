package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/persistorai/graphrag/internal/httputil"
)

// Error codes emitted by middleware.
const (
	ErrCodeRateLimited     = "rate_limited"
	ErrCodeBodyTooLarge    = "body_too_large"
	ErrCodeUnsupportedType = "unsupported_media_type"
)

// respondError delegates to the shared httputil.RespondError helper.
func respondError(c *gin.Context, code int, errCode, message string) {
	httputil.RespondError(c, code, errCode, message)
}
