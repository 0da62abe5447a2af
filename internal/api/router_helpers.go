package api

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphrag/internal/graph"
	"github.com/persistorai/graphrag/internal/middleware"
)

// maxEntityLen bounds entity names taken from paths and bodies.
const maxEntityLen = 255

func ginLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		log.WithFields(logrus.Fields{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"duration":   time.Since(start).String(),
			"client":     c.ClientIP(),
			"request_id": middleware.GetRequestID(c),
		}).Info("request")
	}
}

// parseDepth reads an optional depth query value. Negative depths are accepted
// and produce an empty traversal.
func parseDepth(s string) (int, error) {
	if s == "" {
		return graph.DefaultDepth, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("depth must be an integer")
	}

	return v, nil
}

// validateEntity checks that an entity name is non-empty and within length limits.
func validateEntity(name string) error {
	if name == "" {
		return fmt.Errorf("entity must not be empty")
	}

	if len(name) > maxEntityLen {
		return fmt.Errorf("entity exceeds maximum length of %d", maxEntityLen)
	}

	return nil
}
