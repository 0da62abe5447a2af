package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphrag/internal/graph"
	"github.com/persistorai/graphrag/internal/models"
	"github.com/persistorai/graphrag/internal/service"
)

// GraphHandler serves entity listing and subgraph traversal endpoints.
type GraphHandler struct {
	svc GraphService
	log *logrus.Logger
}

// NewGraphHandler creates a GraphHandler with the given service and logger.
func NewGraphHandler(svc GraphService, log *logrus.Logger) *GraphHandler {
	return &GraphHandler{svc: svc, log: log}
}

// Entities handles GET /api/v1/entities.
func (h *GraphHandler) Entities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"entities": h.svc.Entities(c.Request.Context())})
}

// Edges handles GET /api/v1/entities/:name/edges. Unknown entities have no edges.
func (h *GraphHandler) Edges(c *gin.Context) {
	name := c.Param("name")
	if err := validateEntity(name); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	c.JSON(http.StatusOK, h.svc.Edges(c.Request.Context(), name))
}

// Stats handles GET /api/v1/stats.
func (h *GraphHandler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Stats(c.Request.Context()))
}

// Subgraph handles GET /api/v1/graph/subgraph/:start?depth=N.
func (h *GraphHandler) Subgraph(c *gin.Context) {
	start := c.Param("start")
	if err := validateEntity(start); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	depth, err := parseDepth(c.Query("depth"))
	if err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	result, err := h.svc.Subgraph(c.Request.Context(), start, depth)
	if err != nil {
		h.fail(c, err, "traversing subgraph")

		return
	}

	c.JSON(http.StatusOK, result)
}

type batchRequest struct {
	Queries []batchQuery `json:"queries"`
}

type batchQuery struct {
	Start string `json:"start"`
	Depth *int   `json:"depth,omitempty"`
}

// Batch handles POST /api/v1/graph/subgraph/batch.
func (h *GraphHandler) Batch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	queries := make([]service.BatchQuery, 0, len(req.Queries))
	for i, q := range req.Queries {
		if err := validateEntity(q.Start); err != nil {
			respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, fmt.Sprintf("query %d: %s", i, err))

			return
		}

		depth := graph.DefaultDepth
		if q.Depth != nil {
			depth = *q.Depth
		}

		queries = append(queries, service.BatchQuery{Start: q.Start, Depth: depth})
	}

	results, err := h.svc.Batch(c.Request.Context(), queries)
	if err != nil {
		h.fail(c, err, "running batch traversal")

		return
	}

	c.JSON(http.StatusOK, gin.H{"results": results})
}

type contextRequest struct {
	Query string `json:"query"`
	Start string `json:"start"`
	Depth *int   `json:"depth,omitempty"`
}

// Context handles POST /api/v1/graph/context.
func (h *GraphHandler) Context(c *gin.Context) {
	var req contextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "invalid request body")

		return
	}

	if req.Query == "" {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, "query is required")

		return
	}

	if err := validateEntity(req.Start); err != nil {
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())

		return
	}

	depth := graph.DefaultDepth
	if req.Depth != nil {
		depth = *req.Depth
	}

	result, err := h.svc.Context(c.Request.Context(), req.Query, req.Start, depth)
	if err != nil {
		h.fail(c, err, "building context")

		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *GraphHandler) fail(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, models.ErrDepthTooLarge), errors.Is(err, service.ErrBatchTooLarge):
		respondError(c, http.StatusBadRequest, ErrCodeInvalidRequest, err.Error())
	default:
		h.log.WithError(err).Error(msg)
		respondError(c, http.StatusInternalServerError, ErrCodeInternalError, "internal server error")
	}
}
