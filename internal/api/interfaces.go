package api

import (
	"context"

	"github.com/persistorai/graphrag/internal/models"
	"github.com/persistorai/graphrag/internal/service"
)

// GraphService defines the graph operations used by GraphHandler.
type GraphService interface {
	Subgraph(ctx context.Context, start string, depth int) (*models.SubgraphResult, error)
	Context(ctx context.Context, query, start string, depth int) (*models.ContextResult, error)
	Batch(ctx context.Context, queries []service.BatchQuery) ([]models.SubgraphResult, error)
	Entities(ctx context.Context) []string
	Edges(ctx context.Context, entity string) *models.EdgesResult
	Stats(ctx context.Context) models.Stats
}

// Compile-time check: *service.GraphService must satisfy GraphService.
var _ GraphService = (*service.GraphService)(nil)
