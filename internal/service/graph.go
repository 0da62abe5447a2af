// Package service provides business logic between API handlers and the in-memory graph.
package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphrag/internal/graph"
	"github.com/persistorai/graphrag/internal/metrics"
	"github.com/persistorai/graphrag/internal/models"
	"github.com/persistorai/graphrag/internal/ragcontext"
)

// Defaults applied when Options leaves a field zero.
const (
	defaultMaxDepth     = 10
	defaultBatchWorkers = 4
)

// Options tunes a GraphService.
type Options struct {
	MaxDepth     int
	BatchWorkers int
	Answerer     ragcontext.Answerer
}

// GraphService wraps a read-only Graph with logging, metrics and depth limits.
type GraphService struct {
	g        *graph.Graph
	answerer ragcontext.Answerer
	log      *logrus.Logger
	maxDepth int
	workers  int
}

// NewGraphService creates a GraphService over g.
func NewGraphService(g *graph.Graph, log *logrus.Logger, opts Options) *GraphService {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = defaultMaxDepth
	}

	if opts.BatchWorkers <= 0 {
		opts.BatchWorkers = defaultBatchWorkers
	}

	if opts.Answerer == nil {
		opts.Answerer = ragcontext.StaticAnswerer{Text: ragcontext.DemoAnswer}
	}

	metrics.EntityCount.Set(float64(g.Len()))
	metrics.EdgeCount.Set(float64(g.EdgeCount()))

	return &GraphService{
		g:        g,
		answerer: opts.Answerer,
		log:      log,
		maxDepth: opts.MaxDepth,
		workers:  opts.BatchWorkers,
	}
}

// MaxDepth returns the largest depth the service accepts.
func (s *GraphService) MaxDepth() int {
	return s.maxDepth
}

func (s *GraphService) checkDepth(depth int) error {
	if depth > s.maxDepth {
		return fmt.Errorf("%w: %d > %d", models.ErrDepthTooLarge, depth, s.maxDepth)
	}

	return nil
}

// Subgraph returns the facts reachable from start within depth rounds.
func (s *GraphService) Subgraph(ctx context.Context, start string, depth int) (*models.SubgraphResult, error) {
	if err := s.checkDepth(depth); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	facts := s.g.Subgraph(start, depth)

	s.log.WithFields(logrus.Fields{
		"start": start,
		"depth": depth,
		"facts": len(facts),
	}).Debug("graph.subgraph")

	metrics.TraversalsTotal.WithLabelValues("subgraph").Inc()
	metrics.TraversalFacts.Observe(float64(len(facts)))

	return &models.SubgraphResult{Start: start, Depth: depth, Facts: facts}, nil
}

// Context traverses from start and assembles the facts as model context for query.
func (s *GraphService) Context(ctx context.Context, query, start string, depth int) (*models.ContextResult, error) {
	sub, err := s.Subgraph(ctx, start, depth)
	if err != nil {
		return nil, err
	}

	res, err := ragcontext.Build(ctx, s.answerer, query, start, depth, sub.Facts)
	if err != nil {
		return nil, fmt.Errorf("building context: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"start": start,
		"depth": depth,
	}).Debug("graph.context")

	return res, nil
}

// Entities lists every source entity.
func (s *GraphService) Entities(_ context.Context) []string {
	return s.g.Entities()
}

// Edges returns entity's outgoing edges. Unknown entities have none.
func (s *GraphService) Edges(_ context.Context, entity string) *models.EdgesResult {
	edges := s.g.Edges(entity)
	if edges == nil {
		edges = []models.Edge{}
	}

	return &models.EdgesResult{Entity: entity, Edges: edges}
}

// Stats reports graph size.
func (s *GraphService) Stats(_ context.Context) models.Stats {
	return models.Stats{Entities: s.g.Len(), Edges: s.g.EdgeCount()}
}
