package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/persistorai/graphrag/internal/models"
)

// maxBatchSize caps the number of traversals in one batch.
const maxBatchSize = 100

// BatchQuery names one traversal in a batch.
type BatchQuery struct {
	Start string `json:"start"`
	Depth int    `json:"depth"`
}

// ErrBatchTooLarge is returned when a batch exceeds maxBatchSize.
var ErrBatchTooLarge = fmt.Errorf("batch exceeds maximum of %d queries", maxBatchSize)

// Batch runs independent traversals in parallel over the shared read-only graph.
// Results are returned in the same order as queries.
func (s *GraphService) Batch(ctx context.Context, queries []BatchQuery) ([]models.SubgraphResult, error) {
	if len(queries) > maxBatchSize {
		return nil, ErrBatchTooLarge
	}

	for i, q := range queries {
		if err := s.checkDepth(q.Depth); err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
	}

	results := make([]models.SubgraphResult, len(queries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, q := range queries {
		g.Go(func() error {
			res, err := s.Subgraph(gctx, q.Start, q.Depth)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}

			results[i] = *res

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"queries": len(queries),
		"workers": s.workers,
	}).Debug("graph.batch")

	return results, nil
}
