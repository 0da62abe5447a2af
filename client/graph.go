package client

import (
	"context"
	"net/url"
	"strconv"
)

// GraphService handles traversal operations.
type GraphService struct {
	c *Client
}

// Subgraph traverses from start for exactly depth rounds. depth <= 0 yields no facts.
func (s *GraphService) Subgraph(ctx context.Context, start string, depth int) (*SubgraphResult, error) {
	params := url.Values{}
	params.Set("depth", strconv.Itoa(depth))
	return s.subgraph(ctx, start, params)
}

// SubgraphDefault traverses from start using the server's default depth.
func (s *GraphService) SubgraphDefault(ctx context.Context, start string) (*SubgraphResult, error) {
	return s.subgraph(ctx, start, nil)
}

func (s *GraphService) subgraph(ctx context.Context, start string, params url.Values) (*SubgraphResult, error) {
	var resp SubgraphResult
	if err := s.c.get(ctx, "/api/v1/graph/subgraph/"+url.PathEscape(start), params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Batch runs several traversals in one request. Results keep query order.
func (s *GraphService) Batch(ctx context.Context, queries []BatchQuery) ([]SubgraphResult, error) {
	var resp struct {
		Results []SubgraphResult `json:"results"`
	}
	if err := s.c.post(ctx, "/api/v1/graph/subgraph/batch", map[string]any{"queries": queries}, &resp); err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Context traverses from req.Start and returns the facts with an answer for req.Query.
func (s *GraphService) Context(ctx context.Context, req ContextRequest) (*ContextResult, error) {
	var resp ContextResult
	if err := s.c.post(ctx, "/api/v1/graph/context", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
