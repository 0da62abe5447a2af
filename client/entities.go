package client

import (
	"context"
	"net/url"
)

// EntityService lists entities and their edges.
type EntityService struct {
	c *Client
}

// List returns every source entity, sorted.
func (s *EntityService) List(ctx context.Context) ([]string, error) {
	var resp struct {
		Entities []string `json:"entities"`
	}
	if err := s.c.get(ctx, "/api/v1/entities", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Entities, nil
}

// Edges returns the outgoing edges of name.
func (s *EntityService) Edges(ctx context.Context, name string) (*EdgesResult, error) {
	var resp EdgesResult
	if err := s.c.get(ctx, "/api/v1/entities/"+url.PathEscape(name)+"/edges", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
