package main

import (
	"context"
	"io"

	"github.com/persistorai/graphrag/internal/dataset"
	"github.com/persistorai/graphrag/internal/graph"
	"github.com/persistorai/graphrag/internal/ragcontext"
)

// runDemo answers the built-in query against the built-in graph.
func runDemo(ctx context.Context, w io.Writer) error {
	g := graph.Build(dataset.Default())
	facts := g.Subgraph(ragcontext.DemoStart, graph.DefaultDepth)

	res, err := ragcontext.Build(ctx, ragcontext.StaticAnswerer{Text: ragcontext.DemoAnswer},
		ragcontext.DemoQuery, ragcontext.DemoStart, graph.DefaultDepth, facts)
	if err != nil {
		return err
	}

	return ragcontext.Write(w, res)
}
