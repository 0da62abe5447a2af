package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/persistorai/graphrag/client"
	"github.com/persistorai/graphrag/internal/graph"
	"github.com/persistorai/graphrag/internal/ragcontext"
)

func newSubgraphCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "subgraph <entity>",
		Short: "BFS traverse from an entity and print the facts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			facts, err := subgraphFacts(cmd.Context(), args[0], depth)
			if err != nil {
				return err
			}
			result := map[string]any{"start": args[0], "depth": depth, "facts": facts}
			return output(cmd.OutOrStdout(), result, func(w io.Writer) error {
				return ragcontext.WriteFacts(w, facts)
			})
		},
	}
	cmd.Flags().IntVar(&depth, "depth", graph.DefaultDepth, "Number of expansion rounds")
	return cmd
}

func subgraphFacts(ctx context.Context, start string, depth int) ([]string, error) {
	if flagURL != "" {
		res, err := client.New(flagURL, client.WithUserAgent(versionString())).Graph.Subgraph(ctx, start, depth)
		if err != nil {
			return nil, fmt.Errorf("remote subgraph: %w", err)
		}
		return res.Facts, nil
	}

	g, err := loadGraph()
	if err != nil {
		return nil, err
	}
	return g.Subgraph(start, depth), nil
}
