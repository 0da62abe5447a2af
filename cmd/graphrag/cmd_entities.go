package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/persistorai/graphrag/client"
)

type entityRow struct {
	Name  string `json:"name"`
	Edges int    `json:"edges"`
}

func newEntitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List entities with outgoing edges",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := entityRows(cmd.Context())
			if err != nil {
				return err
			}
			return output(cmd.OutOrStdout(), rows, func(w io.Writer) error {
				table := make([][]string, 0, len(rows))
				for _, r := range rows {
					table = append(table, []string{r.Name, strconv.Itoa(r.Edges)})
				}
				formatTable(w, []string{"ENTITY", "EDGES"}, table)
				return nil
			})
		},
	}
}

func entityRows(ctx context.Context) ([]entityRow, error) {
	if flagURL != "" {
		c := client.New(flagURL, client.WithUserAgent(versionString()))
		names, err := c.Entities.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("remote entities: %w", err)
		}
		rows := make([]entityRow, 0, len(names))
		for _, n := range names {
			edges, err := c.Entities.Edges(ctx, n)
			if err != nil {
				return nil, fmt.Errorf("remote edges for %q: %w", n, err)
			}
			rows = append(rows, entityRow{Name: n, Edges: len(edges.Edges)})
		}
		return rows, nil
	}

	g, err := loadGraph()
	if err != nil {
		return nil, err
	}
	rows := make([]entityRow, 0, g.Len())
	for _, n := range g.Entities() {
		rows = append(rows, entityRow{Name: n, Edges: len(g.Edges(n))})
	}
	return rows, nil
}
