// Package graph holds the in-memory knowledge graph and its breadth-first traversal.
package graph

import (
	"sort"

	"github.com/persistorai/graphrag/internal/models"
)

// Graph is an adjacency mapping from entity to its outgoing edges.
// It is read-only after Build and safe for concurrent readers.
type Graph struct {
	adj   map[string][]models.Edge
	edges int
}

// Build converts triples into an adjacency mapping. Only entities that appear as a
// source become keys; each key keeps its edges in input order.
func Build(triples []models.Triple) *Graph {
	g := &Graph{adj: make(map[string][]models.Edge)}

	for _, t := range triples {
		g.adj[t.Source] = append(g.adj[t.Source], models.Edge{Relation: t.Relation, Target: t.Target})
		g.edges++
	}

	return g
}

// Edges returns the outgoing edges of entity. An entity with no outgoing triples,
// including one that never appeared in the input, has zero edges.
func (g *Graph) Edges(entity string) []models.Edge {
	return g.adj[entity]
}

// Has reports whether entity is a key in the adjacency mapping.
func (g *Graph) Has(entity string) bool {
	_, ok := g.adj[entity]
	return ok
}

// Entities returns every source entity, sorted.
func (g *Graph) Entities() []string {
	names := make([]string, 0, len(g.adj))
	for name := range g.adj {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Len returns the number of source entities.
func (g *Graph) Len() int {
	return len(g.adj)
}

// EdgeCount returns the total number of edges.
func (g *Graph) EdgeCount() int {
	return g.edges
}
