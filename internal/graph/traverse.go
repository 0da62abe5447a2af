package graph

import (
	"github.com/persistorai/graphrag/internal/models"
)

// DefaultDepth is the number of expansion rounds used when callers do not pick one.
const DefaultDepth = 2

// Visitor is called once per traversed edge. round is zero-based.
type Visitor func(round int, node string, edge models.Edge)

// Traverse runs exactly depth breadth-first rounds from start, calling visit for every
// edge of every frontier node. Edges into already visited entities are still reported;
// only the frontier is deduplicated. Rounds continue after the frontier empties.
// It returns the number of rounds executed.
func (g *Graph) Traverse(start string, depth int, visit Visitor) int {
	visited := map[string]bool{start: true}
	frontier := []string{start}

	rounds := 0
	for ; rounds < depth; rounds++ {
		var nextFrontier []string

		for _, node := range frontier {
			for _, e := range g.Edges(node) {
				visit(rounds, node, e)

				if !visited[e.Target] {
					visited[e.Target] = true
					nextFrontier = append(nextFrontier, e.Target)
				}
			}
		}

		frontier = nextFrontier
	}

	return rounds
}

// Subgraph returns every traversed edge as a fact, in discovery order: round by round,
// node by node, edge by edge. depth <= 0 yields an empty result.
func (g *Graph) Subgraph(start string, depth int) []models.Fact {
	facts := make([]models.Fact, 0)

	g.Traverse(start, depth, func(_ int, node string, e models.Edge) {
		facts = append(facts, FormatFact(node, e.Relation, e.Target))
	})

	return facts
}

// FormatFact renders one edge as "<source> --[<relation>]--> <target>".
func FormatFact(source, relation, target string) models.Fact {
	return source + " --[" + relation + "]--> " + target
}
