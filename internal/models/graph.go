package models

// Fact is a readable rendering of one traversed edge, e.g. "Alice --[reports_to]--> Bob".
type Fact = string

// SubgraphResult holds the facts collected by a bounded BFS from Start.
type SubgraphResult struct {
	Start string `json:"start"`
	Depth int    `json:"depth"`
	Facts []Fact `json:"facts"`
}

// ContextResult is a subgraph assembled as model context, plus the answer produced for Query.
type ContextResult struct {
	Query  string `json:"query"`
	Start  string `json:"start"`
	Depth  int    `json:"depth"`
	Facts  []Fact `json:"facts"`
	Answer string `json:"answer"`
}

// EdgesResult lists the outgoing edges of a single entity.
type EdgesResult struct {
	Entity string `json:"entity"`
	Edges  []Edge `json:"edges"`
}

// Stats summarizes the loaded graph.
type Stats struct {
	Entities int `json:"entities"`
	Edges    int `json:"edges"`
}
