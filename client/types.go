package client

// Edge is one outgoing (relation, target) pair.
type Edge struct {
	Relation string `json:"relation"`
	Target   string `json:"target"`
}

// SubgraphResult holds the facts collected by a traversal.
type SubgraphResult struct {
	Start string   `json:"start"`
	Depth int      `json:"depth"`
	Facts []string `json:"facts"`
}

// ContextResult is a subgraph assembled as model context plus the answer.
type ContextResult struct {
	Query  string   `json:"query"`
	Start  string   `json:"start"`
	Depth  int      `json:"depth"`
	Facts  []string `json:"facts"`
	Answer string   `json:"answer"`
}

// EdgesResult lists an entity's outgoing edges.
type EdgesResult struct {
	Entity string `json:"entity"`
	Edges  []Edge `json:"edges"`
}

// BatchQuery names one traversal in a batch. A nil Depth uses the server default.
type BatchQuery struct {
	Start string `json:"start"`
	Depth *int   `json:"depth,omitempty"`
}

// ContextRequest is the payload for Graph.Context.
type ContextRequest struct {
	Query string `json:"query"`
	Start string `json:"start"`
	Depth *int   `json:"depth,omitempty"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	Entities      int     `json:"entities"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// StatsResponse reports graph size.
type StatsResponse struct {
	Entities int `json:"entities"`
	Edges    int `json:"edges"`
}
