package models

// maxFieldLen bounds entity and relation names read from external input.
const maxFieldLen = 255

// Triple is one (source, relation, target) statement used to build the graph.
type Triple struct {
	Source   string `json:"source" yaml:"source"`
	Relation string `json:"relation" yaml:"relation"`
	Target   string `json:"target" yaml:"target"`
}

// Validate checks that required fields are present and within limits.
func (t *Triple) Validate() error {
	if t.Source == "" {
		return ErrMissingSource
	}

	if len(t.Source) > maxFieldLen {
		return ErrFieldTooLong("source", maxFieldLen)
	}

	if t.Relation == "" {
		return ErrMissingRelation
	}

	if len(t.Relation) > maxFieldLen {
		return ErrFieldTooLong("relation", maxFieldLen)
	}

	if t.Target == "" {
		return ErrMissingTarget
	}

	if len(t.Target) > maxFieldLen {
		return ErrFieldTooLong("target", maxFieldLen)
	}

	return nil
}

// Edge is one outgoing (relation, target) pair in an entity's adjacency list.
type Edge struct {
	Relation string `json:"relation"`
	Target   string `json:"target"`
}
