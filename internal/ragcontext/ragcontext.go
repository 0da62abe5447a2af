// Package ragcontext assembles traversed facts into language-model context and
// renders it for the console.
package ragcontext

import (
	"context"
	"fmt"
	"io"

	"github.com/persistorai/graphrag/internal/models"
)

// Built-in demo query against the default dataset.
const (
	DemoQuery  = "Who does Alice report to, and what projects do they lead?"
	DemoStart  = "Alice"
	DemoAnswer = "Alice reports to Bob, who leads Project_X and Project_Y."
)

// Answerer turns a query plus graph facts into a natural-language answer.
type Answerer interface {
	Answer(ctx context.Context, query string, facts []models.Fact) (string, error)
}

// StaticAnswerer always returns the same answer. It stands in for a model.
type StaticAnswerer struct {
	Text string
}

// Answer implements Answerer.
func (a StaticAnswerer) Answer(_ context.Context, _ string, _ []models.Fact) (string, error) {
	return a.Text, nil
}

// Build packages facts for query and asks answerer for a response.
func Build(ctx context.Context, answerer Answerer, query, start string, depth int, facts []models.Fact) (*models.ContextResult, error) {
	answer, err := answerer.Answer(ctx, query, facts)
	if err != nil {
		return nil, fmt.Errorf("answering query: %w", err)
	}

	return &models.ContextResult{
		Query:  query,
		Start:  start,
		Depth:  depth,
		Facts:  facts,
		Answer: answer,
	}, nil
}

// Write renders res in the console layout: the query, one indented line per fact,
// then the answer.
func Write(w io.Writer, res *models.ContextResult) error {
	if _, err := fmt.Fprintf(w, "Query: %s\nSubgraph context (for LLM):\n", res.Query); err != nil {
		return err
	}

	if err := WriteFacts(w, res.Facts); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "\n→ LLM would answer: %s\n", res.Answer)

	return err
}

// WriteFacts writes each fact on its own line with a two-space indent.
func WriteFacts(w io.Writer, facts []models.Fact) error {
	for _, f := range facts {
		if _, err := fmt.Fprintf(w, "  %s\n", f); err != nil {
			return err
		}
	}

	return nil
}
