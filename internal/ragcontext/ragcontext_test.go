package ragcontext_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/persistorai/graphrag/internal/models"
	"github.com/persistorai/graphrag/internal/ragcontext"
)

type failingAnswerer struct{}

func (failingAnswerer) Answer(context.Context, string, []models.Fact) (string, error) {
	return "", errors.New("model offline")
}

func TestBuild(t *testing.T) {
	facts := []models.Fact{"Alice --[reports_to]--> Bob"}

	res, err := ragcontext.Build(context.Background(), ragcontext.StaticAnswerer{Text: "Bob"}, "q?", "Alice", 1, facts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Query != "q?" || res.Start != "Alice" || res.Depth != 1 || res.Answer != "Bob" {
		t.Errorf("unexpected result %+v", res)
	}

	if len(res.Facts) != 1 {
		t.Errorf("expected 1 fact, got %d", len(res.Facts))
	}
}

func TestBuild_AnswererError(t *testing.T) {
	if _, err := ragcontext.Build(context.Background(), failingAnswerer{}, "q", "a", 1, nil); err == nil {
		t.Fatal("expected error")
	}
}

func TestWrite_DemoLayout(t *testing.T) {
	res := &models.ContextResult{
		Query: ragcontext.DemoQuery,
		Facts: []models.Fact{
			"Alice --[reports_to]--> Bob",
			"Bob --[leads]--> Project_X",
			"Bob --[leads]--> Project_Y",
		},
		Answer: ragcontext.DemoAnswer,
	}

	var buf bytes.Buffer
	if err := ragcontext.Write(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Query: Who does Alice report to, and what projects do they lead?\n" +
		"Subgraph context (for LLM):\n" +
		"  Alice --[reports_to]--> Bob\n" +
		"  Bob --[leads]--> Project_X\n" +
		"  Bob --[leads]--> Project_Y\n" +
		"\n" +
		"→ LLM would answer: Alice reports to Bob, who leads Project_X and Project_Y.\n"

	if buf.String() != want {
		t.Errorf("output mismatch\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestWrite_NoFacts(t *testing.T) {
	var buf bytes.Buffer
	if err := ragcontext.Write(&buf, &models.ContextResult{Query: "q", Answer: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Query: q\nSubgraph context (for LLM):\n\n→ LLM would answer: a\n"
	if buf.String() != want {
		t.Errorf("got %q, want %q", buf.String(), want)
	}
}
