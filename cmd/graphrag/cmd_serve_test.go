package main

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/persistorai/graphrag/internal/config"
)

func TestServe_ShutsDownOnCancel(t *testing.T) {
	cfg := &config.Config{
		Port:         "0",
		ListenHost:   "127.0.0.1",
		CORSOrigins:  []string{"http://localhost:3002"},
		LogLevel:     "error",
		MaxDepth:     10,
		BatchWorkers: 2,
	}
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg, log) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not shut down")
	}
}

func TestServe_BadTriplesFile(t *testing.T) {
	cfg := &config.Config{Port: "0", ListenHost: "127.0.0.1", LogLevel: "error", TriplesFile: "/nonexistent/kg.yaml"}
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	if err := serve(context.Background(), cfg, log); err == nil {
		t.Fatal("expected error for missing triples file")
	}
}

func TestNewLogger(t *testing.T) {
	log := newLogger(&config.Config{LogLevel: "debug"})
	if log.GetLevel() != logrus.DebugLevel {
		t.Errorf("level = %s", log.GetLevel())
	}
	if _, ok := log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Errorf("expected JSON formatter, got %T", log.Formatter)
	}
}
