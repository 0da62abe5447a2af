package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/persistorai/graphrag/internal/dataset"
	"github.com/persistorai/graphrag/internal/graph"
)

// Build-time variables set via ldflags.
var (
	version   = "0.1.0"
	commit    = ""
	buildDate = ""
)

const defaultURL = ""

var (
	flagURL     string
	flagTriples string
	flagFmt     string
)

func versionString() string {
	if commit != "" && buildDate != "" {
		return fmt.Sprintf("graphrag version %s (commit: %s, built: %s)", version, commit, buildDate)
	}
	return fmt.Sprintf("graphrag version %s-dev", version)
}

type configFile struct {
	URL     string `yaml:"url"`
	Triples string `yaml:"triples"`
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "graphrag",
		Short:   "graphrag: knowledge-graph context for language models",
		Version: versionString(),
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			resolveConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.Context(), cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&flagURL, "url", defaultURL, "Query a running graphrag server instead of the local graph (env: GRAPHRAG_URL)")
	rootCmd.PersistentFlags().StringVar(&flagTriples, "triples", "", "YAML/JSON triples file; built-in example when empty (env: GRAPHRAG_TRIPLES_FILE)")
	rootCmd.PersistentFlags().StringVar(&flagFmt, "format", "text", "Output format: text|json")

	rootCmd.AddCommand(newSubgraphCmd())
	rootCmd.AddCommand(newEntitiesCmd())
	rootCmd.AddCommand(newServeCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig fills unset flags from the environment, then ~/.graphrag/config.yaml.
func resolveConfig() {
	if flagURL == defaultURL {
		flagURL = os.Getenv("GRAPHRAG_URL")
	}
	if flagTriples == "" {
		flagTriples = os.Getenv("GRAPHRAG_TRIPLES_FILE")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	data, err := os.ReadFile(filepath.Join(home, ".graphrag", "config.yaml"))
	if err != nil {
		return
	}
	var cfg configFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return
	}
	if flagURL == defaultURL && cfg.URL != "" {
		flagURL = cfg.URL
	}
	if flagTriples == "" && cfg.Triples != "" {
		flagTriples = cfg.Triples
	}
}

// loadGraph builds the local graph from --triples or the built-in example.
func loadGraph() (*graph.Graph, error) {
	triples, err := dataset.Resolve(flagTriples)
	if err != nil {
		return nil, fmt.Errorf("loading triples: %w", err)
	}
	return graph.Build(triples), nil
}
