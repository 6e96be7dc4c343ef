package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathlab/internal/catalog"
	"github.com/abhisek/mathlab/internal/explain"
	"github.com/abhisek/mathlab/internal/generator"
	"github.com/abhisek/mathlab/internal/llm"
	"github.com/abhisek/mathlab/internal/logger"
	"github.com/abhisek/mathlab/internal/store"
)

// newLogger honors --log-mode, then MATHLAB_LOG_MODE, then def.
func newLogger(cmd *cobra.Command, def string) (*logger.Logger, error) {
	mode, _ := cmd.Flags().GetString("log-mode")
	if mode == "" {
		mode = logger.ModeFromEnv(def)
	}
	return logger.New(mode)
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

func newRegistry(log *logger.Logger) (*generator.Registry, error) {
	reg, err := generator.New(catalog.Default(), generator.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("build generator registry: %w", err)
	}
	return reg, nil
}

// newTutor returns a tutor backed by the configured LLM provider. Without
// a provider the tutor still answers with recorded walkthroughs.
func newTutor(ctx context.Context, cmd *cobra.Command, rec llm.EventRecorder, log *logger.Logger) *explain.Tutor {
	cfg, ok := llm.Resolve()
	if !ok {
		return explain.NewTutor(nil, log)
	}
	provider, err := llm.NewProvider(ctx, cfg, rec, log)
	if err != nil {
		color.New(color.FgYellow).Fprintln(cmd.ErrOrStderr(), "LLM provider not configured:", err)
		return explain.NewTutor(nil, log)
	}
	return explain.NewTutor(provider, log)
}

// resolveTopic maps a case-insensitive topic name to its catalog form and
// grade. Unknown topics are an error here; the registry would silently
// fall back.
func resolveTopic(reg *generator.Registry, topic string) (string, int, error) {
	name, ok := reg.Catalog().Canonical(topic)
	if !ok {
		return "", 0, fmt.Errorf("unknown topic %q (see `mathlab topics`)", topic)
	}
	grade, _ := reg.Grade(name)
	return name, grade, nil
}
