package cmd

import (
	"fmt"
	"os"

	"github.com/quizforge/quizforge/internal/app"
	"github.com/quizforge/quizforge/internal/llm"
	"github.com/quizforge/quizforge/internal/quizgen"
	"github.com/quizforge/quizforge/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()

	hist, err := app.HydrateLedger(ctx, eventRepo)
	if err != nil {
		return fmt.Errorf("load quiz history: %w", err)
	}

	opts := app.Options{
		EventRepo: eventRepo,
		Ledger:    hist,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Quiz generation will be unavailable.")
	} else {
		opts.Generator = quizgen.NewLLMGenerator(provider)
	}

	return app.Run(opts)
}
