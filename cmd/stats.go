package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/quizforge/quizforge/internal/app"
	"github.com/quizforge/quizforge/internal/ledger"
	"github.com/quizforge/quizforge/internal/quiz"
	"github.com/quizforge/quizforge/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz performance statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		hist, err := app.HydrateLedger(context.Background(), s.EventRepo())
		if err != nil {
			return fmt.Errorf("load quiz history: %w", err)
		}

		history := hist.History()
		if len(history) == 0 {
			fmt.Println("No quizzes taken yet.")
			return nil
		}

		overall := ledger.Summarize(history)
		fmt.Println("Overall")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("Quizzes taken:   %d\n", overall.Quizzes)
		fmt.Printf("Topics covered:  %d\n", overall.TopicsCovered)
		fmt.Printf("Mean accuracy:   %.0f%%\n", overall.MeanAccuracy*100)

		fmt.Println()
		fmt.Println("By Topic")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("%-24s  %7s  %5s  %8s\n", "Topic", "Quizzes", "Score", "Accuracy")
		for _, ts := range ledger.ByTopic(history) {
			fmt.Printf("%-24s  %7d  %2d/%-2d  %7.0f%%\n",
				truncate(ts.Topic, 24), ts.Quizzes, ts.Score, ts.Total, ts.MeanAccuracy*100)
		}

		counts := ledger.DifficultyCounts(history)
		fmt.Println()
		fmt.Println("By Difficulty")
		fmt.Println(strings.Repeat("─", 48))
		for _, d := range []quiz.Difficulty{quiz.Easy, quiz.Medium, quiz.Hard} {
			fmt.Printf("%-8s  %d\n", d, counts[d])
		}

		return nil
	},
}
