package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/quizforge/quizforge/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check whether a newer quizforge release is available",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker(selfupdate.WithTimeout(30 * time.Second))

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if err != nil {
			if errors.Is(err, selfupdate.ErrDevBuild) {
				fmt.Println("Cannot check updates for a development build. Install a release build first.")
				return nil
			}
			return err
		}

		if !result.UpdateAvailable {
			fmt.Println("Already running the latest version.")
			return nil
		}

		fmt.Printf("New version available: %s (running %s)\n", result.LatestVersion, result.CurrentVersion)
		fmt.Printf("Download: %s\n", result.ReleaseURL)
		return nil
	},
}
