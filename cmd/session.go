package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"storkeep-cli/storage"
)

func sessionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect the local visitor session",
	}

	cmd.AddCommand(sessionShowCmd())
	cmd.AddCommand(sessionResetCmd())
	return cmd
}

func sessionShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show session id, funnel stage, and dismissed banners",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := storage.LoadOrCreateSession()
			if err != nil {
				return err
			}

			tracker, err := getTracker()
			if err != nil {
				return err
			}

			stage, err := tracker.Stage(context.Background())
			if err != nil {
				// Stage lookup is display-only; degrade instead of failing.
				stage = "unknown"
			}

			if outputJSON {
				return writeJSON(map[string]any{
					"session_id":        session.ID,
					"funnel_stage":      stage,
					"dismissed_banners": session.DismissedBanners,
				})
			}

			fmt.Printf("Session:   %s\n", session.ID)
			fmt.Printf("Stage:     %s\n", stage)
			fmt.Printf("Dismissed: %d banner(s)\n", len(session.DismissedBanners))
			for _, id := range session.DismissedBanners {
				fmt.Printf("  - %s\n", id)
			}
			return nil
		},
	}

	return cmd
}

func sessionResetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard the session id and dismissed banners",
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm("Reset session? A new session id will be generated")
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			if err := storage.ClearSession(); err != nil {
				return err
			}
			fmt.Println("Session reset.")
			return nil
		},
	}

	return cmd
}
