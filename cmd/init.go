package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Seed the backend with sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.InitializeSampleData(context.Background()); err != nil {
				return err
			}
			fmt.Println("Sample data initialized.")
			return nil
		},
	}

	return cmd
}
