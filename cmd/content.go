package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"storkeep-cli/api"
)

func contentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "content",
		Short: "Manage site content blocks",
	}

	cmd.AddCommand(contentListCmd())
	cmd.AddCommand(contentAddCmd())
	cmd.AddCommand(contentUpdateCmd())
	cmd.AddCommand(contentRemoveCmd())
	return cmd
}

func contentListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List content blocks",
		RunE: func(cmd *cobra.Command, args []string) error {
			blocks, err := client.GetContent(context.Background())
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(blocks)
			}

			if len(blocks) == 0 {
				fmt.Println("No content blocks.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tSECTION\tTITLE\tUPDATED")
			}
			for _, block := range blocks {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n",
					block.ID,
					block.Section,
					block.Title,
					formatAPITime(block.UpdatedAt),
				)
			}
			return writer.Flush()
		},
	}

	return cmd
}

func contentAddCmd() *cobra.Command {
	var payload api.ContentRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a content block",
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload.Section == "" || payload.Title == "" {
				return fmt.Errorf("--section and --title are required")
			}

			block, err := client.CreateContent(context.Background(), payload)
			if err != nil {
				return err
			}
			fmt.Printf("Created content block %s in section %s.\n", block.ID, block.Section)
			return nil
		},
	}

	addContentFlags(cmd, &payload)
	return cmd
}

func contentUpdateCmd() *cobra.Command {
	var payload api.ContentRequest

	cmd := &cobra.Command{
		Use:   "update <content-id>",
		Short: "Update a content block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := client.UpdateContent(context.Background(), args[0], payload)
			if err != nil {
				return err
			}
			fmt.Printf("Updated content block %s.\n", block.ID)
			return nil
		},
	}

	addContentFlags(cmd, &payload)
	return cmd
}

func addContentFlags(cmd *cobra.Command, payload *api.ContentRequest) {
	cmd.Flags().StringVar(&payload.Section, "section", "", "Page section (hero, features, pricing, faq)")
	cmd.Flags().StringVar(&payload.Title, "title", "", "Title")
	cmd.Flags().StringVar(&payload.Body, "body", "", "Body text")
	cmd.Flags().StringVar(&payload.ImageURL, "image-url", "", "Image URL")
}

func contentRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <content-id>",
		Short: "Delete a content block",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(fmt.Sprintf("Delete content block %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			if err := client.DeleteContent(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted content block %s.\n", args[0])
			return nil
		},
	}

	return cmd
}
