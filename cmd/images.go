package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"storkeep-cli/api"
)

func imagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Manage marketing image assets",
	}

	cmd.AddCommand(imagesListCmd())
	cmd.AddCommand(imagesAddCmd())
	cmd.AddCommand(imagesUpdateCmd())
	cmd.AddCommand(imagesRemoveCmd())
	cmd.AddCommand(imagesAssignCmd())
	return cmd
}

func imagesListCmd() *cobra.Command {
	var category string
	var tags []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List image assets",
		RunE: func(cmd *cobra.Command, args []string) error {
			images, err := client.GetImages(context.Background(), category, tags)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(images)
			}

			if len(images) == 0 {
				fmt.Println("No images.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tNAME\tCATEGORY\tTAGS\tURL")
			}
			for _, image := range images {
				tagCol := "-"
				if len(image.Tags) > 0 {
					tagCol = strings.Join(image.Tags, ",")
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
					image.ID,
					image.Name,
					image.Category,
					tagCol,
					image.URL,
				)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category (hero, unit, feature, gallery)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Filter by tag (repeatable)")
	return cmd
}

func imagesAddCmd() *cobra.Command {
	var payload api.ImageRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register an image asset",
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload.Name == "" || payload.URL == "" {
				return fmt.Errorf("--name and --url are required")
			}

			image, err := client.CreateImage(context.Background(), payload)
			if err != nil {
				return err
			}
			fmt.Printf("Created image %s (%s).\n", image.ID, image.Name)
			return nil
		},
	}

	addImageFlags(cmd, &payload)
	return cmd
}

func imagesUpdateCmd() *cobra.Command {
	var payload api.ImageRequest

	cmd := &cobra.Command{
		Use:   "update <image-id>",
		Short: "Update an image asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload.Name == "" || payload.URL == "" {
				return fmt.Errorf("--name and --url are required")
			}

			image, err := client.UpdateImage(context.Background(), args[0], payload)
			if err != nil {
				return err
			}
			fmt.Printf("Updated image %s.\n", image.ID)
			return nil
		},
	}

	addImageFlags(cmd, &payload)
	return cmd
}

func addImageFlags(cmd *cobra.Command, payload *api.ImageRequest) {
	cmd.Flags().StringVar(&payload.Name, "name", "", "Image name")
	cmd.Flags().StringVar(&payload.URL, "url", "", "Image URL")
	cmd.Flags().StringVar(&payload.Category, "category", "gallery", "Category (hero, unit, feature, gallery)")
	cmd.Flags().StringSliceVar(&payload.Tags, "tag", nil, "Tag (repeatable)")
	cmd.Flags().StringVar(&payload.Description, "description", "", "Description")
}

func imagesRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <image-id>",
		Short: "Delete an image asset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(fmt.Sprintf("Delete image %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			if err := client.DeleteImage(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted image %s.\n", args[0])
			return nil
		},
	}

	return cmd
}

func imagesAssignCmd() *cobra.Command {
	var unitID string
	var imageURL string

	cmd := &cobra.Command{
		Use:   "assign",
		Short: "Assign an image URL to a virtual unit",
		RunE: func(cmd *cobra.Command, args []string) error {
			if unitID == "" || imageURL == "" {
				return fmt.Errorf("--unit and --url are required")
			}

			if err := client.SetUnitImage(context.Background(), unitID, imageURL); err != nil {
				return err
			}
			fmt.Printf("Unit %s now uses %s.\n", unitID, imageURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&unitID, "unit", "", "Virtual unit ID")
	cmd.Flags().StringVar(&imageURL, "url", "", "Image URL")
	return cmd
}
