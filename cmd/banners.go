package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"storkeep-cli/api"
	"storkeep-cli/funnel"
)

func bannersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "banners",
		Short: "View and manage promotional banners",
	}

	cmd.AddCommand(bannersShowCmd())
	cmd.AddCommand(bannersDismissCmd())
	cmd.AddCommand(bannersClickCmd())
	cmd.AddCommand(bannersListCmd())
	cmd.AddCommand(bannersAddCmd())
	cmd.AddCommand(bannersUpdateCmd())
	cmd.AddCommand(bannersRemoveCmd())
	return cmd
}

func bannersShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the banner targeted at this session",
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := getTracker()
			if err != nil {
				return err
			}

			banner, err := tracker.CurrentBanner(context.Background())
			if err != nil {
				return err
			}
			if banner == nil {
				fmt.Println("No banner for this session.")
				return nil
			}

			if outputJSON {
				return writeJSON(banner)
			}

			fmt.Printf("%s (%s)\n", banner.Title, banner.ID)
			fmt.Println(banner.Message)
			if banner.CTAText != "" {
				fmt.Printf("[%s] %s\n", banner.CTAText, banner.CTAURL)
			}
			return nil
		},
	}

	return cmd
}

func bannersDismissCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dismiss <banner-id>",
		Short: "Dismiss a banner for this profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tracker, err := getTracker()
			if err != nil {
				return err
			}
			if err := tracker.Dismiss(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Dismissed banner %s.\n", args[0])
			return nil
		},
	}

	return cmd
}

func bannersClickCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "click <banner-id>",
		Short: "Follow a banner's call to action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			banners, err := client.GetBanners(context.Background(), "", false)
			if err != nil {
				return err
			}

			for _, banner := range banners {
				if banner.ID != args[0] {
					continue
				}
				track(funnel.EventBannerClicked, map[string]any{"banner_id": banner.ID})
				if banner.CTAURL != "" {
					fmt.Println(banner.CTAURL)
				} else {
					fmt.Println("Banner has no link.")
				}
				return nil
			}
			return fmt.Errorf("banner %q not found", args[0])
		},
	}

	return cmd
}

func bannersListCmd() *cobra.Command {
	var stage string
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List banners",
		RunE: func(cmd *cobra.Command, args []string) error {
			banners, err := client.GetBanners(context.Background(), stage, activeOnly)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(banners)
			}

			if len(banners) == 0 {
				fmt.Println("No banners.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tTITLE\tSTAGES\tACTIVE")
			}
			for _, banner := range banners {
				stages := "all"
				if len(banner.FunnelStages) > 0 {
					stages = strings.Join(banner.FunnelStages, ",")
				}
				active := "no"
				if banner.Active {
					active = "yes"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", banner.ID, banner.Title, stages, active)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Filter to one funnel stage")
	cmd.Flags().BoolVar(&activeOnly, "active", false, "Only active banners")
	return cmd
}

func bannersAddCmd() *cobra.Command {
	var payload api.BannerRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a banner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload.Title == "" || payload.Message == "" {
				return fmt.Errorf("--title and --message are required")
			}

			banner, err := client.CreateBanner(context.Background(), payload)
			if err != nil {
				return err
			}
			fmt.Printf("Created banner %s.\n", banner.ID)
			return nil
		},
	}

	addBannerFlags(cmd, &payload)
	return cmd
}

func bannersUpdateCmd() *cobra.Command {
	var payload api.BannerRequest

	cmd := &cobra.Command{
		Use:   "update <banner-id>",
		Short: "Update a banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload.Title == "" || payload.Message == "" {
				return fmt.Errorf("--title and --message are required")
			}

			banner, err := client.UpdateBanner(context.Background(), args[0], payload)
			if err != nil {
				return err
			}
			fmt.Printf("Updated banner %s.\n", banner.ID)
			return nil
		},
	}

	addBannerFlags(cmd, &payload)
	return cmd
}

func addBannerFlags(cmd *cobra.Command, payload *api.BannerRequest) {
	cmd.Flags().StringVar(&payload.Title, "title", "", "Banner title")
	cmd.Flags().StringVar(&payload.Message, "message", "", "Banner message")
	cmd.Flags().StringVar(&payload.CTAText, "cta-text", "", "Call-to-action label")
	cmd.Flags().StringVar(&payload.CTAURL, "cta-url", "", "Call-to-action link")
	cmd.Flags().StringSliceVar(&payload.FunnelStages, "stage", nil, "Target funnel stage (repeatable; none targets all)")
	cmd.Flags().StringVar(&payload.Style, "style", "", "Display style")
	cmd.Flags().BoolVar(&payload.Active, "active", true, "Banner is active")
}

func bannersRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <banner-id>",
		Short: "Delete a banner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(fmt.Sprintf("Delete banner %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			if err := client.DeleteBanner(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted banner %s.\n", args[0])
			return nil
		},
	}

	return cmd
}
