package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"storkeep-cli/api"
)

func loyaltyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "loyalty",
		Short: "Manage loyalty points",
	}

	cmd.AddCommand(loyaltyShowCmd())
	cmd.AddCommand(loyaltyPointsCmd("award", "Award points to a customer", client.AwardPoints))
	cmd.AddCommand(loyaltyPointsCmd("redeem", "Redeem points from a customer", client.RedeemPoints))
	return cmd
}

func loyaltyShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <customer-id>",
		Short: "Show a customer's loyalty account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			account, err := client.GetLoyaltyAccount(context.Background(), args[0])
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(account)
			}

			fmt.Printf("Customer: %s\n", account.CustomerID)
			fmt.Printf("Tier:     %s\n", titleCase(account.Tier))
			fmt.Printf("Points:   %d\n", account.Points)

			if len(account.History) == 0 {
				return nil
			}
			fmt.Println()
			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "DATE\tKIND\tPOINTS\tDESCRIPTION")
			}
			for _, entry := range account.History {
				fmt.Fprintf(writer, "%s\t%s\t%d\t%s\n",
					formatAPITime(entry.CreatedAt),
					entry.Kind,
					entry.Points,
					entry.Description,
				)
			}
			return writer.Flush()
		},
	}

	return cmd
}

func loyaltyPointsCmd(verb, short string, call func(context.Context, api.PointsRequest) (api.LoyaltyAccount, error)) *cobra.Command {
	var points int
	var description string

	cmd := &cobra.Command{
		Use:   verb + " <customer-id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if points <= 0 {
				return fmt.Errorf("--points must be a positive number")
			}

			account, err := call(context.Background(), api.PointsRequest{
				CustomerID:  args[0],
				Points:      points,
				Description: description,
			})
			if err != nil {
				return err
			}
			fmt.Printf("Customer %s now has %d points (%s).\n", account.CustomerID, account.Points, titleCase(account.Tier))
			return nil
		},
	}

	cmd.Flags().IntVar(&points, "points", 0, "Number of points")
	cmd.Flags().StringVar(&description, "description", "", "Reason shown in the points history")
	return cmd
}
