package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"storkeep-cli/api"
)

func customersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "customers",
		Short: "Manage CRM customers",
	}

	cmd.AddCommand(customersListCmd())
	cmd.AddCommand(customersAddCmd())
	cmd.AddCommand(customersUpdateCmd())
	cmd.AddCommand(customersRemoveCmd())
	cmd.AddCommand(customersBookingsCmd())
	return cmd
}

func customersListCmd() *cobra.Command {
	var search string
	var customerType string
	var tier string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List customers",
		RunE: func(cmd *cobra.Command, args []string) error {
			customers, err := client.GetCustomers(context.Background(), api.CustomerQuery{
				Search:       search,
				CustomerType: customerType,
				LoyaltyTier:  tier,
			})
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(customers)
			}

			if len(customers) == 0 {
				fmt.Println("No customers.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tNAME\tEMAIL\tTYPE\tTIER\tPOINTS")
			}
			for _, customer := range customers {
				fmt.Fprintf(writer, "%s\t%s %s\t%s\t%s\t%s\t%d\n",
					customer.ID,
					customer.FirstName,
					customer.LastName,
					customer.Email,
					customer.CustomerType,
					customer.LoyaltyTier,
					customer.LoyaltyPoints,
				)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "Search by name or email")
	cmd.Flags().StringVar(&customerType, "type", "", "Customer type (individual, business)")
	cmd.Flags().StringVar(&tier, "tier", "", "Loyalty tier (bronze, silver, gold, platinum)")
	return cmd
}

func customersAddCmd() *cobra.Command {
	var payload api.CustomerRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a customer",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateCustomer(payload); err != nil {
				return err
			}

			customer, err := client.CreateCustomer(context.Background(), payload)
			if err != nil {
				return err
			}
			fmt.Printf("Created customer %s (%s %s).\n", customer.ID, customer.FirstName, customer.LastName)
			return nil
		},
	}

	addCustomerFlags(cmd, &payload)
	return cmd
}

func customersUpdateCmd() *cobra.Command {
	var payload api.CustomerRequest

	cmd := &cobra.Command{
		Use:   "update <customer-id>",
		Short: "Update a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateCustomer(payload); err != nil {
				return err
			}

			customer, err := client.UpdateCustomer(context.Background(), args[0], payload)
			if err != nil {
				return err
			}
			fmt.Printf("Updated customer %s.\n", customer.ID)
			return nil
		},
	}

	addCustomerFlags(cmd, &payload)
	return cmd
}

func addCustomerFlags(cmd *cobra.Command, payload *api.CustomerRequest) {
	cmd.Flags().StringVar(&payload.FirstName, "first-name", "", "First name")
	cmd.Flags().StringVar(&payload.LastName, "last-name", "", "Last name")
	cmd.Flags().StringVar(&payload.Email, "email", "", "Email")
	cmd.Flags().StringVar(&payload.Phone, "phone", "", "Phone")
	cmd.Flags().StringVar(&payload.Company, "company", "", "Company")
	cmd.Flags().StringVar(&payload.CustomerType, "type", "individual", "Customer type (individual, business)")
	cmd.Flags().StringVar(&payload.AcquisitionSource, "source", "web", "Acquisition source")
}

func validateCustomer(payload api.CustomerRequest) error {
	if payload.FirstName == "" || payload.LastName == "" || payload.Phone == "" {
		return fmt.Errorf("--first-name, --last-name, and --phone are required")
	}
	if err := validator.New().Var(payload.Email, "required,email"); err != nil {
		return fmt.Errorf("invalid email %q", payload.Email)
	}
	return nil
}

func customersRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <customer-id>",
		Short: "Delete a customer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(fmt.Sprintf("Delete customer %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			if err := client.DeleteCustomer(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted customer %s.\n", args[0])
			return nil
		},
	}

	return cmd
}

func customersBookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings <customer-id>",
		Short: "List a customer's bookings",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bookings, err := client.GetCustomerBookings(context.Background(), args[0])
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(bookings)
			}

			if len(bookings) == 0 {
				fmt.Println("No bookings for this customer.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tUNIT\tPERIOD\tSTART\tSTATUS\tPRICE")
			}
			for _, booked := range bookings {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
					booked.ID,
					booked.VirtualUnitID,
					booked.PricingPeriod,
					formatAPITime(booked.StartDate),
					booked.Status,
					formatUSD(booked.TotalPrice),
				)
			}
			return writer.Flush()
		},
	}

	return cmd
}
