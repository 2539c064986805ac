package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"storkeep-cli/storage"
)

type HistoryStats struct {
	TotalBookings      int     `json:"total_bookings"`
	TotalSpent         float64 `json:"total_spent"`
	FavouriteUnit      string  `json:"favourite_unit"`
	FavouriteUnitCount int     `json:"favourite_unit_count"`
	LastBooked         string  `json:"last_booked"`
}

func bookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Inspect bookings",
	}

	cmd.AddCommand(bookingsListCmd())
	cmd.AddCommand(bookingsShowCmd())
	cmd.AddCommand(bookingsHistoryCmd())
	cmd.AddCommand(bookingsStatsCmd())
	return cmd
}

func bookingsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookings on the backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			bookings, err := client.GetBookings(context.Background())
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(bookings)
			}

			if len(bookings) == 0 {
				fmt.Println("No bookings.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tUNIT\tCUSTOMER\tPERIOD\tSTART\tSTATUS\tPRICE")
			}
			for _, booked := range bookings {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					booked.ID,
					booked.VirtualUnitID,
					booked.CustomerName,
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

func bookingsShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <booking-id>",
		Short: "Show one booking",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			booked, err := client.GetBooking(context.Background(), args[0])
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(booked)
			}

			fmt.Printf("Booking %s (%s)\n", booked.ID, booked.Status)
			fmt.Printf("Unit:     %s\n", booked.VirtualUnitID)
			fmt.Printf("Customer: %s <%s> %s\n", booked.CustomerName, booked.CustomerEmail, booked.CustomerPhone)
			fmt.Printf("Period:   %s (%s)\n", booked.PricingPeriod, titleCase(booked.PaymentOption))
			fmt.Printf("Start:    %s\n", formatAPITime(booked.StartDate))
			fmt.Printf("Move-in:  %s\n", formatAPITime(booked.MoveInDate))
			fmt.Printf("Total:    %s\n", formatUSD(booked.TotalPrice))
			if booked.SpecialRequests != "" {
				fmt.Printf("Requests: %s\n", booked.SpecialRequests)
			}
			return nil
		},
	}

	return cmd
}

func bookingsHistoryCmd() *cobra.Command {
	var from string
	var to string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List bookings made from this client",
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := storage.HistoryFilter{}
			if from != "" {
				date, err := parseDateInput(from)
				if err != nil {
					return err
				}
				filter.From = date.Format("2006-01-02")
			}
			if to != "" {
				date, err := parseDateInput(to)
				if err != nil {
					return err
				}
				filter.To = date.Format("2006-01-02")
			}
			if filter.From != "" && filter.To != "" && filter.From > filter.To {
				return fmt.Errorf("--from must be on or before --to")
			}

			db, err := storage.OpenHistoryDB()
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := storage.ListRecords(db, filter)
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(records)
			}

			if len(records) == 0 {
				fmt.Println("No local booking history.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tUNIT\tPERIOD\tSTART\tPRICE")
			}
			for _, record := range records {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
					record.ID,
					record.UnitName,
					record.PricingPeriod,
					formatAPITime(record.StartDate),
					formatUSD(record.Price),
				)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Earliest start date")
	cmd.Flags().StringVar(&to, "to", "", "Latest start date")
	return cmd
}

func bookingsStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize local booking history",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := storage.OpenHistoryDB()
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := storage.ListRecords(db, storage.HistoryFilter{})
			if err != nil {
				return err
			}

			stats := computeHistoryStats(records)
			if outputJSON {
				return writeJSON(stats)
			}

			if stats.TotalBookings == 0 {
				fmt.Println("No local booking history.")
				return nil
			}

			fmt.Printf("Bookings:       %d\n", stats.TotalBookings)
			fmt.Printf("Total spent:    %s\n", formatUSD(stats.TotalSpent))
			if stats.FavouriteUnit != "" {
				fmt.Printf("Favourite unit: %s (%d bookings)\n", stats.FavouriteUnit, stats.FavouriteUnitCount)
			}
			if stats.LastBooked != "" {
				fmt.Printf("Last booked:    %s\n", formatAPITime(stats.LastBooked))
			}
			return nil
		},
	}

	return cmd
}

func computeHistoryStats(records []storage.BookingRecord) HistoryStats {
	stats := HistoryStats{TotalBookings: len(records)}
	counts := map[string]int{}
	for _, record := range records {
		stats.TotalSpent += record.Price
		counts[record.UnitName]++
		if record.CreatedAt > stats.LastBooked {
			stats.LastBooked = record.CreatedAt
		}
	}
	for name, count := range counts {
		if count > stats.FavouriteUnitCount {
			stats.FavouriteUnit = name
			stats.FavouriteUnitCount = count
		}
	}
	return stats
}
