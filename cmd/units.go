package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"storkeep-cli/api"
	"storkeep-cli/filter"
	"storkeep-cli/funnel"
)

func unitsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "units",
		Short: "Browse available storage units",
	}

	cmd.AddCommand(unitsListCmd())
	cmd.AddCommand(unitsShowCmd())
	cmd.AddCommand(unitsOptionsCmd())
	return cmd
}

func unitsListCmd() *cobra.Command {
	var unitType string
	var sizeCategory string
	var period string
	var minPrice float64
	var maxPrice float64
	var amenities []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List units matching the active filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if period == "" {
				period = cfg.DefaultPricingPeriod
			}

			values := map[string]any{}
			if unitType != "" {
				values[filter.KeyUnitType] = unitType
			}
			if sizeCategory != "" {
				values[filter.KeySizeCategory] = sizeCategory
			}
			if period != "" {
				values[filter.KeyPricingPeriod] = period
			}
			if cmd.Flags().Changed("min-price") {
				values[filter.KeyMinPrice] = minPrice
			}
			if cmd.Flags().Changed("max-price") {
				values[filter.KeyMaxPrice] = maxPrice
			}
			if len(amenities) > 0 {
				values[filter.KeyAmenities] = amenities
			}

			mgr := filter.NewManager(client)
			if err := mgr.SetValues(ctx, values); err != nil {
				return err
			}

			track(funnel.EventPageView, map[string]any{"page": "units"})
			if mgr.Active() {
				track(funnel.EventFilterUsed, map[string]any{"filters": mgr.Query().Encode()})
			}

			units := mgr.Units()
			if outputJSON {
				return writeJSON(units)
			}

			showBanner(ctx)

			if len(units) == 0 {
				fmt.Println("No units match your criteria.")
				return nil
			}

			activePeriod := mgr.Period()
			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tNAME\tTYPE\tSIZE\tCATEGORY\tPRICE\tAMENITIES")
			}
			for _, unit := range units {
				price := formatUSD(unit.PriceForPeriod(activePeriod)) + api.PeriodLabel(activePeriod)
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					unit.ID,
					unit.DisplayName,
					titleCase(unit.UnitType),
					unit.DisplaySize,
					titleCase(api.SizeCategory(unit.DisplaySize)),
					price,
					formatAmenities(unit.Amenities),
				)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&unitType, "type", "", "Unit type (enclosed_parking, self_storage, outdoor_parking, covered_parking)")
	cmd.Flags().StringVar(&sizeCategory, "size", "", "Size category (small, medium, large)")
	cmd.Flags().StringVar(&period, "period", "", "Pricing period (daily, weekly, monthly)")
	cmd.Flags().Float64Var(&minPrice, "min-price", 0, "Minimum price for the selected period")
	cmd.Flags().Float64Var(&maxPrice, "max-price", 0, "Maximum price for the selected period")
	cmd.Flags().StringSliceVar(&amenities, "amenity", nil, "Required amenity (repeatable)")
	return cmd
}

func unitsOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Show the filter values the backend accepts",
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := client.GetFilterOptions(context.Background())
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(options)
			}

			fmt.Printf("Types:      %s\n", formatAmenities(options.UnitTypes))
			fmt.Printf("Sizes:      %s\n", formatAmenities(options.SizeCategories))
			fmt.Printf("Periods:    %s\n", formatAmenities(options.PricingPeriods))
			fmt.Printf("Payment:    %s\n", formatAmenities(options.PaymentOptions))
			fmt.Printf("Amenities:  %s\n", formatAmenities(options.Amenities))
			fmt.Printf("Prices:     %s to %s\n", formatUSD(options.PriceRange.Min), formatUSD(options.PriceRange.Max))
			return nil
		},
	}

	return cmd
}

func unitsShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <unit-id>",
		Short: "Show one unit in detail",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			unit, err := client.GetVirtualUnit(ctx, args[0])
			if err != nil {
				return err
			}

			track(funnel.EventUnitViewed, map[string]any{"unit_id": unit.ID})

			if outputJSON {
				return writeJSON(unit)
			}

			fmt.Printf("%s (%s)\n", unit.DisplayName, unit.ID)
			fmt.Printf("Type:      %s\n", titleCase(unit.UnitType))
			fmt.Printf("Size:      %s (%s)\n", unit.DisplaySize, titleCase(api.SizeCategory(unit.DisplaySize)))
			fmt.Printf("Daily:     %s\n", formatUSD(unit.DailyPrice))
			fmt.Printf("Weekly:    %s\n", formatUSD(unit.WeeklyPrice))
			fmt.Printf("Monthly:   %s\n", formatUSD(unit.MonthlyPrice))
			fmt.Printf("Amenities: %s\n", formatAmenities(unit.Amenities))
			if unit.Description != "" {
				fmt.Printf("\n%s\n", unit.Description)
			}
			return nil
		},
	}

	return cmd
}
