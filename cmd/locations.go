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

func locationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Manage facility locations",
	}

	cmd.AddCommand(locationsListCmd())
	cmd.AddCommand(locationsAddCmd())
	cmd.AddCommand(locationsUpdateCmd())
	cmd.AddCommand(locationsRemoveCmd())
	return cmd
}

func locationsListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List locations",
		RunE: func(cmd *cobra.Command, args []string) error {
			locations, err := client.GetLocations(context.Background())
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(locations)
			}

			if len(locations) == 0 {
				fmt.Println("No locations.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tNAME\tCITY\tSTATE\tPHONE\tAMENITIES")
			}
			for _, location := range locations {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\t%s\n",
					location.ID,
					location.Name,
					location.City,
					location.State,
					location.Phone,
					formatAmenities(location.Amenities),
				)
			}
			return writer.Flush()
		},
	}

	return cmd
}

func locationsAddCmd() *cobra.Command {
	var payload api.LocationRequest
	var hours []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a location",
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload.Name == "" || payload.Address == "" || payload.City == "" {
				return fmt.Errorf("--name, --address, and --city are required")
			}
			parsed, err := parseHours(hours)
			if err != nil {
				return err
			}
			payload.HoursOfOperation = parsed

			location, err := client.CreateLocation(context.Background(), payload)
			if err != nil {
				return err
			}
			fmt.Printf("Created location %s (%s).\n", location.ID, location.Name)
			return nil
		},
	}

	addLocationFlags(cmd, &payload, &hours)
	return cmd
}

func locationsUpdateCmd() *cobra.Command {
	var payload api.LocationRequest
	var hours []string

	cmd := &cobra.Command{
		Use:   "update <location-id>",
		Short: "Update a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseHours(hours)
			if err != nil {
				return err
			}
			payload.HoursOfOperation = parsed

			location, err := client.UpdateLocation(context.Background(), args[0], payload)
			if err != nil {
				return err
			}
			fmt.Printf("Updated location %s.\n", location.ID)
			return nil
		},
	}

	addLocationFlags(cmd, &payload, &hours)
	return cmd
}

func addLocationFlags(cmd *cobra.Command, payload *api.LocationRequest, hours *[]string) {
	cmd.Flags().StringVar(&payload.Name, "name", "", "Location name")
	cmd.Flags().StringVar(&payload.Address, "address", "", "Street address")
	cmd.Flags().StringVar(&payload.City, "city", "", "City")
	cmd.Flags().StringVar(&payload.State, "state", "", "State")
	cmd.Flags().StringVar(&payload.ZipCode, "zip", "", "ZIP code")
	cmd.Flags().StringVar(&payload.Phone, "phone", "", "Contact phone")
	cmd.Flags().StringVar(&payload.Email, "email", "", "Contact email")
	cmd.Flags().StringVar(&payload.ManagerName, "manager", "", "Manager name")
	cmd.Flags().StringVar(&payload.Description, "description", "", "Description")
	cmd.Flags().StringSliceVar(&payload.Amenities, "amenity", nil, "Amenity (repeatable)")
	cmd.Flags().StringSliceVar(hours, "hours", nil, "Opening hours, e.g. monday=6AM-10PM (repeatable)")
}

// parseHours turns repeated day=range flags into the hours map.
func parseHours(entries []string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	hours := make(map[string]string, len(entries))
	for _, entry := range entries {
		day, span, ok := strings.Cut(entry, "=")
		if !ok || day == "" || span == "" {
			return nil, fmt.Errorf("invalid --hours entry %q, expected day=range", entry)
		}
		hours[strings.ToLower(day)] = span
	}
	return hours, nil
}

func locationsRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <location-id>",
		Short: "Delete a location",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(fmt.Sprintf("Delete location %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			if err := client.DeleteLocation(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted location %s.\n", args[0])
			return nil
		},
	}

	return cmd
}
