package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func integrationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "integrations",
		Short: "Inspect third party integration status",
	}

	cmd.AddCommand(integrationsStatusCmd())
	return cmd
}

func integrationsStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show which services are configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := client.GetIntegrationStatus(context.Background())
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(status)
			}

			services := make([]string, 0, len(status))
			for name := range status {
				services = append(services, name)
			}
			sort.Strings(services)

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "SERVICE\tCONFIGURED\tMODE")
			}
			for _, name := range services {
				service := status[name]
				configured := "no"
				if service.Configured {
					configured = "yes"
				}
				mode := "live"
				if service.TestMode {
					mode = "test"
				}
				fmt.Fprintf(writer, "%s\t%s\t%s\n", name, configured, mode)
			}
			return writer.Flush()
		},
	}

	return cmd
}
