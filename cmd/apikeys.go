package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"storkeep-cli/api"
)

func apiKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apikeys",
		Short: "Manage third party service credentials",
	}

	cmd.AddCommand(apiKeysListCmd())
	cmd.AddCommand(apiKeysAddCmd())
	cmd.AddCommand(apiKeysRemoveCmd())
	return cmd
}

func apiKeysListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored keys (values are masked)",
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := client.GetAPIKeys(context.Background())
			if err != nil {
				return err
			}

			if outputJSON {
				return writeJSON(keys)
			}

			if len(keys) == 0 {
				fmt.Println("No API keys.")
				return nil
			}

			writer := tabwriter.NewWriter(os.Stdout, 2, 2, 2, ' ', 0)
			if !outputCompact {
				fmt.Fprintln(writer, "ID\tSERVICE\tNAME\tVALUE\tENV")
			}
			for _, key := range keys {
				fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
					key.ID,
					key.Service,
					key.KeyName,
					key.MaskedValue,
					key.Environment,
				)
			}
			return writer.Flush()
		},
	}

	return cmd
}

func apiKeysAddCmd() *cobra.Command {
	var payload api.APIKeyRequest

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a service credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			if payload.Service == "" || payload.KeyName == "" {
				return fmt.Errorf("--service and --name are required")
			}

			value, err := promptSecret(fmt.Sprintf("Value for %s/%s: ", payload.Service, payload.KeyName))
			if err != nil {
				return err
			}
			if value == "" {
				return fmt.Errorf("no value entered")
			}
			payload.KeyValue = value

			key, err := client.CreateAPIKey(context.Background(), payload)
			if err != nil {
				return err
			}
			fmt.Printf("Stored %s key %s (%s).\n", key.Service, key.ID, key.MaskedValue)
			return nil
		},
	}

	cmd.Flags().StringVar(&payload.Service, "service", "", "Service (stripe, twilio, sendgrid)")
	cmd.Flags().StringVar(&payload.KeyName, "name", "", "Key name")
	cmd.Flags().StringVar(&payload.Environment, "env", "test", "Environment (test or live)")
	return cmd
}

// promptSecret reads a line without echo when stdin is a terminal, so
// key material never lands in shell history or scrollback.
func promptSecret(prompt string) (string, error) {
	fmt.Print(prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(raw)), nil
	}
	return promptLine("")
}

func apiKeysRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <key-id>",
		Short: "Delete a stored credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := confirm(fmt.Sprintf("Delete API key %s?", args[0]))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Aborted.")
				return nil
			}

			if err := client.DeleteAPIKey(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted API key %s.\n", args[0])
			return nil
		},
	}

	return cmd
}
