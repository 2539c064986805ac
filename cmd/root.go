package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"storkeep-cli/api"
	"storkeep-cli/funnel"
	"storkeep-cli/storage"
)

var (
	outputJSON    bool
	outputCompact bool
	verbose       bool
	cfg           Config
	client        = api.NewClient()

	trackerOnce sync.Once
	trackerInst *funnel.Tracker
	trackerErr  error
)

type Config struct {
	BaseURL              string `json:"base_url"`
	DefaultPricingPeriod string `json:"default_pricing_period"`
	CustomerName         string `json:"customer_name"`
	CustomerEmail        string `json:"customer_email"`
	CustomerPhone        string `json:"customer_phone"`
}

var rootCmd = &cobra.Command{
	Use:   "storkeep",
	Short: "Storage unit booking and management client",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if outputJSON && outputCompact {
			return fmt.Errorf("choose either --json or --compact")
		}
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		} else {
			logrus.SetLevel(logrus.WarnLevel)
		}
		return nil
	},
	SilenceUsage: true,
}

func Execute() {
	cobra.OnInitialize(initConfig)
	rootCmd.AddCommand(unitsCmd())
	rootCmd.AddCommand(bookCmd())
	rootCmd.AddCommand(bookingsCmd())
	rootCmd.AddCommand(bannersCmd())
	rootCmd.AddCommand(sessionCmd())
	rootCmd.AddCommand(customersCmd())
	rootCmd.AddCommand(loyaltyCmd())
	rootCmd.AddCommand(locationsCmd())
	rootCmd.AddCommand(imagesCmd())
	rootCmd.AddCommand(contentCmd())
	rootCmd.AddCommand(apiKeysCmd())
	rootCmd.AddCommand(integrationsCmd())
	rootCmd.AddCommand(initCmd())

	err := rootCmd.Execute()
	closeTracker()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "Output JSON")
	rootCmd.PersistentFlags().BoolVar(&outputCompact, "compact", false, "Output compact text")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

func initConfig() {
	loaded, err := loadConfig()
	if err == nil {
		cfg = loaded
	}
	if url := os.Getenv("STORKEEP_API_URL"); url != "" {
		cfg.BaseURL = url
	}
	if cfg.BaseURL != "" {
		client.BaseURL = cfg.BaseURL
	}
}

func loadConfig() (Config, error) {
	path, err := configPath()
	if err != nil {
		return Config{}, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, err
	}
	if info.IsDir() {
		return Config{}, fmt.Errorf("config path is a directory: %s", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer file.Close()

	var conf Config
	if err := json.NewDecoder(file).Decode(&conf); err != nil {
		return Config{}, err
	}
	return conf, nil
}

func configPath() (string, error) {
	dir, err := storage.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

func getTracker() (*funnel.Tracker, error) {
	trackerOnce.Do(func() {
		session, err := storage.LoadOrCreateSession()
		if err != nil {
			trackerErr = err
			return
		}
		trackerInst = funnel.NewTracker(client, session)
	})
	return trackerInst, trackerErr
}

// track records a behavioral event, silently skipping when the local
// session cannot be loaded.
func track(eventType string, metadata map[string]any) {
	tracker, err := getTracker()
	if err != nil {
		logrus.WithError(err).Debug("session unavailable, skipping event")
		return
	}
	tracker.Track(eventType, metadata)
}

func closeTracker() {
	if trackerInst != nil {
		trackerInst.Close()
	}
}
