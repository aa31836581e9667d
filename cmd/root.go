package cmd

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/travelwing/travelwing/internal/flightapi"
	"github.com/travelwing/travelwing/internal/notify"
	"github.com/travelwing/travelwing/internal/rank"
	"github.com/travelwing/travelwing/store"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// version is the application version.
	version = "0.1.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "travelwing",
	Short: "TravelWing helps business travelers recover from flight disruptions.",
	Long: `TravelWing is a flight disruption assistant for business travelers.
It checks real-time flight status, finds alternative flights on a route,
spots calendar meetings put at risk by a late arrival, and drafts the
emails needed to manage the fallout. Run it directly from the command
line or expose the same operations to an AI assistant via 'travelwing mcp'.`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.travelwing.yaml or ./.travelwing.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// GetFlightClient builds the Lufthansa API client from the loaded config.
func GetFlightClient() *flightapi.Client {
	config := GetConfig()

	opts := []flightapi.ClientOption{}
	if config.FlightAPI.BaseURL != "" {
		opts = append(opts, flightapi.WithBaseURL(config.FlightAPI.BaseURL))
	}
	if config.FlightAPI.AuthURL != "" {
		opts = append(opts, flightapi.WithTokenManager(flightapi.NewTokenManager(
			config.FlightAPI.ClientID, config.FlightAPI.ClientSecret, config.FlightAPI.AuthURL)))
	}
	if config.FlightAPI.MaxRetries > 0 {
		opts = append(opts, flightapi.WithMaxRetries(config.FlightAPI.MaxRetries))
	}
	if config.FlightAPI.RequestTimeoutSeconds > 0 {
		opts = append(opts, flightapi.WithHTTPClient(&http.Client{
			Timeout: time.Duration(config.FlightAPI.RequestTimeoutSeconds) * time.Second,
		}))
	}

	return flightapi.NewClient(config.FlightAPI.ClientID, config.FlightAPI.ClientSecret, opts...)
}

// GetCalendarStore initializes and returns the configured calendar store.
// The caller owns the store and must Close it.
func GetCalendarStore() (store.CalendarStore, error) {
	config := GetConfig()

	s, err := store.New(config.Calendar.Backend)
	if err != nil {
		return nil, err
	}

	err = s.Initialize(map[string]string{
		"dataFile":       config.Calendar.File,
		"dataFileFormat": config.Calendar.Format,
		"dbPath":         config.Calendar.DBPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize calendar store: %w", err)
	}
	return s, nil
}

// GetRanker returns the configured alternative-flight ranking strategy.
func GetRanker() rank.Strategy {
	return rank.ForName(GetConfig().Rank.Strategy)
}

// GetDrafter returns a notification drafter with the configured sender.
func GetDrafter() *notify.Drafter {
	return notify.NewDrafter(GetConfig().Notify.SenderName)
}
