package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/travelwing/travelwing/internal/flightapi"
	"github.com/travelwing/travelwing/store"
	"github.com/travelwing/travelwing/types"
)

const (
	configName = ".travelwing"
	envPrefix  = "TRAVELWING"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Validate, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(config *types.AppConfig) error {
	return validate.Struct(config)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present. Credentials usually live there.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the
	// config file, e.g. TRAVELWING_FLIGHTAPI_CLIENTID.
	viper.SetEnvPrefix(envPrefix)
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfgFileFlag := viper.GetString("config")

	if cfgFileFlag != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(".")  // ./.travelwing.yaml
		viper.AddConfigPath(home) // $HOME/.travelwing.yaml
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			} else if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	SetDefaults()

	// After all sources are configured, unmarshal into GlobalAppConfig
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}
}

// SetDefaults registers the default value for every config key.
func SetDefaults() {
	viper.SetDefault("flightApi.baseUrl", flightapi.DefaultBaseURL)
	viper.SetDefault("flightApi.authUrl", flightapi.DefaultAuthURL)
	viper.SetDefault("flightApi.requestTimeoutSeconds", 15)
	viper.SetDefault("flightApi.maxRetries", 2)

	viper.SetDefault("calendar.backend", store.BackendMemory)
	viper.SetDefault("calendar.file", "calendar.json")
	viper.SetDefault("calendar.format", "json")
	viper.SetDefault("calendar.dbPath", "calendar.db")

	viper.SetDefault("rank.strategy", "positional")
	viper.SetDefault("notify.senderName", "")
	viper.SetDefault("promptsDir", "")
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}
