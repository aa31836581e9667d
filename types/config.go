package types

// AppConfig represents the complete application configuration
type AppConfig struct {
	Verbose   bool            `mapstructure:"verbose"`
	Config    string          `mapstructure:"config"`
	FlightAPI FlightAPIConfig `mapstructure:"flightApi" validate:"required"`
	Calendar  CalendarConfig  `mapstructure:"calendar" validate:"required"`
	Rank      RankConfig      `mapstructure:"rank" validate:"required"`
	Notify    NotifyConfig    `mapstructure:"notify"`
	// PromptsDir optionally points at a directory of prompt template
	// overrides served to MCP clients.
	PromptsDir string `mapstructure:"promptsDir"`
}

// FlightAPIConfig holds settings for the Lufthansa Open API client.
// Credentials come from the environment (TRAVELWING_FLIGHTAPI_CLIENTID
// etc. or a .env file); URLs are overridable for tests.
type FlightAPIConfig struct {
	ClientID     string `mapstructure:"clientId" validate:"omitempty,min=1"`
	ClientSecret string `mapstructure:"clientSecret" validate:"omitempty,min=1"`
	BaseURL      string `mapstructure:"baseUrl" validate:"required,url"`
	AuthURL      string `mapstructure:"authUrl" validate:"required,url"`
	// RequestTimeoutSeconds controls the per-request HTTP timeout
	RequestTimeoutSeconds int `mapstructure:"requestTimeoutSeconds" validate:"omitempty,min=1,max=120"`
	// MaxRetries controls automatic retries on transport failures
	MaxRetries int `mapstructure:"maxRetries" validate:"omitempty,min=0,max=10"`
}

// CalendarConfig selects and configures the calendar backend
type CalendarConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=memory file sqlite"`
	// File is the events file path for the file backend
	File string `mapstructure:"file" validate:"omitempty,min=1"`
	// Format is the file backend encoding
	Format string `mapstructure:"format" validate:"omitempty,oneof=json yaml toml"`
	// DBPath is the database path for the sqlite backend
	DBPath string `mapstructure:"dbPath" validate:"omitempty,min=1"`
}

// RankConfig selects the alternative-flight ranking strategy
type RankConfig struct {
	Strategy string `mapstructure:"strategy" validate:"required,oneof=positional schedule-aware"`
}

// NotifyConfig holds defaults for drafted notifications
type NotifyConfig struct {
	SenderName string `mapstructure:"senderName"`
}
