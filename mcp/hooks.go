package mcp

import (
	"github.com/travelwing/travelwing/types"
)

// Hooks lets the CLI layer inject runtime dependencies needed by the
// tool handlers without creating an import cycle.
type Hooks struct {
	GetConfig   func() *types.AppConfig
	LogInfo     func(string)
	LogError    func(error)
	LogToolCall func(string, interface{})
	GetVersion  func() string
	EnvPrefix   string
}

var hooks = Hooks{
	GetConfig:   func() *types.AppConfig { return &types.AppConfig{} },
	LogInfo:     func(string) {},
	LogError:    func(error) {},
	LogToolCall: func(string, interface{}) {},
	GetVersion:  func() string { return "dev" },
	EnvPrefix:   "TRAVELWING",
}

// ConfigureHooks overrides the default no-op hooks with real ones.
func ConfigureHooks(h Hooks) {
	if h.GetConfig != nil {
		hooks.GetConfig = h.GetConfig
	}
	if h.LogInfo != nil {
		hooks.LogInfo = h.LogInfo
	}
	if h.LogError != nil {
		hooks.LogError = h.LogError
	}
	if h.LogToolCall != nil {
		hooks.LogToolCall = h.LogToolCall
	}
	if h.GetVersion != nil {
		hooks.GetVersion = h.GetVersion
	}
	if h.EnvPrefix != "" {
		hooks.EnvPrefix = h.EnvPrefix
	}
}

func currentConfig() *types.AppConfig {
	if hooks.GetConfig == nil {
		return &types.AppConfig{}
	}
	cfg := hooks.GetConfig()
	if cfg == nil {
		return &types.AppConfig{}
	}
	return cfg
}

func logInfo(msg string) {
	if hooks.LogInfo != nil {
		hooks.LogInfo(msg)
	}
}

func logError(err error) {
	if hooks.LogError != nil {
		hooks.LogError(err)
	}
}

func logToolCall(name string, params interface{}) {
	if hooks.LogToolCall != nil {
		hooks.LogToolCall(name, params)
	}
}

func currentVersion() string {
	return hooks.GetVersion()
}
