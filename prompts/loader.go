package prompts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PromptKey is a type for identifying specific prompts.
type PromptKey string

const (
	// KeyDisruptionTriage is the key for the end-to-end disruption prompt.
	KeyDisruptionTriage PromptKey = "DisruptionTriage"
	// KeyFlightOps is the key for the flight operations prompt.
	KeyFlightOps PromptKey = "FlightOps"
	// KeyCalendarAnalysis is the key for the calendar analysis prompt.
	KeyCalendarAnalysis PromptKey = "CalendarAnalysis"
	// KeyCommsDrafting is the key for the communications drafting prompt.
	KeyCommsDrafting PromptKey = "CommsDrafting"
)

// promptConfig defines the default content and filename for a prompt.
type promptConfig struct {
	defaultContent string
	filename       string
}

// promptRegistry maps a PromptKey to its configuration.
var promptRegistry = map[PromptKey]promptConfig{
	KeyDisruptionTriage: {
		defaultContent: DisruptionTriageInstruction,
		filename:       "disruption_triage_prompt.txt",
	},
	KeyFlightOps: {
		defaultContent: FlightOpsInstruction,
		filename:       "flight_ops_prompt.txt",
	},
	KeyCalendarAnalysis: {
		defaultContent: CalendarAnalysisInstruction,
		filename:       "calendar_analysis_prompt.txt",
	},
	KeyCommsDrafting: {
		defaultContent: CommsDraftingInstruction,
		filename:       "comms_drafting_prompt.txt",
	},
}

// Keys returns all registered prompt keys.
func Keys() []PromptKey {
	return []PromptKey{KeyDisruptionTriage, KeyFlightOps, KeyCalendarAnalysis, KeyCommsDrafting}
}

// GetPrompt searches for a user-provided prompt file in the given
// templates directory. If found, it returns the content of that file.
// Otherwise it returns the built-in default.
func GetPrompt(key PromptKey, templatesDir string) (string, error) {
	config, ok := promptRegistry[key]
	if !ok {
		return "", fmt.Errorf("unrecognized prompt key: %s", key)
	}

	if strings.TrimSpace(templatesDir) == "" {
		return config.defaultContent, nil
	}

	customPromptPath := filepath.Join(templatesDir, config.filename)

	if _, err := os.Stat(customPromptPath); err == nil {
		content, readErr := os.ReadFile(customPromptPath)
		if readErr != nil {
			return "", fmt.Errorf("failed to read custom prompt file at %s: %w", customPromptPath, readErr)
		}
		return string(content), nil
	} else if !os.IsNotExist(err) {
		return "", fmt.Errorf("error checking for custom prompt file at %s: %w", customPromptPath, err)
	}

	return config.defaultContent, nil
}
