package prompts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestGetPrompt(t *testing.T) {
	tests := []struct {
		name      string
		promptKey PromptKey
		wantError bool
		contains  []string
	}{
		{
			name:      "disruption triage prompt",
			promptKey: KeyDisruptionTriage,
			wantError: false,
			contains:  []string{"check-flight-status", "ripple"},
		},
		{
			name:      "flight ops prompt",
			promptKey: KeyFlightOps,
			wantError: false,
			contains:  []string{"connection"},
		},
		{
			name:      "calendar analysis prompt",
			promptKey: KeyCalendarAnalysis,
			wantError: false,
			contains:  []string{"buffer"},
		},
		{
			name:      "comms drafting prompt",
			promptKey: KeyCommsDrafting,
			wantError: false,
			contains:  []string{"email"},
		},
		{
			name:      "unknown key",
			promptKey: PromptKey("Bogus"),
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := GetPrompt(tt.promptKey, "")
			if (err != nil) != tt.wantError {
				t.Errorf("GetPrompt() error = %v, wantError %v", err, tt.wantError)
				return
			}
			if !tt.wantError {
				promptLower := strings.ToLower(prompt)
				for _, expected := range tt.contains {
					if !strings.Contains(promptLower, strings.ToLower(expected)) {
						t.Errorf("GetPrompt(%v) missing expected content %q in prompt", tt.promptKey, expected)
					}
				}
			}
		})
	}
}

func TestGetPromptCustomOverride(t *testing.T) {
	dir := t.TempDir()
	custom := "You are a minimal test persona."
	if err := os.WriteFile(filepath.Join(dir, "flight_ops_prompt.txt"), []byte(custom), 0o644); err != nil {
		t.Fatalf("write custom prompt: %v", err)
	}

	prompt, err := GetPrompt(KeyFlightOps, dir)
	if err != nil {
		t.Fatalf("GetPrompt failed: %v", err)
	}
	if prompt != custom {
		t.Errorf("custom prompt not used, got %q", prompt)
	}

	// Other keys still fall back to defaults.
	fallback, err := GetPrompt(KeyCommsDrafting, dir)
	if err != nil {
		t.Fatalf("GetPrompt failed: %v", err)
	}
	if fallback != CommsDraftingInstruction {
		t.Error("fallback prompt did not match default")
	}
}
