package ui

import (
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	table := &Table{
		Headers: []string{"FLIGHT", "STATUS", "DEPARTS"},
		Rows: [][]string{
			{"LH456", "delayed", "10:00"},
			{"LX38", "scheduled", "09:00"},
		},
	}

	out := table.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "FLIGHT") {
		t.Errorf("header missing: %q", lines[0])
	}
	if !strings.Contains(lines[2], "LH456") || !strings.Contains(lines[3], "LX38") {
		t.Errorf("rows out of order: %v", lines[2:])
	}
}

func TestTableRenderEmpty(t *testing.T) {
	if out := (&Table{}).Render(); out != "" {
		t.Errorf("empty table rendered %q", out)
	}
}

func TestColumnWidthsCapped(t *testing.T) {
	table := &Table{
		Headers:  []string{"TITLE"},
		Rows:     [][]string{{"a very long meeting title that should be capped"}},
		MaxWidth: 10,
	}
	if w := table.ColumnWidths()[0]; w != 10 {
		t.Errorf("width = %d, want 10", w)
	}
	if !strings.Contains(table.Render(), "…") {
		t.Error("long cell not truncated")
	}
}

func TestClockOf(t *testing.T) {
	cases := []struct{ in, want string }{
		{"2026-02-28T16:20", "16:20"},
		{"2026-02-28T09:05:00", "09:05"},
		{"16:20", "16:20"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := ClockOf(tc.in); got != tc.want {
			t.Errorf("ClockOf(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
