package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/travelwing/travelwing/internal/conflict"
	"github.com/travelwing/travelwing/internal/ui"
	"github.com/travelwing/travelwing/models"
)

var conflictsDate string

// conflictsCmd represents the conflicts command
var conflictsCmd = &cobra.Command{
	Use:   "conflicts <arrival-time>",
	Short: "Check which meetings a new arrival time puts at risk",
	Long: `Classify the day's calendar events against a new arrival time.

An event is at risk when the arrival hour plus one hour of ground
transfer runs past its start. Arrival time is HH:MM in 24-hour format.

Examples:
  travelwing conflicts 18:00
  travelwing conflicts 16:30 --date 2026-02-28`,
	Args: cobra.ExactArgs(1),
	RunE: runConflicts,
}

func init() {
	conflictsCmd.Flags().StringVarP(&conflictsDate, "date", "d", "", "date to check (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(conflictsCmd)
}

func runConflicts(cmd *cobra.Command, args []string) error {
	date, err := dateOrToday(conflictsDate)
	if err != nil {
		return err
	}

	calendar, err := GetCalendarStore()
	if err != nil {
		return err
	}
	defer func() { _ = calendar.Close() }()

	events, err := calendar.EventsOn(date)
	if err != nil {
		return fmt.Errorf("calendar lookup failed: %w", err)
	}

	report, err := conflict.Classify(args[0], events)
	if err != nil {
		return err
	}

	if isJSON() {
		return printJSON(report)
	}

	cmd.Printf("%s\n", ui.StyleHeader.Render(
		fmt.Sprintf("Arrival %s on %s, available from %s", report.ArrivalTime, date, report.AvailableFrom)))
	printClassified(cmd, "At risk", report.AtRisk)
	printClassified(cmd, "On track", report.OnTrack)
	cmd.Printf("\n%s\n", ui.StyleTitle.Render(report.Summary))
	return nil
}

func printClassified(cmd *cobra.Command, label string, events []models.ClassifiedEvent) {
	if len(events) == 0 {
		return
	}
	cmd.Printf("\n%s\n", ui.StyleTitle.Render(label))
	for _, e := range events {
		marker := ui.ConflictStyle(e.ConflictStatus).Render("●")
		cmd.Printf(" %s %s-%s  %s (%s)\n", marker, e.Start, e.End, e.Title,
			ui.PriorityStyle(e.Priority).Render(string(e.Priority)))
		if e.Reason != "" {
			cmd.Printf("     %s\n", ui.StyleSubtle.Render(e.Reason))
		}
	}
}
