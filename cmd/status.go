package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/travelwing/travelwing/internal/flightapi"
	"github.com/travelwing/travelwing/internal/ui"
	"github.com/travelwing/travelwing/types"
)

var statusDate string

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <flight>",
	Short: "Check real-time status of a flight",
	Long: `Check the real-time status of a flight by its IATA number.

Bare digits get the 'LH' prefix, so '456' and 'LH456' are equivalent.

Examples:
  travelwing status LH456
  travelwing status 456 --date 2026-02-28`,
	Args: cobra.ExactArgs(1),
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().StringVarP(&statusDate, "date", "d", "", "flight date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	date, err := dateOrToday(statusDate)
	if err != nil {
		return err
	}
	flight := flightapi.NormalizeFlightNumber(args[0])

	record, err := GetFlightClient().FlightStatus(cmd.Context(), flight, date)
	if err != nil {
		if errors.Is(err, types.ErrNoFlightData) {
			return fmt.Errorf("no data found for flight %s on %s", flight, date)
		}
		return fmt.Errorf("flight status lookup failed: %w", err)
	}

	if isJSON() {
		return printJSON(record)
	}

	statusText := ui.StatusStyle(record.Status).Render(string(record.Status))
	cmd.Printf("%s %s\n", ui.StyleTitle.Render(record.FlightNumber), statusText)
	cmd.Printf("  %s %s → %s %s\n",
		record.Departure.Airport, ui.ClockOf(record.Departure.Scheduled),
		record.Arrival.Airport, ui.ClockOf(record.Arrival.Scheduled))
	if record.DelayMinutes > 0 {
		cmd.Printf("  %s\n", ui.StyleWarning.Render(
			fmt.Sprintf("%d min delay, new arrival %s", record.DelayMinutes, ui.ClockOf(record.EffectiveArrival()))))
	}
	if record.Departure.Gate != "" {
		cmd.Printf("  %s\n", ui.StyleSubtle.Render(
			fmt.Sprintf("Terminal %s, Gate %s", record.Departure.Terminal, record.Departure.Gate)))
	}
	return nil
}
