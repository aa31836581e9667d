package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/travelwing/travelwing/internal/flightapi"
	"github.com/travelwing/travelwing/internal/ui"
	"github.com/travelwing/travelwing/models"
)

var (
	altDate       string
	altClass      string
	altDirectOnly bool
)

// alternativesCmd represents the alternatives command
var alternativesCmd = &cobra.Command{
	Use:   "alternatives <origin> <destination>",
	Short: "Find alternative flights on a route",
	Long: `Find alternative Lufthansa Group flights between two airports.

Results are limited to the top candidates so a disrupted traveler gets
a short, actionable list instead of a full schedule dump.

Examples:
  travelwing alternatives HAM JFK
  travelwing alternatives FRA LHR --date 2026-02-28 --direct-only`,
	Args: cobra.ExactArgs(2),
	RunE: runAlternatives,
}

func init() {
	alternativesCmd.Flags().StringVarP(&altDate, "date", "d", "", "travel date (YYYY-MM-DD, default today)")
	alternativesCmd.Flags().StringVar(&altClass, "class", "", "preferred cabin class (business or economy)")
	alternativesCmd.Flags().BoolVar(&altDirectOnly, "direct-only", false, "only show non-stop flights")
	rootCmd.AddCommand(alternativesCmd)
}

func runAlternatives(cmd *cobra.Command, args []string) error {
	date, err := dateOrToday(altDate)
	if err != nil {
		return err
	}
	origin := flightapi.NormalizeAirport(args[0])
	destination := flightapi.NormalizeAirport(args[1])

	records, err := GetFlightClient().FlightStatusByRoute(cmd.Context(), origin, destination, date)
	if err != nil {
		return fmt.Errorf("route search failed: %w", err)
	}

	candidates := make([]models.FlightRecord, 0, len(records))
	for _, r := range records {
		if !flightapi.GroupCarrier(r.FlightNumber) {
			continue
		}
		if altDirectOnly && !r.Nonstop {
			continue
		}
		candidates = append(candidates, r)
	}
	ranked := GetRanker().Rank(candidates, altClass)

	if isJSON() {
		return printJSON(ranked)
	}

	if len(ranked) == 0 {
		cmd.Printf("No alternative flights found for %s-%s on %s.\n", origin, destination, date)
		return nil
	}

	cmd.Printf("%s\n", ui.StyleHeader.Render(fmt.Sprintf("Alternatives %s → %s on %s", origin, destination, date)))
	table := &ui.Table{Headers: []string{"FLIGHT", "STATUS", "DEPARTS", "ARRIVES", "NONSTOP"}}
	for _, f := range ranked {
		nonstop := "no"
		if f.Nonstop {
			nonstop = "yes"
		}
		table.Rows = append(table.Rows, []string{
			f.FlightNumber,
			string(f.Status),
			ui.ClockOf(f.Departure.Scheduled),
			ui.ClockOf(f.EffectiveArrival()),
			nonstop,
		})
	}
	cmd.Print(table.Render())

	for _, f := range ranked {
		if f.Status != models.StatusCancelled {
			cmd.Printf("\n%s %s - departs %s\n", ui.StyleSuccess.Render("Recommended:"),
				f.FlightNumber, ui.ClockOf(f.Departure.Scheduled))
			break
		}
	}
	return nil
}
