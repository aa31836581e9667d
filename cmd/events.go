package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/travelwing/travelwing/internal/ui"
	"github.com/travelwing/travelwing/models"
	"github.com/travelwing/travelwing/store"
)

var eventsDate string

// eventsCmd represents the events command
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "List calendar events for a date",
	Long: `List the calendar events stored for a date.

Examples:
  travelwing events
  travelwing events --date 2026-02-28`,
	RunE: runEvents,
}

var eventsAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a calendar event",
	Long: `Add a calendar event to the configured backend.

Examples:
  travelwing events add "Board Meeting" --date 2026-02-28 --start 16:00 --end 18:00 --priority critical`,
	Args: cobra.ExactArgs(1),
	RunE: runEventsAdd,
}

var eventsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a calendar event by ID",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsDelete,
}

var (
	eventStart    string
	eventEnd      string
	eventPriority string
	eventLocation string
)

func init() {
	eventsCmd.Flags().StringVarP(&eventsDate, "date", "d", "", "date to list (YYYY-MM-DD, default today)")

	eventsAddCmd.Flags().StringVarP(&eventsDate, "date", "d", "", "event date (YYYY-MM-DD, default today)")
	eventsAddCmd.Flags().StringVar(&eventStart, "start", "", "start time (HH:MM, required)")
	eventsAddCmd.Flags().StringVar(&eventEnd, "end", "", "end time (HH:MM, required)")
	eventsAddCmd.Flags().StringVar(&eventPriority, "priority", "flexible", "priority (critical, important, flexible)")
	eventsAddCmd.Flags().StringVar(&eventLocation, "location", "", "event location")
	_ = eventsAddCmd.MarkFlagRequired("start")
	_ = eventsAddCmd.MarkFlagRequired("end")

	eventsCmd.AddCommand(eventsAddCmd)
	eventsCmd.AddCommand(eventsDeleteCmd)
	rootCmd.AddCommand(eventsCmd)
}

func runEvents(cmd *cobra.Command, args []string) error {
	date, err := dateOrToday(eventsDate)
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

	if isJSON() {
		return printJSON(events)
	}

	if len(events) == 0 {
		cmd.Printf("No events on %s.\n", date)
		return nil
	}

	cmd.Printf("%s\n", ui.StyleHeader.Render(fmt.Sprintf("Events on %s", date)))
	table := &ui.Table{Headers: []string{"TIME", "TITLE", "PRIORITY", "LOCATION"}, MaxWidth: 40}
	for _, e := range events {
		table.Rows = append(table.Rows, []string{
			e.Start + "-" + e.End,
			e.Title,
			string(e.Priority),
			e.Location,
		})
	}
	cmd.Print(table.Render())
	return nil
}

func runEventsAdd(cmd *cobra.Command, args []string) error {
	date, err := dateOrToday(eventsDate)
	if err != nil {
		return err
	}

	calendar, err := GetCalendarStore()
	if err != nil {
		return err
	}
	defer func() { _ = calendar.Close() }()

	event := models.CalendarEvent{
		Date:     date,
		Title:    strings.TrimSpace(args[0]),
		Start:    eventStart,
		End:      eventEnd,
		Priority: models.EventPriority(eventPriority),
		Location: eventLocation,
	}

	created, err := calendar.AddEvent(event)
	if err != nil {
		return fmt.Errorf("failed to add event: %w", err)
	}

	if isJSON() {
		return printJSON(created)
	}
	cmd.Printf("%s %s (%s %s-%s)\n", ui.StyleSuccess.Render("Added:"), created.Title, created.Date, created.Start, created.End)
	cmd.Printf("  ID: %s\n", created.ID)
	return nil
}

func runEventsDelete(cmd *cobra.Command, args []string) error {
	calendar, err := GetCalendarStore()
	if err != nil {
		return err
	}
	defer func() { _ = calendar.Close() }()

	if err := calendar.DeleteEvent(args[0]); err != nil {
		if errors.Is(err, store.ErrEventNotFound) {
			return fmt.Errorf("no event with ID %s", args[0])
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}
	cmd.Printf("Deleted event %s.\n", args[0])
	return nil
}
