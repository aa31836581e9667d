package cmd

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/travelwing/travelwing/internal/notify"
	"github.com/travelwing/travelwing/internal/ui"
	"github.com/travelwing/travelwing/models"
)

// draftCmd represents the draft command
var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Draft disruption emails for review",
	Long: `Draft the emails needed to manage a flight disruption.

Drafts are printed for review, never sent automatically.`,
}

var draftDelayCmd = &cobra.Command{
	Use:   "delay",
	Short: "Draft a delay notification email",
	Long: `Draft an email notifying a meeting contact about a flight delay.

Missing details are collected interactively.

Example:
  travelwing draft delay --to ceo@company.com --name "Jane Smith" \
    --delay "90 minute delay due to weather" --arrival "18:00 EST"`,
	RunE: runDraftDelay,
}

var draftRescheduleCmd = &cobra.Command{
	Use:   "reschedule",
	Short: "Draft a meeting reschedule request",
	Long: `Draft an email asking a meeting contact to reschedule.

At least one proposed time is required. Missing details are collected
interactively.

Example:
  travelwing draft reschedule --to ceo@company.com --name "Jane Smith" \
    --original "16:00 EST" --propose "18:30 EST" --propose "tomorrow 09:00 EST" \
    --reason "flight delay from Frankfurt"`,
	RunE: runDraftReschedule,
}

var (
	draftTo       string
	draftName     string
	draftDelay    string
	draftArrival  string
	draftImpact   string
	draftOriginal string
	draftPropose  []string
	draftReason   string
	draftMeeting  string
	draftDate     string
)

// ErrNoEventsFound is returned when an interactive selection is
// attempted but the calendar has no events for the chosen date.
var ErrNoEventsFound = errors.New("no calendar events found for that date")

func init() {
	draftDelayCmd.Flags().StringVar(&draftTo, "to", "", "recipient email address")
	draftDelayCmd.Flags().StringVar(&draftName, "name", "", "recipient name")
	draftDelayCmd.Flags().StringVar(&draftDelay, "delay", "", "delay description")
	draftDelayCmd.Flags().StringVar(&draftArrival, "arrival", "", "new arrival time")
	draftDelayCmd.Flags().StringVar(&draftImpact, "impact", "", "meeting impact (optional)")

	draftRescheduleCmd.Flags().StringVar(&draftTo, "to", "", "recipient email address")
	draftRescheduleCmd.Flags().StringVar(&draftName, "name", "", "recipient name")
	draftRescheduleCmd.Flags().StringVar(&draftOriginal, "original", "", "original meeting time")
	draftRescheduleCmd.Flags().StringArrayVar(&draftPropose, "propose", nil, "proposed alternative time (repeatable)")
	draftRescheduleCmd.Flags().StringVar(&draftReason, "reason", "", "reason for the reschedule")
	draftRescheduleCmd.Flags().StringVar(&draftMeeting, "meeting", "", "meeting title (optional)")
	draftRescheduleCmd.Flags().StringVarP(&draftDate, "date", "d", "", "pick the affected meeting from the calendar for this date (YYYY-MM-DD)")

	draftCmd.AddCommand(draftDelayCmd)
	draftCmd.AddCommand(draftRescheduleCmd)
	rootCmd.AddCommand(draftCmd)
}

// promptFor asks for a value interactively when the flag was left empty.
func promptFor(label, value string, validateFn promptui.ValidateFunc) (string, error) {
	if value != "" {
		return value, nil
	}
	prompt := promptui.Prompt{
		Label:    label,
		Validate: validateFn,
	}
	return prompt.Run()
}

func notEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

func validEmail(s string) error {
	if _, err := mail.ParseAddress(s); err != nil {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

func runDraftDelay(cmd *cobra.Command, args []string) error {
	to, err := promptFor("Recipient email", draftTo, validEmail)
	if err != nil {
		return err
	}
	name, err := promptFor("Recipient name", draftName, notEmpty)
	if err != nil {
		return err
	}
	delayInfo, err := promptFor("Delay description", draftDelay, notEmpty)
	if err != nil {
		return err
	}
	arrival, err := promptFor("New arrival time", draftArrival, notEmpty)
	if err != nil {
		return err
	}

	draft, err := GetDrafter().DraftDelay(notify.DelayInput{
		RecipientEmail: to,
		RecipientName:  name,
		DelayInfo:      delayInfo,
		NewArrival:     arrival,
		MeetingImpact:  draftImpact,
	})
	if err != nil {
		return fmt.Errorf("failed to draft delay notification: %w", err)
	}
	return renderDraft(cmd, draft)
}

// selectEventInteractive presents the date's events for selection and
// prefills recipient, original time, and meeting title from the pick.
func selectEventInteractive(date string) (models.CalendarEvent, error) {
	calendar, err := GetCalendarStore()
	if err != nil {
		return models.CalendarEvent{}, err
	}
	defer func() { _ = calendar.Close() }()

	events, err := calendar.EventsOn(date)
	if err != nil {
		return models.CalendarEvent{}, fmt.Errorf("calendar lookup failed: %w", err)
	}
	if len(events) == 0 {
		return models.CalendarEvent{}, ErrNoEventsFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   `> {{ .Title | cyan }} ({{ .Start }}-{{ .End }}, {{ .Priority }})`,
		Inactive: `  {{ .Title | faint }} ({{ .Start }}-{{ .End }}, {{ .Priority }})`,
		Selected: `{{ "✔" | green }} {{ .Title | faint }} ({{ .Start }})`,
	}
	sel := promptui.Select{
		Label:     "Which meeting needs rescheduling",
		Items:     events,
		Templates: templates,
	}
	idx, _, err := sel.Run()
	if err != nil {
		return models.CalendarEvent{}, err
	}
	return events[idx], nil
}

func runDraftReschedule(cmd *cobra.Command, args []string) error {
	if draftDate != "" {
		event, err := selectEventInteractive(draftDate)
		if err != nil {
			return err
		}
		if draftOriginal == "" {
			draftOriginal = event.Start
		}
		if draftMeeting == "" {
			draftMeeting = event.Title
		}
		if len(event.Attendees) > 0 {
			if draftTo == "" {
				draftTo = event.Attendees[0].Email
			}
			if draftName == "" {
				draftName = event.Attendees[0].Name
			}
		}
	}

	to, err := promptFor("Recipient email", draftTo, validEmail)
	if err != nil {
		return err
	}
	name, err := promptFor("Recipient name", draftName, notEmpty)
	if err != nil {
		return err
	}
	original, err := promptFor("Original meeting time", draftOriginal, notEmpty)
	if err != nil {
		return err
	}
	reason, err := promptFor("Reason", draftReason, notEmpty)
	if err != nil {
		return err
	}

	proposed := draftPropose
	if len(proposed) == 0 {
		// Collect times until an empty entry ends the list.
		for {
			prompt := promptui.Prompt{Label: fmt.Sprintf("Proposed time %d (empty to finish)", len(proposed)+1)}
			value, err := prompt.Run()
			if err != nil {
				return err
			}
			if strings.TrimSpace(value) == "" {
				break
			}
			proposed = append(proposed, value)
		}
	}

	draft, err := GetDrafter().DraftReschedule(notify.RescheduleInput{
		RecipientEmail: to,
		RecipientName:  name,
		OriginalTime:   original,
		ProposedTimes:  proposed,
		Reason:         reason,
		MeetingTitle:   draftMeeting,
	})
	if err != nil {
		return fmt.Errorf("failed to draft reschedule request: %w", err)
	}
	return renderDraft(cmd, draft)
}

func renderDraft(cmd *cobra.Command, draft models.NotificationDraft) error {
	if isJSON() {
		return printJSON(draft)
	}

	body := fmt.Sprintf("%s %s\n%s %s\n\n%s",
		ui.StyleSubtle.Render("To:"), draft.To,
		ui.StyleSubtle.Render("Subject:"), draft.Subject,
		draft.Body)
	cmd.Println(ui.StyleDraftBox.Render(body))
	cmd.Printf("\n%s\n", ui.StyleSubtle.Render(fmt.Sprintf("Draft %s saved for review. Nothing has been sent.", draft.ID)))
	return nil
}
