// Package notify renders notification email drafts from fixed text
// templates. Rendering is pure substitution; the only business rule is
// that a reschedule request needs at least one proposed time.
package notify

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/google/uuid"
	"github.com/travelwing/travelwing/models"
	"github.com/travelwing/travelwing/types"
)

// DefaultSenderName signs drafts when no sender is configured.
const DefaultSenderName = "Traveler"

var delayTemplate = template.Must(template.New("delay").Parse(`Dear {{.RecipientName}},

I wanted to inform you that my flight has experienced a delay. Here are the updated details:

**Delay:** {{.DelayInfo}}
**New Arrival:** {{.NewArrival}}
{{- if .MeetingImpact}}

**Impact on Our Meeting:** {{.MeetingImpact}}
{{- end}}

I will keep you updated if there are any further changes. Please let me know if we need to adjust our plans.

Best regards,
{{.SenderName}}`))

var rescheduleTemplate = template.Must(template.New("reschedule").Parse(`Dear {{.RecipientName}},

Due to {{.Reason}}, I need to request a reschedule of our meeting originally planned for {{.OriginalTime}}{{.MeetingRef}}.

Would any of the following alternative times work for you?

{{range .ProposedTimes}}  • {{.}}
{{end}}
I apologize for any inconvenience and appreciate your flexibility.

Best regards,
{{.SenderName}}`))

// DelayInput carries everything a delay notice needs.
type DelayInput struct {
	RecipientEmail string
	RecipientName  string
	DelayInfo      string
	NewArrival     string
	MeetingImpact  string
	SenderName     string
}

// RescheduleInput carries everything a reschedule request needs.
type RescheduleInput struct {
	RecipientEmail string
	RecipientName  string
	OriginalTime   string
	ProposedTimes  []string
	Reason         string
	MeetingTitle   string
	SenderName     string
}

// Drafter renders notification drafts with a configurable sender name.
type Drafter struct {
	senderName string
}

// NewDrafter creates a drafter. An empty sender name falls back to
// DefaultSenderName.
func NewDrafter(senderName string) *Drafter {
	if strings.TrimSpace(senderName) == "" {
		senderName = DefaultSenderName
	}
	return &Drafter{senderName: senderName}
}

// DraftDelay renders a delay notification email. The body carries the
// delay description and new arrival verbatim; the meeting-impact section
// appears only when an impact is given.
func (d *Drafter) DraftDelay(in DelayInput) (models.NotificationDraft, error) {
	if in.SenderName == "" {
		in.SenderName = d.senderName
	}

	var body strings.Builder
	if err := delayTemplate.Execute(&body, in); err != nil {
		return models.NotificationDraft{}, fmt.Errorf("render delay notification: %w", err)
	}

	return models.NotificationDraft{
		ID:            uuid.New().String(),
		Type:          "email",
		To:            in.RecipientEmail,
		RecipientName: in.RecipientName,
		Subject:       fmt.Sprintf("Travel Update: Flight Delay - New Arrival %s", in.NewArrival),
		Body:          body.String(),
		Status:        models.DraftPending,
	}, nil
}

// DraftReschedule renders a meeting reschedule request. Drafting with no
// proposed times fails with *types.InvalidInputError instead of
// producing an email with an empty bullet list.
func (d *Drafter) DraftReschedule(in RescheduleInput) (models.NotificationDraft, error) {
	if len(in.ProposedTimes) == 0 {
		return models.NotificationDraft{}, &types.InvalidInputError{
			Field:  "proposed_times",
			Reason: "at least one proposed time is required",
		}
	}
	if in.SenderName == "" {
		in.SenderName = d.senderName
	}

	meetingRef := ""
	if in.MeetingTitle != "" {
		meetingRef = fmt.Sprintf(" (%s)", in.MeetingTitle)
	}

	var body strings.Builder
	err := rescheduleTemplate.Execute(&body, struct {
		RescheduleInput
		MeetingRef string
	}{in, meetingRef})
	if err != nil {
		return models.NotificationDraft{}, fmt.Errorf("render reschedule request: %w", err)
	}

	return models.NotificationDraft{
		ID:            uuid.New().String(),
		Type:          "email",
		To:            in.RecipientEmail,
		RecipientName: in.RecipientName,
		Subject:       fmt.Sprintf("Meeting Reschedule Request: %s%s", in.OriginalTime, meetingRef),
		Body:          body.String(),
		ProposedTimes: in.ProposedTimes,
		OriginalTime:  in.OriginalTime,
		Status:        models.DraftPending,
	}, nil
}
