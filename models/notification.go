package models

// DraftStatus tracks the lifecycle of a notification draft.
type DraftStatus string

const (
	DraftPending DraftStatus = "draft"
	DraftSent    DraftStatus = "sent"
)

// NotificationDraft is a rendered email ready for user review. Drafts
// are derived and ephemeral; nothing sends them without an explicit
// send request.
type NotificationDraft struct {
	ID            string      `json:"id" validate:"required,uuid4"`
	Type          string      `json:"type" validate:"required,oneof=email"`
	To            string      `json:"to" validate:"required,email"`
	RecipientName string      `json:"recipientName,omitempty"`
	Subject       string      `json:"subject" validate:"required"`
	Body          string      `json:"body" validate:"required"`
	ProposedTimes []string    `json:"proposedTimes,omitempty"`
	OriginalTime  string      `json:"originalTime,omitempty"`
	Status        DraftStatus `json:"status" validate:"required,oneof=draft sent"`
}
