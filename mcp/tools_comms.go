package mcp

// Communication tools: notification drafting and simulated delivery

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/travelwing/travelwing/internal/notify"
	"github.com/travelwing/travelwing/models"
	"github.com/travelwing/travelwing/types"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// draftDelayNotificationHandler renders a delay notice email
func draftDelayNotificationHandler(drafter *notify.Drafter) mcpsdk.ToolHandlerFor[types.DraftDelayNotificationParams, types.NotificationDraftResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.DraftDelayNotificationParams]) (*mcpsdk.CallToolResultFor[types.NotificationDraftResponse], error) {
		args := params.Arguments
		logToolCall("draft-delay-notification", args)

		err := requireAll([]requiredField{
			{"recipient_email", args.RecipientEmail},
			{"recipient_name", args.RecipientName},
			{"delay_info", args.DelayInfo},
			{"new_arrival", args.NewArrival},
		})
		if err != nil {
			return nil, err
		}

		draft, err := drafter.DraftDelay(notify.DelayInput{
			RecipientEmail: args.RecipientEmail,
			RecipientName:  args.RecipientName,
			DelayInfo:      args.DelayInfo,
			NewArrival:     args.NewArrival,
			MeetingImpact:  args.MeetingImpact,
			SenderName:     args.SenderName,
		})
		if err != nil {
			logError(err)
			return nil, wrapDraftError(err)
		}

		logInfo(fmt.Sprintf("Drafted delay notification %s for %s", draft.ID, draft.To))

		return &mcpsdk.CallToolResultFor[types.NotificationDraftResponse]{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: fmt.Sprintf("Drafted delay notification to %s: %s", draft.To, draft.Subject)},
			},
			StructuredContent: draftToResponse(draft),
			IsError:           false,
		}, nil
	}
}

// draftRescheduleRequestHandler renders a meeting reschedule email
func draftRescheduleRequestHandler(drafter *notify.Drafter) mcpsdk.ToolHandlerFor[types.DraftRescheduleRequestParams, types.NotificationDraftResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.DraftRescheduleRequestParams]) (*mcpsdk.CallToolResultFor[types.NotificationDraftResponse], error) {
		args := params.Arguments
		logToolCall("draft-reschedule-request", args)

		err := requireAll([]requiredField{
			{"recipient_email", args.RecipientEmail},
			{"recipient_name", args.RecipientName},
			{"original_time", args.OriginalTime},
			{"reason", args.Reason},
		})
		if err != nil {
			return nil, err
		}

		draft, err := drafter.DraftReschedule(notify.RescheduleInput{
			RecipientEmail: args.RecipientEmail,
			RecipientName:  args.RecipientName,
			OriginalTime:   args.OriginalTime,
			ProposedTimes:  args.ProposedTimes,
			Reason:         args.Reason,
			MeetingTitle:   args.MeetingTitle,
			SenderName:     args.SenderName,
		})
		if err != nil {
			logError(err)
			return nil, wrapDraftError(err)
		}

		logInfo(fmt.Sprintf("Drafted reschedule request %s for %s", draft.ID, draft.To))

		return &mcpsdk.CallToolResultFor[types.NotificationDraftResponse]{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: fmt.Sprintf("Drafted reschedule request to %s: %s", draft.To, draft.Subject)},
			},
			StructuredContent: draftToResponse(draft),
			IsError:           false,
		}, nil
	}
}

// sendEmailHandler simulates delivery. Nothing leaves the process; the
// tool exists so the assistant can close the loop after a confirmed
// draft.
func sendEmailHandler() mcpsdk.ToolHandlerFor[types.SendEmailParams, types.SendEmailResponse] {
	return func(ctx context.Context, ss *mcpsdk.ServerSession, params *mcpsdk.CallToolParamsFor[types.SendEmailParams]) (*mcpsdk.CallToolResultFor[types.SendEmailResponse], error) {
		args := params.Arguments
		logToolCall("send-email", args)

		err := requireAll([]requiredField{
			{"to_email", args.ToEmail},
			{"subject", args.Subject},
			{"body", args.Body},
		})
		if err != nil {
			return nil, err
		}
		if _, err := mail.ParseAddress(args.ToEmail); err != nil {
			return nil, types.NewMCPError("INVALID_EMAIL", fmt.Sprintf("Invalid recipient address: %s", args.ToEmail), map[string]interface{}{
				"value": args.ToEmail,
			})
		}

		logInfo(fmt.Sprintf("Simulated email send to %s: %s", args.ToEmail, args.Subject))

		resp := types.SendEmailResponse{
			Status:  string(models.DraftSent),
			To:      args.ToEmail,
			Subject: args.Subject,
			Message: fmt.Sprintf("Email successfully sent to %s", args.ToEmail),
		}

		return &mcpsdk.CallToolResultFor[types.SendEmailResponse]{
			Content: []mcpsdk.Content{
				&mcpsdk.TextContent{Text: resp.Message},
			},
			StructuredContent: resp,
			IsError:           false,
		}, nil
	}
}

// RegisterCommsTools registers the drafting and delivery tools.
func RegisterCommsTools(server *mcpsdk.Server, drafter *notify.Drafter) error {
	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "draft-delay-notification",
		Description: "Draft a professional delay notification email. Args: recipient_email, recipient_name, delay_info, new_arrival (all required), meeting_impact, sender_name. Returns a draft; nothing is sent.",
	}, draftDelayNotificationHandler(drafter))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "draft-reschedule-request",
		Description: "Draft a meeting reschedule request email. Args: recipient_email, recipient_name, original_time, proposed_times[] (at least one), reason (all required), meeting_title, sender_name. Returns a draft; nothing is sent.",
	}, draftRescheduleRequestHandler(drafter))

	mcpsdk.AddTool(server, &mcpsdk.Tool{
		Name:        "send-email",
		Description: "Send a previously drafted email (simulated delivery). Args: to_email, subject, body (all required). Only call after the user confirmed the draft.",
	}, sendEmailHandler())

	return nil
}
