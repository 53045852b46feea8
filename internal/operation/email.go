package operation

import (
	"context"
	"fmt"

	"officeflow-backend/pkg/mailer"
)

// MailSender sends one outgoing message.
type MailSender interface {
	Send(msg mailer.OutgoingMessage) error
}

// InboxFetcher fetches recent messages from a mailbox folder.
type InboxFetcher interface {
	Fetch(ctx context.Context, folder string, limit int, unreadOnly bool) ([]mailer.MessageSummary, error)
}

// EmailOperations implements the email.* handlers.
type EmailOperations struct {
	sender MailSender
	inbox  InboxFetcher
}

func NewEmailOperations(sender MailSender, inbox InboxFetcher) *EmailOperations {
	return &EmailOperations{sender: sender, inbox: inbox}
}

// SendEmail handles email.send_email.
func (o *EmailOperations) SendEmail(ctx context.Context, p Params) Outcome {
	recipient := p.String("recipient", "")
	if recipient == "" {
		return Errorf("recipient parameter is required")
	}

	err := o.sender.Send(mailer.OutgoingMessage{
		Recipient:   recipient,
		Subject:     p.String("subject", ""),
		Body:        p.String("body", ""),
		HTMLBody:    p.String("html_body", ""),
		Attachments: p.StringSlice("attachments"),
	})
	if err != nil {
		return Errorf("%v", err)
	}
	return Success(fmt.Sprintf("email sent to %s", recipient), nil)
}

// CheckInbox handles email.check_inbox. The fetched summaries are carried in
// the envelope's messages field; every handler returns the same envelope
// shape.
func (o *EmailOperations) CheckInbox(ctx context.Context, p Params) Outcome {
	limit := p.Int("limit", 10)
	folder := p.String("folder", "INBOX")
	unreadOnly := p.Bool("unread_only", false)

	messages, err := o.inbox.Fetch(ctx, folder, limit, unreadOnly)
	if err != nil {
		return Errorf("%v", err)
	}
	return Success(fmt.Sprintf("fetched %d messages from %s", len(messages), folder), map[string]any{
		"count":    len(messages),
		"messages": messages,
	})
}
