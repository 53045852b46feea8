package mailer

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/emersion/go-imap"
	"github.com/emersion/go-imap/client"
	"github.com/emersion/go-message/mail"
)

const bodyPreviewLimit = 500

// MessageSummary is one fetched inbox message with a truncated body preview.
type MessageSummary struct {
	ID             string    `json:"id"`
	Subject        string    `json:"subject"`
	From           string    `json:"from"`
	Date           time.Time `json:"date"`
	Body           string    `json:"body"`
	HTMLBody       string    `json:"html_body"`
	HasAttachments bool      `json:"has_attachments"`
}

// InboxReader fetches messages from an IMAP mailbox. A fresh connection is
// opened and closed around each fetch.
type InboxReader struct {
	host     string
	port     int
	username string
	password string
}

func NewInboxReader(host string, port int, username, password string) *InboxReader {
	return &InboxReader{host: host, port: port, username: username, password: password}
}

// Fetch returns up to limit most-recent messages from folder. With unreadOnly
// set, only messages without the Seen flag are considered.
func (r *InboxReader) Fetch(ctx context.Context, folder string, limit int, unreadOnly bool) ([]MessageSummary, error) {
	c, err := client.DialTLS(fmt.Sprintf("%s:%d", r.host, r.port), nil)
	if err != nil {
		return nil, fmt.Errorf("imap dial %s: %w", r.host, err)
	}
	defer c.Logout()

	if err := c.Login(r.username, r.password); err != nil {
		return nil, fmt.Errorf("imap login: %w", err)
	}

	if _, err := c.Select(folder, true); err != nil {
		return nil, fmt.Errorf("imap select %s: %w", folder, err)
	}

	criteria := imap.NewSearchCriteria()
	if unreadOnly {
		criteria.WithoutFlags = []string{imap.SeenFlag}
	}
	ids, err := c.Search(criteria)
	if err != nil {
		return nil, fmt.Errorf("imap search: %w", err)
	}
	if len(ids) == 0 {
		return []MessageSummary{}, nil
	}
	if limit > 0 && len(ids) > limit {
		ids = ids[len(ids)-limit:]
	}

	seqset := new(imap.SeqSet)
	seqset.AddNum(ids...)

	section := &imap.BodySectionName{Peek: true}
	items := []imap.FetchItem{imap.FetchEnvelope, section.FetchItem()}

	messages := make(chan *imap.Message, len(ids))
	done := make(chan error, 1)
	go func() {
		done <- c.Fetch(seqset, items, messages)
	}()

	summaries := make([]MessageSummary, 0, len(ids))
	for msg := range messages {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		summaries = append(summaries, summarize(msg, section))
	}
	if err := <-done; err != nil {
		return nil, fmt.Errorf("imap fetch: %w", err)
	}

	return summaries, nil
}

func summarize(msg *imap.Message, section *imap.BodySectionName) MessageSummary {
	s := MessageSummary{ID: fmt.Sprintf("%d", msg.SeqNum)}

	if env := msg.Envelope; env != nil {
		s.Subject = env.Subject
		s.Date = env.Date
		if len(env.From) > 0 {
			s.From = env.From[0].Address()
			if env.From[0].PersonalName != "" {
				s.From = fmt.Sprintf("%s <%s>", env.From[0].PersonalName, env.From[0].Address())
			}
		}
	}

	body := msg.GetBody(section)
	if body == nil {
		return s
	}
	mr, err := mail.CreateReader(body)
	if err != nil {
		return s
	}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			break
		}
		if err != nil {
			break
		}
		switch h := part.Header.(type) {
		case *mail.InlineHeader:
			ct, _, _ := h.ContentType()
			data, err := io.ReadAll(part.Body)
			if err != nil {
				continue
			}
			switch {
			case strings.EqualFold(ct, "text/plain"):
				s.Body = truncate(string(data), bodyPreviewLimit)
			case strings.EqualFold(ct, "text/html"):
				s.HTMLBody = truncate(string(data), bodyPreviewLimit)
			}
		case *mail.AttachmentHeader:
			s.HasAttachments = true
		}
	}
	return s
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
