package pipeline

import (
	"context"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/newsroom/pkg/mailer"
	"github.com/dmitrymomot/newsroom/pkg/sanitizer"
	"github.com/dmitrymomot/newsroom/pkg/workspace"
)

// EmailSender delivers a single rendered email. *mailer.Mailer satisfies
// this interface.
type EmailSender interface {
	Send(ctx context.Context, params mailer.SendParams) error
}

// Result reports the outcome of a dispatch run.
type Result struct {
	Sent   int
	Failed int
}

// EmailData is the payload handed to the email template for each
// recipient. BodyHTML and CollateralHTML are pre-rendered and injected
// without further escaping.
type EmailData struct {
	Title          string
	IssueDate      string
	Highlights     string
	BodyHTML       template.HTML
	CollateralHTML template.HTML
	FirstName      string
}

// Dispatcher sends a rendered newsletter to a list of recipients one at
// a time, pausing between deliveries. A recipient failure is logged and
// counted but never aborts the run; the remaining recipients still get
// their copy.
type Dispatcher struct {
	mailer  EmailSender
	enabled bool
	cfg     Config
	log     *slog.Logger
}

// NewDispatcher creates a dispatcher. When enabled is false (the email
// provider is not configured) every dispatch becomes a no-op reporting
// zero sends.
func NewDispatcher(m EmailSender, enabled bool, cfg Config, log *slog.Logger) *Dispatcher {
	return &Dispatcher{mailer: m, enabled: enabled, cfg: cfg, log: log}
}

// SendAll delivers the newsletter to every recipient serially. The
// returned error is non-nil only when the run as a whole could not
// proceed (for example context cancellation); individual delivery
// failures are reflected in Result.Failed.
func (d *Dispatcher) SendAll(ctx context.Context, n *workspace.Newsletter, bodyHTML string, rcpts []Recipient) (Result, error) {
	var res Result
	if !d.enabled || d.cfg.Template == "" {
		d.log.InfoContext(ctx, "email delivery not configured, skipping dispatch",
			slog.String("newsletter_id", n.ID))
		return res, nil
	}

	text := sanitizer.StripTags(bodyHTML)
	collateral := collateralHTML(n.Collateral)

	for i, rcpt := range rcpts {
		data := EmailData{
			Title:          n.Title,
			IssueDate:      n.IssueDate,
			Highlights:     n.Highlights,
			BodyHTML:       template.HTML(bodyHTML),
			CollateralHTML: collateral,
			FirstName:      firstName(rcpt.Name),
		}
		err := d.mailer.Send(ctx, mailer.SendParams{
			To:       rcpt.Email,
			ToName:   rcpt.Name,
			Template: d.cfg.Template,
			Data:     data,
			Text:     text,
		})
		if err != nil {
			res.Failed++
			d.log.ErrorContext(ctx, "failed to deliver newsletter",
				slog.String("newsletter_id", n.ID),
				slog.String("recipient", rcpt.Email),
				slog.Any("error", err))
		} else {
			res.Sent++
		}

		if i < len(rcpts)-1 && d.cfg.SendDelay > 0 {
			select {
			case <-time.After(d.cfg.SendDelay):
			case <-ctx.Done():
				return res, ctx.Err()
			}
		}
	}
	return res, nil
}

func firstName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "there"
	}
	return name
}

// collateralHTML renders the collateral field as a sanitized HTML
// fragment. Bare URLs become links so the template can drop the value
// straight into the footer.
func collateralHTML(s string) template.HTML {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		link := `<a href="` + template.HTMLEscapeString(s) + `">` + template.HTMLEscapeString(s) + `</a>`
		return template.HTML(sanitizer.SanitizeEmailHTML(link))
	}
	return template.HTML(sanitizer.SanitizeEmailHTML(s))
}
