package mailer

import (
	"bytes"
	"context"
	"errors"
	texttemplate "text/template"
)

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	FallbackSubject string `env:"MAILER_FALLBACK_SUBJECT" envDefault:"Newsletter"`
	DefaultLayout   string `env:"MAILER_DEFAULT_LAYOUT" envDefault:"base.html"`
}

// Mailer renders a template and sends the result through a provider.
type Mailer struct {
	sender   Sender
	renderer *Renderer
	config   Config
}

// New creates a Mailer with the given sender and renderer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{sender: sender, renderer: renderer, config: cfg}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	To       string
	ToName   string
	Template string
	Data     any

	// Optional overrides
	Subject string // Override template metadata subject
	Text    string // Override the plain-text alternative
	Layout  string // Override default layout
	ReplyTo string
}

// Send renders the template and delivers the email.
// Subject resolution: params.Subject > template metadata > config fallback.
// The subject itself is processed as a template, so it may reference the
// send data (e.g. "{{.Title}}").
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if params.To == "" {
		return ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		if fromMeta, ok := result.Metadata["Subject"].(string); ok {
			subject = fromMeta
		} else {
			subject = m.config.FallbackSubject
		}
	}
	subject, err = m.processSubject(subject, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	text := params.Text
	if text == "" {
		text = result.Text
	}

	email := &Email{
		To:      Recipient(params.ToName, params.To),
		Subject: subject,
		HTML:    result.HTML,
		Text:    text,
		ReplyTo: params.ReplyTo,
	}
	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}

func (m *Mailer) processSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
