package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/newsroom/pkg/workspace"
)

// Recipient is a resolved delivery target.
type Recipient struct {
	Email string
	Name  string
}

// ContactSource queries the contacts database by audience tag.
type ContactSource interface {
	Contacts(ctx context.Context, tags []string) ([]workspace.Contact, error)
}

// Resolver turns a newsletter's audience tags into a concrete recipient
// list. The resulting list is never empty: a full send with no matching
// contacts falls back to the configured fallback address.
type Resolver struct {
	contacts ContactSource
	cfg      Config
	log      *slog.Logger
}

// NewResolver creates a recipient resolver backed by the given contact
// source.
func NewResolver(contacts ContactSource, cfg Config, log *slog.Logger) *Resolver {
	return &Resolver{contacts: contacts, cfg: cfg, log: log}
}

// Resolve returns the recipient list for the given audience and mode.
func (r *Resolver) Resolve(ctx context.Context, audience []string, mode SendMode) ([]Recipient, error) {
	if mode == ModeTest {
		if r.cfg.TestEmail == "" {
			return nil, ErrMissingTestRecipient
		}
		return []Recipient{{Email: r.cfg.TestEmail, Name: r.cfg.TestName}}, nil
	}

	if len(audience) == 0 {
		r.log.WarnContext(ctx, "newsletter has no audience tags, using fallback recipient")
		return r.fallback()
	}

	contacts, err := r.contacts.Contacts(ctx, audience)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResolveFailed, err)
	}
	if len(contacts) == 0 {
		r.log.WarnContext(ctx, "audience matched no contacts, using fallback recipient",
			slog.Any("audience", audience))
		return r.fallback()
	}

	rcpts := make([]Recipient, 0, len(contacts))
	for _, c := range contacts {
		rcpts = append(rcpts, Recipient{Email: c.Email, Name: c.FirstName})
	}
	return rcpts, nil
}

func (r *Resolver) fallback() ([]Recipient, error) {
	email := r.cfg.FallbackEmail
	if email == "" {
		email = r.cfg.TestEmail
	}
	if email == "" {
		return nil, ErrMissingTestRecipient
	}
	return []Recipient{{Email: email, Name: r.cfg.FallbackName}}, nil
}
