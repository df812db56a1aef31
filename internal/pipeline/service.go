package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/newsroom/pkg/blocks"
	"github.com/dmitrymomot/newsroom/pkg/workspace"
)

// Store reads and writes newsletter state in the workspace.
// *workspace.Client satisfies this interface.
type Store interface {
	Status(ctx context.Context, pageID string) (string, error)
	Newsletter(ctx context.Context, pageID string) (*workspace.Newsletter, error)
	Blocks(ctx context.Context, pageID string) ([]blocks.Block, error)
	UpdateStatus(ctx context.Context, pageID, status string) error
}

// Outcome describes how a status signal was handled. Triggered is false
// for signals that were acknowledged without a send.
type Outcome struct {
	Message   string
	Triggered bool
	Sent      int
	Failed    int
}

// Service drives the send pipeline: it classifies inbound status
// signals, guards against double sends, renders the newsletter body,
// resolves recipients and hands the result to the dispatcher.
type Service struct {
	store      Store
	resolver   *Resolver
	dispatcher *Dispatcher
	rehoster   *Rehoster
	cfg        Config
	log        *slog.Logger
}

// NewService wires the pipeline together. rehoster may be nil when no
// object storage is configured; images then keep their original URLs.
func NewService(store Store, resolver *Resolver, dispatcher *Dispatcher, rehoster *Rehoster, cfg Config, log *slog.Logger) *Service {
	return &Service{
		store:      store,
		resolver:   resolver,
		dispatcher: dispatcher,
		rehoster:   rehoster,
		cfg:        cfg,
		log:        log,
	}
}

// HandleStatusChange processes one inbound status signal for the given
// newsletter page. Non-trigger statuses and already-sent newsletters
// are acknowledged without action. Only a successful full send advances
// the stored status to Sent; test sends leave it untouched.
func (s *Service) HandleStatusChange(ctx context.Context, newsletterID, status string) (Outcome, error) {
	mode, ok := triggerMode(status)
	if !ok {
		s.log.InfoContext(ctx, "status change does not trigger a send",
			slog.String("newsletter_id", newsletterID),
			slog.String("status", status))
		return Outcome{Message: "status change acknowledged, no action taken"}, nil
	}

	current, err := s.store.Status(ctx, newsletterID)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	if Status(current) == StatusSent {
		s.log.InfoContext(ctx, "newsletter already sent, skipping",
			slog.String("newsletter_id", newsletterID))
		return Outcome{Message: "newsletter already sent"}, nil
	}

	n, err := s.store.Newsletter(ctx, newsletterID)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}
	bs, err := s.store.Blocks(ctx, newsletterID)
	if err != nil {
		return Outcome{}, fmt.Errorf("%w: %v", ErrFetchFailed, err)
	}

	bodyHTML := s.renderBody(ctx, newsletterID, bs)

	rcpts, err := s.resolver.Resolve(ctx, n.Audience, mode)
	if err != nil {
		return Outcome{}, err
	}

	s.log.InfoContext(ctx, "dispatching newsletter",
		slog.String("newsletter_id", newsletterID),
		slog.String("mode", string(mode)),
		slog.Int("recipients", len(rcpts)))

	res, err := s.dispatcher.SendAll(ctx, n, bodyHTML, rcpts)
	if err != nil {
		return Outcome{}, err
	}

	if mode == ModeFull {
		if err := s.store.UpdateStatus(ctx, newsletterID, string(StatusSent)); err != nil {
			return Outcome{}, fmt.Errorf("%w: %v", ErrStatusUpdateFailed, err)
		}
	}

	return Outcome{
		Message:   fmt.Sprintf("newsletter %s dispatch complete", mode),
		Triggered: true,
		Sent:      res.Sent,
		Failed:    res.Failed,
	}, nil
}

func (s *Service) renderBody(ctx context.Context, newsletterID string, bs []blocks.Block) string {
	opts := []blocks.Option{
		blocks.WithSkipSections(s.cfg.SkipSections...),
		blocks.WithLogger(s.log),
	}
	if s.rehoster != nil {
		opts = append(opts, blocks.WithRehost(s.rehoster.RehostFunc(newsletterID)))
	}
	return blocks.NewGenerator(opts...).HTML(ctx, bs)
}
