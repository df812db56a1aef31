package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsroom/internal/pipeline"
	"github.com/dmitrymomot/newsroom/pkg/logger"
	"github.com/dmitrymomot/newsroom/pkg/workspace"
)

func TestDispatcher_DisabledIsNoop(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	d := pipeline.NewDispatcher(sender, false, testConfig(), logger.NewNope())

	res, err := d.SendAll(t.Context(), &workspace.Newsletter{ID: "page-1"}, "<p>hi</p>", []pipeline.Recipient{
		{Email: "a@example.com"},
	})
	require.NoError(t, err)
	require.Zero(t, res.Sent)
	require.Zero(t, res.Failed)
	require.Empty(t, sender.sent)
}

func TestDispatcher_EmptyTemplateIsNoop(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Template = ""
	sender := &fakeSender{}
	d := pipeline.NewDispatcher(sender, true, cfg, logger.NewNope())

	res, err := d.SendAll(t.Context(), &workspace.Newsletter{ID: "page-1"}, "<p>hi</p>", []pipeline.Recipient{
		{Email: "a@example.com"},
	})
	require.NoError(t, err)
	require.Zero(t, res.Sent)
	require.Empty(t, sender.sent)
}

func TestDispatcher_FirstNameFallback(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	d := pipeline.NewDispatcher(sender, true, testConfig(), logger.NewNope())

	_, err := d.SendAll(t.Context(), &workspace.Newsletter{ID: "page-1", Title: "Issue 12"}, "<p>hi</p>", []pipeline.Recipient{
		{Email: "a@example.com", Name: ""},
		{Email: "b@example.com", Name: "  "},
		{Email: "c@example.com", Name: "Cam"},
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 3)

	names := make([]string, 0, 3)
	for _, p := range sender.sent {
		data, ok := p.Data.(pipeline.EmailData)
		require.True(t, ok)
		names = append(names, data.FirstName)
	}
	require.Equal(t, []string{"there", "there", "Cam"}, names)
}

func TestDispatcher_PlainTextAlternative(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	d := pipeline.NewDispatcher(sender, true, testConfig(), logger.NewNope())

	_, err := d.SendAll(t.Context(), &workspace.Newsletter{ID: "page-1"}, "<h2>Feature A</h2><p>Details</p>", []pipeline.Recipient{
		{Email: "a@example.com"},
	})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	require.NotContains(t, sender.sent[0].Text, "<")
	require.Contains(t, sender.sent[0].Text, "Feature A")
}

func TestDispatcher_CollateralLinkified(t *testing.T) {
	t.Parallel()

	sender := &fakeSender{}
	d := pipeline.NewDispatcher(sender, true, testConfig(), logger.NewNope())

	n := &workspace.Newsletter{ID: "page-1", Collateral: "https://example.com/deck.pdf"}
	_, err := d.SendAll(t.Context(), n, "<p>hi</p>", []pipeline.Recipient{{Email: "a@example.com"}})
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	data, ok := sender.sent[0].Data.(pipeline.EmailData)
	require.True(t, ok)
	require.Contains(t, string(data.CollateralHTML), `href="https://example.com/deck.pdf"`)
}

func TestDispatcher_ContextCancelledBetweenSends(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.SendDelay = time.Second
	sender := &fakeSender{}
	d := pipeline.NewDispatcher(sender, true, cfg, logger.NewNope())

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	res, err := d.SendAll(ctx, &workspace.Newsletter{ID: "page-1"}, "<p>hi</p>", []pipeline.Recipient{
		{Email: "a@example.com"},
		{Email: "b@example.com"},
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, res.Sent)
}
