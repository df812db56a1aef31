package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/newsroom/internal/pipeline"
	"github.com/dmitrymomot/newsroom/pkg/blocks"
	"github.com/dmitrymomot/newsroom/pkg/logger"
	"github.com/dmitrymomot/newsroom/pkg/mailer"
	"github.com/dmitrymomot/newsroom/pkg/workspace"
)

type fakeStore struct {
	status        string
	statusErr     error
	newsletter    *workspace.Newsletter
	newsletterErr error
	blocks        []blocks.Block
	blocksErr     error
	updated       []string
	updateErr     error
}

func (f *fakeStore) Status(_ context.Context, _ string) (string, error) {
	return f.status, f.statusErr
}

func (f *fakeStore) Newsletter(_ context.Context, _ string) (*workspace.Newsletter, error) {
	return f.newsletter, f.newsletterErr
}

func (f *fakeStore) Blocks(_ context.Context, _ string) ([]blocks.Block, error) {
	return f.blocks, f.blocksErr
}

func (f *fakeStore) UpdateStatus(_ context.Context, _, status string) error {
	f.updated = append(f.updated, status)
	return f.updateErr
}

type fakeContacts struct {
	contacts []workspace.Contact
	err      error
	gotTags  []string
}

func (f *fakeContacts) Contacts(_ context.Context, tags []string) ([]workspace.Contact, error) {
	f.gotTags = tags
	return f.contacts, f.err
}

type fakeSender struct {
	sent    []mailer.SendParams
	failOn  map[int]error // zero-based call index
	callNum int
}

func (f *fakeSender) Send(_ context.Context, params mailer.SendParams) error {
	defer func() { f.callNum++ }()
	if err, ok := f.failOn[f.callNum]; ok {
		return err
	}
	f.sent = append(f.sent, params)
	return nil
}

func testConfig() pipeline.Config {
	return pipeline.Config{
		TestEmail:     "test@example.com",
		TestName:      "Test Inbox",
		FallbackEmail: "fallback@example.com",
		FallbackName:  "Fallback",
		Template:      "newsletter.md",
		SkipSections:  []string{"Collateral Checklist"},
	}
}

func newService(store *fakeStore, contacts *fakeContacts, sender *fakeSender, cfg pipeline.Config) *pipeline.Service {
	log := logger.NewNope()
	resolver := pipeline.NewResolver(contacts, cfg, log)
	dispatcher := pipeline.NewDispatcher(sender, true, cfg, log)
	return pipeline.NewService(store, resolver, dispatcher, nil, cfg, log)
}

func TestService_NonTriggerStatusAcknowledged(t *testing.T) {
	t.Parallel()

	store := &fakeStore{status: "Draft"}
	sender := &fakeSender{}
	svc := newService(store, &fakeContacts{}, sender, testConfig())

	out, err := svc.HandleStatusChange(t.Context(), "page-1", "Draft")
	require.NoError(t, err)
	require.False(t, out.Triggered)
	require.Empty(t, sender.sent)
	require.Empty(t, store.updated)
}

func TestService_AlreadySentSkipped(t *testing.T) {
	t.Parallel()

	store := &fakeStore{status: "Sent"}
	sender := &fakeSender{}
	svc := newService(store, &fakeContacts{}, sender, testConfig())

	out, err := svc.HandleStatusChange(t.Context(), "page-1", "Ready")
	require.NoError(t, err)
	require.False(t, out.Triggered)
	require.Contains(t, out.Message, "already sent")
	require.Empty(t, sender.sent)
	require.Empty(t, store.updated)
}

func TestService_TestSendDoesNotAdvanceStatus(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		status:     "Test Sent",
		newsletter: &workspace.Newsletter{ID: "page-1", Title: "Issue 12", Audience: []string{"beta"}},
		blocks:     []blocks.Block{blocks.Paragraph(blocks.Plain("Hello world"))},
	}
	sender := &fakeSender{}
	svc := newService(store, &fakeContacts{}, sender, testConfig())

	out, err := svc.HandleStatusChange(t.Context(), "page-1", "Test Sent")
	require.NoError(t, err)
	require.True(t, out.Triggered)
	require.Equal(t, 1, out.Sent)
	require.Zero(t, out.Failed)
	require.Len(t, sender.sent, 1)
	require.Equal(t, "test@example.com", sender.sent[0].To)
	require.Empty(t, store.updated, "test send must not touch the stored status")
}

func TestService_FullSendAdvancesStatus(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		status:     "Ready",
		newsletter: &workspace.Newsletter{ID: "page-1", Title: "Issue 12", Audience: []string{"customers"}},
		blocks:     []blocks.Block{blocks.Paragraph(blocks.Plain("Hello world"))},
	}
	contacts := &fakeContacts{contacts: []workspace.Contact{
		{Email: "a@example.com", FirstName: "Ada"},
		{Email: "b@example.com", FirstName: "Bob"},
	}}
	sender := &fakeSender{}
	svc := newService(store, contacts, sender, testConfig())

	out, err := svc.HandleStatusChange(t.Context(), "page-1", "Ready")
	require.NoError(t, err)
	require.True(t, out.Triggered)
	require.Equal(t, 2, out.Sent)
	require.Equal(t, []string{"customers"}, contacts.gotTags)
	require.Equal(t, []string{"Sent"}, store.updated)
}

func TestService_RecipientFailureDoesNotAbortRun(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		status:     "Ready",
		newsletter: &workspace.Newsletter{ID: "page-1", Title: "Issue 12", Audience: []string{"customers"}},
		blocks:     []blocks.Block{blocks.Paragraph(blocks.Plain("Hello world"))},
	}
	contacts := &fakeContacts{contacts: []workspace.Contact{
		{Email: "a@example.com", FirstName: "Ada"},
		{Email: "b@example.com", FirstName: "Bob"},
		{Email: "c@example.com", FirstName: "Cam"},
	}}
	sender := &fakeSender{failOn: map[int]error{1: errors.New("smtp refused")}}
	svc := newService(store, contacts, sender, testConfig())

	out, err := svc.HandleStatusChange(t.Context(), "page-1", "Ready")
	require.NoError(t, err)
	require.Equal(t, 2, out.Sent)
	require.Equal(t, 1, out.Failed)
	// The run completed, so the status still advances.
	require.Equal(t, []string{"Sent"}, store.updated)
}

func TestService_FetchErrorSurfaces(t *testing.T) {
	t.Parallel()

	store := &fakeStore{statusErr: errors.New("boom")}
	sender := &fakeSender{}
	svc := newService(store, &fakeContacts{}, sender, testConfig())

	_, err := svc.HandleStatusChange(t.Context(), "page-1", "Ready")
	require.ErrorIs(t, err, pipeline.ErrFetchFailed)
	require.Empty(t, store.updated)
}

func TestService_StatusUpdateErrorSurfaces(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		status:     "Ready",
		newsletter: &workspace.Newsletter{ID: "page-1", Title: "Issue 12"},
		updateErr:  errors.New("conflict"),
	}
	sender := &fakeSender{}
	svc := newService(store, &fakeContacts{}, sender, testConfig())

	_, err := svc.HandleStatusChange(t.Context(), "page-1", "Ready")
	require.ErrorIs(t, err, pipeline.ErrStatusUpdateFailed)
}

func TestService_RenderedBodyReachesRecipients(t *testing.T) {
	t.Parallel()

	store := &fakeStore{
		status:     "Test Sent",
		newsletter: &workspace.Newsletter{ID: "page-1", Title: "Issue 12"},
		blocks: []blocks.Block{
			blocks.Heading(2, blocks.Plain("Feature A")),
			blocks.Paragraph(blocks.Plain("Details")),
			blocks.Heading(2, blocks.Plain("Collateral Checklist")),
			blocks.Paragraph(blocks.Plain("internal only")),
		},
	}
	sender := &fakeSender{}
	svc := newService(store, &fakeContacts{}, sender, testConfig())

	_, err := svc.HandleStatusChange(t.Context(), "page-1", "Test Sent")
	require.NoError(t, err)
	require.Len(t, sender.sent, 1)

	data, ok := sender.sent[0].Data.(pipeline.EmailData)
	require.True(t, ok)
	require.Contains(t, string(data.BodyHTML), "Feature A")
	require.NotContains(t, string(data.BodyHTML), "internal only")
}
