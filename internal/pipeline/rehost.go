package pipeline

import (
	"context"

	"github.com/dmitrymomot/newsroom/pkg/blocks"
)

// ObjectStore uploads a remote file and returns its new public URL.
// *storage.S3Storage satisfies this interface.
type ObjectStore interface {
	PutFromURL(ctx context.Context, srcURL, keyPrefix string) (string, error)
}

// Rehoster copies workspace-hosted images to durable object storage so
// emails do not reference expiring signed URLs.
type Rehoster struct {
	store  ObjectStore
	prefix string
}

// NewRehoster creates a rehoster writing under the given key prefix.
func NewRehoster(store ObjectStore, prefix string) *Rehoster {
	return &Rehoster{store: store, prefix: prefix}
}

// RehostFunc returns a callback for the HTML generator scoped to one
// newsletter, grouping all of its images under a shared key prefix.
func (r *Rehoster) RehostFunc(newsletterID string) blocks.RehostFunc {
	return func(ctx context.Context, srcURL string) (string, error) {
		return r.store.PutFromURL(ctx, srcURL, r.prefix+"/"+newsletterID)
	}
}
