// Package webhook exposes the HTTP entry point the workspace automation
// calls when a newsletter's status changes. It authenticates the call
// with a shared secret, normalizes the historical payload shapes and
// reports the dispatch outcome as a small JSON envelope.
package webhook
