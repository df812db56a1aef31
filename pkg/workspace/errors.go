package workspace

import "errors"

// Sentinel errors for workspace operations.
var (
	ErrMissingAPIKey = errors.New("workspace: missing API key")
	ErrNotFound      = errors.New("workspace: object not found")
	ErrRequestFailed = errors.New("workspace: request failed")
	ErrDecodeFailed  = errors.New("workspace: failed to decode response")
)
