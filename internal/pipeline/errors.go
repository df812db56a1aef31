package pipeline

import "errors"

var (
	// ErrFetchFailed wraps any failure reading the newsletter or its
	// content blocks from the workspace.
	ErrFetchFailed = errors.New("pipeline: fetch failed")
	// ErrResolveFailed wraps a failure querying the contacts database.
	ErrResolveFailed = errors.New("pipeline: recipient resolution failed")
	// ErrStatusUpdateFailed wraps a failure writing the terminal status
	// back after a successful full send.
	ErrStatusUpdateFailed = errors.New("pipeline: status update failed")
	// ErrMissingTestRecipient is returned when a test send is triggered
	// but no test address is configured.
	ErrMissingTestRecipient = errors.New("pipeline: test recipient not configured")
)
