// Package pipeline implements the newsletter send pipeline: it reacts
// to status change signals, guards against duplicate sends, renders the
// newsletter body from workspace blocks, resolves the recipient list
// and delivers the email to each recipient in turn.
//
// Only two status values trigger work. "Test Sent" delivers a single
// copy to the configured test address and leaves the stored status
// alone. "Ready" delivers to the full audience and, on success,
// advances the stored status to the terminal "Sent" so repeated signals
// for the same newsletter become no-ops.
package pipeline
