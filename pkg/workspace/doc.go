// Package workspace is an HTTP client for the structured workspace store
// that holds newsletter pages, their block-structured bodies, and the
// contacts collection. All pipeline state lives in the store; this
// package is the only thing that reads or writes it.
package workspace
