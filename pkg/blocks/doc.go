// Package blocks models the workspace's block-structured document body
// and converts it between three representations: the block model itself,
// sanitizable HTML for transactional email, and markdown for the
// language-model round trip.
//
// The HTML generator is stateful about list grouping (adjacent list
// items share one container), supports stopping at a configured section
// heading so editorial appendices never reach the rendered email, and
// can rehost images to permanent storage through a callback.
//
// The markdown parser is deliberately permissive: every non-blank line
// becomes exactly one block, and malformed inline markup falls back to
// literal text instead of failing.
package blocks
