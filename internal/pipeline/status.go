package pipeline

// Status is the newsletter lifecycle enum persisted in the workspace.
// Draft is the resting state; Test Sent and Ready are transient trigger
// values; Sent is terminal and must never be sent again.
type Status string

const (
	StatusDraft    Status = "Draft"
	StatusTestSent Status = "Test Sent"
	StatusReady    Status = "Ready"
	StatusSent     Status = "Sent"
)

// SendMode selects the recipient set for a dispatch.
type SendMode string

const (
	// ModeTest sends only to the configured internal test address.
	ModeTest SendMode = "test"
	// ModeFull sends to the resolved audience.
	ModeFull SendMode = "full"
)

// triggerMode classifies an inbound status string. The second return is
// false for every status that does not warrant a send; those signals are
// acknowledged and ignored, not rejected.
func triggerMode(status string) (SendMode, bool) {
	switch Status(status) {
	case StatusTestSent:
		return ModeTest, true
	case StatusReady:
		return ModeFull, true
	}
	return "", false
}
