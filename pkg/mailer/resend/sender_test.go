package resend

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfig_Configured(t *testing.T) {
	t.Parallel()

	require.False(t, Config{}.Configured())
	require.False(t, Config{APIKey: "re_123"}.Configured())
	require.False(t, Config{SenderEmail: "news@example.com"}.Configured())
	require.True(t, Config{APIKey: "re_123", SenderEmail: "news@example.com"}.Configured())
}
