package health

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLivenessHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	LivenessHandler()(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestReadinessHandler_AllHealthy(t *testing.T) {
	t.Parallel()

	checks := Checks{
		"workspace": func(context.Context) error { return nil },
	}
	rec := httptest.NewRecorder()
	ReadinessHandler(checks)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, StatusHealthy, resp.Status)
	require.Equal(t, StatusHealthy, resp.Checks["workspace"].Status)
}

func TestReadinessHandler_FailedCheck(t *testing.T) {
	t.Parallel()

	checks := Checks{
		"workspace": func(context.Context) error { return errors.New("token revoked") },
	}
	rec := httptest.NewRecorder()
	ReadinessHandler(checks)(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, StatusUnhealthy, resp.Status)
	require.Equal(t, "token revoked", resp.Checks["workspace"].Error)
}
