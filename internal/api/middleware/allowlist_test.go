package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func callThrough(t *testing.T, allowlist *WebhookAllowlist, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/webhook", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()

	allowlist.Middleware(next).ServeHTTP(w, req)
	return w
}

func TestWebhookAllowlist_AllowsListedNetwork(t *testing.T) {
	allowlist, err := NewWebhookAllowlist(true, []string{"185.71.76.0/27"}, nopLogger{})
	require.NoError(t, err)

	w := callThrough(t, allowlist, "185.71.76.10:54321")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWebhookAllowlist_RejectsUnlistedAddress(t *testing.T) {
	allowlist, err := NewWebhookAllowlist(true, []string{"185.71.76.0/27"}, nopLogger{})
	require.NoError(t, err)

	w := callThrough(t, allowlist, "203.0.113.7:54321")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWebhookAllowlist_DisabledPassesEverything(t *testing.T) {
	allowlist, err := NewWebhookAllowlist(false, nil, nopLogger{})
	require.NoError(t, err)

	w := callThrough(t, allowlist, "203.0.113.7:54321")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewWebhookAllowlist_InvalidCIDR(t *testing.T) {
	_, err := NewWebhookAllowlist(true, []string{"not a network"}, nopLogger{})
	assert.Error(t, err)
}
