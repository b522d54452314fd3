package exchangerate

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/SscSPs/currency_bar/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string, seen *url.Values) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/convert", r.URL.Path)
		if seen != nil {
			*seen = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestConvert_Success(t *testing.T) {
	var q url.Values
	body := `{
		"motd": {"msg": "hello", "url": "https://example.com"},
		"success": true,
		"query": {"from": "USD", "to": "EUR", "amount": 100},
		"info": {"rate": 0.92},
		"historical": false,
		"date": "2024-03-01",
		"result": 92.15
	}`
	srv := newTestServer(t, http.StatusOK, body, &q)

	c := NewClient(srv.URL, time.Second, WithAPIKey("secret"))
	got, err := c.Convert(context.Background(), "USD", "EUR", decimal.NewFromInt(100))
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("92.15").Equal(got), "got %s", got)

	assert.Equal(t, "USD", q.Get("from"))
	assert.Equal(t, "EUR", q.Get("to"))
	assert.Equal(t, "100", q.Get("amount"))
	assert.Equal(t, "2", q.Get("places"))
	assert.Equal(t, "secret", q.Get("access_key"))
}

func TestConvert_NoAPIKeyOmitsParam(t *testing.T) {
	var q url.Values
	srv := newTestServer(t, http.StatusOK, `{"result": 1}`, &q)

	_, err := NewClient(srv.URL, time.Second).Convert(context.Background(), "USD", "EUR", decimal.NewFromInt(1))
	require.NoError(t, err)
	_, present := q["access_key"]
	assert.False(t, present)
}

func TestConvert_MissingResultFallsBackToAmount(t *testing.T) {
	for name, body := range map[string]string{
		"null result":   `{"query": {"from": "USD", "to": "EUR", "amount": 12.5}, "result": null}`,
		"absent result": `{"query": {"from": "USD", "to": "EUR", "amount": 12.5}}`,
	} {
		t.Run(name, func(t *testing.T) {
			srv := newTestServer(t, http.StatusOK, body, nil)
			got, err := NewClient(srv.URL, time.Second).Convert(context.Background(), "USD", "EUR", decimal.RequireFromString("12.5"))
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString("12.5").Equal(got))
		})
	}
}

func TestConvert_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "malformed body", status: http.StatusOK, body: `{"result": `},
		{name: "non-numeric result", status: http.StatusOK, body: `{"result": "abc"}`},
		{name: "server error", status: http.StatusInternalServerError, body: `{}`},
		{name: "explicit failure", status: http.StatusOK, body: `{"success": false, "result": null}`},
		{name: "explicit failure without result", status: http.StatusOK, body: `{"success": false}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body, nil)
			got, err := NewClient(srv.URL, time.Second).Convert(context.Background(), "USD", "EUR", decimal.NewFromInt(10))
			require.Error(t, err)
			assert.True(t, errors.Is(err, apperrors.ErrConversionFailed))
			assert.True(t, got.IsZero())
		})
	}
}

func TestConvert_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	_, err := NewClient(base, time.Second).Convert(context.Background(), "USD", "EUR", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConversionFailed))
}

func TestConvert_ContextCancelled(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"result": 1}`, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, time.Second, WithRateLimit(1)).Convert(ctx, "USD", "EUR", decimal.NewFromInt(10))
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrConversionFailed))
}
