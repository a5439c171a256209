package supabase_test

import (
	"ayurdeploy/pkg/domain"
	"ayurdeploy/pkg/serrors"
	"ayurdeploy/pkg/supabase"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(t *testing.T, fn rtFunc) *supabase.Client {
	t.Helper()

	c, err := supabase.New(&http.Client{Transport: fn}, "https://abc.supabase.co/", "test-key", "public")
	require.NoError(t, err)

	return c
}

func response(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNew_validation(t *testing.T) {
	tests := []struct {
		name string
		url  string
		key  string
	}{
		{name: "missing url", key: "k"},
		{name: "missing key", url: "https://abc.supabase.co"},
		{name: "no scheme", url: "abc.supabase.co", key: "k"},
		{name: "bad scheme", url: "ftp://abc.supabase.co", key: "k"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := supabase.New(http.DefaultClient, tt.url, tt.key, "public")
			require.ErrorIs(t, err, serrors.ErrConfig)
		})
	}
}

func TestClient_TableExists_present(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "abc.supabase.co", r.URL.Host)
		require.Equal(t, "/rest/v1/farmer_batches", r.URL.Path)
		require.Equal(t, "*", r.URL.Query().Get("select"))
		require.Equal(t, "1", r.URL.Query().Get("limit"))
		require.Equal(t, "test-key", r.Header.Get("apikey"))
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.Equal(t, "public", r.Header.Get("Accept-Profile"))

		return response(http.StatusOK, `[]`), nil
	})

	exists, err := c.TableExists(context.Background(), "farmer_batches")
	require.NoError(t, err)
	require.True(t, exists)
}

func TestClient_TableExists_absent(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{
			name:   "undefined table",
			status: http.StatusNotFound,
			body:   `{"code":"42P01","message":"relation \"public.contracts\" does not exist"}`,
		},
		{
			name:   "schema cache miss",
			status: http.StatusNotFound,
			body:   `{"code":"PGRST205","message":"Could not find the table 'public.contracts' in the schema cache"}`,
		},
		{
			name:   "undefined table with bad request status",
			status: http.StatusBadRequest,
			body:   `{"code":"42P01","message":"relation does not exist"}`,
		},
		{
			name:   "plain not found",
			status: http.StatusNotFound,
			body:   `not found`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
				return response(tt.status, tt.body), nil
			})

			exists, err := c.TableExists(context.Background(), "contracts")
			require.NoError(t, err)
			require.False(t, exists)
		})
	}
}

func TestClient_TableExists_errors(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
			return response(http.StatusUnauthorized, `{"message":"Invalid API key"}`), nil
		})

		_, err := c.TableExists(context.Background(), "contracts")
		require.ErrorIs(t, err, serrors.ErrUnauthorized)
		require.Contains(t, err.Error(), "Invalid API key")
	})

	t.Run("server error", func(t *testing.T) {
		c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
			return response(http.StatusBadGateway, `upstream down`), nil
		})

		_, err := c.TableExists(context.Background(), "contracts")
		require.ErrorIs(t, err, serrors.ErrUnavailable)
		require.Contains(t, err.Error(), "upstream down")
	})

	t.Run("transport error", func(t *testing.T) {
		c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
			return nil, errors.New("dial tcp: connection refused")
		})

		_, err := c.TableExists(context.Background(), "contracts")
		require.ErrorIs(t, err, serrors.ErrUnavailable)
	})

	t.Run("other client error", func(t *testing.T) {
		c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
			return response(http.StatusBadRequest, `{"code":"42703","message":"column does not exist"}`), nil
		})

		_, err := c.TableExists(context.Background(), "contracts")
		require.Error(t, err)

		var apiErr *supabase.APIError
		require.ErrorAs(t, err, &apiErr)
		require.Equal(t, "42703", apiErr.Code)
	})
}

func TestClient_InsertRows(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		calls++
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/rest/v1/auditor_inspections", r.URL.Path)
		require.Empty(t, r.URL.RawQuery)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "return=minimal", r.Header.Get("Prefer"))
		require.Equal(t, "public", r.Header.Get("Content-Profile"))

		var rows []map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		require.Len(t, rows, 1)
		require.Equal(t, "dummy", rows[0]["batch_id"])
		require.Equal(t, "2025-01-01", rows[0]["date"])

		return response(http.StatusCreated, ``), nil
	})

	require.NoError(t, c.InsertRows(context.Background(), "auditor_inspections"))
	require.Equal(t, 0, calls, "no rows must not issue a request")

	require.NoError(t, c.InsertRows(context.Background(), "auditor_inspections", domain.Row{
		"batch_id": "dummy",
		"date":     "2025-01-01",
	}))
	require.Equal(t, 1, calls)
}

func TestClient_UpsertRows(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/rest/v1/contracts", r.URL.Path)
		require.Equal(t, "name", r.URL.Query().Get("on_conflict"))
		require.Equal(t, "resolution=merge-duplicates,return=minimal", r.Header.Get("Prefer"))

		var rows []struct {
			Name    string          `json:"name"`
			Address string          `json:"address"`
			ABI     json.RawMessage `json:"abi"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&rows))
		require.Len(t, rows, 2)
		require.Equal(t, "FarmerBatches", rows[0].Name)
		require.JSONEq(t, `[{"type":"function","name":"addBatch"}]`, string(rows[0].ABI))

		return response(http.StatusCreated, ``), nil
	})

	err := c.UpsertRows(context.Background(), "contracts", "name",
		domain.Row{
			"name":    "FarmerBatches",
			"address": "0x0000000000000000000000000000000000000001",
			"abi":     json.RawMessage(`[{"type":"function","name":"addBatch"}]`),
		},
		domain.Row{
			"name":    "Manufacturer",
			"address": "0x0000000000000000000000000000000000000002",
			"abi":     json.RawMessage(`[]`),
		},
	)
	require.NoError(t, err)
}

func TestClient_UpsertRows_conflict(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return response(http.StatusConflict, `{"code":"23505","message":"duplicate key value"}`), nil
	})

	err := c.UpsertRows(context.Background(), "contracts", "address", domain.Row{"name": "X"})
	require.ErrorIs(t, err, serrors.ErrConflict)
}
