// Package supabase provides a storage.TableStorage implementation backed by
// the PostgREST API of a hosted Supabase project.
package supabase

import (
	"ayurdeploy/pkg/domain"
	"ayurdeploy/pkg/serrors"
	"ayurdeploy/pkg/storage"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// PostgREST error codes meaning the relation does not exist.
const (
	codeUndefinedTable = "42P01"
	codeTableNotCached = "PGRST205"
)

// APIError is the error document returned by PostgREST.
type APIError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details"`
	Hint    string `json:"hint"`
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("supabase returned status %d", e.Status)
	if e.Code != "" {
		msg += " (" + e.Code + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}

	return msg
}

// missingRelation reports whether the error means the probed table is absent.
func (e *APIError) missingRelation() bool {
	return e.Status == http.StatusNotFound || e.Code == codeUndefinedTable || e.Code == codeTableNotCached
}

// Client talks to the Supabase REST API with the service role key. It is safe
// for concurrent use.
type Client struct {
	httpClient     *http.Client // httpClient performs HTTP requests to the project
	restURL        *url.URL     // restURL is <project url>/rest/v1
	serviceRoleKey string       // serviceRoleKey is sent as apikey and bearer token
	schema         string       // schema selects the PostgREST profile
}

// Ensure Client conforms to the storage.TableStorage interface at compile time.
var _ storage.TableStorage = (*Client)(nil)

// New constructs a Client for the project at projectURL. Both the URL and the
// key are required.
func New(httpClient *http.Client, projectURL, serviceRoleKey, schema string) (*Client, error) {
	if projectURL == "" || serviceRoleKey == "" {
		return nil, serrors.With(serrors.ErrConfig, "supabase URL and service role key are required")
	}

	u, err := url.Parse(strings.TrimRight(projectURL, "/"))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, serrors.With(serrors.ErrConfig, "'%s' is not a valid supabase URL", projectURL)
	}

	return &Client{
		httpClient:     httpClient,
		restURL:        u.JoinPath("rest", "v1"),
		serviceRoleKey: serviceRoleKey,
		schema:         schema,
	}, nil
}

// TableExists selects at most one row from table. Missing relation errors
// report the table as absent, other failures are returned.
func (c *Client) TableExists(ctx context.Context, table string) (bool, error) {
	q := url.Values{}
	q.Set("select", "*")
	q.Set("limit", "1")

	_, err := c.do(ctx, http.MethodGet, table, q, nil, "")
	if err == nil {
		return true, nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.missingRelation() {
		return false, nil
	}

	return false, err
}

// InsertRows inserts rows into table. Calling it without rows is a no-op.
func (c *Client) InsertRows(ctx context.Context, table string, rows ...domain.Row) error {
	if len(rows) == 0 {
		return nil
	}

	_, err := c.do(ctx, http.MethodPost, table, nil, rows, "return=minimal")

	return err
}

// UpsertRows inserts rows into table, merging rows colliding on onConflict.
func (c *Client) UpsertRows(ctx context.Context, table string, onConflict string, rows ...domain.Row) error {
	if len(rows) == 0 {
		return nil
	}

	q := url.Values{}
	q.Set("on_conflict", onConflict)

	_, err := c.do(ctx, http.MethodPost, table, q, rows, "resolution=merge-duplicates,return=minimal")

	return err
}

func (c *Client) do(ctx context.Context,
	method, table string,
	query url.Values,
	body any,
	prefer string,
) ([]byte, error) {
	u := c.restURL.JoinPath(table)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("could not marshal request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("apikey", c.serviceRoleKey)
	req.Header.Set("Authorization", "Bearer "+c.serviceRoleKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if prefer != "" {
		req.Header.Set("Prefer", prefer)
	}
	if c.schema != "" {
		if method == http.MethodGet {
			req.Header.Set("Accept-Profile", c.schema)
		} else {
			req.Header.Set("Content-Profile", c.schema)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not reach supabase")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return b, nil
	}

	apiErr := &APIError{Status: resp.StatusCode}
	if jsonErr := json.Unmarshal(b, apiErr); jsonErr != nil {
		apiErr.Message = strings.TrimSpace(string(b))
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, serrors.Wrap(serrors.ErrUnauthorized, apiErr, "%s %s rejected", method, table)
	case resp.StatusCode == http.StatusConflict:
		return nil, serrors.Wrap(serrors.ErrConflict, apiErr, "%s %s conflicted", method, table)
	case resp.StatusCode >= 500:
		return nil, serrors.Wrap(serrors.ErrUnavailable, apiErr, "%s %s failed", method, table)
	default:
		return nil, fmt.Errorf("%s %s failed: %w", method, table, apiErr)
	}
}
