// Package httpclient calls the sibling services of the food court over JSON
// HTTP: the user directory and the traceability store.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"foodcourt/internal/core/ports"

	"github.com/pkg/errors"
)

// StatusError is a non-2xx answer that is not a server failure.
type StatusError struct {
	Method string
	URL    string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.URL, e.Status)
}

// jsonClient sends JSON requests relative to baseURL. Transport failures,
// timeouts and 5xx answers wrap ports.ErrCollaboratorUnavailable.
type jsonClient struct {
	baseURL string
	http    *http.Client
}

func newJSONClient(baseURL string, timeout time.Duration) jsonClient {
	return jsonClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// do returns the response status. out is decoded only for 2xx answers with a body.
func (c jsonClient) do(ctx context.Context, method, path string, in, out any) (int, error) {
	url := c.baseURL + path

	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return 0, errors.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return 0, errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %s: %w", ports.ErrCollaboratorUnavailable, method, url, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, fmt.Errorf("%w: %s %s answered %d",
			ports.ErrCollaboratorUnavailable, method, url, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, errors.Wrapf(err, "failed to decode %s %s response", method, url)
		}
	}

	return resp.StatusCode, nil
}

func (c jsonClient) unexpected(method, path string, status int) error {
	return &StatusError{Method: method, URL: c.baseURL + path, Status: status}
}
