// Package backend implements the famgallery store interfaces against the
// external backend REST API. All persistence and authorization live on the
// other side of this client; it only shapes requests and surfaces responses.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pkg/errors"
	"github.com/twitsprout/tools"
	httputils "github.com/twitsprout/tools/http"
	jsonutils "github.com/twitsprout/tools/json"
)

// TokenSource resolves the bearer token attached to authenticated requests.
// The session layer implements it; public endpoints bypass it entirely.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// APIError is a non-2xx backend response. Detail carries the backend's
// `{"detail": ...}` message verbatim and is what users see.
type APIError struct {
	StatusCode int
	Detail     string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return e.Detail
}

// IsNotFound reports whether err is a backend 404. Public share and invite
// landings use it to render a dedicated not-found state instead of a generic
// error.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client talks JSON over HTTPS to the backend API. Timeouts are delegated to
// the transport; there is no retry or backoff of any kind.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	logger  tools.Logger
}

// New creates a backend Client rooted at baseURL.
func New(baseURL string, tokens TokenSource, logger tools.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httputils.NewClient(),
		tokens:  tokens,
		logger:  logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, true)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, true)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out, true)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil, true)
}

func (c *Client) getPublic(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, nil, out, false)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}, authed bool) error {
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encode request body")
		}
		rd = bytes.NewReader(b)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, rd)
	if err != nil {
		return errors.Wrapf(err, "build %s %s request", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return errors.Wrap(err, "resolve session token")
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		return decodeAPIError(res)
	}
	// A 204 carries no body.
	if res.StatusCode == http.StatusNoContent || out == nil {
		_, _ = io.Copy(io.Discard, res.Body)
		return nil
	}
	if err := jsonutils.Decode(res.Body, out); err != nil {
		return errors.Wrapf(err, "decode %s %s response", method, path)
	}
	return nil
}

func decodeAPIError(res *http.Response) error {
	var body struct {
		Detail string `json:"detail"`
	}
	if err := jsonutils.Decode(res.Body, &body); err != nil || body.Detail == "" {
		body.Detail = res.Status
	}
	return &APIError{StatusCode: res.StatusCode, Detail: body.Detail}
}

// PutObject uploads raw bytes to a presigned URL. The destination is opaque
// object storage, not the backend API, so no bearer token is attached.
func (c *Client) PutObject(ctx context.Context, uploadURL, contentType string, body io.Reader, size int64) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, uploadURL, body)
	if err != nil {
		return errors.Wrap(err, "build storage upload request")
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = size

	res, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "upload object to storage")
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)

	if res.StatusCode >= 400 {
		return errors.Errorf("storage upload failed with status %d", res.StatusCode)
	}
	return nil
}
