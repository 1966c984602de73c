// Package backend is the REST adapter for the prestação de contas API.
// It implements every ports/services interface over plain HTTP: reads and
// mutations are forwarded to the Django backend, which stays the single
// source of truth for balances, statuses and authorization.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/hevile/prestacao-web/internal/apperrors"
	"github.com/hevile/prestacao-web/internal/session"
)

// Client talks to the prestação backend. Every call except ObtainToken is
// made under the /api/ namespace and carries "Authorization: Token <tok>"
// when the request context holds a session. No retries and no client-side
// timeout: calls run until the response arrives or the context is canceled.
type Client struct {
	origin  string // e.g. http://127.0.0.1:8000
	apiBase string // origin + "/api"
	http    *http.Client
}

// NewClient builds a Client for the given backend origin (no trailing
// slash, no /api suffix).
func NewClient(origin string) *Client {
	origin = strings.TrimRight(origin, "/")
	return &Client{
		origin:  origin,
		apiBase: origin + "/api",
		http:    http.DefaultClient,
	}
}

// newRequest builds a request against the /api/ namespace and attaches the
// session token, when present.
func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if s, ok := session.FromContext(ctx); ok && s.Token != "" {
		req.Header.Set("Authorization", "Token "+s.Token)
	}
	return req, nil
}

// doJSON sends body (when non-nil) as JSON and decodes a 2xx response into
// out (when non-nil).
func (c *Client) doJSON(ctx context.Context, method, path string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s body: %w", method, path, err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, reader, "application/json")
	if err != nil {
		return err
	}
	return c.send(req, out)
}

// doMultipart sends a multipart/form-data request built by fill.
func (c *Client) doMultipart(ctx context.Context, method, path string, fill func(*multipart.Writer) error, out any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := fill(mw); err != nil {
		return fmt.Errorf("failed to build %s %s form: %w", method, path, err)
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := c.newRequest(ctx, method, path, &buf, mw.FormDataContentType())
	if err != nil {
		return err
	}
	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("backend unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode %s %s response: %w", req.Method, req.URL.Path, err)
		}
	}
	return nil
}

// decodeError maps a non-2xx response to the application error taxonomy.
// DRF reports validation failures as {"field": ["message", ...]} and other
// failures as {"detail": "..."} or {"error": "..."}; both shapes are kept so
// pages can surface known field messages verbatim.
func decodeError(resp *http.Response) error {
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("%s %s: %w", resp.Request.Method, resp.Request.URL.Path, apperrors.ErrUnauthenticated)
	}

	apiErr := &apperrors.APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return apiErr
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return apiErr
	}

	for field, msg := range raw {
		var detail string
		if err := json.Unmarshal(msg, &detail); err == nil {
			if field == "detail" || field == "error" {
				apiErr.Detail = detail
			} else {
				if apiErr.FieldErrors == nil {
					apiErr.FieldErrors = map[string][]string{}
				}
				apiErr.FieldErrors[field] = []string{detail}
			}
			continue
		}
		var msgs []string
		if err := json.Unmarshal(msg, &msgs); err == nil && len(msgs) > 0 {
			if apiErr.FieldErrors == nil {
				apiErr.FieldErrors = map[string][]string{}
			}
			apiErr.FieldErrors[field] = msgs
		}
	}

	if resp.StatusCode == http.StatusNotFound && apiErr.FieldErrors == nil {
		return fmt.Errorf("%s: %w", apiErr.Detail, apperrors.ErrNotFound)
	}
	return apiErr
}

// writeField adds a plain form field when value is non-empty.
func writeField(mw *multipart.Writer, name, value string) error {
	if value == "" {
		return nil
	}
	return mw.WriteField(name, value)
}

// writeFile streams an uploaded file into the form under the given field
// name. A nil header writes nothing.
func writeFile(mw *multipart.Writer, name string, fh *multipart.FileHeader) error {
	if fh == nil {
		return nil
	}
	src, err := fh.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := mw.CreateFormFile(name, fh.Filename)
	if err != nil {
		return err
	}
	_, err = io.Copy(dst, src)
	return err
}
