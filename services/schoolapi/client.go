package schoolapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"escolaadmin/core"
)

type ctxKey int

const tokenKey ctxKey = 1

// WithToken returns a ctx carrying the upstream bearer token; every request
// made with that ctx is authenticated as the session's administrator.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

// APIError is a non-2xx upstream response. The status code is relayed to our
// own client untouched.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("school api: %d %s", e.StatusCode, e.Detail)
}

func (e *APIError) Is(target error) bool {
	return target == core.ErrNotFound && e.StatusCode == http.StatusNotFound
}

func newAPIError(status int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: status}
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != nil {
		var detail string
		if err := json.Unmarshal(payload.Detail, &detail); err == nil {
			apiErr.Detail = detail
		} else {
			apiErr.Detail = string(payload.Detail)
		}
	} else {
		apiErr.Detail = http.StatusText(status)
	}
	return apiErr
}

// authTransport stamps outgoing requests with the session token and a
// correlation id.
type authTransport struct {
	base http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	if token, ok := TokenFromContext(req.Context()); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("X-Request-ID", uuid.New().String())
	return t.base.RoundTrip(req)
}

// Client talks to the school REST API. It implements the Repository
// interface of every core package; all durable state lives upstream.
type Client struct {
	base   string
	client *http.Client
	log    core.Logger
}

func NewClient(conf *core.Config, logger core.Logger) (*Client, error) {
	base := strings.TrimSuffix(conf.API.BaseURL, "/")
	if _, err := url.Parse(base); err != nil {
		return nil, errors.Wrap(err, "parsing api base url")
	}
	return &Client{
		base: base,
		client: &http.Client{
			Timeout:   conf.API.Timeout,
			Transport: &authTransport{base: http.DefaultTransport},
		},
		log: logger,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+path, payload)
	if err != nil {
		return errors.Wrapf(err, "building %s %s", method, path)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "reading %s %s response", method, path)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode > 299 {
		return newAPIError(resp.StatusCode, data)
	}
	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(err, "decoding %s %s response", method, path)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// getList decodes collection endpoints, which answer either a pagination
// envelope {items, total, skip, limit} or a bare array depending on the route.
func (c *Client) getList(ctx context.Context, path string, out interface{}) error {
	var raw json.RawMessage
	if err := c.get(ctx, path, &raw); err != nil {
		return err
	}
	return decodeItems(raw, out)
}

func decodeItems(raw json.RawMessage, out interface{}) error {
	data := bytes.TrimSpace(raw)
	if len(data) > 0 && data[0] == '{' {
		var env struct {
			Items json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(data, &env); err != nil {
			return errors.Wrap(err, "decoding list envelope")
		}
		if env.Items != nil {
			data = env.Items
		}
	}
	return errors.Wrap(json.Unmarshal(data, out), "decoding list items")
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

func (c *Client) patch(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, out)
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
