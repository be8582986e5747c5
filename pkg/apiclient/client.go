// Package apiclient is the shared JSON transport under every repository.
// It owns session cookies, the XSRF handshake, request IDs, the response
// interceptor hooks, and request metrics. It never normalizes errors into
// display text; that is the service layer's job via apierrors.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/xetasuite/xetasuite-go/pkg/apierrors"
	"github.com/xetasuite/xetasuite-go/pkg/endpoints"
)

const (
	xsrfCookieName = "XSRF-TOKEN"
	xsrfHeaderName = "X-XSRF-TOKEN"
	requestIDName  = "X-Request-ID"
)

// Hooks are the client-side analog of the SPA's response interceptors. Every
// hook is optional and fires after the typed error has been built; 401 skips
// the hook when the failing call was itself an auth endpoint.
type Hooks struct {
	OnUnauthorized func()
	OnForbidden    func()
	OnServerError  func(message string)
}

// Client issues JSON REST calls against one XetaSuite backend.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	logger  *logrus.Logger
	hooks   Hooks
	metrics *requestMetrics
	timeout time.Duration

	csrfMu      sync.Mutex
	csrfFetched bool
}

type Option func(*Client)

func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithTimeout caps every request. It applies after all other options, so
// it sticks regardless of its position relative to WithHTTPClient.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

func WithHooks(hooks Hooks) Option {
	return func(c *Client) { c.hooks = hooks }
}

// WithHTTPClient swaps the underlying http.Client. A cookie jar is attached
// if the given client has none.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.http = httpClient }
}

func New(baseURL string, opts ...Option) (*Client, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid base URL %q", baseURL)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("base URL %q must be absolute", baseURL)
	}

	c := &Client{
		baseURL: parsed,
		http:    &http.Client{Timeout: 30 * time.Second},
		logger:  logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		c.http.Timeout = c.timeout
	}
	if c.http.Jar == nil {
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}
		c.http.Jar = jar
	}
	return c, nil
}

// Get issues a GET and decodes the JSON body into out (skipped when out is
// nil). Query may be nil.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, nil)
}

// errorEnvelope is the backend's error body: message always optional,
// errors only present on 422 validation failures.
type errorEnvelope struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if method != http.MethodGet {
		if err := c.ensureCSRF(ctx); err != nil {
			return err
		}
	}

	target := c.baseURL.JoinPath(path)
	if len(query) > 0 {
		target.RawQuery = query.Encode()
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, target.String(), reader)
	if err != nil {
		return errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDName, uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet {
		if token := c.xsrfToken(); token != "" {
			req.Header.Set(xsrfHeaderName, token)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.observe(method, path, 0, time.Since(start))
		c.logger.WithError(err).WithField("path", path).Debug("request failed")
		return apierrors.Network(err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	c.metrics.observe(method, path, resp.StatusCode, time.Since(start))

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return apierrors.Network(errors.Wrap(err, "decoding response"))
		}
		return nil
	}

	var envelope errorEnvelope
	_ = json.NewDecoder(resp.Body).Decode(&envelope)
	apiErr := apierrors.New(resp.StatusCode, envelope.Message, envelope.Errors)
	c.fireHooks(path, apiErr)
	return apiErr
}

func (c *Client) fireHooks(path string, apiErr *apierrors.Error) {
	switch {
	case apiErr.Status == http.StatusUnauthorized:
		if isAuthPath(path) {
			return
		}
		c.logger.WithField("path", path).Warn("session expired")
		if c.hooks.OnUnauthorized != nil {
			c.hooks.OnUnauthorized()
		}
	case apiErr.Status == http.StatusForbidden:
		if c.hooks.OnForbidden != nil {
			c.hooks.OnForbidden()
		}
	case apiErr.Status >= 500:
		c.logger.WithField("path", path).WithField("status", apiErr.Status).Warn("server error")
		if c.hooks.OnServerError != nil {
			c.hooks.OnServerError(apierrors.Display(apiErr))
		}
	}
}

func isAuthPath(path string) bool {
	return path == endpoints.Auth.Login ||
		path == endpoints.Auth.Logout ||
		strings.HasPrefix(path, "/sanctum/")
}

// ensureCSRF performs the Sanctum cookie handshake once per client before
// the first state-changing request.
func (c *Client) ensureCSRF(ctx context.Context) error {
	c.csrfMu.Lock()
	defer c.csrfMu.Unlock()
	if c.csrfFetched && c.xsrfToken() != "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL.JoinPath(endpoints.Auth.CSRFCookie).String(), nil)
	if err != nil {
		return errors.Wrap(err, "building csrf request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return apierrors.Network(err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()
	if resp.StatusCode >= 400 {
		return apierrors.New(resp.StatusCode, "", nil)
	}
	c.csrfFetched = true
	return nil
}

// xsrfToken reads the XSRF cookie from the jar. Laravel URL-encodes cookie
// values, so the header echoes the decoded form.
func (c *Client) xsrfToken() string {
	for _, cookie := range c.http.Jar.Cookies(c.baseURL) {
		if cookie.Name == xsrfCookieName {
			if decoded, err := url.QueryUnescape(cookie.Value); err == nil {
				return decoded
			}
			return cookie.Value
		}
	}
	return ""
}
