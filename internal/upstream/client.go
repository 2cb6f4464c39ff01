// Package upstream provides HTTP+JSON client adapters for the resource
// services the feed aggregator composes. One Client per service; every call
// forwards the viewer's bearer credential and carries a bounded timeout so a
// slow upstream degrades like a dead one instead of stalling the request.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	perr "feedmill/internal/platform/errors"
	"feedmill/internal/platform/logger"
	pnet "feedmill/internal/platform/net"

	"github.com/google/uuid"
)

const (
	defaultTimeout = 3 * time.Second
	defaultUA      = "feedmill-api"
	maxBody        = 1 << 20
)

// Options configures a Client
type Options struct {
	BaseURL   string
	UserAgent string
	// Timeout bounds each call; exceeding it is a transport failure and the
	// caller's default-value policy applies
	Timeout time.Duration
}

// Client is a minimal JSON client for one upstream service
type Client struct {
	http *http.Client
	opts Options
	name string
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a Client for the named dependency
func NewClient(name string, o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		name: name,
		log:  *logger.Named("upstream-" + name),
		now:  time.Now,
	}
}

// GetJSON issues a GET and decodes the response body into out
func (c *Client) GetJSON(ctx context.Context, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, path, token, nil, out)
}

// PostJSON issues a POST with a JSON body and decodes the response into out
func (c *Client) PostJSON(ctx context.Context, path, token string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "%s encode request", c.name)
	}
	return c.do(ctx, http.MethodPost, path, token, b, out)
}

func (c *Client) do(ctx context.Context, method, path, token string, body []byte, out any) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, rd)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "%s new request", c.name)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	// propagate the inbound correlation id so one feed request is traceable
	// across all five services; mint one for calls outside a request
	rid := pnet.RequestID(ctx)
	if rid == "" {
		rid = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", rid)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s do failed", c.name)
	}
	defer func() {
		if cerr := drainAndClose(resp.Body); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("close body failed")
		}
	}()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("upstream http response")

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return perr.ErrNotFound
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// fallthrough to decode
	default:
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return perr.Newf(perr.ErrorCodeUnavailable,
			"%s unexpected status %d body %s", c.name, resp.StatusCode, string(tail))
	}

	if out == nil {
		return nil
	}
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxBody))
	if err := dec.Decode(out); err != nil {
		// a malformed body degrades exactly like a dead upstream
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s decode response", c.name)
	}
	return nil
}

// Ping reports whether the upstream answers HTTP at all; used by readiness
// probes. Any response counts as reachable, only transport failures do not.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.opts.BaseURL+"/", nil)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnknown, "%s new request", c.name)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	resp, err := c.http.Do(req)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s unreachable", c.name)
	}
	return drainAndClose(resp.Body)
}

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, maxBody))
	return rc.Close()
}

// pageQS renders the page/size query string shared by the paginated services
func pageQS(page, size int) string {
	return fmt.Sprintf("?page=%d&size=%d", page, size)
}
