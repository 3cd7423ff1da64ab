// internal/adapters/hbnb/client.go
package hbnb

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"hbnb_web/internal/adapters/observability"
	"hbnb_web/internal/domain"
)

// BasePath is appended to the origin for every endpoint.
const BasePath = "/api/v1"

// TokenSource yields the bearer token of the current caller, if any.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

type TokenFunc func(ctx context.Context) (string, bool)

func (f TokenFunc) Token(ctx context.Context) (string, bool) { return f(ctx) }

type Client struct {
	base   string
	hc     *http.Client
	rl     *rate.Limiter
	tokens TokenSource
}

// New builds a client for origin. rps <= 0 disables client-side rate limiting.
func New(origin string, tokens TokenSource, rps int) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(origin, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse API origin: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API origin %q must be absolute", origin)
	}
	c := &Client{
		base:   u.String() + BasePath,
		hc:     &http.Client{},
		tokens: tokens,
	}
	if rps > 0 {
		c.rl = rate.NewLimiter(rate.Limit(rps), rps)
	}
	return c, nil
}

// WithHTTPClient swaps the transport, mostly for tests.
func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.hc = hc
	return c
}

// BaseURL returns origin + BasePath.
func (c *Client) BaseURL() string { return c.base }

func (c *Client) Get(ctx context.Context, endpoint string, authenticated bool) (domain.APIResponse, error) {
	return c.do(ctx, http.MethodGet, endpoint, nil, authenticated)
}

func (c *Client) Post(ctx context.Context, endpoint string, body any, authenticated bool) (domain.APIResponse, error) {
	return c.do(ctx, http.MethodPost, endpoint, body, authenticated)
}

func (c *Client) Put(ctx context.Context, endpoint string, body any, authenticated bool) (domain.APIResponse, error) {
	return c.do(ctx, http.MethodPut, endpoint, body, authenticated)
}

func (c *Client) Delete(ctx context.Context, endpoint string, authenticated bool) (domain.APIResponse, error) {
	return c.do(ctx, http.MethodDelete, endpoint, nil, authenticated)
}

// ---- Internals ----

// do sends one request. Any HTTP status is a successful outcome here; only
// transport and encoding failures are errors. There is no retry.
func (c *Client) do(ctx context.Context, method, endpoint string, body any, authenticated bool) (domain.APIResponse, error) {
	if c.rl != nil {
		if err := c.rl.Wait(ctx); err != nil {
			return domain.APIResponse{}, err
		}
	}

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return domain.APIResponse{}, fmt.Errorf("encode %s %s body: %w", method, endpoint, err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base+endpoint, rdr)
	if err != nil {
		return domain.APIResponse{}, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "hbnb-web/1.0")
	if authenticated {
		// read fresh on every call; an absent token still sends the header
		tok := ""
		if c.tokens != nil {
			tok, _ = c.tokens.Token(ctx)
		}
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("hbnb-api", endpointLabel(method, endpoint), 0, time.Since(start))
		return domain.APIResponse{}, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	observability.ObserveExternal("hbnb-api", endpointLabel(method, endpoint), resp.StatusCode, time.Since(start))
	if err != nil {
		return domain.APIResponse{}, fmt.Errorf("read %s %s body: %w", method, endpoint, err)
	}
	return domain.APIResponse{Status: resp.StatusCode, Body: b}, nil
}

// endpointLabel keeps metric cardinality low: "GET /places", "GET /places/{id}".
func endpointLabel(method, endpoint string) string {
	p := endpoint
	if i := strings.IndexAny(p, "?#"); i >= 0 {
		p = p[:i]
	}
	parts := strings.Split(strings.Trim(p, "/"), "/")
	if len(parts) > 1 && parts[0] != "auth" {
		p = "/" + parts[0] + "/{id}"
	} else {
		p = "/" + strings.Join(parts, "/")
	}
	return method + " " + p
}
