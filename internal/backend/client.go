package backend

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/toolcrib/cellmon/internal/cell"
)

// StateFetcher is the read surface the poll manager needs. Implemented by
// *Client; tests substitute fakes.
type StateFetcher interface {
	FetchState(ctx context.Context) (map[string]any, error)
}

var _ StateFetcher = (*Client)(nil)

// Client talks to the crib backend HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultServerURL = "http://127.0.0.1:8000"
	defaultUserAgent = "cellmon/0.1"
	requestTimeout   = 5 * time.Second
)

// NewClient builds a Client for the given base server URL. A bare host:port
// is accepted and treated as http.
func NewClient(serverURL string) (*Client, error) {
	base, err := parseBaseURL(serverURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// FetchState retrieves the full current state from GET /state. The cells
// object is returned undecoded for cell.Normalize to interpret.
func (c *Client) FetchState(ctx context.Context) (map[string]any, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	var payload StateResponse
	if err := c.do(ctx, http.MethodGet, "/state", &payload); err != nil {
		return nil, err
	}
	if payload.Cells == nil {
		return map[string]any{}, nil
	}
	return payload.Cells, nil
}

// Health probes GET /health. Used as a pre-flight reachability check before
// the console starts.
func (c *Client) Health(ctx context.Context) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	return c.do(ctx, http.MethodGet, "/health", nil)
}

// SetMock drives POST /mock/{cell_id}/{state} on a development backend.
// index is the 1-based position of the cell in the roster.
func (c *Client) SetMock(ctx context.Context, index int, door cell.DoorState) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	if index < 1 || index > len(cell.KnownIDs()) {
		return fmt.Errorf("cell index %d out of range 1..%d", index, len(cell.KnownIDs()))
	}
	if door != cell.DoorOpen && door != cell.DoorClosed {
		return fmt.Errorf("mock state must be open or closed, got %q", door)
	}
	rel := &url.URL{Path: "/mock/" + strconv.Itoa(index) + "/" + string(door)}
	return c.doURL(ctx, http.MethodPost, rel, nil)
}

// WSURL returns the push endpoint derived from the base URL. The scheme is
// upgraded alongside the page transport: http becomes ws, https becomes wss.
func (c *Client) WSURL() string {
	ws := *c.baseURL
	switch ws.Scheme {
	case "https":
		ws.Scheme = "wss"
	default:
		ws.Scheme = "ws"
	}
	ws.Path = "/ws"
	return ws.String()
}

func (c *Client) do(ctx context.Context, method, path string, dest any) error {
	rel := &url.URL{Path: path}
	return c.doURL(ctx, method, rel, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, dest any) error {
	reqURL := c.baseURL.ResolveReference(rel)
	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("api %s returned status %d", rel.String(), resp.StatusCode)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func parseBaseURL(serverURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(serverURL)
	if trimmed == "" {
		trimmed = defaultServerURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse server url %q: %w", serverURL, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
