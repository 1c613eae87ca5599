package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/toolcrib/cellmon/internal/cell"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "127.0.0.1:8000" {
		t.Fatalf("url = %q, want default http://127.0.0.1:8000", u.String())
	}

	u, err = parseBaseURL("crib.example:9000")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" || u.Host != "crib.example:9000" {
		t.Fatalf("url = %q, want scheme-prefixed host", u.String())
	}

	u, err = parseBaseURL("https://crib.example/app?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestWSURL_SchemeUpgrade(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://crib.example:8000", "ws://crib.example:8000/ws"},
		{"https://crib.example", "wss://crib.example/ws"},
		{"crib.example:8000", "ws://crib.example:8000/ws"},
	}
	for _, tt := range tests {
		c, err := NewClient(tt.base)
		if err != nil {
			t.Fatalf("NewClient(%q) returned error: %v", tt.base, err)
		}
		if got := c.WSURL(); got != tt.want {
			t.Fatalf("WSURL(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}

func TestClient_FetchStateAndHealth(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/state":
			_, _ = w.Write([]byte(`{"cells":{"Door_1":{"door":"open","cycle":"taken"},"bogus":{"door":"open"}}}`))
		case "/health":
			_, _ = w.Write([]byte(`{"status":"ok"}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)

	raw, err := c.FetchState(ctx)
	if err != nil {
		t.Fatalf("FetchState returned error: %v", err)
	}
	snap := cell.Normalize(raw)
	if got := snap["Door_1"]; got != (cell.Status{Door: cell.DoorOpen, Cycle: cell.CycleTaken}) {
		t.Fatalf("Door_1 = %+v, want open/taken", got)
	}
	if _, ok := snap["bogus"]; ok {
		t.Fatal("unknown identifier survived fetch+normalize")
	}

	if err := c.Health(ctx); err != nil {
		t.Fatalf("Health returned error: %v", err)
	}
	if !strings.HasPrefix(gotUserAgent, "cellmon/") {
		t.Fatalf("User-Agent = %q, want cellmon/*", gotUserAgent)
	}
}

func TestClient_FetchStateMissingCellsIsEmpty(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	raw, err := c.FetchState(context.Background())
	if err != nil {
		t.Fatalf("FetchState returned error: %v", err)
	}
	if raw == nil || len(raw) != 0 {
		t.Fatalf("raw = %v, want empty non-nil map", raw)
	}
}

func TestClient_HTTPErrorAndDecodeError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/state":
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte("{not-json"))
		case "/health":
			http.Error(w, "nope", http.StatusInternalServerError)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	c, err := NewClient(server.URL)
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	_, err = c.FetchState(context.Background())
	if err == nil || !strings.Contains(err.Error(), "decode response") {
		t.Fatalf("FetchState error = %v, want decode response error", err)
	}

	err = c.Health(context.Background())
	if err == nil || !strings.Contains(err.Error(), "returned status 500") {
		t.Fatalf("Health error = %v, want status 500 error", err)
	}
}

func TestClient_SetMockValidation(t *testing.T) {
	c, err := NewClient("127.0.0.1:1")
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	if err := c.SetMock(context.Background(), 0, cell.DoorOpen); err == nil {
		t.Fatal("SetMock accepted index 0")
	}
	if err := c.SetMock(context.Background(), 1, cell.DoorUnknown); err == nil {
		t.Fatal("SetMock accepted unknown door state")
	}
}

func TestDecodeEnvelope(t *testing.T) {
	env, ok := DecodeEnvelope([]byte(`{"type":"state","data":{"cells":{"Door_1":{"door":"open","cycle":"returned"}},"raw":"sensor-ok"}}`))
	if !ok {
		t.Fatal("valid envelope rejected")
	}
	if env.Data.Raw == nil || *env.Data.Raw != "sensor-ok" {
		t.Fatalf("raw = %v, want sensor-ok", env.Data.Raw)
	}

	cases := []string{
		`not json`,
		`{"type":"ping","data":{"cells":{}}}`,
		`{"type":"state"}`,
		`{"type":"state","data":{}}`,
		`42`,
	}
	for _, frame := range cases {
		if _, ok := DecodeEnvelope([]byte(frame)); ok {
			t.Fatalf("frame %q accepted, want dropped", frame)
		}
	}
}
