package opener

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/onurcolak/direct-message-service/environments"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	return newTestClientWithTimeout(t, handler, 2*time.Second)
}

func newTestClientWithTimeout(t *testing.T, handler http.HandlerFunc, timeout time.Duration) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewOpenerClient(environments.OpenerConfig{
		URL:     srv.URL,
		APIKey:  "bridge-key",
		Timeout: timeout,
	})
}

func TestCanOpen_DecodesResponse(t *testing.T) {
	var gotURL, gotKey string

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/can-open" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body openRequest
		_ = json.NewDecoder(r.Body).Decode(&body)
		gotURL = body.URL
		gotKey = r.Header.Get(APIKeyHeader)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"canOpen":true}`))
	})

	ok, err := c.CanOpen(context.Background(), "whatsapp://send?phone=1&text=")
	if err != nil {
		t.Fatalf("CanOpen returned error: %v", err)
	}
	if !ok {
		t.Fatalf("expected canOpen=true")
	}
	if gotURL != "whatsapp://send?phone=1&text=" {
		t.Errorf("unexpected url in request: %q", gotURL)
	}
	if gotKey != "bridge-key" {
		t.Errorf("expected api key header, got %q", gotKey)
	}
}

func TestOpen_Success(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/open" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := c.Open(context.Background(), "https://wa.me/qr/ABC"); err != nil {
		t.Fatalf("Open returned error: %v", err)
	}
}

func TestOpen_RefusedReturnsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"error":"no handler"}`))
	})

	if err := c.Open(context.Background(), "whatsapp-business://send?phone=1&text="); err == nil {
		t.Fatalf("expected error when device refuses to open link")
	}
}

func TestOpen_TimeoutIsNotRetried(t *testing.T) {
	var hits atomic.Int32

	c := newTestClientWithTimeout(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}, 100*time.Millisecond)

	if err := c.Open(context.Background(), "whatsapp://send?phone=1&text="); err == nil {
		t.Fatalf("expected timeout error")
	}
	if got := hits.Load(); got != 1 {
		t.Fatalf("expected a single open request, got %d", got)
	}
}

func TestCanOpen_RetriesAfterTimeout(t *testing.T) {
	var hits atomic.Int32

	c := newTestClientWithTimeout(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			time.Sleep(300 * time.Millisecond)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"canOpen":true}`))
	}, 100*time.Millisecond)

	ok, err := c.CanOpen(context.Background(), "whatsapp://send?phone=1&text=")
	if err != nil {
		t.Fatalf("CanOpen returned error: %v", err)
	}
	if !ok || hits.Load() != 2 {
		t.Fatalf("expected success on the second attempt, got ok=%v hits=%d", ok, hits.Load())
	}
}
