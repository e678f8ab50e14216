package relay

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type countingTransport struct {
	calls int
	inner http.RoundTripper
}

func (t *countingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	return t.inner.RoundTrip(req)
}

func TestProxyUnknownChannel(t *testing.T) {
	ct := &countingTransport{inner: http.DefaultTransport}
	svc := NewService(map[int]string{25: "http://radio.example/stream"}, 5*time.Second)
	svc.client.Transport = ct

	stream, err := svc.Proxy(context.Background(), 99)
	if !errors.Is(err, ErrUnknownChannel) {
		t.Fatalf("expected ErrUnknownChannel, got %v", err)
	}
	if stream != nil {
		t.Fatal("expected nil stream for unknown channel")
	}
	if ct.calls != 0 {
		t.Fatalf("unknown channel must not hit the network, saw %d requests", ct.calls)
	}
}

func TestProxySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "SmartTV/1.0" {
			t.Errorf("unexpected User-Agent %q", got)
		}
		if got := r.Header.Get("Accept"); got != "audio/*,*/*" {
			t.Errorf("unexpected Accept %q", got)
		}
		w.Header().Set("Content-Type", "audio/aac")
		w.Write([]byte("stream-bytes"))
	}))
	defer server.Close()

	svc := NewService(map[int]string{25: server.URL}, 5*time.Second)

	stream, err := svc.Proxy(context.Background(), 25)
	if err != nil {
		t.Fatalf("Proxy: %v", err)
	}
	defer stream.Body.Close()

	if stream.ContentType != "audio/aac" {
		t.Errorf("ContentType = %q, want audio/aac", stream.ContentType)
	}
	body, err := io.ReadAll(stream.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(body) != "stream-bytes" {
		t.Errorf("body = %q", body)
	}
}

func TestProxyDefaultContentType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Suppress content-type detection so the response carries none.
		w.Header()["Content-Type"] = nil
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("x"))
	}))
	defer server.Close()

	svc := NewService(map[int]string{25: server.URL}, 5*time.Second)

	stream, err := svc.Proxy(context.Background(), 25)
	if err != nil {
		t.Fatalf("Proxy: %v", err)
	}
	defer stream.Body.Close()

	if stream.ContentType != "audio/mpeg" {
		t.Errorf("ContentType = %q, want audio/mpeg default", stream.ContentType)
	}
}

func TestProxyUpstreamBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	svc := NewService(map[int]string{25: server.URL}, 5*time.Second)

	_, err := svc.Proxy(context.Background(), 25)
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
	if upErr.LCN != 25 {
		t.Errorf("LCN = %d, want 25", upErr.LCN)
	}
}

func TestProxyUpstreamUnreachable(t *testing.T) {
	// A server that is already closed refuses connections.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	svc := NewService(map[int]string{25: url}, 2*time.Second)

	_, err := svc.Proxy(context.Background(), 25)
	var upErr *UpstreamError
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *UpstreamError, got %v", err)
	}
}

func TestLookup(t *testing.T) {
	svc := NewService(map[int]string{25: "http://radio.example/a"}, time.Second)

	if url, ok := svc.Lookup(25); !ok || url != "http://radio.example/a" {
		t.Errorf("Lookup(25) = %q, %v", url, ok)
	}
	if _, ok := svc.Lookup(2); ok {
		t.Error("Lookup(2) should miss for a TV-only channel")
	}
}
