package oracle

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"falnama/internal/core/script"
	perr "falnama/internal/platform/errors"
)

func newTestClient(url string) *Client {
	return NewClient(Options{
		BaseURL:    url,
		MaxRetries: 3,
		RetryBase:  time.Millisecond,
		RetryMax:   2 * time.Millisecond,
	})
}

func TestInterpret_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != interpretPath {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("content type %s", ct)
		}
		_, _ = w.Write([]byte(`{"text":"your path bends toward water"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.Interpret(context.Background(), InterpretRequest{Name: "Alice", System: script.SystemPythagorean, Number: 3})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if got != "your path bends toward water" {
		t.Fatalf("text = %q", got)
	}
}

func TestInterpret_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"text":"eventually"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	got, err := c.Interpret(context.Background(), InterpretRequest{Name: "Alice"})
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if got != "eventually" || calls.Load() != 3 {
		t.Fatalf("text=%q calls=%d", got, calls.Load())
	}
}

func TestInterpret_BadRequestIsTerminal(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"name required"}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Interpret(context.Background(), InterpretRequest{})
	if err == nil {
		t.Fatal("want error")
	}
	if !perr.IsCode(err, perr.ErrorCodeInvalidArgument) {
		t.Fatalf("want invalid argument, got %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("terminal status must not retry, calls=%d", calls.Load())
	}
}

func TestInterpret_RateLimitedExhausts(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Interpret(context.Background(), InterpretRequest{Name: "Alice"})
	if !perr.IsCode(err, perr.ErrorCodeTooManyRequests) {
		t.Fatalf("want rate limit error, got %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("429 should retry to exhaustion, calls=%d", calls.Load())
	}
}

func TestInterpret_EmptyTextIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"text":""}`))
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	_, err := c.Interpret(context.Background(), InterpretRequest{Name: "Alice"})
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want unavailable, got %v", err)
	}
}
