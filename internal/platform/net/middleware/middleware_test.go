package middleware_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"falnama/internal/platform/net/middleware"
)

func TestAccessLog_PassThroughStatusAndBody(t *testing.T) {
	mw := middleware.AccessLog(middleware.AccessLogOptions{})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	rr := httptest.NewRecorder()

	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("expected status 201 got %d", rr.Code)
	}
	if rr.Body.String() != "ok" {
		t.Fatalf("expected body ok got %q", rr.Body.String())
	}
}

func TestAccessLog_SlowMarkDoesNotAffectResponse(t *testing.T) {
	mw := middleware.AccessLog(middleware.AccessLogOptions{Slow: time.Nanosecond})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(50 * time.Microsecond)
		_, _ = io.WriteString(w, "slow")
	})

	req := httptest.NewRequest(http.MethodGet, "/slow", nil)
	rr := httptest.NewRecorder()

	mw(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200 got %d", rr.Code)
	}
	if rr.Body.String() != "slow" {
		t.Fatalf("expected body slow got %q", rr.Body.String())
	}
}

func TestRecoverJSON_ConvertsPanicTo500(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rr := httptest.NewRecorder()

	middleware.RecoverJSON(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500 got %d", rr.Code)
	}
	var body struct {
		StatusCode int    `json:"status_code"`
		Status     string `json:"status"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not JSON: %v", err)
	}
	if body.StatusCode != http.StatusInternalServerError {
		t.Fatalf("expected envelope status_code 500 got %d", body.StatusCode)
	}
}

func TestRequestScope_PassesThrough(t *testing.T) {
	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/scoped", nil)
	rr := httptest.NewRecorder()

	middleware.RequestScope(next).ServeHTTP(rr, req)

	if !called {
		t.Fatal("next handler not called")
	}
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status 204 got %d", rr.Code)
	}
}
