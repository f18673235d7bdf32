package http_test

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "falnama/internal/platform/errors"
	phttp "falnama/internal/platform/net/http"
)

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) phttp.Envelope {
	t.Helper()
	var env phttp.Envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v", err)
	}
	return env
}

func TestHandle_OKEnvelope(t *testing.T) {
	h := phttp.Handle(func(r *stdhttp.Request) phttp.Response {
		return phttp.OK(map[string]string{"hello": "دنیا"})
	})

	req := httptest.NewRequest(stdhttp.MethodGet, "/ok", nil)
	rr := httptest.NewRecorder()
	h(rr, req)

	if rr.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	env := decodeEnvelope(t, rr)
	if env.StatusCode != 200 || env.Status != "OK" {
		t.Fatalf("envelope = %+v", env)
	}
	if env.Data == nil {
		t.Fatal("envelope data missing")
	}
}

func TestHandle_ErrorBodySetsStatusFromCode(t *testing.T) {
	h := phttp.Handle(func(r *stdhttp.Request) phttp.Response {
		return phttp.Error(perr.NotFoundf("reading missing"))
	})

	req := httptest.NewRequest(stdhttp.MethodGet, "/missing", nil)
	rr := httptest.NewRecorder()
	h(rr, req)

	if rr.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	env := decodeEnvelope(t, rr)
	if env.Code != perr.ErrorCodeNotFound {
		t.Fatalf("code = %v, want not found", env.Code)
	}
	if !strings.Contains(env.Error, "reading missing") {
		t.Fatalf("error = %q", env.Error)
	}
}

func TestHandle_NoContentHasEmptyBody(t *testing.T) {
	h := phttp.Handle(func(r *stdhttp.Request) phttp.Response {
		return phttp.NoContent()
	})

	req := httptest.NewRequest(stdhttp.MethodDelete, "/gone", nil)
	rr := httptest.NewRecorder()
	h(rr, req)

	if rr.Code != stdhttp.StatusNoContent {
		t.Fatalf("status = %d, want 204", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Fatalf("body = %q, want empty", rr.Body.String())
	}
}
