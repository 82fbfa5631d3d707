package http

import (
	"encoding/json"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	perr "lunara/internal/platform/errors"
	lumnet "lunara/internal/platform/net"
)

func TestHandleSuccessEnvelope(t *testing.T) {
	t.Parallel()

	h := Handle(func(r *stdhttp.Request) Response {
		return OK(map[string]any{"answer": 42})
	})

	req := httptest.NewRequest(stdhttp.MethodGet, "/x", nil)
	req = req.WithContext(lumnet.WithRequest(req.Context(), "req-123"))
	rec := httptest.NewRecorder()
	h(rec, req)

	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var env struct {
		StatusCode int            `json:"status_code"`
		Status     string         `json:"status"`
		RequestID  string         `json:"request_id"`
		Data       map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.StatusCode != 200 || env.Status != "OK" || env.RequestID != "req-123" {
		t.Fatalf("envelope = %+v", env)
	}
	if env.Data["answer"] != float64(42) {
		t.Fatalf("data = %+v", env.Data)
	}
}

func TestHandleErrorEnvelope(t *testing.T) {
	t.Parallel()

	h := Handle(func(r *stdhttp.Request) Response {
		return Error(perr.Validationf("lmpDate3 is required"))
	})

	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(stdhttp.MethodPost, "/x", nil))

	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var env struct {
		StatusCode int    `json:"status_code"`
		Error      string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env.StatusCode != 400 || env.Error != "lmpDate3 is required" {
		t.Fatalf("envelope = %+v", env)
	}
}

func TestHandleNoContent(t *testing.T) {
	t.Parallel()

	h := Handle(func(r *stdhttp.Request) Response { return NoContent() })
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(stdhttp.MethodDelete, "/x", nil))

	if rec.Code != stdhttp.StatusNoContent {
		t.Fatalf("status = %d, want 204", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("204 should have no body, got %q", rec.Body.String())
	}
}

func TestResponseHeaderOverrides(t *testing.T) {
	t.Parallel()

	h := Handle(func(r *stdhttp.Request) Response {
		resp := OK("ok")
		resp.Header = stdhttp.Header{"X-Custom": []string{"yes"}}
		return resp
	})
	rec := httptest.NewRecorder()
	h(rec, httptest.NewRequest(stdhttp.MethodGet, "/x", nil))

	if got := rec.Header().Get("X-Custom"); got != "yes" {
		t.Fatalf("X-Custom = %q", got)
	}
}
