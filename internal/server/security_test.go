package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// countingEvaluator records how many requests reached evaluation.
type countingEvaluator struct {
	calls int
}

func (c *countingEvaluator) Evaluate(context.Context, EvalRequest) (EvalResponse, error) {
	c.calls++
	return EvalResponse{Result: "0", Algorithm: "schoolbook"}, nil
}

func newSecuredServer(sc SecurityConfig) (*Server, *countingEvaluator) {
	eval := &countingEvaluator{}
	return New(Config{Security: sc}, eval, nil, nil), eval
}

func serve(h http.Handler, method, path, origin, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func assertSecurityHeaders(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	for header, want := range map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

// TestEvalPreflight answers a cross-origin preflight for POST /v1/eval
// without evaluating anything.
func TestEvalPreflight(t *testing.T) {
	t.Parallel()
	s, eval := newSecuredServer(DefaultSecurityConfig())
	req := httptest.NewRequest(http.MethodOptions, "/v1/eval", http.NoBody)
	req.Header.Set("Origin", "https://calc.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPost) {
		t.Errorf("Access-Control-Allow-Methods = %q, want POST listed", got)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got != "Content-Type" {
		t.Errorf("Access-Control-Allow-Headers = %q, want Content-Type", got)
	}
	if eval.calls != 0 {
		t.Errorf("preflight reached the evaluator %d times", eval.calls)
	}
}

func TestEvalOrigins(t *testing.T) {
	t.Parallel()
	restricted := DefaultSecurityConfig()
	restricted.AllowedOrigins = []string{"https://calc.example"}
	disabled := DefaultSecurityConfig()
	disabled.EnableCORS = false

	tests := []struct {
		name   string
		config SecurityConfig
		origin string
		want   string
	}{
		{"listed origin echoed", restricted, "https://calc.example", "https://calc.example"},
		{"other origin refused", restricted, "https://evil.example", ""},
		{"no origin header", restricted, "", ""},
		{"cors disabled", disabled, "https://calc.example", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, eval := newSecuredServer(tt.config)
			rec := serve(s.Handler(), http.MethodPost, "/v1/eval", tt.origin, `{"op":"add","a":"1","b":"2"}`)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.want {
				t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, tt.want)
			}
			if eval.calls != 1 {
				t.Errorf("evaluator called %d times, want 1", eval.calls)
			}
		})
	}
}

// TestEvalBodyLimit rejects an oversized body with 413 before evaluation,
// and the rejection still carries the security headers.
func TestEvalBodyLimit(t *testing.T) {
	t.Parallel()
	sc := DefaultSecurityConfig()
	sc.MaxBodyBytes = 32
	s, eval := newSecuredServer(sc)

	rec := serve(s.Handler(), http.MethodPost, "/v1/eval", "", `{"op":"mul","a":"`+strings.Repeat("7", 64)+`","b":"3"}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusRequestEntityTooLarge)
	}
	if !strings.Contains(rec.Body.String(), "exceeds limit 32") {
		t.Errorf("body = %s, want the limit reported", rec.Body.String())
	}
	assertSecurityHeaders(t, rec)
	if eval.calls != 0 {
		t.Errorf("oversized body reached the evaluator")
	}

	rec = serve(s.Handler(), http.MethodPost, "/v1/eval", "", `{"op":"add","a":"1","b":"2"}`)
	if rec.Code != http.StatusOK {
		t.Errorf("body within the limit: status = %d, want %d", rec.Code, http.StatusOK)
	}
}

// TestReadOnlyEndpointHeaders checks the read-only endpoints go through the
// same middleware as evaluation.
func TestReadOnlyEndpointHeaders(t *testing.T) {
	t.Parallel()
	s, _ := newSecuredServer(DefaultSecurityConfig())
	for _, path := range []string{"/metrics", "/healthz", "/version"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()
			rec := serve(s.Handler(), http.MethodGet, path, "https://dash.example", "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			assertSecurityHeaders(t, rec)
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
				t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
			}
		})
	}
}
