// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"golang.org/x/time/rate"
)

func newTestServer(limiter *rate.Limiter) *Server {
	return &Server{
		config:      NewConfig(),
		rateLimiter: limiter,
	}
}

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestRequestIDMiddleware(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))
	provided := uuid.New().String()

	tests := []struct {
		name     string
		header   string
		wantSame bool
	}{
		{name: "generates when missing"},
		{name: "keeps valid uuid", header: provided, wantSame: true},
		{name: "replaces invalid id", header: "invalid-not-a-uuid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var captured string
			handler := s.requestIDMiddleware(func(w http.ResponseWriter, r *http.Request) {
				captured = RequestID(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/v1/test", nil)
			if tt.header != "" {
				req.Header.Set("X-Request-Id", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)

			if _, err := uuid.Parse(captured); err != nil {
				t.Fatalf("expected valid UUID, got: %s", captured)
			}
			if tt.wantSame && captured != tt.header {
				t.Errorf("expected request ID %s, got %s", tt.header, captured)
			}
			if !tt.wantSame && captured == tt.header {
				t.Errorf("expected request ID %q to be replaced", tt.header)
			}
			if rec.Header().Get("X-Request-Id") != captured {
				t.Errorf("expected X-Request-Id header %s, got %s", captured, rec.Header().Get("X-Request-Id"))
			}
		})
	}
}

func TestVersionMiddleware(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	var captured string
	handler := s.versionMiddleware(func(w http.ResponseWriter, r *http.Request) {
		captured = APIVersion(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/v1/test", nil)
	req.Header.Set("Accept", "application/vnd.nvidia.safevul.v1+json")
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Header().Get("X-API-Version") != "v1" {
		t.Errorf("expected X-API-Version v1, got %q", rec.Header().Get("X-API-Version"))
	}
	if captured != "v1" {
		t.Errorf("expected API version v1 in context, got %q", captured)
	}
}

func TestRateLimitMiddleware_AllowsRequests(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	called := false
	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/test", nil))

	if !called {
		t.Error("expected handler to be called")
	}
	for _, h := range []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("expected %s header", h)
		}
	}
}

func TestRateLimitMiddleware_RejectsWhenExceeded(t *testing.T) {
	s := newTestServer(rate.NewLimiter(0, 0))
	before := testutil.ToFloat64(rateLimitRejects)

	called := false
	handler := s.rateLimitMiddleware(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/test", nil))

	if called {
		t.Error("handler should not be called when rate limited")
	}
	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("expected status 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header when rate limited")
	}
	if got := testutil.ToFloat64(rateLimitRejects) - before; got != 1 {
		t.Errorf("expected one rate limit reject recorded, got %v", got)
	}
}

func TestBodyLimitMiddleware(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))
	s.config.MaxBodyBytes = 8

	var readErr error
	handler := s.bodyLimitMiddleware(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/test", strings.NewReader(strings.Repeat("x", 64)))
	handler(httptest.NewRecorder(), req)

	if readErr == nil {
		t.Fatal("expected oversized body to fail")
	}
}

func TestPanicRecoveryMiddleware(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))
	before := testutil.ToFloat64(panicRecoveries)

	handler := s.panicRecoveryMiddleware(func(http.ResponseWriter, *http.Request) {
		panic("test panic")
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/test", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(panicRecoveries) - before; got != 1 {
		t.Errorf("expected one panic recovery recorded, got %v", got)
	}

	rec = httptest.NewRecorder()
	s.panicRecoveryMiddleware(okHandler)(rec, httptest.NewRequest(http.MethodGet, "/v1/test", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected normal request to pass, got %d", rec.Code)
	}
}

func TestLoggingMiddleware_TracksStatusCode(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusBadRequest, http.StatusInternalServerError} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			handler := s.loggingMiddleware(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(status)
			})

			rec := httptest.NewRecorder()
			handler(rec, httptest.NewRequest(http.MethodGet, "/v1/test", nil))

			if rec.Code != status {
				t.Errorf("expected status %d, got %d", status, rec.Code)
			}
		})
	}
}

func TestMetricsMiddleware_RecordsRoute(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))
	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/v1/metered", "201")
	before := testutil.ToFloat64(counter)

	handler := s.metricsMiddleware("/v1/metered", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/v1/metered?x=1", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("expected one request recorded, got %v", got)
	}
}

func TestMiddlewareChain(t *testing.T) {
	s := newTestServer(rate.NewLimiter(100, 200))

	var hasRequestID bool
	handler := s.withMiddleware("/v1/test", func(w http.ResponseWriter, r *http.Request) {
		hasRequestID = RequestID(r.Context()) != ""
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/v1/test", nil))

	if !hasRequestID {
		t.Error("expected request ID in context")
	}
	for _, header := range []string{"X-Request-Id", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "X-API-Version"} {
		if rec.Header().Get(header) == "" {
			t.Errorf("expected header %s to be set", header)
		}
	}
}
