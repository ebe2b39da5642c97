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

package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NVIDIA/safevul/pkg/errors"
	"github.com/NVIDIA/safevul/pkg/server"
)

func newTestHandler(maxBulk int) http.Handler {
	return server.New(server.WithHandler(NewHandler(maxBulk).Routes())).Handler()
}

func do(t *testing.T, h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "safevuld", name)
	assert.Equal(t, "dev", versionDefault)
	assert.NotEmpty(t, buildVersion)
	assert.NotEmpty(t, commit)
	assert.NotEmpty(t, date)
}

func TestHandleCompare(t *testing.T) {
	h := newTestHandler(10)

	tests := []struct {
		name     string
		query    string
		status   int
		ordering string
		code     errors.ErrorCode
	}{
		{name: "less", query: "a=1.2.3&b=1.3.0", status: http.StatusOK, ordering: "less"},
		{name: "build ignored", query: "a=1.0.0%2Bx&b=1.0.0%2By", status: http.StatusOK, ordering: "equal"},
		{name: "prerelease below release", query: "a=1.0.0&b=1.0.0-rc.1", status: http.StatusOK, ordering: "greater"},
		{name: "loose range", query: "a=%5E1.2.3&b=1.2.3&loose=true", status: http.StatusOK, ordering: "equal"},
		{name: "strict range rejected", query: "a=%5E1.2.3&b=1.2.3", status: http.StatusBadRequest, code: errors.ErrCodeInvalidVersion},
		{name: "missing b", query: "a=1.2.3", status: http.StatusBadRequest, code: errors.ErrCodeInvalidRequest},
		{name: "bad loose", query: "a=1.2.3&b=1.2.3&loose=maybe", status: http.StatusBadRequest, code: errors.ErrCodeInvalidRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, h, httptest.NewRequest(http.MethodGet, "/v1/compare?"+tt.query, nil))
			require.Equal(t, tt.status, w.Code, w.Body.String())

			if tt.status == http.StatusOK {
				assert.Equal(t, tt.ordering, decode[CompareResponse](t, w).Ordering)
				return
			}
			assert.Equal(t, string(tt.code), decode[server.ErrorResponse](t, w).Code)
		})
	}
}

func TestHandleCompare_MethodNotAllowed(t *testing.T) {
	w := do(t, newTestHandler(10), httptest.NewRequest(http.MethodPost, "/v1/compare?a=1.0.0&b=1.0.0", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	assert.Equal(t, http.MethodGet, w.Header().Get("Allow"))
}

func TestHandleParse(t *testing.T) {
	h := newTestHandler(10)

	w := do(t, h, httptest.NewRequest(http.MethodGet, "/v1/parse?version=1.2.3-rc.1%2Bbuild", nil))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, VersionInfo{
		Version:    "1.2.3-rc.1",
		Major:      1,
		Minor:      2,
		Patch:      3,
		Prerelease: []string{"rc", "1"},
	}, decode[VersionInfo](t, w))

	w = do(t, h, httptest.NewRequest(http.MethodGet, "/v1/parse?version=v1.2.3", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, h, httptest.NewRequest(http.MethodGet, "/v1/parse?version=v1.2.3&loose=1", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1.2.3", decode[VersionInfo](t, w).Version)

	w = do(t, h, httptest.NewRequest(http.MethodGet, "/v1/parse", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandleSort(t *testing.T) {
	h := newTestHandler(10)

	body := `{"versions": ["1.0.0", "1.0.0-rc.1", "bogus", "1.0.0-alpha", "0.9.9", "1.0.0+b2"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/sort", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := do(t, h, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode[SortResponse](t, w)
	assert.Equal(t, []string{"0.9.9", "1.0.0-alpha", "1.0.0-rc.1", "1.0.0", "1.0.0+b2"}, resp.Versions)
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, "bogus", resp.Rejected[0].Input)
}

func TestHandleSort_YAMLDescendingLoose(t *testing.T) {
	body := "versions:\n  - \"^1.2.0\"\n  - \"~2.0.0\"\n  - \"1.10.0\"\nloose: true\ndescending: true\n"
	req := httptest.NewRequest(http.MethodPost, "/v1/sort", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/yaml; charset=utf-8")
	w := do(t, newTestHandler(10), req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, []string{"~2.0.0", "1.10.0", "^1.2.0"}, decode[SortResponse](t, w).Versions)
}

func TestHandleSort_Errors(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		contentType string
		body        string
		status      int
	}{
		{name: "get", method: http.MethodGet, status: http.StatusMethodNotAllowed},
		{name: "malformed json", method: http.MethodPost, body: `{"versions": [`, status: http.StatusBadRequest},
		{name: "array body", method: http.MethodPost, body: `["1.0.0"]`, status: http.StatusBadRequest},
		{name: "versions not array", method: http.MethodPost, body: `{"versions": "1.0.0"}`, status: http.StatusBadRequest},
		{name: "non string version", method: http.MethodPost, body: `{"versions": [1]}`, status: http.StatusBadRequest},
		{name: "malformed yaml", method: http.MethodPost, contentType: "application/yaml", body: "versions: [1.0.0", status: http.StatusBadRequest},
		{name: "too many", method: http.MethodPost, body: `{"versions": ["1.0.0", "1.0.1", "1.0.2"]}`, status: http.StatusBadRequest},
		{name: "too large", method: http.MethodPost, body: `{"versions": ["` + strings.Repeat("1", 2<<20) + `"]}`, status: http.StatusBadRequest},
	}

	h := newTestHandler(2)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/v1/sort", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			w := do(t, h, req)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestNewHandlerClampsBulk(t *testing.T) {
	assert.Equal(t, 1, NewHandler(0).maxBulk)
	assert.Len(t, NewHandler(5).Routes(), 3)
}
