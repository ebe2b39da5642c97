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
	"mime"
	"net/http"
	"slices"
	"strconv"

	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/NVIDIA/safevul/pkg/errors"
	"github.com/NVIDIA/safevul/pkg/serializer"
	"github.com/NVIDIA/safevul/pkg/server"
	"github.com/NVIDIA/safevul/pkg/version"
)

// Handler serves the version endpoints.
type Handler struct {
	maxBulk int
}

// NewHandler returns a Handler that accepts at most maxBulk versions per
// sort request.
func NewHandler(maxBulk int) *Handler {
	if maxBulk < 1 {
		maxBulk = 1
	}
	return &Handler{maxBulk: maxBulk}
}

// Routes maps API paths to handlers for server.WithHandler.
func (h *Handler) Routes() map[string]http.HandlerFunc {
	return map[string]http.HandlerFunc{
		"/v1/compare": h.HandleCompare,
		"/v1/parse":   h.HandleParse,
		"/v1/sort":    h.HandleSort,
	}
}

// CompareResponse is returned by GET /v1/compare.
type CompareResponse struct {
	A        string `json:"a" yaml:"a"`
	B        string `json:"b" yaml:"b"`
	Ordering string `json:"ordering" yaml:"ordering"`
}

// HandleCompare handles GET /v1/compare?a=&b=[&loose=true].
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	loose, err := boolParam(q.Get("loose"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "invalid loose parameter", nil)
		return
	}

	var parsed [2]version.Version
	for i, key := range []string{"a", "b"} {
		raw := q.Get(key)
		if raw == "" {
			server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
				"missing query parameter", false, map[string]any{"parameter": key})
			return
		}
		if parsed[i], err = ParseVersion(raw, loose); err != nil {
			server.WriteErrorFromErr(w, r, err, "invalid version", map[string]any{"parameter": key})
			return
		}
	}

	serializer.RespondJSON(w, http.StatusOK, CompareResponse{
		A:        parsed[0].String(),
		B:        parsed[1].String(),
		Ordering: version.Compare(parsed[0], parsed[1]).String(),
	})
}

// HandleParse handles GET /v1/parse?version=[&loose=true].
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	q := r.URL.Query()
	loose, err := boolParam(q.Get("loose"))
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "invalid loose parameter", nil)
		return
	}
	raw := q.Get("version")
	if raw == "" {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"missing query parameter", false, map[string]any{"parameter": "version"})
		return
	}

	v, err := ParseVersion(raw, loose)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "invalid version", nil)
		return
	}
	serializer.RespondJSON(w, http.StatusOK, NewVersionInfo(v))
}

// SortRequest is the body of POST /v1/sort, as JSON or YAML.
type SortRequest struct {
	Versions   []string `json:"versions" yaml:"versions"`
	Loose      bool     `json:"loose,omitempty" yaml:"loose,omitempty"`
	Descending bool     `json:"descending,omitempty" yaml:"descending,omitempty"`
}

// Rejected is an input that did not parse.
type Rejected struct {
	Input string `json:"input" yaml:"input"`
	Error string `json:"error" yaml:"error"`
}

// SortResponse lists the accepted inputs in precedence order. Inputs of equal
// precedence keep their request order.
type SortResponse struct {
	Versions []string   `json:"versions" yaml:"versions"`
	Rejected []Rejected `json:"rejected,omitempty" yaml:"rejected,omitempty"`
}

// HandleSort handles POST /v1/sort.
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost) {
		return
	}

	req, err := decodeSortRequest(r)
	if err != nil {
		server.WriteErrorFromErr(w, r, err, "invalid request body", nil)
		return
	}
	if len(req.Versions) > h.maxBulk {
		server.WriteError(w, r, http.StatusBadRequest, errors.ErrCodeInvalidRequest,
			"too many versions", false, map[string]any{"count": len(req.Versions), "max": h.maxBulk})
		return
	}

	type entry struct {
		input  string
		parsed version.Version
	}
	entries := make([]entry, 0, len(req.Versions))
	resp := SortResponse{Versions: make([]string, 0, len(req.Versions))}
	for _, in := range req.Versions {
		v, perr := ParseVersion(in, req.Loose)
		if perr != nil {
			resp.Rejected = append(resp.Rejected, Rejected{Input: in, Error: perr.Error()})
			continue
		}
		entries = append(entries, entry{input: in, parsed: v})
	}

	slices.SortStableFunc(entries, func(a, b entry) int {
		o := version.Compare(a.parsed, b.parsed)
		if req.Descending {
			o = o.Invert()
		}
		return int(o)
	})
	for _, e := range entries {
		resp.Versions = append(resp.Versions, e.input)
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// decodeSortRequest reads a JSON body, or YAML when the content type says so.
func decodeSortRequest(r *http.Request) (*SortRequest, error) {
	body, err := readBody(r)
	if err != nil {
		return nil, err
	}

	var req SortRequest
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		if err := yaml.Unmarshal(body, &req); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRequest, "malformed YAML body", err)
		}
	default:
		if !gjson.ValidBytes(body) {
			return nil, errors.New(errors.ErrCodeInvalidRequest, "malformed JSON body")
		}
		doc := gjson.ParseBytes(body)
		if !doc.IsObject() {
			return nil, errors.New(errors.ErrCodeInvalidRequest, "request body must be a JSON object")
		}
		versions := doc.Get("versions")
		if versions.Exists() && !versions.IsArray() {
			return nil, errors.New(errors.ErrCodeInvalidRequest, "versions must be an array")
		}
		for _, v := range versions.Array() {
			if v.Type != gjson.String {
				return nil, errors.NewWithContext(errors.ErrCodeInvalidRequest,
					"versions must be strings", map[string]any{"value": v.Raw})
			}
			req.Versions = append(req.Versions, v.Str)
		}
		req.Loose = doc.Get("loose").Bool()
		req.Descending = doc.Get("descending").Bool()
	}
	return &req, nil
}

func requireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	server.WriteError(w, r, http.StatusMethodNotAllowed, errors.ErrCodeMethodNotAllowed,
		"Method not allowed", false, map[string]any{"method": r.Method})
	return false
}

func boolParam(s string) (bool, error) {
	if s == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, errors.WrapWithContext(errors.ErrCodeInvalidRequest,
			"invalid boolean parameter", err, map[string]any{"value": s})
	}
	return b, nil
}
