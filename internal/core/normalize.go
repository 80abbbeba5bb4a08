package core

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// Result is the normalized outcome of a successful call: either a parsed
// JSON value or the explicit no-body marker. The two are distinct even when
// the parsed value is JSON null, so callers can tell "the server sent
// nothing" from "the server sent null".
type Result struct {
	value any
	empty bool
}

// Empty reports whether the response carried no usable body.
func (r Result) Empty() bool { return r.empty }

// Value returns the parsed JSON value: a map[string]any, []any, or scalar.
// It is nil when the result is empty or the value itself is JSON null.
func (r Result) Value() any { return r.value }

// Map returns the value as a JSON object, or nil when the result is empty or
// not an object.
func (r Result) Map() map[string]any {
	m, _ := r.value.(map[string]any)
	return m
}

// Slice returns the value as a JSON array, or nil when the result is empty
// or not an array.
func (r Result) Slice() []any {
	s, _ := r.value.([]any)
	return s
}

// Decode re-marshals the value into dst. It is a no-op on an empty result.
func (r Result) Decode(dst any) error {
	if r.empty {
		return nil
	}
	raw, err := json.Marshal(r.value)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dst)
}

// ValueResult wraps a parsed JSON value. Exposed for tests and for callers
// that synthesize results.
func ValueResult(v any) Result { return Result{value: v} }

// EmptyResult is the no-body marker.
func EmptyResult() Result { return Result{empty: true} }

// Response is the raw outcome of one Transport send.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Normalize converts a successful raw response into a Result. It is a pure
// function over the response and always terminates in one step:
//
//  1. status 204, zero-length body, or blank-after-trim body -> empty result
//  2. body parses as JSON -> that value, untouched
//  3. body fails to parse -> empty result, not an error
//
// Emptiness is checked before any parse is attempted. The lenient branch (3)
// deliberately degrades non-JSON bodies on success statuses to "no data"
// instead of failing the call; callers that care can detect it via
// LenientlyEmpty.
func Normalize(resp *Response) Result {
	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(resp.Body)) == 0 {
		return Result{empty: true}
	}
	var v any
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		return Result{empty: true}
	}
	return Result{value: v}
}

// LenientlyEmpty reports whether Normalize returned the empty result for a
// response that actually carried a non-blank body, i.e. the malformed-JSON
// case was hit. Useful for logging what may be a server bug (an HTML error
// page behind a 200, for instance).
func LenientlyEmpty(resp *Response, res Result) bool {
	return res.Empty() &&
		resp.StatusCode != http.StatusNoContent &&
		len(bytes.TrimSpace(resp.Body)) > 0
}
