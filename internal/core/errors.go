package core

import "fmt"

// Error taxonomy. Every error a call can return is one of the three types
// below; nothing else is raised and nothing is swallowed except the
// malformed-JSON-on-success case handled by Normalize.

// MissingParameterError reports a required path or body parameter that was
// absent or nil at invocation time. It is raised before any request is
// constructed, so a call failing this way performs zero network activity.
type MissingParameterError struct {
	Op    string // operation ID
	Param string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("%s: missing required parameter %q", e.Op, e.Param)
}

// HTTPError reports a response whose status code fell outside the 2xx/3xx
// success range. The body is carried verbatim for diagnostics; it is never
// parsed or normalized.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	const maxBody = 512
	body := e.Body
	if len(body) > maxBody {
		body = body[:maxBody]
	}
	return fmt.Sprintf("%s %s: http %d: %s", e.Method, e.URL, e.StatusCode, body)
}

// TransportError wraps a connection-level failure (DNS, timeout, refused
// connection) reported by the Transport. It is propagated unmodified and
// never retried.
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: transport: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
