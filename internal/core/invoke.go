package core

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

// Transport performs the actual HTTP send for an assembled request. It is
// supplied by the caller; connection pooling, TLS, and credential injection
// happen behind this interface. Implementations must be safe for concurrent
// use, since invocations share nothing but the Transport itself.
type Transport interface {
	Send(ctx context.Context, req *Request) (*Response, error)
}

// Invoker executes operations against a fixed base host through an injected
// Transport. It holds no mutable state: concurrent calls need no
// coordination.
type Invoker struct {
	base      string
	transport Transport
	logger    *zap.Logger
}

// NewInvoker returns an Invoker sending to base (scheme + host + path
// prefix, no trailing slash required) through t. A nil logger disables
// logging.
func NewInvoker(base string, t Transport, logger *zap.Logger) *Invoker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Invoker{base: strings.TrimRight(base, "/"), transport: t, logger: logger}
}

// Base returns the configured base URL.
func (iv *Invoker) Base() string { return iv.base }

// Invoke assembles op with args, sends it, and normalizes the response.
//
// Failure modes, in order: MissingParameterError before any network call,
// TransportError on connection-level failure, HTTPError on any status
// outside 2xx/3xx. Normalization runs only on success statuses; a malformed
// body there degrades to the empty result with a warning log rather than an
// error.
func (iv *Invoker) Invoke(ctx context.Context, op Operation, args Args) (Result, error) {
	req, err := Assemble(op, args)
	if err != nil {
		return Result{}, err
	}

	req.URL = iv.base + req.Path
	if q := req.EncodeQuery(); q != "" {
		req.URL += "?" + q
	}

	iv.logger.Debug("pipedrive request",
		zap.String("op", op.ID),
		zap.String("method", req.Method),
		zap.String("url", req.URL))

	resp, err := iv.transport.Send(ctx, req)
	if err != nil {
		return Result{}, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return Result{}, &HTTPError{
			Method:     req.Method,
			URL:        req.URL,
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
		}
	}

	res := Normalize(resp)
	if LenientlyEmpty(resp, res) {
		iv.logger.Warn("discarding unparseable response body",
			zap.String("op", op.ID),
			zap.Int("status", resp.StatusCode),
			zap.Int("body_length", len(resp.Body)))
	}
	return res, nil
}
