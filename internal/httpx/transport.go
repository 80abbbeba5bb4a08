// Package httpx provides the default net/http-backed Transport and the
// credential providers that attach Pipedrive authentication to outgoing
// requests.
package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// Credentials attaches authentication to an outgoing request. It must not
// alter the method, path, or body.
type Credentials interface {
	Apply(req *http.Request) error
}

// APIToken authenticates with a Pipedrive API token, sent as the api_token
// query parameter.
type APIToken string

func (t APIToken) Apply(req *http.Request) error {
	q := req.URL.Query()
	q.Set("api_token", string(t))
	req.URL.RawQuery = q.Encode()
	return nil
}

// BearerToken authenticates with an OAuth access token in the Authorization
// header.
type BearerToken string

func (t BearerToken) Apply(req *http.Request) error {
	req.Header.Set("Authorization", "Bearer "+string(t))
	return nil
}

// Transport sends assembled requests over net/http. It is safe for
// concurrent use; pooling and TLS live in the embedded http.Client.
type Transport struct {
	client *http.Client
	creds  Credentials
}

// Option mutates a Transport during construction.
type Option func(*Transport)

// WithHTTPClient replaces the underlying http.Client. By default a client
// with a 30 second timeout is used.
func WithHTTPClient(c *http.Client) Option { return func(t *Transport) { t.client = c } }

// WithCredentials sets the credential provider applied to every request.
func WithCredentials(c Credentials) Option { return func(t *Transport) { t.creds = c } }

// New constructs a Transport.
func New(opts ...Option) *Transport {
	t := &Transport{client: &http.Client{Timeout: 30 * time.Second}}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Send serializes the body per the request's declared content type, applies
// credentials, and performs the HTTP round trip. Connection-level failures
// are returned as-is for the Invoker to classify.
func (t *Transport) Send(ctx context.Context, req *core.Request) (*core.Response, error) {
	body, contentType, err := encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	if t.creds != nil {
		if err := t.creds.Apply(httpReq); err != nil {
			return nil, err
		}
	}

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &core.Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       raw,
	}, nil
}

// encodeBody renders the request body and reports the concrete content type
// to send. Multipart requests are encoded even when the files map carries
// the no-file marker, so the declared content type is honored either way.
func encodeBody(req *core.Request) (io.Reader, string, error) {
	switch req.ContentType {
	case core.ContentJSON:
		if req.Body == nil {
			return nil, "", nil
		}
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(raw), string(core.ContentJSON), nil

	case core.ContentForm:
		form := url.Values{}
		for _, key := range req.BodyKeys {
			form.Set(key, core.Stringify(req.Body[key]))
		}
		return bytes.NewBufferString(form.Encode()), string(core.ContentForm), nil

	case core.ContentMultipart:
		var buf bytes.Buffer
		w := multipart.NewWriter(&buf)
		for _, key := range req.BodyKeys {
			if err := w.WriteField(key, core.Stringify(req.Body[key])); err != nil {
				return nil, "", err
			}
		}
		for key, f := range req.Files {
			part, err := w.CreateFormFile(key, f.Name)
			if err != nil {
				return nil, "", err
			}
			if _, err := part.Write(f.Content); err != nil {
				return nil, "", err
			}
		}
		if err := w.Close(); err != nil {
			return nil, "", err
		}
		return &buf, w.FormDataContentType(), nil

	default:
		return nil, "", nil
	}
}
