// Package pipedrive is a Go client for the Pipedrive REST API.
//
// A Client exposes one typed method per endpoint, grouped into per-resource
// services (Deals, Persons, Activities, ...). Every method follows the same
// contract: required parameters are positional, optional ones live in a
// per-operation options struct whose nil pointer fields are simply not sent,
// and the return value is either the parsed JSON response or an empty Result
// for bodyless responses.
package pipedrive

import (
	"context"
	"net/http"
	"sort"

	"go.uber.org/zap"

	"github.com/mark3labs/pipedrive-go/internal/core"
	"github.com/mark3labs/pipedrive-go/internal/httpx"
)

// DefaultBaseURL is the Pipedrive v1 API host.
const DefaultBaseURL = "https://api.pipedrive.com/v1"

// DefaultOAuthBaseURL is the host for OAuth token exchange.
const DefaultOAuthBaseURL = "https://oauth.pipedrive.com"

// Aliases for the invoker types callers interact with. The implementation
// lives in internal packages; these names are the public surface.
type (
	// Result is the normalized outcome of a call: a parsed JSON value or
	// the explicit no-body marker.
	Result = core.Result
	// File is a multipart file payload.
	File = core.File
	// Operation is a static endpoint descriptor.
	Operation = core.Operation
	// Request is the assembled, transport-ready request shape.
	Request = core.Request
	// Response is the raw outcome of one Transport send.
	Response = core.Response
	// Transport performs the HTTP round trip for assembled requests.
	Transport = core.Transport
	// Credentials attaches authentication to outgoing requests.
	Credentials = httpx.Credentials

	// MissingParameterError reports a required parameter absent at
	// invocation; no network call was made.
	MissingParameterError = core.MissingParameterError
	// HTTPError reports a non-success status, carrying status and body.
	HTTPError = core.HTTPError
	// TransportError reports a connection-level failure.
	TransportError = core.TransportError
)

// APIToken authenticates with a Pipedrive API token (api_token query param).
func APIToken(token string) Credentials { return httpx.APIToken(token) }

// BearerToken authenticates with an OAuth access token.
func BearerToken(token string) Credentials { return httpx.BearerToken(token) }

type settings struct {
	baseURL      string
	oauthBaseURL string
	transport    core.Transport
	creds        httpx.Credentials
	httpClient   *http.Client
	logger       *zap.Logger
}

// Option configures a Client during construction. The resulting
// configuration is immutable for the Client's lifetime.
type Option func(*settings)

// WithBaseURL overrides the API host, e.g. for a company-specific domain or
// a test server.
func WithBaseURL(u string) Option { return func(s *settings) { s.baseURL = u } }

// WithOAuthBaseURL overrides the OAuth token host.
func WithOAuthBaseURL(u string) Option { return func(s *settings) { s.oauthBaseURL = u } }

// WithAPIToken authenticates every request with an API token.
func WithAPIToken(token string) Option {
	return func(s *settings) { s.creds = httpx.APIToken(token) }
}

// WithBearerToken authenticates every request with an OAuth access token.
func WithBearerToken(token string) Option {
	return func(s *settings) { s.creds = httpx.BearerToken(token) }
}

// WithCredentials sets a custom credential provider.
func WithCredentials(c Credentials) Option { return func(s *settings) { s.creds = c } }

// WithHTTPClient sets the http.Client used by the default transport.
func WithHTTPClient(c *http.Client) Option { return func(s *settings) { s.httpClient = c } }

// WithTransport replaces the transport entirely. Credentials and HTTP client
// options are ignored when a custom transport is set.
func WithTransport(t Transport) Option { return func(s *settings) { s.transport = t } }

// WithLogger sets the structured logger. Logging is off by default.
func WithLogger(l *zap.Logger) Option { return func(s *settings) { s.logger = l } }

// Client is the entry point. It is safe for concurrent use: all state is
// fixed at construction and every call is independent.
type Client struct {
	inv      *core.Invoker
	oauthInv *core.Invoker

	Activities    *ActivitiesService
	Deals         *DealsService
	Persons       *PersonsService
	Organizations *OrganizationsService
	Leads         *LeadsService
	Products      *ProductsService
	Pipelines     *PipelinesService
	Stages        *StagesService
	Notes         *NotesService
	Users         *UsersService
	Files         *FilesService
	Webhooks      *WebhooksService
	Search        *SearchService
	OAuth         *OAuthService
}

// New constructs a Client. Without options it targets the public Pipedrive
// host with no credentials attached.
func New(opts ...Option) *Client {
	s := settings{
		baseURL:      DefaultBaseURL,
		oauthBaseURL: DefaultOAuthBaseURL,
	}
	for _, opt := range opts {
		opt(&s)
	}

	transport := s.transport
	if transport == nil {
		var topts []httpx.Option
		if s.httpClient != nil {
			topts = append(topts, httpx.WithHTTPClient(s.httpClient))
		}
		if s.creds != nil {
			topts = append(topts, httpx.WithCredentials(s.creds))
		}
		transport = httpx.New(topts...)
	}

	c := &Client{
		inv:      core.NewInvoker(s.baseURL, transport, s.logger),
		oauthInv: core.NewInvoker(s.oauthBaseURL, transport, s.logger),
	}
	c.Activities = &ActivitiesService{c}
	c.Deals = &DealsService{c}
	c.Persons = &PersonsService{c}
	c.Organizations = &OrganizationsService{c}
	c.Leads = &LeadsService{c}
	c.Products = &ProductsService{c}
	c.Pipelines = &PipelinesService{c}
	c.Stages = &StagesService{c}
	c.Notes = &NotesService{c}
	c.Users = &UsersService{c}
	c.Files = &FilesService{c}
	c.Webhooks = &WebhooksService{c}
	c.Search = &SearchService{c}
	c.OAuth = &OAuthService{c}
	return c
}

// Do invokes an arbitrary cataloged operation with a free-form argument map.
// Nil-valued entries are dropped, matching the typed surface's omission
// rule. This is the door the CLI uses; library callers normally go through
// the typed service methods.
func (c *Client) Do(ctx context.Context, op Operation, params map[string]any) (Result, error) {
	args := core.Args{}
	for name, v := range params {
		args.SetAny(name, v)
	}
	return c.inv.Invoke(ctx, op, args)
}

var catalog []core.Operation

// register adds an operation descriptor to the catalog at package init.
// Duplicate IDs are a programming error.
func register(op core.Operation) core.Operation {
	for _, existing := range catalog {
		if existing.ID == op.ID {
			panic("pipedrive: duplicate operation id " + op.ID)
		}
	}
	catalog = append(catalog, op)
	return op
}

// Catalog returns every operation descriptor, sorted by ID. The returned
// slice is a copy; descriptors themselves are shared and read-only.
func Catalog() []Operation {
	out := make([]Operation, len(catalog))
	copy(out, catalog)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// LookupOperation finds a descriptor by ID.
func LookupOperation(id string) (Operation, bool) {
	for _, op := range catalog {
		if op.ID == id {
			return op, true
		}
	}
	return Operation{}, false
}
