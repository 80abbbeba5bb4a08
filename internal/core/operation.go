package core

// Static operation descriptors. One Operation per REST endpoint, built at
// package init and never mutated afterwards.

// ContentType selects how an operation's body is serialized on the wire.
type ContentType string

const (
	// ContentNone is used by operations without a request body.
	ContentNone ContentType = ""
	// ContentJSON serializes body fields as an application/json object.
	ContentJSON ContentType = "application/json"
	// ContentForm serializes body fields as application/x-www-form-urlencoded.
	ContentForm ContentType = "application/x-www-form-urlencoded"
	// ContentMultipart serializes body fields and file payloads as multipart/form-data.
	ContentMultipart ContentType = "multipart/form-data"
)

// Operation describes one endpoint: its method, path template, and how every
// declared parameter maps onto the request. Descriptors are shared between
// concurrent calls and must be treated as read-only.
type Operation struct {
	// ID uniquely names the operation, e.g. "deals.list".
	ID string
	// Method is the HTTP method, uppercase ("GET", "POST", ...).
	Method string
	// Path is the URL path template with {name} placeholders, e.g. "/deals/{id}".
	Path string
	// Summary is a one-line human description used by catalog listings.
	Summary string
	// Tags group operations by resource for catalog filtering.
	Tags []string

	// PathParams lists the template placeholders in order. Every path
	// parameter is required.
	PathParams []string
	// Query lists the declared query parameters in their fixed declaration
	// order. Pairs are emitted in exactly this order.
	Query []QueryParam
	// Body lists the declared body fields for JSON/form/multipart bodies.
	Body []BodyField
	// Files lists the declared file fields for multipart bodies.
	Files []FileField
	// ContentType declares the body serialization. ContentNone when the
	// operation carries no body.
	ContentType ContentType
}

// QueryParam maps a local argument name onto its wire key. The two differ
// when the API uses characters Go identifiers cannot, e.g. argument
// "channel_id" sent as "channel-id". The mapping is recorded explicitly per
// parameter rather than derived by rule.
type QueryParam struct {
	Arg string
	Key string
}

// BodyField maps a local argument name onto a body field. Required fields
// must be present and non-nil before a request is constructed.
type BodyField struct {
	Arg      string
	Key      string
	Required bool
}

// FileField maps a local argument name onto a multipart file part.
type FileField struct {
	Arg string
	Key string
}

// Q is shorthand for a query parameter whose wire key equals its argument name.
func Q(name string) QueryParam { return QueryParam{Arg: name, Key: name} }

// F is shorthand for an optional body field whose wire key equals its argument name.
func F(name string) BodyField { return BodyField{Arg: name, Key: name} }

// FReq is shorthand for a required body field whose wire key equals its argument name.
func FReq(name string) BodyField { return BodyField{Arg: name, Key: name, Required: true} }
