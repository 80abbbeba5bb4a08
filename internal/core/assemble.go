package core

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Request is the assembled, transport-ready shape of one invocation. It is
// produced from an Operation plus Args and handed to the Transport unchanged.
type Request struct {
	Method string
	// Path is the URL path with all placeholders substituted.
	Path string
	// URL is the absolute request URL including the encoded query string.
	// Filled in by the Invoker once the base host is known.
	URL string
	// Query holds the (wire key, value) pairs in declaration order.
	Query []QueryPair
	// ContentType declares how Body and Files are serialized.
	ContentType ContentType
	// Body maps wire keys to the non-nil body field values. Nil when the
	// operation has no body fields set.
	Body map[string]any
	// BodyKeys preserves the declaration order of Body for deterministic
	// form encoding.
	BodyKeys []string
	// Files maps wire keys to file payloads for multipart operations. A nil
	// map is the explicit no-file marker: the request is still sent as
	// multipart, with form fields only.
	Files map[string]File
}

// QueryPair is one encoded query string entry.
type QueryPair struct {
	Key   string
	Value string
}

// EncodeQuery renders the query pairs in order, percent-escaped. Returns ""
// when there are no pairs.
func (r *Request) EncodeQuery() string {
	if len(r.Query) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range r.Query {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}

// Assemble builds a Request from op and args.
//
// Path parameters are always required: a missing or nil value fails with
// MissingParameterError before anything else happens. Query and body fields
// are included only when the argument is present and non-nil; falsy values
// (0, false, "") still count as present. For multipart operations the files
// map stays nil when no file payload was supplied, which the Transport reads
// as "multipart with no file parts".
func Assemble(op Operation, args Args) (*Request, error) {
	path := op.Path
	for _, name := range op.PathParams {
		v, ok := args[name]
		if !ok || v == nil {
			return nil, &MissingParameterError{Op: op.ID, Param: name}
		}
		path = strings.ReplaceAll(path, "{"+name+"}", url.PathEscape(Stringify(v)))
	}

	req := &Request{
		Method:      op.Method,
		Path:        path,
		ContentType: op.ContentType,
	}

	for _, qp := range op.Query {
		v, ok := args[qp.Arg]
		if !ok || v == nil {
			continue
		}
		req.Query = append(req.Query, QueryPair{Key: qp.Key, Value: Stringify(v)})
	}

	for _, bf := range op.Body {
		v, ok := args[bf.Arg]
		if !ok || v == nil {
			if bf.Required {
				return nil, &MissingParameterError{Op: op.ID, Param: bf.Arg}
			}
			continue
		}
		if req.Body == nil {
			req.Body = make(map[string]any, len(op.Body))
		}
		req.Body[bf.Key] = v
		req.BodyKeys = append(req.BodyKeys, bf.Key)
	}

	for _, ff := range op.Files {
		v, ok := args[ff.Arg]
		if !ok || v == nil {
			continue
		}
		var f File
		switch fv := v.(type) {
		case *File:
			if fv == nil {
				continue
			}
			f = *fv
		case File:
			f = fv
		default:
			continue
		}
		if req.Files == nil {
			req.Files = make(map[string]File, len(op.Files))
		}
		req.Files[ff.Key] = f
	}

	return req, nil
}

// Stringify renders a parameter value for use in a path segment, query pair,
// or form field. Booleans become "true"/"false", integer-valued floats drop
// the fraction, and slices join with commas (the list convention the
// Pipedrive API uses for id filters).
func Stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		return strconv.FormatBool(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		if val == float64(int64(val)) {
			return strconv.FormatInt(int64(val), 10)
		}
		return strconv.FormatFloat(val, 'f', -1, 64)
	case []int:
		parts := make([]string, len(val))
		for i, n := range val {
			parts[i] = strconv.Itoa(n)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(val, ",")
	default:
		return fmt.Sprintf("%v", val)
	}
}
