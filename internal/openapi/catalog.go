package openapi

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// BuildOption configures how descriptors are derived from a document.
type BuildOption func(*buildConfig)

type buildConfig struct {
	methods map[string]struct{}
	pathRes []*regexp.Regexp
	tags    map[string]struct{}
}

// WithMethods keeps only operations using one of the provided HTTP methods
// (uppercase).
func WithMethods(methods []string) BuildOption {
	return func(c *buildConfig) {
		if len(methods) == 0 {
			return
		}
		if c.methods == nil {
			c.methods = make(map[string]struct{}, len(methods))
		}
		for _, m := range methods {
			m = strings.ToUpper(strings.TrimSpace(m))
			if m == "" {
				continue
			}
			c.methods[m] = struct{}{}
		}
	}
}

// WithPathPatterns keeps only operations whose path matches at least one of
// the given regular expressions. Invalid patterns never match.
func WithPathPatterns(patterns []string) BuildOption {
	return func(c *buildConfig) {
		for _, p := range patterns {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			re, err := regexp.Compile(p)
			if err != nil {
				re = regexp.MustCompile("a^$")
			}
			c.pathRes = append(c.pathRes, re)
		}
	}
}

// WithTags keeps only operations carrying at least one of the given tags.
func WithTags(tags []string) BuildOption {
	return func(c *buildConfig) {
		if len(tags) == 0 {
			return
		}
		if c.tags == nil {
			c.tags = make(map[string]struct{}, len(tags))
		}
		for _, t := range tags {
			t = strings.TrimSpace(t)
			if t == "" {
				continue
			}
			c.tags[t] = struct{}{}
		}
	}
}

// FromDocument derives operation descriptors from an OpenAPI v3 document.
// Paths and methods are walked in a stable sorted order so the output is
// deterministic. Operation IDs come from the document's operationId when
// set, otherwise "method path".
func FromDocument(ctx context.Context, doc *openapi3.T, opts ...BuildOption) ([]core.Operation, error) {
	_ = ctx
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}

	cfg := &buildConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var out []core.Operation
	if doc.Paths == nil {
		return out, nil
	}

	pathKeys := make([]string, 0, len(doc.Paths))
	for p := range doc.Paths {
		pathKeys = append(pathKeys, p)
	}
	sort.Strings(pathKeys)

	for _, p := range pathKeys {
		item := doc.Paths[p]
		if item == nil {
			continue
		}
		ops := []struct {
			method string
			op     *openapi3.Operation
		}{
			{"GET", item.Get},
			{"POST", item.Post},
			{"PUT", item.Put},
			{"DELETE", item.Delete},
			{"PATCH", item.Patch},
		}
		for _, pair := range ops {
			if pair.op == nil {
				continue
			}
			if len(cfg.methods) > 0 {
				if _, ok := cfg.methods[pair.method]; !ok {
					continue
				}
			}
			if len(cfg.pathRes) > 0 && !matchesAny(cfg.pathRes, p) {
				continue
			}
			if len(cfg.tags) > 0 && !hasAnyTag(pair.op.Tags, cfg.tags) {
				continue
			}
			out = append(out, toOperation(pair.method, p, item, pair.op))
		}
	}
	return out, nil
}

func matchesAny(res []*regexp.Regexp, s string) bool {
	for _, re := range res {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

func hasAnyTag(tags []string, want map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := want[strings.TrimSpace(t)]; ok {
			return true
		}
	}
	return false
}

func toOperation(method, path string, item *openapi3.PathItem, op *openapi3.Operation) core.Operation {
	id := strings.TrimSpace(op.OperationID)
	if id == "" {
		id = method + " " + path
	}

	desc := core.Operation{
		ID:      id,
		Method:  method,
		Path:    path,
		Summary: strings.TrimSpace(op.Summary),
		Tags:    append([]string(nil), op.Tags...),
	}

	// Path-level parameters first, operation-level ones layered on top.
	seen := make(map[string]struct{})
	addParam := func(pref *openapi3.ParameterRef) {
		if pref == nil || pref.Value == nil {
			return
		}
		pv := pref.Value
		key := pv.In + ":" + pv.Name
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}
		switch pv.In {
		case "path":
			desc.PathParams = append(desc.PathParams, pv.Name)
		case "query":
			desc.Query = append(desc.Query, core.QueryParam{Arg: ArgName(pv.Name), Key: pv.Name})
		}
	}
	for _, pref := range op.Parameters {
		addParam(pref)
	}
	for _, pref := range item.Parameters {
		addParam(pref)
	}

	if op.RequestBody != nil && op.RequestBody.Value != nil {
		mime, media := pickMedia(op.RequestBody.Value.Content)
		switch {
		case strings.HasPrefix(mime, "multipart/"):
			desc.ContentType = core.ContentMultipart
		case mime == "application/x-www-form-urlencoded":
			desc.ContentType = core.ContentForm
		default:
			desc.ContentType = core.ContentJSON
		}
		if media != nil && media.Schema != nil && media.Schema.Value != nil {
			schema := media.Schema.Value
			required := make(map[string]struct{}, len(schema.Required))
			for _, r := range schema.Required {
				required[r] = struct{}{}
			}
			names := make([]string, 0, len(schema.Properties))
			for name := range schema.Properties {
				names = append(names, name)
			}
			sort.Strings(names)
			for _, name := range names {
				prop := schema.Properties[name]
				if desc.ContentType == core.ContentMultipart && isBinary(prop) {
					desc.Files = append(desc.Files, core.FileField{Arg: ArgName(name), Key: name})
					continue
				}
				_, req := required[name]
				desc.Body = append(desc.Body, core.BodyField{Arg: ArgName(name), Key: name, Required: req})
			}
		}
	}

	return desc
}

// pickMedia chooses the body media type deterministically: json wins, then
// form, then multipart, then the lexically first entry.
func pickMedia(content openapi3.Content) (string, *openapi3.MediaType) {
	if len(content) == 0 {
		return "", nil
	}
	for _, preferred := range []string{"application/json", "application/x-www-form-urlencoded", "multipart/form-data"} {
		if mt, ok := content[preferred]; ok {
			return preferred, mt
		}
	}
	keys := make([]string, 0, len(content))
	for k := range content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys[0], content[keys[0]]
}

func isBinary(ref *openapi3.SchemaRef) bool {
	return ref != nil && ref.Value != nil && ref.Value.Format == "binary"
}

// ArgName converts a wire parameter name into a local argument name:
// lowercase with dashes and dots folded to underscores. The reverse mapping
// is never derived; the descriptor records both names explicitly.
func ArgName(wire string) string {
	s := strings.ToLower(strings.TrimSpace(wire))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, ".", "_")
	return s
}
