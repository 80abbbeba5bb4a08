package openapi

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// Mismatch reports one divergence between a cataloged descriptor and the
// OpenAPI document.
type Mismatch struct {
	OpID   string
	Detail string
}

func (m Mismatch) String() string { return m.OpID + ": " + m.Detail }

// Verify checks every cataloged operation against the document: the
// method+path pair must exist, the path parameters must agree, and every
// declared query parameter must be known to the document. Extra document
// parameters the catalog leaves out are not reported; the catalog is
// allowed to be a subset.
func Verify(ctx context.Context, catalog []core.Operation, doc *openapi3.T) ([]Mismatch, error) {
	docOps, err := FromDocument(ctx, doc)
	if err != nil {
		return nil, err
	}

	index := make(map[string]core.Operation, len(docOps))
	for _, op := range docOps {
		index[op.Method+" "+op.Path] = op
	}

	var out []Mismatch
	for _, op := range catalog {
		ref, ok := index[op.Method+" "+op.Path]
		if !ok {
			out = append(out, Mismatch{OpID: op.ID, Detail: fmt.Sprintf("%s %s not present in document", op.Method, op.Path)})
			continue
		}

		if !sameStrings(op.PathParams, ref.PathParams) {
			out = append(out, Mismatch{
				OpID:   op.ID,
				Detail: fmt.Sprintf("path params %v differ from document %v", op.PathParams, ref.PathParams),
			})
		}

		known := make(map[string]struct{}, len(ref.Query))
		for _, q := range ref.Query {
			known[q.Key] = struct{}{}
		}
		for _, q := range op.Query {
			if _, ok := known[q.Key]; !ok {
				out = append(out, Mismatch{OpID: op.ID, Detail: fmt.Sprintf("query parameter %q not present in document", q.Key)})
			}
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].OpID == out[j].OpID {
			return out[i].Detail < out[j].Detail
		}
		return out[i].OpID < out[j].OpID
	})
	return out, nil
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	return strings.Join(as, "\x00") == strings.Join(bs, "\x00")
}
