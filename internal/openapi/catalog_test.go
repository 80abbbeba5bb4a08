package openapi

import (
	"context"
	"strings"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

const sampleDoc = `openapi: 3.0.0
info:
  title: Pipedrive API v1 (subset)
  version: "1.0.0"
paths:
  /deals:
    get:
      operationId: getDeals
      summary: Get all deals
      tags: [Deals]
      parameters:
        - in: query
          name: user_id
          schema:
            type: integer
        - in: query
          name: channel-id
          schema:
            type: integer
      responses:
        "200": { description: ok }
    post:
      operationId: addDeal
      summary: Add a deal
      tags: [Deals]
      requestBody:
        content:
          application/json:
            schema:
              type: object
              required: [title]
              properties:
                title:
                  type: string
                value:
                  type: number
      responses:
        "201": { description: created }
  /deals/{id}:
    get:
      operationId: getDeal
      summary: Get one deal
      tags: [Deals]
      parameters:
        - in: path
          name: id
          required: true
          schema:
            type: integer
      responses:
        "200": { description: ok }
  /files:
    post:
      operationId: addFile
      summary: Add a file
      tags: [Files]
      requestBody:
        content:
          multipart/form-data:
            schema:
              type: object
              properties:
                deal_id:
                  type: integer
                file:
                  type: string
                  format: binary
      responses:
        "201": { description: created }
`

func loadDoc(t *testing.T, doc string) *openapi3.T {
	t.Helper()
	loader := openapi3.NewLoader()
	parsed, err := loader.LoadFromData([]byte(strings.TrimSpace(doc)))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := parsed.Validate(context.Background()); err != nil {
		t.Fatalf("validate: %v", err)
	}
	return parsed
}

func TestFromDocument_Basic(t *testing.T) {
	t.Parallel()
	doc := loadDoc(t, sampleDoc)

	ops, err := FromDocument(context.Background(), doc)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(ops) != 4 {
		t.Fatalf("operations: got %d", len(ops))
	}

	byID := make(map[string]core.Operation, len(ops))
	for _, op := range ops {
		byID[op.ID] = op
	}

	list, ok := byID["getDeals"]
	if !ok {
		t.Fatalf("missing getDeals")
	}
	if list.Method != "GET" || list.Path != "/deals" {
		t.Errorf("getDeals: got %s %s", list.Method, list.Path)
	}
	// wire key with a dash maps to an underscored argument name
	var renamed bool
	for _, q := range list.Query {
		if q.Key == "channel-id" && q.Arg == "channel_id" {
			renamed = true
		}
	}
	if !renamed {
		t.Errorf("getDeals query params: %v", list.Query)
	}

	get, ok := byID["getDeal"]
	if !ok {
		t.Fatalf("missing getDeal")
	}
	if len(get.PathParams) != 1 || get.PathParams[0] != "id" {
		t.Errorf("getDeal path params: %v", get.PathParams)
	}

	add, ok := byID["addDeal"]
	if !ok {
		t.Fatalf("missing addDeal")
	}
	if add.ContentType != core.ContentJSON {
		t.Errorf("addDeal content type: %q", add.ContentType)
	}
	var titleRequired bool
	for _, f := range add.Body {
		if f.Key == "title" && f.Required {
			titleRequired = true
		}
	}
	if !titleRequired {
		t.Errorf("addDeal body fields: %v", add.Body)
	}
}

func TestFromDocument_MultipartFileField(t *testing.T) {
	t.Parallel()
	doc := loadDoc(t, sampleDoc)

	ops, err := FromDocument(context.Background(), doc, WithPathPatterns([]string{"^/files$"}))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(ops) != 1 {
		t.Fatalf("operations: got %d", len(ops))
	}
	op := ops[0]
	if op.ContentType != core.ContentMultipart {
		t.Errorf("content type: %q", op.ContentType)
	}
	if len(op.Files) != 1 || op.Files[0].Key != "file" {
		t.Errorf("file fields: %v", op.Files)
	}
	if len(op.Body) != 1 || op.Body[0].Key != "deal_id" {
		t.Errorf("body fields: %v", op.Body)
	}
}

func TestFromDocument_Filters(t *testing.T) {
	t.Parallel()
	doc := loadDoc(t, sampleDoc)

	ops, err := FromDocument(context.Background(), doc, WithMethods([]string{"POST"}))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, op := range ops {
		if op.Method != "POST" {
			t.Errorf("method filter leaked %s %s", op.Method, op.Path)
		}
	}

	ops, err = FromDocument(context.Background(), doc, WithTags([]string{"Files"}))
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if len(ops) != 1 || ops[0].Path != "/files" {
		t.Errorf("tag filter: got %v", ops)
	}
}

func TestArgName(t *testing.T) {
	t.Parallel()
	cases := []struct{ in, want string }{
		{"channel-id", "channel_id"},
		{"user_id", "user_id"},
		{"Sort.Field", "sort_field"},
		{" limit ", "limit"},
	}
	for _, tc := range cases {
		if got := ArgName(tc.in); got != tc.want {
			t.Errorf("argName(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()
	doc := loadDoc(t, sampleDoc)

	catalog := []core.Operation{
		{
			ID:     "deals.list",
			Method: "GET",
			Path:   "/deals",
			Query:  []core.QueryParam{core.Q("user_id")},
		},
		{
			ID:         "deals.get",
			Method:     "GET",
			Path:       "/deals/{id}",
			PathParams: []string{"id"},
		},
	}
	mismatches, err := Verify(context.Background(), catalog, doc)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if len(mismatches) != 0 {
		t.Fatalf("unexpected mismatches: %v", mismatches)
	}

	catalog = append(catalog,
		core.Operation{ID: "deals.bogus", Method: "DELETE", Path: "/deals/all"},
		core.Operation{ID: "deals.badQuery", Method: "GET", Path: "/deals", Query: []core.QueryParam{core.Q("nope")}},
	)
	mismatches, err = Verify(context.Background(), catalog, doc)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if len(mismatches) != 2 {
		t.Fatalf("mismatches: got %v", mismatches)
	}
	if mismatches[0].OpID != "deals.badQuery" || mismatches[1].OpID != "deals.bogus" {
		t.Errorf("mismatch order: %v", mismatches)
	}
}
