package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// SearchService covers the cross-item /itemSearch endpoints.
type SearchService struct {
	client *Client
}

var opItemSearch = register(core.Operation{
	ID:      "itemSearch.search",
	Method:  http.MethodGet,
	Path:    "/itemSearch",
	Summary: "Perform a search from multiple item types",
	Tags:    []string{"search"},
	Query: []core.QueryParam{
		core.Q("term"),
		core.Q("item_types"),
		core.Q("fields"),
		core.Q("search_for_related_items"),
		core.Q("exact_match"),
		core.Q("include_fields"),
		core.Q("start"),
		core.Q("limit"),
	},
})

// ItemSearchOptions narrows a cross-item search.
type ItemSearchOptions struct {
	ItemTypes             []string // deal, person, organization, product, lead, file, mail_attachment
	Fields                *string
	SearchForRelatedItems *bool
	ExactMatch            *bool
	IncludeFields         *string
	Start                 *int
	Limit                 *int
}

// Items searches across item types by term.
func (s *SearchService) Items(ctx context.Context, term string, opt *ItemSearchOptions) (Result, error) {
	args := core.Args{}
	args.Set("term", term)
	if opt != nil {
		args.SetStrings("item_types", opt.ItemTypes)
		args.SetString("fields", opt.Fields)
		args.SetBool("search_for_related_items", opt.SearchForRelatedItems)
		args.SetBool("exact_match", opt.ExactMatch)
		args.SetString("include_fields", opt.IncludeFields)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
	}
	return s.client.inv.Invoke(ctx, opItemSearch, args)
}

var opItemSearchField = register(core.Operation{
	ID:      "itemSearch.field",
	Method:  http.MethodGet,
	Path:    "/itemSearch/field",
	Summary: "Perform a search using a specific field",
	Tags:    []string{"search"},
	Query: []core.QueryParam{
		core.Q("term"),
		core.Q("field_type"),
		core.Q("field_key"),
		core.Q("exact_match"),
		core.Q("return_item_ids"),
		core.Q("start"),
		core.Q("limit"),
	},
})

// FieldSearchOptions narrows a single-field search.
type FieldSearchOptions struct {
	ExactMatch    *bool
	ReturnItemIDs *bool
	Start         *int
	Limit         *int
}

// Field searches the values of one field. fieldType names the entity field
// set (dealField, personField, ...) and fieldKey the field inside it.
func (s *SearchService) Field(ctx context.Context, term, fieldType, fieldKey string, opt *FieldSearchOptions) (Result, error) {
	args := core.Args{}
	args.Set("term", term)
	args.Set("field_type", fieldType)
	args.Set("field_key", fieldKey)
	if opt != nil {
		args.SetBool("exact_match", opt.ExactMatch)
		args.SetBool("return_item_ids", opt.ReturnItemIDs)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
	}
	return s.client.inv.Invoke(ctx, opItemSearchField, args)
}

var opRecents = register(core.Operation{
	ID:      "recents.list",
	Method:  http.MethodGet,
	Path:    "/recents",
	Summary: "Get recently changed items",
	Tags:    []string{"search"},
	Query: []core.QueryParam{
		core.Q("since_timestamp"),
		core.Q("items"),
		core.Q("start"),
		core.Q("limit"),
	},
})

// RecentsOptions filters the recent-changes feed.
type RecentsOptions struct {
	Items *string
	Start *int
	Limit *int
}

// Recents returns items changed since the given UTC timestamp
// (YYYY-MM-DD HH:MM:SS).
func (s *SearchService) Recents(ctx context.Context, sinceTimestamp string, opt *RecentsOptions) (Result, error) {
	args := core.Args{}
	args.Set("since_timestamp", sinceTimestamp)
	if opt != nil {
		args.SetString("items", opt.Items)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
	}
	return s.client.inv.Invoke(ctx, opRecents, args)
}
