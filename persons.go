package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// PersonsService covers the /persons endpoints.
type PersonsService struct {
	client *Client
}

var opPersonsList = register(core.Operation{
	ID:      "persons.list",
	Method:  http.MethodGet,
	Path:    "/persons",
	Summary: "Get all persons",
	Tags:    []string{"persons"},
	Query: []core.QueryParam{
		core.Q("user_id"),
		core.Q("filter_id"),
		core.Q("first_char"),
		core.Q("start"),
		core.Q("limit"),
		core.Q("sort"),
	},
})

// PersonListOptions filters and pages the person list.
type PersonListOptions struct {
	UserID    *int
	FilterID  *int
	FirstChar *string
	Start     *int
	Limit     *int
	Sort      *string
}

// List returns all persons.
func (s *PersonsService) List(ctx context.Context, opt *PersonListOptions) (Result, error) {
	args := core.Args{}
	if opt != nil {
		args.SetInt("user_id", opt.UserID)
		args.SetInt("filter_id", opt.FilterID)
		args.SetString("first_char", opt.FirstChar)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
		args.SetString("sort", opt.Sort)
	}
	return s.client.inv.Invoke(ctx, opPersonsList, args)
}

var opPersonsGet = register(core.Operation{
	ID:         "persons.get",
	Method:     http.MethodGet,
	Path:       "/persons/{id}",
	Summary:    "Get details of a person",
	Tags:       []string{"persons"},
	PathParams: []string{"id"},
})

// Get returns one person.
func (s *PersonsService) Get(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opPersonsGet, args)
}

var opPersonsAdd = register(core.Operation{
	ID:          "persons.add",
	Method:      http.MethodPost,
	Path:        "/persons",
	Summary:     "Add a person",
	Tags:        []string{"persons"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.FReq("name"),
		core.F("owner_id"),
		core.F("org_id"),
		core.F("email"),
		core.F("phone"),
		core.F("label"),
		core.F("visible_to"),
		core.F("marketing_status"),
		core.F("add_time"),
	},
})

// PersonCreate carries the fields for a new person. Name is required.
type PersonCreate struct {
	Name            string
	OwnerID         *int
	OrgID           *int
	Email           []string
	Phone           []string
	Label           *int
	VisibleTo       *int
	MarketingStatus *string
	AddTime         *string
}

func (p *PersonCreate) args() core.Args {
	args := core.Args{}
	if p == nil {
		return args
	}
	args.Set("name", p.Name)
	args.SetInt("owner_id", p.OwnerID)
	args.SetInt("org_id", p.OrgID)
	args.SetStrings("email", p.Email)
	args.SetStrings("phone", p.Phone)
	args.SetInt("label", p.Label)
	args.SetInt("visible_to", p.VisibleTo)
	args.SetString("marketing_status", p.MarketingStatus)
	args.SetString("add_time", p.AddTime)
	return args
}

// Add creates a person.
func (s *PersonsService) Add(ctx context.Context, person *PersonCreate) (Result, error) {
	return s.client.inv.Invoke(ctx, opPersonsAdd, person.args())
}

var opPersonsUpdate = register(core.Operation{
	ID:          "persons.update",
	Method:      http.MethodPut,
	Path:        "/persons/{id}",
	Summary:     "Update a person",
	Tags:        []string{"persons"},
	PathParams:  []string{"id"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.F("name"),
		core.F("owner_id"),
		core.F("org_id"),
		core.F("email"),
		core.F("phone"),
		core.F("label"),
		core.F("visible_to"),
		core.F("marketing_status"),
	},
})

// PersonUpdate carries the editable fields of a person.
type PersonUpdate struct {
	Name            *string
	OwnerID         *int
	OrgID           *int
	Email           []string
	Phone           []string
	Label           *int
	VisibleTo       *int
	MarketingStatus *string
}

// Update edits a person.
func (s *PersonsService) Update(ctx context.Context, id int, person *PersonUpdate) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if person != nil {
		args.SetString("name", person.Name)
		args.SetInt("owner_id", person.OwnerID)
		args.SetInt("org_id", person.OrgID)
		args.SetStrings("email", person.Email)
		args.SetStrings("phone", person.Phone)
		args.SetInt("label", person.Label)
		args.SetInt("visible_to", person.VisibleTo)
		args.SetString("marketing_status", person.MarketingStatus)
	}
	return s.client.inv.Invoke(ctx, opPersonsUpdate, args)
}

var opPersonsDelete = register(core.Operation{
	ID:         "persons.delete",
	Method:     http.MethodDelete,
	Path:       "/persons/{id}",
	Summary:    "Delete a person",
	Tags:       []string{"persons"},
	PathParams: []string{"id"},
})

// Delete marks a person as deleted.
func (s *PersonsService) Delete(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opPersonsDelete, args)
}

var opPersonsSearch = register(core.Operation{
	ID:      "persons.search",
	Method:  http.MethodGet,
	Path:    "/persons/search",
	Summary: "Search persons",
	Tags:    []string{"persons", "search"},
	Query: []core.QueryParam{
		core.Q("term"),
		core.Q("fields"),
		core.Q("exact_match"),
		core.Q("organization_id"),
		core.Q("include_fields"),
		core.Q("start"),
		core.Q("limit"),
	},
})

// PersonSearchOptions narrows a person search.
type PersonSearchOptions struct {
	Fields         *string
	ExactMatch     *bool
	OrganizationID *int
	IncludeFields  *string
	Start          *int
	Limit          *int
}

// Search finds persons by term.
func (s *PersonsService) Search(ctx context.Context, term string, opt *PersonSearchOptions) (Result, error) {
	args := core.Args{}
	args.Set("term", term)
	if opt != nil {
		args.SetString("fields", opt.Fields)
		args.SetBool("exact_match", opt.ExactMatch)
		args.SetInt("organization_id", opt.OrganizationID)
		args.SetString("include_fields", opt.IncludeFields)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
	}
	return s.client.inv.Invoke(ctx, opPersonsSearch, args)
}

var opPersonsListDeals = register(core.Operation{
	ID:         "persons.listDeals",
	Method:     http.MethodGet,
	Path:       "/persons/{id}/deals",
	Summary:    "List deals associated with a person",
	Tags:       []string{"persons", "deals"},
	PathParams: []string{"id"},
	Query: []core.QueryParam{
		core.Q("start"),
		core.Q("limit"),
		core.Q("status"),
		core.Q("sort"),
	},
})

// PersonDealsOptions pages and filters a person's deals.
type PersonDealsOptions struct {
	Start  *int
	Limit  *int
	Status *string
	Sort   *string
}

// ListDeals returns the deals associated with a person.
func (s *PersonsService) ListDeals(ctx context.Context, id int, opt *PersonDealsOptions) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if opt != nil {
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
		args.SetString("status", opt.Status)
		args.SetString("sort", opt.Sort)
	}
	return s.client.inv.Invoke(ctx, opPersonsListDeals, args)
}
