package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// OrganizationsService covers the /organizations endpoints.
type OrganizationsService struct {
	client *Client
}

var opOrgsList = register(core.Operation{
	ID:      "organizations.list",
	Method:  http.MethodGet,
	Path:    "/organizations",
	Summary: "Get all organizations",
	Tags:    []string{"organizations"},
	Query: []core.QueryParam{
		core.Q("user_id"),
		core.Q("filter_id"),
		core.Q("first_char"),
		core.Q("start"),
		core.Q("limit"),
		core.Q("sort"),
	},
})

// OrganizationListOptions filters and pages the organization list.
type OrganizationListOptions struct {
	UserID    *int
	FilterID  *int
	FirstChar *string
	Start     *int
	Limit     *int
	Sort      *string
}

// List returns all organizations.
func (s *OrganizationsService) List(ctx context.Context, opt *OrganizationListOptions) (Result, error) {
	args := core.Args{}
	if opt != nil {
		args.SetInt("user_id", opt.UserID)
		args.SetInt("filter_id", opt.FilterID)
		args.SetString("first_char", opt.FirstChar)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
		args.SetString("sort", opt.Sort)
	}
	return s.client.inv.Invoke(ctx, opOrgsList, args)
}

var opOrgsGet = register(core.Operation{
	ID:         "organizations.get",
	Method:     http.MethodGet,
	Path:       "/organizations/{id}",
	Summary:    "Get details of an organization",
	Tags:       []string{"organizations"},
	PathParams: []string{"id"},
})

// Get returns one organization.
func (s *OrganizationsService) Get(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opOrgsGet, args)
}

var opOrgsAdd = register(core.Operation{
	ID:          "organizations.add",
	Method:      http.MethodPost,
	Path:        "/organizations",
	Summary:     "Add an organization",
	Tags:        []string{"organizations"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.FReq("name"),
		core.F("owner_id"),
		core.F("label"),
		core.F("visible_to"),
		core.F("add_time"),
	},
})

// OrganizationCreate carries the fields for a new organization. Name is
// required.
type OrganizationCreate struct {
	Name      string
	OwnerID   *int
	Label     *int
	VisibleTo *int
	AddTime   *string
}

// Add creates an organization.
func (s *OrganizationsService) Add(ctx context.Context, org *OrganizationCreate) (Result, error) {
	args := core.Args{}
	if org != nil {
		args.Set("name", org.Name)
		args.SetInt("owner_id", org.OwnerID)
		args.SetInt("label", org.Label)
		args.SetInt("visible_to", org.VisibleTo)
		args.SetString("add_time", org.AddTime)
	}
	return s.client.inv.Invoke(ctx, opOrgsAdd, args)
}

var opOrgsUpdate = register(core.Operation{
	ID:          "organizations.update",
	Method:      http.MethodPut,
	Path:        "/organizations/{id}",
	Summary:     "Update an organization",
	Tags:        []string{"organizations"},
	PathParams:  []string{"id"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.F("name"),
		core.F("owner_id"),
		core.F("label"),
		core.F("visible_to"),
	},
})

// OrganizationUpdate carries the editable fields of an organization.
type OrganizationUpdate struct {
	Name      *string
	OwnerID   *int
	Label     *int
	VisibleTo *int
}

// Update edits an organization.
func (s *OrganizationsService) Update(ctx context.Context, id int, org *OrganizationUpdate) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if org != nil {
		args.SetString("name", org.Name)
		args.SetInt("owner_id", org.OwnerID)
		args.SetInt("label", org.Label)
		args.SetInt("visible_to", org.VisibleTo)
	}
	return s.client.inv.Invoke(ctx, opOrgsUpdate, args)
}

var opOrgsDelete = register(core.Operation{
	ID:         "organizations.delete",
	Method:     http.MethodDelete,
	Path:       "/organizations/{id}",
	Summary:    "Delete an organization",
	Tags:       []string{"organizations"},
	PathParams: []string{"id"},
})

// Delete marks an organization as deleted.
func (s *OrganizationsService) Delete(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opOrgsDelete, args)
}

var opOrgsSearch = register(core.Operation{
	ID:      "organizations.search",
	Method:  http.MethodGet,
	Path:    "/organizations/search",
	Summary: "Search organizations",
	Tags:    []string{"organizations", "search"},
	Query: []core.QueryParam{
		core.Q("term"),
		core.Q("fields"),
		core.Q("exact_match"),
		core.Q("start"),
		core.Q("limit"),
	},
})

// OrganizationSearchOptions narrows an organization search.
type OrganizationSearchOptions struct {
	Fields     *string
	ExactMatch *bool
	Start      *int
	Limit      *int
}

// Search finds organizations by term.
func (s *OrganizationsService) Search(ctx context.Context, term string, opt *OrganizationSearchOptions) (Result, error) {
	args := core.Args{}
	args.Set("term", term)
	if opt != nil {
		args.SetString("fields", opt.Fields)
		args.SetBool("exact_match", opt.ExactMatch)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
	}
	return s.client.inv.Invoke(ctx, opOrgsSearch, args)
}

var opOrgsListPersons = register(core.Operation{
	ID:         "organizations.listPersons",
	Method:     http.MethodGet,
	Path:       "/organizations/{id}/persons",
	Summary:    "List persons of an organization",
	Tags:       []string{"organizations", "persons"},
	PathParams: []string{"id"},
	Query: []core.QueryParam{
		core.Q("start"),
		core.Q("limit"),
	},
})

// ListPersons returns the persons belonging to an organization.
func (s *OrganizationsService) ListPersons(ctx context.Context, id int, page *PageOptions) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	page.apply(args)
	return s.client.inv.Invoke(ctx, opOrgsListPersons, args)
}
