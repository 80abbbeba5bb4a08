package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// LeadsService covers the /leads, /leadLabels, and /leadSources endpoints.
// Lead IDs are UUID strings, unlike the numeric IDs used elsewhere.
type LeadsService struct {
	client *Client
}

var opLeadsList = register(core.Operation{
	ID:      "leads.list",
	Method:  http.MethodGet,
	Path:    "/leads",
	Summary: "Get all leads",
	Tags:    []string{"leads"},
	Query: []core.QueryParam{
		core.Q("limit"),
		core.Q("start"),
		core.Q("archived_status"),
		core.Q("owner_id"),
		core.Q("person_id"),
		core.Q("organization_id"),
		core.Q("filter_id"),
		core.Q("sort"),
	},
})

// LeadListOptions filters and pages the lead list.
type LeadListOptions struct {
	Limit          *int
	Start          *int
	ArchivedStatus *string // archived, not_archived, all
	OwnerID        *int
	PersonID       *int
	OrganizationID *int
	FilterID       *int
	Sort           *string
}

// List returns all leads.
func (s *LeadsService) List(ctx context.Context, opt *LeadListOptions) (Result, error) {
	args := core.Args{}
	if opt != nil {
		args.SetInt("limit", opt.Limit)
		args.SetInt("start", opt.Start)
		args.SetString("archived_status", opt.ArchivedStatus)
		args.SetInt("owner_id", opt.OwnerID)
		args.SetInt("person_id", opt.PersonID)
		args.SetInt("organization_id", opt.OrganizationID)
		args.SetInt("filter_id", opt.FilterID)
		args.SetString("sort", opt.Sort)
	}
	return s.client.inv.Invoke(ctx, opLeadsList, args)
}

var opLeadsGet = register(core.Operation{
	ID:         "leads.get",
	Method:     http.MethodGet,
	Path:       "/leads/{id}",
	Summary:    "Get details of a lead",
	Tags:       []string{"leads"},
	PathParams: []string{"id"},
})

// Get returns one lead.
func (s *LeadsService) Get(ctx context.Context, id string) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opLeadsGet, args)
}

var opLeadsAdd = register(core.Operation{
	ID:          "leads.add",
	Method:      http.MethodPost,
	Path:        "/leads",
	Summary:     "Add a lead",
	Tags:        []string{"leads"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.FReq("title"),
		core.F("owner_id"),
		core.F("label_ids"),
		core.F("person_id"),
		core.F("organization_id"),
		core.F("value"),
		core.F("expected_close_date"),
		core.F("visible_to"),
		core.F("was_seen"),
	},
})

// LeadValue is the monetary value of a lead.
type LeadValue struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// LeadCreate carries the fields for a new lead. Title is required, and at
// least one of PersonID or OrganizationID must be set for the API to accept
// the lead.
type LeadCreate struct {
	Title             string
	OwnerID           *int
	LabelIDs          []string
	PersonID          *int
	OrganizationID    *int
	Value             *LeadValue
	ExpectedCloseDate *string
	VisibleTo         *int
	WasSeen           *bool
}

func (l *LeadCreate) args() core.Args {
	args := core.Args{}
	if l == nil {
		return args
	}
	args.Set("title", l.Title)
	args.SetInt("owner_id", l.OwnerID)
	args.SetStrings("label_ids", l.LabelIDs)
	args.SetInt("person_id", l.PersonID)
	args.SetInt("organization_id", l.OrganizationID)
	if l.Value != nil {
		args.Set("value", map[string]any{"amount": l.Value.Amount, "currency": l.Value.Currency})
	}
	args.SetString("expected_close_date", l.ExpectedCloseDate)
	args.SetInt("visible_to", l.VisibleTo)
	args.SetBool("was_seen", l.WasSeen)
	return args
}

// Add creates a lead.
func (s *LeadsService) Add(ctx context.Context, lead *LeadCreate) (Result, error) {
	return s.client.inv.Invoke(ctx, opLeadsAdd, lead.args())
}

var opLeadsUpdate = register(core.Operation{
	ID:          "leads.update",
	Method:      http.MethodPatch,
	Path:        "/leads/{id}",
	Summary:     "Update a lead",
	Tags:        []string{"leads"},
	PathParams:  []string{"id"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.F("title"),
		core.F("owner_id"),
		core.F("label_ids"),
		core.F("person_id"),
		core.F("organization_id"),
		core.F("value"),
		core.F("expected_close_date"),
		core.F("visible_to"),
		core.F("was_seen"),
		core.F("is_archived"),
	},
})

// LeadUpdate carries the editable fields of a lead.
type LeadUpdate struct {
	Title             *string
	OwnerID           *int
	LabelIDs          []string
	PersonID          *int
	OrganizationID    *int
	Value             *LeadValue
	ExpectedCloseDate *string
	VisibleTo         *int
	WasSeen           *bool
	IsArchived        *bool
}

// Update edits a lead. Leads use PATCH semantics: omitted fields keep their
// current values.
func (s *LeadsService) Update(ctx context.Context, id string, lead *LeadUpdate) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if lead != nil {
		args.SetString("title", lead.Title)
		args.SetInt("owner_id", lead.OwnerID)
		args.SetStrings("label_ids", lead.LabelIDs)
		args.SetInt("person_id", lead.PersonID)
		args.SetInt("organization_id", lead.OrganizationID)
		if lead.Value != nil {
			args.Set("value", map[string]any{"amount": lead.Value.Amount, "currency": lead.Value.Currency})
		}
		args.SetString("expected_close_date", lead.ExpectedCloseDate)
		args.SetInt("visible_to", lead.VisibleTo)
		args.SetBool("was_seen", lead.WasSeen)
		args.SetBool("is_archived", lead.IsArchived)
	}
	return s.client.inv.Invoke(ctx, opLeadsUpdate, args)
}

var opLeadsDelete = register(core.Operation{
	ID:         "leads.delete",
	Method:     http.MethodDelete,
	Path:       "/leads/{id}",
	Summary:    "Delete a lead",
	Tags:       []string{"leads"},
	PathParams: []string{"id"},
})

// Delete removes a lead.
func (s *LeadsService) Delete(ctx context.Context, id string) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opLeadsDelete, args)
}

var opLeadLabelsList = register(core.Operation{
	ID:      "leads.listLabels",
	Method:  http.MethodGet,
	Path:    "/leadLabels",
	Summary: "Get all lead labels",
	Tags:    []string{"leads"},
})

// ListLabels returns all lead labels.
func (s *LeadsService) ListLabels(ctx context.Context) (Result, error) {
	return s.client.inv.Invoke(ctx, opLeadLabelsList, core.Args{})
}

var opLeadSourcesList = register(core.Operation{
	ID:      "leads.listSources",
	Method:  http.MethodGet,
	Path:    "/leadSources",
	Summary: "Get all lead sources",
	Tags:    []string{"leads"},
})

// ListSources returns all lead sources.
func (s *LeadsService) ListSources(ctx context.Context) (Result, error) {
	return s.client.inv.Invoke(ctx, opLeadSourcesList, core.Args{})
}
