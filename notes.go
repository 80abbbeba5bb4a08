package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// NotesService covers the /notes endpoints.
type NotesService struct {
	client *Client
}

var opNotesList = register(core.Operation{
	ID:      "notes.list",
	Method:  http.MethodGet,
	Path:    "/notes",
	Summary: "Get all notes",
	Tags:    []string{"notes"},
	Query: []core.QueryParam{
		core.Q("user_id"),
		core.Q("lead_id"),
		core.Q("deal_id"),
		core.Q("person_id"),
		core.Q("org_id"),
		core.Q("start"),
		core.Q("limit"),
		core.Q("sort"),
		core.Q("start_date"),
		core.Q("end_date"),
		core.Q("pinned_to_lead_flag"),
		core.Q("pinned_to_deal_flag"),
		core.Q("pinned_to_organization_flag"),
		core.Q("pinned_to_person_flag"),
	},
})

// NoteListOptions filters and pages the note list.
type NoteListOptions struct {
	UserID                   *int
	LeadID                   *string
	DealID                   *int
	PersonID                 *int
	OrgID                    *int
	Start                    *int
	Limit                    *int
	Sort                     *string
	StartDate                *string
	EndDate                  *string
	PinnedToLeadFlag         *bool
	PinnedToDealFlag         *bool
	PinnedToOrganizationFlag *bool
	PinnedToPersonFlag       *bool
}

// List returns all notes.
func (s *NotesService) List(ctx context.Context, opt *NoteListOptions) (Result, error) {
	args := core.Args{}
	if opt != nil {
		args.SetInt("user_id", opt.UserID)
		args.SetString("lead_id", opt.LeadID)
		args.SetInt("deal_id", opt.DealID)
		args.SetInt("person_id", opt.PersonID)
		args.SetInt("org_id", opt.OrgID)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
		args.SetString("sort", opt.Sort)
		args.SetString("start_date", opt.StartDate)
		args.SetString("end_date", opt.EndDate)
		args.SetBool("pinned_to_lead_flag", opt.PinnedToLeadFlag)
		args.SetBool("pinned_to_deal_flag", opt.PinnedToDealFlag)
		args.SetBool("pinned_to_organization_flag", opt.PinnedToOrganizationFlag)
		args.SetBool("pinned_to_person_flag", opt.PinnedToPersonFlag)
	}
	return s.client.inv.Invoke(ctx, opNotesList, args)
}

var opNotesGet = register(core.Operation{
	ID:         "notes.get",
	Method:     http.MethodGet,
	Path:       "/notes/{id}",
	Summary:    "Get one note",
	Tags:       []string{"notes"},
	PathParams: []string{"id"},
})

// Get returns one note.
func (s *NotesService) Get(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opNotesGet, args)
}

var opNotesAdd = register(core.Operation{
	ID:          "notes.add",
	Method:      http.MethodPost,
	Path:        "/notes",
	Summary:     "Add a note",
	Tags:        []string{"notes"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.FReq("content"),
		core.F("lead_id"),
		core.F("deal_id"),
		core.F("person_id"),
		core.F("org_id"),
		core.F("user_id"),
		core.F("add_time"),
		core.F("pinned_to_lead_flag"),
		core.F("pinned_to_deal_flag"),
		core.F("pinned_to_organization_flag"),
		core.F("pinned_to_person_flag"),
	},
})

// NoteCreate carries the fields for a new note. Content is required, and
// the note must be linked to at least one of lead, deal, person, or
// organization for the API to accept it.
type NoteCreate struct {
	Content                  string
	LeadID                   *string
	DealID                   *int
	PersonID                 *int
	OrgID                    *int
	UserID                   *int
	AddTime                  *string
	PinnedToLeadFlag         *bool
	PinnedToDealFlag         *bool
	PinnedToOrganizationFlag *bool
	PinnedToPersonFlag       *bool
}

func (n *NoteCreate) args() core.Args {
	args := core.Args{}
	if n == nil {
		return args
	}
	args.Set("content", n.Content)
	args.SetString("lead_id", n.LeadID)
	args.SetInt("deal_id", n.DealID)
	args.SetInt("person_id", n.PersonID)
	args.SetInt("org_id", n.OrgID)
	args.SetInt("user_id", n.UserID)
	args.SetString("add_time", n.AddTime)
	args.SetBool("pinned_to_lead_flag", n.PinnedToLeadFlag)
	args.SetBool("pinned_to_deal_flag", n.PinnedToDealFlag)
	args.SetBool("pinned_to_organization_flag", n.PinnedToOrganizationFlag)
	args.SetBool("pinned_to_person_flag", n.PinnedToPersonFlag)
	return args
}

// Add creates a note.
func (s *NotesService) Add(ctx context.Context, note *NoteCreate) (Result, error) {
	return s.client.inv.Invoke(ctx, opNotesAdd, note.args())
}

var opNotesUpdate = register(core.Operation{
	ID:          "notes.update",
	Method:      http.MethodPut,
	Path:        "/notes/{id}",
	Summary:     "Update a note",
	Tags:        []string{"notes"},
	PathParams:  []string{"id"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.F("content"),
		core.F("lead_id"),
		core.F("deal_id"),
		core.F("person_id"),
		core.F("org_id"),
		core.F("user_id"),
		core.F("pinned_to_lead_flag"),
		core.F("pinned_to_deal_flag"),
		core.F("pinned_to_organization_flag"),
		core.F("pinned_to_person_flag"),
	},
})

// NoteUpdate carries the editable fields of a note.
type NoteUpdate struct {
	Content                  *string
	LeadID                   *string
	DealID                   *int
	PersonID                 *int
	OrgID                    *int
	UserID                   *int
	PinnedToLeadFlag         *bool
	PinnedToDealFlag         *bool
	PinnedToOrganizationFlag *bool
	PinnedToPersonFlag       *bool
}

// Update edits a note.
func (s *NotesService) Update(ctx context.Context, id int, note *NoteUpdate) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if note != nil {
		args.SetString("content", note.Content)
		args.SetString("lead_id", note.LeadID)
		args.SetInt("deal_id", note.DealID)
		args.SetInt("person_id", note.PersonID)
		args.SetInt("org_id", note.OrgID)
		args.SetInt("user_id", note.UserID)
		args.SetBool("pinned_to_lead_flag", note.PinnedToLeadFlag)
		args.SetBool("pinned_to_deal_flag", note.PinnedToDealFlag)
		args.SetBool("pinned_to_organization_flag", note.PinnedToOrganizationFlag)
		args.SetBool("pinned_to_person_flag", note.PinnedToPersonFlag)
	}
	return s.client.inv.Invoke(ctx, opNotesUpdate, args)
}

var opNotesDelete = register(core.Operation{
	ID:         "notes.delete",
	Method:     http.MethodDelete,
	Path:       "/notes/{id}",
	Summary:    "Delete a note",
	Tags:       []string{"notes"},
	PathParams: []string{"id"},
})

// Delete removes a note.
func (s *NotesService) Delete(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opNotesDelete, args)
}
