package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// ActivitiesService covers the /activities endpoints.
type ActivitiesService struct {
	client *Client
}

var opActivitiesList = register(core.Operation{
	ID:      "activities.list",
	Method:  http.MethodGet,
	Path:    "/activities",
	Summary: "Get all activities assigned to a particular user",
	Tags:    []string{"activities"},
	Query: []core.QueryParam{
		core.Q("user_id"),
		core.Q("filter_id"),
		core.Q("type"),
		core.Q("limit"),
		core.Q("start"),
		core.Q("start_date"),
		core.Q("end_date"),
		core.Q("done"),
	},
})

// ActivityListOptions filters and pages the activity list.
type ActivityListOptions struct {
	UserID    *int
	FilterID  *int
	Type      *string
	Limit     *int
	Start     *int
	StartDate *string // YYYY-MM-DD
	EndDate   *string // YYYY-MM-DD
	Done      *bool
}

// List returns activities assigned to the authorized user.
func (s *ActivitiesService) List(ctx context.Context, opt *ActivityListOptions) (Result, error) {
	args := core.Args{}
	if opt != nil {
		args.SetInt("user_id", opt.UserID)
		args.SetInt("filter_id", opt.FilterID)
		args.SetString("type", opt.Type)
		args.SetInt("limit", opt.Limit)
		args.SetInt("start", opt.Start)
		args.SetString("start_date", opt.StartDate)
		args.SetString("end_date", opt.EndDate)
		args.SetBool("done", opt.Done)
	}
	return s.client.inv.Invoke(ctx, opActivitiesList, args)
}

var opActivitiesGet = register(core.Operation{
	ID:         "activities.get",
	Method:     http.MethodGet,
	Path:       "/activities/{id}",
	Summary:    "Get details of an activity",
	Tags:       []string{"activities"},
	PathParams: []string{"id"},
})

// Get returns one activity.
func (s *ActivitiesService) Get(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opActivitiesGet, args)
}

var opActivitiesAdd = register(core.Operation{
	ID:          "activities.add",
	Method:      http.MethodPost,
	Path:        "/activities",
	Summary:     "Add an activity",
	Tags:        []string{"activities"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.F("due_date"),
		core.F("due_time"),
		core.F("duration"),
		core.F("deal_id"),
		core.F("lead_id"),
		core.F("person_id"),
		core.F("org_id"),
		core.F("note"),
		core.F("subject"),
		core.F("type"),
		core.F("user_id"),
		core.F("participants"),
		core.F("busy_flag"),
		core.F("done"),
	},
})

// ActivityCreate carries the fields for a new activity. All fields are
// optional; Pipedrive fills defaults for omitted ones.
type ActivityCreate struct {
	DueDate      *string
	DueTime      *string
	Duration     *string
	DealID       *int
	LeadID       *string
	PersonID     *int
	OrgID        *int
	Note         *string
	Subject      *string
	Type         *string
	UserID       *int
	Participants any
	BusyFlag     *bool
	Done         *bool
}

func (a *ActivityCreate) args() core.Args {
	args := core.Args{}
	if a == nil {
		return args
	}
	args.SetString("due_date", a.DueDate)
	args.SetString("due_time", a.DueTime)
	args.SetString("duration", a.Duration)
	args.SetInt("deal_id", a.DealID)
	args.SetString("lead_id", a.LeadID)
	args.SetInt("person_id", a.PersonID)
	args.SetInt("org_id", a.OrgID)
	args.SetString("note", a.Note)
	args.SetString("subject", a.Subject)
	args.SetString("type", a.Type)
	args.SetInt("user_id", a.UserID)
	args.SetAny("participants", a.Participants)
	args.SetBool("busy_flag", a.BusyFlag)
	args.SetBool("done", a.Done)
	return args
}

// Add creates an activity.
func (s *ActivitiesService) Add(ctx context.Context, activity *ActivityCreate) (Result, error) {
	return s.client.inv.Invoke(ctx, opActivitiesAdd, activity.args())
}

var opActivitiesUpdate = register(core.Operation{
	ID:          "activities.update",
	Method:      http.MethodPut,
	Path:        "/activities/{id}",
	Summary:     "Update an activity",
	Tags:        []string{"activities"},
	PathParams:  []string{"id"},
	ContentType: core.ContentJSON,
	Body:        opActivitiesAdd.Body,
})

// Update edits an activity. Only non-nil fields are sent.
func (s *ActivitiesService) Update(ctx context.Context, id int, activity *ActivityCreate) (Result, error) {
	args := activity.args()
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opActivitiesUpdate, args)
}

var opActivitiesDelete = register(core.Operation{
	ID:         "activities.delete",
	Method:     http.MethodDelete,
	Path:       "/activities/{id}",
	Summary:    "Delete an activity",
	Tags:       []string{"activities"},
	PathParams: []string{"id"},
})

// Delete marks an activity as deleted.
func (s *ActivitiesService) Delete(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opActivitiesDelete, args)
}

var opActivitiesDeleteBulk = register(core.Operation{
	ID:      "activities.deleteBulk",
	Method:  http.MethodDelete,
	Path:    "/activities",
	Summary: "Delete multiple activities in bulk",
	Tags:    []string{"activities"},
	Query:   []core.QueryParam{core.Q("ids")},
})

// DeleteBulk marks multiple activities as deleted.
func (s *ActivitiesService) DeleteBulk(ctx context.Context, ids []int) (Result, error) {
	args := core.Args{}
	args.SetInts("ids", ids)
	return s.client.inv.Invoke(ctx, opActivitiesDeleteBulk, args)
}
