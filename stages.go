package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// StagesService covers the /stages endpoints.
type StagesService struct {
	client *Client
}

var opStagesList = register(core.Operation{
	ID:      "stages.list",
	Method:  http.MethodGet,
	Path:    "/stages",
	Summary: "Get all stages",
	Tags:    []string{"stages"},
	Query: []core.QueryParam{
		core.Q("pipeline_id"),
	},
})

// StageListOptions restricts the stage list to one pipeline.
type StageListOptions struct {
	PipelineID *int
}

// List returns all stages, optionally for a single pipeline.
func (s *StagesService) List(ctx context.Context, opt *StageListOptions) (Result, error) {
	args := core.Args{}
	if opt != nil {
		args.SetInt("pipeline_id", opt.PipelineID)
	}
	return s.client.inv.Invoke(ctx, opStagesList, args)
}

var opStagesGet = register(core.Operation{
	ID:         "stages.get",
	Method:     http.MethodGet,
	Path:       "/stages/{id}",
	Summary:    "Get one stage",
	Tags:       []string{"stages"},
	PathParams: []string{"id"},
})

// Get returns one stage.
func (s *StagesService) Get(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opStagesGet, args)
}

var opStagesAdd = register(core.Operation{
	ID:          "stages.add",
	Method:      http.MethodPost,
	Path:        "/stages",
	Summary:     "Add a new stage",
	Tags:        []string{"stages"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.FReq("name"),
		core.FReq("pipeline_id"),
		core.F("deal_probability"),
		core.F("rotten_flag"),
		core.F("rotten_days"),
		core.F("order_nr"),
	},
})

// StageCreate carries the fields for a new stage. Name and PipelineID are
// required.
type StageCreate struct {
	Name            string
	PipelineID      int
	DealProbability *int
	RottenFlag      *bool
	RottenDays      *int
	OrderNr         *int
}

// Add creates a stage.
func (s *StagesService) Add(ctx context.Context, stage *StageCreate) (Result, error) {
	args := core.Args{}
	if stage != nil {
		args.Set("name", stage.Name)
		args.Set("pipeline_id", stage.PipelineID)
		args.SetInt("deal_probability", stage.DealProbability)
		args.SetBool("rotten_flag", stage.RottenFlag)
		args.SetInt("rotten_days", stage.RottenDays)
		args.SetInt("order_nr", stage.OrderNr)
	}
	return s.client.inv.Invoke(ctx, opStagesAdd, args)
}

var opStagesUpdate = register(core.Operation{
	ID:          "stages.update",
	Method:      http.MethodPut,
	Path:        "/stages/{id}",
	Summary:     "Update stage details",
	Tags:        []string{"stages"},
	PathParams:  []string{"id"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.F("name"),
		core.F("pipeline_id"),
		core.F("deal_probability"),
		core.F("rotten_flag"),
		core.F("rotten_days"),
		core.F("order_nr"),
	},
})

// StageUpdate carries the editable fields of a stage.
type StageUpdate struct {
	Name            *string
	PipelineID      *int
	DealProbability *int
	RottenFlag      *bool
	RottenDays      *int
	OrderNr         *int
}

// Update edits a stage.
func (s *StagesService) Update(ctx context.Context, id int, stage *StageUpdate) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if stage != nil {
		args.SetString("name", stage.Name)
		args.SetInt("pipeline_id", stage.PipelineID)
		args.SetInt("deal_probability", stage.DealProbability)
		args.SetBool("rotten_flag", stage.RottenFlag)
		args.SetInt("rotten_days", stage.RottenDays)
		args.SetInt("order_nr", stage.OrderNr)
	}
	return s.client.inv.Invoke(ctx, opStagesUpdate, args)
}

var opStagesDelete = register(core.Operation{
	ID:         "stages.delete",
	Method:     http.MethodDelete,
	Path:       "/stages/{id}",
	Summary:    "Delete a stage",
	Tags:       []string{"stages"},
	PathParams: []string{"id"},
})

// Delete removes a stage.
func (s *StagesService) Delete(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opStagesDelete, args)
}

var opStagesListDeals = register(core.Operation{
	ID:         "stages.listDeals",
	Method:     http.MethodGet,
	Path:       "/stages/{id}/deals",
	Summary:    "Get deals in a stage",
	Tags:       []string{"stages", "deals"},
	PathParams: []string{"id"},
	Query: []core.QueryParam{
		core.Q("filter_id"),
		core.Q("user_id"),
		core.Q("everyone"),
		core.Q("start"),
		core.Q("limit"),
	},
})

// StageDealsOptions filters the deals listed for a stage.
type StageDealsOptions struct {
	FilterID *int
	UserID   *int
	Everyone *bool
	Start    *int
	Limit    *int
}

// ListDeals returns the deals in a stage.
func (s *StagesService) ListDeals(ctx context.Context, id int, opt *StageDealsOptions) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if opt != nil {
		args.SetInt("filter_id", opt.FilterID)
		args.SetInt("user_id", opt.UserID)
		args.SetBool("everyone", opt.Everyone)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
	}
	return s.client.inv.Invoke(ctx, opStagesListDeals, args)
}
