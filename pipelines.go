package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// PipelinesService covers the /pipelines endpoints.
type PipelinesService struct {
	client *Client
}

var opPipelinesList = register(core.Operation{
	ID:      "pipelines.list",
	Method:  http.MethodGet,
	Path:    "/pipelines",
	Summary: "Get all pipelines",
	Tags:    []string{"pipelines"},
})

// List returns all pipelines.
func (s *PipelinesService) List(ctx context.Context) (Result, error) {
	return s.client.inv.Invoke(ctx, opPipelinesList, core.Args{})
}

var opPipelinesGet = register(core.Operation{
	ID:         "pipelines.get",
	Method:     http.MethodGet,
	Path:       "/pipelines/{id}",
	Summary:    "Get details of a pipeline",
	Tags:       []string{"pipelines"},
	PathParams: []string{"id"},
	Query: []core.QueryParam{
		core.Q("totals_convert_currency"),
	},
})

// PipelineGetOptions adjusts how pipeline totals are reported.
type PipelineGetOptions struct {
	TotalsConvertCurrency *string
}

// Get returns one pipeline.
func (s *PipelinesService) Get(ctx context.Context, id int, opt *PipelineGetOptions) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if opt != nil {
		args.SetString("totals_convert_currency", opt.TotalsConvertCurrency)
	}
	return s.client.inv.Invoke(ctx, opPipelinesGet, args)
}

var opPipelinesAdd = register(core.Operation{
	ID:          "pipelines.add",
	Method:      http.MethodPost,
	Path:        "/pipelines",
	Summary:     "Add a new pipeline",
	Tags:        []string{"pipelines"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.FReq("name"),
		core.F("deal_probability"),
		core.F("order_nr"),
		core.F("active"),
	},
})

// PipelineCreate carries the fields for a new pipeline. Name is required.
type PipelineCreate struct {
	Name            string
	DealProbability *bool
	OrderNr         *int
	Active          *bool
}

// Add creates a pipeline.
func (s *PipelinesService) Add(ctx context.Context, pipeline *PipelineCreate) (Result, error) {
	args := core.Args{}
	if pipeline != nil {
		args.Set("name", pipeline.Name)
		args.SetBool("deal_probability", pipeline.DealProbability)
		args.SetInt("order_nr", pipeline.OrderNr)
		args.SetBool("active", pipeline.Active)
	}
	return s.client.inv.Invoke(ctx, opPipelinesAdd, args)
}

var opPipelinesUpdate = register(core.Operation{
	ID:          "pipelines.update",
	Method:      http.MethodPut,
	Path:        "/pipelines/{id}",
	Summary:     "Update a pipeline",
	Tags:        []string{"pipelines"},
	PathParams:  []string{"id"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.F("name"),
		core.F("deal_probability"),
		core.F("order_nr"),
		core.F("active"),
	},
})

// PipelineUpdate carries the editable fields of a pipeline.
type PipelineUpdate struct {
	Name            *string
	DealProbability *bool
	OrderNr         *int
	Active          *bool
}

// Update edits a pipeline.
func (s *PipelinesService) Update(ctx context.Context, id int, pipeline *PipelineUpdate) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if pipeline != nil {
		args.SetString("name", pipeline.Name)
		args.SetBool("deal_probability", pipeline.DealProbability)
		args.SetInt("order_nr", pipeline.OrderNr)
		args.SetBool("active", pipeline.Active)
	}
	return s.client.inv.Invoke(ctx, opPipelinesUpdate, args)
}

var opPipelinesDelete = register(core.Operation{
	ID:         "pipelines.delete",
	Method:     http.MethodDelete,
	Path:       "/pipelines/{id}",
	Summary:    "Delete a pipeline",
	Tags:       []string{"pipelines"},
	PathParams: []string{"id"},
})

// Delete removes a pipeline.
func (s *PipelinesService) Delete(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opPipelinesDelete, args)
}

var opPipelinesListDeals = register(core.Operation{
	ID:         "pipelines.listDeals",
	Method:     http.MethodGet,
	Path:       "/pipelines/{id}/deals",
	Summary:    "Get deals in a pipeline",
	Tags:       []string{"pipelines", "deals"},
	PathParams: []string{"id"},
	Query: []core.QueryParam{
		core.Q("filter_id"),
		core.Q("user_id"),
		core.Q("everyone"),
		core.Q("stage_id"),
		core.Q("start"),
		core.Q("limit"),
		core.Q("get_summary"),
	},
})

// PipelineDealsOptions filters the deals listed for a pipeline.
type PipelineDealsOptions struct {
	FilterID   *int
	UserID     *int
	Everyone   *bool
	StageID    *int
	Start      *int
	Limit      *int
	GetSummary *bool
}

// ListDeals returns the deals in a pipeline.
func (s *PipelinesService) ListDeals(ctx context.Context, id int, opt *PipelineDealsOptions) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if opt != nil {
		args.SetInt("filter_id", opt.FilterID)
		args.SetInt("user_id", opt.UserID)
		args.SetBool("everyone", opt.Everyone)
		args.SetInt("stage_id", opt.StageID)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
		args.SetBool("get_summary", opt.GetSummary)
	}
	return s.client.inv.Invoke(ctx, opPipelinesListDeals, args)
}
