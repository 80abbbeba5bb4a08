package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// DealsService covers the /deals endpoints.
type DealsService struct {
	client *Client
}

var opDealsList = register(core.Operation{
	ID:      "deals.list",
	Method:  http.MethodGet,
	Path:    "/deals",
	Summary: "Get all deals",
	Tags:    []string{"deals"},
	Query: []core.QueryParam{
		core.Q("user_id"),
		core.Q("filter_id"),
		core.Q("stage_id"),
		core.Q("status"),
		core.Q("start"),
		core.Q("limit"),
		core.Q("sort"),
		core.Q("owned_by_you"),
	},
})

// DealListOptions filters and pages the deal list.
type DealListOptions struct {
	UserID     *int
	FilterID   *int
	StageID    *int
	Status     *string // open, won, lost, deleted, all_not_deleted
	Start      *int
	Limit      *int
	Sort       *string
	OwnedByYou *bool
}

// List returns all deals visible to the authorized user.
func (s *DealsService) List(ctx context.Context, opt *DealListOptions) (Result, error) {
	args := core.Args{}
	if opt != nil {
		args.SetInt("user_id", opt.UserID)
		args.SetInt("filter_id", opt.FilterID)
		args.SetInt("stage_id", opt.StageID)
		args.SetString("status", opt.Status)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
		args.SetString("sort", opt.Sort)
		args.SetBool("owned_by_you", opt.OwnedByYou)
	}
	return s.client.inv.Invoke(ctx, opDealsList, args)
}

var opDealsGet = register(core.Operation{
	ID:         "deals.get",
	Method:     http.MethodGet,
	Path:       "/deals/{id}",
	Summary:    "Get details of a deal",
	Tags:       []string{"deals"},
	PathParams: []string{"id"},
})

// Get returns one deal.
func (s *DealsService) Get(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opDealsGet, args)
}

var dealBodyFields = []core.BodyField{
	core.F("title"),
	core.F("value"),
	core.F("currency"),
	core.F("user_id"),
	core.F("person_id"),
	core.F("org_id"),
	core.F("pipeline_id"),
	core.F("stage_id"),
	core.F("status"),
	core.F("expected_close_date"),
	core.F("probability"),
	core.F("lost_reason"),
	core.F("visible_to"),
	core.F("add_time"),
}

var opDealsAdd = register(core.Operation{
	ID:          "deals.add",
	Method:      http.MethodPost,
	Path:        "/deals",
	Summary:     "Add a deal",
	Tags:        []string{"deals"},
	ContentType: core.ContentJSON,
	Body: append([]core.BodyField{
		core.FReq("title"),
	}, dealBodyFields[1:]...),
})

// DealCreate carries the fields for a new deal. Title is required.
type DealCreate struct {
	Title             string
	Value             *float64
	Currency          *string
	UserID            *int
	PersonID          *int
	OrgID             *int
	PipelineID        *int
	StageID           *int
	Status            *string
	ExpectedCloseDate *string
	Probability       *float64
	LostReason        *string
	VisibleTo         *int
	AddTime           *string
}

func (d *DealCreate) args() core.Args {
	args := core.Args{}
	if d == nil {
		return args
	}
	args.Set("title", d.Title)
	args.SetFloat("value", d.Value)
	args.SetString("currency", d.Currency)
	args.SetInt("user_id", d.UserID)
	args.SetInt("person_id", d.PersonID)
	args.SetInt("org_id", d.OrgID)
	args.SetInt("pipeline_id", d.PipelineID)
	args.SetInt("stage_id", d.StageID)
	args.SetString("status", d.Status)
	args.SetString("expected_close_date", d.ExpectedCloseDate)
	args.SetFloat("probability", d.Probability)
	args.SetString("lost_reason", d.LostReason)
	args.SetInt("visible_to", d.VisibleTo)
	args.SetString("add_time", d.AddTime)
	return args
}

// Add creates a deal.
func (s *DealsService) Add(ctx context.Context, deal *DealCreate) (Result, error) {
	return s.client.inv.Invoke(ctx, opDealsAdd, deal.args())
}

var opDealsUpdate = register(core.Operation{
	ID:          "deals.update",
	Method:      http.MethodPut,
	Path:        "/deals/{id}",
	Summary:     "Update a deal",
	Tags:        []string{"deals"},
	PathParams:  []string{"id"},
	ContentType: core.ContentJSON,
	Body:        dealBodyFields,
})

// DealUpdate carries the editable fields of a deal. Only non-nil fields are
// sent.
type DealUpdate struct {
	Title             *string
	Value             *float64
	Currency          *string
	UserID            *int
	PersonID          *int
	OrgID             *int
	PipelineID        *int
	StageID           *int
	Status            *string
	ExpectedCloseDate *string
	Probability       *float64
	LostReason        *string
	VisibleTo         *int
}

// Update edits a deal.
func (s *DealsService) Update(ctx context.Context, id int, deal *DealUpdate) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if deal != nil {
		args.SetString("title", deal.Title)
		args.SetFloat("value", deal.Value)
		args.SetString("currency", deal.Currency)
		args.SetInt("user_id", deal.UserID)
		args.SetInt("person_id", deal.PersonID)
		args.SetInt("org_id", deal.OrgID)
		args.SetInt("pipeline_id", deal.PipelineID)
		args.SetInt("stage_id", deal.StageID)
		args.SetString("status", deal.Status)
		args.SetString("expected_close_date", deal.ExpectedCloseDate)
		args.SetFloat("probability", deal.Probability)
		args.SetString("lost_reason", deal.LostReason)
		args.SetInt("visible_to", deal.VisibleTo)
	}
	return s.client.inv.Invoke(ctx, opDealsUpdate, args)
}

var opDealsDelete = register(core.Operation{
	ID:         "deals.delete",
	Method:     http.MethodDelete,
	Path:       "/deals/{id}",
	Summary:    "Delete a deal",
	Tags:       []string{"deals"},
	PathParams: []string{"id"},
})

// Delete marks a deal as deleted.
func (s *DealsService) Delete(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opDealsDelete, args)
}

var opDealsSearch = register(core.Operation{
	ID:      "deals.search",
	Method:  http.MethodGet,
	Path:    "/deals/search",
	Summary: "Search deals",
	Tags:    []string{"deals", "search"},
	Query: []core.QueryParam{
		core.Q("term"),
		core.Q("fields"),
		core.Q("exact_match"),
		core.Q("person_id"),
		core.Q("organization_id"),
		core.Q("status"),
		core.Q("include_fields"),
		core.Q("start"),
		core.Q("limit"),
	},
})

// DealSearchOptions narrows a deal search.
type DealSearchOptions struct {
	Fields         *string
	ExactMatch     *bool
	PersonID       *int
	OrganizationID *int
	Status         *string
	IncludeFields  *string
	Start          *int
	Limit          *int
}

// Search finds deals by term.
func (s *DealsService) Search(ctx context.Context, term string, opt *DealSearchOptions) (Result, error) {
	args := core.Args{}
	args.Set("term", term)
	if opt != nil {
		args.SetString("fields", opt.Fields)
		args.SetBool("exact_match", opt.ExactMatch)
		args.SetInt("person_id", opt.PersonID)
		args.SetInt("organization_id", opt.OrganizationID)
		args.SetString("status", opt.Status)
		args.SetString("include_fields", opt.IncludeFields)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
	}
	return s.client.inv.Invoke(ctx, opDealsSearch, args)
}

var opDealsListPersons = register(core.Operation{
	ID:         "deals.listPersons",
	Method:     http.MethodGet,
	Path:       "/deals/{id}/persons",
	Summary:    "List all persons associated with a deal",
	Tags:       []string{"deals"},
	PathParams: []string{"id"},
	Query: []core.QueryParam{
		core.Q("start"),
		core.Q("limit"),
	},
})

// ListPersons returns the persons attached to a deal.
func (s *DealsService) ListPersons(ctx context.Context, id int, page *PageOptions) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	page.apply(args)
	return s.client.inv.Invoke(ctx, opDealsListPersons, args)
}

var opDealsListProducts = register(core.Operation{
	ID:         "deals.listProducts",
	Method:     http.MethodGet,
	Path:       "/deals/{id}/products",
	Summary:    "List products attached to a deal",
	Tags:       []string{"deals", "products"},
	PathParams: []string{"id"},
	Query: []core.QueryParam{
		core.Q("start"),
		core.Q("limit"),
		core.Q("include_product_data"),
	},
})

// DealProductsOptions pages the attached-product list.
type DealProductsOptions struct {
	Start              *int
	Limit              *int
	IncludeProductData *bool
}

// ListProducts returns the products attached to a deal.
func (s *DealsService) ListProducts(ctx context.Context, id int, opt *DealProductsOptions) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if opt != nil {
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
		args.SetBool("include_product_data", opt.IncludeProductData)
	}
	return s.client.inv.Invoke(ctx, opDealsListProducts, args)
}

var opDealsAddProduct = register(core.Operation{
	ID:          "deals.addProduct",
	Method:      http.MethodPost,
	Path:        "/deals/{id}/products",
	Summary:     "Add a product to a deal",
	Tags:        []string{"deals", "products"},
	PathParams:  []string{"id"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.FReq("product_id"),
		core.FReq("item_price"),
		core.FReq("quantity"),
		core.F("discount_percentage"),
		core.F("duration"),
		core.F("tax"),
		core.F("comments"),
		core.F("enabled_flag"),
	},
})

// DealProductAttachment describes one product attached to a deal.
type DealProductAttachment struct {
	ProductID          int
	ItemPrice          float64
	Quantity           int
	DiscountPercentage *float64
	Duration           *float64
	Tax                *float64
	Comments           *string
	EnabledFlag        *bool
}

// AddProduct attaches a product to a deal.
func (s *DealsService) AddProduct(ctx context.Context, id int, p *DealProductAttachment) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if p != nil {
		args.Set("product_id", p.ProductID)
		args.Set("item_price", p.ItemPrice)
		args.Set("quantity", p.Quantity)
		args.SetFloat("discount_percentage", p.DiscountPercentage)
		args.SetFloat("duration", p.Duration)
		args.SetFloat("tax", p.Tax)
		args.SetString("comments", p.Comments)
		args.SetBool("enabled_flag", p.EnabledFlag)
	}
	return s.client.inv.Invoke(ctx, opDealsAddProduct, args)
}

var opDealsDeleteProduct = register(core.Operation{
	ID:         "deals.deleteProduct",
	Method:     http.MethodDelete,
	Path:       "/deals/{id}/products/{product_attachment_id}",
	Summary:    "Delete an attached product from a deal",
	Tags:       []string{"deals", "products"},
	PathParams: []string{"id", "product_attachment_id"},
})

// DeleteProduct removes an attached product from a deal.
func (s *DealsService) DeleteProduct(ctx context.Context, id, productAttachmentID int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	args.Set("product_attachment_id", productAttachmentID)
	return s.client.inv.Invoke(ctx, opDealsDeleteProduct, args)
}

var opDealsDuplicate = register(core.Operation{
	ID:         "deals.duplicate",
	Method:     http.MethodPost,
	Path:       "/deals/{id}/duplicate",
	Summary:    "Duplicate a deal",
	Tags:       []string{"deals"},
	PathParams: []string{"id"},
})

// Duplicate copies a deal.
func (s *DealsService) Duplicate(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opDealsDuplicate, args)
}

var opDealsMerge = register(core.Operation{
	ID:          "deals.merge",
	Method:      http.MethodPut,
	Path:        "/deals/{id}/merge",
	Summary:     "Merge two deals",
	Tags:        []string{"deals"},
	PathParams:  []string{"id"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.FReq("merge_with_id"),
	},
})

// Merge merges the deal id into mergeWithID.
func (s *DealsService) Merge(ctx context.Context, id, mergeWithID int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	args.Set("merge_with_id", mergeWithID)
	return s.client.inv.Invoke(ctx, opDealsMerge, args)
}

// PageOptions is the common start/limit paging pair shared by list
// endpoints.
type PageOptions struct {
	Start *int
	Limit *int
}

func (p *PageOptions) apply(args core.Args) {
	if p == nil {
		return
	}
	args.SetInt("start", p.Start)
	args.SetInt("limit", p.Limit)
}
