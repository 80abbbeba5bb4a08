package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// ProductsService covers the /products endpoints.
type ProductsService struct {
	client *Client
}

var opProductsList = register(core.Operation{
	ID:      "products.list",
	Method:  http.MethodGet,
	Path:    "/products",
	Summary: "Get all products",
	Tags:    []string{"products"},
	Query: []core.QueryParam{
		core.Q("user_id"),
		core.Q("filter_id"),
		core.Q("ids"),
		core.Q("first_char"),
		core.Q("get_summary"),
		core.Q("start"),
		core.Q("limit"),
	},
})

// ProductListOptions filters and pages the product list.
type ProductListOptions struct {
	UserID     *int
	FilterID   *int
	IDs        []int
	FirstChar  *string
	GetSummary *bool
	Start      *int
	Limit      *int
}

// List returns all products.
func (s *ProductsService) List(ctx context.Context, opt *ProductListOptions) (Result, error) {
	args := core.Args{}
	if opt != nil {
		args.SetInt("user_id", opt.UserID)
		args.SetInt("filter_id", opt.FilterID)
		args.SetInts("ids", opt.IDs)
		args.SetString("first_char", opt.FirstChar)
		args.SetBool("get_summary", opt.GetSummary)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
	}
	return s.client.inv.Invoke(ctx, opProductsList, args)
}

var opProductsGet = register(core.Operation{
	ID:         "products.get",
	Method:     http.MethodGet,
	Path:       "/products/{id}",
	Summary:    "Get details of a product",
	Tags:       []string{"products"},
	PathParams: []string{"id"},
})

// Get returns one product.
func (s *ProductsService) Get(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opProductsGet, args)
}

var opProductsAdd = register(core.Operation{
	ID:          "products.add",
	Method:      http.MethodPost,
	Path:        "/products",
	Summary:     "Add a product",
	Tags:        []string{"products"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.FReq("name"),
		core.F("code"),
		core.F("unit"),
		core.F("tax"),
		core.F("active_flag"),
		core.F("selectable"),
		core.F("visible_to"),
		core.F("owner_id"),
		core.F("prices"),
	},
})

// ProductPrice is one currency entry in a product's price list.
type ProductPrice struct {
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	Cost         float64 `json:"cost,omitempty"`
	OverheadCost float64 `json:"overhead_cost,omitempty"`
}

// ProductCreate carries the fields for a new product. Name is required.
type ProductCreate struct {
	Name       string
	Code       *string
	Unit       *string
	Tax        *float64
	ActiveFlag *bool
	Selectable *bool
	VisibleTo  *int
	OwnerID    *int
	Prices     []ProductPrice
}

func (p *ProductCreate) args() core.Args {
	args := core.Args{}
	if p == nil {
		return args
	}
	args.Set("name", p.Name)
	args.SetString("code", p.Code)
	args.SetString("unit", p.Unit)
	args.SetFloat("tax", p.Tax)
	args.SetBool("active_flag", p.ActiveFlag)
	args.SetBool("selectable", p.Selectable)
	args.SetInt("visible_to", p.VisibleTo)
	args.SetInt("owner_id", p.OwnerID)
	if p.Prices != nil {
		args.Set("prices", p.Prices)
	}
	return args
}

// Add creates a product.
func (s *ProductsService) Add(ctx context.Context, product *ProductCreate) (Result, error) {
	return s.client.inv.Invoke(ctx, opProductsAdd, product.args())
}

var opProductsUpdate = register(core.Operation{
	ID:          "products.update",
	Method:      http.MethodPut,
	Path:        "/products/{id}",
	Summary:     "Update a product",
	Tags:        []string{"products"},
	PathParams:  []string{"id"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.F("name"),
		core.F("code"),
		core.F("unit"),
		core.F("tax"),
		core.F("active_flag"),
		core.F("selectable"),
		core.F("visible_to"),
		core.F("owner_id"),
		core.F("prices"),
	},
})

// ProductUpdate carries the editable fields of a product.
type ProductUpdate struct {
	Name       *string
	Code       *string
	Unit       *string
	Tax        *float64
	ActiveFlag *bool
	Selectable *bool
	VisibleTo  *int
	OwnerID    *int
	Prices     []ProductPrice
}

// Update edits a product.
func (s *ProductsService) Update(ctx context.Context, id int, product *ProductUpdate) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if product != nil {
		args.SetString("name", product.Name)
		args.SetString("code", product.Code)
		args.SetString("unit", product.Unit)
		args.SetFloat("tax", product.Tax)
		args.SetBool("active_flag", product.ActiveFlag)
		args.SetBool("selectable", product.Selectable)
		args.SetInt("visible_to", product.VisibleTo)
		args.SetInt("owner_id", product.OwnerID)
		if product.Prices != nil {
			args.Set("prices", product.Prices)
		}
	}
	return s.client.inv.Invoke(ctx, opProductsUpdate, args)
}

var opProductsDelete = register(core.Operation{
	ID:         "products.delete",
	Method:     http.MethodDelete,
	Path:       "/products/{id}",
	Summary:    "Delete a product",
	Tags:       []string{"products"},
	PathParams: []string{"id"},
})

// Delete marks a product as deleted.
func (s *ProductsService) Delete(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opProductsDelete, args)
}

var opProductsSearch = register(core.Operation{
	ID:      "products.search",
	Method:  http.MethodGet,
	Path:    "/products/search",
	Summary: "Search products",
	Tags:    []string{"products", "search"},
	Query: []core.QueryParam{
		core.Q("term"),
		core.Q("fields"),
		core.Q("exact_match"),
		core.Q("include_fields"),
		core.Q("start"),
		core.Q("limit"),
	},
})

// ProductSearchOptions narrows a product search.
type ProductSearchOptions struct {
	Fields        *string
	ExactMatch    *bool
	IncludeFields *string
	Start         *int
	Limit         *int
}

// Search finds products by term.
func (s *ProductsService) Search(ctx context.Context, term string, opt *ProductSearchOptions) (Result, error) {
	args := core.Args{}
	args.Set("term", term)
	if opt != nil {
		args.SetString("fields", opt.Fields)
		args.SetBool("exact_match", opt.ExactMatch)
		args.SetString("include_fields", opt.IncludeFields)
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
	}
	return s.client.inv.Invoke(ctx, opProductsSearch, args)
}

var opProductsListDeals = register(core.Operation{
	ID:         "products.listDeals",
	Method:     http.MethodGet,
	Path:       "/products/{id}/deals",
	Summary:    "List deals where a product is attached",
	Tags:       []string{"products", "deals"},
	PathParams: []string{"id"},
	Query: []core.QueryParam{
		core.Q("start"),
		core.Q("limit"),
		core.Q("status"),
	},
})

// ProductDealsOptions pages and filters a product's deals.
type ProductDealsOptions struct {
	Start  *int
	Limit  *int
	Status *string
}

// ListDeals returns deals that have the product attached.
func (s *ProductsService) ListDeals(ctx context.Context, id int, opt *ProductDealsOptions) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	if opt != nil {
		args.SetInt("start", opt.Start)
		args.SetInt("limit", opt.Limit)
		args.SetString("status", opt.Status)
	}
	return s.client.inv.Invoke(ctx, opProductsListDeals, args)
}
