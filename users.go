package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// UsersService covers the /users endpoints.
type UsersService struct {
	client *Client
}

var opUsersList = register(core.Operation{
	ID:      "users.list",
	Method:  http.MethodGet,
	Path:    "/users",
	Summary: "Get all users",
	Tags:    []string{"users"},
})

// List returns all users of the company.
func (s *UsersService) List(ctx context.Context) (Result, error) {
	return s.client.inv.Invoke(ctx, opUsersList, core.Args{})
}

var opUsersGet = register(core.Operation{
	ID:         "users.get",
	Method:     http.MethodGet,
	Path:       "/users/{id}",
	Summary:    "Get one user",
	Tags:       []string{"users"},
	PathParams: []string{"id"},
})

// Get returns one user.
func (s *UsersService) Get(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opUsersGet, args)
}

var opUsersMe = register(core.Operation{
	ID:      "users.me",
	Method:  http.MethodGet,
	Path:    "/users/me",
	Summary: "Get current user data",
	Tags:    []string{"users"},
})

// Me returns the authorized user.
func (s *UsersService) Me(ctx context.Context) (Result, error) {
	return s.client.inv.Invoke(ctx, opUsersMe, core.Args{})
}

var opUsersFind = register(core.Operation{
	ID:      "users.find",
	Method:  http.MethodGet,
	Path:    "/users/find",
	Summary: "Find users by name",
	Tags:    []string{"users"},
	Query: []core.QueryParam{
		core.Q("term"),
		core.Q("search_by_email"),
	},
})

// Find searches users by name or email.
func (s *UsersService) Find(ctx context.Context, term string, searchByEmail *bool) (Result, error) {
	args := core.Args{}
	args.Set("term", term)
	args.SetBool("search_by_email", searchByEmail)
	return s.client.inv.Invoke(ctx, opUsersFind, args)
}
