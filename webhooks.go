package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// WebhooksService covers the /webhooks endpoints.
type WebhooksService struct {
	client *Client
}

var opWebhooksList = register(core.Operation{
	ID:      "webhooks.list",
	Method:  http.MethodGet,
	Path:    "/webhooks",
	Summary: "Get all webhooks",
	Tags:    []string{"webhooks"},
})

// List returns the webhooks of the authorized user.
func (s *WebhooksService) List(ctx context.Context) (Result, error) {
	return s.client.inv.Invoke(ctx, opWebhooksList, core.Args{})
}

var opWebhooksAdd = register(core.Operation{
	ID:          "webhooks.add",
	Method:      http.MethodPost,
	Path:        "/webhooks",
	Summary:     "Create a new webhook",
	Tags:        []string{"webhooks"},
	ContentType: core.ContentJSON,
	Body: []core.BodyField{
		core.FReq("subscription_url"),
		core.FReq("event_action"),
		core.FReq("event_object"),
		core.F("user_id"),
		core.F("http_auth_user"),
		core.F("http_auth_password"),
		core.F("version"),
	},
})

// WebhookCreate carries the fields for a new webhook subscription.
// SubscriptionURL, EventAction, and EventObject are required.
type WebhookCreate struct {
	SubscriptionURL  string
	EventAction      string // added, updated, merged, deleted, *
	EventObject      string // activity, deal, note, organization, person, ...
	UserID           *int
	HTTPAuthUser     *string
	HTTPAuthPassword *string
	Version          *string
}

// Add creates a webhook.
func (s *WebhooksService) Add(ctx context.Context, webhook *WebhookCreate) (Result, error) {
	args := core.Args{}
	if webhook != nil {
		args.Set("subscription_url", webhook.SubscriptionURL)
		args.Set("event_action", webhook.EventAction)
		args.Set("event_object", webhook.EventObject)
		args.SetInt("user_id", webhook.UserID)
		args.SetString("http_auth_user", webhook.HTTPAuthUser)
		args.SetString("http_auth_password", webhook.HTTPAuthPassword)
		args.SetString("version", webhook.Version)
	}
	return s.client.inv.Invoke(ctx, opWebhooksAdd, args)
}

var opWebhooksDelete = register(core.Operation{
	ID:         "webhooks.delete",
	Method:     http.MethodDelete,
	Path:       "/webhooks/{id}",
	Summary:    "Delete an existing webhook",
	Tags:       []string{"webhooks"},
	PathParams: []string{"id"},
})

// Delete removes a webhook.
func (s *WebhooksService) Delete(ctx context.Context, id int) (Result, error) {
	args := core.Args{}
	args.Set("id", id)
	return s.client.inv.Invoke(ctx, opWebhooksDelete, args)
}
