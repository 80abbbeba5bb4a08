package pipedrive

import (
	"context"
	"net/http"

	"github.com/mark3labs/pipedrive-go/internal/core"
)

// OAuthService exchanges and refreshes OAuth tokens against the OAuth host.
// Both endpoints are form-encoded, as the OAuth 2.0 spec requires.
type OAuthService struct {
	client *Client
}

var opOAuthToken = register(core.Operation{
	ID:          "oauth.token",
	Method:      http.MethodPost,
	Path:        "/oauth/token",
	Summary:     "Exchange an authorization code for tokens",
	Tags:        []string{"oauth"},
	ContentType: core.ContentForm,
	Body: []core.BodyField{
		core.FReq("grant_type"),
		core.FReq("code"),
		core.FReq("redirect_uri"),
		core.FReq("client_id"),
		core.FReq("client_secret"),
	},
})

// Exchange trades an authorization code for an access/refresh token pair.
func (s *OAuthService) Exchange(ctx context.Context, code, redirectURI, clientID, clientSecret string) (Result, error) {
	args := core.Args{}
	args.Set("grant_type", "authorization_code")
	args.Set("code", code)
	args.Set("redirect_uri", redirectURI)
	args.Set("client_id", clientID)
	args.Set("client_secret", clientSecret)
	return s.client.oauthInv.Invoke(ctx, opOAuthToken, args)
}

var opOAuthRefresh = register(core.Operation{
	ID:          "oauth.refresh",
	Method:      http.MethodPost,
	Path:        "/oauth/token",
	Summary:     "Refresh an access token",
	Tags:        []string{"oauth"},
	ContentType: core.ContentForm,
	Body: []core.BodyField{
		core.FReq("grant_type"),
		core.FReq("refresh_token"),
		core.FReq("client_id"),
		core.FReq("client_secret"),
	},
})

// Refresh obtains a new access token from a refresh token.
func (s *OAuthService) Refresh(ctx context.Context, refreshToken, clientID, clientSecret string) (Result, error) {
	args := core.Args{}
	args.Set("grant_type", "refresh_token")
	args.Set("refresh_token", refreshToken)
	args.Set("client_id", clientID)
	args.Set("client_secret", clientSecret)
	return s.client.oauthInv.Invoke(ctx, opOAuthRefresh, args)
}
