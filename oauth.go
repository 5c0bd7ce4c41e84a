package bungie

import (
	"context"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/rest"
)

// FetchOAuth2Tokens exchanges an authorization code for tokens.
func (c *Client) FetchOAuth2Tokens(ctx context.Context, code string) (entity.BearerToken, error) {
	if err := requireString("code", code); err != nil {
		return entity.BearerToken{}, err
	}
	return c.rest.FetchOAuth2Tokens(ctx, code)
}

func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (entity.BearerToken, error) {
	if err := requireString("refreshToken", refreshToken); err != nil {
		return entity.BearerToken{}, err
	}
	return c.rest.RefreshAccessToken(ctx, refreshToken)
}

func (c *Client) AuthorizationURL(state string) (rest.OAuth2URL, error) {
	return c.rest.BuildOAuth2URL(state)
}
