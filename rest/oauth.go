package rest

import (
	"context"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/factory"
	"github.com/kofuk/bungie/internal/route"
)

// FetchOAuth2Tokens exchanges an authorization code for a token pair.
func (c *Client) FetchOAuth2Tokens(ctx context.Context, code string) (entity.BearerToken, error) {
	if code == "" {
		return entity.BearerToken{}, apierror.InvalidArgument("authorization code is empty")
	}
	form := url.Values{
		"grant_type": {"authorization_code"},
		"code":       {code},
	}
	return c.token(ctx, form)
}

// RefreshAccessToken trades a refresh token for a new token pair.
func (c *Client) RefreshAccessToken(ctx context.Context, refreshToken string) (entity.BearerToken, error) {
	if refreshToken == "" {
		return entity.BearerToken{}, apierror.InvalidArgument("refresh token is empty")
	}
	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {refreshToken},
	}
	return c.token(ctx, form)
}

func (c *Client) token(ctx context.Context, form url.Values) (entity.BearerToken, error) {
	if c.opts.ClientID == "" {
		return entity.BearerToken{}, apierror.InvalidArgument("OAuth2 client id is not configured")
	}
	form.Set("client_id", c.opts.ClientID)
	if c.opts.ClientSecret != "" {
		form.Set("client_secret", c.opts.ClientSecret)
	}

	issuedAt := time.Now()
	raw, err := c.Do(ctx, route.OpGetOAuthToken, route.Params{Form: form}, "")
	if err != nil {
		return entity.BearerToken{}, err
	}
	return factory.DeserializeBearerToken(raw, issuedAt)
}

type OAuth2URL struct {
	URL   string
	State string
}

// BuildOAuth2URL returns the page users visit to authorize the application.
// A random state is generated when state is empty.
func (c *Client) BuildOAuth2URL(state string) (OAuth2URL, error) {
	if c.opts.ClientID == "" {
		return OAuth2URL{}, apierror.InvalidArgument("OAuth2 client id is not configured")
	}
	if state == "" {
		state = uuid.NewString()
	}
	q := url.Values{
		"client_id":     {c.opts.ClientID},
		"response_type": {"code"},
		"state":         {state},
	}
	return OAuth2URL{URL: route.AuthorizeURL + "?" + q.Encode(), State: state}, nil
}
