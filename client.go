// Package bungie is a client for the Bungie.net API. Every method validates
// its arguments, performs one or more calls through the REST client and
// returns typed entities.
package bungie

import (
	"context"
	"encoding/json"
	"net/url"
	"reflect"
	"strconv"
	"strings"

	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/config"
	"github.com/kofuk/bungie/enums"
	"github.com/kofuk/bungie/factory"
	"github.com/kofuk/bungie/internal/route"
	"github.com/kofuk/bungie/iterator"
	"github.com/kofuk/bungie/rest"
)

// Token is an OAuth2 access token. Methods that accept one send it when it
// is not empty.
type Token = rest.Token

// GroupQuery is the body of SearchGroup.
type GroupQuery = route.GroupQuery

type Client struct {
	rest *rest.Client
}

func New(apiKey string, opts ...rest.Option) *Client {
	return &Client{rest: rest.New(apiKey, opts...)}
}

// NewFromConfig builds a client from environment configuration. opts are
// applied after the configured values.
func NewFromConfig(cfg *config.Config, opts ...rest.Option) *Client {
	base := []rest.Option{
		rest.WithMaxConcurrency(cfg.MaxConcurrency),
		rest.WithMaxRetries(cfg.MaxRetries),
		rest.WithTimeout(cfg.Timeout),
		rest.WithRateLimit(cfg.RateLimit),
		rest.WithOAuth2Client(cfg.ClientID, cfg.ClientSecret),
	}
	if cfg.MaxRetries == 0 {
		base[1] = rest.WithMaxRetries(-1)
	}
	return New(cfg.APIKey, append(base, opts...)...)
}

// REST exposes the underlying executor.
func (c *Client) REST() *rest.Client {
	return c.rest
}

func (c *Client) Close() error {
	return c.rest.Close()
}

// StaticRequest calls a platform path that has no dedicated method.
func (c *Client) StaticRequest(ctx context.Context, method, path string, opts ...rest.StaticOption) (json.RawMessage, error) {
	return c.rest.Static(ctx, method, path, opts...)
}

func fetch[T any](ctx context.Context, c *Client, op route.Op, p route.Params, token Token, decode func(json.RawMessage) (T, error)) (T, error) {
	raw, err := c.rest.Do(ctx, op, p, token)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode(raw)
}

// exec calls an operation whose response carries nothing of interest.
func (c *Client) exec(ctx context.Context, op route.Op, p route.Params, token Token) error {
	_, err := c.rest.Do(ctx, op, p, token)
	return err
}

func raw(data json.RawMessage) (json.RawMessage, error) {
	return data, nil
}

func decodeJSON[T any](data json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return v, apierror.InvalidPayload(err, "unexpected response")
	}
	return v, nil
}

// path builds path parameters from alternating names and values.
func path(kv ...any) map[string]string {
	m := make(map[string]string, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		m[kv[i].(string)] = str(kv[i+1])
	}
	return m
}

// str formats path values. Enums are written as their integer value.
func str(v any) string {
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return rv.String()
	case rv.Kind() == reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case rv.CanInt():
		return strconv.FormatInt(rv.Int(), 10)
	case rv.CanUint():
		return strconv.FormatUint(rv.Uint(), 10)
	}
	return ""
}

func components(cs []enums.ComponentType) (url.Values, error) {
	if len(cs) == 0 {
		return nil, apierror.InvalidArgument("at least one component is required")
	}
	return url.Values{"components": {enums.JoinComponents(cs)}}, nil
}

func joinInts[E ~int](vs []E) string {
	parts := make([]string, 0, len(vs))
	for _, v := range vs {
		parts = append(parts, strconv.Itoa(int(v)))
	}
	return strings.Join(parts, ",")
}

func requireID(name string, id int64) error {
	if id <= 0 {
		return apierror.InvalidArgument("%s must be positive, got %d", name, id)
	}
	return nil
}

func requireString(name, v string) error {
	if strings.TrimSpace(v) == "" {
		return apierror.InvalidArgument("%s must not be empty", name)
	}
	return nil
}

func requireToken(t Token) error {
	if t == "" {
		return &apierror.Error{Kind: apierror.KindUnauthorized, Message: "an OAuth2 access token is required"}
	}
	return nil
}

// check returns the first non-nil error.
func check(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func paged[T any](ctx context.Context, start int, fetchPage func(ctx context.Context, page int) (factory.Page[T], error)) *iterator.Iterator[T] {
	return iterator.Paged(ctx, start, func(ctx context.Context, page int) ([]T, bool, error) {
		p, err := fetchPage(ctx, page)
		if err != nil {
			return nil, false, err
		}
		return p.Results, p.HasMore, nil
	})
}

// failed yields err on the first read.
func failed[T any](err error) *iterator.Iterator[T] {
	return iterator.New(func() (T, error) {
		var zero T
		return zero, err
	})
}
