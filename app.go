package bungie

import (
	"context"
	"encoding/json"
	"net/url"
	"time"

	"github.com/kofuk/bungie/internal/route"
)

// FetchApplicationAPIUsage reports the API usage of an application owned by
// the token's owner. Zero times fall back to the last 24 hours.
func (c *Client) FetchApplicationAPIUsage(ctx context.Context, token Token, applicationID int64, start, end time.Time) (json.RawMessage, error) {
	if err := requireID("applicationID", applicationID); err != nil {
		return nil, err
	}
	q := url.Values{}
	if !start.IsZero() {
		q.Set("start", start.UTC().Format(time.RFC3339))
	}
	if !end.IsZero() {
		q.Set("end", end.UTC().Format(time.RFC3339))
	}
	p := route.Params{Path: path("applicationId", applicationID), Query: q}
	return fetch(ctx, c, route.OpGetApplicationAPIUsage, p, token, raw)
}

func (c *Client) FetchBungieApplications(ctx context.Context) (json.RawMessage, error) {
	return fetch(ctx, c, route.OpGetBungieApplications, route.Params{}, "", raw)
}

func (c *Client) FetchCommonSettings(ctx context.Context) (json.RawMessage, error) {
	return fetch(ctx, c, route.OpGetCommonSettings, route.Params{}, "", raw)
}

func (c *Client) FetchGlobalAlerts(ctx context.Context, includeStreaming bool) (json.RawMessage, error) {
	q := url.Values{}
	if includeStreaming {
		q.Set("includestreaming", "true")
	}
	return fetch(ctx, c, route.OpGetGlobalAlerts, route.Params{Query: q}, "", raw)
}

func (c *Client) FetchContentType(ctx context.Context, contentType string) (json.RawMessage, error) {
	if err := requireString("contentType", contentType); err != nil {
		return nil, err
	}
	return fetch(ctx, c, route.OpGetContentType, route.Params{Path: path("type", contentType)}, "", raw)
}

func (c *Client) FetchContentByID(ctx context.Context, id int64, locale string, head bool) (json.RawMessage, error) {
	if err := requireID("id", id); err != nil {
		return nil, err
	}
	p := route.Params{Path: path("id", id, "locale", localeOr(locale))}
	if head {
		p.Query = url.Values{"head": {"true"}}
	}
	return fetch(ctx, c, route.OpGetContentByID, p, "", raw)
}

func (c *Client) FetchContentByTagAndType(ctx context.Context, tag, contentType, locale string) (json.RawMessage, error) {
	if err := check(requireString("tag", tag), requireString("contentType", contentType)); err != nil {
		return nil, err
	}
	p := route.Params{Path: path("tag", tag, "type", contentType, "locale", localeOr(locale))}
	return fetch(ctx, c, route.OpGetContentByTagAndType, p, "", raw)
}

func (c *Client) SearchContentWithText(ctx context.Context, locale, query string, types []string, page int) (json.RawMessage, error) {
	q := url.Values{"currentpage": {str(page)}}
	if query != "" {
		q.Set("searchtext", query)
	}
	for _, t := range types {
		q.Add("ctype", t)
	}
	p := route.Params{Path: path("locale", localeOr(locale)), Query: q}
	return fetch(ctx, c, route.OpSearchContentWithText, p, "", raw)
}

// FetchNewsArticles returns one page of the news feed. The first page is
// token "0".
func (c *Client) FetchNewsArticles(ctx context.Context, pageToken string) (json.RawMessage, error) {
	if pageToken == "" {
		pageToken = "0"
	}
	return fetch(ctx, c, route.OpRssNewsArticles, route.Params{Path: path("pageToken", pageToken)}, "", raw)
}

func localeOr(locale string) string {
	if locale == "" {
		return "en"
	}
	return locale
}
