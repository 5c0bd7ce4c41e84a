package bungie

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/enums"
	"github.com/kofuk/bungie/factory"
	"github.com/kofuk/bungie/internal/route"
)

type FireteamQuery struct {
	Platform     enums.FireteamPlatform
	Activity     enums.FireteamActivity
	Date         enums.FireteamDate
	Slots        enums.FireteamSlotSearch
	Page         int
	Language     string
	ExcludeReady bool
}

func (q FireteamQuery) path(extra ...any) map[string]string {
	return path(append([]any{
		"platform", q.Platform,
		"activityType", q.Activity,
		"dateRange", q.Date,
		"slotFilter", q.Slots,
		"page", q.Page,
	}, extra...)...)
}

func (q FireteamQuery) values() url.Values {
	v := url.Values{}
	if q.Language != "" {
		v.Set("langFilter", q.Language)
	}
	if q.ExcludeReady {
		v.Set("excludeImmediate", "true")
	}
	return v
}

// FetchFireteams searches public fireteams across all clans.
func (c *Client) FetchFireteams(ctx context.Context, q FireteamQuery, token Token) (factory.Page[entity.Fireteam], error) {
	p := route.Params{Path: q.path(), Query: q.values()}
	return fetch(ctx, c, route.OpSearchPublicFireteams, p, token, factory.DeserializeFireteams)
}

func (c *Client) FetchAvailableClanFireteams(ctx context.Context, token Token, clanID int64, q FireteamQuery, public enums.FireteamPublicSearch) (factory.Page[entity.Fireteam], error) {
	if err := requireID("clanID", clanID); err != nil {
		return factory.Page[entity.Fireteam]{}, err
	}
	p := route.Params{Path: q.path("groupId", clanID, "publicOnly", public), Query: q.values()}
	return fetch(ctx, c, route.OpGetAvailableClanFireteams, p, token, factory.DeserializeFireteams)
}

func (c *Client) FetchClanFireteam(ctx context.Context, token Token, clanID, fireteamID int64) (entity.AvailableFireteam, error) {
	if err := check(requireID("clanID", clanID), requireID("fireteamID", fireteamID)); err != nil {
		return entity.AvailableFireteam{}, err
	}
	p := route.Params{Path: path("groupId", clanID, "fireteamId", fireteamID)}
	return fetch(ctx, c, route.OpGetClanFireteam, p, token, factory.DeserializeAvailableFireteam)
}

// FetchMyClanFireteams lists the fireteams the token's owner is in or
// applied to within a clan.
func (c *Client) FetchMyClanFireteams(ctx context.Context, token Token, clanID int64, platform enums.FireteamPlatform, includeClosed bool, page int, language string) (factory.Page[entity.AvailableFireteam], error) {
	if err := requireID("clanID", clanID); err != nil {
		return factory.Page[entity.AvailableFireteam]{}, err
	}
	p := route.Params{
		Path:  path("groupId", clanID, "platform", platform, "includeClosed", includeClosed, "page", page),
		Query: FireteamQuery{Language: language}.values(),
	}
	return fetch(ctx, c, route.OpGetMyClanFireteams, p, token, factory.DeserializeAvailableFireteams)
}

// FetchPrivateClanFireteams returns the number of active private fireteams.
func (c *Client) FetchPrivateClanFireteams(ctx context.Context, token Token, clanID int64) (int, error) {
	if err := requireID("clanID", clanID); err != nil {
		return 0, err
	}
	p := route.Params{Path: path("groupId", clanID)}
	return fetch(ctx, c, route.OpGetActivePrivateFireteamCount, p, token, decodeJSON[int])
}

func (c *Client) FetchFireteamListing(ctx context.Context, token Token, listingID int64) (json.RawMessage, error) {
	if err := requireID("listingID", listingID); err != nil {
		return nil, err
	}
	p := route.Params{Path: path("listingId", strconv.FormatInt(listingID, 10))}
	return fetch(ctx, c, route.OpGetFireteamListing, p, token, raw)
}
