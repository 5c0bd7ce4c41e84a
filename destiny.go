package bungie

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/enums"
	"github.com/kofuk/bungie/factory"
	"github.com/kofuk/bungie/internal/route"
	"github.com/kofuk/bungie/iterator"
)

const (
	// MaxActivitiesPerPage is the largest page the activity history serves.
	MaxActivitiesPerPage = 250

	entityInventoryItem = "DestinyInventoryItemDefinition"
	entityObjective     = "DestinyObjectiveDefinition"
)

// FetchProfile returns the requested components of a profile. Components
// the server withholds are left nil.
func (c *Client) FetchProfile(ctx context.Context, membershipID int64, membershipType enums.MembershipType, cs []enums.ComponentType, token Token) (entity.Component, error) {
	q, err := components(cs)
	if err := check(err, requireID("membershipID", membershipID)); err != nil {
		return entity.Component{}, err
	}
	p := route.Params{
		Path:  path("membershipType", membershipType, "destinyMembershipId", membershipID),
		Query: q,
	}
	return fetch(ctx, c, route.OpGetProfile, p, token, func(raw json.RawMessage) (entity.Component, error) {
		return factory.DeserializeComponents(raw, cs)
	})
}

func (c *Client) FetchCharacter(ctx context.Context, membershipID int64, membershipType enums.MembershipType, characterID int64, cs []enums.ComponentType, token Token) (entity.CharacterComponent, error) {
	q, err := components(cs)
	if err := check(err, requireID("membershipID", membershipID), requireID("characterID", characterID)); err != nil {
		return entity.CharacterComponent{}, err
	}
	p := route.Params{
		Path:  path("membershipType", membershipType, "destinyMembershipId", membershipID, "characterId", characterID),
		Query: q,
	}
	return fetch(ctx, c, route.OpGetCharacter, p, token, func(raw json.RawMessage) (entity.CharacterComponent, error) {
		return factory.DeserializeCharacterComponent(raw, cs)
	})
}

func (c *Client) FetchItem(ctx context.Context, membershipID, itemInstanceID int64, membershipType enums.MembershipType, cs []enums.ComponentType, token Token) (entity.ItemComponent, error) {
	q, err := components(cs)
	if err := check(err, requireID("membershipID", membershipID), requireID("itemInstanceID", itemInstanceID)); err != nil {
		return entity.ItemComponent{}, err
	}
	p := route.Params{
		Path:  path("membershipType", membershipType, "destinyMembershipId", membershipID, "itemInstanceId", itemInstanceID),
		Query: q,
	}
	return fetch(ctx, c, route.OpGetItem, p, token, func(raw json.RawMessage) (entity.ItemComponent, error) {
		return factory.DeserializeItemComponent(raw, cs)
	})
}

// FetchPlayer finds the Destiny memberships of a Bungie name such as
// "Name#1234", split into name and code.
func (c *Client) FetchPlayer(ctx context.Context, name string, code int, membershipType enums.MembershipType) ([]entity.DestinyMembership, error) {
	if err := requireString("name", name); err != nil {
		return nil, err
	}
	if membershipType == enums.MembershipTypeNone {
		membershipType = enums.MembershipTypeAll
	}
	p := route.Params{
		Path: path("membershipType", membershipType),
		Body: map[string]any{"displayName": name, "displayNameCode": code},
	}
	return fetch(ctx, c, route.OpSearchDestinyPlayerByName, p, "", factory.DeserializeDestinyMemberships)
}

type ActivityQuery struct {
	MembershipID   int64
	MembershipType enums.MembershipType
	CharacterID    int64
	Mode           enums.GameMode
	// Page is the first page to read.
	Page int
	// Limit is the page size, at most MaxActivitiesPerPage.
	Limit int
}

// FetchActivities reads the activity history of a character, newest first,
// one page at a time as the iterator is consumed.
func (c *Client) FetchActivities(ctx context.Context, q ActivityQuery) *iterator.Iterator[entity.Activity] {
	if err := check(requireID("membershipID", q.MembershipID), requireID("characterID", q.CharacterID)); err != nil {
		return failed[entity.Activity](err)
	}
	if q.Limit <= 0 || q.Limit > MaxActivitiesPerPage {
		q.Limit = MaxActivitiesPerPage
	}
	return iterator.Paged(ctx, q.Page, func(ctx context.Context, page int) ([]entity.Activity, bool, error) {
		p := route.Params{
			Path: path("membershipType", q.MembershipType, "destinyMembershipId", q.MembershipID, "characterId", q.CharacterID),
			Query: url.Values{
				"mode":  {strconv.Itoa(int(q.Mode))},
				"count": {strconv.Itoa(q.Limit)},
				"page":  {strconv.Itoa(page)},
			},
		}
		activities, err := fetch(ctx, c, route.OpGetActivityHistory, p, "", factory.DeserializeActivities)
		if err != nil {
			return nil, false, err
		}
		return activities, len(activities) == q.Limit, nil
	})
}

func (c *Client) FetchPostActivity(ctx context.Context, instanceID int64) (entity.PostActivity, error) {
	if err := requireID("instanceID", instanceID); err != nil {
		return entity.PostActivity{}, err
	}
	p := route.Params{Path: path("activityId", instanceID)}
	return fetch(ctx, c, route.OpGetPostGameCarnageReport, p, "", factory.DeserializePostActivity)
}

type StatsQuery struct {
	Groups []enums.StatsGroupType
	Modes  []enums.GameMode
	Period enums.PeriodType
	// DayStart and DayEnd bound daily stats. They are ignored when zero.
	DayStart time.Time
	DayEnd   time.Time
}

func (q StatsQuery) values() url.Values {
	v := url.Values{}
	if len(q.Groups) > 0 {
		v.Set("groups", joinInts(q.Groups))
	}
	if len(q.Modes) > 0 {
		v.Set("modes", joinInts(q.Modes))
	}
	if q.Period != enums.PeriodNone {
		v.Set("periodType", strconv.Itoa(int(q.Period)))
	}
	if !q.DayStart.IsZero() {
		v.Set("daystart", q.DayStart.UTC().Format(time.DateOnly))
	}
	if !q.DayEnd.IsZero() {
		v.Set("dayend", q.DayEnd.UTC().Format(time.DateOnly))
	}
	return v
}

func (c *Client) FetchHistoricalStats(ctx context.Context, membershipID int64, membershipType enums.MembershipType, characterID int64, q StatsQuery) (entity.HistoricalStats, error) {
	if err := requireID("membershipID", membershipID); err != nil {
		return nil, err
	}
	// Character id 0 asks for every character.
	p := route.Params{
		Path:  path("membershipType", membershipType, "destinyMembershipId", membershipID, "characterId", characterID),
		Query: q.values(),
	}
	return fetch(ctx, c, route.OpGetHistoricalStats, p, "", factory.DeserializeHistoricalStats)
}

func (c *Client) FetchHistoricalStatsForAccount(ctx context.Context, membershipID int64, membershipType enums.MembershipType, groups []enums.StatsGroupType) (entity.HistoricalStats, error) {
	if err := requireID("membershipID", membershipID); err != nil {
		return nil, err
	}
	p := route.Params{
		Path:  path("membershipType", membershipType, "destinyMembershipId", membershipID),
		Query: StatsQuery{Groups: groups}.values(),
	}
	return fetch(ctx, c, route.OpGetHistoricalStatsForAccount, p, "", factory.DeserializeAccountHistoricalStats)
}

func (c *Client) FetchAggregatedActivityStats(ctx context.Context, membershipID int64, membershipType enums.MembershipType, characterID int64) ([]entity.AggregatedActivity, error) {
	if err := check(requireID("membershipID", membershipID), requireID("characterID", characterID)); err != nil {
		return nil, err
	}
	p := route.Params{Path: path("membershipType", membershipType, "destinyMembershipId", membershipID, "characterId", characterID)}
	return fetch(ctx, c, route.OpGetAggregateActivityStats, p, "", factory.DeserializeAggregatedActivities)
}

func (c *Client) FetchUniqueWeaponHistory(ctx context.Context, membershipID int64, membershipType enums.MembershipType, characterID int64) ([]entity.UniqueWeapon, error) {
	if err := check(requireID("membershipID", membershipID), requireID("characterID", characterID)); err != nil {
		return nil, err
	}
	p := route.Params{Path: path("membershipType", membershipType, "destinyMembershipId", membershipID, "characterId", characterID)}
	return fetch(ctx, c, route.OpGetUniqueWeaponHistory, p, "", factory.DeserializeUniqueWeapons)
}

// FetchHistoricalDefinition returns the stat definitions keyed by stat id.
func (c *Client) FetchHistoricalDefinition(ctx context.Context) (json.RawMessage, error) {
	return fetch(ctx, c, route.OpGetHistoricalStatsDefinition, route.Params{}, "", raw)
}

func (c *Client) FetchClanAggregatedStats(ctx context.Context, clanID int64, modes []enums.GameMode) (json.RawMessage, error) {
	if err := requireID("clanID", clanID); err != nil {
		return nil, err
	}
	p := route.Params{Path: path("groupId", clanID), Query: StatsQuery{Modes: modes}.values()}
	return fetch(ctx, c, route.OpGetClanAggregateStats, p, "", raw)
}

type LeaderboardQuery struct {
	Modes  []enums.GameMode
	MaxTop int
	StatID string
}

func (q LeaderboardQuery) values() url.Values {
	v := StatsQuery{Modes: q.Modes}.values()
	if q.MaxTop > 0 {
		v.Set("maxtop", strconv.Itoa(q.MaxTop))
	}
	if q.StatID != "" {
		v.Set("statid", q.StatID)
	}
	return v
}

func (c *Client) FetchLeaderboards(ctx context.Context, membershipID int64, membershipType enums.MembershipType, q LeaderboardQuery) (json.RawMessage, error) {
	if err := requireID("membershipID", membershipID); err != nil {
		return nil, err
	}
	p := route.Params{
		Path:  path("membershipType", membershipType, "destinyMembershipId", membershipID),
		Query: q.values(),
	}
	return fetch(ctx, c, route.OpGetLeaderboards, p, "", raw)
}

func (c *Client) FetchClanLeaderboards(ctx context.Context, clanID int64, q LeaderboardQuery) (json.RawMessage, error) {
	if err := requireID("clanID", clanID); err != nil {
		return nil, err
	}
	p := route.Params{Path: path("groupId", clanID), Query: q.values()}
	return fetch(ctx, c, route.OpGetClanLeaderboards, p, "", raw)
}

// FetchVendors returns the vendors available to a character.
func (c *Client) FetchVendors(ctx context.Context, token Token, membershipID int64, membershipType enums.MembershipType, characterID int64, cs []enums.ComponentType, filter int) (entity.VendorsComponent, error) {
	q, err := components(cs)
	if err := check(err, requireToken(token), requireID("membershipID", membershipID), requireID("characterID", characterID)); err != nil {
		return entity.VendorsComponent{}, err
	}
	q.Set("filter", strconv.Itoa(filter))
	p := route.Params{
		Path:  path("membershipType", membershipType, "destinyMembershipId", membershipID, "characterId", characterID),
		Query: q,
	}
	return fetch(ctx, c, route.OpGetVendors, p, token, factory.DeserializeVendors)
}

func (c *Client) FetchVendor(ctx context.Context, token Token, membershipID int64, membershipType enums.MembershipType, characterID int64, vendorHash uint32, cs []enums.ComponentType) (entity.VendorsComponent, error) {
	q, err := components(cs)
	if err := check(err, requireToken(token), requireID("membershipID", membershipID), requireID("characterID", characterID)); err != nil {
		return entity.VendorsComponent{}, err
	}
	p := route.Params{
		Path:  path("membershipType", membershipType, "destinyMembershipId", membershipID, "characterId", characterID, "vendorHash", vendorHash),
		Query: q,
	}
	return fetch(ctx, c, route.OpGetVendor, p, token, factory.DeserializeVendor)
}

func (c *Client) FetchPublicVendors(ctx context.Context, cs []enums.ComponentType) (entity.VendorsComponent, error) {
	q, err := components(cs)
	if err != nil {
		return entity.VendorsComponent{}, err
	}
	return fetch(ctx, c, route.OpGetPublicVendors, route.Params{Query: q}, "", factory.DeserializeVendors)
}

func (c *Client) FetchCollectibleNodeDetails(ctx context.Context, token Token, membershipID int64, membershipType enums.MembershipType, characterID int64, nodeHash uint32, cs []enums.ComponentType) (entity.CharacterComponent, error) {
	q, err := components(cs)
	if err := check(err, requireID("membershipID", membershipID), requireID("characterID", characterID)); err != nil {
		return entity.CharacterComponent{}, err
	}
	p := route.Params{
		Path: path("membershipType", membershipType, "destinyMembershipId", membershipID,
			"characterId", characterID, "collectiblePresentationNodeHash", nodeHash),
		Query: q,
	}
	return fetch(ctx, c, route.OpGetCollectibleNodeDetails, p, token, func(raw json.RawMessage) (entity.CharacterComponent, error) {
		return factory.DeserializeCharacterComponent(raw, cs)
	})
}

// SearchEntities searches definitions of entityType by name.
func (c *Client) SearchEntities(ctx context.Context, name, entityType string, page int) (factory.Page[entity.SearchableEntity], error) {
	if err := check(requireString("name", name), requireString("entityType", entityType)); err != nil {
		return factory.Page[entity.SearchableEntity]{}, err
	}
	p := route.Params{
		Path:  path("type", entityType, "searchTerm", name),
		Query: url.Values{"page": {strconv.Itoa(page)}},
	}
	return fetch(ctx, c, route.OpSearchDestinyEntities, p, "", factory.DeserializeSearchableEntities)
}

// FetchDefinition returns the raw definition of entityType with hash.
func (c *Client) FetchDefinition(ctx context.Context, entityType string, hash uint32) (json.RawMessage, error) {
	if err := requireString("entityType", entityType); err != nil {
		return nil, err
	}
	if hash == 0 {
		return nil, apierror.InvalidArgument("hash must not be zero")
	}
	p := route.Params{Path: path("entityType", entityType, "hashIdentifier", hash)}
	return c.rest.Do(ctx, route.OpGetDestinyEntityDefinition, p, "")
}

func (c *Client) FetchInventoryItem(ctx context.Context, hash uint32) (entity.InventoryEntity, error) {
	data, err := c.FetchDefinition(ctx, entityInventoryItem, hash)
	if err != nil {
		return entity.InventoryEntity{}, err
	}
	return factory.DeserializeInventoryEntity(data)
}

func (c *Client) FetchObjectiveEntity(ctx context.Context, hash uint32) (entity.ObjectiveEntity, error) {
	data, err := c.FetchDefinition(ctx, entityObjective, hash)
	if err != nil {
		return entity.ObjectiveEntity{}, err
	}
	return factory.DeserializeObjectiveEntity(data)
}

// FetchEntity returns any definition with its raw JSON kept.
func (c *Client) FetchEntity(ctx context.Context, entityType string, hash uint32) (entity.Entity, error) {
	data, err := c.FetchDefinition(ctx, entityType, hash)
	if err != nil {
		return entity.Entity{}, err
	}
	return factory.DeserializeEntity(data)
}

func (c *Client) FetchPublicMilestones(ctx context.Context) (map[int]entity.Milestone, error) {
	return fetch(ctx, c, route.OpGetPublicMilestones, route.Params{}, "", factory.DeserializePublicMilestones)
}

func (c *Client) FetchPublicMilestoneContent(ctx context.Context, milestoneHash uint32) (entity.MilestoneContent, error) {
	if milestoneHash == 0 {
		return entity.MilestoneContent{}, apierror.InvalidArgument("milestone hash must not be zero")
	}
	p := route.Params{Path: path("milestoneHash", milestoneHash)}
	return fetch(ctx, c, route.OpGetPublicMilestoneContent, p, "", factory.DeserializeMilestoneContent)
}
