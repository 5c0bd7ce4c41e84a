package bungie

import (
	"context"
	"net/url"
	"strconv"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/enums"
	"github.com/kofuk/bungie/factory"
	"github.com/kofuk/bungie/internal/route"
	"github.com/kofuk/bungie/iterator"
	"golang.org/x/sync/errgroup"
)

// maxFanOut bounds the concurrent calls of FetchBungieUsersByIDs. The REST
// client bounds the total anyway.
const maxFanOut = 10

func (c *Client) FetchBungieUser(ctx context.Context, id int64) (entity.BungieUser, error) {
	if err := requireID("id", id); err != nil {
		return entity.BungieUser{}, err
	}
	return fetch(ctx, c, route.OpGetBungieNetUserByID, route.Params{Path: path("id", id)}, "", factory.DeserializeBungieUser)
}

// FetchBungieUsersByIDs fetches users concurrently. The result keeps the
// order of ids; the first failure cancels the rest.
func (c *Client) FetchBungieUsersByIDs(ctx context.Context, ids []int64) ([]entity.BungieUser, error) {
	users := make([]entity.BungieUser, len(ids))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxFanOut)
	for i, id := range ids {
		g.Go(func() error {
			u, err := c.FetchBungieUser(ctx, id)
			if err != nil {
				return err
			}
			users[i] = u
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return users, nil
}

// SearchUsers lists the users whose global name starts with name, fetching
// pages as the iterator is read.
func (c *Client) SearchUsers(ctx context.Context, name string) *iterator.Iterator[entity.SearchableDestinyUser] {
	if err := requireString("name", name); err != nil {
		return failed[entity.SearchableDestinyUser](err)
	}
	body := map[string]string{"displayNamePrefix": name}
	return paged(ctx, 0, func(ctx context.Context, page int) (factory.Page[entity.SearchableDestinyUser], error) {
		return fetch(ctx, c, route.OpSearchByGlobalName, route.Params{Path: path("page", page), Body: body}, "", factory.DeserializeSearchedUsers)
	})
}

func (c *Client) FetchUserThemes(ctx context.Context) ([]entity.UserThemes, error) {
	return fetch(ctx, c, route.OpGetAvailableThemes, route.Params{}, "", factory.DeserializeUserThemes)
}

func (c *Client) FetchSanitizedMembership(ctx context.Context, membershipID int64) (entity.SanitizedMembership, error) {
	if err := requireID("membershipID", membershipID); err != nil {
		return entity.SanitizedMembership{}, err
	}
	return fetch(ctx, c, route.OpGetSanitizedPlatformNames, route.Params{Path: path("membershipId", membershipID)}, "", factory.DeserializeSanitizedMembership)
}

// FetchHardLinkedCredentials resolves a platform credential, such as a
// SteamID64, to its Destiny membership.
func (c *Client) FetchHardLinkedCredentials(ctx context.Context, credential int64, credentialType enums.CredentialType) (entity.HardLinkedMembership, error) {
	if err := requireID("credential", credential); err != nil {
		return entity.HardLinkedMembership{}, err
	}
	if credentialType == enums.CredentialNone {
		credentialType = enums.CredentialSteamID
	}
	p := route.Params{Path: path("crType", credentialType, "credential", credential)}
	return fetch(ctx, c, route.OpGetMembershipFromCredential, p, "", factory.DeserializeHardLinkedMembership)
}

func (c *Client) FetchMembershipFromID(ctx context.Context, id int64, membershipType enums.MembershipType) (entity.User, error) {
	if err := requireID("id", id); err != nil {
		return entity.User{}, err
	}
	if membershipType == enums.MembershipTypeNone {
		membershipType = enums.MembershipTypeAll
	}
	p := route.Params{Path: path("membershipId", id, "membershipType", membershipType)}
	return fetch(ctx, c, route.OpGetMembershipsByID, p, "", factory.DeserializeUser)
}

func (c *Client) FetchCurrentUserMemberships(ctx context.Context, token Token) (entity.User, error) {
	return fetch(ctx, c, route.OpGetMembershipsForCurrentUser, route.Params{}, token, factory.DeserializeUser)
}

// FetchLinkedProfiles returns the profiles linked to a membership. all also
// includes profiles hidden by cross save.
func (c *Client) FetchLinkedProfiles(ctx context.Context, membershipID int64, membershipType enums.MembershipType, all bool) (entity.LinkedProfile, error) {
	if err := requireID("membershipID", membershipID); err != nil {
		return entity.LinkedProfile{}, err
	}
	p := route.Params{
		Path:  path("membershipType", membershipType, "destinyMembershipId", membershipID),
		Query: url.Values{"getAllMemberships": {strconv.FormatBool(all)}},
	}
	return fetch(ctx, c, route.OpGetLinkedProfiles, p, "", factory.DeserializeLinkedProfiles)
}

func (c *Client) FetchUserCredentials(ctx context.Context, token Token, membershipID int64) ([]entity.UserCredentials, error) {
	if err := requireID("membershipID", membershipID); err != nil {
		return nil, err
	}
	p := route.Params{Path: path("membershipId", membershipID)}
	return fetch(ctx, c, route.OpGetCredentialTypesForAccount, p, token, factory.DeserializeUserCredentials)
}
