package bungie

import (
	"context"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/factory"
	"github.com/kofuk/bungie/internal/route"
)

func (c *Client) FetchFriends(ctx context.Context, token Token) ([]entity.Friend, error) {
	return fetch(ctx, c, route.OpGetFriendList, route.Params{}, token, factory.DeserializeFriends)
}

// FetchFriendRequests returns incoming and outgoing requests.
func (c *Client) FetchFriendRequests(ctx context.Context, token Token) (entity.FriendRequestView, error) {
	return fetch(ctx, c, route.OpGetFriendRequestList, route.Params{}, token, factory.DeserializeFriendRequests)
}

func (c *Client) SendFriendRequest(ctx context.Context, token Token, membershipID int64) error {
	return c.friendAction(ctx, route.OpIssueFriendRequest, token, membershipID)
}

func (c *Client) AcceptFriendRequest(ctx context.Context, token Token, membershipID int64) error {
	return c.friendAction(ctx, route.OpAcceptFriendRequest, token, membershipID)
}

func (c *Client) DeclineFriendRequest(ctx context.Context, token Token, membershipID int64) error {
	return c.friendAction(ctx, route.OpDeclineFriendRequest, token, membershipID)
}

func (c *Client) RemoveFriend(ctx context.Context, token Token, membershipID int64) error {
	return c.friendAction(ctx, route.OpRemoveFriend, token, membershipID)
}

// RemoveFriendRequest withdraws a request the token's owner sent.
func (c *Client) RemoveFriendRequest(ctx context.Context, token Token, membershipID int64) error {
	return c.friendAction(ctx, route.OpRemoveFriendRequest, token, membershipID)
}

func (c *Client) friendAction(ctx context.Context, op route.Op, token Token, membershipID int64) error {
	if err := requireID("membershipID", membershipID); err != nil {
		return err
	}
	return c.exec(ctx, op, route.Params{Path: path("membershipId", membershipID)}, token)
}
