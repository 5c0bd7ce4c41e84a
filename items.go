package bungie

import (
	"context"

	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/enums"
	"github.com/kofuk/bungie/internal/route"
)

// ItemTarget names the character an item action applies to.
type ItemTarget struct {
	CharacterID    int64
	MembershipType enums.MembershipType
}

func (t ItemTarget) check() error {
	return requireID("characterID", t.CharacterID)
}

type itemAction struct {
	ItemID         int64                `json:"itemId,string,omitempty"`
	ItemHash       uint32               `json:"itemReferenceHash,omitempty"`
	StackSize      int                  `json:"stackSize,omitempty"`
	ToVault        *bool                `json:"transferToVault,omitempty"`
	State          *bool                `json:"state,omitempty"`
	CharacterID    int64                `json:"characterId,string"`
	MembershipType enums.MembershipType `json:"membershipType"`
}

// TransferItem moves a stack between a character and the vault.
func (c *Client) TransferItem(ctx context.Context, token Token, t ItemTarget, itemID int64, itemHash uint32, stackSize int, toVault bool) error {
	if err := check(requireToken(token), t.check()); err != nil {
		return err
	}
	if stackSize <= 0 {
		stackSize = 1
	}
	body := itemAction{
		ItemID:         itemID,
		ItemHash:       itemHash,
		StackSize:      stackSize,
		ToVault:        &toVault,
		CharacterID:    t.CharacterID,
		MembershipType: t.MembershipType,
	}
	return c.exec(ctx, route.OpTransferItem, route.Params{Body: body}, token)
}

// PullItem takes an item out of the postmaster.
func (c *Client) PullItem(ctx context.Context, token Token, t ItemTarget, itemID int64, itemHash uint32, stackSize int) error {
	if err := check(requireToken(token), t.check()); err != nil {
		return err
	}
	if stackSize <= 0 {
		stackSize = 1
	}
	body := itemAction{
		ItemID:         itemID,
		ItemHash:       itemHash,
		StackSize:      stackSize,
		CharacterID:    t.CharacterID,
		MembershipType: t.MembershipType,
	}
	return c.exec(ctx, route.OpPullFromPostmaster, route.Params{Body: body}, token)
}

func (c *Client) EquipItem(ctx context.Context, token Token, t ItemTarget, itemID int64) error {
	if err := check(requireToken(token), t.check(), requireID("itemID", itemID)); err != nil {
		return err
	}
	body := itemAction{ItemID: itemID, CharacterID: t.CharacterID, MembershipType: t.MembershipType}
	return c.exec(ctx, route.OpEquipItem, route.Params{Body: body}, token)
}

// EquipItems equips several items at once. Bungie reports per-item results
// which are not surfaced here.
func (c *Client) EquipItems(ctx context.Context, token Token, t ItemTarget, itemIDs []int64) error {
	if err := check(requireToken(token), t.check()); err != nil {
		return err
	}
	if len(itemIDs) == 0 {
		return apierror.InvalidArgument("at least one item id is required")
	}
	ids := make([]string, 0, len(itemIDs))
	for _, id := range itemIDs {
		ids = append(ids, str(id))
	}
	body := map[string]any{
		"itemIds":        ids,
		"characterId":    str(t.CharacterID),
		"membershipType": t.MembershipType,
	}
	return c.exec(ctx, route.OpEquipItems, route.Params{Body: body}, token)
}

func (c *Client) SetItemLockState(ctx context.Context, token Token, t ItemTarget, itemID int64, locked bool) error {
	if err := check(requireToken(token), t.check(), requireID("itemID", itemID)); err != nil {
		return err
	}
	body := itemAction{ItemID: itemID, State: &locked, CharacterID: t.CharacterID, MembershipType: t.MembershipType}
	return c.exec(ctx, route.OpSetItemLockState, route.Params{Body: body}, token)
}

func (c *Client) SetQuestTrackState(ctx context.Context, token Token, t ItemTarget, itemID int64, tracked bool) error {
	if err := check(requireToken(token), t.check(), requireID("itemID", itemID)); err != nil {
		return err
	}
	body := itemAction{ItemID: itemID, State: &tracked, CharacterID: t.CharacterID, MembershipType: t.MembershipType}
	return c.exec(ctx, route.OpSetQuestTrackedState, route.Params{Body: body}, token)
}

type Plug struct {
	SocketIndex     int    `json:"socketIndex"`
	SocketArrayType int    `json:"socketArrayType"`
	PlugItemHash    uint32 `json:"plugItemHash"`
}

// InsertSocketPlug inserts a plug that costs materials. actionToken comes
// from Bungie's action request flow.
func (c *Client) InsertSocketPlug(ctx context.Context, token Token, t ItemTarget, actionToken string, itemID int64, plug Plug) error {
	if err := check(requireToken(token), t.check(), requireString("actionToken", actionToken), requireID("itemID", itemID)); err != nil {
		return err
	}
	body := map[string]any{
		"actionToken":    actionToken,
		"itemInstanceId": str(itemID),
		"plug":           plug,
		"characterId":    str(t.CharacterID),
		"membershipType": t.MembershipType,
	}
	return c.exec(ctx, route.OpInsertSocketPlug, route.Params{Body: body}, token)
}

func (c *Client) InsertSocketPlugFree(ctx context.Context, token Token, t ItemTarget, itemID int64, plug Plug) error {
	if err := check(requireToken(token), t.check(), requireID("itemID", itemID)); err != nil {
		return err
	}
	body := map[string]any{
		"itemId":         str(itemID),
		"plug":           plug,
		"characterId":    str(t.CharacterID),
		"membershipType": t.MembershipType,
	}
	return c.exec(ctx, route.OpInsertSocketPlugFree, route.Params{Body: body}, token)
}
