package bungie

import (
	"context"

	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/internal/route"
)

// LoadoutStyle picks the color, icon and name shown for a loadout slot.
type LoadoutStyle struct {
	ColorHash uint32 `json:"colorHash"`
	IconHash  uint32 `json:"iconHash"`
	NameHash  uint32 `json:"nameHash"`
}

func loadoutBody(t ItemTarget, index int, style *LoadoutStyle) (map[string]any, error) {
	if err := t.check(); err != nil {
		return nil, err
	}
	if index < 0 {
		return nil, apierror.InvalidArgument("loadout index must not be negative, got %d", index)
	}
	body := map[string]any{
		"loadoutIndex":   index,
		"characterId":    str(t.CharacterID),
		"membershipType": t.MembershipType,
	}
	if style != nil {
		body["colorHash"] = style.ColorHash
		body["iconHash"] = style.IconHash
		body["nameHash"] = style.NameHash
	}
	return body, nil
}

func (c *Client) EquipLoadout(ctx context.Context, token Token, t ItemTarget, index int) error {
	body, err := loadoutBody(t, index, nil)
	if err != nil {
		return err
	}
	return c.exec(ctx, route.OpEquipLoadout, route.Params{Body: body}, token)
}

// SnapshotLoadout saves the character's current gear into slot index.
func (c *Client) SnapshotLoadout(ctx context.Context, token Token, t ItemTarget, index int, style LoadoutStyle) error {
	body, err := loadoutBody(t, index, &style)
	if err != nil {
		return err
	}
	return c.exec(ctx, route.OpSnapshotLoadout, route.Params{Body: body}, token)
}

func (c *Client) UpdateLoadout(ctx context.Context, token Token, t ItemTarget, index int, style LoadoutStyle) error {
	body, err := loadoutBody(t, index, &style)
	if err != nil {
		return err
	}
	return c.exec(ctx, route.OpUpdateLoadoutIdentifiers, route.Params{Body: body}, token)
}

func (c *Client) ClearLoadout(ctx context.Context, token Token, t ItemTarget, index int) error {
	body, err := loadoutBody(t, index, nil)
	if err != nil {
		return err
	}
	return c.exec(ctx, route.OpClearLoadout, route.Params{Body: body}, token)
}
