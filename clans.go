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
)

// FetchClan looks a clan up by its exact name.
func (c *Client) FetchClan(ctx context.Context, name string, token Token) (entity.Clan, error) {
	if err := requireString("name", name); err != nil {
		return entity.Clan{}, err
	}
	p := route.Params{Path: path("groupName", name, "groupType", enums.GroupTypeClan)}
	return fetch(ctx, c, route.OpGetGroupByName, p, token, factory.DeserializeClan)
}

func (c *Client) FetchClanFromID(ctx context.Context, id int64, token Token) (entity.Clan, error) {
	if err := requireID("id", id); err != nil {
		return entity.Clan{}, err
	}
	p := route.Params{Path: path("groupId", id)}
	return fetch(ctx, c, route.OpGetGroup, p, token, factory.DeserializeClan)
}

type MemberQuery struct {
	// Type filters by member type. ClanMemberNone returns everyone.
	Type enums.ClanMemberType
	Name string
}

// FetchClanMembers iterates the members of a clan, starting at page 1.
func (c *Client) FetchClanMembers(ctx context.Context, clanID int64, q MemberQuery) *iterator.Iterator[entity.ClanMember] {
	if err := requireID("clanID", clanID); err != nil {
		return failed[entity.ClanMember](err)
	}
	return paged(ctx, 1, func(ctx context.Context, page int) (factory.Page[entity.ClanMember], error) {
		v := pageQuery(page)
		v.Set("memberType", strconv.Itoa(int(q.Type)))
		if q.Name != "" {
			v.Set("nameSearch", q.Name)
		}
		p := route.Params{Path: path("groupId", clanID), Query: v}
		return fetch(ctx, c, route.OpGetMembersOfGroup, p, "", factory.DeserializeClanMembers)
	})
}

func (c *Client) FetchClanBannedMembers(ctx context.Context, token Token, clanID int64) *iterator.Iterator[entity.ClanBan] {
	if err := check(requireToken(token), requireID("clanID", clanID)); err != nil {
		return failed[entity.ClanBan](err)
	}
	return paged(ctx, 1, func(ctx context.Context, page int) (factory.Page[entity.ClanBan], error) {
		p := route.Params{Path: path("groupId", clanID), Query: pageQuery(page)}
		return fetch(ctx, c, route.OpGetBannedMembersOfGroup, p, token, factory.DeserializeClanBans)
	})
}

func (c *Client) FetchClanPendingMembers(ctx context.Context, token Token, clanID int64) *iterator.Iterator[entity.PendingMember] {
	return c.pendingMembers(ctx, route.OpGetPendingMemberships, token, clanID)
}

func (c *Client) FetchClanInvitedMembers(ctx context.Context, token Token, clanID int64) *iterator.Iterator[entity.PendingMember] {
	return c.pendingMembers(ctx, route.OpGetInvitedIndividuals, token, clanID)
}

func (c *Client) pendingMembers(ctx context.Context, op route.Op, token Token, clanID int64) *iterator.Iterator[entity.PendingMember] {
	if err := check(requireToken(token), requireID("clanID", clanID)); err != nil {
		return failed[entity.PendingMember](err)
	}
	return paged(ctx, 1, func(ctx context.Context, page int) (factory.Page[entity.PendingMember], error) {
		p := route.Params{Path: path("groupId", clanID), Query: pageQuery(page)}
		return fetch(ctx, c, op, p, token, factory.DeserializePendingMembers)
	})
}

func pageQuery(page int) url.Values {
	return url.Values{"currentpage": {strconv.Itoa(page)}}
}

func (c *Client) FetchClanConversations(ctx context.Context, clanID int64) ([]entity.ClanConversation, error) {
	if err := requireID("clanID", clanID); err != nil {
		return nil, err
	}
	p := route.Params{Path: path("groupId", clanID)}
	return fetch(ctx, c, route.OpGetGroupOptionalConversations, p, "", factory.DeserializeClanConversations)
}

// FetchClanAdmins returns the admins and the founder of a clan.
func (c *Client) FetchClanAdmins(ctx context.Context, clanID int64) ([]entity.ClanMember, error) {
	if err := requireID("clanID", clanID); err != nil {
		return nil, err
	}
	p := route.Params{Path: path("groupId", clanID)}
	return fetch(ctx, c, route.OpGetAdminsAndFounderOfGroup, p, "", factory.DeserializeClanAdmins)
}

func (c *Client) SearchGroup(ctx context.Context, q GroupQuery) (factory.Page[entity.Clan], error) {
	return fetch(ctx, c, route.OpGroupSearch, route.Params{Body: q}, "", factory.DeserializeClanSearch)
}

func (c *Client) FetchGroupsForMember(ctx context.Context, membershipID int64, membershipType enums.MembershipType, filter enums.GroupsForMemberFilter, groupType enums.GroupType) ([]entity.GroupMember, error) {
	return c.groupsForMember(ctx, route.OpGetGroupsForMember, membershipID, membershipType, filter, groupType)
}

// FetchPotentialGroupsForMember returns groups the member applied to or was
// invited to.
func (c *Client) FetchPotentialGroupsForMember(ctx context.Context, membershipID int64, membershipType enums.MembershipType, filter enums.GroupsForMemberFilter, groupType enums.GroupType) ([]entity.GroupMember, error) {
	return c.groupsForMember(ctx, route.OpGetPotentialGroupsForMember, membershipID, membershipType, filter, groupType)
}

func (c *Client) groupsForMember(ctx context.Context, op route.Op, membershipID int64, membershipType enums.MembershipType, filter enums.GroupsForMemberFilter, groupType enums.GroupType) ([]entity.GroupMember, error) {
	if err := requireID("membershipID", membershipID); err != nil {
		return nil, err
	}
	p := route.Params{Path: path("membershipType", membershipType, "membershipId", membershipID, "filter", filter, "groupType", groupType)}
	return fetch(ctx, c, op, p, "", factory.DeserializeGroupMembers)
}

func (c *Client) FetchClanWeeklyRewards(ctx context.Context, clanID int64) (entity.ClanRewards, error) {
	if err := requireID("clanID", clanID); err != nil {
		return entity.ClanRewards{}, err
	}
	p := route.Params{Path: path("groupId", clanID)}
	return fetch(ctx, c, route.OpGetClanWeeklyRewardState, p, "", factory.DeserializeClanRewards)
}

func memberParams(clanID, membershipID int64, membershipType enums.MembershipType) (route.Params, error) {
	if err := check(requireID("clanID", clanID), requireID("membershipID", membershipID)); err != nil {
		return route.Params{}, err
	}
	return route.Params{Path: path("groupId", clanID, "membershipType", membershipType, "membershipId", membershipID)}, nil
}

// BanClanMember bans a member for length days. Zero bans permanently.
func (c *Client) BanClanMember(ctx context.Context, token Token, clanID, membershipID int64, membershipType enums.MembershipType, length int, comment string) error {
	p, err := memberParams(clanID, membershipID, membershipType)
	if err != nil {
		return err
	}
	p.Body = map[string]any{"comment": comment, "length": length}
	return c.exec(ctx, route.OpBanMember, p, token)
}

func (c *Client) UnbanClanMember(ctx context.Context, token Token, clanID, membershipID int64, membershipType enums.MembershipType) error {
	p, err := memberParams(clanID, membershipID, membershipType)
	if err != nil {
		return err
	}
	return c.exec(ctx, route.OpUnbanMember, p, token)
}

func (c *Client) KickClanMember(ctx context.Context, token Token, clanID, membershipID int64, membershipType enums.MembershipType) error {
	p, err := memberParams(clanID, membershipID, membershipType)
	if err != nil {
		return err
	}
	return c.exec(ctx, route.OpKickMember, p, token)
}

// ClanEdit holds the clan fields to change. Nil fields are left as they are.
type ClanEdit struct {
	Name                               *string                 `json:"name,omitempty"`
	About                              *string                 `json:"about,omitempty"`
	Motto                              *string                 `json:"motto,omitempty"`
	Theme                              *string                 `json:"theme,omitempty"`
	AvatarImageIndex                   *int                    `json:"avatarImageIndex,omitempty"`
	Tags                               *string                 `json:"tags,omitempty"`
	IsPublic                           *bool                   `json:"isPublic,omitempty"`
	MembershipOption                   *enums.MembershipOption `json:"membershipOption,omitempty"`
	IsPublicTopicAdminOnly             *bool                   `json:"isPublicTopicAdminOnly,omitempty"`
	AllowChat                          *bool                   `json:"allowChat,omitempty"`
	ChatSecurity                       *enums.ChatSecurity     `json:"chatSecurity,omitempty"`
	CallSign                           *string                 `json:"callsign,omitempty"`
	Locale                             *string                 `json:"locale,omitempty"`
	Homepage                           *int                    `json:"homepage,omitempty"`
	EnableInvitationMessagingForAdmins *bool                   `json:"enableInvitationMessagingForAdmins,omitempty"`
	DefaultPublicity                   *int                    `json:"defaultPublicity,omitempty"`
}

func (c *Client) EditClan(ctx context.Context, token Token, clanID int64, edit ClanEdit) error {
	if err := requireID("clanID", clanID); err != nil {
		return err
	}
	return c.exec(ctx, route.OpEditGroup, route.Params{Path: path("groupId", clanID), Body: edit}, token)
}

// ClanOptionsEdit changes founder options. Nil fields are left as they are.
type ClanOptionsEdit struct {
	InvitePermissionOverride         *bool `json:"InvitePermissionOverride,omitempty"`
	UpdateCulturePermissionOverride  *bool `json:"UpdateCulturePermissionOverride,omitempty"`
	HostGuidedGamePermissionOverride *int  `json:"HostGuidedGamePermissionOverride,omitempty"`
	UpdateBannerPermissionOverride   *bool `json:"UpdateBannerPermissionOverride,omitempty"`
	JoinLevel                        *int  `json:"JoinLevel,omitempty"`
}

func (c *Client) EditClanOptions(ctx context.Context, token Token, clanID int64, edit ClanOptionsEdit) error {
	if err := requireID("clanID", clanID); err != nil {
		return err
	}
	return c.exec(ctx, route.OpEditFounderOptions, route.Params{Path: path("groupId", clanID), Body: edit}, token)
}

func (c *Client) ApproveAllPendingGroupUsers(ctx context.Context, token Token, clanID int64, message string) error {
	if err := requireID("clanID", clanID); err != nil {
		return err
	}
	p := route.Params{Path: path("groupId", clanID), Body: map[string]any{"message": message}}
	return c.exec(ctx, route.OpApproveAllPending, p, token)
}

func (c *Client) DenyAllPendingGroupUsers(ctx context.Context, token Token, clanID int64, message string) error {
	if err := requireID("clanID", clanID); err != nil {
		return err
	}
	p := route.Params{Path: path("groupId", clanID), Body: map[string]any{"message": message}}
	return c.exec(ctx, route.OpDenyAllPending, p, token)
}

// Membership identifies a platform membership in request bodies.
type Membership struct {
	ID   int64                `json:"membershipId,string"`
	Type enums.MembershipType `json:"membershipType"`
}

func (c *Client) ApprovePendingGroupUsers(ctx context.Context, token Token, clanID int64, members []Membership, message string) error {
	if err := requireID("clanID", clanID); err != nil {
		return err
	}
	for _, m := range members {
		if err := requireID("membershipID", m.ID); err != nil {
			return err
		}
	}
	p := route.Params{
		Path: path("groupId", clanID),
		Body: map[string]any{"memberships": members, "message": message},
	}
	return c.exec(ctx, route.OpApprovePendingForList, p, token)
}

func (c *Client) AddOptionalConversation(ctx context.Context, token Token, clanID int64, name string, security enums.ChatSecurity) error {
	if err := check(requireID("clanID", clanID), requireString("name", name)); err != nil {
		return err
	}
	p := route.Params{
		Path: path("groupId", clanID),
		Body: map[string]any{"chatName": name, "chatSecurity": security},
	}
	return c.exec(ctx, route.OpAddOptionalConversation, p, token)
}

func (c *Client) EditOptionalConversation(ctx context.Context, token Token, clanID, conversationID int64, name string, security enums.ChatSecurity, enabled bool) error {
	if err := check(requireID("clanID", clanID), requireID("conversationID", conversationID)); err != nil {
		return err
	}
	body := map[string]any{"chatEnabled": enabled, "chatSecurity": security}
	if name != "" {
		body["chatName"] = name
	}
	p := route.Params{Path: path("groupId", clanID, "conversationId", conversationID), Body: body}
	return c.exec(ctx, route.OpEditOptionalConversation, p, token)
}

func (c *Client) InviteMemberToGroup(ctx context.Context, token Token, clanID, membershipID int64, membershipType enums.MembershipType, message string) error {
	p, err := memberParams(clanID, membershipID, membershipType)
	if err != nil {
		return err
	}
	p.Body = map[string]any{"message": message}
	return c.exec(ctx, route.OpIndividualGroupInvite, p, token)
}

func (c *Client) CancelGroupMemberInvite(ctx context.Context, token Token, clanID, membershipID int64, membershipType enums.MembershipType) error {
	p, err := memberParams(clanID, membershipID, membershipType)
	if err != nil {
		return err
	}
	return c.exec(ctx, route.OpIndividualGroupInviteCancel, p, token)
}

// JoinClan applies to join a clan as the token's owner.
func (c *Client) JoinClan(ctx context.Context, token Token, clanID int64, membershipType enums.MembershipType, message string) error {
	if err := requireID("clanID", clanID); err != nil {
		return err
	}
	p := route.Params{
		Path: path("groupId", clanID, "membershipType", membershipType),
		Body: map[string]any{"message": message},
	}
	return c.exec(ctx, route.OpApplyToGroup, p, token)
}

func (c *Client) LeaveClan(ctx context.Context, token Token, clanID int64, membershipType enums.MembershipType) error {
	if err := requireID("clanID", clanID); err != nil {
		return err
	}
	p := route.Params{Path: path("groupId", clanID, "membershipType", membershipType)}
	return c.exec(ctx, route.OpLeaveGroup, p, token)
}

// AbdicateFoundership hands the clan over to another member.
func (c *Client) AbdicateFoundership(ctx context.Context, token Token, clanID, newFounderID int64, membershipType enums.MembershipType) error {
	if err := check(requireID("clanID", clanID), requireID("newFounderID", newFounderID)); err != nil {
		return err
	}
	p := route.Params{Path: path("groupId", clanID, "membershipType", membershipType, "founderIdNew", newFounderID)}
	return c.exec(ctx, route.OpAbdicateFoundership, p, token)
}
