package factory

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/enums"
)

// unixTime reads a unix timestamp in seconds, sent as a string or number.
func (r *reader) unixTime(o object, key string) time.Time {
	if !o.has(key) {
		return time.Time{}
	}
	sec := r.id(o, key)
	if sec == 0 {
		return time.Time{}
	}
	return time.Unix(sec, 0).UTC()
}

func clanFeatures(_ *reader, o object) entity.ClanFeatures {
	return entity.ClanFeatures{
		MaxMembers:               o.int("maximumMembers"),
		MaxMembershipTypes:       o.int("maximumMembershipsOfGroupType"),
		CapabilitiesFeatures:     o.int("capabilities"),
		MembershipTypes:          membershipTypes(o, "membershipTypes"),
		InvitePermissions:        o.bool("invitePermissionOverride"),
		UpdateBannerPermissions:  o.bool("updateBannerPermissionOverride"),
		UpdateCulturePermissions: o.bool("updateCulturePermissionOverride"),
		JoinLevel:                enums.ClanMemberType(o.int("joinLevel")),
	}
}

func clanMember(r *reader, o object) entity.ClanMember {
	return entity.ClanMember{
		GroupID:    r.id(o, "groupId"),
		MemberType: enums.ClanMemberType(o.int("memberType")),
		IsOnline:   o.bool("isOnline"),
		LastOnline: r.unixTime(o, "lastOnlineStatusChange"),
		JoinedAt:   r.time(o, "joinDate"),
		Destiny:    destinyMembership(r, o.obj("destinyUserInfo")),
		Bungie:     partialBungieUserPtr(r, o.obj("bungieNetUserInfo")),
	}
}

func DeserializeClanMember(raw json.RawMessage) (entity.ClanMember, error) {
	return decodeWith(raw, clanMember)
}

func DeserializeClanMembers(raw json.RawMessage) (Page[entity.ClanMember], error) {
	return decodeWith(raw, func(r *reader, o object) Page[entity.ClanMember] {
		return page(r, o, "results", clanMember)
	})
}

// DeserializeClanAdmins reads the admins and founder of a clan.
func DeserializeClanAdmins(raw json.RawMessage) ([]entity.ClanMember, error) {
	p, err := DeserializeClanMembers(raw)
	if err != nil {
		return nil, err
	}
	return p.Results, nil
}

// clan reads either a group response, whose attributes sit under "detail",
// or a bare group. When both are present the detail object wins.
func clan(r *reader, o object) entity.Clan {
	d := o
	if detail := o.obj("detail"); detail != nil {
		d = detail
	}
	info := d.obj("clanInfo")
	c := entity.Clan{
		ID:                             r.id(d, "groupId"),
		Name:                           d.str("name"),
		Type:                           enums.GroupType(d.int("groupType")),
		CreatedAt:                      r.time(d, "creationDate"),
		EditedAt:                       r.timePtr(d, "modificationDate"),
		MemberCount:                    d.int("memberCount"),
		About:                          d.undefined("about"),
		Motto:                          d.undefined("motto"),
		IsPublic:                       d.bool("isPublic"),
		Banner:                         d.image("bannerPath"),
		Avatar:                         d.image("avatarPath"),
		Tags:                           d.strings("tags"),
		Features:                       clanFeatures(r, d.obj("features")),
		MembershipOption:               enums.MembershipOption(d.int("membershipOption")),
		CallSign:                       info.undefined("clanCallsign"),
		AllowChat:                      d.bool("allowChat"),
		ChatSecurity:                   enums.ChatSecurity(d.int("chatSecurity")),
		ConversationID:                 r.idPtr(d, "conversationId"),
		Theme:                          d.str("theme"),
		Locale:                         d.str("locale"),
		IsDefaultPostPublic:            d.bool("isDefaultPostPublic"),
		HomepageType:                   d.int("homepage"),
		EnableInviteMessagingForAdmins: d.boolPtr("enableInvitationMessagingForAdmins"),
		IsPublicTopicAdminOnly:         d.bool("isPublicTopicAdminOnly"),
		BannerPermissionOverride:       d.obj("features").bool("updateBannerPermissionOverride"),
	}
	if f := o.obj("founder"); f != nil {
		m := clanMember(r, f)
		c.Owner = &m
	}
	if cur := o.obj("currentUserMemberMap"); cur != nil {
		c.CurrentUserMembership = make(map[enums.MembershipType]entity.ClanMember, len(cur))
		for k, v := range cur {
			m, ok := v.(map[string]any)
			if !ok {
				continue
			}
			t, err := strconv.Atoi(k)
			if err != nil {
				r.fail("currentUserMemberMap", err)
				continue
			}
			c.CurrentUserMembership[enums.MembershipType(t)] = clanMember(r, m)
		}
	}
	return c
}

func DeserializeClan(raw json.RawMessage) (entity.Clan, error) {
	return decodeWith(raw, clan)
}

// DeserializeClanSearch reads one page of a group search.
func DeserializeClanSearch(raw json.RawMessage) (Page[entity.Clan], error) {
	return decodeWith(raw, func(r *reader, o object) Page[entity.Clan] {
		return page(r, o, "results", clan)
	})
}

func groupMember(r *reader, o object) entity.GroupMember {
	m := o.obj("member")
	return entity.GroupMember{
		JoinDate:   r.time(m, "joinDate"),
		GroupID:    r.id(m, "groupId"),
		MemberType: enums.ClanMemberType(m.int("memberType")),
		IsOnline:   m.bool("isOnline"),
		LastOnline: r.unixTime(m, "lastOnlineStatusChange"),
		Member:     destinyMembership(r, m.obj("destinyUserInfo")),
		Group:      clan(r, o.obj("group")),
	}
}

// DeserializeGroupMembers reads the groups a member belongs to, or may
// belong to.
func DeserializeGroupMembers(raw json.RawMessage) ([]entity.GroupMember, error) {
	return decodeWith(raw, func(r *reader, o object) []entity.GroupMember {
		return listOf(r, o.arr("results"), groupMember)
	})
}

func clanConversation(r *reader, o object) entity.ClanConversation {
	return entity.ClanConversation{
		ID:          r.id(o, "conversationId"),
		GroupID:     r.id(o, "groupId"),
		Name:        o.undefined("chatName"),
		ChatEnabled: o.bool("chatEnabled"),
		Security:    enums.ChatSecurity(o.int("chatSecurity")),
	}
}

func DeserializeClanConversations(raw json.RawMessage) ([]entity.ClanConversation, error) {
	return decodeList(raw, clanConversation)
}

func clanBan(r *reader, o object) entity.ClanBan {
	return entity.ClanBan{
		GroupID:   r.id(o, "groupId"),
		CreatedAt: r.time(o, "dateBanned"),
		Comment:   o.undefined("comment"),
		Member:    destinyMembership(r, o.obj("destinyUserInfo")),
		Bungie:    partialBungieUserPtr(r, o.obj("bungieNetUserInfo")),
	}
}

func DeserializeClanBans(raw json.RawMessage) (Page[entity.ClanBan], error) {
	return decodeWith(raw, func(r *reader, o object) Page[entity.ClanBan] {
		return page(r, o, "results", clanBan)
	})
}

func pendingMember(r *reader, o object) entity.PendingMember {
	return entity.PendingMember{
		GroupID:      r.id(o, "groupId"),
		ResolveDate:  r.timePtr(o, "resolveDate"),
		ResolveState: o.int("resolveState"),
		CreationDate: r.time(o, "creationDate"),
		Message:      o.undefined("requestMessage"),
		Member:       destinyMembership(r, o.obj("destinyUserInfo")),
		Bungie:       partialBungieUserPtr(r, o.obj("bungieNetUserInfo")),
	}
}

func DeserializePendingMembers(raw json.RawMessage) (Page[entity.PendingMember], error) {
	return decodeWith(raw, func(r *reader, o object) Page[entity.PendingMember] {
		return page(r, o, "results", pendingMember)
	})
}

func rewardCategory(_ *reader, o object) entity.ClanRewardCategory {
	c := entity.ClanRewardCategory{CategoryHash: o.int("rewardCategoryHash")}
	for _, v := range o.arr("entries") {
		e, ok := v.(map[string]any)
		if !ok {
			continue
		}
		eo := object(e)
		c.Entries = append(c.Entries, entity.ClanRewardEntry{
			EntryHash: eo.int("rewardEntryHash"),
			Earned:    eo.bool("earned"),
			Redeemed:  eo.bool("redeemed"),
		})
	}
	return c
}

func DeserializeClanRewards(raw json.RawMessage) (entity.ClanRewards, error) {
	return decodeWith(raw, func(r *reader, o object) entity.ClanRewards {
		return entity.ClanRewards{
			MilestoneHash: o.int("milestoneHash"),
			StartDate:     r.timePtr(o, "startDate"),
			EndDate:       r.timePtr(o, "endDate"),
			Rewards:       listOf(r, o.arr("rewards"), rewardCategory),
		}
	})
}
