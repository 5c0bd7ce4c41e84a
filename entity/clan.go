package entity

import (
	"time"

	"github.com/kofuk/bungie/enums"
)

type ClanFeatures struct {
	MaxMembers               int
	MaxMembershipTypes       int
	CapabilitiesFeatures     int
	MembershipTypes          []enums.MembershipType
	InvitePermissions        bool
	UpdateBannerPermissions  bool
	UpdateCulturePermissions bool
	JoinLevel                enums.ClanMemberType
}

type ClanMember struct {
	GroupID    int64
	MemberType enums.ClanMemberType
	IsOnline   bool
	LastOnline time.Time
	JoinedAt   time.Time
	Destiny    DestinyMembership
	Bungie     *PartialBungieUser
}

func (m ClanMember) IsAdmin() bool {
	return m.MemberType == enums.ClanMemberAdmin
}

func (m ClanMember) IsFounder() bool {
	return m.MemberType == enums.ClanMemberFounder
}

type Clan struct {
	ID                  int64
	Name                string
	Type                enums.GroupType
	CreatedAt           time.Time
	EditedAt            *time.Time
	MemberCount         int
	About               UndefinedOr[string]
	Motto               UndefinedOr[string]
	IsPublic            bool
	Banner              Image
	Avatar              Image
	Tags                []string
	Features            ClanFeatures
	Owner               *ClanMember
	MembershipOption    enums.MembershipOption
	CallSign            UndefinedOr[string]
	AllowChat           bool
	ChatSecurity        enums.ChatSecurity
	ConversationID      *int64
	Theme               string
	Locale              string
	IsDefaultPostPublic bool
	HomepageType        int
	// EnableInviteMessagingForAdmins is undocumented upstream and kept as
	// reported.
	EnableInviteMessagingForAdmins *bool
	IsPublicTopicAdminOnly         bool
	BannerPermissionOverride       bool

	// CurrentUserMembership is keyed by the membership type of the
	// authenticated user and is only set for authenticated requests.
	CurrentUserMembership map[enums.MembershipType]ClanMember
}

// GroupMember is a group seen from one of its members.
type GroupMember struct {
	JoinDate   time.Time
	GroupID    int64
	MemberType enums.ClanMemberType
	IsOnline   bool
	LastOnline time.Time
	Member     DestinyMembership
	Group      Clan
}

type ClanConversation struct {
	ID          int64
	GroupID     int64
	Name        UndefinedOr[string]
	ChatEnabled bool
	Security    enums.ChatSecurity
}

type ClanBan struct {
	GroupID   int64
	CreatedAt time.Time
	Comment   UndefinedOr[string]
	Member    DestinyMembership
	Bungie    *PartialBungieUser
}

type PendingMember struct {
	GroupID      int64
	ResolveDate  *time.Time
	ResolveState int
	CreationDate time.Time
	Message      UndefinedOr[string]
	Member       DestinyMembership
	Bungie       *PartialBungieUser
}

// ClanRewards is the weekly clan engram state.
type ClanRewards struct {
	MilestoneHash int
	StartDate     *time.Time
	EndDate       *time.Time
	Rewards       []ClanRewardCategory
}

type ClanRewardCategory struct {
	CategoryHash int
	Entries      []ClanRewardEntry
}

type ClanRewardEntry struct {
	EntryHash int
	Earned    bool
	Redeemed  bool
}
