package entity

import (
	"fmt"
	"strconv"
	"time"

	"github.com/kofuk/bungie/enums"
)

// UserLike is implemented by every entity that identifies a player.
type UserLike interface {
	MemberID() int64
	MemberName() UndefinedOr[string]
	MemberCode() *int
	MemberType() enums.MembershipType
	UniqueName() string
	Link() string
}

func uniqueName(name UndefinedOr[string], code *int) string {
	n := name.Or("")
	if code == nil {
		return n
	}
	return fmt.Sprintf("%s#%04d", n, *code)
}

func profileLink(t enums.MembershipType, id int64) string {
	return fmt.Sprintf("%s/7/en/User/Profile/%d/%d", BaseURL, int(t), id)
}

type BungieUser struct {
	ID           int64
	Name         UndefinedOr[string]
	Code         *int
	DisplayName  UndefinedOr[string]
	CreatedAt    time.Time
	UpdatedAt    *time.Time
	IsDeleted    bool
	About        UndefinedOr[string]
	Locale       string
	Picture      Image
	ProfileTheme string
	StatusText   UndefinedOr[string]
	StatusDate   *time.Time
	ShowActivity *bool

	PSNName      *string
	SteamName    *string
	XboxName     *string
	StadiaName   *string
	BlizzardName *string
	EGSName      *string
	TwitchName   *string
}

func (u BungieUser) MemberID() int64                  { return u.ID }
func (u BungieUser) MemberName() UndefinedOr[string]  { return u.Name }
func (u BungieUser) MemberCode() *int                 { return u.Code }
func (u BungieUser) MemberType() enums.MembershipType { return enums.MembershipTypeBungie }

func (u BungieUser) UniqueName() string { return uniqueName(u.Name, u.Code) }

func (u BungieUser) Link() string {
	return profileLink(enums.MembershipTypeBungie, u.ID)
}

// PartialBungieUser is the reduced user object embedded in clan and friend
// payloads.
type PartialBungieUser struct {
	ID        int64
	Name      UndefinedOr[string]
	Code      *int
	Type      enums.MembershipType
	Types     []enums.MembershipType
	CrossSave enums.MembershipType
	Icon      Image
	IsPublic  bool
}

func (u PartialBungieUser) MemberID() int64                  { return u.ID }
func (u PartialBungieUser) MemberName() UndefinedOr[string]  { return u.Name }
func (u PartialBungieUser) MemberCode() *int                 { return u.Code }
func (u PartialBungieUser) MemberType() enums.MembershipType { return u.Type }
func (u PartialBungieUser) UniqueName() string               { return uniqueName(u.Name, u.Code) }
func (u PartialBungieUser) Link() string                     { return profileLink(u.Type, u.ID) }

type DestinyMembership struct {
	ID                int64
	Name              UndefinedOr[string]
	LastSeenName      string
	Code              *int
	Type              enums.MembershipType
	Types             []enums.MembershipType
	CrossSaveOverride enums.MembershipType
	Icon              Image
	IsPublic          bool
}

func (m DestinyMembership) MemberID() int64                  { return m.ID }
func (m DestinyMembership) MemberName() UndefinedOr[string]  { return m.Name }
func (m DestinyMembership) MemberCode() *int                 { return m.Code }
func (m DestinyMembership) MemberType() enums.MembershipType { return m.Type }
func (m DestinyMembership) UniqueName() string               { return uniqueName(m.Name, m.Code) }
func (m DestinyMembership) Link() string                     { return profileLink(m.Type, m.ID) }

// SearchableDestinyUser is one hit of a prefix user search.
type SearchableDestinyUser struct {
	Name               UndefinedOr[string]
	Code               *int
	BungieMembershipID *int64
	Memberships        []DestinyMembership
}

func (u SearchableDestinyUser) MemberID() int64 {
	if u.BungieMembershipID == nil {
		return 0
	}
	return *u.BungieMembershipID
}
func (u SearchableDestinyUser) MemberName() UndefinedOr[string] { return u.Name }
func (u SearchableDestinyUser) MemberCode() *int                { return u.Code }
func (u SearchableDestinyUser) MemberType() enums.MembershipType {
	return enums.MembershipTypeBungie
}
func (u SearchableDestinyUser) UniqueName() string { return uniqueName(u.Name, u.Code) }
func (u SearchableDestinyUser) Link() string {
	return profileLink(enums.MembershipTypeBungie, u.MemberID())
}

type HardLinkedMembership struct {
	ID            int64
	Type          enums.MembershipType
	CrossSaveType enums.MembershipType
}

type UserCredentials struct {
	Type         enums.CredentialType
	DisplayName  UndefinedOr[string]
	IsPublic     bool
	SelfAsString UndefinedOr[string]
}

// ID parses the credential identifier when it is numeric.
func (c UserCredentials) ID() (int64, bool) {
	s, ok := c.SelfAsString.Get()
	if !ok {
		return 0, false
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

type UserThemes struct {
	ID          int
	Name        UndefinedOr[string]
	Description UndefinedOr[string]
}

// SanitizedMembership maps platform names to their display names.
type SanitizedMembership struct {
	PSN      *string
	Xbox     *string
	Steam    *string
	Stadia   *string
	Twitch   *string
	Blizzard *string
	EGS      *string
}

type LinkedProfile struct {
	Profiles           []DestinyMembership
	BungieUser         *PartialBungieUser
	ProfilesWithErrors []DestinyMembership
}

// User is a Bungie.net account together with its Destiny memberships.
type User struct {
	Bungie              BungieUser
	Destiny             []DestinyMembership
	PrimaryMembershipID *int64
}
