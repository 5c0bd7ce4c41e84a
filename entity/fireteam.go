package entity

import (
	"time"

	"github.com/kofuk/bungie/enums"
)

type Fireteam struct {
	ID                      int64
	GroupID                 int64
	Platform                enums.FireteamPlatform
	ActivityType            enums.FireteamActivity
	IsImmediate             bool
	OwnerID                 int64
	PlayerSlotCount         int
	AlternateSlotCount      *int
	AvailablePlayerSlots    int
	AvailableAlternateSlots int
	Title                   UndefinedOr[string]
	DateCreated             time.Time
	DateModified            *time.Time
	IsPublic                bool
	Locale                  string
	IsValid                 bool
	LastPlayerActivity      time.Time
	ScheduledTime           *time.Time
	DatePlayerModified      *time.Time
	TitleBeforeModeration   UndefinedOr[string]
}

type FireteamUser struct {
	Destiny                DestinyMembership
	FireteamDisplayName    UndefinedOr[string]
	FireteamMembershipType enums.MembershipType
}

type FireteamMember struct {
	User                     FireteamUser
	CharacterID              int64
	DateJoined               time.Time
	HasMicrophone            bool
	LastPlatformInviteDate   time.Time
	LastPlatformInviteResult int
}

type AvailableFireteam struct {
	Fireteam     Fireteam
	Members      []FireteamMember
	Alternatives []FireteamMember
}
