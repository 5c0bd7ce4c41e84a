package enums

type MembershipType int

const (
	MembershipTypeAll       MembershipType = -1
	MembershipTypeNone      MembershipType = 0
	MembershipTypeXbox      MembershipType = 1
	MembershipTypePSN       MembershipType = 2
	MembershipTypeSteam     MembershipType = 3
	MembershipTypeBlizzard  MembershipType = 4
	MembershipTypeStadia    MembershipType = 5
	MembershipTypeEpicGames MembershipType = 6
	MembershipTypeDemon     MembershipType = 10
	MembershipTypeBungie    MembershipType = 254
)

var membershipTypeNames = map[MembershipType]string{
	MembershipTypeAll:       "ALL",
	MembershipTypeNone:      "NONE",
	MembershipTypeXbox:      "XBOX",
	MembershipTypePSN:       "PSN",
	MembershipTypeSteam:     "STEAM",
	MembershipTypeBlizzard:  "BLIZZARD",
	MembershipTypeStadia:    "STADIA",
	MembershipTypeEpicGames: "EPIC_GAMES_STORE",
	MembershipTypeDemon:     "DEMON",
	MembershipTypeBungie:    "BUNGIE",
}

func (t MembershipType) String() string { return nameOf("MembershipType", membershipTypeNames, t) }

func (t MembershipType) IsKnown() bool {
	_, ok := membershipTypeNames[t]
	return ok
}

type CredentialType int

const (
	CredentialNone        CredentialType = 0
	CredentialXuid        CredentialType = 1
	CredentialPsnID       CredentialType = 2
	CredentialWlid        CredentialType = 3
	CredentialFake        CredentialType = 4
	CredentialFacebook    CredentialType = 5
	CredentialGoogle      CredentialType = 8
	CredentialWindows     CredentialType = 9
	CredentialDemonID     CredentialType = 10
	CredentialSteamID     CredentialType = 12
	CredentialBattleNetID CredentialType = 14
	CredentialStadiaID    CredentialType = 16
	CredentialTwitchID    CredentialType = 18
	CredentialEgsID       CredentialType = 20
)

var credentialTypeNames = map[CredentialType]string{
	CredentialNone:        "NONE",
	CredentialXuid:        "XUID",
	CredentialPsnID:       "PSNID",
	CredentialWlid:        "WLID",
	CredentialFake:        "FAKE",
	CredentialFacebook:    "FACEBOOK",
	CredentialGoogle:      "GOOGLE",
	CredentialWindows:     "WINDOWS",
	CredentialDemonID:     "DEMONID",
	CredentialSteamID:     "STEAMID",
	CredentialBattleNetID: "BATTLENETID",
	CredentialStadiaID:    "STADIAID",
	CredentialTwitchID:    "TWITCHID",
	CredentialEgsID:       "EGSID",
}

func (t CredentialType) String() string { return nameOf("CredentialType", credentialTypeNames, t) }

func (t CredentialType) IsKnown() bool {
	_, ok := credentialTypeNames[t]
	return ok
}
