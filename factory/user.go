package factory

import (
	"encoding/json"
	"strconv"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/enums"
)

// firstNonEmpty returns the first key whose value is a non-empty string.
func firstNonEmpty(o object, keys ...string) string {
	for _, k := range keys {
		if s := o.str(k); s != "" {
			return s
		}
	}
	return ""
}

func membershipTypes(o object, key string) []enums.MembershipType {
	ints := o.ints(key)
	if ints == nil {
		return nil
	}
	out := make([]enums.MembershipType, len(ints))
	for i, v := range ints {
		out[i] = enums.MembershipType(v)
	}
	return out
}

func bungieUser(r *reader, o object) entity.BungieUser {
	return entity.BungieUser{
		ID:           r.id(o, "membershipId"),
		Name:         entity.UndefinedIfEmpty(firstNonEmpty(o, "cachedBungieGlobalDisplayName", "displayName")),
		Code:         o.intPtr("cachedBungieGlobalDisplayNameCode"),
		DisplayName:  o.undefined("displayName"),
		CreatedAt:    r.time(o, "firstAccess"),
		UpdatedAt:    r.timePtr(o, "lastUpdate"),
		IsDeleted:    o.bool("isDeleted"),
		About:        o.undefined("about"),
		Locale:       o.str("locale"),
		Picture:      o.image("profilePicturePath"),
		ProfileTheme: o.str("profileThemeName"),
		StatusText:   o.undefined("statusText"),
		StatusDate:   r.timePtr(o, "statusDate"),
		ShowActivity: o.boolPtr("showActivity"),
		PSNName:      o.strPtr("psnDisplayName"),
		SteamName:    o.strPtr("steamDisplayName"),
		XboxName:     o.strPtr("xboxDisplayName"),
		StadiaName:   o.strPtr("stadiaDisplayName"),
		BlizzardName: o.strPtr("blizzardDisplayName"),
		EGSName:      o.strPtr("egsDisplayName"),
		TwitchName:   o.strPtr("twitchDisplayName"),
	}
}

func DeserializeBungieUser(raw json.RawMessage) (entity.BungieUser, error) {
	return decodeWith(raw, bungieUser)
}

func partialBungieUser(r *reader, o object) entity.PartialBungieUser {
	return entity.PartialBungieUser{
		ID:        r.id(o, "membershipId"),
		Name:      entity.UndefinedIfEmpty(firstNonEmpty(o, "bungieGlobalDisplayName", "displayName")),
		Code:      o.intPtr("bungieGlobalDisplayNameCode"),
		Type:      enums.MembershipType(o.int("membershipType")),
		Types:     membershipTypes(o, "applicableMembershipTypes"),
		CrossSave: enums.MembershipType(o.int("crossSaveOverride")),
		Icon:      o.image("iconPath"),
		IsPublic:  o.bool("isPublic"),
	}
}

func DeserializePartialBungieUser(raw json.RawMessage) (entity.PartialBungieUser, error) {
	return decodeWith(raw, partialBungieUser)
}

func partialBungieUserPtr(r *reader, o object) *entity.PartialBungieUser {
	if o == nil {
		return nil
	}
	u := partialBungieUser(r, o)
	return &u
}

func destinyMembership(r *reader, o object) entity.DestinyMembership {
	return entity.DestinyMembership{
		ID:                r.id(o, "membershipId"),
		Name:              o.undefined("bungieGlobalDisplayName"),
		LastSeenName:      firstNonEmpty(o, "LastSeenDisplayName", "displayName"),
		Code:              o.intPtr("bungieGlobalDisplayNameCode"),
		Type:              enums.MembershipType(o.int("membershipType")),
		Types:             membershipTypes(o, "applicableMembershipTypes"),
		CrossSaveOverride: enums.MembershipType(o.int("crossSaveOverride")),
		Icon:              o.image("iconPath"),
		IsPublic:          o.bool("isPublic"),
	}
}

func DeserializeDestinyMembership(raw json.RawMessage) (entity.DestinyMembership, error) {
	return decodeWith(raw, destinyMembership)
}

func DeserializeDestinyMemberships(raw json.RawMessage) ([]entity.DestinyMembership, error) {
	return decodeList(raw, destinyMembership)
}

func searchableDestinyUser(r *reader, o object) entity.SearchableDestinyUser {
	return entity.SearchableDestinyUser{
		Name:               o.undefined("bungieGlobalDisplayName"),
		Code:               o.intPtr("bungieGlobalDisplayNameCode"),
		BungieMembershipID: r.idPtr(o, "bungieNetMembershipId"),
		Memberships:        listOf(r, o.arr("destinyMemberships"), destinyMembership),
	}
}

// DeserializeSearchedUsers reads one page of a prefix user search.
func DeserializeSearchedUsers(raw json.RawMessage) (Page[entity.SearchableDestinyUser], error) {
	return decodeWith(raw, func(r *reader, o object) Page[entity.SearchableDestinyUser] {
		return page(r, o, "searchResults", searchableDestinyUser)
	})
}

func hardLinkedMembership(r *reader, o object) entity.HardLinkedMembership {
	return entity.HardLinkedMembership{
		ID:            r.id(o, "membershipId"),
		Type:          enums.MembershipType(o.int("membershipType")),
		CrossSaveType: enums.MembershipType(o.int("CrossSaveOverriddenType")),
	}
}

func DeserializeHardLinkedMembership(raw json.RawMessage) (entity.HardLinkedMembership, error) {
	return decodeWith(raw, hardLinkedMembership)
}

func userCredentials(_ *reader, o object) entity.UserCredentials {
	return entity.UserCredentials{
		Type:         enums.CredentialType(o.int("credentialType")),
		DisplayName:  o.undefined("credentialDisplayName"),
		IsPublic:     o.bool("isPublic"),
		SelfAsString: o.undefined("credentialAsString"),
	}
}

func DeserializeUserCredentials(raw json.RawMessage) ([]entity.UserCredentials, error) {
	return decodeList(raw, userCredentials)
}

func userTheme(_ *reader, o object) entity.UserThemes {
	return entity.UserThemes{
		ID:          o.int("userThemeId"),
		Name:        o.undefined("userThemeName"),
		Description: o.undefined("userThemeDescription"),
	}
}

func DeserializeUserThemes(raw json.RawMessage) ([]entity.UserThemes, error) {
	return decodeList(raw, userTheme)
}

// DeserializeSanitizedMembership reads the credential-type keyed display
// name map.
func DeserializeSanitizedMembership(raw json.RawMessage) (entity.SanitizedMembership, error) {
	return decodeWith(raw, func(_ *reader, o object) entity.SanitizedMembership {
		name := func(t enums.CredentialType) *string {
			return o.strPtr(strconv.Itoa(int(t)))
		}
		return entity.SanitizedMembership{
			PSN:      name(enums.CredentialPsnID),
			Xbox:     name(enums.CredentialXuid),
			Steam:    name(enums.CredentialSteamID),
			Stadia:   name(enums.CredentialStadiaID),
			Twitch:   name(enums.CredentialTwitchID),
			Blizzard: name(enums.CredentialBattleNetID),
			EGS:      name(enums.CredentialEgsID),
		}
	})
}

func DeserializeLinkedProfiles(raw json.RawMessage) (entity.LinkedProfile, error) {
	return decodeWith(raw, func(r *reader, o object) entity.LinkedProfile {
		return entity.LinkedProfile{
			Profiles:   listOf(r, o.arr("profiles"), destinyMembership),
			BungieUser: partialBungieUserPtr(r, o.obj("bungieNetMembership")),
			ProfilesWithErrors: listOf(r, o.arr("profilesWithErrors"), func(r *reader, o object) entity.DestinyMembership {
				return destinyMembership(r, o.obj("infoCard"))
			}),
		}
	})
}

// DeserializeUser reads the memberships of a Bungie.net account, as returned
// for the current user and by id.
func DeserializeUser(raw json.RawMessage) (entity.User, error) {
	return decodeWith(raw, func(r *reader, o object) entity.User {
		return entity.User{
			Bungie:              bungieUser(r, o.obj("bungieNetUser")),
			Destiny:             listOf(r, o.arr("destinyMemberships"), destinyMembership),
			PrimaryMembershipID: r.idPtr(o, "primaryMembershipId"),
		}
	})
}
