package factory

import (
	"encoding/json"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/enums"
)

func fireteam(r *reader, o object) entity.Fireteam {
	return entity.Fireteam{
		ID:                      r.id(o, "fireteamId"),
		GroupID:                 r.id(o, "groupId"),
		Platform:                enums.FireteamPlatform(o.int("platform")),
		ActivityType:            enums.FireteamActivity(o.int("activityType")),
		IsImmediate:             o.bool("isImmediate"),
		OwnerID:                 r.id(o, "ownerMembershipId"),
		PlayerSlotCount:         o.int("playerSlotCount"),
		AlternateSlotCount:      o.intPtr("alternateSlotCount"),
		AvailablePlayerSlots:    o.int("availablePlayerSlotCount"),
		AvailableAlternateSlots: o.int("availableAlternateSlotCount"),
		Title:                   o.undefined("title"),
		DateCreated:             r.time(o, "dateCreated"),
		DateModified:            r.timePtr(o, "dateModified"),
		IsPublic:                o.bool("isPublic"),
		Locale:                  o.str("locale"),
		IsValid:                 o.bool("isValid"),
		LastPlayerActivity:      r.time(o, "datePlayerModified"),
		ScheduledTime:           r.timePtr(o, "scheduledTime"),
		DatePlayerModified:      r.timePtr(o, "datePlayerModified"),
		TitleBeforeModeration:   o.undefined("titleBeforeModeration"),
	}
}

func fireteamMember(r *reader, o object) entity.FireteamMember {
	u := o.obj("destinyUserInfo")
	return entity.FireteamMember{
		User: entity.FireteamUser{
			Destiny:                destinyMembership(r, u),
			FireteamDisplayName:    u.undefined("FireteamDisplayName"),
			FireteamMembershipType: enums.MembershipType(u.int("FireteamMembershipType")),
		},
		CharacterID:              r.id(o, "characterId"),
		DateJoined:               r.time(o, "dateJoined"),
		HasMicrophone:            o.bool("hasMicrophone"),
		LastPlatformInviteDate:   r.time(o, "lastPlatformInviteAttemptDate"),
		LastPlatformInviteResult: o.int("lastPlatformInviteAttemptResult"),
	}
}

func availableFireteam(r *reader, o object) entity.AvailableFireteam {
	return entity.AvailableFireteam{
		Fireteam:     fireteam(r, o.obj("Summary")),
		Members:      listOf(r, o.arr("Members"), fireteamMember),
		Alternatives: listOf(r, o.arr("Alternates"), fireteamMember),
	}
}

// DeserializeFireteams reads one page of fireteam summaries.
func DeserializeFireteams(raw json.RawMessage) (Page[entity.Fireteam], error) {
	return decodeWith(raw, func(r *reader, o object) Page[entity.Fireteam] {
		return page(r, o, "results", fireteam)
	})
}

func DeserializeAvailableFireteam(raw json.RawMessage) (entity.AvailableFireteam, error) {
	return decodeWith(raw, availableFireteam)
}

func DeserializeAvailableFireteams(raw json.RawMessage) (Page[entity.AvailableFireteam], error) {
	return decodeWith(raw, func(r *reader, o object) Page[entity.AvailableFireteam] {
		return page(r, o, "results", availableFireteam)
	})
}
