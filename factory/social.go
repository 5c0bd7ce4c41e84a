package factory

import (
	"encoding/json"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/enums"
)

func friend(r *reader, o object) entity.Friend {
	f := entity.Friend{
		ID:           r.id(o, "lastSeenAsMembershipId"),
		Name:         o.undefined("bungieGlobalDisplayName"),
		Code:         o.intPtr("bungieGlobalDisplayNameCode"),
		Type:         enums.MembershipType(o.int("lastSeenAsBungieMembershipType")),
		LastSeenName: o.undefined("lastSeenAsDisplayName"),
		Relationship: enums.Relationship(o.int("relationship")),
		Online:       enums.Presence(o.int("onlineStatus")),
		OnlineTitle:  o.int("onlineTitle"),
	}
	if u := o.obj("bungieNetUser"); u != nil {
		f.User = ptr(bungieUser(r, u))
	}
	return f
}

func DeserializeFriends(raw json.RawMessage) ([]entity.Friend, error) {
	return decodeWith(raw, func(r *reader, o object) []entity.Friend {
		return listOf(r, o.arr("friends"), friend)
	})
}

func DeserializeFriendRequests(raw json.RawMessage) (entity.FriendRequestView, error) {
	return decodeWith(raw, func(r *reader, o object) entity.FriendRequestView {
		return entity.FriendRequestView{
			Incoming: listOf(r, o.arr("incomingRequests"), friend),
			Outgoing: listOf(r, o.arr("outgoingRequests"), friend),
		}
	})
}
