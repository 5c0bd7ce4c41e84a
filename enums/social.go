package enums

type Presence int

const (
	PresenceOfflineOrUnknown Presence = 0
	PresenceOnline           Presence = 1
)

var presenceNames = map[Presence]string{
	PresenceOfflineOrUnknown: "OFFLINE_OR_UNKNOWN",
	PresenceOnline:           "ONLINE",
}

func (p Presence) String() string { return nameOf("Presence", presenceNames, p) }

func (p Presence) IsKnown() bool {
	_, ok := presenceNames[p]
	return ok
}

type Relationship int

const (
	RelationshipUnknown         Relationship = 0
	RelationshipFriend          Relationship = 1
	RelationshipIncomingRequest Relationship = 2
	RelationshipOutgoingRequest Relationship = 3
)

var relationshipNames = map[Relationship]string{
	RelationshipUnknown:         "UNKNOWN",
	RelationshipFriend:          "FRIEND",
	RelationshipIncomingRequest: "INCOMING_REQUEST",
	RelationshipOutgoingRequest: "OUTGOING_REQUEST",
}

func (r Relationship) String() string { return nameOf("Relationship", relationshipNames, r) }

func (r Relationship) IsKnown() bool {
	_, ok := relationshipNames[r]
	return ok
}
