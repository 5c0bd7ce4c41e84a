package entity

import "github.com/kofuk/bungie/enums"

type Friend struct {
	ID           int64
	Name         UndefinedOr[string]
	Code         *int
	Type         enums.MembershipType
	LastSeenName UndefinedOr[string]
	Relationship enums.Relationship
	Online       enums.Presence
	OnlineTitle  int
	User         *BungieUser
}

func (f Friend) MemberID() int64                  { return f.ID }
func (f Friend) MemberName() UndefinedOr[string]  { return f.Name }
func (f Friend) MemberCode() *int                 { return f.Code }
func (f Friend) MemberType() enums.MembershipType { return f.Type }
func (f Friend) UniqueName() string               { return uniqueName(f.Name, f.Code) }
func (f Friend) Link() string                     { return profileLink(f.Type, f.ID) }

type FriendRequestView struct {
	Incoming []Friend
	Outgoing []Friend
}
