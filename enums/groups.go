package enums

type GroupType int

const (
	GroupTypeGeneral GroupType = 0
	GroupTypeClan    GroupType = 1
)

var groupTypeNames = map[GroupType]string{
	GroupTypeGeneral: "GENERAL",
	GroupTypeClan:    "CLAN",
}

func (t GroupType) String() string { return nameOf("GroupType", groupTypeNames, t) }

func (t GroupType) IsKnown() bool {
	_, ok := groupTypeNames[t]
	return ok
}

type ClanMemberType int

const (
	ClanMemberNone          ClanMemberType = 0
	ClanMemberBeginner      ClanMemberType = 1
	ClanMemberMember        ClanMemberType = 2
	ClanMemberAdmin         ClanMemberType = 3
	ClanMemberActingFounder ClanMemberType = 4
	ClanMemberFounder       ClanMemberType = 5
)

var clanMemberTypeNames = map[ClanMemberType]string{
	ClanMemberNone:          "NONE",
	ClanMemberBeginner:      "BEGINNER",
	ClanMemberMember:        "MEMBER",
	ClanMemberAdmin:         "ADMIN",
	ClanMemberActingFounder: "ACTING_FOUNDER",
	ClanMemberFounder:       "FOUNDER",
}

func (t ClanMemberType) String() string { return nameOf("ClanMemberType", clanMemberTypeNames, t) }

func (t ClanMemberType) IsKnown() bool {
	_, ok := clanMemberTypeNames[t]
	return ok
}

type MembershipOption int

const (
	MembershipOptionReviewed MembershipOption = 0
	MembershipOptionOpen     MembershipOption = 1
	MembershipOptionClosed   MembershipOption = 2
)

var membershipOptionNames = map[MembershipOption]string{
	MembershipOptionReviewed: "REVIEWD",
	MembershipOptionOpen:     "OPEN",
	MembershipOptionClosed:   "CLOSED",
}

func (o MembershipOption) String() string {
	return nameOf("MembershipOption", membershipOptionNames, o)
}

func (o MembershipOption) IsKnown() bool {
	_, ok := membershipOptionNames[o]
	return ok
}

type ChatSecurity int

const (
	ChatSecurityGroup  ChatSecurity = 0
	ChatSecurityAdmins ChatSecurity = 1
)

var chatSecurityNames = map[ChatSecurity]string{
	ChatSecurityGroup:  "GROUP",
	ChatSecurityAdmins: "ADMINS",
}

func (s ChatSecurity) String() string { return nameOf("ChatSecurity", chatSecurityNames, s) }

func (s ChatSecurity) IsKnown() bool {
	_, ok := chatSecurityNames[s]
	return ok
}

type GroupDateRange int

const (
	GroupDateAll       GroupDateRange = 0
	GroupDatePastDay   GroupDateRange = 1
	GroupDatePastWeek  GroupDateRange = 2
	GroupDatePastMonth GroupDateRange = 3
	GroupDatePastYear  GroupDateRange = 4
)

var groupDateRangeNames = map[GroupDateRange]string{
	GroupDateAll:       "ALL",
	GroupDatePastDay:   "PAST_DAY",
	GroupDatePastWeek:  "PAST_WEEK",
	GroupDatePastMonth: "PAST_MONTH",
	GroupDatePastYear:  "PAST_YEAR",
}

func (r GroupDateRange) String() string { return nameOf("GroupDateRange", groupDateRangeNames, r) }

func (r GroupDateRange) IsKnown() bool {
	_, ok := groupDateRangeNames[r]
	return ok
}

type GroupSortBy int

const (
	GroupSortByName       GroupSortBy = 0
	GroupSortByDate       GroupSortBy = 1
	GroupSortByPopularity GroupSortBy = 2
	GroupSortByID         GroupSortBy = 3
)

var groupSortByNames = map[GroupSortBy]string{
	GroupSortByName:       "NAME",
	GroupSortByDate:       "DATE",
	GroupSortByPopularity: "POPULARITY",
	GroupSortByID:         "ID",
}

func (s GroupSortBy) String() string { return nameOf("GroupSortBy", groupSortByNames, s) }

func (s GroupSortBy) IsKnown() bool {
	_, ok := groupSortByNames[s]
	return ok
}

// GroupsForMemberFilter narrows the groups of a member by founder status.
type GroupsForMemberFilter int

const (
	GroupsForMemberAll        GroupsForMemberFilter = 0
	GroupsForMemberFounded    GroupsForMemberFilter = 1
	GroupsForMemberNonFounded GroupsForMemberFilter = 2
)

var groupsForMemberFilterNames = map[GroupsForMemberFilter]string{
	GroupsForMemberAll:        "ALL",
	GroupsForMemberFounded:    "FOUNDED",
	GroupsForMemberNonFounded: "NON_FOUNDED",
}

func (f GroupsForMemberFilter) String() string {
	return nameOf("GroupsForMemberFilter", groupsForMemberFilterNames, f)
}
