package route

import (
	"net/http"

	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/enums"
)

// OAuth2 scopes.
const (
	ScopeReadBasicUserProfile  = "ReadBasicUserProfile"
	ScopeReadGroups            = "ReadGroups"
	ScopeWriteGroups           = "WriteGroups"
	ScopeAdminGroups           = "AdminGroups"
	ScopeBnetWrite             = "BnetWrite"
	ScopeMoveEquipDestinyItems = "MoveEquipDestinyItems"
	ScopeReadInventory         = "ReadDestinyInventoryAndVault"
	ScopeReadUserData          = "ReadUserData"
	ScopeReadVendors           = "ReadDestinyVendorsAndAdvisors"
	ScopeAdvancedWriteActions  = "AdvancedWriteActions"
)

const (
	OpGetOAuthToken Op = "GetOAuthToken"

	OpGetBungieNetUserByID          Op = "GetBungieNetUserById"
	OpSearchByGlobalName            Op = "SearchByGlobalNamePost"
	OpGetAvailableThemes            Op = "GetAvailableThemes"
	OpGetSanitizedPlatformNames     Op = "GetSanitizedPlatformDisplayNames"
	OpGetMembershipFromCredential   Op = "GetMembershipFromHardLinkedCredential"
	OpGetMembershipsByID            Op = "GetMembershipDataById"
	OpGetMembershipsForCurrentUser  Op = "GetMembershipDataForCurrentUser"
	OpGetCredentialTypesForAccount  Op = "GetCredentialTypesForTargetAccount"
	OpGetLinkedProfiles             Op = "GetLinkedProfiles"
	OpGetDestinyManifest            Op = "GetDestinyManifest"
	OpGetDestinyEntityDefinition    Op = "GetDestinyEntityDefinition"
	OpSearchDestinyPlayerByName     Op = "SearchDestinyPlayerByBungieName"
	OpGetProfile                    Op = "GetProfile"
	OpGetCharacter                  Op = "GetCharacter"
	OpGetClanWeeklyRewardState      Op = "GetClanWeeklyRewardState"
	OpGetItem                       Op = "GetItem"
	OpGetVendors                    Op = "GetVendors"
	OpGetVendor                     Op = "GetVendor"
	OpGetPublicVendors              Op = "GetPublicVendors"
	OpGetCollectibleNodeDetails     Op = "GetCollectibleNodeDetails"
	OpTransferItem                  Op = "TransferItem"
	OpPullFromPostmaster            Op = "PullFromPostmaster"
	OpEquipItem                     Op = "EquipItem"
	OpEquipItems                    Op = "EquipItems"
	OpEquipLoadout                  Op = "EquipLoadout"
	OpSnapshotLoadout               Op = "SnapshotLoadout"
	OpUpdateLoadoutIdentifiers      Op = "UpdateLoadoutIdentifiers"
	OpClearLoadout                  Op = "ClearLoadout"
	OpSetItemLockState              Op = "SetItemLockState"
	OpSetQuestTrackedState          Op = "SetQuestTrackedState"
	OpInsertSocketPlug              Op = "InsertSocketPlug"
	OpInsertSocketPlugFree          Op = "InsertSocketPlugFree"
	OpGetPostGameCarnageReport      Op = "GetPostGameCarnageReport"
	OpGetHistoricalStatsDefinition  Op = "GetHistoricalStatsDefinition"
	OpGetClanLeaderboards           Op = "GetClanLeaderboards"
	OpGetClanAggregateStats         Op = "GetClanAggregateStats"
	OpGetLeaderboards               Op = "GetLeaderboards"
	OpSearchDestinyEntities         Op = "SearchDestinyEntities"
	OpGetHistoricalStats            Op = "GetHistoricalStats"
	OpGetHistoricalStatsForAccount  Op = "GetHistoricalStatsForAccount"
	OpGetActivityHistory            Op = "GetActivityHistory"
	OpGetUniqueWeaponHistory        Op = "GetUniqueWeaponHistory"
	OpGetAggregateActivityStats     Op = "GetDestinyAggregateActivityStats"
	OpGetPublicMilestoneContent     Op = "GetPublicMilestoneContent"
	OpGetPublicMilestones           Op = "GetPublicMilestones"
	OpGetGroup                      Op = "GetGroup"
	OpGetGroupByName                Op = "GetGroupByName"
	OpGetGroupOptionalConversations Op = "GetGroupOptionalConversations"
	OpAddOptionalConversation       Op = "AddOptionalConversation"
	OpEditOptionalConversation      Op = "EditOptionalConversation"
	OpGetMembersOfGroup             Op = "GetMembersOfGroup"
	OpGetAdminsAndFounderOfGroup    Op = "GetAdminsAndFounderOfGroup"
	OpEditGroup                     Op = "EditGroup"
	OpEditFounderOptions            Op = "EditFounderOptions"
	OpGroupSearch                   Op = "GroupSearch"
	OpGetGroupsForMember            Op = "GetGroupsForMember"
	OpGetPotentialGroupsForMember   Op = "GetPotentialGroupsForMember"
	OpKickMember                    Op = "KickMember"
	OpBanMember                     Op = "BanMember"
	OpUnbanMember                   Op = "UnbanMember"
	OpGetBannedMembersOfGroup       Op = "GetBannedMembersOfGroup"
	OpAbdicateFoundership           Op = "AbdicateFoundership"
	OpGetPendingMemberships         Op = "GetPendingMemberships"
	OpGetInvitedIndividuals         Op = "GetInvitedIndividuals"
	OpApproveAllPending             Op = "ApproveAllPending"
	OpDenyAllPending                Op = "DenyAllPending"
	OpApprovePendingForList         Op = "ApprovePendingForList"
	OpIndividualGroupInvite         Op = "IndividualGroupInvite"
	OpIndividualGroupInviteCancel   Op = "IndividualGroupInviteCancel"
	OpApplyToGroup                  Op = "ApplyToGroup"
	OpLeaveGroup                    Op = "LeaveGroup"
	OpSearchPublicFireteams         Op = "SearchPublicAvailableClanFireteams"
	OpGetAvailableClanFireteams     Op = "GetAvailableClanFireteams"
	OpGetActivePrivateFireteamCount Op = "GetActivePrivateClanFireteamCount"
	OpGetMyClanFireteams            Op = "GetMyClanFireteams"
	OpGetClanFireteam               Op = "GetClanFireteam"
	OpGetFireteamListing            Op = "GetListing"
	OpGetFriendList                 Op = "GetFriendList"
	OpGetFriendRequestList          Op = "GetFriendRequestList"
	OpIssueFriendRequest            Op = "IssueFriendRequest"
	OpAcceptFriendRequest           Op = "AcceptFriendRequest"
	OpDeclineFriendRequest          Op = "DeclineFriendRequest"
	OpRemoveFriend                  Op = "RemoveFriend"
	OpRemoveFriendRequest           Op = "RemoveFriendRequest"
	OpGetApplicationAPIUsage        Op = "GetApplicationApiUsage"
	OpGetBungieApplications         Op = "GetBungieApplications"
	OpGetCommonSettings             Op = "GetCommonSettings"
	OpGetGlobalAlerts               Op = "GetGlobalAlerts"
	OpGetContentType                Op = "GetContentType"
	OpGetContentByID                Op = "GetContentById"
	OpGetContentByTagAndType        Op = "GetContentByTagAndType"
	OpSearchContentWithText         Op = "SearchContentWithText"
	OpRssNewsArticles               Op = "RssNewsArticles"
)

const (
	profilePath   = "/Destiny2/{membershipType}/Profile/{destinyMembershipId}"
	characterPath = profilePath + "/Character/{characterId}"
	accountPath   = "/Destiny2/{membershipType}/Account/{destinyMembershipId}"
	groupPath     = "/GroupV2/{groupId}"
	memberPath    = groupPath + "/Members/{membershipType}/{membershipId}"
)

func get(op Op, path string) Endpoint {
	return Endpoint{Op: op, Method: http.MethodGet, Path: path}
}

func post(op Op, path string) Endpoint {
	return Endpoint{Op: op, Method: http.MethodPost, Path: path}
}

func (e Endpoint) optional() Endpoint {
	e.Auth = AuthOptional
	return e
}

func (e Endpoint) requires(scope string) Endpoint {
	e.Auth = AuthRequired
	e.Scope = scope
	return e
}

func (e Endpoint) on(base string) Endpoint {
	e.Base = base
	return e
}

func (e Endpoint) validate(f func(Params) error) Endpoint {
	e.Validate = f
	return e
}

var catalog = func() map[Op]Endpoint {
	endpoints := []Endpoint{
		{Op: OpGetOAuthToken, Method: http.MethodPost, Base: TokenURL, Form: true},

		get(OpGetBungieNetUserByID, "/User/GetBungieNetUserById/{id}/"),
		post(OpSearchByGlobalName, "/User/Search/GlobalName/{page}/"),
		get(OpGetAvailableThemes, "/User/GetAvailableThemes/"),
		get(OpGetSanitizedPlatformNames, "/User/GetSanitizedPlatformDisplayNames/{membershipId}/"),
		get(OpGetMembershipFromCredential, "/User/GetMembershipFromHardLinkedCredential/{crType}/{credential}/"),
		get(OpGetMembershipsByID, "/User/GetMembershipsById/{membershipId}/{membershipType}/"),
		get(OpGetMembershipsForCurrentUser, "/User/GetMembershipsForCurrentUser/").requires(ScopeReadBasicUserProfile),
		get(OpGetCredentialTypesForAccount, "/User/GetCredentialTypesForTargetAccount/{membershipId}/").requires(ScopeReadUserData),
		get(OpGetLinkedProfiles, profilePath+"/LinkedProfiles/"),

		get(OpGetDestinyManifest, "/Destiny2/Manifest/"),
		get(OpGetDestinyEntityDefinition, "/Destiny2/Manifest/{entityType}/{hashIdentifier}/"),
		post(OpSearchDestinyPlayerByName, "/Destiny2/SearchDestinyPlayerByBungieName/{membershipType}/"),
		get(OpGetProfile, profilePath+"/").optional(),
		get(OpGetCharacter, characterPath+"/").optional(),
		get(OpGetClanWeeklyRewardState, "/Destiny2/Clan/{groupId}/WeeklyRewardState/"),
		get(OpGetItem, profilePath+"/Item/{itemInstanceId}/").optional(),
		get(OpGetVendors, characterPath+"/Vendors/").requires(ScopeReadVendors),
		get(OpGetVendor, characterPath+"/Vendors/{vendorHash}/").requires(ScopeReadVendors),
		get(OpGetPublicVendors, "/Destiny2/Vendors/"),
		get(OpGetCollectibleNodeDetails, characterPath+"/Collectibles/{collectiblePresentationNodeHash}/").optional(),
		post(OpTransferItem, "/Destiny2/Actions/Items/TransferItem/").requires(ScopeMoveEquipDestinyItems),
		post(OpPullFromPostmaster, "/Destiny2/Actions/Items/PullFromPostmaster/").requires(ScopeMoveEquipDestinyItems),
		post(OpEquipItem, "/Destiny2/Actions/Items/EquipItem/").requires(ScopeMoveEquipDestinyItems),
		post(OpEquipItems, "/Destiny2/Actions/Items/EquipItems/").requires(ScopeMoveEquipDestinyItems),
		post(OpEquipLoadout, "/Destiny2/Actions/Loadouts/EquipLoadout/").requires(ScopeMoveEquipDestinyItems),
		post(OpSnapshotLoadout, "/Destiny2/Actions/Loadouts/SnapshotLoadout/").requires(ScopeMoveEquipDestinyItems),
		post(OpUpdateLoadoutIdentifiers, "/Destiny2/Actions/Loadouts/UpdateLoadoutIdentifiers/").requires(ScopeMoveEquipDestinyItems),
		post(OpClearLoadout, "/Destiny2/Actions/Loadouts/ClearLoadout/").requires(ScopeMoveEquipDestinyItems),
		post(OpSetItemLockState, "/Destiny2/Actions/Items/SetLockState/").requires(ScopeMoveEquipDestinyItems),
		post(OpSetQuestTrackedState, "/Destiny2/Actions/Items/SetTrackedState/").requires(ScopeMoveEquipDestinyItems),
		post(OpInsertSocketPlug, "/Destiny2/Actions/Items/InsertSocketPlug/").requires(ScopeAdvancedWriteActions),
		post(OpInsertSocketPlugFree, "/Destiny2/Actions/Items/InsertSocketPlugFree/").requires(ScopeMoveEquipDestinyItems),
		get(OpGetPostGameCarnageReport, "/Destiny2/Stats/PostGameCarnageReport/{activityId}/").on(StatsURL),
		get(OpGetHistoricalStatsDefinition, "/Destiny2/Stats/Definition/"),
		get(OpGetClanLeaderboards, "/Destiny2/Stats/Leaderboards/Clans/{groupId}/"),
		get(OpGetClanAggregateStats, "/Destiny2/Stats/AggregateClanStats/{groupId}/"),
		get(OpGetLeaderboards, accountPath+"/Stats/Leaderboards/"),
		get(OpSearchDestinyEntities, "/Destiny2/Armory/Search/{type}/{searchTerm}/"),
		get(OpGetHistoricalStats, accountPath+"/Character/{characterId}/Stats/"),
		get(OpGetHistoricalStatsForAccount, accountPath+"/Stats/"),
		get(OpGetActivityHistory, accountPath+"/Character/{characterId}/Stats/Activities/"),
		get(OpGetUniqueWeaponHistory, accountPath+"/Character/{characterId}/Stats/UniqueWeapons/"),
		get(OpGetAggregateActivityStats, accountPath+"/Character/{characterId}/Stats/AggregateActivityStats/"),
		get(OpGetPublicMilestoneContent, "/Destiny2/Milestones/{milestoneHash}/Content/"),
		get(OpGetPublicMilestones, "/Destiny2/Milestones/"),

		get(OpGetGroup, groupPath+"/").optional(),
		get(OpGetGroupByName, "/GroupV2/Name/{groupName}/{groupType}/").optional(),
		get(OpGetGroupOptionalConversations, groupPath+"/OptionalConversations/"),
		post(OpAddOptionalConversation, groupPath+"/OptionalConversations/Add/").requires(ScopeAdminGroups),
		post(OpEditOptionalConversation, groupPath+"/OptionalConversations/Edit/{conversationId}/").requires(ScopeAdminGroups),
		get(OpGetMembersOfGroup, groupPath+"/Members/"),
		get(OpGetAdminsAndFounderOfGroup, groupPath+"/AdminsAndFounder/"),
		post(OpEditGroup, groupPath+"/Edit/").requires(ScopeAdminGroups),
		post(OpEditFounderOptions, groupPath+"/EditFounderOptions/").requires(ScopeAdminGroups),
		post(OpGroupSearch, "/GroupV2/Search/").validate(validateGroupSearch),
		get(OpGetGroupsForMember, "/GroupV2/User/{membershipType}/{membershipId}/{filter}/{groupType}/"),
		get(OpGetPotentialGroupsForMember, "/GroupV2/User/Potential/{membershipType}/{membershipId}/{filter}/{groupType}/"),
		post(OpKickMember, memberPath+"/Kick/").requires(ScopeAdminGroups),
		post(OpBanMember, memberPath+"/Ban/").requires(ScopeAdminGroups),
		post(OpUnbanMember, memberPath+"/Unban/").requires(ScopeAdminGroups),
		get(OpGetBannedMembersOfGroup, groupPath+"/Banned/").requires(ScopeAdminGroups),
		post(OpAbdicateFoundership, groupPath+"/Admin/AbdicateFoundership/{membershipType}/{founderIdNew}/").requires(ScopeAdminGroups),
		get(OpGetPendingMemberships, groupPath+"/Members/Pending/").requires(ScopeAdminGroups),
		get(OpGetInvitedIndividuals, groupPath+"/Members/InvitedIndividuals/").requires(ScopeAdminGroups),
		post(OpApproveAllPending, groupPath+"/Members/ApproveAll/").requires(ScopeAdminGroups),
		post(OpDenyAllPending, groupPath+"/Members/DenyAll/").requires(ScopeAdminGroups),
		post(OpApprovePendingForList, groupPath+"/Members/ApproveList/").requires(ScopeAdminGroups),
		post(OpIndividualGroupInvite, groupPath+"/Members/IndividualInvite/{membershipType}/{membershipId}/").requires(ScopeAdminGroups),
		post(OpIndividualGroupInviteCancel, groupPath+"/Members/IndividualInviteCancel/{membershipType}/{membershipId}/").requires(ScopeAdminGroups),
		post(OpApplyToGroup, groupPath+"/Members/Apply/{membershipType}/").requires(ScopeWriteGroups),
		post(OpLeaveGroup, groupPath+"/Members/Leave/{membershipType}/").requires(ScopeWriteGroups),

		get(OpSearchPublicFireteams, "/Fireteam/Search/Available/{platform}/{activityType}/{dateRange}/{slotFilter}/{page}/").optional(),
		get(OpGetAvailableClanFireteams, "/Fireteam/Clan/{groupId}/Available/{platform}/{activityType}/{dateRange}/{slotFilter}/{publicOnly}/{page}/").requires(ScopeReadGroups),
		get(OpGetActivePrivateFireteamCount, "/Fireteam/Clan/{groupId}/ActiveCount/").requires(ScopeReadGroups),
		get(OpGetMyClanFireteams, "/Fireteam/Clan/{groupId}/My/{platform}/{includeClosed}/{page}/").requires(ScopeReadGroups),
		get(OpGetClanFireteam, "/Fireteam/Clan/{groupId}/Summary/{fireteamId}/").requires(ScopeReadGroups),
		get(OpGetFireteamListing, "/FireteamFinder/Listing/{listingId}/").requires(ScopeReadGroups),

		get(OpGetFriendList, "/Social/Friends/").requires(ScopeReadUserData),
		get(OpGetFriendRequestList, "/Social/Friends/Requests/").requires(ScopeReadUserData),
		post(OpIssueFriendRequest, "/Social/Friends/Add/{membershipId}/").requires(ScopeBnetWrite),
		post(OpAcceptFriendRequest, "/Social/Friends/Requests/Accept/{membershipId}/").requires(ScopeBnetWrite),
		post(OpDeclineFriendRequest, "/Social/Friends/Requests/Decline/{membershipId}/").requires(ScopeBnetWrite),
		post(OpRemoveFriend, "/Social/Friends/Remove/{membershipId}/").requires(ScopeBnetWrite),
		post(OpRemoveFriendRequest, "/Social/Friends/Requests/Remove/{membershipId}/").requires(ScopeBnetWrite),

		get(OpGetApplicationAPIUsage, "/App/ApiUsage/{applicationId}/").requires(ScopeReadUserData),
		get(OpGetBungieApplications, "/App/FirstParty/"),
		get(OpGetCommonSettings, "/Settings/"),
		get(OpGetGlobalAlerts, "/GlobalAlerts/"),
		get(OpGetContentType, "/Content/GetContentType/{type}/"),
		get(OpGetContentByID, "/Content/GetContentById/{id}/{locale}/"),
		get(OpGetContentByTagAndType, "/Content/GetContentByTagAndType/{tag}/{type}/{locale}/"),
		get(OpSearchContentWithText, "/Content/Search/{locale}/"),
		get(OpRssNewsArticles, "/Content/Rss/NewsArticles/{pageToken}/"),
	}

	m := make(map[Op]Endpoint, len(endpoints))
	for _, e := range endpoints {
		m[e.Op] = e
	}
	return m
}()

// GroupQuery is the body of a group search.
type GroupQuery struct {
	Name                     string               `json:"name,omitempty"`
	GroupType                enums.GroupType      `json:"groupType"`
	CreationDate             enums.GroupDateRange `json:"creationDate"`
	SortBy                   enums.GroupSortBy    `json:"sortBy"`
	GroupMemberCountFilter   *int                 `json:"groupMemberCountFilter,omitempty"`
	LocaleFilter             string               `json:"localeFilter,omitempty"`
	TagText                  string               `json:"tagText,omitempty"`
	ItemsPerPage             int                  `json:"itemsPerPage"`
	CurrentPage              int                  `json:"currentPage"`
	RequestContinuationToken string               `json:"requestContinuationToken,omitempty"`
}

// validateGroupSearch rejects the general-group filters in a clan search,
// which the server refuses.
func validateGroupSearch(p Params) error {
	var q GroupQuery
	switch b := p.Body.(type) {
	case GroupQuery:
		q = b
	case *GroupQuery:
		if b == nil {
			return apierror.InvalidArgument("group search needs a query")
		}
		q = *b
	default:
		return apierror.InvalidArgument("group search needs a GroupQuery body, got %T", p.Body)
	}
	if q.GroupType != enums.GroupTypeClan {
		return nil
	}
	switch {
	case q.LocaleFilter != "":
		return apierror.InvalidArgument("clan search can not filter by locale")
	case q.TagText != "":
		return apierror.InvalidArgument("clan search can not filter by tag")
	case q.GroupMemberCountFilter != nil:
		return apierror.InvalidArgument("clan search can not filter by member count")
	case q.CreationDate != enums.GroupDateAll:
		return apierror.InvalidArgument("clan search can not filter by creation date")
	}
	return nil
}
