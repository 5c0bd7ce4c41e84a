package factory

import (
	"encoding/json"
	"strconv"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/enums"
)

func character(r *reader, o object) entity.Character {
	c := entity.Character{
		ID:                       r.id(o, "characterId"),
		MemberID:                 r.id(o, "membershipId"),
		MemberType:               enums.MembershipType(o.int("membershipType")),
		Light:                    o.int("light"),
		Emblem:                   o.image("emblemBackgroundPath"),
		EmblemIcon:               o.image("emblemPath"),
		EmblemHash:               o.intPtr("emblemHash"),
		LastPlayed:               r.time(o, "dateLastPlayed"),
		MinutesPlayedTotal:       o.int("minutesPlayedTotal"),
		MinutesPlayedThisSession: o.int("minutesPlayedThisSession"),
		Class:                    enums.Class(o.int("classType")),
		Race:                     enums.Race(o.int("raceType")),
		Gender:                   enums.Gender(o.int("genderType")),
		ClassHash:                o.int("classHash"),
		RaceHash:                 o.int("raceHash"),
		GenderHash:               o.int("genderHash"),
		Level:                    o.int("baseCharacterLevel"),
		PercentToNextLevel:       o.float("percentToNextLevel"),
		TitleHash:                o.intPtr("titleRecordHash"),
	}
	if stats := keyedInts[enums.Stat](r, o.obj("stats")); stats != nil {
		c.Stats = stats
	}
	if col := o.obj("emblemColor"); col != nil {
		c.EmblemColor = entity.Color{
			Red:   col.int("red"),
			Green: col.int("green"),
			Blue:  col.int("blue"),
			Alpha: col.int("alpha"),
		}
	}
	return c
}

func DeserializeCharacter(raw json.RawMessage) (entity.Character, error) {
	return decodeWith(raw, character)
}

func profile(r *reader, o object) entity.Profile {
	info := o.obj("userInfo")
	p := entity.Profile{
		ID:                          r.id(info, "membershipId"),
		Name:                        info.undefined("bungieGlobalDisplayName"),
		Code:                        info.intPtr("bungieGlobalDisplayNameCode"),
		Type:                        enums.MembershipType(info.int("membershipType")),
		IsPublic:                    info.bool("isPublic"),
		LastPlayed:                  r.time(o, "dateLastPlayed"),
		SeasonHashes:                o.ints("seasonHashes"),
		EventCardHashes:             o.ints("eventCardHashesOwned"),
		VersionsOwned:               o.int("versionsOwned"),
		CurrentSeasonHash:           o.intPtr("currentSeasonHash"),
		CurrentSeasonRewardPowerCap: o.intPtr("currentSeasonRewardPowerCap"),
		ActiveEventCardHash:         o.intPtr("activeEventCardHash"),
		CurrentGuardianRank:         o.int("currentGuardianRank"),
		LifetimeHighestGuardianRank: o.int("lifetimeHighestGuardianRank"),
	}
	for _, v := range o.arr("characterIds") {
		id, err := toInt64(v)
		if err != nil {
			r.fail("characterIds", err)
			continue
		}
		p.CharacterIDs = append(p.CharacterIDs, id)
	}
	return p
}

func DeserializeProfile(raw json.RawMessage) (entity.Profile, error) {
	return decodeWith(raw, profile)
}

func profileItem(r *reader, o object) entity.ProfileItem {
	return entity.ProfileItem{
		Hash:                  o.int("itemHash"),
		Quantity:              o.int("quantity"),
		BindStatus:            enums.ItemBindStatus(o.int("bindStatus")),
		Location:              enums.ItemLocation(o.int("location")),
		BucketHash:            o.int("bucketHash"),
		TransferStatus:        enums.TransferStatus(o.int("transferStatus")),
		Lockable:              o.bool("lockable"),
		State:                 enums.ItemState(o.int("state")),
		DismantlePermissions:  o.int("dismantlePermission"),
		IsWrapper:             o.bool("isWrapper"),
		InstanceID:            r.idPtr(o, "itemInstanceId"),
		OverrideStyleItemHash: o.intPtr("overrideStyleItemHash"),
		ExpireDate:            r.timePtr(o, "expirationDate"),
		VersionNumber:         o.intPtr("versionNumber"),
		TooltipNotifications:  o.ints("tooltipNotificationIndexes"),
		ItemValueVisibility:   o.bools("itemValueVisibility"),
	}
}

func DeserializeProfileItems(raw json.RawMessage) ([]entity.ProfileItem, error) {
	return decodeList(raw, profileItem)
}

// items reads the {"items": [...]} wrapper used by inventory components.
func items(r *reader, o object) []entity.ProfileItem {
	if o == nil {
		return nil
	}
	return listOf(r, o.arr("items"), profileItem)
}

func progression(_ *reader, o object) entity.Progression {
	return entity.Progression{
		Hash:                o.int("progressionHash"),
		Level:               o.int("level"),
		Cap:                 o.int("levelCap"),
		DailyLimit:          o.int("dailyLimit"),
		WeeklyLimit:         o.int("weeklyLimit"),
		CurrentProgress:     o.int("currentProgress"),
		DailyProgress:       o.int("dailyProgress"),
		WeeklyProgress:      o.int("weeklyProgress"),
		NeededProgress:      o.int("nextLevelAt"),
		ProgressToNextLevel: o.int("progressToNextLevel"),
		CurrentResetCount:   o.intPtr("currentResetCount"),
		StepIndex:           o.int("stepIndex"),
	}
}

func progressionPtr(r *reader, o object) *entity.Progression {
	if o == nil {
		return nil
	}
	p := progression(r, o)
	return &p
}

func faction(r *reader, o object) entity.Faction {
	return entity.Faction{
		Progression: progression(r, o),
		FactionHash: o.int("factionHash"),
		VendorIndex: o.int("factionVendorIndex"),
	}
}

func objective(_ *reader, o object) entity.Objective {
	return entity.Objective{
		Hash:            o.int("objectiveHash"),
		Visible:         o.bool("visible"),
		Complete:        o.bool("complete"),
		Progress:        o.intPtr("progress"),
		CompletionValue: o.int("completionValue"),
		DestinationHash: o.intPtr("destinationHash"),
		ActivityHash:    o.intPtr("activityHash"),
	}
}

func objectivePtr(r *reader, o object) *entity.Objective {
	if o == nil {
		return nil
	}
	v := objective(r, o)
	return &v
}

func DeserializeObjectives(raw json.RawMessage) ([]entity.Objective, error) {
	return decodeList(raw, objective)
}

// keyedBools reads an integer-keyed object of booleans.
func keyedBools(r *reader, o object) map[int]bool {
	if o == nil {
		return nil
	}
	out := make(map[int]bool, len(o))
	for k, v := range o {
		key, err := strconv.Atoi(k)
		if err != nil {
			r.fail(k, err)
			continue
		}
		b, _ := v.(bool)
		out[key] = b
	}
	return out
}

func milestoneActivity(r *reader, o object) entity.MilestoneActivity {
	a := entity.MilestoneActivity{
		Hash:           o.int("activityHash"),
		ModeHash:       o.intPtr("activityModeHash"),
		ModifierHashes: o.ints("modifierHashes"),
		Challenges: listOf(r, o.arr("challenges"), func(r *reader, o object) entity.Objective {
			return objective(r, o.obj("objective"))
		}),
		BooleanOptions: keyedBools(r, o.obj("booleanActivityOptions")),
	}
	if o.has("activityModeType") {
		m := enums.GameMode(o.int("activityModeType"))
		a.Mode = &m
	}
	return a
}

func milestone(r *reader, o object) entity.Milestone {
	m := entity.Milestone{
		Hash:         o.int("milestoneHash"),
		Activities:   listOf(r, o.arr("activities"), milestoneActivity),
		VendorHashes: o.ints("vendorHashes"),
		StartDate:    r.timePtr(o, "startDate"),
		EndDate:      r.timePtr(o, "endDate"),
		Order:        o.int("order"),
		Rewards:      listOf(r, o.arr("rewards"), rewardCategory),
	}
	for _, v := range o.arr("availableQuests") {
		q, ok := v.(map[string]any)
		if !ok {
			continue
		}
		m.AvailableQuests = append(m.AvailableQuests, object(q).int("questItemHash"))
	}
	if m.VendorHashes == nil {
		for _, v := range o.arr("vendors") {
			if vo, ok := v.(map[string]any); ok {
				m.VendorHashes = append(m.VendorHashes, object(vo).int("vendorHash"))
			}
		}
	}
	return m
}

func DeserializeMilestone(raw json.RawMessage) (entity.Milestone, error) {
	return decodeWith(raw, milestone)
}

// DeserializePublicMilestones reads the hash-keyed public milestone map.
func DeserializePublicMilestones(raw json.RawMessage) (map[int]entity.Milestone, error) {
	return decodeWith(raw, func(r *reader, o object) map[int]entity.Milestone {
		return keyedObjects[int](r, o, milestone)
	})
}

func DeserializeMilestoneContent(raw json.RawMessage) (entity.MilestoneContent, error) {
	return decodeWith(raw, func(_ *reader, o object) entity.MilestoneContent {
		c := entity.MilestoneContent{
			About:  o.undefined("about"),
			Status: o.undefined("status"),
			Tips:   o.strings("tips"),
		}
		for _, v := range o.arr("itemCategories") {
			cat, ok := v.(map[string]any)
			if !ok {
				continue
			}
			if c.Items == nil {
				c.Items = make(map[string][]int)
			}
			co := object(cat)
			c.Items[co.str("title")] = co.ints("itemHashes")
		}
		return c
	})
}

func artifact(_ *reader, o object) *entity.Artifact {
	if o == nil {
		return nil
	}
	a := &entity.Artifact{
		Hash:       o.int("artifactHash"),
		PowerBonus: o.int("powerBonus"),
		Points: entity.ArtifactPoints{
			Acquired: o.int("pointsAcquired"),
			Used:     o.int("pointsUsed"),
		},
		ResetCount: o.intPtr("resetCount"),
	}
	for _, v := range o.arr("tiers") {
		t, ok := v.(map[string]any)
		if !ok {
			continue
		}
		to := object(t)
		tier := entity.ArtifactTier{
			Hash:           to.int("tierHash"),
			IsUnlocked:     to.bool("isUnlocked"),
			PointsToUnlock: to.int("pointsToUnlock"),
		}
		for _, iv := range to.arr("items") {
			if io, ok := iv.(map[string]any); ok {
				tier.Items = append(tier.Items, entity.ArtifactTierItem{
					Hash:     object(io).int("itemHash"),
					IsActive: object(io).bool("isActive"),
				})
			}
		}
		a.Tiers = append(a.Tiers, tier)
	}
	return a
}

func checklists(r *reader, o object) map[int]map[int]bool {
	if o == nil {
		return nil
	}
	out := make(map[int]map[int]bool, len(o))
	for k, v := range o {
		m, ok := v.(map[string]any)
		if !ok {
			continue
		}
		key, err := strconv.Atoi(k)
		if err != nil {
			r.fail(k, err)
			continue
		}
		out[key] = keyedBools(r, m)
	}
	return out
}

func characterProgression(r *reader, o object) entity.CharacterProgression {
	return entity.CharacterProgression{
		Progressions:              keyedObjects[int](r, o.obj("progressions"), progression),
		Factions:                  keyedObjects[int](r, o.obj("factions"), faction),
		Milestones:                keyedObjects[int](r, o.obj("milestones"), milestone),
		Checklists:                checklists(r, o.obj("checklists")),
		UninstancedItemObjectives: keyedLists[int](r, o.obj("uninstancedItemObjectives"), objective),
		SeasonalArtifact:          artifact(r, o.obj("seasonalArtifact")),
	}
}

func profileProgression(r *reader, o object) entity.ProfileProgression {
	return entity.ProfileProgression{
		Checklists:            checklists(r, o.obj("checklists")),
		SeasonalArtifact:      artifact(r, o.obj("seasonalArtifact")),
		UninstancedObjectives: keyedLists[int](r, o.obj("uninstancedItemObjectives"), objective),
	}
}

func record(r *reader, o object) entity.Record {
	return entity.Record{
		State:              enums.RecordState(o.int("state")),
		Objectives:         listOf(r, o.arr("objectives"), objective),
		IntervalObjectives: listOf(r, o.arr("intervalObjectives"), objective),
		IntervalsRedeemed:  o.int("intervalsRedeemedCount"),
		CompletedCount:     o.intPtr("completedCount"),
		RewardVisibility:   o.bools("rewardVisibilty"),
	}
}

func profileRecords(r *reader, o object) entity.ProfileRecords {
	return entity.ProfileRecords{
		Score:                        o.int("score"),
		LegacyScore:                  o.int("legacyScore"),
		LifetimeScore:                o.int("lifetimeScore"),
		TrackedRecordHash:            o.intPtr("trackedRecordHash"),
		Records:                      keyedObjects[int](r, o.obj("records"), record),
		RecordCategoriesRootNodeHash: o.intPtr("recordCategoriesRootNodeHash"),
		RecordSealsRootNodeHash:      o.intPtr("recordSealsRootNodeHash"),
	}
}

func characterRecords(r *reader, o object) entity.CharacterRecords {
	return entity.CharacterRecords{
		FeaturedRecordHashes:         o.ints("featuredRecordHashes"),
		Records:                      keyedObjects[int](r, o.obj("records"), record),
		RecordCategoriesRootNodeHash: o.intPtr("recordCategoriesRootNodeHash"),
		RecordSealsRootNodeHash:      o.intPtr("recordSealsRootNodeHash"),
	}
}

// collectibleStates flattens {"hash": {"state": n}} to hash -> state.
func collectibleStates(r *reader, o object) map[int]int {
	states := keyedObjects[int](r, o, func(_ *reader, o object) int { return o.int("state") })
	return states
}

func profileCollectibles(r *reader, o object) entity.ProfileCollectibles {
	return entity.ProfileCollectibles{
		RecentCollectibleHashes:          o.ints("recentCollectibleHashes"),
		NewnessFlaggedCollectibleHashes:  o.ints("newnessFlaggedCollectibleHashes"),
		Collectibles:                     collectibleStates(r, o.obj("collectibles")),
		CollectionCategoriesRootNodeHash: o.intPtr("collectionCategoriesRootNodeHash"),
		CollectionBadgesRootNodeHash:     o.intPtr("collectionBadgesRootNodeHash"),
	}
}

func characterCollectibles(r *reader, o object) entity.CharacterCollectibles {
	return entity.CharacterCollectibles{
		Collectibles:                     collectibleStates(r, o.obj("collectibles")),
		CollectionCategoriesRootNodeHash: o.intPtr("collectionCategoriesRootNodeHash"),
		CollectionBadgesRootNodeHash:     o.intPtr("collectionBadgesRootNodeHash"),
	}
}

func metric(r *reader, o object) entity.Metric {
	return entity.Metric{
		Objective: objective(r, o.obj("objectiveProgress")),
		Invisible: o.bool("invisible"),
	}
}

func presentationNode(r *reader, o object) entity.PresentationNode {
	return entity.PresentationNode{
		State:               o.int("state"),
		Objective:           objectivePtr(r, o.obj("objective")),
		ProgressValue:       o.int("progressValue"),
		CompletionValue:     o.int("completionValue"),
		RecordCategoryScore: o.intPtr("recordCategoryScore"),
	}
}

func presentationNodes(r *reader, o object) map[int]entity.PresentationNode {
	if o == nil {
		return nil
	}
	return keyedObjects[int](r, o.obj("nodes"), presentationNode)
}

func transitory(r *reader, o object) entity.Transitory {
	t := entity.Transitory{
		PartyMembers: listOf(r, o.arr("partyMembers"), func(r *reader, o object) entity.TransitoryPartyMember {
			return entity.TransitoryPartyMember{
				MembershipID: r.id(o, "membershipId"),
				EmblemHash:   o.int("emblemHash"),
				DisplayName:  o.undefined("displayName"),
				Status:       o.int("status"),
			}
		}),
		LastOrbitedDestinationHash: o.intPtr("lastOrbitedDestinationHash"),
	}
	if a := o.obj("currentActivity"); a != nil {
		t.CurrentActivity = &entity.TransitoryActivity{
			StartTime:            r.timePtr(a, "startTime"),
			EndTime:              r.timePtr(a, "endTime"),
			Score:                a.float("score"),
			HighestOpposingScore: a.float("highestOpposingFactionScore"),
			NumberOfOpponents:    a.int("numberOfOpponents"),
			NumberOfPlayers:      a.int("numberOfPlayers"),
		}
	}
	if j := o.obj("joinability"); j != nil {
		t.Joinability = entity.FireteamJoinability{
			OpenSlots:      j.int("openSlots"),
			PrivacySetting: j.int("privacySetting"),
			ClosedReasons:  j.int("closedReasons"),
		}
	}
	for _, v := range o.arr("tracking") {
		if m, ok := v.(map[string]any); ok {
			t.Tracking = append(t.Tracking, m)
		}
	}
	return t
}

func craftable(r *reader, o object) entity.CraftableItem {
	return entity.CraftableItem{
		Visible:                  o.bool("visible"),
		FailedRequirementIndexes: o.ints("failedRequirementIndexes"),
		Sockets: listOf(r, o.arr("sockets"), func(r *reader, o object) entity.CraftableSocket {
			return entity.CraftableSocket{
				PlugSetHash: o.int("plugSetHash"),
				Plugs: listOf(r, o.arr("plugs"), func(_ *reader, o object) entity.CraftableSocketPlug {
					return entity.CraftableSocketPlug{
						PlugHash:                 o.int("plugItemHash"),
						FailedRequirementIndexes: o.ints("failedRequirementIndexes"),
					}
				}),
			}
		}),
	}
}

func characterCraftables(r *reader, o object) entity.CharacterCraftables {
	return entity.CharacterCraftables{
		Craftables:           keyedObjects[int](r, o.obj("craftables"), craftable),
		CraftingRootNodeHash: o.int("craftingRootNodeHash"),
	}
}

func kioskItem(r *reader, o object) entity.KioskItem {
	return entity.KioskItem{
		Index:           o.int("index"),
		CanAcquire:      o.bool("canAcquire"),
		FailureIndexes:  o.ints("failureIndexes"),
		FlavorObjective: objectivePtr(r, o.obj("flavorObjective")),
	}
}

func kiosks(r *reader, o object) map[int][]entity.KioskItem {
	if o == nil {
		return nil
	}
	return keyedLists[int](r, o.obj("kioskItems"), kioskItem)
}

func availableActivity(_ *reader, o object) entity.AvailableActivity {
	return entity.AvailableActivity{
		Hash:             o.int("activityHash"),
		IsNew:            o.bool("isNew"),
		CanLead:          o.bool("canLead"),
		CanJoin:          o.bool("canJoin"),
		IsCompleted:      o.bool("isCompleted"),
		IsVisible:        o.bool("isVisible"),
		DisplayLevel:     o.intPtr("displayLevel"),
		RecommendedLight: o.intPtr("recommendedLight"),
		Difficulty:       enums.Difficulty(o.int("difficultyTier")),
	}
}

func characterActivity(r *reader, o object) entity.CharacterActivity {
	a := entity.CharacterActivity{
		DateStarted:         r.time(o, "dateActivityStarted"),
		CurrentActivityHash: o.int("currentActivityHash"),
		CurrentModeHash:     o.int("currentActivityModeHash"),
		CurrentModeHashes:   o.ints("currentActivityModeHashes"),
		CurrentPlaylistHash: o.intPtr("currentPlaylistActivityHash"),
		LastStoryHash:       o.int("lastCompletedStoryHash"),
		AvailableActivities: listOf(r, o.arr("availableActivities"), availableActivity),
	}
	if o.has("currentActivityModeType") {
		m := enums.GameMode(o.int("currentActivityModeType"))
		a.CurrentMode = &m
	}
	for _, m := range o.ints("currentActivityModeTypes") {
		a.CurrentModeTypes = append(a.CurrentModeTypes, enums.GameMode(m))
	}
	return a
}

func renderedData(r *reader, o object) entity.RenderedData {
	d := entity.RenderedData{
		CustomDyes: listOf(r, o.arr("customDyes"), func(_ *reader, o object) entity.Dye {
			return entity.Dye{ChannelHash: o.int("channelHash"), DyeHash: o.int("dyeHash")}
		}),
		CustomizationData: o.obj("customization"),
		ArtRegions:        keyedInts[int](r, o.obj("artRegions")),
	}
	return d
}

func loadouts(r *reader, o object) []entity.Loadout {
	if o == nil {
		return nil
	}
	return listOf(r, o.arr("loadouts"), func(r *reader, o object) entity.Loadout {
		return entity.Loadout{
			ColorHash: o.int("colorHash"),
			IconHash:  o.int("iconHash"),
			NameHash:  o.int("nameHash"),
			Items: listOf(r, o.arr("items"), func(r *reader, o object) entity.LoadoutItem {
				return entity.LoadoutItem{
					InstanceID: r.id(o, "itemInstanceId"),
					PlugHashes: o.ints("plugItemHashes"),
				}
			}),
		}
	})
}

func commendations(r *reader, o object) entity.Commendations {
	return entity.Commendations{
		TotalScore:             o.int("totalScore"),
		ScoreDetailValues:      o.ints("scoreDetailValues"),
		CommendationNodeScores: keyedInts[int](r, o.obj("commendationNodeScoresByHash")),
		CommendationScores:     keyedInts[int](r, o.obj("commendationScoresByHash")),
	}
}
