package enums

type FireteamPlatform int

const (
	FireteamPlatformAny         FireteamPlatform = 0
	FireteamPlatformPlaystation FireteamPlatform = 1
	FireteamPlatformXbox        FireteamPlatform = 2
	FireteamPlatformBlizzard    FireteamPlatform = 3
	FireteamPlatformSteam       FireteamPlatform = 4
	FireteamPlatformStadia      FireteamPlatform = 5
	FireteamPlatformEgs         FireteamPlatform = 6
)

var fireteamPlatformNames = map[FireteamPlatform]string{
	FireteamPlatformAny:         "ANY",
	FireteamPlatformPlaystation: "PSN_NETWORK",
	FireteamPlatformXbox:        "XBOX_LIVE",
	FireteamPlatformBlizzard:    "BLIZZARD",
	FireteamPlatformSteam:       "STEAM",
	FireteamPlatformStadia:      "STADIA",
	FireteamPlatformEgs:         "EGS",
}

func (p FireteamPlatform) String() string {
	return nameOf("FireteamPlatform", fireteamPlatformNames, p)
}

func (p FireteamPlatform) IsKnown() bool {
	_, ok := fireteamPlatformNames[p]
	return ok
}

type FireteamActivity int

const (
	FireteamActivityAll           FireteamActivity = 0
	FireteamActivityCrucible      FireteamActivity = 2
	FireteamActivityTrials        FireteamActivity = 3
	FireteamActivityNightfall     FireteamActivity = 4
	FireteamActivityAny           FireteamActivity = 5
	FireteamActivityGambit        FireteamActivity = 6
	FireteamActivityBlindWell     FireteamActivity = 7
	FireteamActivityNightmareHunt FireteamActivity = 12
	FireteamActivityAltarOfSorrow FireteamActivity = 14
	FireteamActivityDungeon       FireteamActivity = 15
	FireteamActivityRaidLW        FireteamActivity = 20
	FireteamActivityRaidGOS       FireteamActivity = 21
	FireteamActivityRaidDSC       FireteamActivity = 22
	FireteamActivityExoChallenge  FireteamActivity = 23
	FireteamActivityExoticQuest   FireteamActivity = 27
	FireteamActivityRaidVOG       FireteamActivity = 28
	FireteamActivityShatteredThr  FireteamActivity = 33
	FireteamActivityProphecy      FireteamActivity = 34
	FireteamActivityPitOfHeresy   FireteamActivity = 35
	FireteamActivityDares         FireteamActivity = 36
	FireteamActivityGrasp         FireteamActivity = 37
	FireteamActivityRaidKF        FireteamActivity = 38
	FireteamActivityRaidVow       FireteamActivity = 39
	FireteamActivityCampaign      FireteamActivity = 40
	FireteamActivityWellspring    FireteamActivity = 41
)

var fireteamActivityNames = map[FireteamActivity]string{
	FireteamActivityAll:           "ALL",
	FireteamActivityCrucible:      "CRUCIBLE",
	FireteamActivityTrials:        "TRIALS_OF_OSIRIS",
	FireteamActivityNightfall:     "NIGHTFALL",
	FireteamActivityAny:           "ANY",
	FireteamActivityGambit:        "GAMBIT",
	FireteamActivityBlindWell:     "BLIND_WELL",
	FireteamActivityNightmareHunt: "NIGHTMARE_HUNTS",
	FireteamActivityAltarOfSorrow: "ALTARS_OF_SORROWS",
	FireteamActivityDungeon:       "DUNGEON",
	FireteamActivityRaidLW:        "RAID_LW",
	FireteamActivityRaidGOS:       "RAID_GOS",
	FireteamActivityRaidDSC:       "RAID_DSC",
	FireteamActivityExoChallenge:  "EXO_CHALLENGE",
	FireteamActivityExoticQuest:   "EXOTIC_QUEST",
	FireteamActivityRaidVOG:       "RAID_VOG",
	FireteamActivityShatteredThr:  "SHATTERED_THRONE",
	FireteamActivityProphecy:      "PROPHECY",
	FireteamActivityPitOfHeresy:   "PIT_OF_HERESY",
	FireteamActivityDares:         "DOE",
	FireteamActivityGrasp:         "DUNGEON_GOA",
	FireteamActivityRaidKF:        "RAID_KF",
	FireteamActivityRaidVow:       "VOW_OF_THE_DISCIPLE",
	FireteamActivityCampaign:      "CAMPAIGN",
	FireteamActivityWellspring:    "WELLSPRING",
}

func (a FireteamActivity) String() string {
	return nameOf("FireteamActivity", fireteamActivityNames, a)
}

func (a FireteamActivity) IsKnown() bool {
	_, ok := fireteamActivityNames[a]
	return ok
}

type FireteamDate int

const (
	FireteamDateAll      FireteamDate = 0
	FireteamDateNow      FireteamDate = 1
	FireteamDateToday    FireteamDate = 2
	FireteamDateTwoDays  FireteamDate = 3
	FireteamDateThisWeek FireteamDate = 4
)

var fireteamDateNames = map[FireteamDate]string{
	FireteamDateAll:      "ALL",
	FireteamDateNow:      "NOW",
	FireteamDateToday:    "TODAY",
	FireteamDateTwoDays:  "TWO_DAYS",
	FireteamDateThisWeek: "THIS_WEEK",
}

func (d FireteamDate) String() string { return nameOf("FireteamDate", fireteamDateNames, d) }

func (d FireteamDate) IsKnown() bool {
	_, ok := fireteamDateNames[d]
	return ok
}

type FireteamSlotSearch int

const (
	FireteamSlotNoRestriction          FireteamSlotSearch = 0
	FireteamSlotHasOpenPlayerOrAltSlot FireteamSlotSearch = 1
	FireteamSlotHasOpenPlayerSlot      FireteamSlotSearch = 2
)

type FireteamPublicSearch int

const (
	FireteamPublicAndPrivate FireteamPublicSearch = 0
	FireteamPublicOnly       FireteamPublicSearch = 1
	FireteamPrivateOnly      FireteamPublicSearch = 2
)
