package enums

type GameMode int

const (
	GameModeNone                    GameMode = 0
	GameModeStory                   GameMode = 2
	GameModeStrike                  GameMode = 3
	GameModeRaid                    GameMode = 4
	GameModeAllPvP                  GameMode = 5
	GameModePatrol                  GameMode = 6
	GameModeAllPvE                  GameMode = 7
	GameModeControl                 GameMode = 10
	GameModeClash                   GameMode = 12
	GameModeCrimsonDoubles          GameMode = 15
	GameModeNightfall               GameMode = 16
	GameModeHeroicNightfall         GameMode = 17
	GameModeAllStrikes              GameMode = 18
	GameModeIronBanner              GameMode = 19
	GameModeAllMayhem               GameMode = 25
	GameModeSupremacy               GameMode = 31
	GameModePrivateMatchesAll       GameMode = 32
	GameModeSurvival                GameMode = 37
	GameModeCountdown               GameMode = 38
	GameModeTrialsOfTheNine         GameMode = 39
	GameModeSocial                  GameMode = 40
	GameModeTrialsCountdown         GameMode = 41
	GameModeTrialsSurvival          GameMode = 42
	GameModeIronBannerControl       GameMode = 43
	GameModeIronBannerClash         GameMode = 44
	GameModeIronBannerSupremacy     GameMode = 45
	GameModeScoredNightfall         GameMode = 46
	GameModeScoredHeroicNightfall   GameMode = 47
	GameModeRumble                  GameMode = 48
	GameModeAllDoubles              GameMode = 49
	GameModeDoubles                 GameMode = 50
	GameModePrivateMatchesClash     GameMode = 51
	GameModePrivateMatchesControl   GameMode = 52
	GameModePrivateMatchesSupremacy GameMode = 53
	GameModePrivateMatchesCountdown GameMode = 54
	GameModePrivateMatchesSurvival  GameMode = 55
	GameModePrivateMatchesMayhem    GameMode = 56
	GameModePrivateMatchesRumble    GameMode = 57
	GameModeHeroicAdventure         GameMode = 58
	GameModeShowdown                GameMode = 59
	GameModeLockdown                GameMode = 60
	GameModeScorched                GameMode = 61
	GameModeScorchedTeam            GameMode = 62
	GameModeGambit                  GameMode = 63
	GameModeAllPvECompetitive       GameMode = 64
	GameModeBreakthrough            GameMode = 65
	GameModeBlackArmoryRun          GameMode = 66
	GameModeSalvage                 GameMode = 67
	GameModeIronBannerSalvage       GameMode = 68
	GameModePvPCompetitive          GameMode = 69
	GameModePvPQuickplay            GameMode = 70
	GameModeClashQuickplay          GameMode = 71
	GameModeClashCompetitive        GameMode = 72
	GameModeControlQuickplay        GameMode = 73
	GameModeControlCompetitive      GameMode = 74
	GameModeGambitPrime             GameMode = 75
	GameModeReckoning               GameMode = 76
	GameModeMenagerie               GameMode = 77
	GameModeVexOffensive            GameMode = 78
	GameModeNightmareHunt           GameMode = 79
	GameModeElimination             GameMode = 80
	GameModeMomentum                GameMode = 81
	GameModeDungeon                 GameMode = 82
	GameModeSundial                 GameMode = 83
	GameModeTrialsOfOsiris          GameMode = 84
	GameModeDares                   GameMode = 85
	GameModeOffensive               GameMode = 86
	GameModeLostSector              GameMode = 87
	GameModeRift                    GameMode = 88
	GameModeZoneControl             GameMode = 89
	GameModeIronBannerRift          GameMode = 90
	GameModeIronBannerZoneControl   GameMode = 91
	GameModeRelic                   GameMode = 92
)

var gameModeNames = map[GameMode]string{
	GameModeNone:                    "NONE",
	GameModeStory:                   "STORY",
	GameModeStrike:                  "STRIKE",
	GameModeRaid:                    "RAID",
	GameModeAllPvP:                  "ALLPVP",
	GameModePatrol:                  "PATROL",
	GameModeAllPvE:                  "ALLPVE",
	GameModeControl:                 "CONTROL",
	GameModeClash:                   "CLASH",
	GameModeCrimsonDoubles:          "CRIMSONDOUBLES",
	GameModeNightfall:               "NIGHTFALL",
	GameModeHeroicNightfall:         "HEROICNIGHTFALL",
	GameModeAllStrikes:              "ALLSTRIKES",
	GameModeIronBanner:              "IRONBANNER",
	GameModeAllMayhem:               "ALLMAYHEM",
	GameModeSupremacy:               "SUPREMACY",
	GameModePrivateMatchesAll:       "PRIVATEMATCHESALL",
	GameModeSurvival:                "SURVIVAL",
	GameModeCountdown:               "COUNTDOWN",
	GameModeTrialsOfTheNine:         "TRIALSOFTHENINE",
	GameModeSocial:                  "SOCIAL",
	GameModeTrialsCountdown:         "TRIALSCOUNTDOWN",
	GameModeTrialsSurvival:          "TRIALSSURVIVAL",
	GameModeIronBannerControl:       "IRONBANNERCONTROL",
	GameModeIronBannerClash:         "IRONBANNERCLASH",
	GameModeIronBannerSupremacy:     "IRONBANNERSUPREMACY",
	GameModeScoredNightfall:         "SCOREDNIGHTFALL",
	GameModeScoredHeroicNightfall:   "SCOREDHEROICNIGHTFALL",
	GameModeRumble:                  "RUMBLE",
	GameModeAllDoubles:              "ALLDOUBLES",
	GameModeDoubles:                 "DOUBLES",
	GameModePrivateMatchesClash:     "PRIVATEMATCHESCLASH",
	GameModePrivateMatchesControl:   "PRIVATEMATCHESCONTROL",
	GameModePrivateMatchesSupremacy: "PRIVATEMATCHESSUPREMACY",
	GameModePrivateMatchesCountdown: "PRIVATEMATCHESCOUNTDOWN",
	GameModePrivateMatchesSurvival:  "PRIVATEMATCHESSURVIVAL",
	GameModePrivateMatchesMayhem:    "PRIVATEMATCHESMAYHEM",
	GameModePrivateMatchesRumble:    "PRIVATEMATCHESRUMBLE",
	GameModeHeroicAdventure:         "HEROICADVENTURE",
	GameModeShowdown:                "SHOWDOWN",
	GameModeLockdown:                "LOCKDOWN",
	GameModeScorched:                "SCORCHED",
	GameModeScorchedTeam:            "SCORCHEDTEAM",
	GameModeGambit:                  "GAMBIT",
	GameModeAllPvECompetitive:       "ALLPVECOMPETITIVE",
	GameModeBreakthrough:            "BREAKTHROUGH",
	GameModeBlackArmoryRun:          "BLACKARMORYRUN",
	GameModeSalvage:                 "SALVAGE",
	GameModeIronBannerSalvage:       "IRONBANNERSALVAGE",
	GameModePvPCompetitive:          "PVPCOMPETITIVE",
	GameModePvPQuickplay:            "PVPQUICKPLAY",
	GameModeClashQuickplay:          "CLASHQUICKPLAY",
	GameModeClashCompetitive:        "CLASHCOMPETITIVE",
	GameModeControlQuickplay:        "CONTROLQUICKPLAY",
	GameModeControlCompetitive:      "CONTROLCOMPETITIVE",
	GameModeGambitPrime:             "GAMBITPRIME",
	GameModeReckoning:               "RECKONING",
	GameModeMenagerie:               "MENAGERIE",
	GameModeVexOffensive:            "VEXOFFENSIVE",
	GameModeNightmareHunt:           "NIGHTMAREHUNT",
	GameModeElimination:             "ELIMINATION",
	GameModeMomentum:                "MOMENTUM",
	GameModeDungeon:                 "DUNGEON",
	GameModeSundial:                 "SUNDIAL",
	GameModeTrialsOfOsiris:          "TRIALS_OF_OSIRIS",
	GameModeDares:                   "DARES",
	GameModeOffensive:               "OFFENSIVE",
	GameModeLostSector:              "LOSTSECTOR",
	GameModeRift:                    "RIFT",
	GameModeZoneControl:             "ZONECONTROL",
	GameModeIronBannerRift:          "IRONBANNERRIFT",
	GameModeIronBannerZoneControl:   "IRONBANNERZONECONTROL",
	GameModeRelic:                   "RELIC",
}

func (m GameMode) String() string { return nameOf("GameMode", gameModeNames, m) }

func (m GameMode) IsKnown() bool {
	_, ok := gameModeNames[m]
	return ok
}

type PeriodType int

const (
	PeriodNone     PeriodType = 0
	PeriodDaily    PeriodType = 1
	PeriodAllTime  PeriodType = 2
	PeriodActivity PeriodType = 3
)

var periodTypeNames = map[PeriodType]string{
	PeriodNone:     "NONE",
	PeriodDaily:    "DAILY",
	PeriodAllTime:  "ALL_TIME",
	PeriodActivity: "ACTIVITY",
}

func (p PeriodType) String() string { return nameOf("PeriodType", periodTypeNames, p) }

func (p PeriodType) IsKnown() bool {
	_, ok := periodTypeNames[p]
	return ok
}

type StatsGroupType int

const (
	StatsGroupNone         StatsGroupType = 0
	StatsGroupGeneral      StatsGroupType = 1
	StatsGroupWeapons      StatsGroupType = 2
	StatsGroupMedals       StatsGroupType = 3
	StatsGroupReserved     StatsGroupType = 100
	StatsGroupLeaderboard  StatsGroupType = 101
	StatsGroupActivity     StatsGroupType = 102
	StatsGroupUniqueWeapon StatsGroupType = 103
	StatsGroupInternal     StatsGroupType = 104
)

var statsGroupTypeNames = map[StatsGroupType]string{
	StatsGroupNone:         "NONE",
	StatsGroupGeneral:      "GENERAL",
	StatsGroupWeapons:      "WEAPONS",
	StatsGroupMedals:       "MEDALS",
	StatsGroupReserved:     "RESERVED_GROUPS",
	StatsGroupLeaderboard:  "LEADERBOARDS",
	StatsGroupActivity:     "ACTIVITY",
	StatsGroupUniqueWeapon: "UNIQUE_WEAPON",
	StatsGroupInternal:     "INTERNAL",
}

func (g StatsGroupType) String() string { return nameOf("StatsGroupType", statsGroupTypeNames, g) }

func (g StatsGroupType) IsKnown() bool {
	_, ok := statsGroupTypeNames[g]
	return ok
}

type Difficulty int

const (
	DifficultyTrivial          Difficulty = 0
	DifficultyEasy             Difficulty = 1
	DifficultyNormal           Difficulty = 2
	DifficultyChallenging      Difficulty = 3
	DifficultyHard             Difficulty = 4
	DifficultyBrave            Difficulty = 5
	DifficultyAlmostImpossible Difficulty = 6
	DifficultyImpossible       Difficulty = 7
)

var difficultyNames = map[Difficulty]string{
	DifficultyTrivial:          "TRIVIAL",
	DifficultyEasy:             "EASY",
	DifficultyNormal:           "NORMAL",
	DifficultyChallenging:      "CHALLENGING",
	DifficultyHard:             "HARD",
	DifficultyBrave:            "BRAVE",
	DifficultyAlmostImpossible: "ALMOST_IMPOSSIBLE",
	DifficultyImpossible:       "IMPOSSIBLE",
}

func (d Difficulty) String() string { return nameOf("Difficulty", difficultyNames, d) }

func (d Difficulty) IsKnown() bool {
	_, ok := difficultyNames[d]
	return ok
}
