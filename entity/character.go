package entity

import (
	"time"

	"github.com/kofuk/bungie/enums"
)

type Character struct {
	ID         int64
	MemberID   int64
	MemberType enums.MembershipType
	Light      int
	Stats      map[enums.Stat]int
	Emblem     Image
	EmblemIcon Image
	EmblemHash *int
	LastPlayed time.Time
	// MinutesPlayedTotal is reported by the server in minutes.
	MinutesPlayedTotal       int
	MinutesPlayedThisSession int
	Class                    enums.Class
	Race                     enums.Race
	Gender                   enums.Gender
	ClassHash                int
	RaceHash                 int
	GenderHash               int
	Level                    int
	PercentToNextLevel       float64
	TitleHash                *int
	EmblemColor              Color
}

func (c Character) Link() string {
	return profileLink(c.MemberType, c.MemberID)
}

type Color struct {
	Red   int
	Green int
	Blue  int
	Alpha int
}

type Progression struct {
	Hash                int
	Level               int
	Cap                 int
	DailyLimit          int
	WeeklyLimit         int
	CurrentProgress     int
	DailyProgress       int
	WeeklyProgress      int
	NeededProgress      int
	ProgressToNextLevel int
	CurrentResetCount   *int
	StepIndex           int
}

type Faction struct {
	Progression
	FactionHash int
	VendorIndex int
}

type Objective struct {
	Hash            int
	Visible         bool
	Complete        bool
	Progress        *int
	CompletionValue int
	DestinationHash *int
	ActivityHash    *int
}

type MilestoneActivity struct {
	Hash           int
	ModeHash       *int
	Mode           *enums.GameMode
	ModifierHashes []int
	Challenges     []Objective
	BooleanOptions map[int]bool
}

type Milestone struct {
	Hash            int
	Activities      []MilestoneActivity
	AvailableQuests []int
	VendorHashes    []int
	StartDate       *time.Time
	EndDate         *time.Time
	Order           int
	Rewards         []ClanRewardCategory
}

type MilestoneContent struct {
	About  UndefinedOr[string]
	Status UndefinedOr[string]
	Tips   []string
	Items  map[string][]int
}

type CharacterProgression struct {
	Progressions              map[int]Progression
	Factions                  map[int]Faction
	Milestones                map[int]Milestone
	Checklists                map[int]map[int]bool
	UninstancedItemObjectives map[int][]Objective
	SeasonalArtifact          *Artifact
}

type Artifact struct {
	Hash       int
	PowerBonus int
	Points     ArtifactPoints
	ResetCount *int
	Tiers      []ArtifactTier
}

type ArtifactPoints struct {
	Acquired int
	Used     int
}

type ArtifactTier struct {
	Hash           int
	IsUnlocked     bool
	PointsToUnlock int
	Items          []ArtifactTierItem
}

type ArtifactTierItem struct {
	Hash     int
	IsActive bool
}

type AvailableActivity struct {
	Hash             int
	IsNew            bool
	CanLead          bool
	CanJoin          bool
	IsCompleted      bool
	IsVisible        bool
	DisplayLevel     *int
	RecommendedLight *int
	Difficulty       enums.Difficulty
}

type CharacterActivity struct {
	DateStarted         time.Time
	CurrentActivityHash int
	CurrentModeHash     int
	CurrentMode         *enums.GameMode
	CurrentModeHashes   []int
	CurrentModeTypes    []enums.GameMode
	CurrentPlaylistHash *int
	LastStoryHash       int
	AvailableActivities []AvailableActivity
}

type Dye struct {
	ChannelHash int
	DyeHash     int
}

type RenderedData struct {
	CustomDyes        []Dye
	CustomizationData map[string]any
	ArtRegions        map[int]int
}

type Loadout struct {
	ColorHash int
	IconHash  int
	NameHash  int
	Items     []LoadoutItem
}

type LoadoutItem struct {
	InstanceID int64
	PlugHashes []int
}
