package entity

import (
	"time"

	"github.com/kofuk/bungie/enums"
)

type Profile struct {
	ID                          int64
	Name                        UndefinedOr[string]
	Code                        *int
	Type                        enums.MembershipType
	IsPublic                    bool
	LastPlayed                  time.Time
	CharacterIDs                []int64
	SeasonHashes                []int
	EventCardHashes             []int
	VersionsOwned               int
	CurrentSeasonHash           *int
	CurrentSeasonRewardPowerCap *int
	ActiveEventCardHash         *int
	CurrentGuardianRank         int
	LifetimeHighestGuardianRank int
}

func (p Profile) Link() string {
	return profileLink(p.Type, p.ID)
}

type ProfileItem struct {
	Hash                  int
	Quantity              int
	BindStatus            enums.ItemBindStatus
	Location              enums.ItemLocation
	BucketHash            int
	TransferStatus        enums.TransferStatus
	Lockable              bool
	State                 enums.ItemState
	DismantlePermissions  int
	IsWrapper             bool
	InstanceID            *int64
	OverrideStyleItemHash *int
	ExpireDate            *time.Time
	VersionNumber         *int
	TooltipNotifications  []int
	ItemValueVisibility   []bool
}

type ProfileProgression struct {
	Checklists            map[int]map[int]bool
	SeasonalArtifact      *Artifact
	UninstancedObjectives map[int][]Objective
}

type Record struct {
	State              enums.RecordState
	Objectives         []Objective
	IntervalObjectives []Objective
	IntervalsRedeemed  int
	CompletedCount     *int
	RewardVisibility   []bool
}

type ProfileRecords struct {
	Score                        int
	LegacyScore                  int
	LifetimeScore                int
	TrackedRecordHash            *int
	Records                      map[int]Record
	RecordCategoriesRootNodeHash *int
	RecordSealsRootNodeHash      *int
}

type CharacterRecords struct {
	FeaturedRecordHashes         []int
	Records                      map[int]Record
	RecordCategoriesRootNodeHash *int
	RecordSealsRootNodeHash      *int
}

type ProfileCollectibles struct {
	RecentCollectibleHashes          []int
	NewnessFlaggedCollectibleHashes  []int
	Collectibles                     map[int]int
	CollectionCategoriesRootNodeHash *int
	CollectionBadgesRootNodeHash     *int
}

type CharacterCollectibles struct {
	Collectibles                     map[int]int
	CollectionCategoriesRootNodeHash *int
	CollectionBadgesRootNodeHash     *int
}

type Metric struct {
	Objective Objective
	Invisible bool
}

type PresentationNode struct {
	State               int
	Objective           *Objective
	ProgressValue       int
	CompletionValue     int
	RecordCategoryScore *int
}

type TransitoryPartyMember struct {
	MembershipID int64
	EmblemHash   int
	DisplayName  UndefinedOr[string]
	Status       int
}

type TransitoryActivity struct {
	StartTime            *time.Time
	EndTime              *time.Time
	Score                float64
	HighestOpposingScore float64
	NumberOfOpponents    int
	NumberOfPlayers      int
}

type FireteamJoinability struct {
	OpenSlots      int
	PrivacySetting int
	ClosedReasons  int
}

type Transitory struct {
	PartyMembers               []TransitoryPartyMember
	CurrentActivity            *TransitoryActivity
	Joinability                FireteamJoinability
	Tracking                   []map[string]any
	LastOrbitedDestinationHash *int
}

type CraftableSocketPlug struct {
	PlugHash                 int
	FailedRequirementIndexes []int
}

type CraftableSocket struct {
	PlugSetHash int
	Plugs       []CraftableSocketPlug
}

type CraftableItem struct {
	Visible                  bool
	FailedRequirementIndexes []int
	Sockets                  []CraftableSocket
}

type CharacterCraftables struct {
	Craftables           map[int]CraftableItem
	CraftingRootNodeHash int
}

type KioskItem struct {
	Index           int
	CanAcquire      bool
	FailureIndexes  []int
	FlavorObjective *Objective
}

type Commendations struct {
	TotalScore             int
	ScoreDetailValues      []int
	CommendationNodeScores map[int]int
	CommendationScores     map[int]int
}
