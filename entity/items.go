package entity

import (
	"encoding/json"
	"time"

	"github.com/kofuk/bungie/enums"
)

// ItemInstance is the per-instance state of an item (ITEM_INSTANCES).
type ItemInstance struct {
	DamageType                  enums.DamageType
	DamageTypeHash              *int
	PrimaryStat                 *ItemStat
	ItemLevel                   int
	Quality                     int
	IsEquipped                  bool
	CanEquip                    bool
	EquipRequiredLevel          int
	UnlockHashesRequiredToEquip []int
	CannotEquipReason           int
	BreakerType                 *int
	BreakerTypeHash             *int
	Energy                      *ItemEnergy
	GearTier                    *int
}

type ItemEnergy struct {
	TypeHash int
	Type     int
	Capacity int
	Used     int
	Unused   int
}

type ItemStat struct {
	Hash  int
	Value int
}

type ItemPerk struct {
	Hash     int
	IconPath Image
	IsActive bool
	Visible  bool
}

type ItemSocket struct {
	PlugHash          *int
	IsEnabled         bool
	IsVisible         bool
	EnableFailIndexes []int
}

type PlugItemState struct {
	PlugItemHash      int
	CanInsert         bool
	Enabled           bool
	InsertFailIndexes []int
	EnableFailIndexes []int
	StackSize         *int
	MaxStackSize      *int
}

type TalentGridNode struct {
	Index       int
	Hash        int
	State       int
	IsActivated bool
	StepIndex   int
	Hidden      bool
}

type TalentGrid struct {
	Hash           int
	IsGridComplete bool
	Nodes          []TalentGridNode
	Progression    *Progression
}

// ItemsComponent aggregates the per-instance item component maps. Each map is
// keyed by item instance id and is nil when the component was not returned.
type ItemsComponent struct {
	Instances      map[int64]ItemInstance
	Objectives     map[int64][]Objective
	Perks          map[int64][]ItemPerk
	RenderData     map[int64]RenderedData
	Stats          map[int64]map[int]ItemStat
	Sockets        map[int64][]ItemSocket
	ReusablePlugs  map[int64]map[int][]PlugItemState
	PlugObjectives map[int64]map[int][]Objective
	TalentGrids    map[int64]TalentGrid
	PlugStates     map[int]PlugItemState
}

// InventoryEntity is an inventory item definition. Each sub-object of the
// definition is optional on its own.
type InventoryEntity struct {
	Hash               int
	Index              int
	Name               UndefinedOr[string]
	Description        UndefinedOr[string]
	Icon               Image
	HasIcon            bool
	Watermark          *Image
	Screenshot         *Image
	FlavorText         UndefinedOr[string]
	TypeName           UndefinedOr[string]
	TypeAndTierName    UndefinedOr[string]
	Type               enums.ItemType
	SubType            enums.ItemSubType
	ClassType          enums.Class
	DamageTypes        []enums.DamageType
	DefaultDamageType  enums.DamageType
	Equippable         bool
	AllowActions       bool
	Redacted           bool
	Blacklisted        bool
	NonTransferrable   bool
	CollectibleHash    *int
	SummaryHash        *int
	SeasonHash         *int
	BreakerTypeHash    *int
	Lore               *int
	ItemCategoryHashes []int
	TraitIDs           []string

	// From the inventory block.
	Tier           *enums.TierType
	TierName       UndefinedOr[string]
	BucketHash     *int
	StackSize      *int
	IsInstanceItem *bool

	// From the equippingBlock.
	AmmoType          *enums.AmmoType
	EquipmentSlotHash *int

	Stats      map[int]ItemStat
	Sockets    []EntitySocket
	Perks      []ItemPerk
	Objectives []int
}

type EntitySocket struct {
	TypeHash              int
	SingleInitialItemHash int
	ReusablePlugSetHash   *int
	RandomizedPlugSetHash *int
	DefaultVisible        bool
}

type ObjectiveEntity struct {
	Hash                          int
	Index                         int
	Name                          UndefinedOr[string]
	Description                   UndefinedOr[string]
	Icon                          Image
	HasIcon                       bool
	Redacted                      bool
	Blacklisted                   bool
	UnlockValueHash               int
	CompletionValue               int
	Scope                         int
	LocationHash                  int
	AllowNegativeValue            bool
	AllowValueChangeWhenCompleted bool
	IsCountingDownward            bool
	ValueStyle                    int
	ProgressDescription           UndefinedOr[string]
	AllowOvercompletion           bool
	ShowValueOnComplete           bool
	IsDisplayOnlyObjective        bool
	CompleteValueStyle            int
	InProgressValueStyle          int
}

// Entity is a definition of any kind not given a dedicated type.
type Entity struct {
	Hash        int
	Index       int
	Name        UndefinedOr[string]
	Description UndefinedOr[string]
	Icon        Image
	HasIcon     bool
	Redacted    bool
	Blacklisted bool
	// Raw is the whole definition as sent.
	Raw json.RawMessage
}

type SearchableEntity struct {
	Hash           int
	EntityType     string
	Name           UndefinedOr[string]
	Description    UndefinedOr[string]
	Icon           Image
	HasIcon        bool
	Weight         float64
	SuggestedWords []string
}

type VendorSale struct {
	VendorItemIndex       int
	ItemHash              int
	OverrideStyleItemHash *int
	Quantity              int
	Costs                 []ItemQuantity
	SaleStatus            int
	RequiredUnlocks       []int
}

type ItemQuantity struct {
	Hash       int
	InstanceID *int64
	Quantity   int
}

type Vendor struct {
	Hash                int
	AckState            *int
	CanPurchase         bool
	Enabled             bool
	NextRefreshDate     *time.Time
	Progression         *Progression
	VendorLocationIndex int
	SeasonalRank        *int
}
