package entity

import "encoding/json"

// Component is the result of a profile request. A field is set only when its
// component was requested, the server returned it, and it is public.
type Component struct {
	Profiles                 *Profile
	ProfileProgression       *ProfileProgression
	ProfileCurrencies        []ProfileItem
	ProfileInventories       []ProfileItem
	PlatformSilver           map[string]ProfileItem
	ProfileKiosks            map[int][]KioskItem
	ProfileRecords           *ProfileRecords
	ProfileCollectibles      *ProfileCollectibles
	ProfilePresentationNodes map[int]PresentationNode
	ProfileStringVariables   map[int]int
	ProfileCommendations     *Commendations
	Transitory               *Transitory
	Metrics                  map[int]Metric
	MetricsRootNodeHash      *int
	VendorReceipts           []json.RawMessage

	Characters                 map[int64]Character
	CharacterInventories       map[int64][]ProfileItem
	CharacterEquipments        map[int64][]ProfileItem
	CharacterProgressions      map[int64]CharacterProgression
	CharacterRenderData        map[int64]RenderedData
	CharacterActivities        map[int64]CharacterActivity
	CharacterLoadouts          map[int64][]Loadout
	CharacterRecords           map[int64]CharacterRecords
	CharacterCollectibles      map[int64]CharacterCollectibles
	CharacterKiosks            map[int64]map[int][]KioskItem
	CharacterPresentationNodes map[int64]map[int]PresentationNode
	CharacterStringVariables   map[int64]map[int]int
	CharacterCurrencyLookups   map[int64]map[int]int
	CharacterCraftables        map[int64]CharacterCraftables

	ItemComponents *ItemsComponent
}

// CharacterComponent is the result of a single character request.
type CharacterComponent struct {
	Character         *Character
	Inventory         []ProfileItem
	Equipment         []ProfileItem
	Progressions      *CharacterProgression
	RenderData        *RenderedData
	Activities        *CharacterActivity
	Loadouts          []Loadout
	Records           *CharacterRecords
	Collectibles      *CharacterCollectibles
	Kiosks            map[int][]KioskItem
	PresentationNodes map[int]PresentationNode
	StringVariables   map[int]int
	CurrencyLookups   map[int]int
	ItemComponents    *ItemsComponent
}

// ItemComponent is the result of a single item request.
type ItemComponent struct {
	Item           *ProfileItem
	Instance       *ItemInstance
	Objectives     []Objective
	Perks          []ItemPerk
	RenderData     *RenderedData
	Stats          map[int]ItemStat
	Sockets        []ItemSocket
	ReusablePlugs  map[int][]PlugItemState
	PlugObjectives map[int][]Objective
	TalentGrid     *TalentGrid
	CharacterID    *int64
}

// VendorsComponent is the result of a vendors request. Vendor item details
// are kept as sent.
type VendorsComponent struct {
	Vendors        map[int]Vendor
	Sales          map[int]map[int]VendorSale
	Categories     map[int]json.RawMessage
	Currencies     map[int]int
	ItemComponents map[int]json.RawMessage
}
