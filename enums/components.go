package enums

type ComponentType int

const (
	ComponentNone                ComponentType = 0
	ComponentProfiles            ComponentType = 100
	ComponentVendorReceipts      ComponentType = 101
	ComponentProfileInventories  ComponentType = 102
	ComponentProfileCurrencies   ComponentType = 103
	ComponentProfileProgression  ComponentType = 104
	ComponentPlatformSilver      ComponentType = 105
	ComponentCharacters          ComponentType = 200
	ComponentCharacterInventory  ComponentType = 201
	ComponentCharacterProgress   ComponentType = 202
	ComponentCharacterRenderData ComponentType = 203
	ComponentCharacterActivities ComponentType = 204
	ComponentCharacterEquipment  ComponentType = 205
	ComponentCharacterLoadouts   ComponentType = 206
	ComponentItemInstances       ComponentType = 300
	ComponentItemObjectives      ComponentType = 301
	ComponentItemPerks           ComponentType = 302
	ComponentItemRenderData      ComponentType = 303
	ComponentItemStats           ComponentType = 304
	ComponentItemSockets         ComponentType = 305
	ComponentItemTalentGrids     ComponentType = 306
	ComponentItemCommonData      ComponentType = 307
	ComponentItemPlugStates      ComponentType = 308
	ComponentItemPlugObjectives  ComponentType = 309
	ComponentItemReusablePlugs   ComponentType = 310
	ComponentVendors             ComponentType = 400
	ComponentVendorCategories    ComponentType = 401
	ComponentVendorSales         ComponentType = 402
	ComponentKiosks              ComponentType = 500
	ComponentCurrencyLookups     ComponentType = 600
	ComponentPresentationNodes   ComponentType = 700
	ComponentCollectibles        ComponentType = 800
	ComponentRecords             ComponentType = 900
	ComponentTransitory          ComponentType = 1000
	ComponentMetrics             ComponentType = 1100
	ComponentStringVariables     ComponentType = 1200
	ComponentCraftables          ComponentType = 1300
	ComponentSocialCommendations ComponentType = 1400
)

var componentTypeNames = map[ComponentType]string{
	ComponentNone:                "NONE",
	ComponentProfiles:            "PROFILE",
	ComponentVendorReceipts:      "VENDOR_RECEIPTS",
	ComponentProfileInventories:  "PROFILE_INVENTORIES",
	ComponentProfileCurrencies:   "PROFILE_CURRENCIES",
	ComponentProfileProgression:  "PROFILE_PROGRESSION",
	ComponentPlatformSilver:      "PLATFORM_SILVER",
	ComponentCharacters:          "CHARACTERS",
	ComponentCharacterInventory:  "CHARACTER_INVENTORY",
	ComponentCharacterProgress:   "CHARACTER_PROGRESSION",
	ComponentCharacterRenderData: "CHARACTER_RENDER_DATA",
	ComponentCharacterActivities: "CHARACTER_ACTIVITIES",
	ComponentCharacterEquipment:  "CHARACTER_EQUIPMENT",
	ComponentCharacterLoadouts:   "CHARACTER_LOADOUTS",
	ComponentItemInstances:       "ITEM_INSTANCES",
	ComponentItemObjectives:      "ITEM_OBJECTIVES",
	ComponentItemPerks:           "ITEM_PERKS",
	ComponentItemRenderData:      "ITEM_RENDER_DATA",
	ComponentItemStats:           "ITEM_STATS",
	ComponentItemSockets:         "ITEM_SOCKETS",
	ComponentItemTalentGrids:     "ITEM_TALENT_GRINDS",
	ComponentItemCommonData:      "ITEM_COMMON_DATA",
	ComponentItemPlugStates:      "ITEM_PLUG_STATES",
	ComponentItemPlugObjectives:  "ITEM_PLUG_OBJECTIVES",
	ComponentItemReusablePlugs:   "ITEM_REUSABLE_PLUGS",
	ComponentVendors:             "VENDORS",
	ComponentVendorCategories:    "VENDOR_CATEGORIES",
	ComponentVendorSales:         "VENDOR_SALES",
	ComponentKiosks:              "KIOSKS",
	ComponentCurrencyLookups:     "CURRENCY_LOOKUPS",
	ComponentPresentationNodes:   "PRESENTATION_NODES",
	ComponentCollectibles:        "COLLECTIBLES",
	ComponentRecords:             "RECORDS",
	ComponentTransitory:          "TRANSITORY",
	ComponentMetrics:             "METRICS",
	ComponentStringVariables:     "STRING_VARIABLES",
	ComponentCraftables:          "CRAFTABLES",
	ComponentSocialCommendations: "SOCIAL_COMMENDATIONS",
}

func (c ComponentType) String() string { return nameOf("ComponentType", componentTypeNames, c) }

func (c ComponentType) IsKnown() bool {
	_, ok := componentTypeNames[c]
	return ok
}

// ItemComponents are all the components that end up in itemComponents.
var ItemComponents = []ComponentType{
	ComponentItemInstances,
	ComponentItemObjectives,
	ComponentItemPerks,
	ComponentItemRenderData,
	ComponentItemStats,
	ComponentItemSockets,
	ComponentItemTalentGrids,
	ComponentItemPlugStates,
	ComponentItemPlugObjectives,
	ComponentItemReusablePlugs,
}

// AllComponents requests every component the API knows about.
var AllComponents = []ComponentType{
	ComponentProfiles,
	ComponentVendorReceipts,
	ComponentProfileInventories,
	ComponentProfileCurrencies,
	ComponentProfileProgression,
	ComponentPlatformSilver,
	ComponentCharacters,
	ComponentCharacterInventory,
	ComponentCharacterProgress,
	ComponentCharacterRenderData,
	ComponentCharacterActivities,
	ComponentCharacterEquipment,
	ComponentCharacterLoadouts,
	ComponentItemInstances,
	ComponentItemObjectives,
	ComponentItemPerks,
	ComponentItemRenderData,
	ComponentItemStats,
	ComponentItemSockets,
	ComponentItemTalentGrids,
	ComponentItemPlugStates,
	ComponentItemPlugObjectives,
	ComponentItemReusablePlugs,
	ComponentKiosks,
	ComponentCurrencyLookups,
	ComponentPresentationNodes,
	ComponentCollectibles,
	ComponentRecords,
	ComponentTransitory,
	ComponentMetrics,
	ComponentStringVariables,
	ComponentCraftables,
	ComponentSocialCommendations,
}

// Privacy is the visibility the server reports for each component block.
type Privacy int

const (
	PrivacyNone    Privacy = 0
	PrivacyPublic  Privacy = 1
	PrivacyPrivate Privacy = 2
)

var privacyNames = map[Privacy]string{
	PrivacyNone:    "NONE",
	PrivacyPublic:  "PUBLIC",
	PrivacyPrivate: "PRIVATE",
}

func (p Privacy) String() string { return nameOf("Privacy", privacyNames, p) }

func (p Privacy) IsKnown() bool {
	_, ok := privacyNames[p]
	return ok
}
