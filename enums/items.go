package enums

type ItemType int

const (
	ItemTypeNone              ItemType = 0
	ItemTypeCurrency          ItemType = 1
	ItemTypeArmor             ItemType = 2
	ItemTypeWeapon            ItemType = 3
	ItemTypeMessage           ItemType = 7
	ItemTypeEngram            ItemType = 8
	ItemTypeConsumable        ItemType = 9
	ItemTypeExchangeMaterial  ItemType = 10
	ItemTypeMissionReward     ItemType = 11
	ItemTypeQuestStep         ItemType = 12
	ItemTypeQuestStepComplete ItemType = 13
	ItemTypeEmblem            ItemType = 14
	ItemTypeQuest             ItemType = 15
	ItemTypeSubclass          ItemType = 16
	ItemTypeClanBanner        ItemType = 17
	ItemTypeAura              ItemType = 18
	ItemTypeMod               ItemType = 19
	ItemTypeDummy             ItemType = 20
	ItemTypeShip              ItemType = 21
	ItemTypeVehicle           ItemType = 22
	ItemTypeEmote             ItemType = 23
	ItemTypeGhost             ItemType = 24
	ItemTypePackage           ItemType = 25
	ItemTypeBounty            ItemType = 26
	ItemTypeWrapper           ItemType = 27
	ItemTypeSeasonalArtifact  ItemType = 28
	ItemTypeFinisher          ItemType = 29
	ItemTypePattern           ItemType = 30
)

var itemTypeNames = map[ItemType]string{
	ItemTypeNone:              "NONE",
	ItemTypeCurrency:          "CURRENCY",
	ItemTypeArmor:             "ARMOR",
	ItemTypeWeapon:            "WEAPON",
	ItemTypeMessage:           "MESSAGE",
	ItemTypeEngram:            "ENGRAM",
	ItemTypeConsumable:        "CONSUMABLE",
	ItemTypeExchangeMaterial:  "EXCHANGE_MATERIAL",
	ItemTypeMissionReward:     "MISSION_REWARD",
	ItemTypeQuestStep:         "QUEST_STEP",
	ItemTypeQuestStepComplete: "QUEST_STEP_COMPLETE",
	ItemTypeEmblem:            "EMBLEM",
	ItemTypeQuest:             "QUEST",
	ItemTypeSubclass:          "SUBCLASS",
	ItemTypeClanBanner:        "CLAN_BANNER",
	ItemTypeAura:              "AURA",
	ItemTypeMod:               "MOD",
	ItemTypeDummy:             "DUMMY",
	ItemTypeShip:              "SHIP",
	ItemTypeVehicle:           "VEHICLE",
	ItemTypeEmote:             "EMOTE",
	ItemTypeGhost:             "GHOST",
	ItemTypePackage:           "PACKAGE",
	ItemTypeBounty:            "BOUNTY",
	ItemTypeWrapper:           "WRAPPER",
	ItemTypeSeasonalArtifact:  "SEASONAL_ARTIFACT",
	ItemTypeFinisher:          "FINISHER",
	ItemTypePattern:           "PATTERN",
}

func (t ItemType) String() string { return nameOf("ItemType", itemTypeNames, t) }

func (t ItemType) IsKnown() bool {
	_, ok := itemTypeNames[t]
	return ok
}

type ItemSubType int

const (
	ItemSubTypeNone           ItemSubType = 0
	ItemSubTypeAutoRifle      ItemSubType = 6
	ItemSubTypeShotgun        ItemSubType = 7
	ItemSubTypeMachinegun     ItemSubType = 8
	ItemSubTypeHandCannon     ItemSubType = 9
	ItemSubTypeRocketLauncher ItemSubType = 10
	ItemSubTypeFusionRifle    ItemSubType = 11
	ItemSubTypeSniperRifle    ItemSubType = 12
	ItemSubTypePulseRifle     ItemSubType = 13
	ItemSubTypeScoutRifle     ItemSubType = 14
	ItemSubTypeSidearm        ItemSubType = 17
	ItemSubTypeSword          ItemSubType = 18
	ItemSubTypeMask           ItemSubType = 19
	ItemSubTypeShader         ItemSubType = 20
	ItemSubTypeOrnament       ItemSubType = 21
	ItemSubTypeLinearFusion   ItemSubType = 22
	ItemSubTypeGrenadeLauncer ItemSubType = 23
	ItemSubTypeSubmachineGun  ItemSubType = 24
	ItemSubTypeTraceRifle     ItemSubType = 25
	ItemSubTypeHelmet         ItemSubType = 26
	ItemSubTypeGauntlets      ItemSubType = 27
	ItemSubTypeChest          ItemSubType = 28
	ItemSubTypeLeg            ItemSubType = 29
	ItemSubTypeClassArmor     ItemSubType = 30
	ItemSubTypeBow            ItemSubType = 31
	ItemSubTypeRepeatable     ItemSubType = 32
	ItemSubTypeGlaive         ItemSubType = 33
)

var itemSubTypeNames = map[ItemSubType]string{
	ItemSubTypeNone:           "NONE",
	ItemSubTypeAutoRifle:      "AUTO_RIFLE",
	ItemSubTypeShotgun:        "SHOTGUN",
	ItemSubTypeMachinegun:     "MACHINEGUN",
	ItemSubTypeHandCannon:     "HAND_CANNON",
	ItemSubTypeRocketLauncher: "ROCKET_LAUNCHER",
	ItemSubTypeFusionRifle:    "FUSION_RIFLE",
	ItemSubTypeSniperRifle:    "SNIPER_RIFLE",
	ItemSubTypePulseRifle:     "PULSE_RIFLE",
	ItemSubTypeScoutRifle:     "SCOUT_RIFLE",
	ItemSubTypeSidearm:        "SIDEARM",
	ItemSubTypeSword:          "SWORD",
	ItemSubTypeMask:           "MASK",
	ItemSubTypeShader:         "SHADER",
	ItemSubTypeOrnament:       "ORNAMENT",
	ItemSubTypeLinearFusion:   "FUSION_RIFLE_LINE",
	ItemSubTypeGrenadeLauncer: "GRENADE_LAUNCHER",
	ItemSubTypeSubmachineGun:  "SUBMACHINE_GUN",
	ItemSubTypeTraceRifle:     "TRACE_RIFLE",
	ItemSubTypeHelmet:         "HELMET_ARMOR",
	ItemSubTypeGauntlets:      "GAUNTLETS_ARMOR",
	ItemSubTypeChest:          "CHEST_ARMOR",
	ItemSubTypeLeg:            "LEG_ARMOR",
	ItemSubTypeClassArmor:     "CLASS_ARMOR",
	ItemSubTypeBow:            "BOW",
	ItemSubTypeRepeatable:     "DUMMY_REPEATABLE_BOUNTY",
	ItemSubTypeGlaive:         "GLAIVE",
}

func (t ItemSubType) String() string { return nameOf("ItemSubType", itemSubTypeNames, t) }

func (t ItemSubType) IsKnown() bool {
	_, ok := itemSubTypeNames[t]
	return ok
}

type TierType int

const (
	TierUnknown  TierType = 0
	TierCurrency TierType = 1
	TierBasic    TierType = 2
	TierCommon   TierType = 3
	TierRare     TierType = 4
	TierSuperior TierType = 5
	TierExotic   TierType = 6
)

var tierTypeNames = map[TierType]string{
	TierUnknown:  "UNKNOWN",
	TierCurrency: "CURRENCY",
	TierBasic:    "BASIC",
	TierCommon:   "COMMON",
	TierRare:     "RARE",
	TierSuperior: "SUPERIOR",
	TierExotic:   "EXOTIC",
}

func (t TierType) String() string { return nameOf("TierType", tierTypeNames, t) }

func (t TierType) IsKnown() bool {
	_, ok := tierTypeNames[t]
	return ok
}

type DamageType int

const (
	DamageNone    DamageType = 0
	DamageKinetic DamageType = 1
	DamageArc     DamageType = 2
	DamageSolar   DamageType = 3
	DamageVoid    DamageType = 4
	DamageRaid    DamageType = 5
	DamageStasis  DamageType = 6
	DamageStrand  DamageType = 7
)

var damageTypeNames = map[DamageType]string{
	DamageNone:    "NONE",
	DamageKinetic: "KINETIC",
	DamageArc:     "ARC",
	DamageSolar:   "SOLAR",
	DamageVoid:    "VOID",
	DamageRaid:    "RAID",
	DamageStasis:  "STASIS",
	DamageStrand:  "STRAND",
}

func (t DamageType) String() string { return nameOf("DamageType", damageTypeNames, t) }

func (t DamageType) IsKnown() bool {
	_, ok := damageTypeNames[t]
	return ok
}

type AmmoType int

const (
	AmmoNone    AmmoType = 0
	AmmoPrimary AmmoType = 1
	AmmoSpecial AmmoType = 2
	AmmoHeavy   AmmoType = 3
	AmmoUnknown AmmoType = 4
)

var ammoTypeNames = map[AmmoType]string{
	AmmoNone:    "NONE",
	AmmoPrimary: "PRIMARY",
	AmmoSpecial: "SPECIAL",
	AmmoHeavy:   "HEAVY",
	AmmoUnknown: "UNKNOWN",
}

func (t AmmoType) String() string { return nameOf("AmmoType", ammoTypeNames, t) }

func (t AmmoType) IsKnown() bool {
	_, ok := ammoTypeNames[t]
	return ok
}

type ItemLocation int

const (
	ItemLocationUnknown    ItemLocation = 0
	ItemLocationInventory  ItemLocation = 1
	ItemLocationVault      ItemLocation = 2
	ItemLocationVendor     ItemLocation = 3
	ItemLocationPostmaster ItemLocation = 4
)

var itemLocationNames = map[ItemLocation]string{
	ItemLocationUnknown:    "UNKNOWN",
	ItemLocationInventory:  "INVENTORY",
	ItemLocationVault:      "VAULT",
	ItemLocationVendor:     "VENDOR",
	ItemLocationPostmaster: "POSTMASTER",
}

func (l ItemLocation) String() string { return nameOf("ItemLocation", itemLocationNames, l) }

func (l ItemLocation) IsKnown() bool {
	_, ok := itemLocationNames[l]
	return ok
}

type ItemBindStatus int

const (
	ItemNotBound         ItemBindStatus = 0
	ItemBoundToCharacter ItemBindStatus = 1
	ItemBoundToAccount   ItemBindStatus = 2
	ItemBoundToGuild     ItemBindStatus = 3
)

var itemBindStatusNames = map[ItemBindStatus]string{
	ItemNotBound:         "NOT_BOUND",
	ItemBoundToCharacter: "BOUND_TO_CHARACTER",
	ItemBoundToAccount:   "BOUND_TO_ACCOUNT",
	ItemBoundToGuild:     "BOUNT_TO_GUILD",
}

func (s ItemBindStatus) String() string { return nameOf("ItemBindStatus", itemBindStatusNames, s) }

func (s ItemBindStatus) IsKnown() bool {
	_, ok := itemBindStatusNames[s]
	return ok
}

// TransferStatus is a bit set.
type TransferStatus int

const (
	TransferCanTransfer         TransferStatus = 0
	TransferItemIsEquipped      TransferStatus = 1
	TransferNotTransferrable    TransferStatus = 2
	TransferNoRoomInDestination TransferStatus = 4
)

var transferStatusNames = map[TransferStatus]string{
	TransferCanTransfer:         "CAN_TRANSFER",
	TransferItemIsEquipped:      "IS_EQUIPPED",
	TransferNotTransferrable:    "NOT_TRASNFERRABLE",
	TransferNoRoomInDestination: "COULD_BE_TRANSFERRED",
}

func (s TransferStatus) String() string { return flagsOf("TransferStatus", transferStatusNames, s) }

// ItemState is a bit set.
type ItemState int

const (
	ItemStateNone                 ItemState = 0
	ItemStateLocked               ItemState = 1
	ItemStateTracked              ItemState = 2
	ItemStateMasterwork           ItemState = 4
	ItemStateCrafted              ItemState = 8
	ItemStateHighlightedObjective ItemState = 16
)

var itemStateNames = map[ItemState]string{
	ItemStateNone:                 "NONE",
	ItemStateLocked:               "LOCKED",
	ItemStateTracked:              "TRACKED",
	ItemStateMasterwork:           "MASTERWORK",
	ItemStateCrafted:              "CRAFTED",
	ItemStateHighlightedObjective: "HIGHLIGHTED_OBJECTIVE",
}

func (s ItemState) String() string { return flagsOf("ItemState", itemStateNames, s) }

func (s ItemState) Has(flag ItemState) bool { return s&flag == flag }

// RecordState is a bit set.
type RecordState int

const (
	RecordStateNone                  RecordState = 0
	RecordStateRedeemed              RecordState = 1
	RecordStateUnavailable           RecordState = 2
	RecordStateObjectiveNotCompleted RecordState = 4
	RecordStateObscured              RecordState = 8
	RecordStateInvisible             RecordState = 16
	RecordStateEntitlementUnowned    RecordState = 32
	RecordStateCanEquipTitle         RecordState = 64
)

var recordStateNames = map[RecordState]string{
	RecordStateNone:                  "NONE",
	RecordStateRedeemed:              "REDEEMED",
	RecordStateUnavailable:           "UNAVAILABLE",
	RecordStateObjectiveNotCompleted: "OBJECTIVE_NOT_COMPLETED",
	RecordStateObscured:              "OBSCURED",
	RecordStateInvisible:             "INVISIBLE",
	RecordStateEntitlementUnowned:    "ENTITLEMENT_UNOWNED",
	RecordStateCanEquipTitle:         "CAN_EQUIP_TITLE",
}

func (s RecordState) String() string { return flagsOf("RecordState", recordStateNames, s) }

func (s RecordState) Has(flag RecordState) bool { return s&flag == flag }
