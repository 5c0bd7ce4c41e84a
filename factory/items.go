package factory

import (
	"encoding/json"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/enums"
)

func itemStat(_ *reader, o object) entity.ItemStat {
	return entity.ItemStat{Hash: o.int("statHash"), Value: o.int("value")}
}

func itemInstance(r *reader, o object) entity.ItemInstance {
	i := entity.ItemInstance{
		DamageType:                  enums.DamageType(o.int("damageType")),
		DamageTypeHash:              o.intPtr("damageTypeHash"),
		ItemLevel:                   o.int("itemLevel"),
		Quality:                     o.int("quality"),
		IsEquipped:                  o.bool("isEquipped"),
		CanEquip:                    o.bool("canEquip"),
		EquipRequiredLevel:          o.int("equipRequiredLevel"),
		UnlockHashesRequiredToEquip: o.ints("unlockHashesRequiredToEquip"),
		CannotEquipReason:           o.int("cannotEquipReason"),
		BreakerType:                 o.intPtr("breakerType"),
		BreakerTypeHash:             o.intPtr("breakerTypeHash"),
		GearTier:                    o.intPtr("gearTier"),
	}
	if s := o.obj("primaryStat"); s != nil {
		st := itemStat(r, s)
		i.PrimaryStat = &st
	}
	if e := o.obj("energy"); e != nil {
		i.Energy = &entity.ItemEnergy{
			TypeHash: e.int("energyTypeHash"),
			Type:     e.int("energyType"),
			Capacity: e.int("energyCapacity"),
			Used:     e.int("energyUsed"),
			Unused:   e.int("energyUnused"),
		}
	}
	return i
}

func itemPerk(_ *reader, o object) entity.ItemPerk {
	return entity.ItemPerk{
		Hash:     o.int("perkHash"),
		IconPath: o.image("iconPath"),
		IsActive: o.bool("isActive"),
		Visible:  o.bool("visible"),
	}
}

func itemSocket(_ *reader, o object) entity.ItemSocket {
	return entity.ItemSocket{
		PlugHash:          o.intPtr("plugHash"),
		IsEnabled:         o.bool("isEnabled"),
		IsVisible:         o.bool("isVisible"),
		EnableFailIndexes: o.ints("enableFailIndexes"),
	}
}

func plugItemState(_ *reader, o object) entity.PlugItemState {
	return entity.PlugItemState{
		PlugItemHash:      o.int("plugItemHash"),
		CanInsert:         o.bool("canInsert"),
		Enabled:           o.bool("enabled"),
		InsertFailIndexes: o.ints("insertFailIndexes"),
		EnableFailIndexes: o.ints("enableFailIndexes"),
		StackSize:         o.intPtr("stackSize"),
		MaxStackSize:      o.intPtr("maxStackSize"),
	}
}

func talentGrid(r *reader, o object) entity.TalentGrid {
	return entity.TalentGrid{
		Hash:           o.int("talentGridHash"),
		IsGridComplete: o.bool("isGridComplete"),
		Nodes: listOf(r, o.arr("nodes"), func(_ *reader, o object) entity.TalentGridNode {
			return entity.TalentGridNode{
				Index:       o.int("nodeIndex"),
				Hash:        o.int("nodeHash"),
				State:       o.int("state"),
				IsActivated: o.bool("isActivated"),
				StepIndex:   o.int("stepIndex"),
				Hidden:      o.bool("hidden"),
			}
		}),
		Progression: progressionPtr(r, o.obj("gridProgression")),
	}
}

// Accessors for the per-item sub-objects of item components.

func itemObjectives(r *reader, o object) []entity.Objective {
	return listOf(r, o.arr("objectives"), objective)
}

func itemPerks(r *reader, o object) []entity.ItemPerk {
	return listOf(r, o.arr("perks"), itemPerk)
}

func itemStats(r *reader, o object) map[int]entity.ItemStat {
	return keyedObjects[int](r, o.obj("stats"), itemStat)
}

func itemSockets(r *reader, o object) []entity.ItemSocket {
	return listOf(r, o.arr("sockets"), itemSocket)
}

func reusablePlugs(r *reader, o object) map[int][]entity.PlugItemState {
	return keyedLists[int](r, o.obj("plugs"), plugItemState)
}

func plugObjectives(r *reader, o object) map[int][]entity.Objective {
	return keyedLists[int](r, o.obj("objectivesPerPlug"), objective)
}

// displayProperties holds the shared presentation block of definitions.
type displayProperties struct {
	name        entity.UndefinedOr[string]
	description entity.UndefinedOr[string]
	icon        entity.Image
	hasIcon     bool
}

func display(o object) displayProperties {
	d := o.obj("displayProperties")
	return displayProperties{
		name:        d.undefined("name"),
		description: d.undefined("description"),
		icon:        d.image("icon"),
		hasIcon:     d.bool("hasIcon"),
	}
}

func inventoryEntity(r *reader, o object) entity.InventoryEntity {
	dp := display(o)
	e := entity.InventoryEntity{
		Hash:               o.int("hash"),
		Index:              o.int("index"),
		Name:               dp.name,
		Description:        dp.description,
		Icon:               dp.icon,
		HasIcon:            dp.hasIcon,
		Watermark:          o.imagePtr("iconWatermark"),
		Screenshot:         o.imagePtr("screenshot"),
		FlavorText:         o.undefined("flavorText"),
		TypeName:           o.undefined("itemTypeDisplayName"),
		TypeAndTierName:    o.undefined("itemTypeAndTierDisplayName"),
		Type:               enums.ItemType(o.int("itemType")),
		SubType:            enums.ItemSubType(o.int("itemSubType")),
		ClassType:          enums.Class(o.int("classType")),
		DefaultDamageType:  enums.DamageType(o.int("defaultDamageType")),
		Equippable:         o.bool("equippable"),
		AllowActions:       o.bool("allowActions"),
		Redacted:           o.bool("redacted"),
		Blacklisted:        o.bool("blacklisted"),
		NonTransferrable:   o.bool("nonTransferrable"),
		CollectibleHash:    o.intPtr("collectibleHash"),
		SummaryHash:        o.intPtr("summaryItemHash"),
		SeasonHash:         o.intPtr("seasonHash"),
		BreakerTypeHash:    o.intPtr("breakerTypeHash"),
		Lore:               o.intPtr("loreHash"),
		ItemCategoryHashes: o.ints("itemCategoryHashes"),
		TraitIDs:           o.strings("traitIds"),
		Perks:              listOf(r, o.arr("perks"), itemPerk),
	}
	for _, d := range o.ints("damageTypes") {
		e.DamageTypes = append(e.DamageTypes, enums.DamageType(d))
	}
	if inv := o.obj("inventory"); inv != nil {
		tier := enums.TierType(inv.int("tierType"))
		e.Tier = &tier
		e.TierName = inv.undefined("tierTypeName")
		e.BucketHash = inv.intPtr("bucketTypeHash")
		e.StackSize = inv.intPtr("maxStackSize")
		e.IsInstanceItem = inv.boolPtr("isInstanceItem")
	}
	if eq := o.obj("equippingBlock"); eq != nil {
		ammo := enums.AmmoType(eq.int("ammoType"))
		e.AmmoType = &ammo
		e.EquipmentSlotHash = eq.intPtr("equipmentSlotTypeHash")
	}
	if st := o.obj("stats"); st != nil {
		e.Stats = itemStats(r, st)
	}
	if so := o.obj("sockets"); so != nil {
		e.Sockets = listOf(r, so.arr("socketEntries"), func(_ *reader, o object) entity.EntitySocket {
			return entity.EntitySocket{
				TypeHash:              o.int("socketTypeHash"),
				SingleInitialItemHash: o.int("singleInitialItemHash"),
				ReusablePlugSetHash:   o.intPtr("reusablePlugSetHash"),
				RandomizedPlugSetHash: o.intPtr("randomizedPlugSetHash"),
				DefaultVisible:        o.bool("defaultVisible"),
			}
		})
	}
	if obj := o.obj("objectives"); obj != nil {
		e.Objectives = obj.ints("objectiveHashes")
	}
	return e
}

func DeserializeInventoryEntity(raw json.RawMessage) (entity.InventoryEntity, error) {
	return decodeWith(raw, inventoryEntity)
}

func DeserializeObjectiveEntity(raw json.RawMessage) (entity.ObjectiveEntity, error) {
	return decodeWith(raw, func(_ *reader, o object) entity.ObjectiveEntity {
		dp := display(o)
		return entity.ObjectiveEntity{
			Hash:                          o.int("hash"),
			Index:                         o.int("index"),
			Name:                          dp.name,
			Description:                   dp.description,
			Icon:                          dp.icon,
			HasIcon:                       dp.hasIcon,
			Redacted:                      o.bool("redacted"),
			Blacklisted:                   o.bool("blacklisted"),
			UnlockValueHash:               o.int("unlockValueHash"),
			CompletionValue:               o.int("completionValue"),
			Scope:                         o.int("scope"),
			LocationHash:                  o.int("locationHash"),
			AllowNegativeValue:            o.bool("allowNegativeValue"),
			AllowValueChangeWhenCompleted: o.bool("allowValueChangeWhenCompleted"),
			IsCountingDownward:            o.bool("isCountingDownward"),
			ValueStyle:                    o.int("valueStyle"),
			ProgressDescription:           o.undefined("progressDescription"),
			AllowOvercompletion:           o.bool("allowOvercompletion"),
			ShowValueOnComplete:           o.bool("showValueOnComplete"),
			IsDisplayOnlyObjective:        o.bool("isDisplayOnlyObjective"),
			CompleteValueStyle:            o.int("completedValueStyle"),
			InProgressValueStyle:          o.int("inProgressValueStyle"),
		}
	})
}

// DeserializeEntity reads any definition, keeping the full payload in Raw.
func DeserializeEntity(raw json.RawMessage) (entity.Entity, error) {
	return decodeWith(raw, func(_ *reader, o object) entity.Entity {
		dp := display(o)
		return entity.Entity{
			Hash:        o.int("hash"),
			Index:       o.int("index"),
			Name:        dp.name,
			Description: dp.description,
			Icon:        dp.icon,
			HasIcon:     dp.hasIcon,
			Redacted:    o.bool("redacted"),
			Blacklisted: o.bool("blacklisted"),
			Raw:         append(json.RawMessage(nil), raw...),
		}
	})
}

// DeserializeSearchableEntities reads an entity search. The suggested words
// of the search are copied into every result.
func DeserializeSearchableEntities(raw json.RawMessage) (Page[entity.SearchableEntity], error) {
	return decodeWith(raw, func(r *reader, o object) Page[entity.SearchableEntity] {
		words := o.strings("suggestedWords")
		return page(r, o.obj("results"), "results", func(_ *reader, o object) entity.SearchableEntity {
			dp := display(o)
			return entity.SearchableEntity{
				Hash:           o.int("hash"),
				EntityType:     o.str("entityType"),
				Name:           dp.name,
				Description:    dp.description,
				Icon:           dp.icon,
				HasIcon:        dp.hasIcon,
				Weight:         o.float("weight"),
				SuggestedWords: words,
			}
		})
	})
}

func vendor(r *reader, o object) entity.Vendor {
	return entity.Vendor{
		Hash:                o.int("vendorHash"),
		AckState:            o.obj("ackState").intPtr("ackId"),
		CanPurchase:         o.bool("canPurchase"),
		Enabled:             o.bool("enabled"),
		NextRefreshDate:     r.timePtr(o, "nextRefreshDate"),
		Progression:         progressionPtr(r, o.obj("progression")),
		VendorLocationIndex: o.int("vendorLocationIndex"),
		SeasonalRank:        o.intPtr("seasonalRank"),
	}
}

func vendorSale(r *reader, o object) entity.VendorSale {
	return entity.VendorSale{
		VendorItemIndex:       o.int("vendorItemIndex"),
		ItemHash:              o.int("itemHash"),
		OverrideStyleItemHash: o.intPtr("overrideStyleItemHash"),
		Quantity:              o.int("quantity"),
		Costs: listOf(r, o.arr("costs"), func(r *reader, o object) entity.ItemQuantity {
			return entity.ItemQuantity{
				Hash:       o.int("itemHash"),
				InstanceID: r.idPtr(o, "itemInstanceId"),
				Quantity:   o.int("quantity"),
			}
		}),
		SaleStatus:      o.int("saleStatus"),
		RequiredUnlocks: o.ints("requiredUnlocks"),
	}
}

func vendorSales(r *reader, o object) map[int]entity.VendorSale {
	return keyedObjects[int](r, o.obj("saleItems"), vendorSale)
}

// rawValues keeps every value of an integer-keyed object undecoded.
func rawValues(r *reader, o object) map[int]json.RawMessage {
	return keyedObjects[int](r, o, func(_ *reader, v object) json.RawMessage { return encodeRaw(map[string]any(v)) })
}

// DeserializeVendors reads the response of the vendors listing endpoints.
func DeserializeVendors(raw json.RawMessage) (entity.VendorsComponent, error) {
	return decodeWith(raw, func(r *reader, o object) entity.VendorsComponent {
		return entity.VendorsComponent{
			Vendors:        keyedObjects[int](r, data(o, "vendors"), vendor),
			Sales:          keyedObjects[int](r, data(o, "sales"), vendorSales),
			Categories:     rawValues(r, data(o, "categories")),
			Currencies:     keyedInts[int](r, data(o, "currencyLookups").obj("itemQuantities")),
			ItemComponents: rawValues(r, o.obj("itemComponents")),
		}
	})
}

// DeserializeVendor reads a single vendor response into a one-vendor
// component.
func DeserializeVendor(raw json.RawMessage) (entity.VendorsComponent, error) {
	return decodeWith(raw, func(r *reader, o object) entity.VendorsComponent {
		vc := entity.VendorsComponent{
			Currencies: keyedInts[int](r, data(o, "currencyLookups").obj("itemQuantities")),
		}
		v := data(o, "vendor")
		if v == nil {
			return vc
		}
		ven := vendor(r, v)
		vc.Vendors = map[int]entity.Vendor{ven.Hash: ven}
		if s := data(o, "sales"); s != nil {
			vc.Sales = map[int]map[int]entity.VendorSale{ven.Hash: keyedObjects[int](r, s, vendorSale)}
		}
		if c := data(o, "categories"); c != nil {
			vc.Categories = map[int]json.RawMessage{ven.Hash: encodeRaw(map[string]any(c))}
		}
		if ic := o.obj("itemComponents"); ic != nil {
			vc.ItemComponents = map[int]json.RawMessage{ven.Hash: encodeRaw(map[string]any(ic))}
		}
		return vc
	})
}
