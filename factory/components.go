package factory

import (
	"encoding/json"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/enums"
)

// data unwraps a {data, privacy, disabled} component wrapper. It returns nil
// when the wrapper is missing, disabled, private or has no data.
func data(o object, key string) object {
	w := o.obj(key)
	if w == nil || w.bool("disabled") {
		return nil
	}
	if w.has("privacy") {
		switch enums.Privacy(w.int("privacy")) {
		case enums.PrivacyNone, enums.PrivacyPublic:
		default:
			return nil
		}
	}
	return w.obj("data")
}

type selection map[enums.ComponentType]bool

func newSelection(components []enums.ComponentType) selection {
	s := make(selection, len(components))
	for _, c := range components {
		s[c] = true
	}
	return s
}

func (s selection) data(o object, c enums.ComponentType, key string) object {
	if !s[c] {
		return nil
	}
	return data(o, key)
}

func (s selection) anyItem() bool {
	for _, c := range enums.ItemComponents {
		if s[c] {
			return true
		}
	}
	return false
}

func ptr[T any](v T) *T { return &v }

// perCharacter decodes a character-id keyed component.
func perCharacter[V any](r *reader, d object, f func(*reader, object) V) map[int64]V {
	if d == nil {
		return nil
	}
	return keyedObjects[int64](r, d, f)
}

// DeserializeComponents assembles a profile response. Only the requested
// components are read; everything else stays nil.
func DeserializeComponents(raw json.RawMessage, requested []enums.ComponentType) (entity.Component, error) {
	sel := newSelection(requested)
	return decodeWith(raw, func(r *reader, o object) entity.Component {
		var c entity.Component

		if d := sel.data(o, enums.ComponentProfiles, "profile"); d != nil {
			c.Profiles = ptr(profile(r, d))
		}
		if d := sel.data(o, enums.ComponentProfileInventories, "profileInventory"); d != nil {
			c.ProfileInventories = items(r, d)
		}
		if d := sel.data(o, enums.ComponentProfileCurrencies, "profileCurrencies"); d != nil {
			c.ProfileCurrencies = items(r, d)
		}
		if d := sel.data(o, enums.ComponentProfileProgression, "profileProgression"); d != nil {
			c.ProfileProgression = ptr(profileProgression(r, d))
		}
		if d := sel.data(o, enums.ComponentPlatformSilver, "platformSilver"); d != nil {
			c.PlatformSilver = make(map[string]entity.ProfileItem)
			for k, v := range d.obj("platformSilver") {
				if m, ok := v.(map[string]any); ok {
					c.PlatformSilver[k] = profileItem(r, m)
				}
			}
		}
		if d := sel.data(o, enums.ComponentKiosks, "profileKiosks"); d != nil {
			c.ProfileKiosks = kiosks(r, d)
		}
		if d := sel.data(o, enums.ComponentKiosks, "characterKiosks"); d != nil {
			c.CharacterKiosks = perCharacter(r, d, kiosks)
		}
		if d := sel.data(o, enums.ComponentRecords, "profileRecords"); d != nil {
			c.ProfileRecords = ptr(profileRecords(r, d))
		}
		if d := sel.data(o, enums.ComponentRecords, "characterRecords"); d != nil {
			c.CharacterRecords = perCharacter(r, d, characterRecords)
		}
		if d := sel.data(o, enums.ComponentCollectibles, "profileCollectibles"); d != nil {
			c.ProfileCollectibles = ptr(profileCollectibles(r, d))
		}
		if d := sel.data(o, enums.ComponentCollectibles, "characterCollectibles"); d != nil {
			c.CharacterCollectibles = perCharacter(r, d, characterCollectibles)
		}
		if d := sel.data(o, enums.ComponentPresentationNodes, "profilePresentationNodes"); d != nil {
			c.ProfilePresentationNodes = presentationNodes(r, d)
		}
		if d := sel.data(o, enums.ComponentPresentationNodes, "characterPresentationNodes"); d != nil {
			c.CharacterPresentationNodes = perCharacter(r, d, presentationNodes)
		}
		if d := sel.data(o, enums.ComponentStringVariables, "profileStringVariables"); d != nil {
			c.ProfileStringVariables = keyedInts[int](r, d.obj("integerValuesByHash"))
		}
		if d := sel.data(o, enums.ComponentStringVariables, "characterStringVariables"); d != nil {
			c.CharacterStringVariables = perCharacter(r, d, func(r *reader, o object) map[int]int {
				return keyedInts[int](r, o.obj("integerValuesByHash"))
			})
		}
		if d := sel.data(o, enums.ComponentCurrencyLookups, "characterCurrencyLookups"); d != nil {
			c.CharacterCurrencyLookups = perCharacter(r, d, func(r *reader, o object) map[int]int {
				return keyedInts[int](r, o.obj("itemQuantities"))
			})
		}
		if d := sel.data(o, enums.ComponentSocialCommendations, "profileCommendations"); d != nil {
			c.ProfileCommendations = ptr(commendations(r, d))
		}
		if d := sel.data(o, enums.ComponentTransitory, "profileTransitoryData"); d != nil {
			c.Transitory = ptr(transitory(r, d))
		}
		if d := sel.data(o, enums.ComponentMetrics, "metrics"); d != nil {
			c.Metrics = keyedObjects[int](r, d.obj("metrics"), metric)
			c.MetricsRootNodeHash = d.intPtr("metricsRootNodeHash")
		}
		if d := sel.data(o, enums.ComponentVendorReceipts, "vendorReceipts"); d != nil {
			c.VendorReceipts = []json.RawMessage{}
			for _, v := range d.arr("receipts") {
				c.VendorReceipts = append(c.VendorReceipts, encodeRaw(v))
			}
		}

		if d := sel.data(o, enums.ComponentCharacters, "characters"); d != nil {
			c.Characters = perCharacter(r, d, character)
		}
		if d := sel.data(o, enums.ComponentCharacterInventory, "characterInventories"); d != nil {
			c.CharacterInventories = perCharacter(r, d, items)
		}
		if d := sel.data(o, enums.ComponentCharacterEquipment, "characterEquipment"); d != nil {
			c.CharacterEquipments = perCharacter(r, d, items)
		}
		if d := sel.data(o, enums.ComponentCharacterProgress, "characterProgressions"); d != nil {
			c.CharacterProgressions = perCharacter(r, d, characterProgression)
		}
		if d := sel.data(o, enums.ComponentCharacterRenderData, "characterRenderData"); d != nil {
			c.CharacterRenderData = perCharacter(r, d, renderedData)
		}
		if d := sel.data(o, enums.ComponentCharacterActivities, "characterActivities"); d != nil {
			c.CharacterActivities = perCharacter(r, d, characterActivity)
		}
		if d := sel.data(o, enums.ComponentCharacterLoadouts, "characterLoadouts"); d != nil {
			c.CharacterLoadouts = perCharacter(r, d, loadouts)
		}
		if d := sel.data(o, enums.ComponentCraftables, "characterCraftables"); d != nil {
			c.CharacterCraftables = perCharacter(r, d, characterCraftables)
		}

		c.ItemComponents = itemsComponent(r, sel, o.obj("itemComponents"))
		return c
	})
}

// itemsComponent aggregates the instance-keyed item component maps.
func itemsComponent(r *reader, sel selection, o object) *entity.ItemsComponent {
	if o == nil || !sel.anyItem() {
		return nil
	}
	ic := &entity.ItemsComponent{}
	if d := sel.data(o, enums.ComponentItemInstances, "instances"); d != nil {
		ic.Instances = keyedObjects[int64](r, d, itemInstance)
	}
	if d := sel.data(o, enums.ComponentItemObjectives, "objectives"); d != nil {
		ic.Objectives = keyedObjects[int64](r, d, itemObjectives)
	}
	if d := sel.data(o, enums.ComponentItemPerks, "perks"); d != nil {
		ic.Perks = keyedObjects[int64](r, d, itemPerks)
	}
	if d := sel.data(o, enums.ComponentItemRenderData, "renderData"); d != nil {
		ic.RenderData = keyedObjects[int64](r, d, renderedData)
	}
	if d := sel.data(o, enums.ComponentItemStats, "stats"); d != nil {
		ic.Stats = keyedObjects[int64](r, d, itemStats)
	}
	if d := sel.data(o, enums.ComponentItemSockets, "sockets"); d != nil {
		ic.Sockets = keyedObjects[int64](r, d, itemSockets)
	}
	if d := sel.data(o, enums.ComponentItemReusablePlugs, "reusablePlugs"); d != nil {
		ic.ReusablePlugs = keyedObjects[int64](r, d, reusablePlugs)
	}
	if d := sel.data(o, enums.ComponentItemPlugObjectives, "plugObjectives"); d != nil {
		ic.PlugObjectives = keyedObjects[int64](r, d, plugObjectives)
	}
	if d := sel.data(o, enums.ComponentItemTalentGrids, "talentGrids"); d != nil {
		ic.TalentGrids = keyedObjects[int64](r, d, talentGrid)
	}
	if d := sel.data(o, enums.ComponentItemPlugStates, "plugStates"); d != nil {
		ic.PlugStates = keyedObjects[int](r, d, plugItemState)
	}
	return ic
}

// DeserializeCharacterComponent assembles a single character response.
func DeserializeCharacterComponent(raw json.RawMessage, requested []enums.ComponentType) (entity.CharacterComponent, error) {
	sel := newSelection(requested)
	return decodeWith(raw, func(r *reader, o object) entity.CharacterComponent {
		var c entity.CharacterComponent
		if d := sel.data(o, enums.ComponentCharacters, "character"); d != nil {
			c.Character = ptr(character(r, d))
		}
		if d := sel.data(o, enums.ComponentCharacterInventory, "inventory"); d != nil {
			c.Inventory = items(r, d)
		}
		if d := sel.data(o, enums.ComponentCharacterEquipment, "equipment"); d != nil {
			c.Equipment = items(r, d)
		}
		if d := sel.data(o, enums.ComponentCharacterProgress, "progressions"); d != nil {
			c.Progressions = ptr(characterProgression(r, d))
		}
		if d := sel.data(o, enums.ComponentCharacterRenderData, "renderData"); d != nil {
			c.RenderData = ptr(renderedData(r, d))
		}
		if d := sel.data(o, enums.ComponentCharacterActivities, "activities"); d != nil {
			c.Activities = ptr(characterActivity(r, d))
		}
		if d := sel.data(o, enums.ComponentCharacterLoadouts, "loadouts"); d != nil {
			c.Loadouts = loadouts(r, d)
		}
		if d := sel.data(o, enums.ComponentRecords, "records"); d != nil {
			c.Records = ptr(characterRecords(r, d))
		}
		if d := sel.data(o, enums.ComponentCollectibles, "collectibles"); d != nil {
			c.Collectibles = ptr(characterCollectibles(r, d))
		}
		if d := sel.data(o, enums.ComponentKiosks, "kiosks"); d != nil {
			c.Kiosks = kiosks(r, d)
		}
		if d := sel.data(o, enums.ComponentPresentationNodes, "presentationNodes"); d != nil {
			c.PresentationNodes = presentationNodes(r, d)
		}
		if d := sel.data(o, enums.ComponentStringVariables, "stringVariables"); d != nil {
			c.StringVariables = keyedInts[int](r, d.obj("integerValuesByHash"))
		}
		if d := sel.data(o, enums.ComponentCurrencyLookups, "currencyLookups"); d != nil {
			c.CurrencyLookups = keyedInts[int](r, d.obj("itemQuantities"))
		}
		c.ItemComponents = itemsComponent(r, sel, o.obj("itemComponents"))
		return c
	})
}

// DeserializeItemComponent assembles a single item response.
func DeserializeItemComponent(raw json.RawMessage, requested []enums.ComponentType) (entity.ItemComponent, error) {
	sel := newSelection(requested)
	return decodeWith(raw, func(r *reader, o object) entity.ItemComponent {
		c := entity.ItemComponent{CharacterID: r.idPtr(o, "characterId")}
		if d := sel.data(o, enums.ComponentItemCommonData, "item"); d != nil {
			c.Item = ptr(profileItem(r, d))
		}
		if d := sel.data(o, enums.ComponentItemInstances, "instance"); d != nil {
			c.Instance = ptr(itemInstance(r, d))
		}
		if d := sel.data(o, enums.ComponentItemObjectives, "objectives"); d != nil {
			c.Objectives = itemObjectives(r, d)
		}
		if d := sel.data(o, enums.ComponentItemPerks, "perks"); d != nil {
			c.Perks = itemPerks(r, d)
		}
		if d := sel.data(o, enums.ComponentItemRenderData, "renderData"); d != nil {
			c.RenderData = ptr(renderedData(r, d))
		}
		if d := sel.data(o, enums.ComponentItemStats, "stats"); d != nil {
			c.Stats = itemStats(r, d)
		}
		if d := sel.data(o, enums.ComponentItemSockets, "sockets"); d != nil {
			c.Sockets = itemSockets(r, d)
		}
		if d := sel.data(o, enums.ComponentItemReusablePlugs, "reusablePlugs"); d != nil {
			c.ReusablePlugs = reusablePlugs(r, d)
		}
		if d := sel.data(o, enums.ComponentItemPlugObjectives, "plugObjectives"); d != nil {
			c.PlugObjectives = plugObjectives(r, d)
		}
		if d := sel.data(o, enums.ComponentItemTalentGrids, "talentGrid"); d != nil {
			c.TalentGrid = ptr(talentGrid(r, d))
		}
		return c
	})
}
