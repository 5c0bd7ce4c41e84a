package factory

import (
	"encoding/json"

	"github.com/kofuk/bungie/enums"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const profileAndCharacters = `{
	"profile": {
		"data": {
			"userInfo": {"membershipId": "42", "membershipType": 3, "bungieGlobalDisplayName": "Guardian", "bungieGlobalDisplayNameCode": 7},
			"dateLastPlayed": "2023-03-01T12:00:00Z",
			"characterIds": ["2305843009261519028", "2305843009261519029"]
		},
		"privacy": 1
	},
	"characters": {
		"data": {
			"2305843009261519028": {"characterId": "2305843009261519028", "membershipId": "42", "membershipType": 3, "classType": 1, "light": 1810, "minutesPlayedTotal": "9000", "stats": {"2996146975": 100, "1": 5}},
			"2305843009261519029": {"characterId": "2305843009261519029", "membershipId": "42", "membershipType": 3, "classType": 9}
		},
		"privacy": 1
	}
}`

var _ = Describe("DeserializeComponents", func() {
	It("should populate exactly the requested components", func() {
		c, err := DeserializeComponents(json.RawMessage(profileAndCharacters), []enums.ComponentType{enums.ComponentProfiles, enums.ComponentCharacters})
		Expect(err).NotTo(HaveOccurred())

		Expect(c.Profiles).NotTo(BeNil())
		Expect(c.Profiles.ID).To(Equal(int64(42)))
		Expect(c.Profiles.CharacterIDs).To(HaveLen(2))
		Expect(c.Characters).To(HaveLen(2))

		Expect(c.ProfileInventories).To(BeNil())
		Expect(c.CharacterEquipments).To(BeNil())
		Expect(c.CharacterInventories).To(BeNil())
		Expect(c.ProfileRecords).To(BeNil())
		Expect(c.Transitory).To(BeNil())
		Expect(c.ItemComponents).To(BeNil())
	})

	It("should keep character details and unknown enum values", func() {
		c, err := DeserializeComponents(json.RawMessage(profileAndCharacters), []enums.ComponentType{enums.ComponentCharacters})
		Expect(err).NotTo(HaveOccurred())

		Expect(c.Profiles).To(BeNil())
		hunter := c.Characters[2305843009261519028]
		Expect(hunter.Class).To(Equal(enums.ClassHunter))
		Expect(hunter.MinutesPlayedTotal).To(Equal(9000))
		Expect(hunter.Stats).To(HaveKeyWithValue(enums.StatMobility, 100))
		Expect(hunter.Stats).To(HaveKeyWithValue(enums.Stat(1), 5))
		Expect(hunter.TitleHash).To(BeNil())

		other := c.Characters[2305843009261519029]
		Expect(int(other.Class)).To(Equal(9))
		Expect(other.Class.IsKnown()).To(BeFalse())
	})

	It("should ignore components that were returned but not requested", func() {
		c, err := DeserializeComponents(json.RawMessage(profileAndCharacters), []enums.ComponentType{enums.ComponentRecords})
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Profiles).To(BeNil())
		Expect(c.Characters).To(BeNil())
		Expect(c.ProfileRecords).To(BeNil())
	})

	It("should drop private and disabled components", func() {
		c, err := DeserializeComponents(json.RawMessage(`{
			"profileInventory": {"data": {"items": [{"itemHash": 1}]}, "privacy": 2},
			"characterInventories": {"data": {"1": {"items": []}}, "privacy": 1, "disabled": true},
			"profileCurrencies": {"privacy": 1},
			"characterEquipment": {"data": {"1": {"items": [{"itemHash": 3, "itemInstanceId": "6917529"}]}}, "privacy": 1}
		}`), []enums.ComponentType{
			enums.ComponentProfileInventories,
			enums.ComponentCharacterInventory,
			enums.ComponentProfileCurrencies,
			enums.ComponentCharacterEquipment,
		})
		Expect(err).NotTo(HaveOccurred())

		Expect(c.ProfileInventories).To(BeNil())
		Expect(c.CharacterInventories).To(BeNil())
		Expect(c.ProfileCurrencies).To(BeNil())
		Expect(c.CharacterEquipments).To(HaveKey(int64(1)))
		Expect(c.CharacterEquipments[1][0].InstanceID).To(HaveValue(Equal(int64(6917529))))
	})

	It("should aggregate item components", func() {
		c, err := DeserializeComponents(json.RawMessage(`{
			"itemComponents": {
				"instances": {"data": {"6917529": {"damageType": 3, "primaryStat": {"statHash": 1480404414, "value": 1810}}}, "privacy": 1},
				"perks": {"data": {"6917529": {"perks": [{"perkHash": 1, "isActive": true}]}}, "privacy": 1},
				"stats": {"data": {"6917529": {"stats": {"1": {"statHash": 1, "value": 2}}}}, "privacy": 1}
			}
		}`), []enums.ComponentType{enums.ComponentItemInstances, enums.ComponentItemPerks})
		Expect(err).NotTo(HaveOccurred())

		Expect(c.ItemComponents).NotTo(BeNil())
		Expect(c.ItemComponents.Instances).To(HaveKey(int64(6917529)))
		Expect(c.ItemComponents.Instances[6917529].PrimaryStat.Value).To(Equal(1810))
		Expect(c.ItemComponents.Perks[6917529]).To(HaveLen(1))
		Expect(c.ItemComponents.Stats).To(BeNil())
	})

	It("should only fail on malformed json", func() {
		_, err := DeserializeComponents(json.RawMessage(`{}`), enums.AllComponents)
		Expect(err).NotTo(HaveOccurred())

		_, err = DeserializeComponents(json.RawMessage(`[`), enums.AllComponents)
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("DeserializeCharacterComponent", func() {
	It("should read the single character shape", func() {
		c, err := DeserializeCharacterComponent(json.RawMessage(`{
			"character": {"data": {"characterId": "5", "classType": 2}, "privacy": 1},
			"equipment": {"data": {"items": [{"itemHash": 10}]}, "privacy": 1},
			"activities": {"data": {"currentActivityHash": 0, "currentActivityModeType": 6}, "privacy": 1}
		}`), []enums.ComponentType{enums.ComponentCharacters, enums.ComponentCharacterEquipment})
		Expect(err).NotTo(HaveOccurred())

		Expect(c.Character).NotTo(BeNil())
		Expect(c.Character.Class).To(Equal(enums.ClassWarlock))
		Expect(c.Equipment).To(HaveLen(1))
		Expect(c.Activities).To(BeNil())
		Expect(c.Inventory).To(BeNil())
	})
})
