package factory

import (
	"encoding/json"
	"strconv"
	"testing"
	"time"

	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/enums"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("BungieUser", func() {
	It("should read the user by id payload", func() {
		user, err := DeserializeBungieUser(json.RawMessage(`{
			"membershipId": "20315338",
			"firstAccess": "2018-10-31T21:34:32.000Z",
			"profilePicturePath": "/img/x.png",
			"cachedBungieGlobalDisplayName": "Jim",
			"cachedBungieGlobalDisplayNameCode": 1234,
			"displayName": "Jim",
			"about": "",
			"isDeleted": false
		}`))
		Expect(err).NotTo(HaveOccurred())

		Expect(user.ID).To(Equal(int64(20315338)))
		Expect(user.Name).To(Equal(entity.Defined("Jim")))
		Expect(user.Code).To(HaveValue(Equal(1234)))
		Expect(user.Picture.URL()).To(Equal("https://www.bungie.net/img/x.png"))
		Expect(user.CreatedAt).To(BeTemporally("==", time.Date(2018, 10, 31, 21, 34, 32, 0, time.UTC)))
		Expect(user.MemberType()).To(Equal(enums.MembershipTypeBungie))
		Expect(user.About.IsUndefined()).To(BeTrue())
		Expect(user.UpdatedAt).To(BeNil())
		Expect(user.PSNName).To(BeNil())
		Expect(user.UniqueName()).To(Equal("Jim#1234"))
	})

	It("should fall back to the display name", func() {
		user, err := DeserializeBungieUser(json.RawMessage(`{"membershipId": 1, "displayName": "old"}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(user.Name).To(Equal(entity.Defined("old")))
		Expect(user.Code).To(BeNil())
	})

	It("should reject a non-numeric membership id", func() {
		_, err := DeserializeBungieUser(json.RawMessage(`{"membershipId": "abc"}`))
		Expect(err).To(MatchError(apierror.ErrInvalidPayload))
	})

	It("should reject malformed json", func() {
		_, err := DeserializeBungieUser(json.RawMessage(`{"membershipId": `))
		Expect(apierror.KindOf(err)).To(Equal(apierror.KindInvalidPayload))
	})
})

var _ = Describe("DestinyMembership", func() {
	It("should turn an empty global name into Undefined", func() {
		m, err := DeserializeDestinyMembership(json.RawMessage(`{
			"membershipId": "4611686018484639825",
			"membershipType": 3,
			"bungieGlobalDisplayName": "",
			"displayName": "legacy",
			"LastSeenDisplayName": "legacy",
			"applicableMembershipTypes": [3, 2]
		}`))
		Expect(err).NotTo(HaveOccurred())

		Expect(m.Name.IsUndefined()).To(BeTrue())
		Expect(m.Name).To(Equal(entity.UndefinedValue[string]()))
		Expect(m.LastSeenName).To(Equal("legacy"))
		Expect(m.ID).To(Equal(int64(4611686018484639825)))
		Expect(m.Type).To(Equal(enums.MembershipTypeSteam))
		Expect(m.Types).To(Equal([]enums.MembershipType{enums.MembershipTypeSteam, enums.MembershipTypePSN}))
	})

	It("should prefer the last seen name over the display name", func() {
		m, err := DeserializeDestinyMembership(json.RawMessage(`{"membershipId": "1", "displayName": "a", "LastSeenDisplayName": "longer"}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(m.LastSeenName).To(Equal("longer"))
	})

	It("should keep unknown membership types", func() {
		m, err := DeserializeDestinyMembership(json.RawMessage(`{"membershipId": "1", "membershipType": 77}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(int(m.Type)).To(Equal(77))
		Expect(m.Type.IsKnown()).To(BeFalse())
		Expect(m.Type.String()).To(Equal("MembershipType(77)"))
	})
})

var _ = Describe("Clan", func() {
	const detail = `{
		"groupId": "4389205",
		"name": "Detail Name",
		"groupType": 1,
		"creationDate": "2020-01-01T00:00:00Z",
		"memberCount": 42,
		"about": "",
		"motto": "motto",
		"clanInfo": {"clanCallsign": "CS"},
		"features": {"maximumMembers": 100, "joinLevel": 1},
		"enableInvitationMessagingForAdmins": true
	}`

	It("should read the wrapped shape", func() {
		c, err := DeserializeClan(json.RawMessage(`{
			"detail": ` + detail + `,
			"name": "Top Level Name",
			"founder": {"memberType": 5, "groupId": "4389205", "isOnline": true, "lastOnlineStatusChange": "1600000000", "joinDate": "2020-01-02T00:00:00Z", "destinyUserInfo": {"membershipId": "10", "membershipType": 3}}
		}`))
		Expect(err).NotTo(HaveOccurred())

		Expect(c.ID).To(Equal(int64(4389205)))
		Expect(c.Name).To(Equal("Detail Name"))
		Expect(c.Type).To(Equal(enums.GroupTypeClan))
		Expect(c.About.IsUndefined()).To(BeTrue())
		Expect(c.Motto).To(Equal(entity.Defined("motto")))
		Expect(c.CallSign).To(Equal(entity.Defined("CS")))
		Expect(c.Features.MaxMembers).To(Equal(100))
		Expect(c.EnableInviteMessagingForAdmins).To(HaveValue(BeTrue()))
		Expect(c.Owner).NotTo(BeNil())
		Expect(c.Owner.IsFounder()).To(BeTrue())
		Expect(c.Owner.LastOnline).To(BeTemporally("==", time.Unix(1600000000, 0)))
		Expect(c.CurrentUserMembership).To(BeNil())
	})

	It("should read the bare shape", func() {
		c, err := DeserializeClan(json.RawMessage(detail))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.Name).To(Equal("Detail Name"))
		Expect(c.Owner).To(BeNil())
	})

	It("should read the current user membership when present", func() {
		c, err := DeserializeClan(json.RawMessage(`{
			"detail": ` + detail + `,
			"currentUserMemberMap": {"3": {"memberType": 3, "groupId": "4389205", "destinyUserInfo": {"membershipId": "11", "membershipType": 3}}}
		}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(c.CurrentUserMembership).To(HaveKey(enums.MembershipTypeSteam))
		Expect(c.CurrentUserMembership[enums.MembershipTypeSteam].IsAdmin()).To(BeTrue())
	})
})

var _ = Describe("InventoryEntity", func() {
	It("should accept missing sub-objects", func() {
		e, err := DeserializeInventoryEntity(json.RawMessage(`{"hash": 1, "displayProperties": {"name": "", "hasIcon": false}}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Name.IsUndefined()).To(BeTrue())
		Expect(e.Tier).To(BeNil())
		Expect(e.TierName.IsUndefined()).To(BeTrue())
		Expect(e.AmmoType).To(BeNil())
		Expect(e.Stats).To(BeNil())
		Expect(e.Sockets).To(BeNil())
		Expect(e.Icon.IsMissing()).To(BeTrue())
	})

	It("should take the tier from the inventory block", func() {
		e, err := DeserializeInventoryEntity(json.RawMessage(`{
			"hash": 2,
			"displayProperties": {"name": "Gjallarhorn", "icon": "/common/gjally.jpg", "hasIcon": true},
			"itemType": 3,
			"inventory": {"tierType": 6, "tierTypeName": "Exotic", "bucketTypeHash": 953998645},
			"equippingBlock": {"ammoType": 3},
			"stats": {"stats": {"4284893193": {"statHash": 4284893193, "value": 20}}},
			"sockets": {"socketEntries": [{"socketTypeHash": 1, "singleInitialItemHash": 2}]}
		}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(e.Name).To(Equal(entity.Defined("Gjallarhorn")))
		Expect(e.Type).To(Equal(enums.ItemTypeWeapon))
		Expect(e.Tier).To(HaveValue(Equal(enums.TierExotic)))
		Expect(e.TierName).To(Equal(entity.Defined("Exotic")))
		Expect(e.BucketHash).To(HaveValue(Equal(953998645)))
		Expect(e.AmmoType).To(HaveValue(Equal(enums.AmmoType(3))))
		Expect(e.Stats).To(HaveKeyWithValue(4284893193, entity.ItemStat{Hash: 4284893193, Value: 20}))
		Expect(e.Sockets).To(HaveLen(1))
	})
})

var _ = Describe("SearchableEntity", func() {
	It("should thread the suggested words into each result", func() {
		p, err := DeserializeSearchableEntities(json.RawMessage(`{
			"suggestedWords": ["fatebringer", "fate"],
			"results": {
				"results": [
					{"hash": 1, "entityType": "DestinyInventoryItemDefinition", "displayProperties": {"name": "Fatebringer"}, "weight": 1.5},
					{"hash": 2, "entityType": "DestinyInventoryItemDefinition", "displayProperties": {"name": "Fatebringer (Timelost)"}}
				],
				"totalResults": 2,
				"hasMore": false
			}
		}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.Results).To(HaveLen(2))
		Expect(p.TotalResults).To(Equal(2))
		for _, r := range p.Results {
			Expect(r.SuggestedWords).To(Equal([]string{"fatebringer", "fate"}))
		}
		Expect(p.Results[0].Weight).To(Equal(1.5))
	})
})

var _ = Describe("Activities", func() {
	It("should read the activity values", func() {
		acts, err := DeserializeActivities(json.RawMessage(`{"activities": [{
			"period": "2021-05-01T10:00:00Z",
			"activityDetails": {"referenceId": 2122313384, "instanceId": "8474723944", "mode": 4, "modes": [7, 4], "membershipType": 3},
			"values": {
				"kills": {"basic": {"value": 120.0}},
				"deaths": {"basic": {"value": 0.0}},
				"completed": {"basic": {"value": 1.0}},
				"playerCount": {"basic": {"value": 1.0}},
				"activityDurationSeconds": {"basic": {"value": 3600.0}}
			}
		}]}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(acts).To(HaveLen(1))

		a := acts[0]
		Expect(a.InstanceID).To(Equal(int64(8474723944)))
		Expect(a.Mode).To(Equal(enums.GameModeRaid))
		Expect(a.Values.Kills).To(Equal(120))
		Expect(a.Values.Completed).To(BeTrue())
		Expect(a.Values.Team).To(BeNil())
		Expect(a.Values.Duration()).To(Equal(time.Hour))
		Expect(a.IsSoloFlawless()).To(BeTrue())
	})

	It("should reject a non-numeric instance id", func() {
		_, err := DeserializeActivities(json.RawMessage(`{"activities": [{"activityDetails": {"instanceId": "x"}}]}`))
		Expect(err).To(MatchError(apierror.ErrInvalidPayload))
	})
})

var _ = Describe("PostActivity", func() {
	entry := func(deaths int) string {
		return `{"characterId": "1", "player": {"destinyUserInfo": {"membershipId": "2"}}, "values": {"deaths": {"basic": {"value": ` +
			strconv.Itoa(deaths) + `}}}}`
	}

	It("should report a solo flawless run", func() {
		p, err := DeserializePostActivity(json.RawMessage(`{"activityDetails": {"instanceId": "5"}, "entries": [` + entry(0) + `]}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.IsSolo()).To(BeTrue())
		Expect(p.IsFlawless()).To(BeTrue())
		Expect(p.IsSoloFlawless()).To(BeTrue())
		Expect(p.Teams).To(BeNil())
	})

	It("should not report a flawless run when someone died", func() {
		p, err := DeserializePostActivity(json.RawMessage(`{"activityDetails": {"instanceId": "5"}, "entries": [` + entry(0) + `,` + entry(2) + `], "teams": []}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(p.IsSolo()).To(BeFalse())
		Expect(p.IsFlawless()).To(BeFalse())
		Expect(p.Teams).NotTo(BeNil())
	})
})

var _ = Describe("BearerToken", func() {
	It("should parse the membership id", func() {
		issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		tok, err := DeserializeBearerToken(json.RawMessage(`{
			"access_token": "A", "refresh_token": "R", "expires_in": 3600,
			"refresh_expires_in": 7776000, "membership_id": "7", "token_type": "Bearer"
		}`), issued)
		Expect(err).NotTo(HaveOccurred())
		Expect(tok).To(Equal(entity.BearerToken{
			Access:           "A",
			Refresh:          "R",
			TokenType:        "Bearer",
			IssuedAt:         issued,
			ExpiresIn:        3600,
			RefreshExpiresIn: 7776000,
			MembershipID:     7,
		}))
	})
})

func Test(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Factory Suite")
}
