package bungie

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/enums"
	"github.com/kofuk/bungie/rest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func Test(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Bungie Suite")
}

const platform = "https://www.bungie.net/Platform"

func ok(response any) httpmock.Responder {
	return httpmock.NewJsonResponderOrPanic(http.StatusOK, map[string]any{
		"Response":        response,
		"ErrorCode":       1,
		"ErrorStatus":     "Success",
		"Message":         "Ok",
		"MessageData":     map[string]string{},
		"ThrottleSeconds": 0,
	})
}

func failure(httpStatus, code int, status string) httpmock.Responder {
	return httpmock.NewJsonResponderOrPanic(httpStatus, map[string]any{
		"ErrorCode":       code,
		"ErrorStatus":     status,
		"Message":         status,
		"MessageData":     map[string]string{},
		"ThrottleSeconds": 0,
	})
}

func noSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

func mustRegexp(pattern string) *regexp.Regexp {
	return regexp.MustCompile(pattern)
}

func bodyOf(req *http.Request) map[string]any {
	data, err := io.ReadAll(req.Body)
	Expect(err).NotTo(HaveOccurred())
	var m map[string]any
	Expect(json.Unmarshal(data, &m)).To(Succeed())
	return m
}

var _ = Describe("Client", func() {
	var (
		c   *Client
		ctx context.Context
	)

	BeforeEach(func() {
		httpmock.Activate()
		c = New("key", rest.WithSleep(noSleep), rest.WithMaxRetries(1))
		ctx = context.Background()
	})

	AfterEach(func() {
		c.Close()
		httpmock.DeactivateAndReset()
	})

	Describe("users", func() {
		user := func(id, name string) map[string]any {
			return map[string]any{
				"membershipId":                      id,
				"firstAccess":                       "2018-10-31T21:34:32.000Z",
				"profilePicturePath":                "/img/x.png",
				"cachedBungieGlobalDisplayName":     name,
				"cachedBungieGlobalDisplayNameCode": 1234,
			}
		}

		It("should fetch a Bungie.net user", func() {
			httpmock.RegisterResponder(http.MethodGet, platform+"/User/GetBungieNetUserById/20315338/",
				ok(user("20315338", "Jim")))

			u, err := c.FetchBungieUser(ctx, 20315338)
			Expect(err).NotTo(HaveOccurred())
			Expect(u.ID).To(Equal(int64(20315338)))
			Expect(u.Name.Or("")).To(Equal("Jim"))
			Expect(u.Code).NotTo(BeNil())
			Expect(*u.Code).To(Equal(1234))
			Expect(u.Picture.URL()).To(Equal("https://www.bungie.net/img/x.png"))
			Expect(u.CreatedAt.Equal(time.Date(2018, 10, 31, 21, 34, 32, 0, time.UTC))).To(BeTrue())
			Expect(u.MemberType()).To(Equal(enums.MembershipTypeBungie))
			Expect(u.UniqueName()).To(Equal("Jim#1234"))
		})

		It("should reject an invalid id without calling upstream", func() {
			_, err := c.FetchBungieUser(ctx, 0)
			Expect(err).To(MatchError(apierror.ErrInvalidArgument))
			Expect(httpmock.GetTotalCallCount()).To(BeZero())
		})

		It("should keep the order of concurrently fetched users", func() {
			for _, id := range []string{"1", "2", "3", "4"} {
				httpmock.RegisterResponder(http.MethodGet, platform+"/User/GetBungieNetUserById/"+id+"/",
					ok(user(id, "u"+id)))
			}

			users, err := c.FetchBungieUsersByIDs(ctx, []int64{3, 1, 4, 2})
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(4))
			var ids []int64
			for _, u := range users {
				ids = append(ids, u.ID)
			}
			Expect(ids).To(Equal([]int64{3, 1, 4, 2}))
		})

		It("should fail the fan-out when one user is missing", func() {
			httpmock.RegisterResponder(http.MethodGet, platform+"/User/GetBungieNetUserById/1/", ok(user("1", "a")))
			httpmock.RegisterResponder(http.MethodGet, platform+"/User/GetBungieNetUserById/2/",
				failure(http.StatusOK, 217, "UserCannotResolveCentralAccount"))

			_, err := c.FetchBungieUsersByIDs(ctx, []int64{1, 2})
			Expect(err).To(HaveOccurred())
		})

		It("should page through a user search lazily", func() {
			var calls atomic.Int32
			page := func(hasMore bool, names ...string) httpmock.Responder {
				var results []map[string]any
				for _, n := range names {
					results = append(results, map[string]any{
						"bungieGlobalDisplayName":     n,
						"bungieGlobalDisplayNameCode": 1,
						"destinyMemberships":          []any{},
					})
				}
				resp := ok(map[string]any{"searchResults": results, "hasMore": hasMore})
				return func(req *http.Request) (*http.Response, error) {
					calls.Add(1)
					Expect(bodyOf(req)).To(HaveKeyWithValue("displayNamePrefix", "Fate"))
					return resp(req)
				}
			}
			httpmock.RegisterResponder(http.MethodPost, platform+"/User/Search/GlobalName/0/", page(true, "Fate", "Fated"))
			httpmock.RegisterResponder(http.MethodPost, platform+"/User/Search/GlobalName/1/", page(false, "Fatebringer"))

			it := c.SearchUsers(ctx, "Fate")
			first, err := it.First()
			Expect(err).NotTo(HaveOccurred())
			Expect(first.Name.Or("")).To(Equal("Fate"))
			Expect(calls.Load()).To(Equal(int32(1)))

			all, err := c.SearchUsers(ctx, "Fate").Collect()
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(3))
		})
	})

	Describe("destiny", func() {
		It("should request only the asked components", func() {
			httpmock.RegisterResponder(http.MethodGet, platform+"/Destiny2/3/Profile/42/?components=100,200",
				ok(map[string]any{
					"profile": map[string]any{"data": map[string]any{
						"userInfo": map[string]any{"membershipId": "42", "membershipType": 3},
					}},
					"characters": map[string]any{"data": map[string]any{
						"1": map[string]any{"characterId": "1", "membershipId": "42", "membershipType": 3},
						"2": map[string]any{"characterId": "2", "membershipId": "42", "membershipType": 3},
					}},
				}))

			comp, err := c.FetchProfile(ctx, 42, enums.MembershipTypeSteam,
				[]enums.ComponentType{enums.ComponentProfiles, enums.ComponentCharacters}, "")
			Expect(err).NotTo(HaveOccurred())
			Expect(comp.Profiles).NotTo(BeNil())
			Expect(comp.Characters).To(HaveLen(2))
			Expect(comp.ProfileInventories).To(BeNil())
			Expect(comp.CharacterEquipments).To(BeNil())
		})

		It("should require components", func() {
			_, err := c.FetchProfile(ctx, 42, enums.MembershipTypeSteam, nil, "")
			Expect(err).To(MatchError(apierror.ErrInvalidArgument))
		})

		It("should surface a membership type mismatch", func() {
			httpmock.RegisterResponder(http.MethodGet, platform+"/Destiny2/4/Profile/123/?components=100",
				failure(http.StatusOK, 5, "DestinyInvalidMembershipType"))

			_, err := c.FetchProfile(ctx, 123, enums.MembershipTypeBlizzard,
				[]enums.ComponentType{enums.ComponentProfiles}, "")
			Expect(err).To(MatchError(apierror.ErrMembershipType))
			Expect(httpmock.GetTotalCallCount()).To(Equal(1))
		})

		It("should search players by Bungie name", func() {
			httpmock.RegisterResponder(http.MethodPost, platform+"/Destiny2/SearchDestinyPlayerByBungieName/-1/",
				func(req *http.Request) (*http.Response, error) {
					Expect(bodyOf(req)).To(And(
						HaveKeyWithValue("displayName", "Jim"),
						HaveKeyWithValue("displayNameCode", BeNumerically("==", 1234)),
					))
					return ok([]any{map[string]any{
						"membershipId":                "4611686018467284386",
						"membershipType":              3,
						"bungieGlobalDisplayName":     "",
						"displayName":                 "legacy",
						"LastSeenDisplayName":         "legacy",
						"bungieGlobalDisplayNameCode": 1234,
					}})(req)
				})

			players, err := c.FetchPlayer(ctx, "Jim", 1234, enums.MembershipTypeNone)
			Expect(err).NotTo(HaveOccurred())
			Expect(players).To(HaveLen(1))
			Expect(players[0].ID).To(Equal(int64(4611686018467284386)))
			Expect(players[0].Name.IsUndefined()).To(BeTrue())
			Expect(players[0].LastSeenName.Or("")).To(Equal("legacy"))
		})

		It("should fetch carnage reports from the stats host", func() {
			httpmock.RegisterResponder(http.MethodGet, "https://stats.bungie.net/Platform/Destiny2/Stats/PostGameCarnageReport/99/",
				ok(map[string]any{
					"period":          "2021-01-01T00:00:00Z",
					"activityDetails": map[string]any{"instanceId": "99", "mode": 4},
					"entries":         []any{},
					"teams":           []any{},
				}))

			_, err := c.FetchPostActivity(ctx, 99)
			Expect(err).NotTo(HaveOccurred())
			Expect(httpmock.GetCallCountInfo()).To(HaveKeyWithValue(
				"GET https://stats.bungie.net/Platform/Destiny2/Stats/PostGameCarnageReport/99/", 1))
		})

		It("should stop paging activities on a short page", func() {
			var pages []string
			httpmock.RegisterRegexpResponder(http.MethodGet,
				mustRegexp(`/Destiny2/3/Account/1/Character/2/Stats/Activities/`),
				func(req *http.Request) (*http.Response, error) {
					q := req.URL.Query()
					pages = append(pages, q.Get("page"))
					Expect(q.Get("count")).To(Equal("2"))
					Expect(q.Get("mode")).To(Equal("0"))
					n := 2
					if q.Get("page") == "1" {
						n = 1
					}
					var acts []any
					for range n {
						acts = append(acts, map[string]any{
							"period":          "2021-01-01T00:00:00Z",
							"activityDetails": map[string]any{"instanceId": "1", "mode": 4},
							"values":          map[string]any{},
						})
					}
					return ok(map[string]any{"activities": acts})(req)
				})

			acts, err := c.FetchActivities(ctx, ActivityQuery{
				MembershipID:   1,
				MembershipType: enums.MembershipTypeSteam,
				CharacterID:    2,
				Limit:          2,
			}).Collect()
			Expect(err).NotTo(HaveOccurred())
			Expect(acts).To(HaveLen(3))
			Expect(pages).To(Equal([]string{"0", "1"}))
		})

		It("should require a token for vendors", func() {
			_, err := c.FetchVendors(ctx, "", 1, enums.MembershipTypeSteam, 2,
				[]enums.ComponentType{enums.ComponentVendors}, 0)
			Expect(err).To(MatchError(apierror.ErrUnauthorized))
			Expect(httpmock.GetTotalCallCount()).To(BeZero())
		})
	})

	Describe("clans", func() {
		It("should look a clan up by name", func() {
			httpmock.RegisterResponder(http.MethodGet, platform+"/GroupV2/Name/Math%20Class/1/",
				ok(map[string]any{
					"detail": map[string]any{
						"groupId":             "4389205",
						"name":                "Math Class",
						"groupType":           1,
						"creationDate":        "2020-01-01T00:00:00Z",
						"memberCount":         42,
						"clanInfo":            map[string]any{"clanCallsign": "MATH"},
						"features":            map[string]any{},
						"isPublic":            true,
						"membershipOption":    1,
						"chatSecurity":        0,
						"conversationId":      "1",
						"allowChat":           true,
						"motto":               "",
						"about":               "hi",
						"theme":               "Group_Community1",
						"locale":              "en",
						"avatarPath":          "/img/a.png",
						"bannerPath":          "/img/b.png",
						"tags":                []string{},
						"isDefaultPostPublic": false,
						"homepage":            0,
					},
					"founder": map[string]any{
						"groupId":    "4389205",
						"memberType": 5,
						"isOnline":   false,
						"joinDate":   "2020-01-01T00:00:00Z",
						"destinyUserInfo": map[string]any{
							"membershipId":   "1",
							"membershipType": 3,
						},
					},
				}))

			clan, err := c.FetchClan(ctx, "Math Class", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(clan.ID).To(Equal(int64(4389205)))
			Expect(clan.Name).To(Equal("Math Class"))
			Expect(clan.MemberCount).To(Equal(42))
		})

		It("should map a missing clan to not found", func() {
			httpmock.RegisterResponder(http.MethodGet, platform+"/GroupV2/1/",
				failure(http.StatusOK, 686, "ClanNotFound"))

			_, err := c.FetchClanFromID(ctx, 1, "")
			Expect(err).To(MatchError(apierror.ErrNotFound))
		})

		It("should page clan members from page one", func() {
			var seen []string
			httpmock.RegisterRegexpResponder(http.MethodGet, mustRegexp(`/GroupV2/7/Members/`),
				func(req *http.Request) (*http.Response, error) {
					q := req.URL.Query()
					seen = append(seen, q.Get("currentpage"))
					Expect(q.Get("nameSearch")).To(Equal("jim"))
					member := map[string]any{
						"groupId":         "7",
						"memberType":      2,
						"joinDate":        "2020-01-01T00:00:00Z",
						"destinyUserInfo": map[string]any{"membershipId": "1", "membershipType": 3},
					}
					return ok(map[string]any{
						"results":      []any{member},
						"hasMore":      q.Get("currentpage") == "1",
						"totalResults": 2,
					})(req)
				})

			members, err := c.FetchClanMembers(ctx, 7, MemberQuery{Name: "jim"}).Collect()
			Expect(err).NotTo(HaveOccurred())
			Expect(members).To(HaveLen(2))
			Expect(seen).To(Equal([]string{"1", "2"}))
		})

		It("should send ban details", func() {
			httpmock.RegisterResponder(http.MethodPost, platform+"/GroupV2/7/Members/3/1/Ban/",
				func(req *http.Request) (*http.Response, error) {
					Expect(req.Header.Get("Authorization")).To(Equal("Bearer tok"))
					Expect(bodyOf(req)).To(And(
						HaveKeyWithValue("comment", "spam"),
						HaveKeyWithValue("length", BeNumerically("==", 7)),
					))
					return ok(0)(req)
				})

			Expect(c.BanClanMember(ctx, "tok", 7, 1, enums.MembershipTypeSteam, 7, "spam")).To(Succeed())
		})

		It("should refuse admin calls without a token", func() {
			err := c.KickClanMember(ctx, "", 7, 1, enums.MembershipTypeSteam)
			Expect(err).To(MatchError(apierror.ErrUnauthorized))
			Expect(httpmock.GetTotalCallCount()).To(BeZero())
		})

		It("should reject clan-only filters on a clan search", func() {
			_, err := c.SearchGroup(ctx, GroupQuery{Name: "x", GroupType: enums.GroupTypeClan, TagText: "pve"})
			Expect(err).To(MatchError(apierror.ErrInvalidArgument))
		})
	})

	Describe("items", func() {
		It("should encode ids as strings", func() {
			httpmock.RegisterResponder(http.MethodPost, platform+"/Destiny2/Actions/Items/TransferItem/",
				func(req *http.Request) (*http.Response, error) {
					Expect(bodyOf(req)).To(And(
						HaveKeyWithValue("itemId", "6917529"),
						HaveKeyWithValue("characterId", "2305843"),
						HaveKeyWithValue("itemReferenceHash", BeNumerically("==", 3580904581)),
						HaveKeyWithValue("transferToVault", true),
						HaveKeyWithValue("stackSize", BeNumerically("==", 1)),
						HaveKeyWithValue("membershipType", BeNumerically("==", 3)),
					))
					return ok(0)(req)
				})

			t := ItemTarget{CharacterID: 2305843, MembershipType: enums.MembershipTypeSteam}
			Expect(c.TransferItem(ctx, "tok", t, 6917529, 3580904581, 0, true)).To(Succeed())
		})

		It("should reject a negative loadout index", func() {
			t := ItemTarget{CharacterID: 1, MembershipType: enums.MembershipTypeSteam}
			Expect(c.EquipLoadout(ctx, "tok", t, -1)).To(MatchError(apierror.ErrInvalidArgument))
		})
	})

	Describe("social", func() {
		It("should read the friend list", func() {
			httpmock.RegisterResponder(http.MethodGet, platform+"/Social/Friends/",
				ok(map[string]any{"friends": []any{map[string]any{
					"lastSeenAsMembershipId":         "4611686018467284386",
					"lastSeenAsBungieMembershipType": 3,
					"bungieGlobalDisplayName":        "",
					"onlineStatus":                   1,
				}}}))

			friends, err := c.FetchFriends(ctx, "tok")
			Expect(err).NotTo(HaveOccurred())
			Expect(friends).To(HaveLen(1))
			Expect(friends[0].ID).To(Equal(int64(4611686018467284386)))
			Expect(friends[0].Type).To(Equal(enums.MembershipTypeSteam))
			Expect(friends[0].Name.IsUndefined()).To(BeTrue())
		})

		It("should post friend actions to the member path", func() {
			var hits atomic.Int32
			httpmock.RegisterResponder(http.MethodPost, platform+"/Social/Friends/Remove/20315338/",
				func(req *http.Request) (*http.Response, error) {
					hits.Add(1)
					Expect(req.Header.Get("Authorization")).To(Equal("Bearer tok"))
					return ok(true)(req)
				})

			Expect(c.RemoveFriend(ctx, "tok", 20315338)).To(Succeed())
			Expect(hits.Load()).To(Equal(int32(1)))
		})

		It("should need a token", func() {
			err := c.SendFriendRequest(ctx, "", 20315338)
			Expect(err).To(MatchError(apierror.ErrUnauthorized))
			Expect(httpmock.GetTotalCallCount()).To(BeZero())
		})
	})

	Describe("fireteams", func() {
		It("should count private fireteams", func() {
			httpmock.RegisterResponder(http.MethodGet, platform+"/Fireteam/Clan/4389205/ActiveCount/", ok(3))

			n, err := c.FetchPrivateClanFireteams(ctx, "tok", 4389205)
			Expect(err).NotTo(HaveOccurred())
			Expect(n).To(Equal(3))
		})

		It("should reject an invalid clan id", func() {
			_, err := c.FetchPrivateClanFireteams(ctx, "tok", 0)
			Expect(err).To(MatchError(apierror.ErrInvalidArgument))
		})
	})

	Describe("milestones", func() {
		It("should key public milestones by hash", func() {
			httpmock.RegisterResponder(http.MethodGet, platform+"/Destiny2/Milestones/",
				ok(map[string]any{"1942283261": map[string]any{
					"milestoneHash": 1942283261,
					"order":         7,
				}}))

			ms, err := c.FetchPublicMilestones(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(ms).To(HaveKey(1942283261))
			Expect(ms[1942283261].Order).To(Equal(7))
		})
	})

	Describe("manifest", func() {
		It("should report the manifest version", func() {
			httpmock.RegisterResponder(http.MethodGet, platform+"/Destiny2/Manifest/",
				ok(map[string]any{
					"version":                 "229107.24.03.22",
					"mobileWorldContentPaths": map[string]string{"en": "/common/world.content"},
				}))

			v, err := c.FetchManifestVersion(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(v).To(Equal("229107.24.03.22"))

			paths, err := c.FetchManifestPath(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(paths).To(HaveKeyWithValue("en", "/common/world.content"))
		})
	})

	Describe("escape hatch", func() {
		It("should call arbitrary platform paths", func() {
			httpmock.RegisterResponder(http.MethodGet, platform+"/Settings/", ok(map[string]any{"systems": map[string]any{}}))

			data, err := c.StaticRequest(ctx, http.MethodGet, "/Settings/")
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Contains(string(data), "systems")).To(BeTrue())
		})
	})
})
