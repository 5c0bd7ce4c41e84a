package rest

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jarcoal/httpmock"
	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/internal/route"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const manifestURL = "https://www.bungie.net/Platform/Destiny2/Manifest/"

func envelope(code int, status string, response any, throttle int) map[string]any {
	return map[string]any{
		"Response":        response,
		"ErrorCode":       code,
		"ErrorStatus":     status,
		"Message":         status,
		"MessageData":     map[string]string{},
		"ThrottleSeconds": throttle,
	}
}

func profileParams() route.Params {
	return route.Params{
		Path:  map[string]string{"membershipType": "4", "destinyMembershipId": "123"},
		Query: url.Values{"components": {"100"}},
	}
}

type sleeps struct {
	mu sync.Mutex
	ds []time.Duration
}

func (s *sleeps) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ds = append(s.ds, d)
	return ctx.Err()
}

var _ = Describe("Client", func() {
	var slept *sleeps

	BeforeEach(func() {
		httpmock.Activate()
		slept = &sleeps{}
	})

	AfterEach(func() {
		httpmock.DeactivateAndReset()
	})

	It("should return the Response member on success", func() {
		httpmock.RegisterResponder(http.MethodGet, manifestURL,
			func(req *http.Request) (*http.Response, error) {
				Expect(req.Header.Get("X-API-Key")).To(Equal("key"))
				Expect(req.Header.Get("Accept")).To(Equal("application/json"))
				Expect(req.Header.Get("User-Agent")).To(Equal(DefaultUserAgent))
				Expect(req.Header.Get("Authorization")).To(BeEmpty())
				return httpmock.NewJsonResponse(http.StatusOK, envelope(1, "Success", map[string]any{"version": "1"}, 0))
			})

		c := New("key")
		defer c.Close()
		raw, err := c.Do(context.Background(), route.OpGetDestinyManifest, route.Params{}, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).To(MatchJSON(`{"version":"1"}`))
	})

	It("should fail a membership type mismatch without retrying", func() {
		target := "https://www.bungie.net/Platform/Destiny2/4/Profile/123/?components=100"
		httpmock.RegisterResponder(http.MethodGet, target,
			httpmock.NewJsonResponderOrPanic(http.StatusOK, envelope(5, "DestinyInvalidMembershipType", nil, 0)))

		c := New("key", WithSleep(slept.sleep))
		_, err := c.Do(context.Background(), route.OpGetProfile, profileParams(), "")
		Expect(err).To(MatchError(apierror.ErrMembershipType))
		Expect(httpmock.GetTotalCallCount()).To(Equal(1))
		Expect(slept.ds).To(BeEmpty())

		var apiErr *apierror.Error
		Expect(errors.As(err, &apiErr)).To(BeTrue())
		Expect(apiErr.Code).To(Equal(5))
		Expect(apiErr.Status).To(Equal("DestinyInvalidMembershipType"))
	})

	It("should honor ThrottleSeconds before retrying", func() {
		httpmock.RegisterResponder(http.MethodGet, manifestURL,
			httpmock.NewJsonResponderOrPanic(http.StatusTooManyRequests, envelope(36, "ThrottleLimitExceededMomentarily", nil, 2)).
				Then(httpmock.NewJsonResponderOrPanic(http.StatusOK, envelope(1, "Success", map[string]any{"ok": true}, 0))))

		c := New("key")
		start := time.Now()
		raw, err := c.Do(context.Background(), route.OpGetDestinyManifest, route.Params{}, "")
		Expect(err).NotTo(HaveOccurred())
		Expect(time.Since(start)).To(BeNumerically(">=", 2*time.Second))
		Expect(raw).To(MatchJSON(`{"ok":true}`))
		Expect(httpmock.GetTotalCallCount()).To(Equal(2))
	})

	It("should give up after the retry budget", func() {
		httpmock.RegisterResponder(http.MethodGet, manifestURL,
			httpmock.NewJsonResponderOrPanic(http.StatusTooManyRequests, envelope(36, "ThrottleLimitExceeded", nil, 0)))

		c := New("key", WithSleep(slept.sleep), WithMaxRetries(3))
		_, err := c.Do(context.Background(), route.OpGetDestinyManifest, route.Params{}, "")
		Expect(err).To(MatchError(apierror.ErrRateLimited))
		Expect(httpmock.GetTotalCallCount()).To(Equal(4))
		Expect(slept.ds).To(HaveLen(3))
		Expect(slept.ds[1]).To(BeNumerically(">=", 2*time.Second))
	})

	It("should retry server errors and report the upstream as unavailable", func() {
		httpmock.RegisterResponder(http.MethodGet, manifestURL,
			httpmock.NewStringResponder(http.StatusBadGateway, "<html>bad gateway</html>"))

		c := New("key", WithSleep(slept.sleep), WithMaxRetries(1))
		_, err := c.Do(context.Background(), route.OpGetDestinyManifest, route.Params{}, "")
		Expect(err).To(MatchError(apierror.ErrUpstreamUnavailable))
		Expect(httpmock.GetTotalCallCount()).To(Equal(2))
	})

	It("should surface non-JSON client errors as HTTP errors", func() {
		httpmock.RegisterResponder(http.MethodGet, manifestURL,
			httpmock.NewStringResponder(http.StatusTeapot, "short and stout"))

		c := New("key", WithSleep(slept.sleep))
		_, err := c.Do(context.Background(), route.OpGetDestinyManifest, route.Params{}, "")
		Expect(err).To(MatchError(apierror.ErrHTTP))
		Expect(err.Error()).To(ContainSubstring("short and stout"))
	})

	It("should classify not-found statuses", func() {
		httpmock.RegisterResponder(http.MethodGet, "https://www.bungie.net/Platform/User/GetBungieNetUserById/1/",
			httpmock.NewJsonResponderOrPanic(http.StatusOK, envelope(217, "UserCannotResolveCentralAccount", nil, 0)))

		c := New("key")
		_, err := c.Do(context.Background(), route.OpGetBungieNetUserByID,
			route.Params{Path: map[string]string{"id": "1"}}, "")
		Expect(err).To(MatchError(apierror.ErrUserNotFound))
		Expect(err).To(MatchError(apierror.ErrNotFound))
	})

	It("should refuse OAuth2 endpoints without a token", func() {
		c := New("key")
		_, err := c.Do(context.Background(), route.OpGetFriendList, route.Params{}, "")
		Expect(err).To(MatchError(apierror.ErrUnauthorized))
		Expect(httpmock.GetTotalCallCount()).To(Equal(0))
	})

	It("should send the bearer token", func() {
		httpmock.RegisterResponder(http.MethodGet, "https://www.bungie.net/Platform/Social/Friends/",
			func(req *http.Request) (*http.Response, error) {
				Expect(req.Header.Get("Authorization")).To(Equal("Bearer secret"))
				return httpmock.NewJsonResponse(http.StatusOK, envelope(1, "Success", map[string]any{"friends": []any{}}, 0))
			})

		c := New("key")
		_, err := c.Do(context.Background(), route.OpGetFriendList, route.Params{}, Token("secret"))
		Expect(err).NotTo(HaveOccurred())
	})

	It("should report cancellation during backoff", func() {
		httpmock.RegisterResponder(http.MethodGet, manifestURL,
			httpmock.NewJsonResponderOrPanic(http.StatusServiceUnavailable, envelope(5, "SystemDisabled", nil, 0)))

		ctx, cancel := context.WithCancel(context.Background())
		c := New("key", WithSleep(func(ctx context.Context, d time.Duration) error {
			cancel()
			return ctx.Err()
		}))
		_, err := c.Do(ctx, route.OpGetDestinyManifest, route.Params{}, "")
		Expect(err).To(MatchError(apierror.ErrCancelled))
		Expect(errors.Is(err, context.Canceled)).To(BeTrue())
	})

	It("should never run more requests than allowed at once", func() {
		var inFlight, peak atomic.Int32
		httpmock.RegisterResponder(http.MethodGet, manifestURL,
			func(req *http.Request) (*http.Response, error) {
				n := inFlight.Add(1)
				defer inFlight.Add(-1)
				for {
					p := peak.Load()
					if n <= p || peak.CompareAndSwap(p, n) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				return httpmock.NewJsonResponse(http.StatusOK, envelope(1, "Success", map[string]any{}, 0))
			})

		c := New("key", WithMaxConcurrency(2))
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer GinkgoRecover()
				defer wg.Done()
				_, err := c.Do(context.Background(), route.OpGetDestinyManifest, route.Params{}, "")
				Expect(err).NotTo(HaveOccurred())
			}()
		}
		wg.Wait()
		Expect(peak.Load()).To(BeNumerically("<=", 2))
		Expect(httpmock.GetTotalCallCount()).To(Equal(10))
	})

	It("should fail after Close", func() {
		c := New("key")
		Expect(c.Close()).To(Succeed())
		_, err := c.Do(context.Background(), route.OpGetDestinyManifest, route.Params{}, "")
		Expect(err).To(MatchError(apierror.ErrIO))
		Expect(errors.Is(err, net.ErrClosed)).To(BeTrue())
	})

	It("should call paths outside the catalog", func() {
		httpmock.RegisterResponder(http.MethodGet, "https://www.bungie.net/Platform/Destiny2/Milestones/?x=1,2",
			httpmock.NewJsonResponderOrPanic(http.StatusOK, envelope(1, "Success", map[string]any{"a": 1}, 0)))

		c := New("key")
		raw, err := c.Static(context.Background(), http.MethodGet, "Destiny2/Milestones/", WithQuery(url.Values{"x": {"1,2"}}))
		Expect(err).NotTo(HaveOccurred())
		Expect(raw).To(MatchJSON(`{"a":1}`))
	})

	It("should download relative paths from the web host", func() {
		httpmock.RegisterResponder(http.MethodGet, "https://www.bungie.net/common/destiny2_content/world.content",
			httpmock.NewBytesResponder(http.StatusOK, []byte("PK\x03\x04")))

		c := New("key")
		data, err := c.Download(context.Background(), "/common/destiny2_content/world.content")
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(Equal([]byte("PK\x03\x04")))
	})
})

var _ = Describe("OAuth2", func() {
	BeforeEach(func() {
		httpmock.Activate()
	})

	AfterEach(func() {
		httpmock.DeactivateAndReset()
	})

	It("should exchange an authorization code with a form body", func() {
		httpmock.RegisterResponder(http.MethodPost, route.TokenURL,
			func(req *http.Request) (*http.Response, error) {
				Expect(req.Header.Get("Content-Type")).To(Equal("application/x-www-form-urlencoded"))
				Expect(req.ParseForm()).To(Succeed())
				Expect(req.PostForm.Get("grant_type")).To(Equal("authorization_code"))
				Expect(req.PostForm.Get("code")).To(Equal("abc"))
				Expect(req.PostForm.Get("client_id")).To(Equal("1234"))
				Expect(req.PostForm.Get("client_secret")).To(Equal("shh"))
				return httpmock.NewJsonResponse(http.StatusOK, map[string]any{
					"access_token":       "AT",
					"token_type":         "Bearer",
					"expires_in":         3600,
					"refresh_token":      "RT",
					"refresh_expires_in": 7776000,
					"membership_id":      "4611686018467284386",
				})
			})

		c := New("key", WithOAuth2Client("1234", "shh"))
		tok, err := c.FetchOAuth2Tokens(context.Background(), "abc")
		Expect(err).NotTo(HaveOccurred())
		Expect(tok.Access).To(Equal("AT"))
		Expect(tok.Refresh).To(Equal("RT"))
		Expect(tok.ExpiresIn).To(Equal(3600))
		Expect(tok.MembershipID).To(Equal(int64(4611686018467284386)))
		Expect(tok.IssuedAt).To(BeTemporally("~", time.Now(), time.Minute))
	})

	It("should report a rejected refresh token as unauthorized", func() {
		httpmock.RegisterResponder(http.MethodPost, route.TokenURL,
			httpmock.NewJsonResponderOrPanic(http.StatusBadRequest, map[string]any{
				"error":             "invalid_grant",
				"error_description": "RefreshTokenNotYetValid",
			}))

		c := New("key", WithOAuth2Client("1234", ""))
		_, err := c.RefreshAccessToken(context.Background(), "RT")
		Expect(err).To(MatchError(apierror.ErrUnauthorized))
	})

	It("should build the authorization URL with a random state", func() {
		c := New("key", WithOAuth2Client("1234", ""))
		u, err := c.BuildOAuth2URL("")
		Expect(err).NotTo(HaveOccurred())
		Expect(u.State).NotTo(BeEmpty())

		parsed, err := url.Parse(u.URL)
		Expect(err).NotTo(HaveOccurred())
		Expect(parsed.Host).To(Equal("www.bungie.net"))
		Expect(parsed.Path).To(Equal("/en/OAuth/Authorize"))
		Expect(parsed.Query().Get("client_id")).To(Equal("1234"))
		Expect(parsed.Query().Get("response_type")).To(Equal("code"))
		Expect(parsed.Query().Get("state")).To(Equal(u.State))
	})

	It("should require a client id", func() {
		_, err := New("key").BuildOAuth2URL("s")
		Expect(err).To(MatchError(apierror.ErrInvalidArgument))
	})
})

func Test(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "REST Suite")
}
