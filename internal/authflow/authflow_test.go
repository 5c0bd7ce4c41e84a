package authflow

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/rest"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeExchanger struct {
	codes []string
	err   error
}

func (e *fakeExchanger) AuthorizationURL(state string) (rest.OAuth2URL, error) {
	q := url.Values{"client_id": {"1"}, "response_type": {"code"}, "state": {state}}
	return rest.OAuth2URL{URL: "https://www.bungie.net/en/OAuth/Authorize?" + q.Encode(), State: state}, nil
}

func (e *fakeExchanger) FetchOAuth2Tokens(ctx context.Context, code string) (entity.BearerToken, error) {
	e.codes = append(e.codes, code)
	if e.err != nil {
		return entity.BearerToken{}, e.err
	}
	return entity.BearerToken{Access: "A", Refresh: "R", MembershipID: 7}, nil
}

func stateOf(authURL string) string {
	u, err := url.Parse(authURL)
	Expect(err).NotTo(HaveOccurred())
	return u.Query().Get("state")
}

func callback(f *Flow, q url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, CallbackPath+"?"+q.Encode(), nil)
	rec := httptest.NewRecorder()
	f.Handler().ServeHTTP(rec, req)
	return rec
}

var _ = Describe("Flow", func() {
	var (
		ex  *fakeExchanger
		f   *Flow
		ctx context.Context
	)

	BeforeEach(func() {
		ex = &fakeExchanger{}
		f = New(ex, []byte("0123456789abcdef0123456789abcdef"))
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(context.Background(), time.Second)
		DeferCleanup(cancel)
	})

	It("should exchange the code for a signed state", func() {
		authURL, err := f.Start()
		Expect(err).NotTo(HaveOccurred())

		rec := callback(f, url.Values{"code": {"abc"}, "state": {stateOf(authURL)}})
		Expect(rec.Code).To(Equal(http.StatusOK))

		token, err := f.Wait(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(token.Access).To(Equal("A"))
		Expect(ex.codes).To(Equal([]string{"abc"}))
	})

	It("should accept a state only once", func() {
		authURL, err := f.Start()
		Expect(err).NotTo(HaveOccurred())
		q := url.Values{"code": {"abc"}, "state": {stateOf(authURL)}}

		Expect(callback(f, q).Code).To(Equal(http.StatusOK))
		Expect(callback(f, q).Code).To(Equal(http.StatusBadRequest))
		Expect(ex.codes).To(HaveLen(1))
	})

	It("should reject a tampered state", func() {
		authURL, err := f.Start()
		Expect(err).NotTo(HaveOccurred())

		rec := callback(f, url.Values{"code": {"abc"}, "state": {stateOf(authURL) + "x"}})
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(ex.codes).To(BeEmpty())
	})

	It("should reject a state signed by another key", func() {
		other := New(ex, []byte("fedcba9876543210fedcba9876543210"))
		authURL, err := other.Start()
		Expect(err).NotTo(HaveOccurred())
		_, err = f.Start()
		Expect(err).NotTo(HaveOccurred())

		rec := callback(f, url.Values{"code": {"abc"}, "state": {stateOf(authURL)}})
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("should report a denied authorization", func() {
		_, err := f.Start()
		Expect(err).NotTo(HaveOccurred())

		rec := callback(f, url.Values{"error": {"access_denied"}})
		Expect(rec.Code).To(Equal(http.StatusForbidden))

		_, err = f.Wait(ctx)
		Expect(errors.Is(err, ErrDenied)).To(BeTrue())
	})

	It("should report a failed exchange", func() {
		ex.err = errors.New("invalid_grant")
		authURL, err := f.Start()
		Expect(err).NotTo(HaveOccurred())

		rec := callback(f, url.Values{"code": {"abc"}, "state": {stateOf(authURL)}})
		Expect(rec.Code).To(Equal(http.StatusBadGateway))

		_, err = f.Wait(ctx)
		Expect(err).To(MatchError("invalid_grant"))
	})

	It("should give up when the context ends", func() {
		short, cancel := context.WithCancel(ctx)
		cancel()
		_, err := f.Wait(short)
		Expect(err).To(MatchError(context.Canceled))
	})
})

func Test(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Authflow Suite")
}
