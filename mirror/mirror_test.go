package mirror

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jarcoal/httpmock"
	"github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const listResult = `<?xml version="1.0" encoding="UTF-8"?>
<ListBucketResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/">
  <Name>bucket</Name>
  <Prefix>manifests/</Prefix>
  <KeyCount>5</KeyCount>
  <MaxKeys>1000</MaxKeys>
  <IsTruncated>false</IsTruncated>
  <Contents><Key>manifests/v1/world.sqlite3.zst</Key><LastModified>2024-01-01T00:00:00.000Z</LastModified><Size>10</Size></Contents>
  <Contents><Key>manifests/v2/world.sqlite3.zst</Key><LastModified>2024-02-01T00:00:00.000Z</LastModified><Size>11</Size></Contents>
  <Contents><Key>manifests/v2/world.json.zst</Key><LastModified>2024-02-01T00:00:01.000Z</LastModified><Size>12</Size></Contents>
  <Contents><Key>manifests/v3/</Key><LastModified>2024-03-01T00:00:00.000Z</LastModified><Size>0</Size></Contents>
  <Contents><Key>manifests/readme.txt</Key><LastModified>2024-03-01T00:00:00.000Z</LastModified><Size>3</Size></Contents>
</ListBucketResult>`

func pattern(s string) *regexp.Regexp {
	return regexp.MustCompile(s)
}

var _ = ginkgo.Describe("Mirror", func() {
	var (
		transport *httpmock.MockTransport
		m         *Mirror
		ctx       context.Context
	)

	ginkgo.BeforeEach(func() {
		transport = httpmock.NewMockTransport()
		client := s3.New(s3.Options{
			Region:                     "us-east-1",
			BaseEndpoint:               aws.String("https://s3.test"),
			UsePathStyle:               true,
			Credentials:                aws.AnonymousCredentials{},
			HTTPClient:                 &http.Client{Transport: transport},
			RetryMaxAttempts:           1,
			RequestChecksumCalculation: aws.RequestChecksumCalculationWhenRequired,
			ResponseChecksumValidation: aws.ResponseChecksumValidationWhenRequired,
		})
		m = NewWithClient(client, "bucket")
		ctx = context.Background()
	})

	ginkgo.It("should build keys from the version and file name", func() {
		Expect(m.Key("v1", "/tmp/x/world.sqlite3")).To(Equal("manifests/v1/world.sqlite3.zst"))

		e, ok := m.parse("manifests/v1/world.sqlite3.zst")
		Expect(ok).To(BeTrue())
		Expect(e.Version).To(Equal("v1"))
		Expect(e.Name).To(Equal("world.sqlite3"))

		_, ok = m.parse("manifests/readme.txt")
		Expect(ok).To(BeFalse())
	})

	ginkgo.It("should round-trip a compressed manifest", func() {
		content := bytes.Repeat([]byte("destiny "), 4096)
		file := filepath.Join(ginkgo.GinkgoT().TempDir(), "world.sqlite3")
		Expect(os.WriteFile(file, content, 0o644)).To(Succeed())

		var stored []byte
		transport.RegisterRegexpResponder(http.MethodPut, pattern(`^https://s3\.test/bucket/manifests/v1/world\.sqlite3\.zst`),
			func(req *http.Request) (*http.Response, error) {
				Expect(req.Header.Get("X-Amz-Meta-Manifest-Version")).To(Equal("v1"))
				var err error
				stored, err = io.ReadAll(req.Body)
				Expect(err).NotTo(HaveOccurred())
				return httpmock.NewStringResponse(http.StatusOK, ""), nil
			})
		transport.RegisterRegexpResponder(http.MethodGet, pattern(`^https://s3\.test/bucket/manifests/v1/world\.sqlite3\.zst`),
			func(req *http.Request) (*http.Response, error) {
				return httpmock.NewBytesResponse(http.StatusOK, stored), nil
			})

		key, err := m.Push(ctx, "v1", file)
		Expect(err).NotTo(HaveOccurred())
		Expect(key).To(Equal("manifests/v1/world.sqlite3.zst"))
		Expect(len(stored)).To(BeNumerically("<", len(content)))

		var out bytes.Buffer
		Expect(m.Fetch(ctx, key, &out)).To(Succeed())
		Expect(out.Bytes()).To(Equal(content))
	})

	ginkgo.It("should report missing objects", func() {
		transport.RegisterRegexpResponder(http.MethodHead, pattern(`^https://s3\.test/bucket/manifests/v9/`),
			httpmock.NewStringResponder(http.StatusNotFound, ""))
		transport.RegisterRegexpResponder(http.MethodHead, pattern(`^https://s3\.test/bucket/manifests/v1/`),
			httpmock.NewStringResponder(http.StatusOK, ""))

		ok, err := m.Exists(ctx, "v9", "world.sqlite3")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeFalse())

		ok, err = m.Exists(ctx, "v1", "world.sqlite3")
		Expect(err).NotTo(HaveOccurred())
		Expect(ok).To(BeTrue())
	})

	ginkgo.Context("with mirrored versions", func() {
		ginkgo.BeforeEach(func() {
			transport.RegisterRegexpResponder(http.MethodGet, pattern(`^https://s3\.test/bucket/?(\?.*)?$`),
				httpmock.NewStringResponder(http.StatusOK, listResult))
		})

		ginkgo.It("should list versions newest first", func() {
			entries, err := m.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(entries).To(HaveLen(3))
			Expect(entries[0].Key).To(Equal("manifests/v2/world.json.zst"))
			Expect(entries[0].Size).To(Equal(int64(12)))

			versions, err := m.Versions(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(versions).To(Equal([]string{"v2", "v1"}))
		})

		ginkgo.It("should prune older versions", func() {
			var body string
			transport.RegisterRegexpResponder(http.MethodPost, pattern(`^https://s3\.test/bucket/?\?delete`),
				func(req *http.Request) (*http.Response, error) {
					data, _ := io.ReadAll(req.Body)
					body = string(data)
					return httpmock.NewStringResponse(http.StatusOK,
						`<?xml version="1.0" encoding="UTF-8"?><DeleteResult xmlns="http://s3.amazonaws.com/doc/2006-03-01/"></DeleteResult>`), nil
				})

			deleted, err := m.Prune(ctx, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(Equal([]string{"manifests/v1/world.sqlite3.zst"}))
			Expect(strings.Contains(body, "manifests/v1/world.sqlite3.zst")).To(BeTrue())
			Expect(strings.Contains(body, "manifests/v2/")).To(BeFalse())
		})

		ginkgo.It("should not delete anything when every version is kept", func() {
			deleted, err := m.Prune(ctx, 5)
			Expect(err).NotTo(HaveOccurred())
			Expect(deleted).To(BeEmpty())
		})
	})
})

func Test(t *testing.T) {
	RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Mirror Suite")
}
