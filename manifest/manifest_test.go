package manifest

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/klauspost/compress/zip"
	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/entity"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

type fakeSource struct {
	manifest  entity.Manifest
	files     map[string][]byte
	downloads atomic.Int32
}

func (s *fakeSource) FetchManifest(ctx context.Context) (entity.Manifest, error) {
	return s.manifest, nil
}

func (s *fakeSource) Download(ctx context.Context, path string) ([]byte, error) {
	s.downloads.Add(1)
	data, ok := s.files[path]
	if !ok {
		return nil, &apierror.Error{Kind: apierror.KindHTTPError, HTTPStatus: 404}
	}
	return data, nil
}

// The hash is above MaxInt32 so the stored id is negative.
const exoticHash = 3580904581

func buildDatabase(dir string) string {
	path := filepath.Join(dir, "source.content")
	db, err := sql.Open("sqlite", path)
	Expect(err).NotTo(HaveOccurred())
	defer db.Close()

	_, err = db.Exec("CREATE TABLE DestinyInventoryItemDefinition (id INTEGER PRIMARY KEY, json TEXT)")
	Expect(err).NotTo(HaveOccurred())
	_, err = db.Exec("INSERT INTO DestinyInventoryItemDefinition (id, json) VALUES (?, ?), (?, ?)",
		RowID(exoticHash), `{"hash":3580904581,"displayProperties":{"name":"Thorn"},"inventory":{"tierType":6}}`,
		RowID(1), `{"hash":1,"displayProperties":{"name":"Plain"}}`)
	Expect(err).NotTo(HaveOccurred())
	return path
}

func zipped(name string, content []byte) []byte {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	f, err := w.Create(name)
	Expect(err).NotTo(HaveOccurred())
	_, err = f.Write(content)
	Expect(err).NotTo(HaveOccurred())
	Expect(w.Close()).To(Succeed())
	return buf.Bytes()
}

var _ = Describe("Manifest", func() {
	var (
		dir string
		src *fakeSource
	)

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
		content, err := os.ReadFile(buildDatabase(GinkgoT().TempDir()))
		Expect(err).NotTo(HaveOccurred())

		src = &fakeSource{
			manifest: entity.Manifest{
				Version:                 "224.1",
				MobileWorldContentPaths: map[string]string{"en": "/sql/en.content"},
				JSONWorldContentPaths:   map[string]string{"en": "/json/en.json"},
			},
			files: map[string][]byte{
				"/sql/en.content": zipped("world_sql_content_abc.content", content),
				"/json/en.json":   []byte(`{"DestinyInventoryItemDefinition":{}}`),
			},
		}
	})

	It("should report the version and paths", func() {
		Expect(Version(context.Background(), src)).To(Equal("224.1"))
		Expect(Paths(context.Background(), src)).To(HaveKeyWithValue("en", "/sql/en.content"))
	})

	It("should reject unknown languages", func() {
		_, err := ReadBytes(context.Background(), src, "xx")
		Expect(err).To(MatchError(apierror.ErrInvalidArgument))
	})

	It("should extract the database and read definitions from it", func() {
		path, err := DownloadSQLite(context.Background(), src, Options{Dir: dir, Name: "world"})
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(dir, "world.sqlite3")))

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(HaveLen(1))

		r, err := Open(path)
		Expect(err).NotTo(HaveOccurred())
		defer r.Close()

		Expect(r.Tables(context.Background())).To(ContainElement("DestinyInventoryItemDefinition"))

		item, err := r.InventoryItem(context.Background(), exoticHash)
		Expect(err).NotTo(HaveOccurred())
		Expect(item.Name.Or("")).To(Equal("Thorn"))
		Expect(item.Tier).NotTo(BeNil())

		_, err = r.Definition(context.Background(), "DestinyInventoryItemDefinition", 42)
		Expect(err).To(MatchError(apierror.ErrNotFound))

		_, err = r.Definition(context.Background(), "x; DROP TABLE y", 1)
		Expect(err).To(MatchError(apierror.ErrInvalidArgument))

		it, err := r.Definitions(context.Background(), "DestinyInventoryItemDefinition")
		Expect(err).NotTo(HaveOccurred())
		Expect(it.Count()).To(Equal(2))
	})

	It("should refuse to overwrite without force", func() {
		dest := filepath.Join(dir, "world.sqlite3")
		Expect(os.WriteFile(dest, []byte("old"), 0644)).To(Succeed())

		_, err := DownloadSQLite(context.Background(), src, Options{Dir: dir, Name: "world"})
		Expect(errors.Is(err, fs.ErrExist)).To(BeTrue())
		Expect(apierror.KindOf(err)).To(Equal(apierror.KindIOError))
		Expect(src.downloads.Load()).To(BeZero())

		data, err := os.ReadFile(dest)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).To(Equal("old"))

		_, err = DownloadSQLite(context.Background(), src, Options{Dir: dir, Name: "world", Force: true, Executor: NewPoolExecutor(1)})
		Expect(err).NotTo(HaveOccurred())
		data, err = os.ReadFile(dest)
		Expect(err).NotTo(HaveOccurred())
		Expect(string(data)).NotTo(Equal("old"))
	})

	It("should leave nothing behind when the archive is broken", func() {
		src.files["/sql/en.content"] = []byte("not a zip")
		_, err := DownloadSQLite(context.Background(), src, Options{Dir: dir})
		Expect(err).To(MatchError(apierror.ErrInvalidPayload))

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})

	It("should clean up when cancelled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := DownloadSQLite(ctx, src, Options{Dir: dir})
		Expect(err).To(MatchError(apierror.ErrCancelled))

		entries, err := os.ReadDir(dir)
		Expect(err).NotTo(HaveOccurred())
		Expect(entries).To(BeEmpty())
	})

	It("should write the JSON manifest", func() {
		path, err := DownloadJSON(context.Background(), src, Options{Dir: dir})
		Expect(err).NotTo(HaveOccurred())
		Expect(path).To(Equal(filepath.Join(dir, "manifest.json")))

		data, err := os.ReadFile(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(MatchJSON(`{"DestinyInventoryItemDefinition":{}}`))
	})
})

var _ = Describe("RowID", func() {
	It("should reinterpret hashes as signed", func() {
		Expect(RowID(exoticHash)).To(Equal(int64(-714062715)))
		Expect(RowID(1)).To(Equal(int64(1)))
	})
})

func Test(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Manifest Suite")
}
