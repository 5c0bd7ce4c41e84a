// Package manifest downloads and reads the Destiny 2 content database.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/kofuk/bungie/apierror"
	"github.com/kofuk/bungie/entity"
)

const (
	DefaultLanguage = "en"
	DefaultName     = "manifest"
)

// Source is where manifests come from. The client facade implements it.
type Source interface {
	FetchManifest(ctx context.Context) (entity.Manifest, error)
	Download(ctx context.Context, path string) ([]byte, error)
}

type Options struct {
	Language string
	// Dir is the destination directory. It defaults to the working directory.
	Dir  string
	Name string
	// Force replaces an existing SQLite database. JSON manifests are always
	// replaced.
	Force    bool
	Executor Executor
}

func (o Options) withDefaults() Options {
	if o.Language == "" {
		o.Language = DefaultLanguage
	}
	if o.Dir == "" {
		o.Dir = "."
	}
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Executor == nil {
		o.Executor = DefaultExecutor
	}
	return o
}

func Version(ctx context.Context, src Source) (string, error) {
	m, err := src.FetchManifest(ctx)
	if err != nil {
		return "", err
	}
	return m.Version, nil
}

// Paths returns the language-keyed SQLite content paths.
func Paths(ctx context.Context, src Source) (map[string]string, error) {
	m, err := src.FetchManifest(ctx)
	if err != nil {
		return nil, err
	}
	return m.MobileWorldContentPaths, nil
}

func pick(paths map[string]string, language string) (string, error) {
	p, ok := paths[language]
	if !ok || p == "" {
		return "", apierror.InvalidArgument("manifest has no content for language %q", language)
	}
	return p, nil
}

// ReadBytes downloads the zipped SQLite database for language.
func ReadBytes(ctx context.Context, src Source, language string) ([]byte, error) {
	if language == "" {
		language = DefaultLanguage
	}
	paths, err := Paths(ctx, src)
	if err != nil {
		return nil, err
	}
	p, err := pick(paths, language)
	if err != nil {
		return nil, err
	}
	return src.Download(ctx, p)
}

func existsError(path string) error {
	return apierror.IO(&fs.PathError{Op: "download", Path: path, Err: fs.ErrExist})
}

func ioError(err error) error {
	if err == nil {
		return nil
	}
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return apierror.Cancelled(err)
	}
	return apierror.IO(err)
}

// DownloadSQLite downloads the SQLite database and returns the path of
// <Dir>/<Name>.sqlite3. The file appears under its final name only once
// extraction succeeded.
func DownloadSQLite(ctx context.Context, src Source, opts Options) (string, error) {
	opts = opts.withDefaults()
	dest := filepath.Join(opts.Dir, opts.Name+".sqlite3")

	if !opts.Force {
		if _, err := os.Stat(dest); err == nil {
			return "", existsError(dest)
		}
	}

	data, err := ReadBytes(ctx, src, opts.Language)
	if err != nil {
		return "", err
	}

	err = opts.Executor.Run(ctx, func(ctx context.Context) error {
		return extract(ctx, data, dest, opts.Force)
	})
	if err != nil {
		return "", ioError(err)
	}

	slog.Info("Manifest database downloaded", slog.String("path", dest))
	return dest, nil
}

func extract(ctx context.Context, data []byte, dest string, force bool) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	archive, err := os.CreateTemp(dir, ".manifest-*.zip")
	if err != nil {
		return err
	}
	defer os.Remove(archive.Name())

	if _, err := archive.Write(data); err != nil {
		archive.Close()
		return err
	}
	if err := archive.Close(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	r, err := zip.OpenReader(archive.Name())
	if err != nil {
		return apierror.InvalidPayload(err, "manifest archive is not a zip file")
	}
	defer r.Close()

	var content *zip.File
	for _, f := range r.File {
		if strings.HasSuffix(f.Name, ".content") {
			if content != nil {
				return apierror.InvalidPayload(nil, "manifest archive has more than one content file")
			}
			content = f
		}
	}
	if content == nil {
		return apierror.InvalidPayload(nil, "manifest archive has no content file")
	}

	part, err := os.CreateTemp(dir, ".manifest-*.part")
	if err != nil {
		return err
	}
	partName := part.Name()
	committed := false
	defer func() {
		if !committed {
			os.Remove(partName)
		}
	}()

	in, err := content.Open()
	if err != nil {
		part.Close()
		return err
	}
	_, err = io.Copy(part, &ctxReader{ctx: ctx, r: in})
	in.Close()
	if err != nil {
		part.Close()
		return err
	}
	if err := part.Sync(); err != nil {
		part.Close()
		return err
	}
	if err := part.Close(); err != nil {
		return err
	}

	if force {
		if err := os.Remove(dest); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	} else if _, err := os.Stat(dest); err == nil {
		return existsError(dest)
	}

	if err := os.Rename(partName, dest); err != nil {
		return err
	}
	committed = true
	return nil
}

// DownloadJSON downloads the JSON world content and returns the path of
// <Dir>/<Name>.json.
func DownloadJSON(ctx context.Context, src Source, opts Options) (string, error) {
	opts = opts.withDefaults()
	dest := filepath.Join(opts.Dir, opts.Name+".json")

	m, err := src.FetchManifest(ctx)
	if err != nil {
		return "", err
	}
	p, err := pick(m.JSONWorldContentPaths, opts.Language)
	if err != nil {
		return "", err
	}
	data, err := src.Download(ctx, p)
	if err != nil {
		return "", err
	}

	err = opts.Executor.Run(ctx, func(ctx context.Context) error {
		return writeAtomic(ctx, data, dest)
	})
	if err != nil {
		return "", ioError(err)
	}

	slog.Info("Manifest JSON downloaded", slog.String("path", dest))
	return dest, nil
}

func writeAtomic(ctx context.Context, data []byte, dest string) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	f, err := os.CreateTemp(dir, ".manifest-*.part")
	if err != nil {
		return err
	}
	name := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(name)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return err
	}
	if err := ctx.Err(); err != nil {
		os.Remove(name)
		return err
	}
	if err := os.Rename(name, dest); err != nil {
		os.Remove(name)
		return fmt.Errorf("unable to move manifest into place: %w", err)
	}
	return nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (r *ctxReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}
	return r.r.Read(p)
}
