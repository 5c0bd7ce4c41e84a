package cli

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/kofuk/bungie/manifest"
	"github.com/robfig/cron/v3"
)

type manifestClient interface {
	FetchManifestVersion(ctx context.Context) (string, error)
	DownloadSQLiteManifest(ctx context.Context, opts manifest.Options) (string, error)
}

type pusher interface {
	Push(ctx context.Context, version, file string) (string, error)
}

// Watcher downloads the SQLite manifest whenever its version changes.
type Watcher struct {
	client manifestClient
	// mirror and invalidate are optional.
	mirror     pusher
	invalidate func(ctx context.Context) error
	opts       manifest.Options

	mu      sync.Mutex
	current string
}

func NewWatcher(client manifestClient, opts manifest.Options) *Watcher {
	opts.Force = true
	return &Watcher{client: client, opts: opts}
}

// Check downloads the manifest if a new version is out and reports whether
// it did.
func (w *Watcher) Check(ctx context.Context) (bool, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	version, err := w.client.FetchManifestVersion(ctx)
	if err != nil {
		return false, err
	}
	if version == w.current {
		slog.Debug("Manifest is up to date", slog.String("version", version))
		return false, nil
	}

	path, err := w.client.DownloadSQLiteManifest(ctx, w.opts)
	if err != nil {
		return false, err
	}
	slog.Info("Downloaded manifest", slog.String("version", version), slog.String("path", path))

	if w.mirror != nil {
		if _, err := w.mirror.Push(ctx, version, path); err != nil {
			return false, err
		}
	}
	if w.invalidate != nil {
		if err := w.invalidate(ctx); err != nil {
			slog.Warn("Failed to invalidate definition cache", slog.Any("error", err))
		}
	}

	w.current = version
	return true, nil
}

// Run checks once and then on schedule until ctx ends.
func (w *Watcher) Run(ctx context.Context, schedule string) error {
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	job := func() {
		if _, err := w.Check(ctx); err != nil {
			slog.Error("Failed to update manifest", slog.Any("error", err))
		}
	}
	if _, err := c.AddFunc(schedule, job); err != nil {
		return err
	}

	job()
	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	return nil
}
