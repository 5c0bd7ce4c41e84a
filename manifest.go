package bungie

import (
	"context"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/factory"
	"github.com/kofuk/bungie/internal/route"
	"github.com/kofuk/bungie/manifest"
)

var _ manifest.Source = (*Client)(nil)

func (c *Client) FetchManifest(ctx context.Context) (entity.Manifest, error) {
	return fetch(ctx, c, route.OpGetDestinyManifest, route.Params{}, "", factory.DeserializeManifest)
}

// Download fetches a static file such as a manifest archive.
func (c *Client) Download(ctx context.Context, path string) ([]byte, error) {
	return c.rest.Download(ctx, path)
}

func (c *Client) FetchManifestVersion(ctx context.Context) (string, error) {
	return manifest.Version(ctx, c)
}

func (c *Client) FetchManifestPath(ctx context.Context) (map[string]string, error) {
	return manifest.Paths(ctx, c)
}

func (c *Client) ReadManifestBytes(ctx context.Context, language string) ([]byte, error) {
	return manifest.ReadBytes(ctx, c, language)
}

// DownloadSQLiteManifest writes <dir>/<name>.sqlite3 and returns its path.
func (c *Client) DownloadSQLiteManifest(ctx context.Context, opts manifest.Options) (string, error) {
	return manifest.DownloadSQLite(ctx, c, opts)
}

// DownloadJSONManifest writes <dir>/<name>.json and returns its path.
func (c *Client) DownloadJSONManifest(ctx context.Context, opts manifest.Options) (string, error) {
	return manifest.DownloadJSON(ctx, c, opts)
}
