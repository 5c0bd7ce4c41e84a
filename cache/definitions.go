package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kofuk/bungie/entity"
	"github.com/kofuk/bungie/factory"
)

const (
	DefaultTTL        = 24 * time.Hour
	DefaultVersionTTL = 5 * time.Minute

	keyPrefix = "bungie:"
)

// Source is the part of the client the cache reads through.
type Source interface {
	FetchDefinition(ctx context.Context, entityType string, hash uint32) (json.RawMessage, error)
	FetchManifestVersion(ctx context.Context) (string, error)
}

// Definitions caches definition payloads and the manifest version. Store
// failures are logged and fall through to the source.
type Definitions struct {
	src        Source
	store      Store
	ttl        time.Duration
	versionTTL time.Duration
}

func NewDefinitions(src Source, store Store) *Definitions {
	return &Definitions{
		src:        src,
		store:      store,
		ttl:        DefaultTTL,
		versionTTL: DefaultVersionTTL,
	}
}

func (d *Definitions) WithTTL(definitions, version time.Duration) *Definitions {
	d.ttl = definitions
	d.versionTTL = version
	return d
}

func definitionKey(version, entityType string, hash uint32) string {
	return fmt.Sprintf("%sdef:%s:%s:%d", keyPrefix, version, entityType, hash)
}

const versionKey = keyPrefix + "manifest-version"

// ManifestVersion returns the current manifest version.
func (d *Definitions) ManifestVersion(ctx context.Context) (string, error) {
	data, err := d.store.Get(ctx, versionKey)
	if err == nil {
		return string(data), nil
	}
	if !errors.Is(err, ErrMiss) {
		slog.Warn("Failed to read manifest version from cache", slog.Any("error", err))
	}

	version, err := d.src.FetchManifestVersion(ctx)
	if err != nil {
		return "", err
	}
	if err := d.store.Set(ctx, versionKey, []byte(version), d.versionTTL); err != nil {
		slog.Warn("Failed to cache manifest version", slog.Any("error", err))
	}
	return version, nil
}

// Definition returns the raw definition. Entries are keyed by manifest
// version so a content update invalidates them.
func (d *Definitions) Definition(ctx context.Context, entityType string, hash uint32) (json.RawMessage, error) {
	version, err := d.ManifestVersion(ctx)
	if err != nil {
		return nil, err
	}
	key := definitionKey(version, entityType, hash)

	data, err := d.store.Get(ctx, key)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, ErrMiss) {
		slog.Warn("Failed to read definition from cache", slog.String("key", key), slog.Any("error", err))
	}

	data, err = d.src.FetchDefinition(ctx, entityType, hash)
	if err != nil {
		return nil, err
	}
	if err := d.store.Set(ctx, key, data, d.ttl); err != nil {
		slog.Warn("Failed to cache definition", slog.String("key", key), slog.Any("error", err))
	}
	return data, nil
}

func (d *Definitions) InventoryItem(ctx context.Context, hash uint32) (entity.InventoryEntity, error) {
	data, err := d.Definition(ctx, "DestinyInventoryItemDefinition", hash)
	if err != nil {
		return entity.InventoryEntity{}, err
	}
	return factory.DeserializeInventoryEntity(data)
}

func (d *Definitions) Entity(ctx context.Context, entityType string, hash uint32) (entity.Entity, error) {
	data, err := d.Definition(ctx, entityType, hash)
	if err != nil {
		return entity.Entity{}, err
	}
	return factory.DeserializeEntity(data)
}

// Invalidate drops the cached manifest version so the next read refetches it.
func (d *Definitions) Invalidate(ctx context.Context) error {
	return d.store.Del(ctx, versionKey)
}
