package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/store"
)

// LayoutStore is the persistent layer. *store.LayoutRepo implements it.
type LayoutStore interface {
	Get(ctx context.Context, hash string, seed int64) (*store.LayoutRecord, error)
	Save(ctx context.Context, rec *store.LayoutRecord) error
}

// Source says where a build result came from.
type Source string

const (
	SourceMemory Source = "memory"
	SourceStore  Source = "store"
	SourceBuilt  Source = "built"
)

// Builder wraps grouping.Build with a memory layer and an optional
// persistent layer.
type Builder struct {
	Options grouping.Options
	Memory  *Memory

	// Store may be nil to disable persistence.
	Store LayoutStore

	Logger *slog.Logger
}

// NewBuilder returns a builder with a fresh memory cache.
func NewBuilder(opts grouping.Options, st LayoutStore, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{Options: opts, Memory: NewMemory(), Store: st, Logger: logger}
}

// Build returns the groups for records and seed, from the first layer that
// has them. Persistent layer failures are logged and fall through to a
// fresh build; validation errors are returned.
func (b *Builder) Build(ctx context.Context, records []grouping.Record, seed int64) ([]*grouping.Group, Source, error) {
	key := Key{InputHash: Fingerprint(records, b.seedMode()), Seed: seed}
	log := b.logger().With(slog.String("key", key.String()))

	if b.Memory != nil {
		if groups, ok := b.Memory.Get(key); ok {
			log.Debug("layout cache hit", slog.String("source", string(SourceMemory)))
			return groups, SourceMemory, nil
		}
	}

	entries, err := grouping.Load(records, b.Options.AudioKey)
	if err != nil {
		return nil, "", err
	}

	if groups := b.fromStore(ctx, key, entries, log); groups != nil {
		b.remember(key, groups)
		return groups, SourceStore, nil
	}

	groups := grouping.BuildEntries(entries, seed, b.Options)
	b.remember(key, groups)
	b.persist(ctx, key, groups, log)
	log.Info("built groups", slog.Int("entries", len(entries)), slog.Int("groups", len(groups)))
	return groups, SourceBuilt, nil
}

func (b *Builder) fromStore(ctx context.Context, key Key, entries []*grouping.Entry, log *slog.Logger) []*grouping.Group {
	if b.Store == nil {
		return nil
	}
	rec, err := b.Store.Get(ctx, key.InputHash, key.Seed)
	if err != nil {
		log.Warn("read cached layout", slog.Any("error", err))
		return nil
	}
	if rec == nil {
		log.Debug("layout cache miss")
		return nil
	}

	layout, err := DecodeLayout(rec.Data)
	if err == nil {
		var groups []*grouping.Group
		if groups, err = layout.Rehydrate(entries); err == nil {
			log.Info("layout cache hit", slog.String("source", string(SourceStore)), slog.Int("groups", len(groups)))
			return groups
		}
	}
	log.Warn("discarding cached layout", slog.Any("error", err))
	return nil
}

func (b *Builder) persist(ctx context.Context, key Key, groups []*grouping.Group, log *slog.Logger) {
	if b.Store == nil {
		return
	}
	layout := NewLayout(groups)
	data, err := layout.Encode()
	if err == nil {
		err = b.Store.Save(ctx, &store.LayoutRecord{
			InputHash:  key.InputHash,
			Seed:       key.Seed,
			Format:     layout.Format,
			EntryCount: layout.EntryCount(),
			GroupCount: len(groups),
			Data:       data,
		})
	}
	if err != nil {
		log.Warn("write cached layout", slog.Any("error", fmt.Errorf("persist layout: %w", err)))
	}
}

func (b *Builder) remember(key Key, groups []*grouping.Group) {
	if b.Memory != nil {
		b.Memory.Put(key, groups)
	}
}

func (b *Builder) seedMode() grouping.SeedMode {
	if b.Options.SeedMode == "" {
		return grouping.SeedModeDerived
	}
	return b.Options.SeedMode
}

func (b *Builder) logger() *slog.Logger {
	if b.Logger == nil {
		return slog.Default()
	}
	return b.Logger
}
