package cache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/store"
)

func testRecords(n int) []grouping.Record {
	recs := make([]grouping.Record, n)
	for i := range recs {
		ending := "o"
		if i%3 == 0 {
			ending = "i"
		}
		recs[i] = grouping.Record{
			Text:        fmt.Sprintf("vort%dx%s", i, ending),
			Translation: "t" + strconv.Itoa(i),
			Level:       strconv.Itoa(i % 40),
		}
	}
	return recs
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeStore struct {
	recs  map[Key]*store.LayoutRecord
	gets  int
	saves int
	err   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{recs: make(map[Key]*store.LayoutRecord)}
}

func (f *fakeStore) Get(_ context.Context, hash string, seed int64) (*store.LayoutRecord, error) {
	f.gets++
	if f.err != nil {
		return nil, f.err
	}
	return f.recs[Key{hash, seed}], nil
}

func (f *fakeStore) Save(_ context.Context, rec *store.LayoutRecord) error {
	f.saves++
	if f.err != nil {
		return f.err
	}
	f.recs[Key{rec.InputHash, rec.Seed}] = rec
	return nil
}

func ids(groups []*grouping.Group) [][]int {
	out := make([][]int, len(groups))
	for i, g := range groups {
		for _, e := range g.Entries {
			out[i] = append(out[i], e.SourceIndex)
		}
	}
	return out
}

func TestFingerprint(t *testing.T) {
	recs := testRecords(10)
	base := Fingerprint(recs, grouping.SeedModeDerived)

	assert.Equal(t, base, Fingerprint(testRecords(10), grouping.SeedModeDerived))
	assert.NotEqual(t, base, Fingerprint(recs, grouping.SeedModeShared))
	assert.NotEqual(t, base, Fingerprint(recs[:9], grouping.SeedModeDerived))

	changed := testRecords(10)
	changed[4].Level = "99"
	assert.NotEqual(t, base, Fingerprint(changed, grouping.SeedModeDerived))

	// Field boundaries matter.
	a := []grouping.Record{{Text: "ab", Translation: "c", Level: "1"}}
	b := []grouping.Record{{Text: "a", Translation: "bc", Level: "1"}}
	assert.NotEqual(t, Fingerprint(a, ""), Fingerprint(b, ""))
}

func TestBuilder_Layers(t *testing.T) {
	ctx := context.Background()
	recs := testRecords(150)
	fs := newFakeStore()

	b := NewBuilder(grouping.Options{}, fs, quietLogger())
	built, src, err := b.Build(ctx, recs, 7)
	require.NoError(t, err)
	assert.Equal(t, SourceBuilt, src)
	assert.Equal(t, 1, fs.saves)

	again, src, err := b.Build(ctx, recs, 7)
	require.NoError(t, err)
	assert.Equal(t, SourceMemory, src)
	assert.Equal(t, built, again)

	// A new process has an empty memory layer but finds the stored layout.
	fresh := NewBuilder(grouping.Options{}, fs, quietLogger())
	loaded, src, err := fresh.Build(ctx, recs, 7)
	require.NoError(t, err)
	assert.Equal(t, SourceStore, src)
	assert.Equal(t, ids(built), ids(loaded))
	for i := range built {
		assert.Equal(t, built[i].ID, loaded[i].ID)
		assert.Equal(t, built[i].StageLabels, loaded[i].StageLabels)
	}

	direct, err := grouping.Build(recs, 7, grouping.Options{})
	require.NoError(t, err)
	assert.Equal(t, ids(direct), ids(loaded))
}

func TestBuilder_SeedIsPartOfKey(t *testing.T) {
	ctx := context.Background()
	b := NewBuilder(grouping.Options{}, nil, quietLogger())

	_, _, err := b.Build(ctx, testRecords(80), 1)
	require.NoError(t, err)
	_, src, err := b.Build(ctx, testRecords(80), 2)
	require.NoError(t, err)
	assert.Equal(t, SourceBuilt, src)
	assert.Equal(t, 2, b.Memory.Len())
}

func TestBuilder_StoreFailureFallsBack(t *testing.T) {
	fs := newFakeStore()
	fs.err = errors.New("disk full")

	b := NewBuilder(grouping.Options{}, fs, quietLogger())
	groups, src, err := b.Build(context.Background(), testRecords(60), 3)
	require.NoError(t, err)
	assert.Equal(t, SourceBuilt, src)
	assert.NotEmpty(t, groups)
}

func TestBuilder_StaleLayoutIsRebuilt(t *testing.T) {
	ctx := context.Background()
	recs := testRecords(60)
	fs := newFakeStore()

	key := Key{InputHash: Fingerprint(recs, grouping.SeedModeDerived), Seed: 3}
	fs.recs[key] = &store.LayoutRecord{InputHash: key.InputHash, Seed: 3, Format: "v2.0.0", Data: []byte(`{"format":"v2.0.0","groups":[]}`)}

	b := NewBuilder(grouping.Options{}, fs, quietLogger())
	_, src, err := b.Build(ctx, recs, 3)
	require.NoError(t, err)
	assert.Equal(t, SourceBuilt, src)
	assert.Equal(t, "v1.0.0", fs.recs[key].Format)
}

func TestBuilder_ValidationError(t *testing.T) {
	recs := testRecords(5)
	recs[2].Level = "high"

	b := NewBuilder(grouping.Options{}, newFakeStore(), quietLogger())
	_, _, err := b.Build(context.Background(), recs, 1)
	assert.ErrorIs(t, err, grouping.ErrValidation)
}

func TestBuilder_WithSQLiteStore(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	recs := testRecords(120)
	first := NewBuilder(grouping.Options{}, st.Layouts(), quietLogger())
	built, _, err := first.Build(ctx, recs, 42)
	require.NoError(t, err)

	second := NewBuilder(grouping.Options{}, st.Layouts(), quietLogger())
	loaded, src, err := second.Build(ctx, recs, 42)
	require.NoError(t, err)
	assert.Equal(t, SourceStore, src)
	assert.Equal(t, ids(built), ids(loaded))
}
