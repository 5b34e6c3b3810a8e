package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRepo(t *testing.T) *LayoutRepo {
	t.Helper()
	repo := openTestStore(t).Layouts()
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return repo
}

func TestLayoutSaveAndGet(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	got, err := repo.Get(ctx, "abc", 7)
	require.NoError(t, err)
	assert.Nil(t, got, "miss returns nil without error")

	rec := &LayoutRecord{
		InputHash:  "abc",
		Seed:       7,
		Format:     "v1.0.0",
		EntryCount: 245,
		GroupCount: 12,
		Data:       []byte(`{"groups":[]}`),
	}
	require.NoError(t, repo.Save(ctx, rec))
	assert.False(t, rec.CreatedAt.IsZero())

	got, err = repo.Get(ctx, "abc", 7)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "abc", got.InputHash)
	assert.Equal(t, int64(7), got.Seed)
	assert.Equal(t, "v1.0.0", got.Format)
	assert.Equal(t, 245, got.EntryCount)
	assert.Equal(t, 12, got.GroupCount)
	assert.Equal(t, rec.Data, got.Data)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))

	other, err := repo.Get(ctx, "abc", 8)
	require.NoError(t, err)
	assert.Nil(t, other)
}

func TestLayoutSave_ReplacesSameKey(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, &LayoutRecord{InputHash: "h", Seed: 1, Format: "v1.0.0", Data: []byte("old")}))
	require.NoError(t, repo.Save(ctx, &LayoutRecord{InputHash: "h", Seed: 1, Format: "v1.1.0", Data: []byte("new")}))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := repo.Get(ctx, "h", 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "new", string(got.Data))
	assert.Equal(t, "v1.1.0", got.Format)
}

func TestLayoutPrune(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Save(ctx, &LayoutRecord{
			InputHash: fmt.Sprintf("h%d", i),
			Seed:      1,
			Format:    "v1.0.0",
			Data:      []byte("{}"),
		}))
	}

	deleted, err := repo.Prune(ctx, 10)
	require.NoError(t, err)
	assert.Zero(t, deleted)

	deleted, err = repo.Prune(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(3), deleted)

	list, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "h4", list[0].InputHash)
	assert.Equal(t, "h3", list[1].InputHash)
	assert.Nil(t, list[0].Data, "list omits data")

	deleted, err = repo.Prune(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLayoutList_Limit(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Save(ctx, &LayoutRecord{InputHash: "h", Seed: int64(i), Format: "v1.0.0", Data: []byte("{}")}))
	}

	list, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(2), list[0].Seed)
}
