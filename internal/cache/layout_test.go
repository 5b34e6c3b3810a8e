package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Takatakatake/Esperanto-words-4choice-quizzes/internal/grouping"
)

func TestLayout_RoundTrip(t *testing.T) {
	entries, err := grouping.Load(testRecords(90), nil)
	require.NoError(t, err)
	groups := grouping.BuildEntries(entries, 5, grouping.Options{})

	data, err := NewLayout(groups).Encode()
	require.NoError(t, err)

	layout, err := DecodeLayout(data)
	require.NoError(t, err)
	assert.Equal(t, 90, layout.EntryCount())

	back, err := layout.Rehydrate(entries)
	require.NoError(t, err)
	require.Len(t, back, len(groups))
	for i := range groups {
		assert.Equal(t, groups[i].ID, back[i].ID)
		require.Len(t, back[i].Entries, groups[i].Size())
		for j := range groups[i].Entries {
			assert.Same(t, groups[i].Entries[j], back[i].Entries[j], "entries are referenced, not copied")
		}
	}
}

func TestLayout_RehydrateRejectsMismatch(t *testing.T) {
	entries, err := grouping.Load(testRecords(30), nil)
	require.NoError(t, err)
	layout := NewLayout(grouping.BuildEntries(entries, 1, grouping.Options{}))

	_, err = layout.Rehydrate(entries[:29])
	assert.ErrorIs(t, err, ErrStaleLayout)

	dup := NewLayout(grouping.BuildEntries(entries, 1, grouping.Options{}))
	dup.Groups[0].Indices[1] = dup.Groups[0].Indices[0]
	_, err = dup.Rehydrate(entries)
	assert.ErrorIs(t, err, ErrStaleLayout)

	out := NewLayout(grouping.BuildEntries(entries, 1, grouping.Options{}))
	out.Groups[0].Indices[0] = 1000
	_, err = out.Rehydrate(entries)
	assert.ErrorIs(t, err, ErrStaleLayout)
}

func TestCompatible(t *testing.T) {
	assert.True(t, Compatible("v1.0.0"))
	assert.True(t, Compatible("v1.4.2"))
	assert.False(t, Compatible("v2.0.0"))
	assert.False(t, Compatible("1.0.0"))
	assert.False(t, Compatible(""))
}

func TestDecodeLayout_Errors(t *testing.T) {
	_, err := DecodeLayout([]byte(`not json`))
	assert.Error(t, err)

	_, err = DecodeLayout([]byte(`{"format":"v0.9.0","groups":[]}`))
	assert.ErrorIs(t, err, ErrStaleLayout)
}
