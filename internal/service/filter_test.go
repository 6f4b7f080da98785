package service

import (
	"testing"

	"smssync/internal/models"
	"smssync/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedIDs(items []models.Message) []string {
	ids := make([]string, len(items))
	for i, m := range items {
		ids[i] = m.ID
	}
	return ids
}

func TestFilterMessagesBuckets(t *testing.T) {
	seed := store.SeedMessages()

	tests := []struct {
		filter models.Filter
		want   []string
	}{
		// newest first within each bucket
		{models.FilterAll, []string{"msg_1001", "msg_1002", "msg_1003", "msg_1006", "msg_1008", "msg_1007", "msg_1009"}},
		{models.FilterUnread, []string{"msg_1001", "msg_1002", "msg_1009"}},
		{models.FilterStarred, []string{"msg_1001", "msg_1004"}},
		{models.FilterArchived, []string{"msg_1004"}},
		{models.FilterTrash, []string{"msg_1005"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.filter), func(t *testing.T) {
			got := FilterMessages(seed, tt.filter, "", SortDesc)
			assert.Equal(t, tt.want, seedIDs(got))
		})
	}
}

func TestFilterMessagesBucketPredicates(t *testing.T) {
	// Every member of a filtered result must satisfy the bucket predicate;
	// no extraneous members.
	seed := store.SeedMessages()
	filters := []models.Filter{
		models.FilterAll, models.FilterUnread, models.FilterStarred,
		models.FilterArchived, models.FilterTrash,
	}

	for _, filter := range filters {
		got := FilterMessages(seed, filter, "", SortDesc)
		for i := range got {
			assert.True(t, filter.Matches(&got[i]), "item %s in filter %s", got[i].ID, filter)
		}

		// Count members of the source satisfying the predicate.
		want := 0
		for i := range seed {
			if filter.Matches(&seed[i]) {
				want++
			}
		}
		assert.Len(t, got, want, "filter %s", filter)
	}
}

func TestFilterMessagesSearch(t *testing.T) {
	seed := store.SeedMessages()

	t.Run("case-insensitive body match", func(t *testing.T) {
		got := FilterMessages(seed, models.FilterAll, "otp", SortDesc)
		require.Len(t, got, 1)
		assert.Equal(t, "msg_1002", got[0].ID)
	})

	t.Run("matches sender", func(t *testing.T) {
		got := FilterMessages(seed, models.FilterAll, "SWIGGY", SortDesc)
		require.Len(t, got, 1)
		assert.Equal(t, "msg_1006", got[0].ID)
	})

	t.Run("matches tags", func(t *testing.T) {
		// "Delivery" tag on msg_1003 and msg_1006; the trashed courier
		// message also matches but is filtered out before the search.
		got := FilterMessages(seed, models.FilterAll, "delivery", SortDesc)
		require.Len(t, got, 2)
		ids := seedIDs(got)
		assert.Contains(t, ids, "msg_1003")
		assert.Contains(t, ids, "msg_1006")
	})

	t.Run("whitespace-only search is ignored", func(t *testing.T) {
		got := FilterMessages(seed, models.FilterAll, "   ", SortDesc)
		assert.Len(t, got, 7)
	})

	t.Run("no match", func(t *testing.T) {
		got := FilterMessages(seed, models.FilterAll, "zzzznope", SortDesc)
		assert.Empty(t, got)
	})
}

func TestFilterMessagesSort(t *testing.T) {
	seed := store.SeedMessages()

	desc := FilterMessages(seed, models.FilterAll, "", SortDesc)
	require.NotEmpty(t, desc)
	assert.Equal(t, "msg_1001", desc[0].ID)
	assert.Equal(t, "msg_1009", desc[len(desc)-1].ID)

	asc := FilterMessages(seed, models.FilterAll, "", SortAsc)
	require.NotEmpty(t, asc)
	assert.Equal(t, "msg_1009", asc[0].ID)
	assert.Equal(t, "msg_1001", asc[len(asc)-1].ID)
}

func TestFilterMessagesUnparseableTimestamp(t *testing.T) {
	items := []models.Message{
		{ID: "old", Timestamp: "2020-01-01T00:00:00Z"},
		{ID: "bad", Timestamp: "not-a-time"},
	}

	// A bad timestamp compares as "now", so it sorts newest in descending
	// order instead of failing the pipeline.
	got := FilterMessages(items, models.FilterAll, "", SortDesc)
	require.Len(t, got, 2)
	assert.Equal(t, "bad", got[0].ID)
}

func TestFilterMessagesReturnsFreshSlice(t *testing.T) {
	seed := store.SeedMessages()
	got := FilterMessages(seed, models.FilterTrash, "", SortDesc)
	require.Len(t, got, 1)

	got[0].Read = true
	assert.False(t, seed[4].Read, "filter output must not alias the input")
}

func TestParseSortOrder(t *testing.T) {
	assert.Equal(t, SortAsc, ParseSortOrder("asc"))
	assert.Equal(t, SortDesc, ParseSortOrder("desc"))
	assert.Equal(t, SortDesc, ParseSortOrder(""))
	assert.Equal(t, SortDesc, ParseSortOrder("sideways"))
}
