package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shutterdesk/models"
)

func testSessions() []models.Session {
	return []models.Session{
		{ID: "101", ClientName: "Ada Byron", ClientEmail: "ada@example.com", SessionType: "engagement", Date: "2026-05-10", Status: models.StatusPending, QuoteAmount: 300},
		{ID: "102", ClientName: "Grace Hopper", ClientEmail: "grace@example.com", SessionType: "motorcycle", Date: "2026-03-02", Status: models.StatusBooked, QuoteAmount: 650},
		{ID: "103", ClientName: "Alan Kay", ClientEmail: "alan@example.com", SessionType: "Engagement", Date: "2026-07-21", Status: models.StatusQuoted, QuoteAmount: 420},
	}
}

func TestSearch(t *testing.T) {
	sessions := testSessions()

	t.Run("empty term matches everything", func(t *testing.T) {
		assert.Equal(t, sessions, Search(sessions, ""))
		assert.Equal(t, sessions, Search(sessions, "   "))
	})

	t.Run("matches session type case-insensitively", func(t *testing.T) {
		matched := Search(sessions, "eng")
		require.Len(t, matched, 2)
		assert.Equal(t, "101", matched[0].ID)
		assert.Equal(t, "103", matched[1].ID)
	})

	t.Run("matches client name and email", func(t *testing.T) {
		assert.Len(t, Search(sessions, "hopper"), 1)
		assert.Len(t, Search(sessions, "alan@"), 1)
	})

	t.Run("matches identifier as text", func(t *testing.T) {
		matched := Search(sessions, "102")
		require.Len(t, matched, 1)
		assert.Equal(t, "Grace Hopper", matched[0].ClientName)
	})
}

func TestFilter(t *testing.T) {
	sessions := testSessions()

	t.Run("empty criteria is the identity", func(t *testing.T) {
		assert.Equal(t, sessions, Filter(sessions, FilterOptions{}))
	})

	t.Run("status is case-insensitive exact", func(t *testing.T) {
		matched := Filter(sessions, FilterOptions{Status: "BOOKED"})
		require.Len(t, matched, 1)
		assert.Equal(t, "102", matched[0].ID)
	})

	t.Run("session type is case-insensitive exact", func(t *testing.T) {
		assert.Len(t, Filter(sessions, FilterOptions{SessionType: "engagement"}), 2)
		assert.Empty(t, Filter(sessions, FilterOptions{SessionType: "eng"}))
	})

	t.Run("date range is inclusive on both ends", func(t *testing.T) {
		matched := Filter(sessions, FilterOptions{DateFrom: "2026-03-02", DateTo: "2026-05-10"})
		require.Len(t, matched, 2)
		assert.Equal(t, "101", matched[0].ID)
		assert.Equal(t, "102", matched[1].ID)
	})

	t.Run("missing date fails an active date filter", func(t *testing.T) {
		withBlank := append(testSessions(), models.Session{ID: "104", ClientName: "No Date"})
		matched := Filter(withBlank, FilterOptions{DateFrom: "2000-01-01"})
		assert.Len(t, matched, 3)
	})

	t.Run("missing date passes when no date filter is set", func(t *testing.T) {
		withBlank := append(testSessions(), models.Session{ID: "104", ClientName: "No Date"})
		assert.Len(t, Filter(withBlank, FilterOptions{Status: ""}), 4)
	})
}

func TestSort(t *testing.T) {
	sessions := testSessions()

	t.Run("date ascending then descending reverses exactly", func(t *testing.T) {
		asc := Sort(sessions, SortByDate, SortAsc)
		desc := Sort(sessions, SortByDate, SortDesc)
		require.Len(t, asc, 3)
		for i := range asc {
			assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
		}
		assert.Equal(t, "102", asc[0].ID)
		assert.Equal(t, "103", asc[2].ID)
	})

	t.Run("missing dates sort first ascending", func(t *testing.T) {
		withBlank := append(testSessions(), models.Session{ID: "104", ClientName: "No Date"})
		sorted := Sort(withBlank, SortByDate, SortAsc)
		assert.Equal(t, "104", sorted[0].ID)
	})

	t.Run("quote amount compares numerically", func(t *testing.T) {
		sorted := Sort(sessions, SortByQuoteAmount, SortAsc)
		assert.Equal(t, []string{"101", "103", "102"}, []string{sorted[0].ID, sorted[1].ID, sorted[2].ID})
	})

	t.Run("id compares numerically with missing as zero", func(t *testing.T) {
		withOdd := append(testSessions(), models.Session{ID: "not-a-number", ClientName: "Odd"})
		sorted := Sort(withOdd, SortByID, SortAsc)
		assert.Equal(t, "not-a-number", sorted[0].ID)
	})

	t.Run("client name compares as text", func(t *testing.T) {
		sorted := Sort(sessions, SortByClientName, SortAsc)
		assert.Equal(t, "Ada Byron", sorted[0].ClientName)
		assert.Equal(t, "Grace Hopper", sorted[2].ClientName)
	})

	t.Run("input slice is untouched", func(t *testing.T) {
		before := testSessions()
		Sort(before, SortByDate, SortDesc)
		assert.Equal(t, testSessions(), before)
	})
}

func TestQuerySessions(t *testing.T) {
	sessions := testSessions()

	rows := BuildRows(QuerySessions(sessions, "eng", FilterOptions{}, SortByDate, SortAsc))
	require.Len(t, rows, 2)
	assert.Equal(t, displayNumberBase, rows[0].DisplayNo)
	assert.Equal(t, displayNumberBase+1, rows[1].DisplayNo)
	assert.Equal(t, "101", rows[0].SessionID)
	assert.Equal(t, "103", rows[1].SessionID)
}

func TestDisplayNumbersAreSnapshotLocal(t *testing.T) {
	sessions := testSessions()
	first := BuildRows(QuerySessions(sessions, "", FilterOptions{}, SortByDate, SortAsc))

	// A later snapshot over a mutated collection renumbers its own rows but
	// the earlier snapshot is untouched.
	shrunk := sessions[1:]
	second := BuildRows(QuerySessions(shrunk, "", FilterOptions{}, SortByDate, SortAsc))

	assert.Len(t, first, 3)
	assert.Len(t, second, 2)
	assert.Equal(t, displayNumberBase, first[0].DisplayNo)
	assert.Equal(t, displayNumberBase, second[0].DisplayNo)
	assert.NotEqual(t, first[0].SessionID, "")

	// Real identifiers stay stable across snapshots even as display numbers
	// shift position.
	assert.Equal(t, "102", first[0].SessionID)
	assert.Equal(t, "102", second[0].SessionID)
}
