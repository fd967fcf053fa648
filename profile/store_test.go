package profile

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "profile.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestLoadReturnsDefaultsForFreshStore(t *testing.T) {
	store := openTestStore(t)

	p := store.Load(context.Background())
	assert.Equal(t, Profile{}, p)
}

func TestRecordMatchCreatesProfile(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordMatch(ctx, 120, 7, 30, 10))

	p := store.Load(ctx)
	assert.Equal(t, 120, p.BestScore)
	assert.Equal(t, 7, p.BestCombo)
	assert.Equal(t, 30, p.TotalHits)
	assert.Equal(t, 10, p.TotalMisses)
	assert.Equal(t, 1, p.MatchesPlayed)
	assert.Equal(t, 12, p.Coins)
}

func TestRecordMatchAggregatesAcrossMatches(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordMatch(ctx, 120, 7, 30, 10))
	require.NoError(t, store.RecordMatch(ctx, 80, 9, 20, 15))

	p := store.Load(ctx)
	// Bests keep the max; totals accumulate
	assert.Equal(t, 120, p.BestScore)
	assert.Equal(t, 9, p.BestCombo)
	assert.Equal(t, 50, p.TotalHits)
	assert.Equal(t, 25, p.TotalMisses)
	assert.Equal(t, 2, p.MatchesPlayed)
	assert.Equal(t, 20, p.Coins)
}

func TestRecordMatchZeroScoreEarnsNoCoins(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordMatch(ctx, 5, 1, 5, 30))

	p := store.Load(ctx)
	assert.Equal(t, 0, p.Coins)
	assert.Equal(t, 5, p.BestScore)
}

func TestOpenIsIdempotentOnExistingDatabase(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "profile.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.RecordMatch(context.Background(), 40, 3, 10, 2))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, reopened.Close())
	}()

	p := reopened.Load(context.Background())
	assert.Equal(t, 40, p.BestScore)
	assert.Equal(t, 1, p.MatchesPlayed)
}
