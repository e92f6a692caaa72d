package dataset

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)
	require.NotNil(t, store)

	assert.NotEmpty(t, store.Version())
	assert.Len(t, store.Version(), 12)
}

func TestLoad_RevenueTrend(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	trend := store.RevenueTrend()
	require.Len(t, trend, 12)

	// Série cronológica, um ponto por mês, sem lacunas
	for i := 1; i < len(trend); i++ {
		expected := trend[i-1].Date.AddDate(0, 1, 0)
		assert.True(t, trend[i].Date.Equal(expected),
			"esperava %s, veio %s", expected.Format(time.DateOnly), trend[i].Date.Format(time.DateOnly))
	}

	first := trend[0]
	assert.Equal(t, 2024, first.Date.Year())
	assert.Equal(t, time.January, first.Date.Month())
}

func TestLoad_AccountPipeline(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	accounts := store.AccountPipeline()
	require.Len(t, accounts, 8)

	seen := make(map[string]bool, len(accounts))
	for _, account := range accounts {
		assert.False(t, seen[account.ID], "ID duplicado: %s", account.ID)
		seen[account.ID] = true

		assert.GreaterOrEqual(t, account.MRR, 0.0)
		assert.NotEmpty(t, account.Company)
		assert.NotEmpty(t, account.Owner)
	}
}

func TestLoad_ActivityFeedOrder(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	feed := store.ActivityFeed()
	require.NotEmpty(t, feed)

	// Feed do mais recente para o mais antigo
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].Timestamp.After(feed[i-1].Timestamp))
	}
}

func TestLoad_GoalsProgress(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	goals := store.GoalsProgress()
	require.Len(t, goals, 3)

	for _, goal := range goals {
		assert.Greater(t, goal.Target, 0.0)
		assert.GreaterOrEqual(t, goal.Progress, 0.0)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	store, err := Load()
	require.NoError(t, err)

	trend := store.RevenueTrend()
	trend[0].Revenue = -1

	assert.NotEqual(t, -1.0, store.RevenueTrend()[0].Revenue)
}
