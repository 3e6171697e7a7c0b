package database_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/feel-easy/uno-duel/database"
)

func TestScoreStore(t *testing.T) {
	t.Run("starts_from_zero_without_a_file", func(t *testing.T) {
		store := database.NewScoreStore("t-fresh", filepath.Join(t.TempDir(), "scores.json"))
		wins, losses := store.Stats()
		require.Equal(t, 0, wins)
		require.Equal(t, 0, losses)
	})

	t.Run("records_and_reloads_the_tally", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.json")
		store := database.NewScoreStore("t-reload", path)
		store.Record(true)
		store.Record(true)
		store.Record(false)

		wins, losses := store.Stats()
		require.Equal(t, 2, wins)
		require.Equal(t, 1, losses)

		reloaded := database.NewScoreStore("t-reload-2", path)
		wins, losses = reloaded.Stats()
		require.Equal(t, 2, wins)
		require.Equal(t, 1, losses)
	})

	t.Run("degrades_to_zero_on_a_corrupt_file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0644))
		store := database.NewScoreStore("t-corrupt", path)
		wins, losses := store.Stats()
		require.Equal(t, 0, wins)
		require.Equal(t, 0, losses)
	})

	t.Run("reset_zeroes_and_persists", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "scores.json")
		store := database.NewScoreStore("t-reset", path)
		store.Record(false)
		require.NoError(t, store.Reset())

		reloaded := database.NewScoreStore("t-reset-2", path)
		wins, losses := reloaded.Stats()
		require.Equal(t, 0, wins)
		require.Equal(t, 0, losses)
	})
}
