package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Service {
	t.Helper()
	s, err := Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadWeights(t *testing.T) {
	s := openTestStore(t)

	weights := []float64{0.5, -1.25, 0, 3}
	require.NoError(t, s.SaveWeights("learned", weights))

	got, err := s.LoadWeights("learned")
	require.NoError(t, err)
	assert.Equal(t, weights, got)
}

func TestLoadWeightsMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.LoadWeights("nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveWeightsUpsert(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveWeights("learned", []float64{1, 2, 3}))
	require.NoError(t, s.SaveWeights("learned", []float64{4, 5, 6}))

	got, err := s.LoadWeights("learned")
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6}, got)
}

func TestPoliciesAreIndependent(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SaveWeights("north", []float64{1}))
	require.NoError(t, s.SaveWeights("south", []float64{2}))

	north, err := s.LoadWeights("north")
	require.NoError(t, err)
	south, err := s.LoadWeights("south")
	require.NoError(t, err)
	assert.Equal(t, []float64{1}, north)
	assert.Equal(t, []float64{2}, south)
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reuse.db")

	s, err := Open("sqlite3", path)
	require.NoError(t, err)
	require.NoError(t, s.SaveWeights("learned", []float64{7}))
	require.NoError(t, s.Close())

	s, err = Open("sqlite3", path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.LoadWeights("learned")
	require.NoError(t, err)
	assert.Equal(t, []float64{7}, got)
}
