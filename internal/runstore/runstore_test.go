package runstore_test

import (
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxfield/fluxgrid/internal/runstore"
	"github.com/voxfield/fluxgrid/match"
)

func openStore(t *testing.T) *runstore.Store {
	t.Helper()
	store, err := runstore.Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestStore_SaveGetRoundTrip(t *testing.T) {
	store := openStore(t)

	res := match.Result{
		Success:     true,
		Message:     "converged (FunctionConvergence)",
		TargetFlux:  90,
		FinalFlux:   90.0000001,
		Params:      map[string]float64{"value": 2.5, "offset": -1},
		Objective:   1e-12,
		Evaluations: 120,
		Iterations:  60,
	}
	id, err := store.Save("ring-uniform", res)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Equal(t, id, got.ID)
	assert.Equal(t, "ring-uniform", got.Scenario)
	assert.Equal(t, res, got.Result) // floats and params survive bit-exact
	assert.WithinDuration(t, time.Now().UTC(), got.CreatedAt, time.Minute)
}

func TestStore_NaNAndInfSurvive(t *testing.T) {
	store := openStore(t)

	res := match.Result{
		Success:    false,
		Message:    "no feasible candidate: every evaluation failed",
		TargetFlux: 4,
		FinalFlux:  math.NaN(),
		Params:     map[string]float64{"value": 1},
		Objective:  math.Inf(1),
	}
	id, err := store.Save("broken", res)
	require.NoError(t, err)

	got, err := store.Get(id)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(got.Result.FinalFlux))
	assert.True(t, math.IsInf(got.Result.Objective, 1))
	assert.Equal(t, 4.0, got.Result.TargetFlux)
}

func TestStore_ListNewestFirst(t *testing.T) {
	store := openStore(t)

	var ids []string
	for _, scenario := range []string{"first", "second", "third"} {
		id, err := store.Save(scenario, match.Result{Params: map[string]float64{}})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	runs, err := store.List(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, ids[2], runs[0].ID)
	assert.Equal(t, "third", runs[0].Scenario)
	assert.Equal(t, ids[1], runs[1].ID)

	all, err := store.List(0) // default page
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestStore_GetMissing(t *testing.T) {
	store := openStore(t)

	_, err := store.Get("no-such-run")
	require.ErrorIs(t, err, runstore.ErrNotFound)
}

func TestStore_ClosedOps(t *testing.T) {
	store := openStore(t)
	require.NoError(t, store.Close())
	require.NoError(t, store.Close()) // idempotent

	_, err := store.Save("x", match.Result{})
	assert.ErrorIs(t, err, runstore.ErrClosed)
	_, err = store.Get("x")
	assert.ErrorIs(t, err, runstore.ErrClosed)
	_, err = store.List(1)
	assert.ErrorIs(t, err, runstore.ErrClosed)
}

func TestOpen_BadPath(t *testing.T) {
	_, err := runstore.Open(t.TempDir()) // a directory, not a file
	require.Error(t, err)
}
