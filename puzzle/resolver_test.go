package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/farmstead/vmath"
)

func TestResolverCommitRequiresFreeZone(t *testing.T) {
	zones := NewZoneRegistry([]ZoneSpec{{ID: "mill", Position: vmath.V2(0, 0), Range: 2}})
	r := NewSnapResolver(zones)

	z, ok := r.Commit(Candidate{Entity: 1, Position: vmath.V2(0.5, 0)})
	require.True(t, ok)
	assert.Equal(t, "mill", z.ID)

	_, ok = r.Commit(Candidate{Entity: 2, Position: vmath.V2(0, 0)})
	assert.False(t, ok, "occupied zone rejects a second entity")
	got, _ := zones.Get("mill")
	assert.EqualValues(t, 1, got.Occupant)

	zones.Release("mill")
	_, ok = r.Commit(Candidate{Entity: 2, Position: vmath.V2(0, 0)})
	assert.True(t, ok)
}

func TestResolverPrerequisite(t *testing.T) {
	zones := NewZoneRegistry([]ZoneSpec{
		{ID: "pot", Position: vmath.V2(0, 0), Range: 1},
		{ID: "fire", Position: vmath.V2(10, 0), Range: 1, Requires: "pot"},
	})
	r := NewSnapResolver(zones)

	_, ok := r.Commit(Candidate{Entity: 1, Position: vmath.V2(10, 0)})
	assert.False(t, ok)

	require.True(t, zones.Occupy("pot", 2))
	z, ok := r.Commit(Candidate{Entity: 1, Position: vmath.V2(10, 0)})
	require.True(t, ok)
	assert.Equal(t, "fire", z.ID)
}

func TestResolverRange(t *testing.T) {
	zones := NewZoneRegistry([]ZoneSpec{{ID: "a", Position: vmath.V2(0, 0), Range: 2}})
	r := NewSnapResolver(zones)

	_, ok := r.Preview(Candidate{Entity: 1, Position: vmath.V2(2, 0)})
	assert.True(t, ok, "range boundary is inclusive")
	_, ok = r.Preview(Candidate{Entity: 1, Position: vmath.V2(2.01, 0)})
	assert.False(t, ok)
}

func TestResolverNearestWins(t *testing.T) {
	zones := NewZoneRegistry([]ZoneSpec{
		{ID: "far", Position: vmath.V2(-1.5, 0), Range: 3},
		{ID: "near", Position: vmath.V2(1, 0), Range: 3},
	})
	r := NewSnapResolver(zones)
	z, ok := r.Preview(Candidate{Entity: 1, Position: vmath.V2(0, 0)})
	require.True(t, ok)
	assert.Equal(t, "near", z.ID)
}

func TestResolverTieBreakDeterministic(t *testing.T) {
	left := ZoneSpec{ID: "left", Position: vmath.V2(-1, 0), Range: 2}
	right := ZoneSpec{ID: "right", Position: vmath.V2(1, 0), Range: 2}
	c := Candidate{Entity: 1, Position: vmath.V2(0, 0)}

	for range 50 {
		z, ok := NewSnapResolver(NewZoneRegistry([]ZoneSpec{left, right})).Preview(c)
		require.True(t, ok)
		assert.Equal(t, "left", z.ID)
	}
	z, ok := NewSnapResolver(NewZoneRegistry([]ZoneSpec{right, left})).Preview(c)
	require.True(t, ok)
	assert.Equal(t, "right", z.ID, "registry order breaks equal distances")
}

func TestResolverPreviewMatchesCommit(t *testing.T) {
	zones := NewZoneRegistry([]ZoneSpec{
		{ID: "a", Position: vmath.V2(0, 0), Range: 5},
		{ID: "b", Position: vmath.V2(3, 0), Range: 5},
	})
	r := NewSnapResolver(zones)
	c := Candidate{Entity: 7, Position: vmath.V2(2, 0)}

	preview, ok := r.Preview(c)
	require.True(t, ok)
	assert.False(t, preview.Occupied(), "preview never mutates")

	committed, ok := r.Commit(c)
	require.True(t, ok)
	assert.Equal(t, preview.ID, committed.ID)
}

func TestResolverFilters(t *testing.T) {
	zones := NewZoneRegistry([]ZoneSpec{
		{ID: "cow", Position: vmath.V2(0, 0), Range: 2, Accepts: []string{"bucket"}},
		{ID: "oven", Position: vmath.V2(5, 0), Range: 2, MinStage: 2},
	})
	r := NewSnapResolver(zones)

	_, ok := r.Preview(Candidate{Entity: 1, Template: "dough", Position: vmath.V2(0, 0)})
	assert.False(t, ok)
	_, ok = r.Preview(Candidate{Entity: 1, Template: "bucket", Position: vmath.V2(0, 0)})
	assert.True(t, ok)

	_, ok = r.Preview(Candidate{Entity: 1, Template: "dough", Stage: 1, Position: vmath.V2(5, 0)})
	assert.False(t, ok)
	_, ok = r.Preview(Candidate{Entity: 1, Template: "dough", Stage: 2, Position: vmath.V2(5, 0)})
	assert.True(t, ok)
}

func TestZoneRegistryOccupancy(t *testing.T) {
	zones := NewZoneRegistry([]ZoneSpec{{ID: "a"}, {ID: "b"}})

	assert.True(t, zones.Occupy("a", 1))
	assert.True(t, zones.Occupy("a", 1), "re-occupy by the holder is idempotent")
	assert.False(t, zones.Occupy("a", 2))
	assert.False(t, zones.Occupy("missing", 1))
	assert.Equal(t, 1, zones.OccupiedCount())

	zones.ReleaseAll()
	assert.Zero(t, zones.OccupiedCount())
}
