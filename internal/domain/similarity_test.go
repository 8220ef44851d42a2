package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idSet(ids ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestJaccard(t *testing.T) {
	cases := []struct {
		name string
		a    map[string]struct{}
		b    map[string]struct{}
		want float64
	}{
		{
			name: "identical_sets",
			a:    idSet("r1", "r2"),
			b:    idSet("r1", "r2"),
			want: 1.0,
		},
		{
			name: "disjoint_sets",
			a:    idSet("r1"),
			b:    idSet("r2"),
			want: 0.0,
		},
		{
			name: "half_overlap",
			a:    idSet("r1", "r2"),
			b:    idSet("r2", "r3"),
			want: 1.0 / 3.0,
		},
		{
			name: "empty_set",
			a:    idSet(),
			b:    idSet("r1"),
			want: 0.0,
		},
		{
			name: "both_empty",
			a:    idSet(),
			b:    idSet(),
			want: 0.0,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Jaccard(tc.a, tc.b)
			assert.InDelta(t, tc.want, got, 0.0001)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}

func TestTopNeighbors(t *testing.T) {
	target := idSet("r1", "r2", "r3")
	others := map[string]map[string]struct{}{
		"close":    idSet("r1", "r2", "r3"),
		"partial":  idSet("r1", "r4"),
		"disjoint": idSet("r5"),
		"empty":    idSet(),
	}

	neighbors := TopNeighbors(target, others, 10)

	require.Len(t, neighbors, 2)
	assert.Equal(t, "close", neighbors[0].UserID)
	assert.InDelta(t, 1.0, neighbors[0].Similarity, 0.0001)
	assert.Equal(t, "partial", neighbors[1].UserID)
	assert.InDelta(t, 0.25, neighbors[1].Similarity, 0.0001)
}

func TestTopNeighbors_LimitAndTies(t *testing.T) {
	target := idSet("r1")
	others := map[string]map[string]struct{}{
		"b": idSet("r1"),
		"a": idSet("r1"),
		"c": idSet("r1"),
	}

	neighbors := TopNeighbors(target, others, 2)

	require.Len(t, neighbors, 2)
	// Equal similarity breaks ties by user id ascending.
	assert.Equal(t, "a", neighbors[0].UserID)
	assert.Equal(t, "b", neighbors[1].UserID)
}

func TestContentProfile(t *testing.T) {
	affinity := map[string]float64{
		"r1": 1.0,
		"r2": 0.5,
		"r3": -0.5, // negative affinity does not contribute
	}
	features := map[string]FeatureVector{
		"r1": {"category:soup": 2.0, "ingredient:leek": 1.0},
		"r2": {"category:soup": 2.0},
		"r3": {"category:cake": 2.0},
	}

	profile := ContentProfile(affinity, features)

	require.NotNil(t, profile)
	assert.InDelta(t, 2.0, profile["category:soup"], 0.0001)
	assert.InDelta(t, 1.0/1.5, profile["ingredient:leek"], 0.0001)
	assert.NotContains(t, profile, "category:cake")
}

func TestContentProfile_NoPositiveHistory(t *testing.T) {
	profile := ContentProfile(map[string]float64{"r1": -0.5}, map[string]FeatureVector{
		"r1": {"category:soup": 2.0},
	})
	assert.Nil(t, profile)
}
