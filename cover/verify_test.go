package cover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vertexcover/builder"
	"github.com/katalvlaran/vertexcover/cover"
)

func TestIsCoverAndUncovered(t *testing.T) {
	t.Parallel()

	g := graphOf(t, [2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "4"})

	assert.True(t, cover.IsCover(g, cover.Cover{"2", "3"}))
	assert.True(t, cover.IsCover(g, cover.Cover{"1", "3", "zz"}), "foreign nodes are ignored")
	assert.False(t, cover.IsCover(g, cover.Cover{"2"}))

	un := cover.Uncovered(g, cover.Cover{"2"})
	require.Len(t, un, 1)
	assert.Equal(t, "3", un[0].From)
	assert.Equal(t, "4", un[0].To)

	assert.Nil(t, cover.Uncovered(nil, nil))
	assert.True(t, cover.IsCover(isolated(t, "a"), cover.Cover{}))
}

func TestIsMinimal(t *testing.T) {
	t.Parallel()

	g := graphOf(t, [2]string{"1", "2"}, [2]string{"2", "3"}, [2]string{"3", "4"})

	assert.True(t, cover.IsMinimal(g, cover.Cover{"2", "3"}))
	assert.True(t, cover.IsMinimal(g, cover.Cover{"1", "3"}))
	assert.False(t, cover.IsMinimal(g, cover.Cover{"1", "2", "3"}), "1 is redundant")
	assert.False(t, cover.IsMinimal(g, cover.Cover{"2"}), "not a cover")
	assert.False(t, cover.IsMinimal(g, cover.Cover{"1", "3", "zz"}), "zz covers nothing")
}

func TestMaxDegreeAndHarmonic(t *testing.T) {
	t.Parallel()

	star, err := builder.BuildGraph(nil, nil, builder.Star(7))
	require.NoError(t, err)
	assert.Equal(t, 6, cover.MaxDegree(star))
	assert.Equal(t, 0, cover.MaxDegree(isolated(t, "a", "b")))
	assert.Equal(t, 0, cover.MaxDegree(nil))

	assert.Equal(t, 0.0, cover.Harmonic(0))
	assert.Equal(t, 1.0, cover.Harmonic(1))
	assert.InDelta(t, 2.283333333, cover.Harmonic(5), 1e-9)
}
