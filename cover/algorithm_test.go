package cover_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vertexcover/core"
	"github.com/katalvlaran/vertexcover/cover"
)

func TestAlgorithm_CodesAndLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		[]cover.Algorithm{cover.Exact, cover.NaiveApprox, cover.GreedyLogNApprox, cover.Greedy2Approx},
		cover.Algorithms())
	require.Equal(t, []string{"exact", "naive", "greedy-log-n", "greedy-2"}, cover.Codes())

	labels := map[cover.Algorithm]string{
		cover.Exact:            "Exact",
		cover.NaiveApprox:      "Naive Approximation",
		cover.GreedyLogNApprox: "Greedy log(n) Approximation",
		cover.Greedy2Approx:    "Greedy 2-Approximation",
	}
	for a, want := range labels {
		assert.Equal(t, want, a.Label())
		assert.True(t, a.Valid())
	}
	assert.Equal(t, cover.Exact, cover.Algorithm(0), "zero value selects Exact")
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	for _, a := range cover.Algorithms() {
		got, err := cover.ParseAlgorithm(a.Code())
		require.NoError(t, err)
		require.Equal(t, a, got)
	}

	_, err := cover.ParseAlgorithm("greedy")
	require.ErrorIs(t, err, cover.ErrUnsupportedAlgorithm)
	_, err = cover.ParseAlgorithm("")
	require.ErrorIs(t, err, cover.ErrUnsupportedAlgorithm)
}

func TestAlgorithm_Invalid(t *testing.T) {
	t.Parallel()

	bad := cover.Algorithm(42)
	assert.False(t, bad.Valid())
	assert.Equal(t, "algorithm(42)", bad.Code())
	assert.True(t, math.IsNaN(bad.RatioBound(3)))

	_, err := bad.Solve(core.NewGraph())
	require.ErrorIs(t, err, cover.ErrUnsupportedAlgorithm)

	_, err = bad.MarshalText()
	require.ErrorIs(t, err, cover.ErrUnsupportedAlgorithm)
}

func TestAlgorithm_TextRoundTripInJSON(t *testing.T) {
	t.Parallel()

	type row struct {
		Algorithm cover.Algorithm `json:"algorithm"`
	}
	raw, err := json.Marshal(row{Algorithm: cover.GreedyLogNApprox})
	require.NoError(t, err)
	require.JSONEq(t, `{"algorithm":"greedy-log-n"}`, string(raw))

	var back row
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Equal(t, cover.GreedyLogNApprox, back.Algorithm)

	require.Error(t, json.Unmarshal([]byte(`{"algorithm":"fastest"}`), &back))
}

func TestAlgorithm_RatioBound(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, cover.Exact.RatioBound(10))
	assert.Equal(t, 2.0, cover.Greedy2Approx.RatioBound(10))
	assert.True(t, math.IsInf(cover.NaiveApprox.RatioBound(10), 1))
	assert.InDelta(t, 1+0.5+1.0/3, cover.GreedyLogNApprox.RatioBound(3), 1e-12)
	assert.Equal(t, 1.0, cover.GreedyLogNApprox.RatioBound(0))
}
