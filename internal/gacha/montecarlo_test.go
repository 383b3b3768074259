package gacha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalcStats(t *testing.T) {
	s := calcStats([]int{1, 2, 3, 4})
	assert.InDelta(t, 2.5, s.Mean, 1e-12)
	assert.InDelta(t, 1.25, s.Var, 1e-12)
	assert.InDelta(t, 2.5, s.P50, 1e-12)

	assert.Equal(t, Stats{}, calcStats(nil))

	one := calcStats([]int{7})
	assert.Equal(t, 7.0, one.Mean)
	assert.Equal(t, 7.0, one.P99)
	assert.Equal(t, 0.0, one.StdDev)
}

func TestTrialsUntilItem(t *testing.T) {
	eng, err := NewEngine(weightedCfg(), NewSeededRNG(5))
	require.NoError(t, err)

	// geometric distribution, p=0.4: mean draws until first hit = 1/p = 2.5
	stats, err := eng.TrialsUntilItem("ItemA", 20000)
	require.NoError(t, err)
	assert.InDelta(t, 2.5, stats.Mean, 0.1)
	assert.GreaterOrEqual(t, stats.P50, 1.0)
	assert.GreaterOrEqual(t, stats.P99, stats.P90)
	assert.Len(t, stats.Samples, 20000)
}

func TestTrialsUntilItem_Guards(t *testing.T) {
	cfg := weightedCfg()
	cfg.Pools[0].Items = append(cfg.Pools[0].Items, Item{Name: "Dud", Weight: 0})
	eng, err := NewEngine(cfg, NewSeededRNG(5))
	require.NoError(t, err)

	_, err = eng.TrialsUntilItem("Dud", 10)
	assert.Error(t, err) // zero rate would never terminate

	_, err = eng.TrialsUntilItem("Unknown", 10)
	assert.ErrorIs(t, err, ErrItemNotFound)

	stats, err := eng.TrialsUntilItem("ItemA", 0)
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats)
}

func TestSimulateFrequencies_Empty(t *testing.T) {
	eng, err := NewEngine(weightedCfg(), NewSeededRNG(5))
	require.NoError(t, err)

	rep := eng.SimulateFrequencies(0)
	assert.Equal(t, 0, rep.Draws)
	assert.Equal(t, 0.0, rep.Frequency("ItemA"))
}
