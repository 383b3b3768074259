package gacha

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightedCfg() Config {
	return Config{
		Mode: ModeWeighted,
		TierRates: []TierRate{
			{Tier: "common", Rate: 0.8},
			{Tier: "rare", Rate: 0.2},
		},
		Pools: []Pool{
			{Tier: "common", Items: []Item{
				{Name: "ItemA", Weight: 0.5},
				{Name: "ItemB", Weight: 0.5},
			}},
			{Tier: "rare", Items: []Item{
				{Name: "ItemC", Weight: 0.7},
				{Name: "ItemD", Weight: 0.3, RateUp: true},
			}},
		},
	}
}

func flatCfg() Config {
	return Config{
		Mode: ModeFlat,
		Pools: []Pool{
			{Items: []Item{
				{Name: "ItemX", Weight: 0.6},
				{Name: "ItemY", Weight: 0.4},
			}},
		},
	}
}

func TestNewEngine_ValidConfigs(t *testing.T) {
	eng, err := NewEngine(weightedCfg(), nil)
	require.NoError(t, err)
	assert.Equal(t, ModeWeighted, eng.Mode())

	eng, err = NewEngine(flatCfg(), nil)
	require.NoError(t, err)
	assert.Equal(t, ModeFlat, eng.Mode())
}

func TestNewEngine_MissingTierRate(t *testing.T) {
	cfg := weightedCfg()
	cfg.Pools = append(cfg.Pools, Pool{Tier: "legendary", Items: []Item{{Name: "ItemE", Weight: 1}}})
	_, err := NewEngine(cfg, nil)
	require.ErrorIs(t, err, ErrMissingTierRate)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNewEngine_InvalidTierRates(t *testing.T) {
	tests := []struct {
		name  string
		rates []TierRate
	}{
		{"sum below one", []TierRate{{Tier: "common", Rate: 0.8}, {Tier: "rare", Rate: 0.1}}},
		{"negative rate", []TierRate{{Tier: "common", Rate: -0.1}, {Tier: "rare", Rate: 1.1}}},
		{"rate above one", []TierRate{{Tier: "common", Rate: 1.2}, {Tier: "rare", Rate: -0.2}}},
		{"duplicate tier", []TierRate{{Tier: "common", Rate: 0.5}, {Tier: "common", Rate: 0.3}, {Tier: "rare", Rate: 0.2}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := weightedCfg()
			cfg.TierRates = tt.rates
			_, err := NewEngine(cfg, nil)
			assert.ErrorIs(t, err, ErrInvalidTierRate)
		})
	}
}

func TestNewEngine_TierSumEpsilon(t *testing.T) {
	// 1/3 three times sums to 1.0 well within 1e-10
	cfg := Config{
		Mode: ModeWeighted,
		TierRates: []TierRate{
			{Tier: "a", Rate: 1.0 / 3},
			{Tier: "b", Rate: 1.0 / 3},
			{Tier: "c", Rate: 1.0 / 3},
		},
		Pools: []Pool{
			{Tier: "a", Items: []Item{{Name: "A", Weight: 1}}},
			{Tier: "b", Items: []Item{{Name: "B", Weight: 1}}},
			{Tier: "c", Items: []Item{{Name: "C", Weight: 1}}},
		},
	}
	_, err := NewEngine(cfg, nil)
	assert.NoError(t, err)
}

func TestNewEngine_EmptyPool(t *testing.T) {
	cfg := weightedCfg()
	cfg.Pools[1].Items = nil
	_, err := NewEngine(cfg, nil)
	assert.ErrorIs(t, err, ErrEmptyPool)
}

func TestNewEngine_NegativeWeight(t *testing.T) {
	cfg := weightedCfg()
	cfg.Pools[0].Items[0].Weight = -0.5
	_, err := NewEngine(cfg, nil)
	assert.ErrorIs(t, err, ErrNegativeWeight)

	cfg = flatCfg()
	cfg.Pools[0].Items[1].Weight = -0.4
	_, err = NewEngine(cfg, nil)
	assert.ErrorIs(t, err, ErrNegativeWeight)
}

func TestNewEngine_ZeroWeightPool(t *testing.T) {
	cfg := weightedCfg()
	cfg.Pools[1].Items[0].Weight = 0
	cfg.Pools[1].Items[1].Weight = 0
	_, err := NewEngine(cfg, nil)
	assert.ErrorIs(t, err, ErrZeroWeightPool)
}

func TestNewEngine_FlatProbSum(t *testing.T) {
	cfg := flatCfg()
	cfg.Pools[0].Items[1].Weight = 0.3 // sums to 0.9
	_, err := NewEngine(cfg, nil)
	require.ErrorIs(t, err, ErrProbSum)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNewEngine_ScaleOverflow(t *testing.T) {
	cfg := weightedCfg()
	cfg.Pools[0].Items[0].Weight = 1e308
	_, err := NewEngine(cfg, nil)
	assert.ErrorIs(t, err, ErrScaleOverflow)
}

func TestNewEngine_DuplicateItemName(t *testing.T) {
	cfg := weightedCfg()
	cfg.Pools[1].Items[0].Name = "ItemA" // already in the common pool
	_, err := NewEngine(cfg, nil)
	assert.ErrorIs(t, err, ErrDuplicateItem)
}

func TestNewEngine_UnknownMode(t *testing.T) {
	cfg := weightedCfg()
	cfg.Mode = "banana"
	_, err := NewEngine(cfg, nil)
	assert.ErrorIs(t, err, ErrConfig)
}

func TestNewEngine_NoPools(t *testing.T) {
	cfg := weightedCfg()
	cfg.Pools = nil
	_, err := NewEngine(cfg, nil)
	assert.ErrorIs(t, err, ErrConfig)
}
