package gacha

import (
	"fmt"
	"math"
)

// Validation tolerances. Tier rates are authored as exact shares so they get
// the tight epsilon; flat-mode probability lists are often transcribed from
// published rate sheets, so they get a looser one.
const (
	tierSumEpsilon = 1e-10
	flatSumEpsilon = 1e-6
)

// buildWeighted checks every weighted-mode invariant and freezes the scaled
// snapshot. Checks run rule by rule so the returned sentinel names the first
// rule that failed.
func (e *Engine) buildWeighted(cfg Config) error {
	if len(cfg.Pools) == 0 {
		return fmt.Errorf("%w: no pools configured", ErrConfig)
	}

	// tier-rate table: each rate in [0,1], names unique, total within epsilon of 1
	rates := make(map[string]int64, len(cfg.TierRates))
	var rateSum float64
	for _, tr := range cfg.TierRates {
		if tr.Rate < 0 || tr.Rate > 1 || math.IsNaN(tr.Rate) {
			return fmt.Errorf("%w: tier %q has rate %v", ErrInvalidTierRate, tr.Tier, tr.Rate)
		}
		if _, dup := rates[tr.Tier]; dup {
			return fmt.Errorf("%w: tier %q listed twice", ErrInvalidTierRate, tr.Tier)
		}
		scaled, err := scaleRate(tr.Rate)
		if err != nil {
			return fmt.Errorf("%w: tier %q rate %v", err, tr.Tier, tr.Rate)
		}
		rates[tr.Tier] = scaled
		rateSum += tr.Rate
	}
	if math.Abs(rateSum-1) > tierSumEpsilon {
		return fmt.Errorf("%w: rates sum to %v", ErrInvalidTierRate, rateSum)
	}

	poolByTier := make(map[string]int, len(cfg.Pools))
	for _, p := range cfg.Pools {
		scaledTier, ok := rates[p.Tier]
		if !ok {
			return fmt.Errorf("%w: pool references tier %q", ErrMissingTierRate, p.Tier)
		}
		if _, dup := poolByTier[p.Tier]; dup {
			return fmt.Errorf("%w: tier %q has more than one pool", ErrConfig, p.Tier)
		}
		sp, err := e.buildPool(p, p.Tier)
		if err != nil {
			return err
		}
		sp.rawRate = rateFor(cfg.TierRates, p.Tier)
		sp.scaledRate = scaledTier
		poolByTier[p.Tier] = len(e.pools)
		e.pools = append(e.pools, sp)
	}

	// sampling walks tiers in table order, pools looked up by tier name
	for _, tr := range cfg.TierRates {
		idx, ok := poolByTier[tr.Tier]
		if !ok {
			idx = -1
		}
		e.tierWalk = append(e.tierWalk, tierEntry{
			tier:       tr.Tier,
			scaledRate: rates[tr.Tier],
			poolIdx:    idx,
		})
	}
	return nil
}

// buildFlat checks flat-mode invariants: every pool well-formed, and the
// absolute probabilities across all pools summing to 1.
func (e *Engine) buildFlat(cfg Config) error {
	if len(cfg.Pools) == 0 {
		return fmt.Errorf("%w: no pools configured", ErrConfig)
	}
	var probSum float64
	for _, p := range cfg.Pools {
		sp, err := e.buildPool(p, p.Tier)
		if err != nil {
			return err
		}
		for _, it := range sp.items {
			probSum += it.rawWeight
		}
		e.pools = append(e.pools, sp)
	}
	if math.Abs(probSum-1) > flatSumEpsilon {
		return fmt.Errorf("%w: total is %v", ErrProbSum, probSum)
	}
	return nil
}

// buildPool validates one pool's items and scales their weights. Shared by
// both modes; tier labels the pool in error messages only.
func (e *Engine) buildPool(p Pool, tier string) (scaledPool, error) {
	if len(p.Items) == 0 {
		return scaledPool{}, fmt.Errorf("%w: tier %q", ErrEmptyPool, tier)
	}
	sp := scaledPool{tier: tier, items: make([]scaledItem, 0, len(p.Items))}
	positive := false
	for _, it := range p.Items {
		if it.Weight < 0 || math.IsNaN(it.Weight) {
			return scaledPool{}, fmt.Errorf("%w: item %q has weight %v", ErrNegativeWeight, it.Name, it.Weight)
		}
		if _, dup := e.index[it.Name]; dup {
			return scaledPool{}, fmt.Errorf("%w: %q", ErrDuplicateItem, it.Name)
		}
		scaled, err := scaleRate(it.Weight)
		if err != nil {
			return scaledPool{}, fmt.Errorf("%w: item %q weight %v", err, it.Name, it.Weight)
		}
		e.index[it.Name] = itemRef{pool: len(e.pools), item: len(sp.items)}
		sp.items = append(sp.items, scaledItem{
			name:         it.Name,
			rawWeight:    it.Weight,
			scaledWeight: scaled,
			rateUp:       it.RateUp,
		})
		sp.totalWeight += scaled
		if scaled > 0 {
			positive = true
		}
	}
	if sp.totalWeight <= 0 || !positive {
		return scaledPool{}, fmt.Errorf("%w: tier %q", ErrZeroWeightPool, tier)
	}
	return sp, nil
}

func rateFor(rates []TierRate, tier string) float64 {
	for _, tr := range rates {
		if tr.Tier == tier {
			return tr.Rate
		}
	}
	return 0
}
