package gacha

import (
	"fmt"
	"math"
)

// ItemRate is one row of AllItemDropRates.
type ItemRate struct {
	Name     string
	DropRate float64
	Tier     string // FlatLabel in flat mode
}

// EffectiveDropRate returns the absolute probability of drawing the named
// item in a single draw.
//
// Weighted mode computes (weight / pool total) * tier rate in the scaled
// integer domain, memoizes the scaled result, and errors with
// ErrItemNotFound on unknown names. Flat mode returns the item's stored
// probability and, deliberately, 0 with no error for unknown names; callers
// depend on that asymmetry, so it is preserved rather than unified.
func (e *Engine) EffectiveDropRate(name string) (float64, error) {
	ref, ok := e.index[name]
	if e.mode == ModeFlat {
		if !ok {
			return 0, nil
		}
		return e.pools[ref.pool].items[ref.item].rawWeight, nil
	}
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrItemNotFound, name)
	}

	e.mu.RLock()
	cached, hit := e.rateCache[name]
	e.mu.RUnlock()
	if hit {
		return unscaleRate(cached), nil
	}

	pool := &e.pools[ref.pool]
	item := &pool.items[ref.item]
	var scaled int64
	if item.scaledWeight > 0 {
		// zero weights skip this entirely: probability 0, no divide
		scaled = item.scaledWeight * pool.scaledRate / pool.totalWeight
	}
	// a cache race recomputes the same deterministic value; last write wins
	e.mu.Lock()
	e.rateCache[name] = scaled
	e.mu.Unlock()
	return unscaleRate(scaled), nil
}

// TierBaseRate returns the configured base rate for a tier. Flat mode has no
// tiers and fails with ErrUnsupportedOperation.
func (e *Engine) TierBaseRate(tier string) (float64, error) {
	if e.mode == ModeFlat {
		return 0, fmt.Errorf("%w: tier base rates", ErrUnsupportedOperation)
	}
	for _, t := range e.tierWalk {
		if t.tier == tier {
			if t.poolIdx >= 0 {
				return e.pools[t.poolIdx].rawRate, nil
			}
			return unscaleRate(t.scaledRate), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrTierNotFound, tier)
}

// CumulativeProbability returns the chance of drawing the item at least once
// across rolls independent draws: 1 - (1-p)^rolls, clamped to [0,1].
func (e *Engine) CumulativeProbability(name string, rolls int) (float64, error) {
	p, err := e.EffectiveDropRate(name)
	if err != nil {
		return 0, err
	}
	if p <= 0 || rolls <= 0 {
		return 0, nil
	}
	if p >= 1 {
		return 1, nil
	}
	c := 1 - math.Pow(1-p, float64(rolls))
	// absorb floating-point overshoot from Pow
	return math.Min(1, math.Max(0, c)), nil
}

// RollsForTargetProbability returns the minimum number of draws n such that
// the cumulative probability reaches target: ceil(ln(1-target) / ln(1-p)).
// The result is an exact small integer in a float64 so the unreachable case
// (p == 0, target > 0) can be reported as +Inf.
func (e *Engine) RollsForTargetProbability(name string, target float64) (float64, error) {
	p, err := e.EffectiveDropRate(name)
	if err != nil {
		return 0, err
	}
	switch {
	case target <= 0:
		return 0, nil
	case target >= 1:
		return 1, nil
	case p <= 0:
		return math.Inf(1), nil
	case p >= 1:
		return 1, nil
	}
	return math.Ceil(math.Log(1-target) / math.Log(1-p)), nil
}

// RateUpItems lists the names flagged rate-up, in pool-then-item declared
// order. The flag is informational only; it never changes probabilities.
func (e *Engine) RateUpItems() []string {
	var names []string
	for _, p := range e.pools {
		for _, it := range p.items {
			if it.rateUp {
				names = append(names, it.name)
			}
		}
	}
	return names
}

// AllItemDropRates reports one row per configured item, zero-weight ones
// included, in declared order.
func (e *Engine) AllItemDropRates() ([]ItemRate, error) {
	var out []ItemRate
	for _, p := range e.pools {
		label := p.tier
		if e.mode == ModeFlat {
			label = FlatLabel
		}
		for _, it := range p.items {
			rate, err := e.EffectiveDropRate(it.name)
			if err != nil {
				return nil, err
			}
			out = append(out, ItemRate{Name: it.name, DropRate: rate, Tier: label})
		}
	}
	return out, nil
}
