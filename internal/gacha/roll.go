package gacha

// Roll performs count independent draws and returns the drawn item names.
// count <= 0 yields an empty slice.
func (e *Engine) Roll(count int) []string {
	if count <= 0 {
		return []string{}
	}
	out := make([]string, count)
	for i := range out {
		out[i] = e.RollOne()
	}
	return out
}

// RollOne performs a single draw.
func (e *Engine) RollOne() string {
	if e.mode == ModeFlat {
		return e.drawFlat()
	}
	return e.drawWeighted()
}

// drawWeighted selects a tier by walking the rate table in configured order
// with a scaled-integer cumulative sum, then an item inside the tier's pool
// the same way over positive weights.
func (e *Engine) drawWeighted() string {
	r := e.rng.Int64N(RateScale)
	poolIdx := -1
	var cum int64
	for _, t := range e.tierWalk {
		cum += t.scaledRate
		if r < cum {
			poolIdx = t.poolIdx
			break
		}
	}
	if poolIdx < 0 {
		// rounding shortfall, or a tier configured without a pool: fall back
		// to the first tier that has one. "First" here is a policy choice;
		// any deterministic pick would do.
		poolIdx = e.firstPoolIdx()
	}
	return e.drawFromPool(&e.pools[poolIdx])
}

func (e *Engine) drawFromPool(p *scaledPool) string {
	r := e.rng.Int64N(p.totalWeight)
	var cum int64
	for i := range p.items {
		it := &p.items[i]
		if it.scaledWeight <= 0 {
			continue
		}
		cum += it.scaledWeight
		if r < cum {
			return it.name
		}
	}
	return firstPositive(p)
}

// drawFlat walks every item across all pools in declared order, accumulating
// absolute probabilities against one uniform real.
func (e *Engine) drawFlat() string {
	x := e.rng.Float64()
	var cum float64
	for pi := range e.pools {
		p := &e.pools[pi]
		for i := range p.items {
			it := &p.items[i]
			cum += it.rawWeight
			if x < cum {
				return it.name
			}
		}
	}
	// shortfall: probabilities summed just under 1 and x landed past them
	for pi := range e.pools {
		if name := firstPositive(&e.pools[pi]); name != "" {
			return name
		}
	}
	return "" // unreachable in a validated engine
}

func (e *Engine) firstPoolIdx() int {
	for _, t := range e.tierWalk {
		if t.poolIdx >= 0 {
			return t.poolIdx
		}
	}
	return 0
}

func firstPositive(p *scaledPool) string {
	for i := range p.items {
		if p.items[i].scaledWeight > 0 {
			return p.items[i].name
		}
	}
	return ""
}
