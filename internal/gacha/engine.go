package gacha

import (
	"fmt"
	"sync"
)

// Engine owns a validated, immutable configuration snapshot and answers
// every query and sampling call. Construction either fully succeeds or
// fully fails; nothing is mutated afterwards except the rate cache, which
// only grows and is safe for concurrent readers.
type Engine struct {
	mode Mode

	// pools in declared order; this is the order RateUpItems and
	// AllItemDropRates report in.
	pools []scaledPool
	// tierWalk in tier-rate-table order; this is the order sampling walks.
	// Weighted mode only.
	tierWalk []tierEntry
	index    map[string]itemRef

	rng RandomSource

	mu        sync.RWMutex
	rateCache map[string]int64 // item name -> scaled effective rate
}

type scaledPool struct {
	tier        string
	rawRate     float64 // configured tier base rate (weighted mode)
	scaledRate  int64
	items       []scaledItem
	totalWeight int64 // sum of scaled item weights
}

type scaledItem struct {
	name         string
	rawWeight    float64 // configured weight, or absolute probability in flat mode
	scaledWeight int64
	rateUp       bool
}

type tierEntry struct {
	tier       string
	scaledRate int64
	poolIdx    int // -1 if the tier has a rate but no pool
}

type itemRef struct {
	pool, item int
}

// NewEngine validates cfg and returns a ready engine. A nil rng selects the
// process-wide crypto-backed source; inject NewSeededRNG for reproducible
// sampling.
func NewEngine(cfg Config, rng RandomSource) (*Engine, error) {
	if rng == nil {
		rng = DefaultRNG()
	}
	e := &Engine{
		mode:      cfg.Mode,
		index:     make(map[string]itemRef),
		rng:       rng,
		rateCache: make(map[string]int64),
	}
	var err error
	switch cfg.Mode {
	case ModeWeighted:
		err = e.buildWeighted(cfg)
	case ModeFlat:
		err = e.buildFlat(cfg)
	default:
		err = fmt.Errorf("%w: unknown mode %q", ErrConfig, cfg.Mode)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Mode reports which configuration variant the engine was built from.
func (e *Engine) Mode() Mode { return e.mode }
