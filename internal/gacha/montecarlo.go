package gacha

import (
	"fmt"
	"math"
	"sort"
)

// Stats summarizes simulation results.
type Stats struct {
	Mean   float64
	Var    float64
	StdDev float64
	P50    float64
	P90    float64
	P99    float64
	// Optional: raw samples if caller needs histograms/exports
	Samples []int
}

// FrequencyReport holds observed draw counts over one simulation run.
type FrequencyReport struct {
	Draws  int
	Counts map[string]int
}

// Frequency returns the observed relative frequency of an item.
func (r FrequencyReport) Frequency(name string) float64 {
	if r.Draws <= 0 {
		return 0
	}
	return float64(r.Counts[name]) / float64(r.Draws)
}

// SimulateFrequencies performs draws rolls and tallies how often each item
// came up. With a seeded RandomSource the run is reproducible.
func (e *Engine) SimulateFrequencies(draws int) FrequencyReport {
	rep := FrequencyReport{Draws: draws, Counts: make(map[string]int)}
	for i := 0; i < draws; i++ {
		rep.Counts[e.RollOne()]++
	}
	return rep
}

// TrialsUntilItem runs trials independent trials, each counting the draws
// needed until the named item first appears, and summarizes them. Items with
// zero effective drop rate are rejected up front since a trial would never
// terminate.
func (e *Engine) TrialsUntilItem(name string, trials int) (Stats, error) {
	p, err := e.EffectiveDropRate(name)
	if err != nil {
		return Stats{}, err
	}
	if p <= 0 {
		return Stats{}, fmt.Errorf("item %q can never drop", name)
	}
	if trials <= 0 {
		return Stats{}, nil
	}
	samples := make([]int, trials)
	for i := 0; i < trials; i++ {
		draws := 0
		for {
			draws++
			if e.RollOne() == name {
				break
			}
		}
		samples[i] = draws
	}
	return calcStats(samples), nil
}

// calcStats computes mean/variance/percentiles for integer samples.
func calcStats(xs []int) Stats {
	n := len(xs)
	if n == 0 {
		return Stats{}
	}
	var sum float64
	for _, v := range xs {
		sum += float64(v)
	}
	mean := sum / float64(n)

	// variance (population)
	var acc float64
	for _, v := range xs {
		d := float64(v) - mean
		acc += d * d
	}
	variance := acc / float64(n)

	// percentiles with linear interpolation
	cp := append([]int(nil), xs...)
	sort.Ints(cp)
	percentile := func(p float64) float64 {
		if p <= 0 || n == 1 {
			return float64(cp[0])
		}
		if p >= 1 {
			return float64(cp[n-1])
		}
		pos := p * float64(n-1)
		i := int(math.Floor(pos))
		f := pos - float64(i)
		if i+1 >= n {
			return float64(cp[i])
		}
		return float64(cp[i])*(1-f) + float64(cp[i+1])*f
	}

	return Stats{
		Mean:    mean,
		Var:     variance,
		StdDev:  math.Sqrt(variance),
		P50:     percentile(0.50),
		P90:     percentile(0.90),
		P99:     percentile(0.99),
		Samples: xs,
	}
}
