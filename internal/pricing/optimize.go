package pricing

import (
	"math"

	"github.com/xtding233/gacha-rates/internal/token"
)

// MinCostAtLeastTokens finds the minimum-cost combination of packs granting
// at least targetTokens. Repeatable packs are an unbounded knapsack; the
// one-shot first-time x2 variants are enumerated as subsets on top, so each
// is bought at most once.
func MinCostAtLeastTokens(cat Catalog, targetTokens int, first FirstTimeState) Plan {
	if targetTokens <= 0 || len(cat.Packs) == 0 {
		return Plan{Currency: cat.Currency}
	}
	oneShots, repeat := splitVariants(expandVariants(cat, first))

	bestCost := math.MaxInt
	var bestCounts map[variant]int
	for mask := 0; mask < 1<<len(oneShots); mask++ {
		need := targetTokens
		cost := 0
		for i, v := range oneShots {
			if mask&(1<<i) != 0 {
				need -= v.tokens
				cost += v.priceCents
			}
		}
		if need < 0 {
			need = 0
		}
		fill, fillCost, ok := minCostUnbounded(repeat, need)
		if !ok || cost+fillCost >= bestCost {
			continue
		}
		bestCost = cost + fillCost
		bestCounts = make(map[variant]int, len(fill)+len(oneShots))
		for v, q := range fill {
			bestCounts[v] = q
		}
		for i, v := range oneShots {
			if mask&(1<<i) != 0 {
				bestCounts[v]++
			}
		}
	}
	if bestCounts == nil {
		return Plan{Currency: cat.Currency}
	}
	return buildPlan(cat, bestCounts)
}

// minCostUnbounded: min cost to reach at least `need` tokens with unbounded
// quantities. The table extends one max pack beyond the target so a cheap
// overshoot can win.
func minCostUnbounded(vs []variant, need int) (map[variant]int, int, bool) {
	if need <= 0 {
		return map[variant]int{}, 0, true
	}
	maxTok := 0
	for _, v := range vs {
		if v.tokens > maxTok {
			maxTok = v.tokens
		}
	}
	if maxTok == 0 {
		return nil, 0, false
	}
	limit := need + maxTok

	dp := make([]int, limit+1)   // min cost to reach exactly t tokens (clamped at limit)
	pick := make([]int, limit+1) // chosen variant index
	prev := make([]int, limit+1) // previous t
	for t := range dp {
		dp[t] = math.MaxInt
		pick[t] = -1
		prev[t] = -1
	}
	dp[0] = 0
	for t := 0; t <= limit; t++ {
		if dp[t] == math.MaxInt {
			continue
		}
		for i, v := range vs {
			if v.tokens <= 0 {
				continue
			}
			nt := t + v.tokens
			if nt > limit {
				nt = limit
			}
			if cost := dp[t] + v.priceCents; cost < dp[nt] {
				dp[nt] = cost
				pick[nt] = i
				prev[nt] = t
			}
		}
	}

	bestT, bestCost := -1, math.MaxInt
	for t := need; t <= limit; t++ {
		if dp[t] < bestCost {
			bestT, bestCost = t, dp[t]
		}
	}
	if bestT < 0 {
		return nil, 0, false
	}
	counts := map[variant]int{}
	for t := bestT; t > 0 && pick[t] != -1; t = prev[t] {
		counts[vs[pick[t]]]++
	}
	return counts, bestCost, true
}

// MaxTokensUnderBudget computes the maximum tokens purchasable within
// budgetCents, tax included. Pre-tax prices are handled by shrinking the
// effective budget by the tax rate before the DP runs.
func MaxTokensUnderBudget(cat Catalog, budgetCents int, first FirstTimeState) Plan {
	if budgetCents <= 0 || len(cat.Packs) == 0 {
		return Plan{Currency: cat.Currency}
	}
	effBudget := budgetCents
	if cat.TaxRate > 0 {
		effBudget = int(math.Floor(float64(budgetCents) / (1 + cat.TaxRate)))
	}
	oneShots, repeat := splitVariants(expandVariants(cat, first))

	bestTokens := -1
	var bestCounts map[variant]int
	for mask := 0; mask < 1<<len(oneShots); mask++ {
		tokens, cost := 0, 0
		for i, v := range oneShots {
			if mask&(1<<i) != 0 {
				tokens += v.tokens
				cost += v.priceCents
			}
		}
		if cost > effBudget {
			continue
		}
		fill, fillTokens := maxTokensUnbounded(repeat, effBudget-cost)
		if tokens+fillTokens <= bestTokens {
			continue
		}
		bestTokens = tokens + fillTokens
		bestCounts = make(map[variant]int, len(fill)+len(oneShots))
		for v, q := range fill {
			bestCounts[v] = q
		}
		for i, v := range oneShots {
			if mask&(1<<i) != 0 {
				bestCounts[v]++
			}
		}
	}
	if bestCounts == nil {
		return Plan{Currency: cat.Currency}
	}
	return buildPlan(cat, bestCounts)
}

// maxTokensUnbounded: classic unbounded knapsack on spend.
func maxTokensUnbounded(vs []variant, budget int) (map[variant]int, int) {
	if budget <= 0 {
		return map[variant]int{}, 0
	}
	dp := make([]int, budget+1)
	pick := make([]int, budget+1)
	for c := range pick {
		pick[c] = -1
	}
	for c := 0; c <= budget; c++ {
		for i, v := range vs {
			if v.priceCents <= 0 || c+v.priceCents > budget {
				continue
			}
			if val := dp[c] + v.tokens; val > dp[c+v.priceCents] {
				dp[c+v.priceCents] = val
				pick[c+v.priceCents] = i
			}
		}
	}
	bestC := 0
	for c := 0; c <= budget; c++ {
		if dp[c] > dp[bestC] {
			bestC = c
		}
	}
	counts := map[variant]int{}
	for c := bestC; c > 0 && pick[c] != -1; c -= vs[pick[c]].priceCents {
		counts[vs[pick[c]]]++
	}
	return counts, dp[bestC]
}

// MinCostForDraws prices a draw budget: token cost for `draws` pulls, then
// the cheapest pack combination granting that many tokens.
func MinCostForDraws(cat Catalog, tok token.Token, draws int, first FirstTimeState) Plan {
	return MinCostAtLeastTokens(cat, tok.TokensForDraws(draws), first)
}

func splitVariants(vs []variant) (oneShots, repeat []variant) {
	for _, v := range vs {
		if v.oneShot {
			oneShots = append(oneShots, v)
		} else {
			repeat = append(repeat, v)
		}
	}
	return oneShots, repeat
}
