package pricing

import (
	"math"
	"sort"
)

// Pack models a purchasable SKU in the store.
type Pack struct {
	ID          string // SKU id, e.g. "6480"
	Name        string // display name
	Tokens      int    // base tokens granted
	BonusTokens int    // permanent extra tokens (non-first-time)
	FirstTimeX2 bool   // first-time purchase doubles base Tokens (not BonusTokens)
	PriceCents  int    // price in minor units
}

// Catalog is a regional product catalog and tax info. If prices are
// tax-inclusive, set TaxRate to 0 and pass the inclusive price as PriceCents.
type Catalog struct {
	TokenName string  // e.g. "Stellar Jade"
	Currency  string  // ISO code, e.g. "CAD"
	TaxRate   float64 // applied on the subtotal, e.g. 0.13
	Packs     []Pack
}

// FirstTimeState maps pack ID to whether the first-time x2 is still unused.
type FirstTimeState map[string]bool

// Plan summarizes a purchase plan.
type Plan struct {
	Purchases   []Purchase
	SubCents    int
	TaxCents    int
	TotalCents  int
	TotalTokens int
	Currency    string
}

// Purchase is one line item in the plan.
type Purchase struct {
	PackID     string
	Name       string
	Qty        int
	UnitPrice  int // cents
	UnitTokens int // tokens per unit in this plan, x2/bonus applied
	Subtotal   int // cents
}

// variant is an "effective pack": a pack, or its one-shot first-time x2
// form. The x2 form may be bought at most once, which the planners respect
// by tracking it separately from the unbounded base form.
type variant struct {
	id, name   string
	tokens     int
	priceCents int
	oneShot    bool
}

// expandVariants lists the purchasable forms of every pack. The x2 variant
// applies the doubling to base Tokens only, never to BonusTokens.
func expandVariants(cat Catalog, first FirstTimeState) []variant {
	var vs []variant
	for _, p := range cat.Packs {
		if p.FirstTimeX2 && first != nil && first[p.ID] {
			vs = append(vs, variant{
				id:         p.ID + "#x2",
				name:       p.Name + " (x2)",
				tokens:     p.Tokens*2 + p.BonusTokens,
				priceCents: p.PriceCents,
				oneShot:    true,
			})
		}
		vs = append(vs, variant{
			id:         p.ID,
			name:       p.Name,
			tokens:     p.Tokens + p.BonusTokens,
			priceCents: p.PriceCents,
		})
	}
	return vs
}

// buildPlan aggregates chosen variant counts into a Plan with tax applied.
func buildPlan(cat Catalog, counts map[variant]int) Plan {
	plan := Plan{Currency: cat.Currency}
	for v, qty := range counts {
		sub := v.priceCents * qty
		plan.Purchases = append(plan.Purchases, Purchase{
			PackID:     v.id,
			Name:       v.name,
			Qty:        qty,
			UnitPrice:  v.priceCents,
			UnitTokens: v.tokens,
			Subtotal:   sub,
		})
		plan.SubCents += sub
		plan.TotalTokens += v.tokens * qty
	}
	// deterministic line order for display and tests
	sort.Slice(plan.Purchases, func(i, j int) bool {
		return plan.Purchases[i].PackID < plan.Purchases[j].PackID
	})
	plan.TaxCents, plan.TotalCents = applyTax(plan.SubCents, cat.TaxRate)
	return plan
}

// applyTax computes tax and total given a subtotal and a tax rate.
func applyTax(sub int, taxRate float64) (tax int, total int) {
	if taxRate <= 0 {
		return 0, sub
	}
	t := int(math.Round(float64(sub) * taxRate))
	return t, sub + t
}
