package config

import (
	"fmt"
	"strings"
)

// ValidateRaw checks schema-shape constraints of a RawBanner. Probability
// invariants (tier sums, pool weights) are enforced again, exactly, by
// gacha.NewEngine; this layer catches authoring mistakes with field paths.
func ValidateRaw(raw RawBanner) error {
	var errs []string

	switch raw.Mode {
	case "weighted":
		if len(raw.Tiers) == 0 {
			errs = append(errs, "tiers is required for mode=weighted")
		}
	case "flat":
		if len(raw.Tiers) > 0 {
			errs = append(errs, "tiers must be empty for mode=flat")
		}
	default:
		errs = append(errs, "mode must be one of: weighted, flat")
	}

	for i, t := range raw.Tiers {
		if t.Name == "" {
			errs = append(errs, fmt.Sprintf("tiers[%d].name is required", i))
		}
		if t.Rate < 0 || t.Rate > 1 {
			errs = append(errs, fmt.Sprintf("tiers[%d].rate must be in [0,1]", i))
		}
	}

	if len(raw.Pools) == 0 {
		errs = append(errs, "pools is required")
	}
	for i, p := range raw.Pools {
		if raw.Mode == "weighted" && p.Tier == "" {
			errs = append(errs, fmt.Sprintf("pools[%d].tier is required", i))
		}
		if len(p.Items) == 0 {
			errs = append(errs, fmt.Sprintf("pools[%d].items is required", i))
		}
		for j, it := range p.Items {
			if it.Name == "" {
				errs = append(errs, fmt.Sprintf("pools[%d].items[%d].name is required", i, j))
			}
			if it.Weight < 0 {
				errs = append(errs, fmt.Sprintf("pools[%d].items[%d].weight must be >= 0", i, j))
			}
		}
	}

	if raw.Token != nil {
		if raw.Token.PerDraw == nil || *raw.Token.PerDraw <= 0 {
			errs = append(errs, "token.per_draw must be >= 1")
		}
		if raw.Token.PerTenDraw != nil && *raw.Token.PerTenDraw < 0 {
			errs = append(errs, "token.per_ten_draw must be >= 0")
		}
		if raw.Token.PerNDraw != nil && (raw.Token.N == nil || *raw.Token.N <= 1) {
			errs = append(errs, "token.n must be >= 2 when per_n_draw is set")
		}
	}

	if raw.Catalog != nil {
		if raw.Catalog.TaxRate < 0 {
			errs = append(errs, "catalog.tax_rate must be >= 0")
		}
		for i, p := range raw.Catalog.Packs {
			if p.ID == "" {
				errs = append(errs, fmt.Sprintf("catalog.packs[%d].id is required", i))
			}
			if p.Tokens <= 0 {
				errs = append(errs, fmt.Sprintf("catalog.packs[%d].tokens must be >= 1", i))
			}
			if p.PriceCents <= 0 {
				errs = append(errs, fmt.Sprintf("catalog.packs[%d].price_cents must be >= 1", i))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}
