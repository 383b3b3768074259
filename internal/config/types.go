package config

import (
	"github.com/xtding233/gacha-rates/internal/gacha"
	"github.com/xtding233/gacha-rates/internal/pricing"
	"github.com/xtding233/gacha-rates/internal/token"
)

// RawBanner mirrors the YAML schema of one banner file.
type RawBanner struct {
	Version string      `yaml:"version"`
	Mode    string      `yaml:"mode"` // "weighted" | "flat"
	Tiers   []RawTier   `yaml:"tiers,omitempty"`
	Pools   []RawPool   `yaml:"pools"`
	Token   *RawToken   `yaml:"token,omitempty"`
	Catalog *RawCatalog `yaml:"catalog,omitempty"`
	Notes   string      `yaml:"notes,omitempty"`
}

type RawTier struct {
	Name string  `yaml:"name"`
	Rate float64 `yaml:"rate"`
}

type RawPool struct {
	Tier  string    `yaml:"tier"`
	Items []RawItem `yaml:"items"`
}

// RawItem carries a relative weight in weighted mode and an absolute
// probability in flat mode, exactly as the engine interprets it.
type RawItem struct {
	Name   string  `yaml:"name"`
	Weight float64 `yaml:"weight"`
	RateUp bool    `yaml:"rate_up,omitempty"`
}

// RawToken fields are pointers so a banner file can override a default file
// field by field.
type RawToken struct {
	Name       string `yaml:"name"`
	PerDraw    *int   `yaml:"per_draw"`
	PerTenDraw *int   `yaml:"per_ten_draw,omitempty"`
	PerNDraw   *int   `yaml:"per_n_draw,omitempty"`
	N          *int   `yaml:"n,omitempty"`
}

type RawCatalog struct {
	Currency string    `yaml:"currency"`
	TaxRate  float64   `yaml:"tax_rate,omitempty"`
	Packs    []RawPack `yaml:"packs"`
}

type RawPack struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Tokens      int    `yaml:"tokens"`
	BonusTokens int    `yaml:"bonus_tokens,omitempty"`
	FirstTimeX2 bool   `yaml:"first_time_x2,omitempty"`
	PriceCents  int    `yaml:"price_cents"`
}

// EngineConfig normalizes the raw schema into the engine's configuration.
// Deep probability invariants are the engine's job; call ValidateRaw first
// for schema-shape errors.
func (r RawBanner) EngineConfig() gacha.Config {
	cfg := gacha.Config{Mode: gacha.Mode(r.Mode)}
	for _, t := range r.Tiers {
		cfg.TierRates = append(cfg.TierRates, gacha.TierRate{Tier: t.Name, Rate: t.Rate})
	}
	for _, p := range r.Pools {
		pool := gacha.Pool{Tier: p.Tier}
		for _, it := range p.Items {
			pool.Items = append(pool.Items, gacha.Item{
				Name:   it.Name,
				Weight: it.Weight,
				RateUp: it.RateUp,
			})
		}
		cfg.Pools = append(cfg.Pools, pool)
	}
	return cfg
}

// DrawToken converts the token section, if present.
func (r RawBanner) DrawToken() (token.Token, bool) {
	if r.Token == nil {
		return token.Token{}, false
	}
	t := token.Token{Name: r.Token.Name}
	if r.Token.PerDraw != nil {
		t.PerDraw = *r.Token.PerDraw
	}
	if r.Token.PerTenDraw != nil {
		t.PerTenDraw = *r.Token.PerTenDraw
	}
	if r.Token.PerNDraw != nil {
		t.PerNDraw = *r.Token.PerNDraw
	}
	if r.Token.N != nil {
		t.N = *r.Token.N
	}
	return t, true
}

// PackCatalog converts the catalog section, if present.
func (r RawBanner) PackCatalog() (pricing.Catalog, bool) {
	if r.Catalog == nil {
		return pricing.Catalog{}, false
	}
	cat := pricing.Catalog{Currency: r.Catalog.Currency, TaxRate: r.Catalog.TaxRate}
	if r.Token != nil {
		cat.TokenName = r.Token.Name
	}
	for _, p := range r.Catalog.Packs {
		cat.Packs = append(cat.Packs, pricing.Pack{
			ID:          p.ID,
			Name:        p.Name,
			Tokens:      p.Tokens,
			BonusTokens: p.BonusTokens,
			FirstTimeX2: p.FirstTimeX2,
			PriceCents:  p.PriceCents,
		})
	}
	return cat, true
}
