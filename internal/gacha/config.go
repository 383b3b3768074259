package gacha

// Mode selects how item numbers are interpreted.
type Mode string

const (
	// ModeWeighted: items carry relative weights inside a tier pool; the
	// tier's base rate is split across the pool proportionally.
	ModeWeighted Mode = "weighted"
	// ModeFlat: each item carries its absolute probability directly, no
	// tier multiplication. All probabilities across all pools must sum to 1.
	ModeFlat Mode = "flat"
)

// FlatLabel is the tier label reported for flat-mode items, which are not
// tier-scoped.
const FlatLabel = "flat"

// Item is one drawable entry.
// In weighted mode Weight is a relative, non-negative share of its pool;
// in flat mode it is the item's absolute probability. Weight 0 means the
// item is configured but can never be drawn. RateUp is informational only
// and has no effect on probabilities.
type Item struct {
	Name   string
	Weight float64
	RateUp bool
}

// Pool is the ordered set of items belonging to one tier. In flat mode the
// Tier name is ignored (kept only for labeling the source config).
type Pool struct {
	Tier  string
	Items []Item
}

// TierRate binds a tier name to its base draw probability. The slice order
// in Config is the walk order during sampling, so it must be stable.
type TierRate struct {
	Tier string
	Rate float64
}

// Config is the full input to NewEngine. TierRates is required in weighted
// mode and ignored in flat mode. Item names must be unique across every
// pool: queries address items by name alone.
type Config struct {
	Mode      Mode
	TierRates []TierRate
	Pools     []Pool
}
