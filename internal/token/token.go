package token

// Token defines how many currency units a draw costs. PerTenDraw and
// PerNDraw model the discounted multi-pull bundles stores usually sell;
// either may be 0, meaning no bundle of that size exists.
type Token struct {
	Name       string // e.g. "Stellar Jade", "Star Stone"
	PerDraw    int    // tokens per single draw, e.g. 160, 250
	PerTenDraw int    // optional; cost of a ten-pull bundle
	PerNDraw   int    // optional; cost of an N-pull bundle
	N          int    // bundle size for PerNDraw; must be > 1 to apply
}

// TokensForDraws returns how many tokens are required for n draws, buying
// as many discounted bundles as fit and singles for the remainder.
func (t Token) TokensForDraws(n int) int {
	if n <= 0 {
		return 0
	}
	if t.PerTenDraw > 0 && n >= 10 && t.N <= 1 {
		tens := n / 10
		rest := n % 10
		return tens*t.PerTenDraw + rest*t.PerDraw
	}
	if t.PerNDraw > 0 && t.N > 1 && n >= t.N {
		bundles := n / t.N
		rest := n % t.N
		return bundles*t.PerNDraw + rest*t.PerDraw
	}
	return n * t.PerDraw
}

// DrawsForTokens returns how many draws a balance affords, preferring the
// bundle when it is cheaper per draw.
func (t Token) DrawsForTokens(balance int) int {
	if balance <= 0 || t.PerDraw <= 0 {
		return 0
	}
	bundleSize, bundleCost := 0, 0
	switch {
	case t.PerTenDraw > 0 && t.N <= 1:
		bundleSize, bundleCost = 10, t.PerTenDraw
	case t.PerNDraw > 0 && t.N > 1:
		bundleSize, bundleCost = t.N, t.PerNDraw
	}
	if bundleCost > 0 && bundleCost < bundleSize*t.PerDraw {
		bundles := balance / bundleCost
		rest := balance % bundleCost
		return bundles*bundleSize + rest/t.PerDraw
	}
	return balance / t.PerDraw
}
