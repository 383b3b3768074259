package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokensForDraws_SinglesOnly(t *testing.T) {
	tok := Token{Name: "Jade", PerDraw: 160}
	assert.Equal(t, 0, tok.TokensForDraws(0))
	assert.Equal(t, 0, tok.TokensForDraws(-5))
	assert.Equal(t, 160, tok.TokensForDraws(1))
	assert.Equal(t, 1440, tok.TokensForDraws(9))
}

func TestTokensForDraws_TenPullBundle(t *testing.T) {
	tok := Token{Name: "Jade", PerDraw: 160, PerTenDraw: 1500}
	assert.Equal(t, 1440, tok.TokensForDraws(9)) // below bundle size, singles
	assert.Equal(t, 1500, tok.TokensForDraws(10))
	assert.Equal(t, 2*1500+5*160, tok.TokensForDraws(25))
}

func TestTokensForDraws_NPullBundle(t *testing.T) {
	tok := Token{Name: "Stone", PerDraw: 160, PerNDraw: 700, N: 5}
	assert.Equal(t, 640, tok.TokensForDraws(4))
	assert.Equal(t, 700, tok.TokensForDraws(5))
	assert.Equal(t, 2*700+2*160, tok.TokensForDraws(12))
}

func TestDrawsForTokens(t *testing.T) {
	tok := Token{Name: "Jade", PerDraw: 160, PerTenDraw: 1500}
	assert.Equal(t, 0, tok.DrawsForTokens(0))
	assert.Equal(t, 0, tok.DrawsForTokens(159))
	assert.Equal(t, 1, tok.DrawsForTokens(160))
	// 1500 buys a ten-pull, cheaper than 10 singles
	assert.Equal(t, 10, tok.DrawsForTokens(1500))
	assert.Equal(t, 12, tok.DrawsForTokens(1500+2*160))

	// bundle more expensive than singles: ignored
	bad := Token{Name: "Jade", PerDraw: 100, PerTenDraw: 2000}
	assert.Equal(t, 15, bad.DrawsForTokens(1500))
}

func TestTokensDrawsRoundTrip(t *testing.T) {
	tok := Token{Name: "Jade", PerDraw: 160, PerTenDraw: 1500}
	for _, n := range []int{1, 7, 10, 23, 90} {
		cost := tok.TokensForDraws(n)
		assert.GreaterOrEqual(t, tok.DrawsForTokens(cost), n, "n=%d", n)
	}
}
