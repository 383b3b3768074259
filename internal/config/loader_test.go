package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xtding233/gacha-rates/internal/gacha"
)

const defaultYAML = `
version: "1"
mode: weighted
token:
  name: Star Stone
  per_draw: 160
  per_ten_draw: 1500
`

const eventYAML = `
version: "2"
tiers:
  - name: common
    rate: 0.8
  - name: rare
    rate: 0.2
pools:
  - tier: common
    items:
      - name: ItemA
        weight: 0.5
      - name: ItemB
        weight: 0.5
  - tier: rare
    items:
      - name: ItemC
        weight: 0.7
      - name: ItemD
        weight: 0.3
        rate_up: true
token:
  per_draw: 180
`

// standaloneYAML is eventYAML plus the mode the defaults file would supply;
// LoadFile performs no defaults merge, so its fixture must be complete.
const standaloneYAML = "mode: weighted\n" + eventYAML

func writeBanners(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "banners"), 0o755))
	for name, body := range files {
		path := filepath.Join(dir, "banners", name+".yaml")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return dir
}

func TestLoader_MergesDefaultIntoBanner(t *testing.T) {
	dir := writeBanners(t, map[string]string{
		"default": defaultYAML,
		"event":   eventYAML,
	})

	raw, err := NewLoader(dir).Load("event")
	require.NoError(t, err)

	assert.Equal(t, "2", raw.Version) // banner overrides
	assert.Equal(t, "weighted", raw.Mode)
	require.Len(t, raw.Pools, 2)

	tok, ok := raw.DrawToken()
	require.True(t, ok)
	assert.Equal(t, "Star Stone", tok.Name) // from default
	assert.Equal(t, 180, tok.PerDraw)       // overridden per field
	assert.Equal(t, 1500, tok.PerTenDraw)   // from default
}

func TestLoader_MissingBanner(t *testing.T) {
	dir := writeBanners(t, map[string]string{"default": defaultYAML})
	_, err := NewLoader(dir).Load("nope")
	assert.Error(t, err)
}

func TestLoader_CacheAndInvalidate(t *testing.T) {
	dir := writeBanners(t, map[string]string{
		"default": defaultYAML,
		"event":   eventYAML,
	})
	l := NewLoader(dir)

	first, err := l.Load("event")
	require.NoError(t, err)

	// rewrite on disk; the cached copy must still be served
	path := filepath.Join(dir, "banners", "event.yaml")
	rewritten := eventYAML + "\nnotes: changed\n"
	require.NoError(t, os.WriteFile(path, []byte(rewritten), 0o644))

	cached, err := l.Load("event")
	require.NoError(t, err)
	assert.Equal(t, first.Notes, cached.Notes)

	l.Invalidate()
	fresh, err := l.Load("event")
	require.NoError(t, err)
	assert.Equal(t, "changed", fresh.Notes)
}

func TestLoadFile_BuildsEngine(t *testing.T) {
	dir := writeBanners(t, map[string]string{"event": standaloneYAML})

	raw, err := LoadFile(filepath.Join(dir, "banners", "event.yaml"))
	require.NoError(t, err)

	eng, err := gacha.NewEngine(raw.EngineConfig(), gacha.NewSeededRNG(1))
	require.NoError(t, err)

	r, err := eng.EffectiveDropRate("ItemD")
	require.NoError(t, err)
	assert.InDelta(t, 0.06, r, 1e-12)
	assert.Equal(t, []string{"ItemD"}, eng.RateUpItems())
}

func TestLoadFile_FlatMode(t *testing.T) {
	const flatYAML = `
mode: flat
pools:
  - items:
      - name: ItemX
        weight: 0.6
      - name: ItemY
        weight: 0.4
`
	dir := t.TempDir()
	path := filepath.Join(dir, "flat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(flatYAML), 0o644))

	raw, err := LoadFile(path)
	require.NoError(t, err)

	eng, err := gacha.NewEngine(raw.EngineConfig(), nil)
	require.NoError(t, err)

	r, err := eng.EffectiveDropRate("ItemX")
	require.NoError(t, err)
	assert.Equal(t, 0.6, r)
}
