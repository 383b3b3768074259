package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// Paths helper for banner files under a base directory.
type Paths struct {
	BaseDir string // base directory, e.g. /opt/app/config
}

func (p Paths) DefaultPath() string {
	return filepath.Join(p.BaseDir, "banners", "default.yaml")
}
func (p Paths) BannerPath(banner string) string {
	return filepath.Join(p.BaseDir, "banners", banner+".yaml")
}

// Loader reads YAML banner configs and merges default → banner.
type Loader struct {
	paths Paths

	mu    sync.RWMutex
	cache map[string]RawBanner // key: banner name
}

// NewLoader creates a config loader with the given base directory.
func NewLoader(baseDir string) *Loader {
	return &Loader{
		paths: Paths{BaseDir: baseDir},
		cache: make(map[string]RawBanner),
	}
}

// Load reads banners/default.yaml (optional) and banners/<name>.yaml
// (required), merges them, validates the shape, and caches the result.
func (l *Loader) Load(banner string) (RawBanner, error) {
	l.mu.RLock()
	if raw, ok := l.cache[banner]; ok {
		l.mu.RUnlock()
		return raw, nil
	}
	l.mu.RUnlock()

	def, err := readYAML(l.paths.DefaultPath(), false)
	if err != nil {
		return RawBanner{}, fmt.Errorf("read default: %w", err)
	}
	raw, err := readYAML(l.paths.BannerPath(banner), true)
	if err != nil {
		return RawBanner{}, fmt.Errorf("read banner %q: %w", banner, err)
	}

	merged := mergeRaw(def, raw)
	if err := ValidateRaw(merged); err != nil {
		return RawBanner{}, err
	}

	l.mu.Lock()
	l.cache[banner] = merged
	l.mu.Unlock()
	return merged, nil
}

// Invalidate clears the loader's cache, for callers that rewrite configs.
func (l *Loader) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache = make(map[string]RawBanner)
}

// LoadFile reads and validates a single standalone banner file, with no
// defaults merge. This is the one-shot CLI path.
func LoadFile(path string) (RawBanner, error) {
	raw, err := readYAML(path, true)
	if err != nil {
		return RawBanner{}, err
	}
	if err := ValidateRaw(raw); err != nil {
		return RawBanner{}, err
	}
	return raw, nil
}

// readYAML loads a YAML file into RawBanner. Missing optional files return a
// zero value, no error.
func readYAML(path string, required bool) (RawBanner, error) {
	var raw RawBanner
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return RawBanner{}, nil
		}
		return RawBanner{}, err
	}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return RawBanner{}, err
	}
	return raw, nil
}

// mergeRaw overlays b on a: scalars override when set, slices replace
// wholesale, the token section merges field by field.
func mergeRaw(a, b RawBanner) RawBanner {
	out := a

	if b.Version != "" {
		out.Version = b.Version
	}
	if b.Mode != "" {
		out.Mode = b.Mode
	}
	if b.Notes != "" {
		out.Notes = b.Notes
	}
	if len(b.Tiers) > 0 {
		out.Tiers = append([]RawTier(nil), b.Tiers...)
	}
	if len(b.Pools) > 0 {
		out.Pools = append([]RawPool(nil), b.Pools...)
	}

	switch {
	case out.Token == nil && b.Token != nil:
		c := *b.Token
		out.Token = &c
	case out.Token != nil && b.Token != nil:
		c := *a.Token // keep the default's struct untouched
		out.Token = &c
		if b.Token.Name != "" {
			out.Token.Name = b.Token.Name
		}
		if b.Token.PerDraw != nil {
			out.Token.PerDraw = b.Token.PerDraw
		}
		if b.Token.PerTenDraw != nil {
			out.Token.PerTenDraw = b.Token.PerTenDraw
		}
		if b.Token.PerNDraw != nil {
			out.Token.PerNDraw = b.Token.PerNDraw
		}
		if b.Token.N != nil {
			out.Token.N = b.Token.N
		}
	}

	if b.Catalog != nil {
		c := *b.Catalog
		c.Packs = append([]RawPack(nil), b.Catalog.Packs...)
		out.Catalog = &c
	}

	return out
}
