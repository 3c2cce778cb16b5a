// Package commands maintains a lazily-populated cache of executable names
// resolved from the environment search path. Reads never touch the
// filesystem; only Populate scans directories, and it is serialized so
// readers never observe a half-built generation.
package commands

import (
	"log/slog"
	"path/filepath"
	"sort"
	"sync"
)

// Cache maps command names to their resolved absolute paths. The zero
// generation is empty: LazyIn, LazyIter and LazyLen all report nothing
// until Populate runs.
type Cache struct {
	mu      sync.RWMutex
	cmds    map[string][]string
	pathSig string // search path of the last populated generation
	logger  *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger used for populate diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) { c.logger = logger }
}

// New returns an empty cache. No filesystem access happens until Populate.
func New(opts ...Option) *Cache {
	c := &Cache{logger: slog.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LazyIn reports whether name is in the cached generation, without
// consulting the filesystem.
func (c *Cache) LazyIn(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.cmds[name]
	return ok
}

// LazyIter returns a sorted snapshot of the cached command names, without
// consulting the filesystem.
func (c *Cache) LazyIter() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.cmds))
	for name := range c.cmds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LazyLen returns the number of cached command names, without consulting
// the filesystem.
func (c *Cache) LazyLen() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.cmds)
}

// Resolve returns the cached absolute paths for name, in search-path order.
func (c *Cache) Resolve(name string) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	paths, ok := c.cmds[name]
	if !ok {
		return nil, false
	}
	out := make([]string, len(paths))
	copy(out, paths)
	return out, true
}

// Populate scans the directories of pathVar (platform list-separated) and
// rebuilds the cache. The search path string doubles as the generation
// token: populating twice with the same value is a no-op, and a changed
// value invalidates the previous generation wholesale. Unreadable or
// missing directories are skipped; they never abort the remaining scan.
func (c *Cache) Populate(pathVar string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.cmds != nil && pathVar == c.pathSig {
		return
	}

	cmds := make(map[string][]string)
	for _, dir := range filepath.SplitList(pathVar) {
		if dir == "" {
			continue
		}
		abs, err := filepath.Abs(dir)
		if err != nil {
			c.logger.Debug("skipping search path entry", "dir", dir, "err", err)
			continue
		}
		names, err := ExecutablesIn(abs)
		if err != nil {
			c.logger.Debug("skipping search path entry", "dir", abs, "err", err)
			continue
		}
		for _, name := range names {
			cmds[name] = append(cmds[name], filepath.Join(abs, name))
		}
	}

	c.cmds = cmds
	c.pathSig = pathVar
}
