package loader

import (
	"fmt"
	"os"
	"sync"

	"github.com/gogpu/typeface"
)

// NewInstance parses font data (TTF or OTF) and returns a style
// instance for it. The data slice is read during the call and can be
// reused afterward.
func NewInstance(data []byte, opts ...Option) (typeface.Instance, error) {
	if len(data) == 0 {
		return typeface.Instance{}, ErrEmptyFontData
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	inst, err := getParser(cfg.parserName).Parse(data)
	if err != nil {
		return typeface.Instance{}, err
	}
	typeface.Logger().Debug("loader: parsed font",
		"parser", cfg.parserName, "style", inst.Style.String())
	return inst, nil
}

// NewInstanceFromFile loads a style instance from a font file path.
// Parsed results are cached per (path, parser); repeated loads of the
// same file share one parsed font.
func NewInstanceFromFile(path string, opts ...Option) (typeface.Instance, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return instanceCache.get(path, cfg.parserName)
}

// NewFamilyFromFiles loads every path as a single-instance font and
// combines them into one family, in argument order. Order matters:
// nearest-style matching breaks ties toward the first-listed file.
func NewFamilyFromFiles(paths []string, opts ...Option) (*typeface.Family, error) {
	if len(paths) == 0 {
		return nil, ErrNoFonts
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	instances := make([]typeface.Instance, 0, len(paths))
	for _, path := range paths {
		inst, err := instanceCache.get(path, cfg.parserName)
		if err != nil {
			return nil, err
		}
		instances = append(instances, inst)
	}
	return typeface.NewFamily(instances, typeface.WithLanguage(cfg.lang)), nil
}

// ClearCache removes all cached parsed fonts.
// Call this if you no longer need previously loaded fonts and want to
// free memory.
func ClearCache() {
	instanceCache.clear()
}

// cacheKey identifies one parse result: the same file parsed by two
// backends yields two distinct handles.
type cacheKey struct {
	path   string
	parser string
}

// pathCache caches parsed instances by file path.
// typeface.Instance values are immutable, so cached entries are safe
// to hand to any number of goroutines.
type pathCache struct {
	mu        sync.RWMutex
	instances map[cacheKey]typeface.Instance
}

var instanceCache = &pathCache{instances: make(map[cacheKey]typeface.Instance)}

// get returns the cached instance for path, parsing the file on the
// first request.
func (c *pathCache) get(path, parser string) (typeface.Instance, error) {
	key := cacheKey{path: path, parser: parser}

	// Fast path: check cache with read lock.
	c.mu.RLock()
	if inst, ok := c.instances[key]; ok {
		c.mu.RUnlock()
		return inst, nil
	}
	c.mu.RUnlock()

	// Slow path: parse the file and update cache with write lock.
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock.
	if inst, ok := c.instances[key]; ok {
		return inst, nil
	}

	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return typeface.Instance{}, fmt.Errorf("loader: failed to read font file: %w", err)
	}
	if len(data) == 0 {
		return typeface.Instance{}, ErrEmptyFontData
	}

	inst, err := getParser(parser).Parse(data)
	if err != nil {
		return typeface.Instance{}, err
	}
	c.instances[key] = inst
	return inst, nil
}

// clear drops every cached instance.
func (c *pathCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.instances = make(map[cacheKey]typeface.Instance)
}
