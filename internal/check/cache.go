package check

import (
	"crypto/sha256"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

// ResultCache remembers a digest of the content last checked for each path, so
// that saving a file without changing it does not report it again.
type ResultCache struct {
	seen *lru.Cache[string, [sha256.Size]byte]
}

// NewResultCache creates a cache holding up to size paths.
func NewResultCache(size int) (*ResultCache, error) {
	if size < 1 {
		size = 1
	}
	seen, err := lru.New[string, [sha256.Size]byte](size)
	if err != nil {
		return nil, err
	}
	return &ResultCache{seen: seen}, nil
}

// Remember records the content of src and reports whether it differs from what
// was last recorded for src.Path.
func (c *ResultCache) Remember(src *SourceFile) bool {
	sum := sha256.Sum256([]byte(strings.Join(src.Lines, "\n")))

	if prev, ok := c.seen.Get(src.Path); ok && prev == sum {
		return false
	}
	c.seen.Add(src.Path, sum)
	return true
}

// Forget drops whatever was recorded for path.
func (c *ResultCache) Forget(path string) {
	c.seen.Remove(path)
}
