package mdexport

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/alnah/go-mdexport/internal/theme"
)

// renderCache memoizes Render output keyed by a digest of the request.
// It is safe for concurrent use.
type renderCache struct {
	entries *lru.Cache[uint64, string]
}

func newRenderCache(size int) (*renderCache, error) {
	entries, err := lru.New[uint64, string](size)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCacheConfig, err)
	}
	return &renderCache{entries: entries}, nil
}

func (rc *renderCache) get(key uint64) (string, bool) {
	return rc.entries.Get(key)
}

func (rc *renderCache) add(key uint64, html string) {
	rc.entries.Add(key, html)
}

func (rc *renderCache) len() int {
	return rc.entries.Len()
}

// renderKey digests markdown plus the JSON form of both themes. Fields are
// separated by a NUL byte, which cannot occur in JSON output.
func renderKey(markdown string, t *Theme, ct *CodeTheme) (uint64, error) {
	themeJSON, err := theme.Encode(t)
	if err != nil {
		return 0, err
	}
	codeJSON, err := json.Marshal(ct)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidCodeTheme, err)
	}

	d := xxhash.New()
	_, _ = d.WriteString(markdown)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(themeJSON)
	_, _ = d.Write([]byte{0})
	_, _ = d.Write(codeJSON)
	return d.Sum64(), nil
}
