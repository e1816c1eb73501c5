// internal/catalog/catalog.go
//
// Provides the immutable boss catalog the daily puzzle is played against.
//
// Responsibilities:
//   - Load the catalog once, from BOSSDLE_CATALOG_FILE or the embedded default.
//   - Validate identities (non-empty, unique, unambiguous under case folding).
//   - Resolve raw player input to an entry, case-insensitively.
//
// Identity is the entry Name and is case-sensitive. Lookups fold case with
// golang.org/x/text/cases so "margit, the fell omen" resolves to the entry.

package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"

	"github.com/robalobadob/bossdle/assets"
)

// ErrEmpty is returned when a catalog document holds no entries.
var ErrEmpty = errors.New("catalog: no entries")

// Entry is a single boss record. Entries are never mutated after load.
type Entry struct {
	Name        string `json:"name"`
	Region      string `json:"region"`
	Category    string `json:"type"`
	Damage      Value  `json:"damage"`
	Remembrance bool   `json:"remembrance"`
}

// Catalog is an ordered, read-only list of entries with a folded-name index.
// Order matters: the daily selector indexes into it.
type Catalog struct {
	entries []Entry
	byName  map[string]int // exact identity -> index
	byFold  map[string]int // folded identity -> index
}

// New validates entries and builds a Catalog. The slice is copied.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	c := &Catalog{
		entries: append([]Entry(nil), entries...),
		byName:  make(map[string]int, len(entries)),
		byFold:  make(map[string]int, len(entries)),
	}
	for i, e := range c.entries {
		if strings.TrimSpace(e.Name) == "" {
			return nil, fmt.Errorf("catalog: entry %d has no name", i)
		}
		if _, dup := c.byName[e.Name]; dup {
			return nil, fmt.Errorf("catalog: duplicate name %q", e.Name)
		}
		key := Fold(e.Name)
		if j, dup := c.byFold[key]; dup {
			return nil, fmt.Errorf("catalog: %q and %q differ only by case", c.entries[j].Name, e.Name)
		}
		c.byName[e.Name] = i
		c.byFold[key] = i
	}
	return c, nil
}

// Parse decodes a JSON array of entries.
func Parse(data []byte) (*Catalog, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}
	return New(entries)
}

// Load reads the catalog from path, or from the embedded default when path is empty.
func Load(path string) (*Catalog, error) {
	var (
		data []byte
		err  error
	)
	if path == "" {
		data, err = assets.Bosses()
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("catalog: read: %w", err)
	}
	return Parse(data)
}

// Len returns the number of entries. A nil Catalog has none.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// At returns the i-th entry.
func (c *Catalog) At(i int) Entry { return c.entries[i] }

// Get looks up an entry by exact identity.
func (c *Catalog) Get(name string) (Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Lookup resolves raw player input (surrounding space ignored, case folded).
func (c *Catalog) Lookup(raw string) (Entry, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Entry{}, false
	}
	i, ok := c.byFold[Fold(raw)]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Names returns every identity in catalog order, for autocomplete.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Name
	}
	return out
}

// Fold returns the case-folded form of s used for case-insensitive comparison.
func Fold(s string) string {
	// Casers carry state; a fresh one per call keeps Fold safe for concurrent use.
	return cases.Fold().String(s)
}
