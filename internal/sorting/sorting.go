package sorting

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/shelftools/shelf/internal/model"
)

// Method selects what a level compares.
type Method string

const (
	MethodNone         Method = "none"
	MethodAlphabetical Method = "alphabetical"
	MethodLength       Method = "length"
	MethodRecency      Method = "recency"
)

// Direction selects which way a level orders.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Level is one comparison stage of a chain.
type Level struct {
	Method    Method
	Direction Direction
}

// Chain compares up to three levels deep. A tie at one level falls through
// to the next.
type Chain struct {
	Primary   Level
	Secondary Level
	Tertiary  Level
}

// IsNoop reports whether every level is none. Callers keep stored order
// without paying for a sort.
func (c Chain) IsNoop() bool {
	return c.Primary.Method == MethodNone &&
		c.Secondary.Method == MethodNone &&
		c.Tertiary.Method == MethodNone
}

func (c Chain) levels() [3]Level {
	return [3]Level{c.Primary, c.Secondary, c.Tertiary}
}

// ParseLevel parses "method" or "method:direction" preference strings,
// e.g. "alphabetical:asc". An empty string is the none level.
func ParseLevel(s string) (Level, error) {
	if s == "" {
		return Level{Method: MethodNone, Direction: Ascending}, nil
	}

	methodStr, dirStr, _ := strings.Cut(s, ":")

	var method Method
	switch methodStr {
	case "none":
		method = MethodNone
	case "alphabetical":
		method = MethodAlphabetical
	case "length":
		method = MethodLength
	case "recency":
		method = MethodRecency
	default:
		return Level{}, fmt.Errorf("unknown sort method %q", methodStr)
	}

	var dir Direction
	switch dirStr {
	case "", "asc", "ascending":
		dir = Ascending
	case "desc", "descending":
		dir = Descending
	default:
		return Level{}, fmt.Errorf("unknown sort direction %q", dirStr)
	}

	return Level{Method: method, Direction: dir}, nil
}

// ParseChain parses the three preference strings into a Chain.
func ParseChain(primary, secondary, tertiary string) (Chain, error) {
	p, err := ParseLevel(primary)
	if err != nil {
		return Chain{}, err
	}
	s, err := ParseLevel(secondary)
	if err != nil {
		return Chain{}, err
	}
	t, err := ParseLevel(tertiary)
	if err != nil {
		return Chain{}, err
	}
	return Chain{Primary: p, Secondary: s, Tertiary: t}, nil
}

// Sorter applies a chain with locale-aware name comparison.
type Sorter struct {
	chain Chain
	coll  *collate.Collator
}

// New builds a Sorter for the locale. An unparseable locale falls back to
// English collation.
func New(chain Chain, locale string) *Sorter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Sorter{chain: chain, coll: collate.New(tag)}
}

// Items returns the items ordered by the chain. A no-op chain returns the
// stored order untouched; full ties keep their relative order.
func (s *Sorter) Items(items []model.Item) []model.Item {
	if s.chain.IsNoop() {
		return items
	}

	out := append([]model.Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return s.compare(out[i].Name, out[i].LastUsed, out[j].Name, out[j].LastUsed) < 0
	})
	return out
}

// Folders orders folders the same way items are ordered.
func (s *Sorter) Folders(folders []model.Folder) []model.Folder {
	if s.chain.IsNoop() {
		return folders
	}

	out := append([]model.Folder(nil), folders...)
	sort.SliceStable(out, func(i, j int) bool {
		return s.compare(out[i].Name, out[i].LastUsed, out[j].Name, out[j].LastUsed) < 0
	})
	return out
}

func (s *Sorter) compare(aName string, aUsed *time.Time, bName string, bUsed *time.Time) int {
	for _, lv := range s.chain.levels() {
		if c := s.compareLevel(lv, aName, aUsed, bName, bUsed); c != 0 {
			return c
		}
	}
	return 0
}

func (s *Sorter) compareLevel(lv Level, aName string, aUsed *time.Time, bName string, bUsed *time.Time) int {
	var c int
	switch lv.Method {
	case MethodAlphabetical:
		c = s.coll.CompareString(aName, bName)
	case MethodLength:
		c = utf8.RuneCountInString(aName) - utf8.RuneCountInString(bName)
	case MethodRecency:
		c = compareRecency(aUsed, bUsed)
	default:
		return 0
	}

	if lv.Direction == Descending {
		c = -c
	}
	return c
}

// compareRecency orders never-used entries before everything else.
func compareRecency(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}
