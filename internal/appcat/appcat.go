// Package appcat resolves display names for application paths. It is a
// read-only convenience for the presentation layer; nothing structural
// depends on what it returns.
package appcat

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Catalog looks up applications in a set of configured directories.
type Catalog struct {
	dirs   []string
	titler cases.Caser
}

// New builds a Catalog over the given application directories. Missing
// directories are simply skipped at lookup time.
func New(dirs []string) *Catalog {
	return &Catalog{
		dirs:   dirs,
		titler: cases.Title(language.English),
	}
}

// DisplayName returns a human-readable name for an application path. The
// basename is stripped of its bundle or executable extension, separators
// become spaces, and the result is title-cased.
func (c *Catalog) DisplayName(path string) string {
	base := filepath.Base(path)

	switch ext := strings.ToLower(filepath.Ext(base)); ext {
	case ".app", ".exe", ".desktop", ".appimage":
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	base = strings.Join(strings.Fields(base), " ")
	if base == "" {
		return path
	}
	return c.titler.String(base)
}

// Resolve searches the configured directories for an application whose
// name matches query, comparing display names case-insensitively. The
// first hit wins; ok is false when nothing matches.
func (c *Catalog) Resolve(query string) (path string, ok bool) {
	want := strings.ToLower(strings.TrimSpace(query))
	if want == "" {
		return "", false
	}

	for _, dir := range c.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			full := filepath.Join(dir, entry.Name())
			if strings.ToLower(c.DisplayName(full)) == want {
				return full, true
			}
		}
	}
	return "", false
}
