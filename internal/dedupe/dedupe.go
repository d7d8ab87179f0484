package dedupe

import (
	"net/url"
	"strings"

	"github.com/shelftools/shelf/internal/model"
)

// Report is the outcome of a duplicate scan. Unique keeps the first
// occurrence of every identity in stored order.
type Report struct {
	Unique         []model.Item
	Duplicates     []model.Item
	DuplicateCount int
}

// Scan partitions items into first occurrences and duplicates. Scanning
// the Unique output again finds nothing.
func Scan(items []model.Item) Report {
	seen := make(map[string]bool, len(items))
	report := Report{Unique: make([]model.Item, 0, len(items))}

	for _, it := range items {
		key := Key(it)
		if seen[key] {
			report.Duplicates = append(report.Duplicates, it)
			continue
		}
		seen[key] = true
		report.Unique = append(report.Unique, it)
	}

	report.DuplicateCount = len(report.Duplicates)
	return report
}

// Key returns the identity an item is deduplicated on: the normalized URL
// for websites, the path for applications, the target folder for folder
// references. Keys are namespaced per kind so different kinds never
// collide.
func Key(it model.Item) string {
	switch t := it.Target.(type) {
	case model.AppTarget:
		return string(model.KindApplication) + ":" + t.Path
	case model.SiteTarget:
		return string(model.KindWebsite) + ":" + NormalizeURL(t.URL)
	case model.FolderTarget:
		return string(model.KindFolderRef) + ":" + t.FolderID
	default:
		// an item without a target only matches itself
		return "unknown:" + it.ID
	}
}

// NormalizeURL canonicalizes a URL for identity comparison: scheme and
// host are lowercased, default ports dropped, the fragment removed, and a
// bare trailing slash trimmed. Query strings stay significant. Anything
// unparseable is compared verbatim.
func NormalizeURL(raw string) string {
	trimmed := strings.TrimSpace(raw)

	u, err := url.Parse(trimmed)
	if err != nil || u.Host == "" {
		return trimmed
	}

	u.Scheme = strings.ToLower(u.Scheme)

	host := strings.ToLower(u.Host)
	switch {
	case u.Scheme == "http" && strings.HasSuffix(host, ":80"):
		host = strings.TrimSuffix(host, ":80")
	case u.Scheme == "https" && strings.HasSuffix(host, ":443"):
		host = strings.TrimSuffix(host, ":443")
	}
	u.Host = host

	u.Fragment = ""
	u.RawFragment = ""

	if u.Path == "/" {
		u.Path = ""
	}

	return u.String()
}
