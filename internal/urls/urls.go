package urls

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shelftools/shelf/internal/model"
)

// Record is one website URL found while walking a folder tree.
type Record struct {
	URL    string
	Origin string // name of the folder holding the URL; empty at depth 0
	Depth  int    // folder-reference hops from the root
}

// Collect walks root and every folder it nests, in item order, and returns
// one record per website item. A visited set keeps the walk finite over
// cyclic data.
func Collect(root model.Folder, all []model.Folder) []Record {
	var records []Record
	visited := map[string]bool{root.ID: true}
	collect(root, 0, all, visited, &records)
	return records
}

func collect(folder model.Folder, depth int, all []model.Folder, visited map[string]bool, out *[]Record) {
	for _, item := range folder.Items {
		switch target := item.Target.(type) {
		case model.SiteTarget:
			origin := folder.Name
			if depth == 0 {
				origin = ""
			}
			*out = append(*out, Record{URL: target.URL, Origin: origin, Depth: depth})
		case model.FolderTarget:
			if visited[target.FolderID] {
				continue
			}
			visited[target.FolderID] = true
			if next := model.FindFolder(all, target.FolderID); next != nil {
				collect(*next, depth+1, all, visited, out)
			}
		}
	}
}

// Markdown renders the walk as an indented bullet list. A folder heading is
// written whenever a URL arrives under a folder name other than the one
// currently open. The root's own heading appears only when at least one URL
// sits below depth 0; a folder whose URLs are all direct children renders as
// a bare list.
func Markdown(root model.Folder, all []model.Folder) string {
	records := Collect(root, all)
	if len(records) == 0 {
		return ""
	}

	nested := false
	for _, r := range records {
		if r.Depth > 0 {
			nested = true
			break
		}
	}

	var b strings.Builder
	if !nested {
		for _, r := range records {
			fmt.Fprintf(&b, "- %s\n", r.URL)
		}
		return strings.TrimSuffix(b.String(), "\n")
	}

	fmt.Fprintf(&b, "- **%s**\n", root.Name)
	open := root.Name
	for _, r := range records {
		name := r.Origin
		if r.Depth == 0 {
			name = root.Name
		}
		if name != open {
			fmt.Fprintf(&b, "%s- **%s**\n", strings.Repeat("  ", r.Depth), name)
			open = name
		}
		fmt.Fprintf(&b, "%s- %s\n", strings.Repeat("  ", r.Depth+1), r.URL)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// Flat returns every collected URL sorted by length, shortest first, ties in
// plain string order.
func Flat(records []Record) []string {
	urls := make([]string, len(records))
	for i, r := range records {
		urls[i] = r.URL
	}
	sort.Slice(urls, func(i, j int) bool {
		if len(urls[i]) != len(urls[j]) {
			return len(urls[i]) < len(urls[j])
		}
		return urls[i] < urls[j]
	})
	return urls
}
