package search

import (
	"github.com/sahilm/fuzzy"

	"github.com/shelftools/shelf/internal/model"
)

// ItemResult is one fuzzy match over the items of the collection. Folder
// names the owning folder for display.
type ItemResult struct {
	Item           model.Item
	Folder         model.Folder
	MatchedIndexes []int
	Score          int
}

// FolderResult is one fuzzy match over folder names.
type FolderResult struct {
	Folder         model.Folder
	MatchedIndexes []int
	Score          int
}

// indexedItem pairs an item with its owning folder.
type indexedItem struct {
	item   model.Item
	folder model.Folder
}

// itemNames implements fuzzy.Source over the flattened item list.
type itemNames []indexedItem

func (in itemNames) String(i int) string { return in[i].item.Name }
func (in itemNames) Len() int            { return len(in) }

// folderNames implements fuzzy.Source over the folder list.
type folderNames []model.Folder

func (fn folderNames) String(i int) string { return fn[i].Name }
func (fn folderNames) Len() int            { return len(fn) }

// Items fuzzy-matches query against every item name in the collection.
// Results come back best score first, each carrying its owning folder.
func Items(folders []model.Folder, query string) []ItemResult {
	if query == "" {
		return nil
	}

	var source itemNames
	for _, f := range folders {
		for _, it := range f.Items {
			source = append(source, indexedItem{item: it, folder: f})
		}
	}

	matches := fuzzy.FindFrom(query, source)

	results := make([]ItemResult, len(matches))
	for i, m := range matches {
		results[i] = ItemResult{
			Item:           source[m.Index].item,
			Folder:         source[m.Index].folder,
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}

// Folders fuzzy-matches query against folder names, best score first.
func Folders(folders []model.Folder, query string) []FolderResult {
	if query == "" {
		return nil
	}

	matches := fuzzy.FindFrom(query, folderNames(folders))

	results := make([]FolderResult, len(matches))
	for i, m := range matches {
		results[i] = FolderResult{
			Folder:         folders[m.Index],
			MatchedIndexes: m.MatchedIndexes,
			Score:          m.Score,
		}
	}
	return results
}
