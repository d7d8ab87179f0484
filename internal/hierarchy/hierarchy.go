package hierarchy

import (
	"fmt"

	"github.com/shelftools/shelf/internal/model"
)

// Graph is an adjacency view of folder nesting, derived from the
// folder-reference items of a collection. Build it once per pass; it does
// not track edits made after it was built.
type Graph struct {
	ids      map[string]bool
	children map[string][]string
	parents  map[string]string
	reverse  map[string][]string
}

// Build derives the nesting graph from the flat folder list.
func Build(folders []model.Folder) *Graph {
	g := &Graph{
		ids:      make(map[string]bool, len(folders)),
		children: make(map[string][]string),
		parents:  make(map[string]string),
		reverse:  make(map[string][]string),
	}

	for _, f := range folders {
		g.ids[f.ID] = true
	}

	for _, f := range folders {
		for _, it := range f.Items {
			ref, ok := it.Target.(model.FolderTarget)
			if !ok {
				continue
			}
			g.children[f.ID] = append(g.children[f.ID], ref.FolderID)
			// later reference wins when data nests a folder twice
			g.parents[ref.FolderID] = f.ID
			g.reverse[ref.FolderID] = append(g.reverse[ref.FolderID], f.ID)
		}
	}

	return g
}

// Contains reports whether the folder id exists in the collection the
// graph was built from.
func (g *Graph) Contains(id string) bool {
	return g.ids[id]
}

// IsAncestor reports whether target sits somewhere inside candidate's
// subtree. A visited set keeps the walk finite even when malformed data
// forms a reference cycle.
func (g *Graph) IsAncestor(candidateID, targetID string) bool {
	if candidateID == targetID {
		return false
	}

	visited := make(map[string]bool)
	stack := append([]string(nil), g.children[candidateID]...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if id == targetID {
			return true
		}
		if visited[id] {
			continue
		}
		visited[id] = true
		stack = append(stack, g.children[id]...)
	}
	return false
}

// Ancestors returns every folder that transitively contains folderID. On
// cyclic data the folder can appear among its own ancestors.
func (g *Graph) Ancestors(folderID string) map[string]bool {
	out := make(map[string]bool)
	stack := append([]string(nil), g.reverse[folderID]...)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if out[id] {
			continue
		}
		out[id] = true
		stack = append(stack, g.reverse[id]...)
	}
	return out
}

// Parent returns the folder containing folderID, if any.
func (g *Graph) Parent(folderID string) (string, bool) {
	parent, ok := g.parents[folderID]
	return parent, ok
}

// Parents maps each nested folder to its containing folder.
func (g *Graph) Parents() map[string]string {
	out := make(map[string]string, len(g.parents))
	for child, parent := range g.parents {
		out[child] = parent
	}
	return out
}

// NestCandidates returns the folders that may legally be nested into the
// folder being edited: not the folder itself, not one of its ancestors,
// and not already nested somewhere else.
func NestCandidates(folders []model.Folder, editingID string) []model.Folder {
	g := Build(folders)
	ancestors := g.Ancestors(editingID)

	var out []model.Folder
	for _, f := range folders {
		if f.ID == editingID || ancestors[f.ID] {
			continue
		}
		if parent, ok := g.parents[f.ID]; ok && parent != editingID {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Problem kinds reported by Validate.
const (
	ProblemDuplicateID  = "duplicate-id"
	ProblemDanglingRef  = "dangling-reference"
	ProblemSecondParent = "second-parent"
	ProblemCycle        = "cycle"
)

// Problem is one structural finding from Validate.
type Problem struct {
	Kind     string
	FolderID string
	Detail   string
}

// Validate reports every structural violation in the collection. A clean
// collection yields nil.
func Validate(folders []model.Folder) []Problem {
	var problems []Problem

	seen := make(map[string]bool, len(folders))
	for _, f := range folders {
		if seen[f.ID] {
			problems = append(problems, Problem{
				Kind:     ProblemDuplicateID,
				FolderID: f.ID,
				Detail:   fmt.Sprintf("folder id %s appears more than once", f.ID),
			})
		}
		seen[f.ID] = true
	}

	g := Build(folders)

	parentCount := make(map[string]int)
	for _, f := range folders {
		for _, it := range f.Items {
			ref, ok := it.Target.(model.FolderTarget)
			if !ok {
				continue
			}
			if !g.ids[ref.FolderID] {
				problems = append(problems, Problem{
					Kind:     ProblemDanglingRef,
					FolderID: f.ID,
					Detail:   fmt.Sprintf("item %q references missing folder %s", it.Name, ref.FolderID),
				})
				continue
			}
			parentCount[ref.FolderID]++
		}
	}

	for _, f := range folders {
		if parentCount[f.ID] > 1 {
			problems = append(problems, Problem{
				Kind:     ProblemSecondParent,
				FolderID: f.ID,
				Detail:   fmt.Sprintf("folder %q is nested in %d folders", f.Name, parentCount[f.ID]),
			})
		}
	}

	for _, f := range folders {
		if g.Ancestors(f.ID)[f.ID] {
			problems = append(problems, Problem{
				Kind:     ProblemCycle,
				FolderID: f.ID,
				Detail:   fmt.Sprintf("folder %q is part of a reference cycle", f.Name),
			})
		}
	}

	return problems
}
