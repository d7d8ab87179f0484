package hierarchy_test

import (
	"testing"

	"github.com/shelftools/shelf/internal/hierarchy"
	"github.com/shelftools/shelf/internal/model"
)

func refItem(id, name, folderID string) model.Item {
	return model.Item{ID: id, Name: name, Target: model.FolderTarget{FolderID: folderID}}
}

func siteItem(id, name, url string) model.Item {
	return model.Item{ID: id, Name: name, Target: model.SiteTarget{URL: url}}
}

// chain builds A ⊃ B ⊃ C plus a standalone D.
func chain() []model.Folder {
	return []model.Folder{
		{ID: "A", Name: "Work", Items: []model.Item{
			refItem("r1", "Projects", "B"),
			siteItem("s1", "HN", "https://news.ycombinator.com"),
		}},
		{ID: "B", Name: "Projects", Items: []model.Item{
			refItem("r2", "Archive", "C"),
		}},
		{ID: "C", Name: "Archive", Items: []model.Item{}},
		{ID: "D", Name: "Play", Items: []model.Item{}},
	}
}

func TestIsAncestor(t *testing.T) {
	g := hierarchy.Build(chain())

	tests := []struct {
		name      string
		candidate string
		target    string
		want      bool
	}{
		{"direct child", "A", "B", true},
		{"transitive child", "A", "C", true},
		{"reverse direction", "B", "A", false},
		{"self", "A", "A", false},
		{"unrelated", "D", "C", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsAncestor(tt.candidate, tt.target); got != tt.want {
				t.Errorf("IsAncestor(%s, %s) = %v, want %v", tt.candidate, tt.target, got, tt.want)
			}
		})
	}
}

func TestIsAncestor_TerminatesOnCycle(t *testing.T) {
	// malformed: A ⊃ B and B ⊃ A
	folders := []model.Folder{
		{ID: "A", Name: "A", Items: []model.Item{refItem("r1", "B", "B")}},
		{ID: "B", Name: "B", Items: []model.Item{refItem("r2", "A", "A")}},
	}
	g := hierarchy.Build(folders)

	if !g.IsAncestor("A", "B") {
		t.Error("expected A to reach B")
	}
	if !g.IsAncestor("B", "A") {
		t.Error("expected B to reach A")
	}
	if g.IsAncestor("A", "missing") {
		t.Error("walk over cycle should terminate and miss absent id")
	}
}

func TestAncestors(t *testing.T) {
	g := hierarchy.Build(chain())

	anc := g.Ancestors("C")
	if len(anc) != 2 || !anc["A"] || !anc["B"] {
		t.Errorf("expected ancestors of C to be {A, B}, got %v", anc)
	}

	if len(g.Ancestors("A")) != 0 {
		t.Errorf("expected no ancestors for root folder, got %v", g.Ancestors("A"))
	}
}

func TestParents_LastReferenceWins(t *testing.T) {
	folders := []model.Folder{
		{ID: "A", Name: "A", Items: []model.Item{refItem("r1", "C", "C")}},
		{ID: "B", Name: "B", Items: []model.Item{refItem("r2", "C", "C")}},
		{ID: "C", Name: "C", Items: []model.Item{}},
	}
	g := hierarchy.Build(folders)

	parents := g.Parents()
	if parents["C"] != "B" {
		t.Errorf("expected later reference to win, got parent %q", parents["C"])
	}
}

func TestNestCandidates(t *testing.T) {
	folders := chain()

	tests := []struct {
		name    string
		editing string
		want    []string
	}{
		// B stays listed because it is already nested in A;
		// C is nested elsewhere, D is free.
		{"editing root", "A", []string{"B", "D"}},
		// nesting A or B under C would close a cycle
		{"editing leaf", "C", []string{"D"}},
		// A is free to move; B and C already live elsewhere
		{"editing standalone", "D", []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hierarchy.NestCandidates(folders, tt.editing)

			var ids []string
			for _, f := range got {
				ids = append(ids, f.ID)
			}

			if len(ids) != len(tt.want) {
				t.Fatalf("expected candidates %v, got %v", tt.want, ids)
			}
			for i := range tt.want {
				if ids[i] != tt.want[i] {
					t.Errorf("candidate %d: got %s, want %s", i, ids[i], tt.want[i])
				}
			}
		})
	}
}

func TestValidate_CleanCollection(t *testing.T) {
	if problems := hierarchy.Validate(chain()); len(problems) != 0 {
		t.Errorf("expected no problems, got %v", problems)
	}
}

func TestValidate_FindsViolations(t *testing.T) {
	tests := []struct {
		name     string
		folders  []model.Folder
		wantKind string
	}{
		{
			name: "dangling reference",
			folders: []model.Folder{
				{ID: "A", Name: "A", Items: []model.Item{refItem("r1", "Gone", "ghost")}},
			},
			wantKind: hierarchy.ProblemDanglingRef,
		},
		{
			name: "second parent",
			folders: []model.Folder{
				{ID: "A", Name: "A", Items: []model.Item{refItem("r1", "C", "C")}},
				{ID: "B", Name: "B", Items: []model.Item{refItem("r2", "C", "C")}},
				{ID: "C", Name: "C", Items: []model.Item{}},
			},
			wantKind: hierarchy.ProblemSecondParent,
		},
		{
			name: "cycle",
			folders: []model.Folder{
				{ID: "A", Name: "A", Items: []model.Item{refItem("r1", "B", "B")}},
				{ID: "B", Name: "B", Items: []model.Item{refItem("r2", "A", "A")}},
			},
			wantKind: hierarchy.ProblemCycle,
		},
		{
			name: "duplicate id",
			folders: []model.Folder{
				{ID: "A", Name: "First", Items: []model.Item{}},
				{ID: "A", Name: "Second", Items: []model.Item{}},
			},
			wantKind: hierarchy.ProblemDuplicateID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := hierarchy.Validate(tt.folders)
			if len(problems) == 0 {
				t.Fatal("expected at least one problem")
			}

			found := false
			for _, p := range problems {
				if p.Kind == tt.wantKind {
					found = true
				}
			}
			if !found {
				t.Errorf("expected problem kind %q in %v", tt.wantKind, problems)
			}
		})
	}
}
