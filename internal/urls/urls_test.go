package urls_test

import (
	"reflect"
	"testing"

	"gotest.tools/v3/golden"

	"github.com/shelftools/shelf/internal/model"
	"github.com/shelftools/shelf/internal/urls"
)

func TestCollect_NestedExample(t *testing.T) {
	all := []model.Folder{
		{ID: "a", Name: "A", Items: []model.Item{
			{ID: "r1", Name: "B", Target: model.FolderTarget{FolderID: "b"}},
		}},
		{ID: "b", Name: "B", Items: []model.Item{
			{ID: "s1", Name: "X", Target: model.SiteTarget{URL: "https://x.com"}},
		}},
	}

	records := urls.Collect(all[0], all)

	want := []urls.Record{{URL: "https://x.com", Origin: "B", Depth: 1}}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("unexpected records: %+v", records)
	}

	markdown := urls.Markdown(all[0], all)
	if markdown != "- **A**\n  - **B**\n    - https://x.com" {
		t.Errorf("unexpected markdown:\n%s", markdown)
	}
}

func TestCollect_DepthZeroHasNoOrigin(t *testing.T) {
	folder := model.Folder{ID: "f", Name: "Links", Items: []model.Item{
		{ID: "s1", Name: "One", Target: model.SiteTarget{URL: "https://one.example"}},
		{ID: "a1", Name: "App", Target: model.AppTarget{Path: "/usr/bin/app"}},
		{ID: "s2", Name: "Two", Target: model.SiteTarget{URL: "https://two.example"}},
	}}

	records := urls.Collect(folder, []model.Folder{folder})

	want := []urls.Record{
		{URL: "https://one.example", Origin: "", Depth: 0},
		{URL: "https://two.example", Origin: "", Depth: 0},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestCollect_CycleStaysFinite(t *testing.T) {
	// a and b reference each other; disallowed, but the walk must end
	all := []model.Folder{
		{ID: "a", Name: "A", Items: []model.Item{
			{ID: "s1", Name: "S", Target: model.SiteTarget{URL: "https://a.example"}},
			{ID: "r1", Name: "B", Target: model.FolderTarget{FolderID: "b"}},
		}},
		{ID: "b", Name: "B", Items: []model.Item{
			{ID: "s2", Name: "S", Target: model.SiteTarget{URL: "https://b.example"}},
			{ID: "r2", Name: "A", Target: model.FolderTarget{FolderID: "a"}},
		}},
	}

	records := urls.Collect(all[0], all)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].URL != "https://b.example" || records[1].Depth != 1 {
		t.Errorf("unexpected second record: %+v", records[1])
	}
}

func TestCollect_DanglingReferenceSkipped(t *testing.T) {
	folder := model.Folder{ID: "f", Name: "F", Items: []model.Item{
		{ID: "r1", Name: "Gone", Target: model.FolderTarget{FolderID: "missing"}},
		{ID: "s1", Name: "S", Target: model.SiteTarget{URL: "https://kept.example"}},
	}}

	records := urls.Collect(folder, []model.Folder{folder})
	if len(records) != 1 || records[0].URL != "https://kept.example" {
		t.Errorf("unexpected records: %+v", records)
	}
}

func TestMarkdown_FlatFolderHasNoHeading(t *testing.T) {
	folder := model.Folder{ID: "f", Name: "Links", Items: []model.Item{
		{ID: "s1", Name: "One", Target: model.SiteTarget{URL: "https://one.example"}},
		{ID: "s2", Name: "Two", Target: model.SiteTarget{URL: "https://two.example"}},
	}}

	got := urls.Markdown(folder, []model.Folder{folder})
	want := "- https://one.example\n- https://two.example"
	if got != want {
		t.Errorf("unexpected markdown:\n%s", got)
	}
}

func TestMarkdown_Empty(t *testing.T) {
	folder := model.Folder{ID: "f", Name: "Empty", Items: []model.Item{}}
	if got := urls.Markdown(folder, []model.Folder{folder}); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestMarkdown_DeepTree(t *testing.T) {
	all := []model.Folder{
		{ID: "root", Name: "Bookmarks", Items: []model.Item{
			{ID: "s0", Name: "U1", Target: model.SiteTarget{URL: "https://u1.example"}},
			{ID: "r1", Name: "Dev", Target: model.FolderTarget{FolderID: "dev"}},
			{ID: "r2", Name: "News", Target: model.FolderTarget{FolderID: "news"}},
		}},
		{ID: "dev", Name: "Dev", Items: []model.Item{
			{ID: "s1", Name: "D1", Target: model.SiteTarget{URL: "https://d1.example"}},
			{ID: "s2", Name: "D2", Target: model.SiteTarget{URL: "https://d2.example"}},
			{ID: "r3", Name: "Go", Target: model.FolderTarget{FolderID: "go"}},
		}},
		{ID: "go", Name: "Go", Items: []model.Item{
			{ID: "s3", Name: "G1", Target: model.SiteTarget{URL: "https://g1.example"}},
		}},
		{ID: "news", Name: "News", Items: []model.Item{
			{ID: "s4", Name: "N1", Target: model.SiteTarget{URL: "https://n1.example"}},
		}},
	}

	markdown := urls.Markdown(all[0], all)
	golden.Assert(t, markdown+"\n", "markdown_deep_tree.golden")
}

func TestFlat_SortsByLengthThenString(t *testing.T) {
	records := []urls.Record{
		{URL: "https://bbb.example"},
		{URL: "https://zz.example"},
		{URL: "https://aaa.example"},
		{URL: "https://a.example"},
	}

	got := urls.Flat(records)

	want := []string{
		"https://a.example",
		"https://zz.example",
		"https://aaa.example",
		"https://bbb.example",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("unexpected order: %v", got)
	}
}

func TestFlat_Empty(t *testing.T) {
	if got := urls.Flat(nil); len(got) != 0 {
		t.Errorf("expected no urls, got %v", got)
	}
}
