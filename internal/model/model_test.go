package model_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/shelftools/shelf/internal/model"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestItem_WireShape(t *testing.T) {
	tests := []struct {
		name       string
		item       model.Item
		wantType   string
		wantFields []string
		skipFields []string
	}{
		{
			name: "application item",
			item: model.Item{
				ID:     "i1",
				Name:   "Ghostty",
				Target: model.AppTarget{Path: "/Applications/Ghostty.app"},
			},
			wantType:   "application",
			wantFields: []string{"path"},
			skipFields: []string{"url", "folderId", "iconHint"},
		},
		{
			name: "website item",
			item: model.Item{
				ID:       "i2",
				Name:     "Hacker News",
				LastUsed: timePtr(time.Date(2025, 1, 20, 14, 22, 0, 0, time.UTC)),
				Target:   model.SiteTarget{URL: "https://news.ycombinator.com", IconHint: "/icons/hn.png"},
			},
			wantType:   "website",
			wantFields: []string{"url", "iconHint", "lastUsed"},
			skipFields: []string{"path", "folderId"},
		},
		{
			name: "folder reference item",
			item: model.Item{
				ID:     "i3",
				Name:   "Work",
				Target: model.FolderTarget{FolderID: "f9"},
			},
			wantType:   "folder-reference",
			wantFields: []string{"folderId"},
			skipFields: []string{"path", "url"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.item)
			if err != nil {
				t.Fatalf("failed to marshal: %v", err)
			}

			var raw map[string]any
			if err := json.Unmarshal(data, &raw); err != nil {
				t.Fatalf("failed to unmarshal into map: %v", err)
			}

			if raw["type"] != tt.wantType {
				t.Errorf("type mismatch: got %v, want %q", raw["type"], tt.wantType)
			}
			for _, field := range tt.wantFields {
				if _, ok := raw[field]; !ok {
					t.Errorf("expected field %q in wire shape", field)
				}
			}
			for _, field := range tt.skipFields {
				if _, ok := raw[field]; ok {
					t.Errorf("field %q should be omitted for %s", field, tt.wantType)
				}
			}
		})
	}
}

func TestItem_DecodeVariants(t *testing.T) {
	data := `[
		{"id":"i1","name":"Ghostty","type":"application","path":"/Applications/Ghostty.app"},
		{"id":"i2","name":"HN","type":"website","url":"https://news.ycombinator.com"},
		{"id":"i3","name":"Work","type":"folder-reference","folderId":"f9"}
	]`

	var items []model.Item
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}

	app, ok := items[0].Target.(model.AppTarget)
	if !ok {
		t.Fatalf("expected AppTarget, got %T", items[0].Target)
	}
	if app.Path != "/Applications/Ghostty.app" {
		t.Errorf("path mismatch: got %q", app.Path)
	}

	site, ok := items[1].Target.(model.SiteTarget)
	if !ok {
		t.Fatalf("expected SiteTarget, got %T", items[1].Target)
	}
	if site.URL != "https://news.ycombinator.com" {
		t.Errorf("url mismatch: got %q", site.URL)
	}

	ref, ok := items[2].Target.(model.FolderTarget)
	if !ok {
		t.Fatalf("expected FolderTarget, got %T", items[2].Target)
	}
	if ref.FolderID != "f9" {
		t.Errorf("folderId mismatch: got %q", ref.FolderID)
	}
}

func TestItem_DecodeErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantErr string
	}{
		{
			name:    "unknown type",
			data:    `{"id":"i1","name":"x","type":"bookmark","url":"https://x.com"}`,
			wantErr: "unknown type",
		},
		{
			name:    "missing type",
			data:    `{"id":"i1","name":"x","url":"https://x.com"}`,
			wantErr: "unknown type",
		},
		{
			name:    "application without path",
			data:    `{"id":"i1","name":"x","type":"application"}`,
			wantErr: "no path",
		},
		{
			name:    "website without url",
			data:    `{"id":"i1","name":"x","type":"website","path":"/tmp/x"}`,
			wantErr: "no url",
		},
		{
			name:    "folder reference without folderId",
			data:    `{"id":"i1","name":"x","type":"folder-reference"}`,
			wantErr: "no folderId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var item model.Item
			err := json.Unmarshal([]byte(tt.data), &item)
			if err == nil {
				t.Fatal("expected decode error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestItem_MarshalWithoutTarget(t *testing.T) {
	item := model.Item{ID: "i1", Name: "broken"}
	if _, err := json.Marshal(item); err == nil {
		t.Error("expected error marshaling item without target")
	}
}

func TestItem_Duplicate(t *testing.T) {
	used := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	item := model.Item{
		ID:       "i1",
		Name:     "HN",
		LastUsed: &used,
		Target:   model.SiteTarget{URL: "https://news.ycombinator.com"},
	}

	dup := item.Duplicate()

	if dup.ID == item.ID {
		t.Error("duplicate should carry a fresh ID")
	}
	if dup.Name != item.Name {
		t.Errorf("name mismatch: got %q, want %q", dup.Name, item.Name)
	}
	if dup.Target != item.Target {
		t.Errorf("target mismatch: got %v, want %v", dup.Target, item.Target)
	}
	if dup.LastUsed == item.LastUsed {
		t.Error("duplicate should deep copy LastUsed")
	}
	if dup.LastUsed == nil || !dup.LastUsed.Equal(used) {
		t.Errorf("LastUsed value mismatch: got %v", dup.LastUsed)
	}
}

func TestFolder_Clone(t *testing.T) {
	folder := model.Folder{
		ID:   "f1",
		Name: "Dev",
		Items: []model.Item{
			{ID: "i1", Name: "HN", Target: model.SiteTarget{URL: "https://news.ycombinator.com"}},
		},
	}

	clone := folder.Clone()
	clone.Name = "Changed"
	clone.Items[0].Name = "Changed"
	clone.Items = append(clone.Items, model.NewAppItem("Ghostty", "/Applications/Ghostty.app"))

	if folder.Name != "Dev" {
		t.Errorf("original name changed: %q", folder.Name)
	}
	if folder.Items[0].Name != "HN" {
		t.Errorf("original item changed: %q", folder.Items[0].Name)
	}
	if len(folder.Items) != 1 {
		t.Errorf("original items grew: %d", len(folder.Items))
	}
}

func TestFindFolder(t *testing.T) {
	folders := []model.Folder{
		{ID: "f1", Name: "Dev"},
		{ID: "f2", Name: "Design"},
	}

	found := model.FindFolder(folders, "f2")
	if found == nil {
		t.Fatal("expected to find folder f2")
	}
	if found.Name != "Design" {
		t.Errorf("expected name 'Design', got %q", found.Name)
	}

	if model.FindFolder(folders, "nonexistent") != nil {
		t.Error("expected nil for nonexistent folder")
	}
}

func TestNewFolder_Defaults(t *testing.T) {
	folder := model.NewFolder(model.NewFolderParams{Name: "Inbox"})

	if folder.ID == "" {
		t.Error("expected generated ID")
	}
	if folder.Items == nil {
		t.Error("expected initialized items slice")
	}
	if folder.LastUsed != nil {
		t.Error("new folder should have no LastUsed")
	}
}
