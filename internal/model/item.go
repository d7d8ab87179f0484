package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Kind identifies what an item points at.
type Kind string

const (
	KindApplication Kind = "application"
	KindWebsite     Kind = "website"
	KindFolderRef   Kind = "folder-reference"
)

// Target is the destination an item points at. Exactly one of the three
// concrete targets backs every item.
type Target interface {
	Kind() Kind
	isTarget()
}

// AppTarget points at an application on disk.
type AppTarget struct {
	Path string
}

// SiteTarget points at a website. IconHint is an optional local favicon path.
type SiteTarget struct {
	URL      string
	IconHint string
}

// FolderTarget nests another folder by ID.
type FolderTarget struct {
	FolderID string
}

func (AppTarget) Kind() Kind    { return KindApplication }
func (SiteTarget) Kind() Kind   { return KindWebsite }
func (FolderTarget) Kind() Kind { return KindFolderRef }

func (AppTarget) isTarget()    {}
func (SiteTarget) isTarget()   {}
func (FolderTarget) isTarget() {}

// Item is a single entry in a folder: an application, a website, or a
// reference to another folder.
type Item struct {
	ID       string
	Name     string
	LastUsed *time.Time
	Target   Target
}

// NewAppItem creates an application item with a generated UUID.
func NewAppItem(name, path string) Item {
	return Item{
		ID:     GenerateUUID(),
		Name:   name,
		Target: AppTarget{Path: path},
	}
}

// NewSiteItem creates a website item with a generated UUID.
func NewSiteItem(name, url string) Item {
	return Item{
		ID:     GenerateUUID(),
		Name:   name,
		Target: SiteTarget{URL: url},
	}
}

// NewFolderRefItem creates an item nesting the given folder.
func NewFolderRefItem(name, folderID string) Item {
	return Item{
		ID:     GenerateUUID(),
		Name:   name,
		Target: FolderTarget{FolderID: folderID},
	}
}

// Clone returns a deep copy of the item.
func (it Item) Clone() Item {
	out := it
	if it.LastUsed != nil {
		t := *it.LastUsed
		out.LastUsed = &t
	}
	return out
}

// Duplicate returns a deep copy of the item under a fresh UUID.
func (it Item) Duplicate() Item {
	out := it.Clone()
	out.ID = GenerateUUID()
	return out
}

// itemWire is the flat persisted shape of an Item. The type field selects
// which payload field is meaningful.
type itemWire struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Type     Kind       `json:"type"`
	Path     string     `json:"path,omitempty"`
	URL      string     `json:"url,omitempty"`
	IconHint string     `json:"iconHint,omitempty"`
	FolderID string     `json:"folderId,omitempty"`
	LastUsed *time.Time `json:"lastUsed,omitempty"`
}

// MarshalJSON flattens the item into its wire shape.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.Target == nil {
		return nil, fmt.Errorf("item %q has no target", it.ID)
	}

	w := itemWire{
		ID:       it.ID,
		Name:     it.Name,
		Type:     it.Target.Kind(),
		LastUsed: it.LastUsed,
	}

	switch t := it.Target.(type) {
	case AppTarget:
		w.Path = t.Path
	case SiteTarget:
		w.URL = t.URL
		w.IconHint = t.IconHint
	case FolderTarget:
		w.FolderID = t.FolderID
	default:
		return nil, fmt.Errorf("item %q has unsupported target %T", it.ID, it.Target)
	}

	return json.Marshal(w)
}

// UnmarshalJSON decodes the wire shape back into a typed target. An unknown
// type or a missing payload for the declared type is an error.
func (it *Item) UnmarshalJSON(data []byte) error {
	var w itemWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}

	switch w.Type {
	case KindApplication:
		if w.Path == "" {
			return fmt.Errorf("application item %q has no path", w.ID)
		}
		it.Target = AppTarget{Path: w.Path}
	case KindWebsite:
		if w.URL == "" {
			return fmt.Errorf("website item %q has no url", w.ID)
		}
		it.Target = SiteTarget{URL: w.URL, IconHint: w.IconHint}
	case KindFolderRef:
		if w.FolderID == "" {
			return fmt.Errorf("folder-reference item %q has no folderId", w.ID)
		}
		it.Target = FolderTarget{FolderID: w.FolderID}
	default:
		return fmt.Errorf("item %q has unknown type %q", w.ID, w.Type)
	}

	it.ID = w.ID
	it.Name = w.Name
	it.LastUsed = w.LastUsed
	return nil
}
