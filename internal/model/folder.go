package model

import "time"

// Folder is a named collection of items. Folders live in one flat list;
// nesting is expressed by folder-reference items, not by parent pointers.
type Folder struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Items    []Item     `json:"items"`
	Icon     string     `json:"icon,omitempty"`
	Color    string     `json:"color,omitempty"`
	LastUsed *time.Time `json:"lastUsed,omitempty"`
}

// NewFolderParams holds parameters for creating a new Folder.
type NewFolderParams struct {
	Name  string
	Icon  string
	Color string
	Items []Item
}

// NewFolder creates a Folder with a generated UUID.
func NewFolder(params NewFolderParams) Folder {
	items := params.Items
	if items == nil {
		items = []Item{}
	}

	return Folder{
		ID:    GenerateUUID(),
		Name:  params.Name,
		Items: items,
		Icon:  params.Icon,
		Color: params.Color,
	}
}

// Clone returns a deep copy of the folder and its items.
func (f Folder) Clone() Folder {
	out := f
	if f.LastUsed != nil {
		t := *f.LastUsed
		out.LastUsed = &t
	}
	out.Items = make([]Item, len(f.Items))
	for i, it := range f.Items {
		out.Items[i] = it.Clone()
	}
	return out
}

// ItemByID finds an item in the folder by ID, returns nil if not found.
func (f *Folder) ItemByID(id string) *Item {
	for i := range f.Items {
		if f.Items[i].ID == id {
			return &f.Items[i]
		}
	}
	return nil
}
