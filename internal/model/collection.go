package model

// FindFolder finds a folder in the flat list by ID, returns nil if not found.
func FindFolder(folders []Folder, id string) *Folder {
	for i := range folders {
		if folders[i].ID == id {
			return &folders[i]
		}
	}
	return nil
}

// CloneFolders returns a deep copy of the whole collection.
func CloneFolders(folders []Folder) []Folder {
	out := make([]Folder, len(folders))
	for i, f := range folders {
		out[i] = f.Clone()
	}
	return out
}

// FolderIDSet returns the set of folder IDs present in the collection.
func FolderIDSet(folders []Folder) map[string]bool {
	ids := make(map[string]bool, len(folders))
	for _, f := range folders {
		ids[f.ID] = true
	}
	return ids
}
