package collection

import (
	"context"
	"fmt"

	"github.com/shelftools/shelf/internal/hierarchy"
	"github.com/shelftools/shelf/internal/model"
)

// update loads the collection, applies fn to the private copy, and saves
// the result as one write.
func (s *Store) update(ctx context.Context, fn func(folders []model.Folder) ([]model.Folder, error)) error {
	folders, err := s.Load(ctx)
	if err != nil {
		return err
	}

	updated, err := fn(folders)
	if err != nil {
		return err
	}

	return s.Save(ctx, updated)
}

// checkNesting rejects a reference from parentID to targetID that would
// break the tree: unknown target, self-nesting, a cycle, or a second
// parent. Callers are expected to offer only legal targets (see
// hierarchy.NestCandidates); this is the write-side backstop.
func checkNesting(folders []model.Folder, parentID, targetID string) error {
	g := hierarchy.Build(folders)

	if !g.Contains(targetID) {
		return fmt.Errorf("nest target %s: %w", targetID, ErrNotFound)
	}
	if targetID == parentID {
		return fmt.Errorf("folder %s cannot nest itself: %w", targetID, ErrConstraint)
	}
	if g.IsAncestor(targetID, parentID) {
		return fmt.Errorf("nesting %s under %s would create a cycle: %w", targetID, parentID, ErrConstraint)
	}
	if _, ok := g.Parent(targetID); ok {
		return fmt.Errorf("folder %s is already nested: %w", targetID, ErrConstraint)
	}
	return nil
}

// CreateFolder adds a new folder to the collection and returns it.
func (s *Store) CreateFolder(ctx context.Context, params model.NewFolderParams) (model.Folder, error) {
	folder := model.NewFolder(params)

	err := s.update(ctx, func(folders []model.Folder) ([]model.Folder, error) {
		for _, it := range folder.Items {
			if ref, ok := it.Target.(model.FolderTarget); ok {
				if err := checkNesting(folders, folder.ID, ref.FolderID); err != nil {
					return nil, err
				}
			}
		}
		return append(folders, folder), nil
	})
	if err != nil {
		return model.Folder{}, err
	}
	return folder, nil
}

// FolderUpdate carries whole-field replacements for UpdateFolder. Nil
// fields keep their current value.
type FolderUpdate struct {
	Name  *string
	Icon  *string
	Color *string
	Items *[]model.Item
}

// UpdateFolder applies every given field in one write.
func (s *Store) UpdateFolder(ctx context.Context, id string, update FolderUpdate) error {
	return s.update(ctx, func(folders []model.Folder) ([]model.Folder, error) {
		folder := model.FindFolder(folders, id)
		if folder == nil {
			return nil, fmt.Errorf("folder %s: %w", id, ErrNotFound)
		}

		if update.Items != nil {
			if err := checkReplacementItems(folders, folder, *update.Items); err != nil {
				return nil, err
			}
			items := make([]model.Item, len(*update.Items))
			for i, it := range *update.Items {
				items[i] = it.Clone()
			}
			folder.Items = items
		}
		if update.Name != nil {
			folder.Name = *update.Name
		}
		if update.Icon != nil {
			folder.Icon = *update.Icon
		}
		if update.Color != nil {
			folder.Color = *update.Color
		}

		return folders, nil
	})
}

// checkReplacementItems validates the folder references of a full item
// replacement. References the folder already holds stay legal; new ones
// must pass the nesting rules.
func checkReplacementItems(folders []model.Folder, folder *model.Folder, items []model.Item) error {
	current := make(map[string]bool)
	for _, it := range folder.Items {
		if ref, ok := it.Target.(model.FolderTarget); ok {
			current[ref.FolderID] = true
		}
	}

	added := make(map[string]bool)
	for _, it := range items {
		ref, ok := it.Target.(model.FolderTarget)
		if !ok {
			continue
		}
		if added[ref.FolderID] {
			return fmt.Errorf("folder %s referenced twice in one list: %w", ref.FolderID, ErrConstraint)
		}
		added[ref.FolderID] = true
		if current[ref.FolderID] {
			continue
		}
		if err := checkNesting(folders, folder.ID, ref.FolderID); err != nil {
			return err
		}
	}
	return nil
}

// DeleteFolder removes the folder and strips every reference to it from
// the rest of the collection in the same write.
func (s *Store) DeleteFolder(ctx context.Context, id string) error {
	return s.update(ctx, func(folders []model.Folder) ([]model.Folder, error) {
		if model.FindFolder(folders, id) == nil {
			return nil, fmt.Errorf("folder %s: %w", id, ErrNotFound)
		}

		out := make([]model.Folder, 0, len(folders)-1)
		for _, f := range folders {
			if f.ID == id {
				continue
			}
			kept := make([]model.Item, 0, len(f.Items))
			for _, it := range f.Items {
				if ref, ok := it.Target.(model.FolderTarget); ok && ref.FolderID == id {
					continue
				}
				kept = append(kept, it)
			}
			f.Items = kept
			out = append(out, f)
		}
		return out, nil
	})
}

// AddItem appends the item to the folder and returns it. An item arriving
// without an ID gets one.
func (s *Store) AddItem(ctx context.Context, folderID string, item model.Item) (model.Item, error) {
	if item.ID == "" {
		item.ID = model.GenerateUUID()
	}

	err := s.update(ctx, func(folders []model.Folder) ([]model.Folder, error) {
		folder := model.FindFolder(folders, folderID)
		if folder == nil {
			return nil, fmt.Errorf("folder %s: %w", folderID, ErrNotFound)
		}
		if ref, ok := item.Target.(model.FolderTarget); ok {
			if err := checkNesting(folders, folderID, ref.FolderID); err != nil {
				return nil, err
			}
		}
		folder.Items = append(folder.Items, item.Clone())
		return folders, nil
	})
	if err != nil {
		return model.Item{}, err
	}
	return item, nil
}

// RemoveItem deletes the item from the folder.
func (s *Store) RemoveItem(ctx context.Context, folderID, itemID string) error {
	return s.update(ctx, func(folders []model.Folder) ([]model.Folder, error) {
		folder := model.FindFolder(folders, folderID)
		if folder == nil {
			return nil, fmt.Errorf("folder %s: %w", folderID, ErrNotFound)
		}

		idx := itemIndex(folder, itemID)
		if idx < 0 {
			return nil, fmt.Errorf("item %s: %w", itemID, ErrNotFound)
		}

		folder.Items = append(folder.Items[:idx], folder.Items[idx+1:]...)
		return folders, nil
	})
}

// DuplicateItem copies the item under a fresh ID, placing the copy right
// after the original. Folder references cannot be duplicated: the copy
// would nest the target a second time.
func (s *Store) DuplicateItem(ctx context.Context, folderID, itemID string) (model.Item, error) {
	var dup model.Item

	err := s.update(ctx, func(folders []model.Folder) ([]model.Folder, error) {
		folder := model.FindFolder(folders, folderID)
		if folder == nil {
			return nil, fmt.Errorf("folder %s: %w", folderID, ErrNotFound)
		}

		idx := itemIndex(folder, itemID)
		if idx < 0 {
			return nil, fmt.Errorf("item %s: %w", itemID, ErrNotFound)
		}

		item := folder.Items[idx]
		if _, ok := item.Target.(model.FolderTarget); ok {
			return nil, fmt.Errorf("duplicating reference to folder would nest it twice: %w", ErrConstraint)
		}

		dup = item.Duplicate()
		folder.Items = append(folder.Items, model.Item{})
		copy(folder.Items[idx+2:], folder.Items[idx+1:])
		folder.Items[idx+1] = dup
		return folders, nil
	})
	if err != nil {
		return model.Item{}, err
	}
	return dup, nil
}

// MoveItem removes the item from the source folder and appends it to the
// destination under a fresh ID. Folder references are re-homed: the
// removal happens first, so moving a nested folder between parents is one
// operation.
func (s *Store) MoveItem(ctx context.Context, srcFolderID, itemID, dstFolderID string) (model.Item, error) {
	var moved model.Item

	err := s.update(ctx, func(folders []model.Folder) ([]model.Folder, error) {
		src := model.FindFolder(folders, srcFolderID)
		if src == nil {
			return nil, fmt.Errorf("source folder %s: %w", srcFolderID, ErrNotFound)
		}
		dst := model.FindFolder(folders, dstFolderID)
		if dst == nil {
			return nil, fmt.Errorf("destination folder %s: %w", dstFolderID, ErrNotFound)
		}

		idx := itemIndex(src, itemID)
		if idx < 0 {
			return nil, fmt.Errorf("item %s: %w", itemID, ErrNotFound)
		}

		item := src.Items[idx]
		src.Items = append(src.Items[:idx], src.Items[idx+1:]...)

		if ref, ok := item.Target.(model.FolderTarget); ok {
			if err := checkNesting(folders, dstFolderID, ref.FolderID); err != nil {
				return nil, err
			}
		}

		moved = item.Duplicate()
		dst.Items = append(dst.Items, moved)
		return folders, nil
	})
	if err != nil {
		return model.Item{}, err
	}
	return moved, nil
}

// ReplaceAll swaps in a whole new collection, e.g. after a replace-mode
// import.
func (s *Store) ReplaceAll(ctx context.Context, folders []model.Folder) error {
	return s.Save(ctx, folders)
}

func itemIndex(folder *model.Folder, itemID string) int {
	for i := range folder.Items {
		if folder.Items[i].ID == itemID {
			return i
		}
	}
	return -1
}
