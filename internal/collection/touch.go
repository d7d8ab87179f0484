package collection

import (
	"context"
	"time"

	"github.com/shelftools/shelf/internal/model"
)

// TouchFolder stamps the folder's LastUsed. A missing id is a silent
// no-op: access recording never fails the path that triggered it.
func (s *Store) TouchFolder(ctx context.Context, id string) error {
	now := time.Now()
	return s.touch(ctx, func(folders []model.Folder) bool {
		folder := model.FindFolder(folders, id)
		if folder == nil {
			return false
		}
		folder.LastUsed = &now
		return true
	})
}

// TouchItem stamps the item's LastUsed. Missing folder or item is a
// silent no-op.
func (s *Store) TouchItem(ctx context.Context, folderID, itemID string) error {
	now := time.Now()
	return s.touch(ctx, func(folders []model.Folder) bool {
		folder := model.FindFolder(folders, folderID)
		if folder == nil {
			return false
		}
		item := folder.ItemByID(itemID)
		if item == nil {
			return false
		}
		item.LastUsed = &now
		return true
	})
}

// touch applies a stamp and saves only when something was stamped.
func (s *Store) touch(ctx context.Context, apply func([]model.Folder) bool) error {
	folders, err := s.Load(ctx)
	if err != nil {
		return err
	}
	if !apply(folders) {
		return nil
	}
	return s.Save(ctx, folders)
}
