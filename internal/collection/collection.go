package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/shelftools/shelf/internal/logger"
	"github.com/shelftools/shelf/internal/model"
	"github.com/shelftools/shelf/internal/storage"
)

// BlobName is the name of the blob holding the serialized collection.
const BlobName = "folders"

// Store serves the folder collection out of an in-memory cache backed by a
// blob store. A Store is safe for concurrent use; two Stores over the same
// blob are not coordinated.
type Store struct {
	blobs storage.BlobStore
	log   logger.Logger

	mu        sync.Mutex
	folders   []model.Folder
	loaded    bool
	inflight  *loadCall
	observers []func()

	// writeMu is always acquired while mu is still held, so blob writes
	// happen in cache-update order while readers keep going.
	writeMu sync.Mutex
}

// loadCall is one in-flight blob read shared by every Load that arrives
// before it finishes.
type loadCall struct {
	done    chan struct{}
	folders []model.Folder
	err     error
}

// New creates a Store over the given blob store.
func New(blobs storage.BlobStore, log logger.Logger) *Store {
	if log == nil {
		log = logger.Nop()
	}
	return &Store{blobs: blobs, log: log}
}

// Load returns a copy of the collection. The first call reads the blob and
// reconciles orphaned references; concurrent callers share that one read.
// A missing or unreadable blob yields an empty collection, not an error.
func (s *Store) Load(ctx context.Context) ([]model.Folder, error) {
	s.mu.Lock()
	if s.loaded {
		out := model.CloneFolders(s.folders)
		s.mu.Unlock()
		return out, nil
	}
	if call := s.inflight; call != nil {
		s.mu.Unlock()
		return awaitLoad(ctx, call)
	}

	call := &loadCall{done: make(chan struct{})}
	s.inflight = call
	s.mu.Unlock()

	s.runLoad(ctx, call)
	return awaitLoad(ctx, call)
}

// awaitLoad waits for the shared read, honoring the waiter's own context.
func awaitLoad(ctx context.Context, call *loadCall) ([]model.Folder, error) {
	select {
	case <-call.done:
		if call.err != nil {
			return nil, call.err
		}
		return model.CloneFolders(call.folders), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *Store) runLoad(ctx context.Context, call *loadCall) {
	folders, dropped, err := s.read(ctx)

	s.mu.Lock()
	s.inflight = nil

	if err != nil {
		s.mu.Unlock()
		call.err = err
		close(call.done)
		return
	}

	if s.loaded {
		// a save landed while we were reading; it is newer than the blob
		call.folders = model.CloneFolders(s.folders)
		s.mu.Unlock()
		close(call.done)
		return
	}

	s.folders = folders
	s.loaded = true
	call.folders = model.CloneFolders(folders)

	if dropped == 0 {
		s.mu.Unlock()
		close(call.done)
		return
	}

	// orphaned references were dropped; persist the cleaned collection once
	snapshot := model.CloneFolders(folders)
	s.writeMu.Lock()
	s.mu.Unlock()
	if perr := s.persist(ctx, snapshot); perr != nil {
		s.log.Error("reconciled collection kept in memory only", logger.Error(perr))
	} else {
		s.log.Info("dropped orphaned folder references", logger.Int("count", dropped))
	}
	s.writeMu.Unlock()
	close(call.done)
}

func (s *Store) read(ctx context.Context) ([]model.Folder, int, error) {
	data, err := s.blobs.Get(ctx, BlobName)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return []model.Folder{}, 0, nil
		}
		return nil, 0, fmt.Errorf("load collection: %w", err)
	}

	var folders []model.Folder
	if err := json.Unmarshal(data, &folders); err != nil {
		s.log.Warn("collection blob is unreadable, starting empty", logger.Error(err))
		return []model.Folder{}, 0, nil
	}
	if folders == nil {
		folders = []model.Folder{}
	}

	folders, dropped := dropOrphanRefs(folders)
	return folders, dropped, nil
}

// dropOrphanRefs removes folder-reference items whose target folder no
// longer exists. Running it on clean data changes nothing.
func dropOrphanRefs(folders []model.Folder) ([]model.Folder, int) {
	ids := model.FolderIDSet(folders)

	dropped := 0
	for i := range folders {
		kept := make([]model.Item, 0, len(folders[i].Items))
		for _, it := range folders[i].Items {
			if ref, ok := it.Target.(model.FolderTarget); ok && !ids[ref.FolderID] {
				dropped++
				continue
			}
			kept = append(kept, it)
		}
		folders[i].Items = kept
	}
	return folders, dropped
}

// Save replaces the whole collection: the cache first, so readers
// immediately see the new state, then the blob. Sequential saves persist
// in the order they updated the cache.
func (s *Store) Save(ctx context.Context, folders []model.Folder) error {
	snapshot := model.CloneFolders(folders)

	s.mu.Lock()
	s.folders = model.CloneFolders(snapshot)
	s.loaded = true
	s.writeMu.Lock()
	s.mu.Unlock()

	err := s.persist(ctx, snapshot)
	s.writeMu.Unlock()

	if err != nil {
		return err
	}

	s.notify()
	return nil
}

func (s *Store) persist(ctx context.Context, folders []model.Folder) error {
	data, err := json.MarshalIndent(folders, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}
	if err := s.blobs.Set(ctx, BlobName, data); err != nil {
		return fmt.Errorf("persist collection: %w", err)
	}
	return nil
}

// Invalidate drops the cache; the next Load re-reads the blob and runs
// reconciliation again.
func (s *Store) Invalidate() {
	s.mu.Lock()
	s.folders = nil
	s.loaded = false
	s.mu.Unlock()

	s.notify()
}

// Subscribe registers a callback invoked after every successful Save and
// after every Invalidate. Callbacks run synchronously; keep them short.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *Store) notify() {
	s.mu.Lock()
	observers := append([]func(){}, s.observers...)
	s.mu.Unlock()

	for _, fn := range observers {
		fn()
	}
}
