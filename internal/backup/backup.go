// Package backup serializes the collection into a versioned export
// document and brings documents back in via merge or replace.
package backup

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/shelftools/shelf/internal/config"
	"github.com/shelftools/shelf/internal/model"
)

// Version is the current export document version.
const Version = 1

var (
	// ErrInvalidDocument reports an import payload that failed structural
	// validation. Nothing has been mutated when it is returned.
	ErrInvalidDocument = errors.New("invalid backup document")

	// ErrFolderNotFound reports an export request for a folder id that is
	// not in the collection.
	ErrFolderNotFound = errors.New("folder not found")
)

// Document is the export wire format. Preferences is a snapshot of the
// user's display settings at export time; it rides along so a restore on
// a fresh machine can pick them up.
type Document struct {
	Version     int                 `json:"version"`
	ExportedAt  string              `json:"exportedAt"`
	Folders     []model.Folder      `json:"folders"`
	Preferences *config.Preferences `json:"preferences,omitempty"`
}

// Export packages the entire collection.
func Export(folders []model.Folder, prefs *config.Preferences, now time.Time) Document {
	return Document{
		Version:     Version,
		ExportedAt:  now.UTC().Format(time.RFC3339),
		Folders:     model.CloneFolders(folders),
		Preferences: prefs,
	}
}

// ExportFolder packages one folder plus every folder it transitively
// nests. Each reachable folder appears once, the root first, the rest in
// discovery order.
func ExportFolder(id string, all []model.Folder, prefs *config.Preferences, now time.Time) (Document, error) {
	root := model.FindFolder(all, id)
	if root == nil {
		return Document{}, fmt.Errorf("export folder %s: %w", id, ErrFolderNotFound)
	}

	included := map[string]bool{root.ID: true}
	closure := []model.Folder{root.Clone()}

	queue := []model.Folder{*root}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, it := range current.Items {
			ref, ok := it.Target.(model.FolderTarget)
			if !ok || included[ref.FolderID] {
				continue
			}
			included[ref.FolderID] = true
			if nested := model.FindFolder(all, ref.FolderID); nested != nil {
				closure = append(closure, nested.Clone())
				queue = append(queue, *nested)
			}
		}
	}

	return Document{
		Version:     Version,
		ExportedAt:  now.UTC().Format(time.RFC3339),
		Folders:     closure,
		Preferences: prefs,
	}, nil
}

// Encode renders the document as indented JSON, ready for a file or the
// clipboard.
func Encode(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return data, nil
}

// Decode validates the payload against the document schema and then
// decodes it. Validation runs before any model types are touched, so a
// bad payload can never leave a half-imported collection behind.
func Decode(data []byte) (Document, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return Document{}, fmt.Errorf("%w: not valid JSON: %v", ErrInvalidDocument, err)
	}
	if err := documentSchema().Validate(inst); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if doc.Folders == nil {
		doc.Folders = []model.Folder{}
	}
	return doc, nil
}

// Merge appends the imported folders whose ids are new. Folders already
// in the collection keep their existing content even when the import
// carries a different version of them.
func Merge(existing, imported []model.Folder) (merged []model.Folder, added int) {
	present := model.FolderIDSet(existing)

	merged = model.CloneFolders(existing)
	for _, f := range imported {
		if present[f.ID] {
			continue
		}
		present[f.ID] = true
		merged = append(merged, f.Clone())
		added++
	}
	return merged, added
}

// Confirmer answers yes/no before a destructive operation proceeds.
// Replace-mode imports and duplicate removals go through it.
type Confirmer interface {
	Confirm(prompt string) (bool, error)
}

// ConfirmerFunc adapts a function to the Confirmer interface.
type ConfirmerFunc func(prompt string) (bool, error)

// Confirm calls the wrapped function.
func (f ConfirmerFunc) Confirm(prompt string) (bool, error) { return f(prompt) }

// schemaJSON is the structural contract an import must meet: version,
// a folders sequence, and correctly-shaped folders and items. Payload
// consistency beyond shape (e.g. a website carrying a url) is enforced
// by the model decoder afterwards.
const schemaJSON = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["version", "folders"],
  "properties": {
    "version": {"const": 1},
    "exportedAt": {"type": "string"},
    "folders": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "items"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string"},
          "items": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["id", "name", "type"],
              "properties": {
                "id": {"type": "string", "minLength": 1},
                "name": {"type": "string"},
                "type": {"enum": ["application", "website", "folder-reference"]},
                "path": {"type": "string"},
                "url": {"type": "string"},
                "iconHint": {"type": "string"},
                "folderId": {"type": "string"},
                "lastUsed": {"type": "string"}
              }
            }
          },
          "icon": {"type": "string"},
          "color": {"type": "string"},
          "lastUsed": {"type": "string"}
        }
      }
    },
    "preferences": {"type": "object"}
  }
}`

var (
	schemaOnce sync.Once
	schema     *jsonschema.Schema
)

// documentSchema compiles the embedded schema once.
func documentSchema() *jsonschema.Schema {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schemaJSON))
		if err != nil {
			panic(err)
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("backup.schema.json", doc); err != nil {
			panic(err)
		}
		schema = compiler.MustCompile("backup.schema.json")
	})
	return schema
}
