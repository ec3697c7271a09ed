// Package snapshot converts between the persisted flat representation and
// the in-memory entity collections, migrating legacy-schema blobs on read.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/evanhall/linkvault/internal/model"
)

// persistedBookmark tolerates the pre-rename schema in which collections
// were called categories and bookmarks carried a categoryId.
type persistedBookmark struct {
	model.Bookmark
	CategoryID string `json:"categoryId,omitempty"`
}

type persistedTodo struct {
	model.TodoItem
	CategoryID string `json:"categoryId,omitempty"`
}

type persistedSnapshot struct {
	Bookmarks   []persistedBookmark `json:"bookmarks"`
	Collections []model.Collection  `json:"collections"`
	Categories  []model.Collection  `json:"categories"`
	Kinds       []model.Kind        `json:"kinds"`
	Tags        []model.Tag         `json:"tags"`
	Todos       []persistedTodo     `json:"todos"`
}

// Serialize produces the storable form of a snapshot. Timestamps
// serialize via their natural RFC 3339 string form.
func Serialize(s *model.Snapshot) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("serialize snapshot: %w", err)
	}
	return data, nil
}

// Deserialize parses a previously-serialized blob. It accepts the legacy
// schema (categories instead of collections, categoryId on bookmarks and
// todos, absent kinds) and rehydrates timestamps. Fallback on error is
// the caller's decision.
func Deserialize(raw []byte) (*model.Snapshot, error) {
	var p persistedSnapshot
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("deserialize snapshot: %w", err)
	}

	s := model.EmptySnapshot()

	for _, b := range p.Bookmarks {
		bm := b.Bookmark
		if bm.CollectionID == "" {
			bm.CollectionID = b.CategoryID
		}
		if bm.Tags == nil {
			bm.Tags = []string{}
		}
		s.Bookmarks = append(s.Bookmarks, bm)
	}

	collections := p.Collections
	if collections == nil {
		collections = p.Categories
	}
	s.Collections = append(s.Collections, collections...)
	s.Kinds = append(s.Kinds, p.Kinds...)
	s.Tags = append(s.Tags, p.Tags...)

	for _, t := range p.Todos {
		todo := t.TodoItem
		if todo.CollectionID == "" {
			todo.CollectionID = t.CategoryID
		}
		if todo.BookmarkIDs == nil {
			todo.BookmarkIDs = []string{}
		}
		s.Todos = append(s.Todos, todo)
	}

	return s, nil
}
