package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanhall/linkvault/internal/model"
)

func TestExportBundle_StampsExportDate(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddBookmark(model.BookmarkDraft{Title: "A", URL: "https://a.example"})

	bundle := s.ExportBundle()
	require.Len(t, bundle.Bookmarks, 1)

	_, err := time.Parse(time.RFC3339, bundle.ExportDate)
	assert.NoError(t, err, "exportDate should be ISO-8601")
}

func TestImportBundle_DeduplicatesByURL(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddBookmark(model.BookmarkDraft{Title: "Existing", URL: "https://a.example"})

	now := time.Now()
	s.ImportBundle(&model.ExportBundle{
		Bookmarks: []model.Bookmark{
			{ID: "x1", Title: "Duplicate", URL: "https://a.example", Tags: []string{}, Status: model.StatusUnread, CreatedAt: now, UpdatedAt: now},
		},
	})
	assert.Len(t, s.Bookmarks(), 1, "matching URL should be skipped")

	s.ImportBundle(&model.ExportBundle{
		Bookmarks: []model.Bookmark{
			{ID: "x2", Title: "Fresh", URL: "https://b.example", Tags: []string{}, Status: model.StatusUnread, CreatedAt: now, UpdatedAt: now},
		},
	})
	require.Len(t, s.Bookmarks(), 2)
	// Imported ids are kept verbatim.
	assert.Equal(t, "x2", s.Bookmarks()[1].ID)
}

func TestImportBundle_DeduplicatesNamedEntitiesAndAppendsTodos(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddCollection(model.CollectionDraft{Name: "Reading"})
	s.AddKind(model.KindDraft{Name: "Articles"})
	s.AddTag(model.TagDraft{Name: "later"})
	s.AddTodo(model.TodoDraft{Title: "triage"})

	now := time.Now()
	bundle := &model.ExportBundle{
		Collections: []model.Collection{
			{ID: "c1", Name: "Reading"},
			{ID: "c2", Name: "Archive"},
		},
		Kinds: []model.Kind{{ID: "k1", Name: "Articles"}},
		Tags:  []model.Tag{{ID: "t1", Name: "later"}, {ID: "t2", Name: "soon"}},
		Todos: []model.TodoItem{
			{ID: "d1", Title: "triage", BookmarkIDs: []string{}, CreatedAt: now, UpdatedAt: now},
		},
	}
	s.ImportBundle(bundle)

	assert.Len(t, s.Collections(), 2, "name match skipped, new name appended")
	assert.Len(t, s.Kinds(), 1)
	assert.Len(t, s.Tags(), 2)
	assert.Len(t, s.Todos(), 2, "todos always append, even with equal titles")
}

func TestImportParsed_ResolvesPlaceholderNames(t *testing.T) {
	s, _ := newTestStore(t)

	collections := []model.CollectionDraft{
		{Name: "Imported", ParentID: "", Order: 0},
		{Name: "Imported > Sub", ParentID: "Imported", Order: 1},
	}
	bookmarks := []model.BookmarkDraft{
		{Title: "Nested", URL: "https://nested.example", CollectionID: "Imported > Sub", Tags: []string{}, Status: model.StatusUnread},
		{Title: "Loose", URL: "https://loose.example", Tags: []string{}, Status: model.StatusUnread},
	}

	added := s.ImportParsed(bookmarks, collections)
	assert.Equal(t, 2, added)
	require.Len(t, s.Collections(), 2)

	var root, sub model.Collection
	for _, c := range s.Collections() {
		switch c.Name {
		case "Imported":
			root = c
		case "Imported > Sub":
			sub = c
		}
	}
	require.NotEmpty(t, root.ID)
	assert.Equal(t, root.ID, sub.ParentID, "placeholder parent name should resolve to the created id")

	for _, b := range s.Bookmarks() {
		switch b.Title {
		case "Nested":
			assert.Equal(t, sub.ID, b.CollectionID)
		case "Loose":
			assert.Empty(t, b.CollectionID)
		}
	}

	// Importing the same file again is a no-op: collections deduplicate
	// by name, bookmarks by URL.
	added = s.ImportParsed(bookmarks, collections)
	assert.Equal(t, 0, added)
	assert.Len(t, s.Collections(), 2)
	assert.Len(t, s.Bookmarks(), 2)
}
