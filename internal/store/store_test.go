package store

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanhall/linkvault/internal/model"
	"github.com/evanhall/linkvault/internal/storage"
)

// newTestStore builds a Store over a fresh in-memory transport.
func newTestStore(t *testing.T) (*Store, *storage.Memory) {
	t.Helper()
	transport := storage.NewMemory()
	s := New(Config{Transport: transport})
	return s, transport
}

func TestAddBookmark_AssignsIDAndTimestamps(t *testing.T) {
	s, _ := newTestStore(t)

	b := s.AddBookmark(model.BookmarkDraft{Title: "Go Blog", URL: "https://go.dev/blog"})

	require.NotEmpty(t, b.ID)
	assert.True(t, b.CreatedAt.Equal(b.UpdatedAt), "createdAt and updatedAt should match at creation")
	assert.Equal(t, model.StatusUnread, b.Status, "status should default to unread")
	assert.NotNil(t, b.Tags)

	b2 := s.AddBookmark(model.BookmarkDraft{Title: "Go Docs", URL: "https://go.dev/doc"})
	assert.NotEqual(t, b.ID, b2.ID)
	assert.Len(t, s.Bookmarks(), 2)
}

func TestUpdateBookmark_PreservesUnspecifiedFields(t *testing.T) {
	s, _ := newTestStore(t)

	b := s.AddBookmark(model.BookmarkDraft{Title: "A", URL: "https://a.example"})

	time.Sleep(2 * time.Millisecond)
	reading := model.StatusReading
	s.UpdateBookmark(b.ID, model.BookmarkUpdate{Status: &reading})

	got := s.Bookmarks()[0]
	assert.Equal(t, "A", got.Title)
	assert.Equal(t, model.StatusReading, got.Status)
	assert.True(t, got.UpdatedAt.After(b.UpdatedAt), "updatedAt should move forward")
	assert.True(t, got.CreatedAt.Equal(b.CreatedAt), "createdAt should not change")
}

func TestUpdateBookmark_UnknownIDIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddBookmark(model.BookmarkDraft{Title: "A", URL: "https://a.example"})

	title := "B"
	s.UpdateBookmark("no-such-id", model.BookmarkUpdate{Title: &title})

	assert.Equal(t, "A", s.Bookmarks()[0].Title)
}

func TestDeleteBookmark_Unconditional(t *testing.T) {
	s, _ := newTestStore(t)
	b := s.AddBookmark(model.BookmarkDraft{Title: "A", URL: "https://a.example"})

	res := s.DeleteBookmark(b.ID)
	assert.True(t, res.Success)
	assert.Empty(t, s.Bookmarks())

	// Unknown id deletes trivially.
	res = s.DeleteBookmark("no-such-id")
	assert.True(t, res.Success)
}

func TestDeleteTodo_Unconditional(t *testing.T) {
	s, _ := newTestStore(t)
	todo := s.AddTodo(model.TodoDraft{Title: "read later"})

	res := s.DeleteTodo(todo.ID)
	assert.True(t, res.Success)
	assert.Empty(t, s.Todos())
}

func TestUpdateTodo_MergesAndStamps(t *testing.T) {
	s, _ := newTestStore(t)
	todo := s.AddTodo(model.TodoDraft{Title: "sort bookmarks", Description: "the whole backlog"})

	time.Sleep(2 * time.Millisecond)
	done := true
	s.UpdateTodo(todo.ID, model.TodoUpdate{Completed: &done})

	got := s.Todos()[0]
	assert.True(t, got.Completed)
	assert.Equal(t, "the whole backlog", got.Description)
	assert.True(t, got.UpdatedAt.After(todo.UpdatedAt))
}

func TestPersistFailure_KeepsInMemoryState(t *testing.T) {
	s, transport := newTestStore(t)
	s.AddBookmark(model.BookmarkDraft{Title: "A", URL: "https://a.example"})

	transport.FailWrites(errors.New("quota exceeded"))
	s.AddBookmark(model.BookmarkDraft{Title: "B", URL: "https://b.example"})

	// The mutation survives in memory even though the save failed.
	assert.Len(t, s.Bookmarks(), 2)

	// A reload sees only the last successful save.
	reloaded := New(Config{Transport: transport})
	assert.Len(t, reloaded.Bookmarks(), 1)
}

func TestLoad_CorruptBlobFallsBack(t *testing.T) {
	transport := storage.NewMemory()
	transport.Seed([]byte("{not json"))

	s := New(Config{Transport: transport})
	assert.Empty(t, s.Bookmarks())
	assert.NotNil(t, s.Collections())

	seeded := New(Config{
		Transport: transport,
		Seed: func() *model.Snapshot {
			snap := model.EmptySnapshot()
			snap.Tags = append(snap.Tags, model.Tag{ID: "t1", Name: "seeded"})
			return snap
		},
	})
	require.Len(t, seeded.Tags(), 1)
	assert.Equal(t, "seeded", seeded.Tags()[0].Name)
}

func TestLoad_AbsentBlobUsesSeed(t *testing.T) {
	transport := storage.NewMemory()
	s := New(Config{
		Transport: transport,
		Seed: func() *model.Snapshot {
			snap := model.EmptySnapshot()
			snap.Kinds = append(snap.Kinds, model.Kind{ID: "k1", Name: "Articles"})
			return snap
		},
	})

	require.Len(t, s.Kinds(), 1)
}

func TestClearAll_EmptiesAndPersists(t *testing.T) {
	s, transport := newTestStore(t)
	s.AddBookmark(model.BookmarkDraft{Title: "A", URL: "https://a.example"})
	s.AddCollection(model.CollectionDraft{Name: "Reading"})
	s.AddKind(model.KindDraft{Name: "Articles"})
	s.AddTag(model.TagDraft{Name: "later"})
	s.AddTodo(model.TodoDraft{Title: "triage"})

	s.ClearAll()

	assert.Empty(t, s.Bookmarks())
	assert.Empty(t, s.Collections())
	assert.Empty(t, s.Kinds())
	assert.Empty(t, s.Tags())
	assert.Empty(t, s.Todos())

	// Simulated reload reflects the cleared state.
	reloaded := New(Config{Transport: transport})
	assert.Empty(t, reloaded.Bookmarks())
	assert.Empty(t, reloaded.Todos())
}

func TestResetToSeed_ReplacesSnapshot(t *testing.T) {
	transport := storage.NewMemory()
	seedFn := func() *model.Snapshot {
		snap := model.EmptySnapshot()
		snap.Bookmarks = append(snap.Bookmarks, model.Bookmark{
			ID: "b1", Title: "Starter", URL: "https://example.com",
			Tags: []string{}, Status: model.StatusUnread,
			CreatedAt: time.Now(), UpdatedAt: time.Now(),
		})
		return snap
	}

	s := New(Config{Transport: transport, Seed: seedFn})
	s.AddBookmark(model.BookmarkDraft{Title: "Extra", URL: "https://extra.example"})
	require.Len(t, s.Bookmarks(), 2)

	s.ResetToSeed()
	require.Len(t, s.Bookmarks(), 1)
	assert.Equal(t, "Starter", s.Bookmarks()[0].Title)
}

func TestStats_Counts(t *testing.T) {
	s, _ := newTestStore(t)
	s.AddBookmark(model.BookmarkDraft{Title: "A", URL: "https://a.example"})
	s.AddBookmark(model.BookmarkDraft{Title: "B", URL: "https://b.example", Status: model.StatusReading})
	s.AddTodo(model.TodoDraft{Title: "open one"})
	s.AddTodo(model.TodoDraft{Title: "done one", Completed: true})

	st := s.Stats()
	assert.Equal(t, 2, st.Bookmarks)
	assert.Equal(t, 2, st.Todos)
	assert.Equal(t, 1, st.OpenTodos)
	assert.Equal(t, 1, st.ByStatus["unread"])
	assert.Equal(t, 1, st.ByStatus["reading"])
}
