package store

import (
	"time"

	"github.com/evanhall/linkvault/internal/model"
)

// AddTodo assigns a fresh id and timestamps, appends and persists.
// BookmarkIDs are kept as given; they are not validated against
// existing bookmarks.
func (s *Store) AddTodo(d model.TodoDraft) model.TodoItem {
	now := time.Now()
	ids := d.BookmarkIDs
	if ids == nil {
		ids = []string{}
	}

	t := model.TodoItem{
		ID:           s.newID(),
		Title:        d.Title,
		Description:  d.Description,
		Completed:    d.Completed,
		CollectionID: d.CollectionID,
		BookmarkIDs:  ids,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.snap.Todos = append(s.snap.Todos, t)
	s.persist()
	return t
}

// UpdateTodo merges the given fields onto the todo and refreshes
// UpdatedAt. Unknown ids are a silent no-op.
func (s *Store) UpdateTodo(id string, u model.TodoUpdate) {
	for i := range s.snap.Todos {
		if s.snap.Todos[i].ID != id {
			continue
		}
		t := &s.snap.Todos[i]
		if u.Title != nil {
			t.Title = *u.Title
		}
		if u.Description != nil {
			t.Description = *u.Description
		}
		if u.Completed != nil {
			t.Completed = *u.Completed
		}
		if u.CollectionID != nil {
			t.CollectionID = *u.CollectionID
		}
		if u.BookmarkIDs != nil {
			t.BookmarkIDs = u.BookmarkIDs
		}
		t.UpdatedAt = time.Now()
		s.persist()
		return
	}
}

// DeleteTodo removes the todo unconditionally.
func (s *Store) DeleteTodo(id string) model.DeleteResult {
	kept := s.snap.Todos[:0]
	for _, t := range s.snap.Todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.snap.Todos = kept
	s.persist()
	return model.DeleteResult{Success: true}
}
