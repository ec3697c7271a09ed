package store

import (
	"time"

	"github.com/evanhall/linkvault/internal/model"
)

// AddBookmark assigns a fresh id and timestamps, appends and persists.
// An empty draft status defaults to unread.
func (s *Store) AddBookmark(d model.BookmarkDraft) model.Bookmark {
	now := time.Now()
	tags := d.Tags
	if tags == nil {
		tags = []string{}
	}
	status := d.Status
	if status == "" {
		status = model.StatusUnread
	}

	b := model.Bookmark{
		ID:           s.newID(),
		Title:        d.Title,
		URL:          d.URL,
		Description:  d.Description,
		Thumbnail:    d.Thumbnail,
		Favicon:      d.Favicon,
		CollectionID: d.CollectionID,
		KindID:       d.KindID,
		Tags:         tags,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.snap.Bookmarks = append(s.snap.Bookmarks, b)
	s.persist()
	return b
}

// UpdateBookmark merges the given fields onto the bookmark and refreshes
// UpdatedAt. Unknown ids are a silent no-op.
func (s *Store) UpdateBookmark(id string, u model.BookmarkUpdate) {
	for i := range s.snap.Bookmarks {
		if s.snap.Bookmarks[i].ID != id {
			continue
		}
		b := &s.snap.Bookmarks[i]
		if u.Title != nil {
			b.Title = *u.Title
		}
		if u.URL != nil {
			b.URL = *u.URL
		}
		if u.Description != nil {
			b.Description = *u.Description
		}
		if u.Thumbnail != nil {
			b.Thumbnail = *u.Thumbnail
		}
		if u.Favicon != nil {
			b.Favicon = *u.Favicon
		}
		if u.CollectionID != nil {
			b.CollectionID = *u.CollectionID
		}
		if u.KindID != nil {
			b.KindID = *u.KindID
		}
		if u.Tags != nil {
			b.Tags = u.Tags
		}
		if u.Status != nil {
			b.Status = *u.Status
		}
		b.UpdatedAt = time.Now()
		s.persist()
		return
	}
}

// DeleteBookmark removes the bookmark unconditionally. TodoItem
// bookmark lists are not cleaned up; that staleness is accepted.
func (s *Store) DeleteBookmark(id string) model.DeleteResult {
	kept := s.snap.Bookmarks[:0]
	for _, b := range s.snap.Bookmarks {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.snap.Bookmarks = kept
	s.persist()
	return model.DeleteResult{Success: true}
}
