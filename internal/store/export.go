package store

import (
	"time"

	"github.com/evanhall/linkvault/internal/model"
)

// ExportBundle snapshots the five collections for interchange with
// another instance. ExportDate is stamped at call time.
func (s *Store) ExportBundle() *model.ExportBundle {
	return &model.ExportBundle{
		Bookmarks:   append([]model.Bookmark{}, s.snap.Bookmarks...),
		Collections: append([]model.Collection{}, s.snap.Collections...),
		Kinds:       append([]model.Kind{}, s.snap.Kinds...),
		Tags:        append([]model.Tag{}, s.snap.Tags...),
		Todos:       append([]model.TodoItem{}, s.snap.Todos...),
		ExportDate:  time.Now().UTC().Format(time.RFC3339),
	}
}

// ImportBundle merges a bundle into the store; it never replaces.
// Bookmarks deduplicate by exact URL; collections, kinds and tags by
// exact name; todos always append. Imported records keep their ids
// verbatim, so re-importing a bundle exported from this same store can
// introduce duplicate ids when names have changed in between. Known
// limitation, inherited from the interchange format.
func (s *Store) ImportBundle(b *model.ExportBundle) {
	urls := make(map[string]bool, len(s.snap.Bookmarks))
	for _, bm := range s.snap.Bookmarks {
		urls[bm.URL] = true
	}
	for _, bm := range b.Bookmarks {
		if urls[bm.URL] {
			continue
		}
		if bm.Tags == nil {
			bm.Tags = []string{}
		}
		s.snap.Bookmarks = append(s.snap.Bookmarks, bm)
		urls[bm.URL] = true
	}

	collectionNames := make(map[string]bool, len(s.snap.Collections))
	for _, c := range s.snap.Collections {
		collectionNames[c.Name] = true
	}
	for _, c := range b.Collections {
		if collectionNames[c.Name] {
			continue
		}
		s.snap.Collections = append(s.snap.Collections, c)
		collectionNames[c.Name] = true
	}

	kindNames := make(map[string]bool, len(s.snap.Kinds))
	for _, k := range s.snap.Kinds {
		kindNames[k.Name] = true
	}
	for _, k := range b.Kinds {
		if kindNames[k.Name] {
			continue
		}
		s.snap.Kinds = append(s.snap.Kinds, k)
		kindNames[k.Name] = true
	}

	tagNames := make(map[string]bool, len(s.snap.Tags))
	for _, t := range s.snap.Tags {
		tagNames[t.Name] = true
	}
	for _, t := range b.Tags {
		if tagNames[t.Name] {
			continue
		}
		s.snap.Tags = append(s.snap.Tags, t)
		tagNames[t.Name] = true
	}

	for _, t := range b.Todos {
		if t.BookmarkIDs == nil {
			t.BookmarkIDs = []string{}
		}
		s.snap.Todos = append(s.snap.Todos, t)
	}

	s.persist()
}

// ImportParsed merges drafts recovered from a Netscape bookmark file.
// Draft collections reference each other by path-joined name; this is
// where those placeholders resolve to real ids. Collections deduplicate
// by name against existing ones, bookmarks by URL.
func (s *Store) ImportParsed(bookmarks []model.BookmarkDraft, collections []model.CollectionDraft) (added int) {
	nameToID := make(map[string]string, len(s.snap.Collections))
	for _, c := range s.snap.Collections {
		nameToID[c.Name] = c.ID
	}

	for _, d := range collections {
		if _, ok := nameToID[d.Name]; ok {
			continue
		}
		c := model.Collection{
			ID:       s.newID(),
			Name:     d.Name,
			ParentID: nameToID[d.ParentID],
			Order:    d.Order,
		}
		s.snap.Collections = append(s.snap.Collections, c)
		nameToID[c.Name] = c.ID
	}

	urls := make(map[string]bool, len(s.snap.Bookmarks))
	for _, bm := range s.snap.Bookmarks {
		urls[bm.URL] = true
	}

	now := time.Now()
	for _, d := range bookmarks {
		if urls[d.URL] {
			continue
		}
		tags := d.Tags
		if tags == nil {
			tags = []string{}
		}
		status := d.Status
		if status == "" {
			status = model.StatusUnread
		}
		bm := model.Bookmark{
			ID:           s.newID(),
			Title:        d.Title,
			URL:          d.URL,
			Description:  d.Description,
			Thumbnail:    d.Thumbnail,
			Favicon:      d.Favicon,
			CollectionID: nameToID[d.CollectionID],
			KindID:       d.KindID,
			Tags:         tags,
			Status:       status,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		s.snap.Bookmarks = append(s.snap.Bookmarks, bm)
		urls[bm.URL] = true
		added++
	}

	s.persist()
	return added
}

// ResetToSeed replaces the whole snapshot with the configured seed data
// (empty when no seed is configured). Destructive; gating the operation
// behind a confirmation is the caller's responsibility.
func (s *Store) ResetToSeed() {
	s.snap = s.fallback()
	s.persist()
}

// ClearAll replaces the whole snapshot with empty collections.
// Destructive; gating is the caller's responsibility.
func (s *Store) ClearAll() {
	s.snap = model.EmptySnapshot()
	s.persist()
}
