package store

import (
	"fmt"

	"github.com/evanhall/linkvault/internal/model"
)

// AddCollection assigns a fresh id, appends and persists. Name
// uniqueness is not enforced here; only import merge deduplicates by
// name.
func (s *Store) AddCollection(d model.CollectionDraft) model.Collection {
	c := model.Collection{
		ID:       s.newID(),
		Name:     d.Name,
		ParentID: d.ParentID,
		Order:    d.Order,
	}
	s.snap.Collections = append(s.snap.Collections, c)
	s.persist()
	return c
}

// UpdateCollection merges the given fields onto the collection. Unknown
// ids are a silent no-op.
func (s *Store) UpdateCollection(id string, u model.CollectionUpdate) {
	for i := range s.snap.Collections {
		if s.snap.Collections[i].ID != id {
			continue
		}
		c := &s.snap.Collections[i]
		if u.Name != nil {
			c.Name = *u.Name
		}
		if u.ParentID != nil {
			c.ParentID = *u.ParentID
		}
		if u.Order != nil {
			c.Order = *u.Order
		}
		s.persist()
		return
	}
}

// DeleteCollection refuses while sub-collections or bookmarks still
// reference the collection, so a delete never leaves dangling parentId
// or collectionId references. There is no cascade.
func (s *Store) DeleteCollection(id string) model.DeleteResult {
	children := 0
	for _, c := range s.snap.Collections {
		if c.ParentID == id {
			children++
		}
	}
	if children > 0 {
		return model.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("Cannot delete collection: contains %s", countNoun(children, "sub-collection")),
		}
	}

	inUse := 0
	for _, b := range s.snap.Bookmarks {
		if b.CollectionID == id {
			inUse++
		}
	}
	if inUse > 0 {
		return model.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("Cannot delete collection: referenced by %s", countNoun(inUse, "bookmark")),
		}
	}

	kept := s.snap.Collections[:0]
	for _, c := range s.snap.Collections {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.snap.Collections = kept
	s.persist()
	return model.DeleteResult{Success: true}
}
