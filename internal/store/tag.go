package store

import (
	"fmt"

	"github.com/evanhall/linkvault/internal/model"
)

// AddTag assigns a fresh id, appends and persists.
func (s *Store) AddTag(d model.TagDraft) model.Tag {
	t := model.Tag{
		ID:    s.newID(),
		Name:  d.Name,
		Color: d.Color,
	}
	s.snap.Tags = append(s.snap.Tags, t)
	s.persist()
	return t
}

// UpdateTag merges the given fields onto the tag. Unknown ids are a
// silent no-op.
func (s *Store) UpdateTag(id string, u model.TagUpdate) {
	for i := range s.snap.Tags {
		if s.snap.Tags[i].ID != id {
			continue
		}
		t := &s.snap.Tags[i]
		if u.Name != nil {
			t.Name = *u.Name
		}
		if u.Color != nil {
			t.Color = *u.Color
		}
		s.persist()
		return
	}
}

// DeleteTag refuses while any bookmark's tag set contains the tag, so no
// bookmark is ever left holding the id of a deleted tag.
func (s *Store) DeleteTag(id string) model.DeleteResult {
	inUse := 0
	for _, b := range s.snap.Bookmarks {
		for _, tid := range b.Tags {
			if tid == id {
				inUse++
				break
			}
		}
	}
	if inUse > 0 {
		return model.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("Cannot delete tag: used by %s", countNoun(inUse, "bookmark")),
		}
	}

	kept := s.snap.Tags[:0]
	for _, t := range s.snap.Tags {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	s.snap.Tags = kept
	s.persist()
	return model.DeleteResult{Success: true}
}
