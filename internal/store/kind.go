package store

import (
	"fmt"

	"github.com/evanhall/linkvault/internal/model"
)

// AddKind assigns a fresh id, appends and persists.
func (s *Store) AddKind(d model.KindDraft) model.Kind {
	k := model.Kind{
		ID:          s.newID(),
		Name:        d.Name,
		Description: d.Description,
		Icon:        d.Icon,
		Order:       d.Order,
	}
	s.snap.Kinds = append(s.snap.Kinds, k)
	s.persist()
	return k
}

// UpdateKind merges the given fields onto the kind. Unknown ids are a
// silent no-op.
func (s *Store) UpdateKind(id string, u model.KindUpdate) {
	for i := range s.snap.Kinds {
		if s.snap.Kinds[i].ID != id {
			continue
		}
		k := &s.snap.Kinds[i]
		if u.Name != nil {
			k.Name = *u.Name
		}
		if u.Description != nil {
			k.Description = *u.Description
		}
		if u.Icon != nil {
			k.Icon = *u.Icon
		}
		if u.Order != nil {
			k.Order = *u.Order
		}
		s.persist()
		return
	}
}

// DeleteKind refuses while any bookmark still references the kind.
func (s *Store) DeleteKind(id string) model.DeleteResult {
	inUse := 0
	for _, b := range s.snap.Bookmarks {
		if b.KindID == id {
			inUse++
		}
	}
	if inUse > 0 {
		return model.DeleteResult{
			Success: false,
			Message: fmt.Sprintf("Cannot delete kind: referenced by %s", countNoun(inUse, "bookmark")),
		}
	}

	kept := s.snap.Kinds[:0]
	for _, k := range s.snap.Kinds {
		if k.ID != id {
			kept = append(kept, k)
		}
	}
	s.snap.Kinds = kept
	s.persist()
	return model.DeleteResult{Success: true}
}
