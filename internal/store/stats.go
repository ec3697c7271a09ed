package store

import "github.com/evanhall/linkvault/internal/model"

// Stats holds entity counts for the stats command.
type Stats struct {
	Bookmarks   int            `json:"bookmarks"`
	Collections int            `json:"collections"`
	Kinds       int            `json:"kinds"`
	Tags        int            `json:"tags"`
	Todos       int            `json:"todos"`
	OpenTodos   int            `json:"open_todos"`
	ByStatus    map[string]int `json:"by_status"`
}

// Stats returns counts over the live snapshot.
func (s *Store) Stats() *Stats {
	st := &Stats{
		Bookmarks:   len(s.snap.Bookmarks),
		Collections: len(s.snap.Collections),
		Kinds:       len(s.snap.Kinds),
		Tags:        len(s.snap.Tags),
		Todos:       len(s.snap.Todos),
		ByStatus: map[string]int{
			string(model.StatusUnread):    0,
			string(model.StatusReading):   0,
			string(model.StatusCompleted): 0,
			string(model.StatusArchived):  0,
		},
	}
	for _, b := range s.snap.Bookmarks {
		st.ByStatus[string(b.Status)]++
	}
	for _, t := range s.snap.Todos {
		if !t.Completed {
			st.OpenTodos++
		}
	}
	return st
}
