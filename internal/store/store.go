// Package store holds the live snapshot and enforces the
// referential-integrity rules around it. All mutations go through a
// Store; every one persists the snapshot through the configured
// transport before returning.
package store

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/evanhall/linkvault/internal/logger"
	"github.com/evanhall/linkvault/internal/model"
	"github.com/evanhall/linkvault/internal/snapshot"
	"github.com/evanhall/linkvault/internal/storage"
)

// Config assembles a Store. Transport is required. Seed, when set,
// supplies the initial snapshot if the transport has no blob or the blob
// cannot be parsed; otherwise the store starts empty. Logger defaults to
// a no-op.
type Config struct {
	Transport storage.Transport
	Seed      func() *model.Snapshot
	Logger    logger.Logger
}

// Store owns one mutable snapshot. It is not safe for concurrent use;
// the host environment is assumed single-threaded for this data.
type Store struct {
	snap      *model.Snapshot
	transport storage.Transport
	seed      func() *model.Snapshot
	log       logger.Logger
	entropy   *rand.Rand
}

// New loads the persisted snapshot through the transport and returns a
// live store. Load failures degrade to seed or empty data, never an
// error.
func New(cfg Config) *Store {
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}

	s := &Store{
		transport: cfg.Transport,
		seed:      cfg.Seed,
		log:       log,
		entropy:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	s.snap = s.load()
	return s
}

func (s *Store) load() *model.Snapshot {
	raw, err := s.transport.Read()
	if err != nil {
		s.log.Warn("read persisted snapshot", logger.Error(err))
		return s.fallback()
	}
	if raw == nil {
		return s.fallback()
	}

	snap, err := snapshot.Deserialize(raw)
	if err != nil {
		s.log.Error("malformed persisted snapshot", logger.Error(err))
		return s.fallback()
	}
	return snap
}

func (s *Store) fallback() *model.Snapshot {
	if s.seed != nil {
		return s.seed()
	}
	return model.EmptySnapshot()
}

// persist writes the current snapshot through the transport. Failures
// are logged and swallowed; in-memory state is already mutated and may
// diverge from storage until the next successful save.
func (s *Store) persist() {
	data, err := snapshot.Serialize(s.snap)
	if err != nil {
		s.log.Error("serialize snapshot", logger.Error(err))
		return
	}
	if err := s.transport.Write(data); err != nil {
		s.log.Error("persist snapshot", logger.Error(err))
	}
}

func (s *Store) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), s.entropy).String()
}

// Snapshot getters. The returned slices are owned by the store; callers
// must not mutate them.

func (s *Store) Bookmarks() []model.Bookmark     { return s.snap.Bookmarks }
func (s *Store) Collections() []model.Collection { return s.snap.Collections }
func (s *Store) Kinds() []model.Kind             { return s.snap.Kinds }
func (s *Store) Tags() []model.Tag               { return s.snap.Tags }
func (s *Store) Todos() []model.TodoItem         { return s.snap.Todos }

// countNoun renders "1 bookmark" / "2 bookmarks". Guard messages carry
// these counts as part of their contract.
func countNoun(n int, singular string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %ss", n, singular)
}
