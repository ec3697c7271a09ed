// Package model defines the core bookmark data types.
package model

import "time"

// Status tracks reading progress of a bookmark.
type Status string

const (
	StatusUnread    Status = "unread"
	StatusReading   Status = "reading"
	StatusCompleted Status = "completed"
	StatusArchived  Status = "archived"
)

// ValidStatuses are the allowed bookmark statuses.
var ValidStatuses = map[Status]bool{
	StatusUnread:    true,
	StatusReading:   true,
	StatusCompleted: true,
	StatusArchived:  true,
}

// Bookmark represents a saved URL with metadata. URLs are unique within a
// store; imports deduplicate by exact URL match.
type Bookmark struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	URL          string    `json:"url"`
	Description  string    `json:"description,omitempty"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
	Favicon      string    `json:"favicon,omitempty"`
	CollectionID string    `json:"collectionId,omitempty"`
	KindID       string    `json:"kindId,omitempty"`
	Tags         []string  `json:"tags"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Collection is a hierarchical folder-like grouping of bookmarks.
// ParentID forms a forest; an empty ParentID marks a root collection.
type Collection struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parentId,omitempty"`
	Order    int    `json:"order"`
}

// Kind is a flat content-type classifier (Article, Video, ...),
// orthogonal to Collection.
type Kind struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Order       int    `json:"order"`
}

// Tag labels bookmarks, many-to-many via Bookmark.Tags.
type Tag struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// TodoItem is a to-do optionally linked to a collection and bookmarks.
// BookmarkIDs are not validated against existing bookmarks.
type TodoItem struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	Completed    bool      `json:"completed"`
	CollectionID string    `json:"collectionId,omitempty"`
	BookmarkIDs  []string  `json:"bookmarkIds"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Snapshot is the complete in-memory set of all five entity collections
// at a point in time.
type Snapshot struct {
	Bookmarks   []Bookmark   `json:"bookmarks"`
	Collections []Collection `json:"collections"`
	Kinds       []Kind       `json:"kinds"`
	Tags        []Tag        `json:"tags"`
	Todos       []TodoItem   `json:"todos"`
}

// EmptySnapshot returns a snapshot with all five collections present
// and empty.
func EmptySnapshot() *Snapshot {
	return &Snapshot{
		Bookmarks:   []Bookmark{},
		Collections: []Collection{},
		Kinds:       []Kind{},
		Tags:        []Tag{},
		Todos:       []TodoItem{},
	}
}

// ExportBundle is the portable export shape. Field names are a
// compatibility surface for round-tripping between instances.
type ExportBundle struct {
	Bookmarks   []Bookmark   `json:"bookmarks"`
	Collections []Collection `json:"collections"`
	Kinds       []Kind       `json:"kinds"`
	Tags        []Tag        `json:"tags"`
	Todos       []TodoItem   `json:"todos"`
	ExportDate  string       `json:"exportDate"`
}

// BookmarkDraft holds the caller-supplied fields for creating a bookmark.
// When produced by the Netscape parser, CollectionID carries the enclosing
// folder's path-joined name as a placeholder until merge resolves it.
type BookmarkDraft struct {
	Title        string
	URL          string
	Description  string
	Thumbnail    string
	Favicon      string
	CollectionID string
	KindID       string
	Tags         []string
	Status       Status
}

// CollectionDraft holds the caller-supplied fields for creating a
// collection. When produced by the Netscape parser, Name is the
// path-joined folder name and ParentID the parent's path-joined name.
type CollectionDraft struct {
	Name     string
	ParentID string
	Order    int
}

// KindDraft holds the caller-supplied fields for creating a kind.
type KindDraft struct {
	Name        string
	Description string
	Icon        string
	Order       int
}

// TagDraft holds the caller-supplied fields for creating a tag.
type TagDraft struct {
	Name  string
	Color string
}

// TodoDraft holds the caller-supplied fields for creating a todo.
type TodoDraft struct {
	Title        string
	Description  string
	Completed    bool
	CollectionID string
	BookmarkIDs  []string
}

// BookmarkUpdate is a partial bookmark mutation. Nil fields are left
// untouched; a non-nil Tags slice replaces the tag set wholesale.
type BookmarkUpdate struct {
	Title        *string
	URL          *string
	Description  *string
	Thumbnail    *string
	Favicon      *string
	CollectionID *string
	KindID       *string
	Tags         []string
	Status       *Status
}

// CollectionUpdate is a partial collection mutation.
type CollectionUpdate struct {
	Name     *string
	ParentID *string
	Order    *int
}

// KindUpdate is a partial kind mutation.
type KindUpdate struct {
	Name        *string
	Description *string
	Icon        *string
	Order       *int
}

// TagUpdate is a partial tag mutation.
type TagUpdate struct {
	Name  *string
	Color *string
}

// TodoUpdate is a partial todo mutation. A non-nil BookmarkIDs slice
// replaces the list wholesale.
type TodoUpdate struct {
	Title        *string
	Description  *string
	Completed    *bool
	CollectionID *string
	BookmarkIDs  []string
}

// DeleteResult reports the outcome of a delete. Guarded deletes refuse
// with Success false and a count-bearing Message; callers must check
// Success before assuming the record is gone.
type DeleteResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}
