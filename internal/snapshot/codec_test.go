package snapshot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evanhall/linkvault/internal/model"
)

func TestRoundTrip(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	updated := time.Date(2024, 6, 15, 18, 0, 0, 0, time.UTC)

	s := &model.Snapshot{
		Bookmarks: []model.Bookmark{{
			ID: "b1", Title: "Go Blog", URL: "https://go.dev/blog",
			Description: "official blog", CollectionID: "c1", KindID: "k1",
			Tags: []string{"t1", "t2"}, Status: model.StatusReading,
			CreatedAt: created, UpdatedAt: updated,
		}},
		Collections: []model.Collection{
			{ID: "c1", Name: "Development", Order: 0},
			{ID: "c2", Name: "Go", ParentID: "c1", Order: 1},
		},
		Kinds: []model.Kind{{ID: "k1", Name: "Articles", Icon: "📄", Order: 0}},
		Tags:  []model.Tag{{ID: "t1", Name: "later", Color: "#ff0000"}, {ID: "t2", Name: "ref"}},
		Todos: []model.TodoItem{{
			ID: "d1", Title: "read it", Completed: false,
			CollectionID: "c2", BookmarkIDs: []string{"b1"},
			CreatedAt: created, UpdatedAt: updated,
		}},
	}

	data, err := Serialize(s)
	require.NoError(t, err)

	got, err := Deserialize(data)
	require.NoError(t, err)

	require.Len(t, got.Bookmarks, 1)
	b := got.Bookmarks[0]
	assert.Equal(t, s.Bookmarks[0].ID, b.ID)
	assert.Equal(t, s.Bookmarks[0].Tags, b.Tags)
	assert.True(t, b.CreatedAt.Equal(created), "timestamps compare by instant")
	assert.True(t, b.UpdatedAt.Equal(updated))

	assert.Equal(t, s.Collections, got.Collections)
	assert.Equal(t, s.Kinds, got.Kinds)
	assert.Equal(t, s.Tags, got.Tags)

	require.Len(t, got.Todos, 1)
	assert.Equal(t, s.Todos[0].BookmarkIDs, got.Todos[0].BookmarkIDs)
	assert.True(t, got.Todos[0].CreatedAt.Equal(created))
}

func TestDeserialize_MigratesLegacySchema(t *testing.T) {
	raw := []byte(`{
		"bookmarks": [
			{"id":"b1","title":"Old","url":"https://old.example","categoryId":"c1",
			 "status":"unread","createdAt":"2023-01-02T03:04:05Z","updatedAt":"2023-01-02T03:04:05Z"}
		],
		"categories": [
			{"id":"c1","name":"Legacy","order":0}
		],
		"todos": [
			{"id":"d1","title":"old todo","completed":false,"categoryId":"c1",
			 "createdAt":"2023-01-02T03:04:05Z","updatedAt":"2023-01-02T03:04:05Z"}
		]
	}`)

	got, err := Deserialize(raw)
	require.NoError(t, err)

	require.Len(t, got.Collections, 1, "categories should be read as collections")
	assert.Equal(t, "Legacy", got.Collections[0].Name)

	require.Len(t, got.Bookmarks, 1)
	assert.Equal(t, "c1", got.Bookmarks[0].CollectionID, "categoryId should become collectionId")
	assert.NotNil(t, got.Bookmarks[0].Tags)

	require.Len(t, got.Todos, 1)
	assert.Equal(t, "c1", got.Todos[0].CollectionID)
	assert.NotNil(t, got.Todos[0].BookmarkIDs)

	assert.NotNil(t, got.Kinds, "absent kinds defaults to empty, not nil")
	assert.Empty(t, got.Kinds)

	want := time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.True(t, got.Bookmarks[0].CreatedAt.Equal(want), "timestamps rehydrate from strings")
}

func TestDeserialize_PrefersCollectionsOverCategories(t *testing.T) {
	raw := []byte(`{
		"collections": [{"id":"c1","name":"New","order":0}],
		"categories":  [{"id":"c9","name":"Stale","order":0}]
	}`)

	got, err := Deserialize(raw)
	require.NoError(t, err)
	require.Len(t, got.Collections, 1)
	assert.Equal(t, "New", got.Collections[0].Name)
}

func TestDeserialize_MalformedBlob(t *testing.T) {
	_, err := Deserialize([]byte("{this is not json"))
	assert.Error(t, err)
}

func TestDeserialize_EmptyObject(t *testing.T) {
	got, err := Deserialize([]byte(`{}`))
	require.NoError(t, err)

	assert.NotNil(t, got.Bookmarks)
	assert.NotNil(t, got.Collections)
	assert.NotNil(t, got.Kinds)
	assert.NotNil(t, got.Tags)
	assert.NotNil(t, got.Todos)
}
