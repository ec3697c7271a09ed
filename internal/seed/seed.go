// Package seed produces the sample snapshot used on first run, when no
// persisted data exists yet.
package seed

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/evanhall/linkvault/internal/model"
)

// Data builds a full, internally-consistent starter snapshot: kinds,
// nested collections, colored tags, a few bookmarks and todos.
func Data() *model.Snapshot {
	entropy := rand.New(rand.NewSource(time.Now().UnixNano()))
	newID := func() string {
		return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
	}
	now := time.Now()

	kinds := []model.Kind{
		{ID: newID(), Name: "Articles", Description: "Blog posts, news articles, and other written content", Icon: "📄", Order: 0},
		{ID: newID(), Name: "Shopping", Description: "Products, online stores, and shopping lists", Icon: "🛒", Order: 1},
		{ID: newID(), Name: "Tools", Description: "Useful web tools, utilities and services", Icon: "🔧", Order: 2},
		{ID: newID(), Name: "Videos", Description: "Videos from YouTube and other platforms", Icon: "🎬", Order: 3},
		{ID: newID(), Name: "Websites", Description: "General websites and web applications", Icon: "🌐", Order: 4},
		{ID: newID(), Name: "Resources", Description: "Documentation, guides, and learning resources", Icon: "📚", Order: 5},
		{ID: newID(), Name: "Design", Description: "Design tools, inspiration, and resources", Icon: "🎨", Order: 6},
		{ID: newID(), Name: "Music", Description: "Songs, playlists, and music services", Icon: "🎵", Order: 7},
	}

	developmentID := newID()
	designID := newID()
	productivityID := newID()
	goID := newID()
	palettesID := newID()

	collections := []model.Collection{
		{ID: developmentID, Name: "Development", Order: 0},
		{ID: designID, Name: "Design", Order: 1},
		{ID: productivityID, Name: "Productivity", Order: 2},
		{ID: goID, Name: "Go", ParentID: developmentID, Order: 3},
		{ID: palettesID, Name: "Color Palettes", ParentID: designID, Order: 4},
	}

	tags := []model.Tag{
		{ID: newID(), Name: "reference", Color: "#2196F3"},
		{ID: newID(), Name: "inspiration", Color: "#9C27B0"},
		{ID: newID(), Name: "favorite", Color: "#FF9800"},
		{ID: newID(), Name: "free", Color: "#8BC34A"},
		{ID: newID(), Name: "paid", Color: "#F44336"},
	}
	tagByName := make(map[string]string, len(tags))
	for _, t := range tags {
		tagByName[t.Name] = t.ID
	}
	kindByName := make(map[string]string, len(kinds))
	for _, k := range kinds {
		kindByName[k.Name] = k.ID
	}

	bookmarks := []model.Bookmark{
		{
			ID: newID(), Title: "Go Documentation", URL: "https://go.dev/doc/",
			Description:  "Official Go language documentation",
			Favicon:      "https://go.dev/favicon.ico",
			CollectionID: goID, KindID: kindByName["Resources"],
			Tags: []string{tagByName["reference"]}, Status: model.StatusUnread,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: newID(), Title: "Coolors - Color Palette Generator", URL: "https://coolors.co/",
			Description:  "Generate perfect color combinations for your designs",
			Favicon:      "https://coolors.co/favicon.ico",
			CollectionID: palettesID, KindID: kindByName["Tools"],
			Tags:   []string{tagByName["inspiration"], tagByName["free"]},
			Status: model.StatusCompleted, CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: newID(), Title: "Netlify", URL: "https://netlify.com",
			Description:  "Deploy modern web projects",
			Favicon:      "https://netlify.com/favicon.ico",
			CollectionID: developmentID, KindID: kindByName["Tools"],
			Tags: []string{tagByName["free"]}, Status: model.StatusReading,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: newID(), Title: "Figma", URL: "https://figma.com",
			Description:  "Collaborative interface design tool",
			Favicon:      "https://figma.com/favicon.ico",
			CollectionID: designID, KindID: kindByName["Tools"],
			Tags: []string{tagByName["inspiration"]}, Status: model.StatusUnread,
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: newID(), Title: "GitHub", URL: "https://github.com",
			Description:  "Where the world builds software",
			Favicon:      "https://github.com/favicon.ico",
			CollectionID: developmentID, KindID: kindByName["Websites"],
			Tags: []string{tagByName["favorite"]}, Status: model.StatusCompleted,
			CreatedAt: now, UpdatedAt: now,
		},
	}

	todos := []model.TodoItem{
		{
			ID: newID(), Title: "Research Go testing libraries",
			Description: "Find the best assertion libraries for Go projects",
			Completed:   false, CollectionID: goID, BookmarkIDs: []string{},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: newID(), Title: "Organize design resources",
			Description: "Sort and categorize saved design resources",
			Completed:   false, CollectionID: designID, BookmarkIDs: []string{},
			CreatedAt: now, UpdatedAt: now,
		},
		{
			ID: newID(), Title: "Read Go release notes",
			Description: "Check the latest Go release for new features",
			Completed:   true, CollectionID: goID, BookmarkIDs: []string{},
			CreatedAt: now, UpdatedAt: now,
		},
	}

	return &model.Snapshot{
		Bookmarks:   bookmarks,
		Collections: collections,
		Kinds:       kinds,
		Tags:        tags,
		Todos:       todos,
	}
}
