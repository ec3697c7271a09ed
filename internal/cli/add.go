package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/evanhall/linkvault/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add <url>",
		Short: "Add a bookmark",
		Args:  cobra.ExactArgs(1),
		Run:   runAdd,
	}

	cmd.Flags().StringP("title", "t", "", "Bookmark title (default: the URL)")
	cmd.Flags().String("description", "", "Description")
	cmd.Flags().StringP("collection", "c", "", "Collection id")
	cmd.Flags().StringP("kind", "k", "", "Kind id")
	cmd.Flags().String("tags", "", "Tag ids (comma-separated)")
	cmd.Flags().String("status", string(model.StatusUnread), "Status: unread, reading, completed or archived")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	collection, _ := cmd.Flags().GetString("collection")
	kind, _ := cmd.Flags().GetString("kind")
	tagsStr, _ := cmd.Flags().GetString("tags")
	status, _ := cmd.Flags().GetString("status")

	if !model.ValidStatuses[model.Status(status)] {
		exitErr("add", fmt.Errorf("invalid status %q", status))
	}
	if title == "" {
		title = args[0]
	}

	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	b := s.AddBookmark(model.BookmarkDraft{
		Title:        title,
		URL:          args[0],
		Description:  description,
		CollectionID: collection,
		KindID:       kind,
		Tags:         splitList(tagsStr),
		Status:       model.Status(status),
	})

	out, _ := json.MarshalIndent(b, "", "  ")
	fmt.Println(string(out))
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
