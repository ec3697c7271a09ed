package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanhall/linkvault/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List bookmarks",
		Run:   runList,
	}

	cmd.Flags().StringP("collection", "c", "", "Filter by collection id")
	cmd.Flags().StringP("kind", "k", "", "Filter by kind id")
	cmd.Flags().String("tag", "", "Filter by tag id")
	cmd.Flags().String("status", "", "Filter by status")
	cmd.Flags().IntP("limit", "l", 0, "Max results (0 = all)")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	collection, _ := cmd.Flags().GetString("collection")
	kind, _ := cmd.Flags().GetString("kind")
	tag, _ := cmd.Flags().GetString("tag")
	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")

	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	var out []model.Bookmark
	for _, b := range s.Bookmarks() {
		if collection != "" && b.CollectionID != collection {
			continue
		}
		if kind != "" && b.KindID != kind {
			continue
		}
		if status != "" && string(b.Status) != status {
			continue
		}
		if tag != "" && !hasTag(b, tag) {
			continue
		}
		out = append(out, b)
		if limit > 0 && len(out) >= limit {
			break
		}
	}

	if formatFlag == "text" {
		for _, b := range out {
			fmt.Printf("%s  %s  %s\n", b.ID, b.Title, b.URL)
		}
		return
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}

func hasTag(b model.Bookmark, tag string) bool {
	for _, t := range b.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
