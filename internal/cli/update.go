package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanhall/linkvault/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a bookmark",
		Long:  "Update a bookmark. Only the flags given change; everything else is preserved.",
		Args:  cobra.ExactArgs(1),
		Run:   runUpdate,
	}

	cmd.Flags().StringP("title", "t", "", "New title")
	cmd.Flags().String("url", "", "New URL")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().StringP("collection", "c", "", "New collection id (empty detaches)")
	cmd.Flags().StringP("kind", "k", "", "New kind id (empty detaches)")
	cmd.Flags().String("tags", "", "New tag ids, replacing the current set (comma-separated)")
	cmd.Flags().String("status", "", "New status")

	RootCmd.AddCommand(cmd)
}

func runUpdate(cmd *cobra.Command, args []string) {
	var u model.BookmarkUpdate

	if cmd.Flags().Changed("title") {
		v, _ := cmd.Flags().GetString("title")
		u.Title = &v
	}
	if cmd.Flags().Changed("url") {
		v, _ := cmd.Flags().GetString("url")
		u.URL = &v
	}
	if cmd.Flags().Changed("description") {
		v, _ := cmd.Flags().GetString("description")
		u.Description = &v
	}
	if cmd.Flags().Changed("collection") {
		v, _ := cmd.Flags().GetString("collection")
		u.CollectionID = &v
	}
	if cmd.Flags().Changed("kind") {
		v, _ := cmd.Flags().GetString("kind")
		u.KindID = &v
	}
	if cmd.Flags().Changed("tags") {
		v, _ := cmd.Flags().GetString("tags")
		tags := splitList(v)
		if tags == nil {
			tags = []string{}
		}
		u.Tags = tags
	}
	if cmd.Flags().Changed("status") {
		v, _ := cmd.Flags().GetString("status")
		if !model.ValidStatuses[model.Status(v)] {
			exitErr("update", fmt.Errorf("invalid status %q", v))
		}
		st := model.Status(v)
		u.Status = &st
	}

	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	s.UpdateBookmark(args[0], u)
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}
