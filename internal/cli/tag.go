package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanhall/linkvault/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a tag",
		Args:  cobra.ExactArgs(1),
		Run:   runTagAdd,
	}
	add.Flags().String("color", "", "Display color (hex)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List tags",
		Run:   runTagList,
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a tag (refused while bookmarks carry it)",
		Args:  cobra.ExactArgs(1),
		Run:   runTagRm,
	}

	cmd.AddCommand(add, list, rm)
	RootCmd.AddCommand(cmd)
}

func runTagAdd(cmd *cobra.Command, args []string) {
	color, _ := cmd.Flags().GetString("color")

	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	t := s.AddTag(model.TagDraft{Name: args[0], Color: color})
	out, _ := json.MarshalIndent(t, "", "  ")
	fmt.Println(string(out))
}

func runTagList(cmd *cobra.Command, args []string) {
	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	if formatFlag == "text" {
		for _, t := range s.Tags() {
			fmt.Printf("%s  %s\n", t.ID, t.Name)
		}
		return
	}
	out, _ := json.MarshalIndent(s.Tags(), "", "  ")
	fmt.Println(string(out))
}

func runTagRm(cmd *cobra.Command, args []string) {
	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	res := s.DeleteTag(args[0])
	if !res.Success {
		exitBlocked(res)
	}
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}
