package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanhall/linkvault/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Manage collections",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a collection",
		Args:  cobra.ExactArgs(1),
		Run:   runCollectionAdd,
	}
	add.Flags().StringP("parent", "p", "", "Parent collection id")
	add.Flags().Int("order", 0, "Sibling sort key")

	list := &cobra.Command{
		Use:   "list",
		Short: "List collections",
		Run:   runCollectionList,
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a collection (refused while sub-collections or bookmarks reference it)",
		Args:  cobra.ExactArgs(1),
		Run:   runCollectionRm,
	}

	cmd.AddCommand(add, list, rm)
	RootCmd.AddCommand(cmd)
}

func runCollectionAdd(cmd *cobra.Command, args []string) {
	parent, _ := cmd.Flags().GetString("parent")
	order, _ := cmd.Flags().GetInt("order")

	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	c := s.AddCollection(model.CollectionDraft{Name: args[0], ParentID: parent, Order: order})
	out, _ := json.MarshalIndent(c, "", "  ")
	fmt.Println(string(out))
}

func runCollectionList(cmd *cobra.Command, args []string) {
	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	if formatFlag == "text" {
		for _, c := range s.Collections() {
			fmt.Printf("%s  %s\n", c.ID, c.Name)
		}
		return
	}
	out, _ := json.MarshalIndent(s.Collections(), "", "  ")
	fmt.Println(string(out))
}

func runCollectionRm(cmd *cobra.Command, args []string) {
	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	res := s.DeleteCollection(args[0])
	if !res.Success {
		exitBlocked(res)
	}
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}
