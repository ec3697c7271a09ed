package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanhall/linkvault/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "kind",
		Short: "Manage kinds (content-type classifiers)",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a kind",
		Args:  cobra.ExactArgs(1),
		Run:   runKindAdd,
	}
	add.Flags().String("description", "", "Description")
	add.Flags().String("icon", "", "Icon")
	add.Flags().Int("order", 0, "Sort key")

	list := &cobra.Command{
		Use:   "list",
		Short: "List kinds",
		Run:   runKindList,
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a kind (refused while bookmarks reference it)",
		Args:  cobra.ExactArgs(1),
		Run:   runKindRm,
	}

	cmd.AddCommand(add, list, rm)
	RootCmd.AddCommand(cmd)
}

func runKindAdd(cmd *cobra.Command, args []string) {
	description, _ := cmd.Flags().GetString("description")
	icon, _ := cmd.Flags().GetString("icon")
	order, _ := cmd.Flags().GetInt("order")

	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	k := s.AddKind(model.KindDraft{Name: args[0], Description: description, Icon: icon, Order: order})
	out, _ := json.MarshalIndent(k, "", "  ")
	fmt.Println(string(out))
}

func runKindList(cmd *cobra.Command, args []string) {
	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	if formatFlag == "text" {
		for _, k := range s.Kinds() {
			fmt.Printf("%s  %s\n", k.ID, k.Name)
		}
		return
	}
	out, _ := json.MarshalIndent(s.Kinds(), "", "  ")
	fmt.Println(string(out))
}

func runKindRm(cmd *cobra.Command, args []string) {
	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	res := s.DeleteKind(args[0])
	if !res.Success {
		exitBlocked(res)
	}
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}
