package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanhall/linkvault/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "Manage to-do items",
	}

	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a todo",
		Args:  cobra.ExactArgs(1),
		Run:   runTodoAdd,
	}
	add.Flags().String("description", "", "Description")
	add.Flags().StringP("collection", "c", "", "Collection id")
	add.Flags().String("bookmarks", "", "Bookmark ids (comma-separated)")

	list := &cobra.Command{
		Use:   "list",
		Short: "List todos",
		Run:   runTodoList,
	}
	list.Flags().Bool("open", false, "Only todos not yet completed")

	done := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a todo completed",
		Args:  cobra.ExactArgs(1),
		Run:   runTodoDone,
	}

	rm := &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a todo",
		Args:  cobra.ExactArgs(1),
		Run:   runTodoRm,
	}

	cmd.AddCommand(add, list, done, rm)
	RootCmd.AddCommand(cmd)
}

func runTodoAdd(cmd *cobra.Command, args []string) {
	description, _ := cmd.Flags().GetString("description")
	collection, _ := cmd.Flags().GetString("collection")
	bookmarks, _ := cmd.Flags().GetString("bookmarks")

	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	t := s.AddTodo(model.TodoDraft{
		Title:        args[0],
		Description:  description,
		CollectionID: collection,
		BookmarkIDs:  splitList(bookmarks),
	})
	out, _ := json.MarshalIndent(t, "", "  ")
	fmt.Println(string(out))
}

func runTodoList(cmd *cobra.Command, args []string) {
	openOnly, _ := cmd.Flags().GetBool("open")

	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	var out []model.TodoItem
	for _, t := range s.Todos() {
		if openOnly && t.Completed {
			continue
		}
		out = append(out, t)
	}

	if formatFlag == "text" {
		for _, t := range out {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Printf("[%s] %s  %s\n", mark, t.ID, t.Title)
		}
		return
	}
	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}

func runTodoDone(cmd *cobra.Command, args []string) {
	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	done := true
	s.UpdateTodo(args[0], model.TodoUpdate{Completed: &done})
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}

func runTodoRm(cmd *cobra.Command, args []string) {
	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	s.DeleteTodo(args[0])
	fmt.Printf(`{"ok":true,"id":%q}`+"\n", args[0])
}
