package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete everything",
		Run:   runClear,
	}
	cmd.Flags().BoolP("yes", "y", false, "Confirm; this discards all current data")

	RootCmd.AddCommand(cmd)
}

func runClear(cmd *cobra.Command, args []string) {
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		exitErr("clear", fmt.Errorf("refusing without --yes; this discards all current data"))
	}

	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	s.ClearAll()
	fmt.Println(`{"ok":true}`)
}
