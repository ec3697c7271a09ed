package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanhall/linkvault/internal/seed"
)

func init() {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace everything with the sample data",
		Run:   runSeed,
	}
	cmd.Flags().BoolP("yes", "y", false, "Confirm; this discards all current data")

	RootCmd.AddCommand(cmd)
}

func runSeed(cmd *cobra.Command, args []string) {
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		exitErr("seed", fmt.Errorf("refusing without --yes; this discards all current data"))
	}

	s, cleanup, err := openStoreWith(seed.Data)
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	s.ResetToSeed()
	fmt.Println(`{"ok":true}`)
}
