package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export everything as a JSON bundle",
		Long:  "Export bookmarks, collections, kinds, tags and todos as one JSON bundle, importable into another linkvault.",
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	b, _ := json.MarshalIndent(s.ExportBundle(), "", "  ")
	fmt.Println(string(b))
}
