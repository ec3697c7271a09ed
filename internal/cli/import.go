package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/evanhall/linkvault/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a JSON bundle",
		Long:  "Import a bundle produced by export (file or stdin). Merges: bookmarks deduplicate by URL, collections/kinds/tags by name, todos always append.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		return os.ReadFile(args[0])
	}
	return io.ReadAll(os.Stdin)
}

func runImport(cmd *cobra.Command, args []string) {
	data, err := readInput(args)
	if err != nil {
		exitErr("read input", err)
	}

	var bundle model.ExportBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		exitErr("parse json", err)
	}

	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	before := len(s.Bookmarks())
	s.ImportBundle(&bundle)
	fmt.Printf(`{"ok":true,"bookmarks_added":%d}`+"\n", len(s.Bookmarks())-before)
}
