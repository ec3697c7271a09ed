package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanhall/linkvault/internal/netscape"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import-html [file]",
		Short: "Import a browser bookmark file",
		Long:  "Import a Netscape-format bookmark file as exported by Firefox, Chrome and friends (file or stdin). Folder nesting becomes collections; bookmarks deduplicate by URL.",
		Args:  cobra.MaximumNArgs(1),
		Run:   runImportHTML,
	}

	RootCmd.AddCommand(cmd)
}

func runImportHTML(cmd *cobra.Command, args []string) {
	data, err := readInput(args)
	if err != nil {
		exitErr("read input", err)
	}

	res, err := netscape.Parse(string(data))
	if err != nil {
		exitErr("parse bookmark html", err)
	}

	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	added := s.ImportParsed(res.Bookmarks, res.Collections)
	fmt.Printf(`{"ok":true,"bookmarks_added":%d}`+"\n", added)
}
