package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evanhall/linkvault/internal/netscape"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export-html",
		Short: "Export bookmarks as a browser bookmark file",
		Long:  "Export bookmarks and collections in the Netscape bookmark format, ready to import into a browser.",
		Run:   runExportHTML,
	}

	RootCmd.AddCommand(cmd)
}

func runExportHTML(cmd *cobra.Command, args []string) {
	s, cleanup, err := openStore()
	if err != nil {
		exitErr("open store", err)
	}
	defer cleanup()

	fmt.Println(netscape.Render(s.Bookmarks(), s.Collections()))
}
