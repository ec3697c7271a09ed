// Package netscape reads and writes the Netscape Bookmark File Format,
// the nested-HTML-list interchange format browsers use for bookmark
// import and export.
package netscape

import (
	"fmt"
	stdhtml "html"
	"strings"

	"golang.org/x/net/html"

	"github.com/evanhall/linkvault/internal/model"
)

// Browsers refuse files without this exact preamble, so it is reproduced
// verbatim rather than generated.
const header = `<!DOCTYPE NETSCAPE-Bookmark-file-1>
<!-- This is an automatically generated file.
     It will be read and overwritten.
     DO NOT EDIT! -->
<META HTTP-EQUIV="Content-Type" CONTENT="text/html; charset=UTF-8">
<TITLE>Bookmarks</TITLE>
<H1>Bookmarks</H1>
<DL><p>
`

const footer = `</DL><p>`

// ParseResult holds the drafts recovered from a bookmark file. Collection
// names are path-joined with " > " and referenced by name, not id; the
// caller resolves them to real ids during merge.
type ParseResult struct {
	Bookmarks   []model.BookmarkDraft
	Collections []model.CollectionDraft
}

// Parse walks the nested folder/link markup of a bookmark file. Folders
// become collection drafts with a single order counter shared across the
// whole tree; anchors become bookmark drafts attached to the enclosing
// folder. Anchors without an HREF are skipped.
func Parse(src string) (*ParseResult, error) {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parse bookmark html: %w", err)
	}

	res := &ParseResult{
		Bookmarks:   []model.BookmarkDraft{},
		Collections: []model.CollectionDraft{},
	}

	root := findElement(doc, "dl")
	if root == nil {
		return res, nil
	}

	order := 0

	var walkList func(dl *html.Node, parentName string)
	walkList = func(dl *html.Node, parentName string) {
		for item := dl.FirstChild; item != nil; item = item.NextSibling {
			if item.Type != html.ElementNode || item.Data != "dt" {
				continue
			}

			if h3 := findElement(item, "h3"); h3 != nil {
				name := textContent(h3)
				if name == "" {
					name = "Untitled"
				}
				fullName := name
				if parentName != "" {
					fullName = parentName + " > " + name
				}
				res.Collections = append(res.Collections, model.CollectionDraft{
					Name:     fullName,
					ParentID: parentName,
					Order:    order,
				})
				order++

				if nested := findElement(item, "dl"); nested != nil {
					walkList(nested, fullName)
				}
				continue
			}

			a := findElement(item, "a")
			if a == nil {
				continue
			}
			url := attr(a, "href")
			if url == "" {
				continue
			}
			title := textContent(a)
			if title == "" {
				title = "Untitled"
			}
			res.Bookmarks = append(res.Bookmarks, model.BookmarkDraft{
				Title:        title,
				URL:          url,
				Favicon:      attr(a, "icon"),
				CollectionID: parentName,
				Tags:         []string{},
				Status:       model.StatusUnread,
			})
		}
	}

	walkList(root, "")
	return res, nil
}

// Render emits a bookmark file: the fixed preamble, the collection tree
// (each collection's bookmarks before its children), then bookmarks
// without a collection as a flat trailing list. Indentation tracks depth
// for compatibility with browser importers.
func Render(bookmarks []model.Bookmark, collections []model.Collection) string {
	children := make(map[string][]model.Collection)
	var roots []model.Collection
	byID := make(map[string]model.Collection, len(collections))
	for _, c := range collections {
		byID[c.ID] = c
	}
	for _, c := range collections {
		if c.ParentID != "" {
			if _, ok := byID[c.ParentID]; ok {
				children[c.ParentID] = append(children[c.ParentID], c)
				continue
			}
		}
		roots = append(roots, c)
	}

	var b strings.Builder
	b.WriteString(header)

	visited := make(map[string]bool)

	var renderCollection func(c model.Collection, depth int)
	renderCollection = func(c model.Collection, depth int) {
		// parentId cycles are not prevented by construction; stop
		// instead of recursing forever.
		if visited[c.ID] {
			return
		}
		visited[c.ID] = true

		indent := strings.Repeat("    ", depth)
		fmt.Fprintf(&b, "%s<DT><H3>%s</H3>\n", indent, escape(c.Name))
		fmt.Fprintf(&b, "%s<DL><p>\n", indent)
		for _, bm := range bookmarks {
			if bm.CollectionID == c.ID {
				writeAnchor(&b, indent+"    ", bm)
			}
		}
		for _, child := range children[c.ID] {
			renderCollection(child, depth+1)
		}
		fmt.Fprintf(&b, "%s</DL><p>\n", indent)
	}

	for _, c := range roots {
		renderCollection(c, 1)
	}

	for _, bm := range bookmarks {
		if bm.CollectionID == "" {
			writeAnchor(&b, "    ", bm)
		}
	}

	b.WriteString(footer)
	return b.String()
}

func writeAnchor(b *strings.Builder, indent string, bm model.Bookmark) {
	icon := ""
	if bm.Favicon != "" {
		icon = ` ICON="` + escape(bm.Favicon) + `"`
	}
	fmt.Fprintf(b, "%s<DT><A HREF=\"%s\"%s>%s</A>\n", indent, escape(bm.URL), icon, escape(bm.Title))
}

func escape(s string) string {
	return stdhtml.EscapeString(s)
}

// findElement returns the first element with the given tag in a
// depth-first walk below n, excluding n itself.
func findElement(n *html.Node, tag string) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == tag {
			return c
		}
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
