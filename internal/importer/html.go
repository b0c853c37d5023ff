package importer

import (
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/nikbrunner/marks/internal/model"
	"golang.org/x/net/html"
)

// ParseHTMLBookmarks parses Netscape bookmark HTML and returns its bookmarks
// in document order. Folder headings are ignored; bookmarks from every
// folder end up in one flat list.
func ParseHTMLBookmarks(r io.Reader) ([]model.Bookmark, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	bookmarks := []model.Bookmark{}

	var parse func(*html.Node)
	parse = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch strings.ToLower(n.Data) {
			case "h3":
				return // folder name, nothing to keep

			case "a":
				href := getAttr(n, "href")
				if href == "" {
					// Skip bookmarks without URL
					return
				}

				name := getTextContent(n)
				if name == "" {
					name = href // fallback to URL as name
				}

				b := model.NewBookmark(model.NewBookmarkParams{Name: name, URL: href})
				if addDate := getAttr(n, "add_date"); addDate != "" {
					if ts, err := strconv.ParseInt(addDate, 10, 64); err == nil {
						b.CreatedAt = time.Unix(ts, 0)
					}
				}

				bookmarks = append(bookmarks, b)
				return // Don't recurse into A
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			parse(c)
		}
	}

	parse(doc)
	return bookmarks, nil
}

// getTextContent returns the text content of a node.
func getTextContent(n *html.Node) string {
	var text strings.Builder
	var extract func(*html.Node)
	extract = func(n *html.Node) {
		if n.Type == html.TextNode {
			text.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			extract(c)
		}
	}
	extract(n)
	return strings.TrimSpace(text.String())
}

// getAttr returns the value of an attribute, case-insensitive.
func getAttr(n *html.Node, key string) string {
	key = strings.ToLower(key)
	for _, attr := range n.Attr {
		if strings.ToLower(attr.Key) == key {
			return attr.Val
		}
	}
	return ""
}
