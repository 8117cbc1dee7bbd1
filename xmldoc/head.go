package xmldoc

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/papyrus/model"
)

// probeHead parses content as HTML and copies the document title and meta
// name/content pairs into doc.Metadata. Extraction is best effort: input
// that does not parse leaves the metadata untouched, and keys already set
// by the extractor are never overwritten.
func probeHead(doc *model.Document, content []byte) {
	root, err := html.Parse(bytes.NewReader(content))
	if err != nil || root == nil {
		return
	}

	head := findElement(root, "head")
	if head == nil {
		return
	}

	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "title":
			if title := textContent(c); title != "" {
				setIfAbsent(doc, "title", title)
			}
		case "meta":
			name, value := "", ""
			for _, attr := range c.Attr {
				switch attr.Key {
				case "name", "property":
					name = attr.Val
				case "content":
					value = attr.Val
				}
			}
			if name != "" && value != "" {
				setIfAbsent(doc, name, value)
			}
		}
	}
}

// setIfAbsent writes a metadata key unless the extractor already owns it.
func setIfAbsent(doc *model.Document, key, value string) {
	if _, ok := doc.Metadata[key]; !ok {
		doc.Metadata[key] = value
	}
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// textContent collects the text content of a node and its descendants.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(cur *html.Node) {
		if cur.Type == html.TextNode {
			b.WriteString(cur.Data)
		}
		for c := cur.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
