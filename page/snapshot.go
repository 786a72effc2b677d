// Package page provides an immutable snapshot of a rendered page for the
// extraction engine: a tree of visible-text-bearing nodes with structural
// metadata, plus CSS-selector enumeration over the tree.
//
// A snapshot is built eagerly from HTML, once per extraction call. The
// engine never touches a live, mutable DOM mid-algorithm, which is what
// makes extraction deterministic for a given input.
package page

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// Snapshot is an immutable capture of a page: the node tree, the document
// hostname, and the whole-document visible text.
type Snapshot struct {
	Hostname string

	doc     *goquery.Document
	root    *Node
	nodeFor map[*html.Node]*Node
}

// FromReader parses HTML from r and builds a snapshot. The hostname is
// carried separately because the engine routes site-specific extractors
// by it; pass an empty string if unknown.
func FromReader(r io.Reader, hostname string) (*Snapshot, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page HTML: %w", err)
	}
	return fromDocument(doc, hostname)
}

// FromHTML builds a snapshot from an HTML string.
func FromHTML(htmlStr, hostname string) (*Snapshot, error) {
	return FromReader(strings.NewReader(htmlStr), hostname)
}

func fromDocument(doc *goquery.Document, hostname string) (*Snapshot, error) {
	s := &Snapshot{
		Hostname: strings.ToLower(hostname),
		doc:      doc,
		nodeFor:  make(map[*html.Node]*Node),
	}

	body := findBody(doc)
	if body == nil {
		// html.Parse synthesizes a body for any input, but guard anyway.
		s.root = &Node{Tag: "body"}
		return s, nil
	}
	s.root = s.buildNode(body, nil)
	return s, nil
}

func findBody(doc *goquery.Document) *html.Node {
	sel := doc.Find("body")
	if sel.Length() == 0 {
		return nil
	}
	return sel.Get(0)
}

// buildNode mirrors the element subtree rooted at hn into Node form,
// registering every element in the nodeFor index.
func (s *Snapshot) buildNode(hn *html.Node, parent *Node) *Node {
	n := &Node{
		Tag:       strings.ToLower(hn.Data),
		Classes:   classList(hn),
		ID:        attrValue(hn, "id"),
		AriaLabel: attrValue(hn, "aria-label"),
		Parent:    parent,
	}
	s.nodeFor[hn] = n

	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || invisibleTags[strings.ToLower(c.Data)] {
			continue
		}
		n.children = append(n.children, s.buildNode(c, n))
	}

	var b strings.Builder
	flattenText(hn, &b)
	n.Text = NormalizeText(b.String())
	return n
}

// flattenText writes the visible text of hn and its descendants to b,
// inserting newlines at block-element boundaries so the result reads
// like innerText.
func flattenText(hn *html.Node, b *strings.Builder) {
	for c := hn.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			tag := strings.ToLower(c.Data)
			if invisibleTags[tag] || attrValue(c, "aria-hidden") == "true" {
				continue
			}
			if tag == "br" {
				b.WriteByte('\n')
				continue
			}
			if blockTags[tag] {
				b.WriteByte('\n')
				flattenText(c, b)
				b.WriteByte('\n')
			} else {
				flattenText(c, b)
			}
		}
	}
}

func classList(hn *html.Node) []string {
	raw := attrValue(hn, "class")
	if raw == "" {
		return nil
	}
	return strings.Fields(raw)
}

func attrValue(hn *html.Node, name string) string {
	for _, a := range hn.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// Root returns the snapshot's root node (the document body).
func (s *Snapshot) Root() *Node {
	return s.root
}

// DocumentText returns the whole-document visible text, the last-resort
// input for the body fallback.
func (s *Snapshot) DocumentText() string {
	return s.root.Text
}

// Select enumerates nodes matching the given CSS selector, in document
// order. An invalid selector yields no nodes rather than an error: pattern
// tables are tried entry by entry and a bad entry is skipped, mirroring
// browser querySelectorAll defensiveness.
func (s *Snapshot) Select(selector string) []*Node {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil
	}
	var out []*Node
	for _, hn := range s.doc.FindMatcher(m).Nodes {
		if n, ok := s.nodeFor[hn]; ok {
			out = append(out, n)
		}
	}
	return out
}
