package views

import (
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// el returns an element node. Nil children are skipped.
func el(a atom.Atom, attr []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attr}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// attrs builds attributes from key/value pairs.
func attrs(kv ...string) []html.Attribute {
	attr := make([]html.Attribute, 0, len(kv)/2) //nolint: mnd // pairs
	for i := 0; i+1 < len(kv); i += 2 {
		attr = append(attr, html.Attribute{Key: kv[i], Val: kv[i+1]})
	}
	return attr
}

// with appends an attribute when val is not empty.
func with(n *html.Node, key, val string) *html.Node {
	if val != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	}
	return n
}

// flag appends a boolean attribute when set.
func flag(n *html.Node, key string, set bool) *html.Node {
	if set {
		n.Attr = append(n.Attr, html.Attribute{Key: key})
	}
	return n
}

func text(s string) *html.Node { return &html.Node{Type: html.TextNode, Data: s} }

func document(root *html.Node) *html.Node {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)
	return doc
}

// Write serializes the tree returned by [Render] or [RenderError].
func Write(w io.Writer, n *html.Node) error { return html.Render(w, n) }
