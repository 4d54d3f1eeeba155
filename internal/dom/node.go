// Package dom provides the tree-level helpers the extraction pipeline is
// built on: node creation and movement, attribute access, inner-text
// collection, and link-density math. Queries and mutation both work
// directly on x/net/html nodes so that text and comment children move
// along with elements.
package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// CreateElement creates a detached element node with the given tag name.
func CreateElement(tagName string) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tagName,
		DataAtom: atom.Lookup([]byte(tagName)),
	}
}

// CreateTextNode creates a detached text node.
func CreateTextNode(data string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: data}
}

// Detach removes a node from its parent. Detaching an already-detached
// node is a no-op, so callers may remove nodes while iterating snapshots.
func Detach(node *html.Node) {
	if node.Parent != nil {
		node.Parent.RemoveChild(node)
	}
}

// AppendChild moves child to the end of parent's child list, detaching it
// from its current parent first.
func AppendChild(parent, child *html.Node) {
	Detach(child)
	parent.AppendChild(child)
}

// InsertBefore moves node into parent immediately before ref. A nil ref
// appends.
func InsertBefore(parent, node, ref *html.Node) {
	Detach(node)
	parent.InsertBefore(node, ref)
}

// ReplaceNode swaps newNode into oldNode's position and detaches oldNode.
func ReplaceNode(oldNode, newNode *html.Node) {
	parent := oldNode.Parent
	if parent == nil {
		return
	}
	Detach(newNode)
	parent.InsertBefore(newNode, oldNode)
	parent.RemoveChild(oldNode)
}

// RenameTag changes the tag name of an element in place, keeping
// attributes and children. Renaming is how font becomes span and how a
// childless div becomes p.
func RenameTag(node *html.Node, tagName string) {
	if node.Type != html.ElementNode {
		return
	}
	node.Data = tagName
	node.DataAtom = atom.Lookup([]byte(tagName))
}

// TagName returns the lowercase tag name of an element node, or "" for
// non-elements.
func TagName(node *html.Node) string {
	if node == nil || node.Type != html.ElementNode {
		return ""
	}
	return strings.ToLower(node.Data)
}

// ChildNodes returns a snapshot of every direct child, including text and
// comment nodes. The snapshot stays valid while children are moved away.
func ChildNodes(node *html.Node) []*html.Node {
	var list []*html.Node
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		list = append(list, c)
	}
	return list
}

// Children returns a snapshot of the direct element children.
func Children(node *html.Node) []*html.Node {
	var list []*html.Node
	for c := node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			list = append(list, c)
		}
	}
	return list
}

// GetElementsByTagName collects descendant elements matching any of the
// given tag names, in document order. The node itself is not considered.
func GetElementsByTagName(node *html.Node, tagNames ...string) []*html.Node {
	var list []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				name := strings.ToLower(c.Data)
				for _, tag := range tagNames {
					if name == tag || tag == "*" {
						list = append(list, c)
						break
					}
				}
			}
			walk(c)
		}
	}
	walk(node)
	return list
}

// GetAttribute returns the value of the named attribute, or "".
func GetAttribute(node *html.Node, name string) string {
	for _, attr := range node.Attr {
		if attr.Key == name {
			return attr.Val
		}
	}
	return ""
}

// HasAttribute reports whether the named attribute is present, regardless
// of its value.
func HasAttribute(node *html.Node, name string) bool {
	for _, attr := range node.Attr {
		if attr.Key == name {
			return true
		}
	}
	return false
}

// SetAttribute sets or replaces the named attribute.
func SetAttribute(node *html.Node, name, value string) {
	for i := range node.Attr {
		if node.Attr[i].Key == name {
			node.Attr[i].Val = value
			return
		}
	}
	node.Attr = append(node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttribute deletes the named attribute if present.
func RemoveAttribute(node *html.Node, name string) {
	for i, attr := range node.Attr {
		if attr.Key == name {
			node.Attr = append(node.Attr[:i], node.Attr[i+1:]...)
			return
		}
	}
}

// ClassAndID returns the concatenated class and id attribute values, the
// string the unlikely-candidate and weighting regexes match against.
func ClassAndID(node *html.Node) string {
	return GetAttribute(node, "class") + GetAttribute(node, "id")
}
