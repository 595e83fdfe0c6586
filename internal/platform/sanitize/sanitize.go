// Package sanitize reduces untrusted HTML snippets to an allowlisted
// subset suitable for inline preview rendering.
package sanitize

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// allowedElements lists tags preserved by HTML.
var allowedElements = map[string]bool{
	"a": true, "b": true, "blockquote": true, "br": true, "div": true,
	"em": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "hr": true, "i": true, "img": true,
	"li": true, "ol": true, "p": true, "pre": true, "span": true,
	"strong": true, "table": true, "tbody": true, "td": true,
	"th": true, "thead": true, "tr": true, "u": true, "ul": true,
}

// allowedAttrs lists attribute names preserved on allowed elements.
var allowedAttrs = map[string]bool{
	"alt": true, "class": true, "height": true, "href": true,
	"src": true, "title": true, "width": true,
}

// HTML parses the snippet and returns it with disallowed elements
// removed and unsafe attributes stripped. Content of removed elements
// is dropped entirely; unknown but harmless wrappers keep their
// children.
func HTML(snippet string) (string, error) {
	nodes, err := html.ParseFragment(strings.NewReader(snippet), &html.Node{
		Type:     html.ElementNode,
		Data:     "div",
		DataAtom: atom.Div,
	})
	if err != nil {
		return "", fmt.Errorf("parse html snippet: %w", err)
	}

	var out bytes.Buffer
	for _, node := range nodes {
		if err := renderClean(&out, node); err != nil {
			return "", err
		}
	}
	return out.String(), nil
}

// droppedElements have their entire subtree removed.
var droppedElements = map[string]bool{
	"script": true, "style": true, "iframe": true, "object": true,
	"embed": true, "form": true, "link": true, "meta": true,
}

func renderClean(out *bytes.Buffer, node *html.Node) error {
	switch node.Type {
	case html.TextNode:
		out.WriteString(html.EscapeString(node.Data))
		return nil
	case html.ElementNode:
		if droppedElements[node.Data] {
			return nil
		}
		if !allowedElements[node.Data] {
			// Unknown wrapper: keep children, lose the tag.
			return renderChildren(out, node)
		}
		out.WriteString("<" + node.Data)
		for _, attr := range node.Attr {
			if !attrAllowed(node.Data, attr) {
				continue
			}
			out.WriteString(" " + attr.Key + `="` + html.EscapeString(attr.Val) + `"`)
		}
		if voidElements[node.Data] {
			out.WriteString("/>")
			return nil
		}
		out.WriteString(">")
		if err := renderChildren(out, node); err != nil {
			return err
		}
		out.WriteString("</" + node.Data + ">")
		return nil
	case html.CommentNode, html.DoctypeNode:
		return nil
	default:
		return renderChildren(out, node)
	}
}

func renderChildren(out *bytes.Buffer, node *html.Node) error {
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		if err := renderClean(out, child); err != nil {
			return err
		}
	}
	return nil
}

var voidElements = map[string]bool{"br": true, "hr": true, "img": true}

func attrAllowed(element string, attr html.Attribute) bool {
	if attr.Namespace != "" {
		return false
	}
	key := strings.ToLower(attr.Key)
	if !allowedAttrs[key] {
		return false
	}
	if key == "href" || key == "src" {
		return safeURL(attr.Val)
	}
	return true
}

func safeURL(raw string) bool {
	value := strings.TrimSpace(strings.ToLower(raw))
	if value == "" {
		return false
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return true
	}
	if strings.HasPrefix(value, "/") || strings.HasPrefix(value, "#") {
		return true
	}
	return !strings.Contains(value, ":")
}
