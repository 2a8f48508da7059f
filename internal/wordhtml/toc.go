package wordhtml

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TOCAnchorClass marks the hyperlinks of navigation-pane entries.
const TOCAnchorClass = "tocAnchor"

var tocClass = regexp.MustCompile(`^MsoToc[1-9]$`)

// TOC is the table of contents moved out of the document body.
type TOC struct {
	HTML string
	// Entries is the number of TOC paragraphs found.
	Entries int
	// WithoutHyperlink counts entries whose first text is not inside a link.
	WithoutHyperlink int
}

// ExtractTOC moves Word's table of contents out of the body. Only a TOC at
// the start of the document is recognized: after any leading
// whitespace-only paragraphs, the run of paragraphs whose single class is
// MsoToc1..MsoToc9. When no TOC is found the body is left untouched.
func (d *Document) ExtractTOC() (TOC, error) {
	paragraphs := findAll(d.body, atom.P)

	var empty []*html.Node
	for _, p := range paragraphs {
		text, ok := soleText(p)
		if !ok || strings.TrimSpace(text) != "" {
			break
		}
		empty = append(empty, p)
	}

	var entries []*html.Node
	for _, p := range paragraphs[len(empty):] {
		cls := classes(p)
		if len(cls) != 1 || !tocClass.MatchString(cls[0]) {
			break
		}
		entries = append(entries, p)
	}
	if len(entries) == 0 {
		return TOC{}, nil
	}

	for _, p := range empty {
		p.Parent.RemoveChild(p)
	}

	var moved []*html.Node
	for _, p := range entries {
		next := p.NextSibling
		p.Parent.RemoveChild(p)
		moved = append(moved, p)
		if next != nil && isNewlines(next) {
			next.Parent.RemoveChild(next)
			moved = append(moved, next)
		}
	}

	toc := TOC{Entries: len(entries)}
	for _, p := range entries {
		if !markAnchors(p) {
			toc.WithoutHyperlink++
		}
	}

	var buf bytes.Buffer
	for _, n := range moved {
		if err := html.Render(&buf, n); err != nil {
			return TOC{}, fmt.Errorf("rendering table of contents: %w", err)
		}
	}
	toc.HTML = buf.String()
	return toc, nil
}

// markAnchors adds TOCAnchorClass to the entry's MsoHyperlink span and to
// the link holding its first text. It reports whether such a link exists.
func markAnchors(p *html.Node) bool {
	if span := findWithClass(p, atom.Span, "MsoHyperlink"); span != nil {
		addClass(span, TOCAnchorClass)
	}

	text := firstText(p)
	if text == nil {
		return false
	}
	for n := text.Parent; n != nil; n = n.Parent {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.DataAtom {
		case atom.A:
			addClass(n, TOCAnchorClass)
			return true
		case atom.P:
			return false
		}
	}
	return false
}

// soleText returns the text of n when n wraps exactly one text node,
// possibly through a chain of single-child elements.
func soleText(n *html.Node) (string, bool) {
	for {
		c := n.FirstChild
		if c == nil || c.NextSibling != nil {
			return "", false
		}
		if c.Type == html.TextNode {
			return c.Data, true
		}
		if c.Type != html.ElementNode {
			return "", false
		}
		n = c
	}
}

func isNewlines(n *html.Node) bool {
	return n.Type == html.TextNode && n.Data != "" && strings.Trim(n.Data, "\n") == ""
}

func firstText(n *html.Node) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode {
			return c
		}
		if found := firstText(c); found != nil {
			return found
		}
	}
	return nil
}

func findWithClass(n *html.Node, a atom.Atom, class string) *html.Node {
	for _, c := range findAll(n, a) {
		if hasClass(c, class) {
			return c
		}
	}
	return nil
}
