// Package wordhtml loads HTML saved by Microsoft Word as "Web Page,
// Filtered" and splits it into the parts a WordWebNav page is built from:
// the head contents, the body opening tag, the body contents and the
// table of contents.
package wordhtml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/net/html/charset"
)

var (
	// ErrNoHead means the input does not have exactly one <head> element.
	ErrNoHead = errors.New("word html: expected exactly one <head> element")
	// ErrNoBody means the input does not have exactly one <body> element.
	ErrNoBody = errors.New("word html: expected exactly one <body> element")
	// ErrNotWordHTML means the Microsoft Word generator signature is missing.
	ErrNotWordHTML = errors.New(`word html: missing signature <meta name=Generator content="Microsoft Word [version] (filtered)">`)
)

var generatorSignature = regexp.MustCompile(`^Microsoft Word [0-9]+ \(filtered\)$`)

// Document is a parsed Word HTML file.
type Document struct {
	root *html.Node
	head *html.Node
	body *html.Node

	// Warnings are informational findings that do not stop generation.
	Warnings []string
}

// LoadFile opens and loads the Word HTML file at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening word html: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Load parses Word HTML from r. Input is decoded to UTF-8 using the
// charset declared in the document (Word typically writes windows-1252).
func Load(r io.Reader) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading word html: %w", err)
	}

	decoded, err := charset.NewReader(bytes.NewReader(raw), "text/html")
	if err != nil {
		return nil, fmt.Errorf("detecting word html encoding: %w", err)
	}
	src, err := io.ReadAll(decoded)
	if err != nil {
		return nil, fmt.Errorf("decoding word html: %w", err)
	}

	// The parser synthesizes missing head and body elements, so count the
	// tags that are actually present in the source.
	heads, bodies := countTags(src)
	if heads != 1 {
		return nil, ErrNoHead
	}
	if bodies != 1 {
		return nil, ErrNoBody
	}

	root, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("parsing word html: %w", err)
	}

	doc := &Document{
		root: root,
		head: findFirst(root, atom.Head),
		body: findFirst(root, atom.Body),
	}
	if doc.head == nil {
		return nil, ErrNoHead
	}
	if doc.body == nil {
		return nil, ErrNoBody
	}

	if !hasGeneratorSignature(doc.head) {
		return nil, ErrNotWordHTML
	}

	divs := findAll(root, atom.Div)
	switch {
	case len(divs) == 0:
		doc.Warnings = append(doc.Warnings, "the input has no <div> sections")
	case !anyHasClass(divs, "WordSection1"):
		doc.Warnings = append(doc.Warnings, "the input has no <div class=WordSection1> section")
	}

	return doc, nil
}

func countTags(src []byte) (heads, bodies int) {
	z := html.NewTokenizer(bytes.NewReader(src))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return heads, bodies
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			switch atom.Lookup(name) {
			case atom.Head:
				heads++
			case atom.Body:
				bodies++
			}
		}
	}
}

func hasGeneratorSignature(head *html.Node) bool {
	for _, meta := range findAll(head, atom.Meta) {
		if name, ok := attr(meta, "name"); !ok || name != "Generator" {
			continue
		}
		content, ok := attr(meta, "content")
		return ok && generatorSignature.MatchString(content)
	}
	return false
}

// HeadInner renders the contents of <head>. Charset declarations are left
// out because the generated page is always written as UTF-8.
func (d *Document) HeadInner() (string, error) {
	var buf bytes.Buffer
	for c := d.head.FirstChild; c != nil; c = c.NextSibling {
		if isCharsetMeta(c) {
			continue
		}
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("rendering head: %w", err)
		}
	}
	return strings.TrimSpace(buf.String()) + "\n", nil
}

func isCharsetMeta(n *html.Node) bool {
	if n.Type != html.ElementNode || n.DataAtom != atom.Meta {
		return false
	}
	if _, ok := attr(n, "charset"); ok {
		return true
	}
	equiv, ok := attr(n, "http-equiv")
	return ok && strings.EqualFold(equiv, "Content-Type")
}

// BodyOpenTag renders the <body ...> opening tag with Word's attributes.
func (d *Document) BodyOpenTag() string {
	var b strings.Builder
	b.WriteString("<body")
	for _, a := range d.body.Attr {
		b.WriteByte(' ')
		b.WriteString(a.Key)
		b.WriteString(`="`)
		b.WriteString(html.EscapeString(a.Val))
		b.WriteByte('"')
	}
	b.WriteByte('>')
	return b.String()
}

// BodyInner renders the contents of <body>. Call it after ExtractTOC to
// get the document text without the table of contents.
func (d *Document) BodyInner() (string, error) {
	var buf bytes.Buffer
	for c := d.body.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", fmt.Errorf("rendering body: %w", err)
		}
	}
	return buf.String(), nil
}

func findFirst(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

// findAll returns the descendants of n with the given tag, in document
// order.
func findAll(n *html.Node, a atom.Atom) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == a {
				out = append(out, c)
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func classes(n *html.Node) []string {
	v, _ := attr(n, "class")
	return strings.Fields(v)
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

func anyHasClass(nodes []*html.Node, class string) bool {
	for _, n := range nodes {
		if hasClass(n, class) {
			return true
		}
	}
	return false
}

func addClass(n *html.Node, class string) {
	for i, a := range n.Attr {
		if a.Key == "class" {
			n.Attr[i].Val = strings.TrimSpace(a.Val + " " + class)
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
}
