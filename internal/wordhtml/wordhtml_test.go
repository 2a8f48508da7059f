package wordhtml

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/net/html/atom"
)

const sampleHTML = `<html>
<head>
<meta http-equiv=Content-Type content="text/html; charset=windows-1252">
<meta name=Generator content="Microsoft Word 15 (filtered)">
<style>
<!--
p.MsoNormal {margin:0in;}
-->
</style>
</head>
<body lang=EN-US link=blue vlink="#954F72">
<div class=WordSection1>
<p class=MsoNormal>&nbsp;</p>
<p class=MsoToc1><a href="#_Toc1">1. Introduction</a></p>
<p class=MsoToc2><span class=MsoHyperlink><a href="#_Toc2">1.1 Scope</a></span></p>
<p class=MsoToc1>Appendix</p>
<p class=MsoNormal>&nbsp;</p>
<h1><a name="_Toc1">1. Introduction</a></h1>
<p class=MsoNormal>Body text.</p>
</div>
</body>
</html>
`

func mustLoad(t *testing.T, src string) *Document {
	t.Helper()
	doc, err := Load(strings.NewReader(src))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return doc
}

func TestLoad(t *testing.T) {
	doc := mustLoad(t, sampleHTML)
	if len(doc.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", doc.Warnings)
	}

	head, err := doc.HeadInner()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(head, `name="Generator"`) {
		t.Errorf("head should keep the generator meta: %s", head)
	}
	if !strings.Contains(head, "p.MsoNormal {margin:0in;}") {
		t.Errorf("head should keep Word's style block: %s", head)
	}
	if strings.Contains(head, "windows-1252") {
		t.Errorf("head should drop the charset declaration: %s", head)
	}

	want := `<body lang="EN-US" link="blue" vlink="#954F72">`
	if got := doc.BodyOpenTag(); got != want {
		t.Errorf("BodyOpenTag() = %q, want %q", got, want)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.htm")
	if err := os.WriteFile(path, []byte(sampleHTML), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	_, err := LoadFile(filepath.Join(t.TempDir(), "missing.htm"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}
}

func TestLoadErrors(t *testing.T) {
	const generator = `<meta name=Generator content="Microsoft Word 15 (filtered)">`
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "no head",
			src:  `<html><body><p>x</p></body></html>`,
			want: ErrNoHead,
		},
		{
			name: "two heads",
			src:  `<html><head>` + generator + `</head><head></head><body></body></html>`,
			want: ErrNoHead,
		},
		{
			name: "no body",
			src:  `<html><head>` + generator + `</head></html>`,
			want: ErrNoBody,
		},
		{
			name: "no generator",
			src:  `<html><head><title>x</title></head><body></body></html>`,
			want: ErrNotWordHTML,
		},
		{
			name: "unfiltered word html",
			src:  `<html><head><meta name=Generator content="Microsoft Word 15"></head><body></body></html>`,
			want: ErrNotWordHTML,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.src))
			if !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestLoadWarnings(t *testing.T) {
	const head = `<html><head><meta name=Generator content="Microsoft Word 16 (filtered)"></head>`

	doc := mustLoad(t, head+`<body><p>x</p></body></html>`)
	if len(doc.Warnings) != 1 || !strings.Contains(doc.Warnings[0], "no <div>") {
		t.Errorf("expected a missing-div warning, got %v", doc.Warnings)
	}

	doc = mustLoad(t, head+`<body><div class=Other><p>x</p></div></body></html>`)
	if len(doc.Warnings) != 1 || !strings.Contains(doc.Warnings[0], "WordSection1") {
		t.Errorf("expected a WordSection1 warning, got %v", doc.Warnings)
	}
}

func TestExtractTOC(t *testing.T) {
	doc := mustLoad(t, sampleHTML)

	toc, err := doc.ExtractTOC()
	if err != nil {
		t.Fatal(err)
	}
	if toc.Entries != 3 {
		t.Errorf("Entries = %d, want 3", toc.Entries)
	}
	if toc.WithoutHyperlink != 1 {
		t.Errorf("WithoutHyperlink = %d, want 1", toc.WithoutHyperlink)
	}

	for _, want := range []string{
		`<a href="#_Toc1" class="tocAnchor">1. Introduction</a>`,
		`<span class="MsoHyperlink tocAnchor"><a href="#_Toc2" class="tocAnchor">1.1 Scope</a></span>`,
		`<p class="MsoToc1">Appendix</p>`,
	} {
		if !strings.Contains(toc.HTML, want) {
			t.Errorf("TOC HTML missing %q:\n%s", want, toc.HTML)
		}
	}
	if strings.Contains(toc.HTML, "MsoNormal") {
		t.Errorf("TOC HTML should not contain body paragraphs:\n%s", toc.HTML)
	}

	body, err := doc.BodyInner()
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(body, "MsoToc") {
		t.Errorf("body should no longer contain TOC paragraphs:\n%s", body)
	}
	if !strings.Contains(body, "Body text.") || !strings.Contains(body, `<a name="_Toc1">`) {
		t.Errorf("body lost document text:\n%s", body)
	}
	// The leading empty paragraph goes; the one after the TOC stays.
	if n := strings.Count(body, "\u00a0"); n != 1 {
		t.Errorf("expected one remaining empty paragraph, found %d", n)
	}
}

func TestExtractTOCNone(t *testing.T) {
	src := strings.Replace(sampleHTML, "MsoToc", "MsoList", -1)
	doc := mustLoad(t, src)

	before, _ := doc.BodyInner()
	toc, err := doc.ExtractTOC()
	if err != nil {
		t.Fatal(err)
	}
	if toc.Entries != 0 || toc.HTML != "" {
		t.Errorf("expected no TOC, got %+v", toc)
	}
	after, _ := doc.BodyInner()
	if before != after {
		t.Error("body should be untouched when there is no TOC")
	}
}

func TestExtractTOCStopsAtFirstNonEntry(t *testing.T) {
	src := `<html><head><meta name=Generator content="Microsoft Word 15 (filtered)"></head>
<body><div class=WordSection1>
<p class=MsoToc1><a href="#a">A</a></p>
<p class=MsoNormal>Intro</p>
<p class=MsoToc1><a href="#b">B</a></p>
</div></body></html>`
	doc := mustLoad(t, src)

	toc, err := doc.ExtractTOC()
	if err != nil {
		t.Fatal(err)
	}
	if toc.Entries != 1 {
		t.Errorf("Entries = %d, want 1", toc.Entries)
	}
	body, _ := doc.BodyInner()
	if !strings.Contains(body, `href="#b"`) {
		t.Error("TOC-styled paragraph after the TOC should stay in the body")
	}
}

func TestSoleText(t *testing.T) {
	tests := []struct {
		src    string
		want   string
		wantOK bool
	}{
		{`<p>&nbsp;</p>`, "\u00a0", true},
		{`<p><span><b>x</b></span></p>`, "x", true},
		{`<p></p>`, "", false},
		{`<p>a<b>b</b></p>`, "", false},
	}
	for _, tt := range tests {
		doc := mustLoad(t, `<html><head><meta name=Generator content="Microsoft Word 15 (filtered)"></head><body><div class=WordSection1>`+tt.src+`</div></body></html>`)
		paragraphs := findAll(doc.body, atom.P)
		if len(paragraphs) != 1 {
			t.Fatalf("%s: expected one paragraph", tt.src)
		}
		got, ok := soleText(paragraphs[0])
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("soleText(%s) = %q, %v; want %q, %v", tt.src, got, ok, tt.want, tt.wantOK)
		}
	}
}
