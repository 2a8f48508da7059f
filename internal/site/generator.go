package site

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/wordwebnav/wwn/internal/config"
	"github.com/wordwebnav/wwn/internal/layout"
	"github.com/wordwebnav/wwn/internal/wordhtml"
)

// TrailerAnchor names the anchor placed before the document-text trailer.
const TrailerAnchor = "word_web_nav_document_text_trailer"

// Generator turns Word HTML files into WordWebNav pages.
type Generator struct {
	Metrics layout.Metrics
	Runtime config.Runtime
	// WriteAssets writes the stylesheet and script into each output
	// directory.
	WriteAssets bool

	log  *slog.Logger
	md   goldmark.Markdown
	tmpl *template.Template

	// outputLocks holds a *sync.Mutex per output path so concurrent
	// generations never write the same page or <stem>_files directory.
	outputLocks sync.Map
}

// Result describes one generated page.
type Result struct {
	ParamsPath string
	OutputPath string
	// EmbeddedFiles is the copied <stem>_files directory, if there was one.
	EmbeddedFiles       string
	TOCEntries          int
	TOCWithoutHyperlink int
	Warnings            []string
}

// pageData holds the data passed to the page template.
type pageData struct {
	Version        string
	Title          string
	Description    string
	StylesheetURL  string
	ScriptURL      string
	WasmURL        string
	WasmExecURL    string
	Wasm           bool
	Metrics        layout.Metrics
	IDs            pageIDs
	WordHead       template.HTML
	AdditionalHTML template.HTML
	BodyOpenTag    template.HTML
	HeaderBar      template.HTML
	TOC            template.HTML
	DocumentText   template.HTML
	Trailer        template.HTML
}

// NewGenerator creates a Generator from the tool configuration.
func NewGenerator(cfg *config.Config, log *slog.Logger) *Generator {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Generator{
		Metrics:     cfg.Layout.Metrics,
		Runtime:     cfg.Layout.Runtime,
		WriteAssets: cfg.Layout.WriteAssets,
		log:         log,
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.GFM,
				highlighting.NewHighlighting(
					highlighting.WithStyle("github"),
				),
			),
			goldmark.WithParserOptions(
				parser.WithAutoHeadingID(),
			),
			goldmark.WithRendererOptions(
				html.WithUnsafe(),
			),
		),
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// GenerateFile loads the parameter file at paramsPath and generates its
// page.
func (g *Generator) GenerateFile(paramsPath string) (*Result, error) {
	p, err := config.LoadParams(paramsPath)
	if err != nil {
		return nil, err
	}
	res, err := g.Generate(p)
	if err != nil {
		return nil, err
	}
	res.ParamsPath = paramsPath
	return res, nil
}

// Generate builds the page described by p and writes it to
// <output_directory_path>/<basename of input_html_path>.
func (g *Generator) Generate(p *config.Params) (*Result, error) {
	input := p.Required.InputHTMLPath
	outDir := filepath.Clean(p.Required.OutputDirectoryPath)

	info, err := os.Stat(outDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("output directory does not exist: %s", p.Required.OutputDirectoryPath)
		}
		return nil, fmt.Errorf("accessing output directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("output directory is not a directory: %s", p.Required.OutputDirectoryPath)
	}
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory: %w", err)
	}
	unlock := g.lockOutput(filepath.Join(absOut, filepath.Base(input)))
	defer unlock()

	g.log.Info("loading word html", "path", input)
	doc, err := wordhtml.LoadFile(input)
	if err != nil {
		return nil, err
	}
	res := &Result{
		OutputPath: filepath.Join(outDir, filepath.Base(input)),
		Warnings:   append([]string(nil), doc.Warnings...),
	}
	for _, w := range doc.Warnings {
		g.log.Warn(w, "path", input)
	}

	copied, err := copyEmbeddedFiles(input, outDir)
	if err != nil {
		return nil, err
	}
	if copied == "" {
		g.log.Info("no embedded-files directory found; it is optional", "path", input)
	} else {
		g.log.Info("copied embedded-files directory", "to", copied)
	}
	res.EmbeddedFiles = copied

	head, err := doc.HeadInner()
	if err != nil {
		return nil, err
	}
	toc, err := doc.ExtractTOC()
	if err != nil {
		return nil, err
	}
	g.log.Info("table-of-contents entries found", "count", toc.Entries)
	res.TOCEntries = toc.Entries
	res.TOCWithoutHyperlink = toc.WithoutHyperlink
	if toc.WithoutHyperlink > 0 {
		w := fmt.Sprintf("table-of-contents entries without a hyperlink: %d", toc.WithoutHyperlink)
		g.log.Warn(w, "path", input)
		res.Warnings = append(res.Warnings, w)
	}

	body, err := doc.BodyInner()
	if err != nil {
		return nil, err
	}
	trailer, err := g.renderTrailer(p)
	if err != nil {
		return nil, err
	}

	scripts := p.Required.ScriptsDirectoryURL
	data := pageData{
		Version:        p.Required.Version,
		Title:          p.HTMLHead.Title,
		Description:    p.HTMLHead.Description,
		StylesheetURL:  assetURL(scripts, StylesheetName),
		ScriptURL:      assetURL(scripts, ScriptName),
		WasmURL:        assetURL(scripts, WasmName),
		WasmExecURL:    assetURL(scripts, WasmExecName),
		Wasm:           g.Runtime == config.RuntimeWasm,
		Metrics:        g.Metrics,
		IDs:            ids,
		WordHead:       template.HTML(head),
		AdditionalHTML: template.HTML(p.HTMLHead.AdditionalHTML),
		BodyOpenTag:    template.HTML(doc.BodyOpenTag()),
		HeaderBar:      template.HTML(renderHeaderBar(p.HeaderBar)),
		TOC:            template.HTML(toc.HTML),
		DocumentText:   template.HTML(body),
		Trailer:        template.HTML(trailer),
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering page: %w", err)
	}

	if _, err := os.Stat(res.OutputPath); err == nil {
		g.log.Info("overwriting existing output file", "path", res.OutputPath)
	}
	if err := os.WriteFile(res.OutputPath, buf.Bytes(), 0o644); err != nil {
		return nil, fmt.Errorf("writing output html: %w", err)
	}
	g.log.Info("wrote page", "path", res.OutputPath, "warnings", len(res.Warnings))

	if g.WriteAssets {
		unlockAssets := g.lockOutput(absOut)
		_, err := WriteAssets(outDir, g.Metrics)
		unlockAssets()
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

// lockOutput acquires the lock for an output path and returns its release.
func (g *Generator) lockOutput(key string) func() {
	v, _ := g.outputLocks.LoadOrStore(key, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// renderTrailer returns the document-text trailer: a rule and the trailer
// anchor followed by the configured HTML, or by the rendered markdown when
// no HTML is set.
func (g *Generator) renderTrailer(p *config.Params) (string, error) {
	content := p.DocumentTextTrailer
	if content == "" && p.DocumentTextTrailerMarkdown != "" {
		var buf bytes.Buffer
		if err := g.md.Convert([]byte(p.DocumentTextTrailerMarkdown), &buf); err != nil {
			return "", fmt.Errorf("converting trailer markdown: %w", err)
		}
		content = buf.String()
	}
	if content == "" {
		return "", nil
	}

	var b strings.Builder
	b.WriteString("<br><br><br><hr>\n")
	b.WriteString(`<a name="` + TrailerAnchor + `"></a>` + "\n")
	b.WriteString(content)
	return b.String(), nil
}

// assetURL joins an asset name onto the scripts directory URL.
func assetURL(dir, name string) string {
	if dir == "" {
		return name
	}
	return strings.TrimRight(dir, "/") + "/" + name
}
