package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// ParamsVersion is the only parameter-file version this build understands.
const ParamsVersion = "1.0"

// ErrMissingRequired reports a required parameter-file key that is absent
// or empty.
var ErrMissingRequired = errors.New("missing required parameter")

// Params is one page's parameter file.
type Params struct {
	Required RequiredParams `yaml:"required" koanf:"required"`
	HTMLHead HTMLHeadParams `yaml:"html_head_section,omitempty" koanf:"html_head_section"`
	HeaderBar []HeaderBarEntry `yaml:"header_bar,omitempty" koanf:"header_bar"`
	// DocumentTextTrailer is raw HTML appended after the document text.
	DocumentTextTrailer string `yaml:"document_text_trailer,omitempty" koanf:"document_text_trailer"`
	// DocumentTextTrailerMarkdown is rendered to HTML and used when
	// DocumentTextTrailer is empty.
	DocumentTextTrailerMarkdown string `yaml:"document_text_trailer_markdown,omitempty" koanf:"document_text_trailer_markdown"`
}

// RequiredParams are the keys every parameter file must set.
type RequiredParams struct {
	Version             string `yaml:"version" koanf:"version"`
	InputHTMLPath       string `yaml:"input_html_path" koanf:"input_html_path"`
	OutputDirectoryPath string `yaml:"output_directory_path" koanf:"output_directory_path"`
	ScriptsDirectoryURL string `yaml:"scripts_directory_url" koanf:"scripts_directory_url"`
}

// HTMLHeadParams feed the generated page's <head>.
type HTMLHeadParams struct {
	Title          string `yaml:"title,omitempty" koanf:"title"`
	Description    string `yaml:"description,omitempty" koanf:"description"`
	AdditionalHTML string `yaml:"additional_html,omitempty" koanf:"additional_html"`
}

// HeaderBarEntry wraps one header bar section.
type HeaderBarEntry struct {
	Section HeaderBarSection `yaml:"section" koanf:"section"`
}

// HeaderBarSection is one cell of the header bar.
type HeaderBarSection struct {
	Contents          SectionContents `yaml:"contents" koanf:"contents"`
	ContentsAlignment string          `yaml:"contents_alignment,omitempty" koanf:"contents_alignment"`
}

// SectionContents holds exactly one kind of header bar content. A section
// with none of them renders as an empty cell.
//
// Text and hyperlink text and urls are HTML-escaped when rendered. HTML is
// inserted as raw markup, so entities such as &copy; and inline tags belong
// there.
type SectionContents struct {
	Breadcrumbs []Breadcrumb `yaml:"breadcrumbs,omitempty" koanf:"breadcrumbs"`
	Hyperlink   *Hyperlink   `yaml:"hyperlink,omitempty" koanf:"hyperlink"`
	HTML        string       `yaml:"html,omitempty" koanf:"html"`
	Text        string       `yaml:"text,omitempty" koanf:"text"`
}

// Breadcrumb is one link in a breadcrumb trail.
type Breadcrumb struct {
	Hyperlink Hyperlink `yaml:"hyperlink" koanf:"hyperlink"`
}

// Hyperlink is a text/url pair.
type Hyperlink struct {
	Text string `yaml:"text" koanf:"text"`
	URL  string `yaml:"url" koanf:"url"`
}

// ContentKind identifies which content a header bar section carries.
type ContentKind string

const (
	ContentBreadcrumbs ContentKind = "breadcrumbs"
	ContentHyperlink   ContentKind = "hyperlink"
	ContentHTML        ContentKind = "html"
	ContentText        ContentKind = "text"
	ContentEmpty       ContentKind = "empty"
)

// Kinds lists every content kind set on c, in precedence order.
func (c SectionContents) Kinds() []ContentKind {
	var kinds []ContentKind
	if len(c.Breadcrumbs) > 0 {
		kinds = append(kinds, ContentBreadcrumbs)
	}
	if c.Hyperlink != nil {
		kinds = append(kinds, ContentHyperlink)
	}
	if c.HTML != "" {
		kinds = append(kinds, ContentHTML)
	}
	if c.Text != "" {
		kinds = append(kinds, ContentText)
	}
	return kinds
}

// Kind returns the section's content kind.
func (c SectionContents) Kind() ContentKind {
	if kinds := c.Kinds(); len(kinds) > 0 {
		return kinds[0]
	}
	return ContentEmpty
}

var validAlignments = map[string]bool{
	"":        true,
	"left":    true,
	"right":   true,
	"center":  true,
	"justify": true,
}

// LoadParams reads and validates a parameter file.
func LoadParams(path string) (*Params, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("opening parameter file: %w", err)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("parsing parameter file %s: %w", path, err)
	}
	if len(k.Keys()) == 0 {
		return nil, fmt.Errorf("parameter file %s has no keys", path)
	}

	p := &Params{}
	if err := k.Unmarshal("", p); err != nil {
		return nil, fmt.Errorf("unmarshalling parameter file %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("parameter file %s: %w", path, err)
	}
	return p, nil
}

// Validate checks required keys and the handful of enumerated values.
func (p *Params) Validate() error {
	required := []struct {
		key, value string
	}{
		{"required.version", p.Required.Version},
		{"required.input_html_path", p.Required.InputHTMLPath},
		{"required.output_directory_path", p.Required.OutputDirectoryPath},
		{"required.scripts_directory_url", p.Required.ScriptsDirectoryURL},
	}
	for _, r := range required {
		if r.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingRequired, r.key)
		}
	}
	if p.Required.Version != ParamsVersion {
		return fmt.Errorf("required.version %q is not supported, want %q", p.Required.Version, ParamsVersion)
	}

	for i, entry := range p.HeaderBar {
		s := entry.Section
		if !validAlignments[s.ContentsAlignment] {
			return fmt.Errorf("header_bar[%d]: invalid contents_alignment %q: must be one of left, right, center, justify", i, s.ContentsAlignment)
		}
		if kinds := s.Contents.Kinds(); len(kinds) > 1 {
			return fmt.Errorf("header_bar[%d]: contents has %d kinds %v, want one", i, len(kinds), kinds)
		}
		for j, b := range s.Contents.Breadcrumbs {
			if err := b.Hyperlink.validate(); err != nil {
				return fmt.Errorf("header_bar[%d].breadcrumbs[%d]: %w", i, j, err)
			}
		}
		if h := s.Contents.Hyperlink; h != nil {
			if err := h.validate(); err != nil {
				return fmt.Errorf("header_bar[%d].hyperlink: %w", i, err)
			}
		}
	}
	return nil
}

func (h Hyperlink) validate() error {
	if h.Text == "" {
		return fmt.Errorf("%w: hyperlink.text", ErrMissingRequired)
	}
	if h.URL == "" {
		return fmt.Errorf("%w: hyperlink.url", ErrMissingRequired)
	}
	return nil
}

// Save writes the parameter file as YAML.
func (p *Params) Save(path string) error {
	data, err := yamlv3.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshalling parameter file: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing parameter file to %s: %w", path, err)
	}
	return nil
}
