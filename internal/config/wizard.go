package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
)

// PromptParamsPath asks for a parameter-file path on the terminal.
func PromptParamsPath() (string, error) {
	prompt := promptui.Prompt{
		Label:    "Parameter-file path",
		Validate: nonEmpty,
	}
	path, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("parameter-file prompt: %w", err)
	}
	return strings.TrimSpace(path), nil
}

// RunWizard asks for the required parameters and writes a starter
// parameter file to path.
func RunWizard(path string) (*Params, error) {
	fmt.Println("Creating a WordWebNav parameter file.")
	fmt.Println()

	input, err := (&promptui.Prompt{
		Label:    "Word HTML file (saved as \"Web Page, Filtered\")",
		Default:  detectWordHTML(),
		Validate: nonEmpty,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("input html path: %w", err)
	}

	output, err := (&promptui.Prompt{
		Label:    "Output directory",
		Default:  "site",
		Validate: nonEmpty,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("output dir: %w", err)
	}

	scripts, err := (&promptui.Prompt{
		Label:    "URL of the directory holding word_web_nav.css and word_web_nav.js",
		Default:  ".",
		Validate: nonEmpty,
	}).Run()
	if err != nil {
		return nil, fmt.Errorf("scripts url: %w", err)
	}

	title, err := (&promptui.Prompt{Label: "Page title (optional)"}).Run()
	if err != nil {
		return nil, fmt.Errorf("title: %w", err)
	}

	alignPrompt := promptui.Select{
		Label: "Header bar",
		Items: []string{"none", "breadcrumb to the page itself", "plain text title"},
	}
	headerIdx, _, err := alignPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("header bar selection: %w", err)
	}

	p := &Params{
		Required: RequiredParams{
			Version:             ParamsVersion,
			InputHTMLPath:       strings.TrimSpace(input),
			OutputDirectoryPath: strings.TrimSpace(output),
			ScriptsDirectoryURL: strings.TrimSpace(scripts),
		},
		HTMLHead: HTMLHeadParams{Title: strings.TrimSpace(title)},
	}
	p.HeaderBar = starterHeaderBar(headerIdx, p)

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !fileExists(p.Required.InputHTMLPath) {
		fmt.Printf("\nNote: %s does not exist yet; save the Word document there before running wwn create.\n", p.Required.InputHTMLPath)
	}
	if err := p.Save(path); err != nil {
		return nil, fmt.Errorf("saving parameter file: %w", err)
	}

	fmt.Printf("\nParameter file saved to %s\n", path)
	return p, nil
}

// starterHeaderBar builds the header bar picked in the wizard.
func starterHeaderBar(choice int, p *Params) []HeaderBarEntry {
	label := p.HTMLHead.Title
	if label == "" {
		label = strings.TrimSuffix(filepath.Base(p.Required.InputHTMLPath), filepath.Ext(p.Required.InputHTMLPath))
	}
	switch choice {
	case 1:
		return []HeaderBarEntry{{Section: HeaderBarSection{
			Contents: SectionContents{Breadcrumbs: []Breadcrumb{
				{Hyperlink: Hyperlink{Text: label, URL: filepath.Base(p.Required.InputHTMLPath)}},
			}},
		}}}
	case 2:
		return []HeaderBarEntry{{Section: HeaderBarSection{
			Contents:          SectionContents{Text: label},
			ContentsAlignment: "center",
		}}}
	default:
		return nil
	}
}

// detectWordHTML returns the first .htm/.html file in the working
// directory, for use as a prompt default.
func detectWordHTML() string {
	for _, pattern := range []string{"*.htm", "*.html"} {
		matches, _ := filepath.Glob(pattern)
		if len(matches) > 0 {
			return matches[0]
		}
	}
	return ""
}

func nonEmpty(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("value is required")
	}
	return nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
