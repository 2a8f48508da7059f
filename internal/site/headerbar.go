package site

import (
	"html"
	"strings"

	"github.com/wordwebnav/wwn/internal/config"
)

const (
	breadcrumbSeparator = " / "
	headerBarLinkClass  = "headerBarText headerBarHref"
	defaultAlignment    = "left"

	headerBarTableOpen = `<table width="100%" style="margin-left:auto;margin-right:auto;border-collapse:collapse;table-layout:fixed;">`
	headerBarCellOpen  = `<td  style="text-align:%s;padding:0;margin:0;text-overflow:ellipsis;overflow:hidden;white-space:nowrap;">`
)

// renderHeaderBar builds the header bar: a one-row, fixed-layout table with
// an equal-width cell per section. No sections renders nothing.
func renderHeaderBar(entries []config.HeaderBarEntry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(headerBarTableOpen + "\n<tr>\n")
	for _, entry := range entries {
		s := entry.Section
		align := s.ContentsAlignment
		if align == "" {
			align = defaultAlignment
		}
		b.WriteString(strings.Replace(headerBarCellOpen, "%s", align, 1))
		b.WriteString(renderSection(s.Contents))
		b.WriteString("</td>\n")
	}
	b.WriteString("</tr>\n</table>\n")
	return b.String()
}

func renderSection(c config.SectionContents) string {
	switch c.Kind() {
	case config.ContentBreadcrumbs:
		links := make([]string, len(c.Breadcrumbs))
		for i, crumb := range c.Breadcrumbs {
			links[i] = headerBarLink(crumb.Hyperlink)
		}
		return strings.Join(links, breadcrumbSeparator)
	case config.ContentHyperlink:
		return headerBarLink(*c.Hyperlink)
	case config.ContentHTML:
		return c.HTML
	case config.ContentText:
		return html.EscapeString(c.Text)
	default:
		return ""
	}
}

func headerBarLink(h config.Hyperlink) string {
	return `<a class="` + headerBarLinkClass + `" href="` + html.EscapeString(h.URL) + `">` + html.EscapeString(h.Text) + `</a>`
}
