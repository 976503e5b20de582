package slicepager

import (
	"fmt"
	"html"
	"strings"
)

const (
	_labelPrevious = "&laquo; Previous"
	_labelNext     = "Next &raquo;"
)

// SetCustomTemplate compiles raw and uses it for subsequent RenderPagination
// calls, replacing any previous template. On error the current template is
// kept.
func (p *Paginator[T]) SetCustomTemplate(raw string) error {
	tmpl, err := ParseTemplate(raw)
	if err != nil {
		return fmt.Errorf("cannot set custom template: %w", err)
	}

	p.template = tmpl

	return nil
}

// CustomTemplate returns the template set by SetCustomTemplate, or nil.
func (p *Paginator[T]) CustomTemplate() *Template {
	return p.template
}

// RenderPagination renders navigation controls for page.
//
// Without a custom template the result is an HTML list:
//
//	<ul class="pagination">
//	  <li><a href="?page=1">&laquo; Previous</a></li>
//	  <li><a href="?page=1">1</a></li>
//	  <li class="active"><span>2</span></li>
//	  <li class="ellipsis"><span>...</span></li>
//	  <li><a href="?page=9">9</a></li>
//	  <li><a href="?page=3">Next &raquo;</a></li>
//	</ul>
//
// rendered on a single line. Missing previous or next pages produce a
// disabled entry. The page range uses Config.LeftEdge and Config.RightEdge.
//
// With a custom template, the template is executed once against the
// PageInfo of page and no page range is computed.
func (p *Paginator[T]) RenderPagination(page int) (string, error) {
	info, err := p.GetPageInfo(page)
	if err != nil {
		return "", fmt.Errorf("cannot render pagination: %w", err)
	}

	if p.template != nil {
		return p.template.Execute(TemplateFields(info)), nil
	}

	pageRange, err := p.GetPageRange(page, info.TotalPages, p.cfg.LeftEdge, p.cfg.RightEdge)
	if err != nil {
		return "", fmt.Errorf("cannot render pagination: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(`<ul class="pagination">`)
	writeControl(&sb, info.PreviousPageURL, _labelPrevious)

	for _, item := range pageRange {
		switch {
		case item.IsEllipsis():
			sb.WriteString(`<li class="ellipsis"><span>...</span></li>`)
		case int(item) == page:
			fmt.Fprintf(&sb, `<li class="active"><span>%d</span></li>`, item)
		default:
			href := html.EscapeString(PageURL(p.cfg.BaseURL, p.cfg.QueryParam, int(item)))
			fmt.Fprintf(&sb, `<li><a href="%s">%d</a></li>`, href, item)
		}
	}

	writeControl(&sb, info.NextPageURL, _labelNext)
	sb.WriteString(`</ul>`)

	return sb.String(), nil
}

func writeControl(sb *strings.Builder, url *string, label string) {
	if url == nil {
		fmt.Fprintf(sb, `<li class="disabled"><span>%s</span></li>`, label)
		return
	}

	fmt.Fprintf(sb, `<li><a href="%s">%s</a></li>`, html.EscapeString(*url), label)
}
