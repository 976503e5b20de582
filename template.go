package slicepager

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/valyala/fasttemplate"
)

// Template field names. Each one resolves to the PageInfo field of the same
// meaning.
const (
	FieldCurrentPage     = "current_page"
	FieldHasPrevious     = "has_previous"
	FieldHasNext         = "has_next"
	FieldTotalPages      = "total_pages"
	FieldTotalItems      = "total_items"
	FieldItemsPerPage    = "items_per_page"
	FieldItems           = "items"
	FieldStartIndex      = "start_index"
	FieldEndIndex        = "end_index"
	FieldPreviousPageURL = "previous_page_url"
	FieldNextPageURL     = "next_page_url"
)

var _templateFields = []string{
	FieldCurrentPage,
	FieldHasPrevious,
	FieldHasNext,
	FieldTotalPages,
	FieldTotalItems,
	FieldItemsPerPage,
	FieldItems,
	FieldStartIndex,
	FieldEndIndex,
	FieldPreviousPageURL,
	FieldNextPageURL,
}

// Template is a compiled placeholder template.
//
// Placeholders have the form {field} where field is one of the Field*
// constants; whitespace around the name is ignored. Text outside
// placeholders, including a lone '}', is copied as is. Values are
// substituted without escaping; absent URLs render as an empty string.
//
//	<p>Page {current_page} of {total_pages}</p><a href="{next_page_url}">next</a>
type Template struct {
	raw  string
	tmpl *fasttemplate.Template
}

const (
	_tagStart = "{"
	_tagEnd   = "}"
)

// ParseTemplate compiles raw. Returns an error wrapping ErrInvalidConfig for
// an unclosed placeholder or an unknown field; the error names the closest
// known field.
func ParseTemplate(raw string) (*Template, error) {
	tmpl, err := fasttemplate.NewTemplate(raw, _tagStart, _tagEnd)
	if err != nil {
		return nil, fmt.Errorf("%w: unclosed placeholder in template: %w", ErrInvalidConfig, err)
	}

	// Dry run to reject unknown fields before the template is ever rendered.
	_, err = tmpl.ExecuteFuncStringWithErr(func(_ io.Writer, tag string) (int, error) {
		field := strings.TrimSpace(tag)
		if !slices.Contains(_templateFields, field) {
			return 0, fmt.Errorf("%w: unknown template field '%s'. closest: '%s'",
				ErrInvalidConfig, field, closest(field, _templateFields))
		}

		return 0, nil
	})
	if err != nil {
		return nil, err
	}

	return &Template{
		raw:  raw,
		tmpl: tmpl,
	}, nil
}

// String - implements fmt.Stringer. Returns the template source.
func (t *Template) String() string {
	if t == nil {
		return ""
	}

	return t.raw
}

// Execute substitutes every placeholder with its value from fields.
// Missing fields render as an empty string.
func (t *Template) Execute(fields map[string]string) string {
	return t.tmpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		return io.WriteString(w, fields[strings.TrimSpace(tag)])
	})
}

// TemplateFields returns the values of info keyed by template field name.
func TemplateFields[T any](info *PageInfo[T]) map[string]string {
	return map[string]string{
		FieldCurrentPage:     strconv.Itoa(info.CurrentPage),
		FieldHasPrevious:     strconv.FormatBool(info.HasPrevious),
		FieldHasNext:         strconv.FormatBool(info.HasNext),
		FieldTotalPages:      strconv.Itoa(info.TotalPages),
		FieldTotalItems:      strconv.Itoa(info.TotalItems),
		FieldItemsPerPage:    strconv.Itoa(info.ItemsPerPage),
		FieldItems:           fmt.Sprint(info.Items),
		FieldStartIndex:      strconv.Itoa(info.StartIndex),
		FieldEndIndex:        strconv.Itoa(info.EndIndex),
		FieldPreviousPageURL: lo.FromPtrOr(info.PreviousPageURL, ""),
		FieldNextPageURL:     lo.FromPtrOr(info.NextPageURL, ""),
	}
}
