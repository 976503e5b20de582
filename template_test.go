package slicepager

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func Test_ParseTemplate(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		ok      bool
		errText string
	}{
		{"plain text", "no placeholders", true, ""},
		{"fields", "{current_page}/{total_pages}", true, ""},
		{"padded field", "{ current_page }", true, ""},
		{"stray closing brace", "page } of {total_pages}", true, ""},
		{"unknown field", "{curent_page}", false, "closest: 'current_page'"},
		{"empty field", "{}", false, "unknown template field"},
		{"unclosed", "page {current_page", false, "unclosed placeholder"},
		{"nested", "{current_{page}}", false, "unknown template field 'current_{page'"},
		{"unknown after valid", "{current_page} {totl_pages}", false, "closest: 'total_pages'"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpl, err := ParseTemplate(tt.raw)
			if !tt.ok {
				require.ErrorIs(t, err, ErrInvalidConfig)
				require.ErrorContains(t, err, tt.errText)
				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.raw, tmpl.String())
		})
	}
}

func Test_Template_Execute(t *testing.T) {
	tmpl, err := ParseTemplate("page} { current_page } of {total_pages}: {items} [{previous_page_url}|{next_page_url}]")
	require.NoError(t, err)

	got := tmpl.Execute(TemplateFields(&PageInfo[int]{
		CurrentPage: 1,
		TotalPages:  4,
		Items:       []int{1, 2, 3},
		NextPageURL: lo.ToPtr("?page=2"),
	}))
	require.Equal(t, "page} 1 of 4: [1 2 3] [|?page=2]", got)
}

func Test_TemplateFields(t *testing.T) {
	fields := TemplateFields(&PageInfo[string]{
		CurrentPage:     2,
		HasPrevious:     true,
		HasNext:         false,
		TotalPages:      2,
		TotalItems:      4,
		ItemsPerPage:    3,
		Items:           []string{"d"},
		StartIndex:      4,
		EndIndex:        4,
		PreviousPageURL: lo.ToPtr("?page=1"),
	})

	require.Equal(t, map[string]string{
		FieldCurrentPage:     "2",
		FieldHasPrevious:     "true",
		FieldHasNext:         "false",
		FieldTotalPages:      "2",
		FieldTotalItems:      "4",
		FieldItemsPerPage:    "3",
		FieldItems:           "[d]",
		FieldStartIndex:      "4",
		FieldEndIndex:        "4",
		FieldPreviousPageURL: "?page=1",
		FieldNextPageURL:     "",
	}, fields)
	require.Len(t, fields, len(_templateFields))
}
