package slicepager

import (
	"fmt"

	"github.com/samber/lo"
)

const (
	MaxLimit     = 100
	DefaultLimit = 10
)

// IsNormalizedLimitMax clamps a requested page size: non-positive values
// become DefaultLimit and values above maxLimit become maxLimit. The second
// result is true when limit was accepted unchanged.
func IsNormalizedLimitMax(limit int, maxLimit int) (int, bool) {
	if limit <= 0 {
		return DefaultLimit, false
	}

	clamped := min(limit, maxLimit)

	return clamped, clamped == limit
}

func NormalizeLimitMax(limit int, maxLimit int) int {
	ret, _ := IsNormalizedLimitMax(limit, maxLimit)
	return ret
}

func NormalizeLimit(limit int) int {
	return NormalizeLimitMax(limit, MaxLimit)
}

// RawPageRequest is intended for API payloads. For proper code generation, inline it:
//
//	type MyFilter struct {
//	    Paging RawPageRequest `json:",inline"`
//	}
type RawPageRequest struct {
	// Page - requested page number. Zero means the first page.
	Page int `json:"page"`
	// PerPage - requested page size, normalized with NormalizeLimit.
	PerPage int `json:"perPage"`
	// Sort - orderings in the form "column asc|desc", applied in order.
	Sort []string `json:"sort"`
}

// PageRequest is a decoded RawPageRequest.
type PageRequest struct {
	Page      int
	PerPage   int
	Orderings Orderings
}

// Decode normalizes the page number and size and parses the sort columns
// against getters.
func Decode[T any](raw RawPageRequest, getters Getters[T]) (PageRequest, error) {
	orderings, err := ParseSort(raw.Sort, getters)
	if err != nil {
		return PageRequest{}, fmt.Errorf("cannot decode page request: %w", err)
	}

	return PageRequest{
		Page:      lo.Ternary(raw.Page == 0, 1, raw.Page),
		PerPage:   NormalizeLimit(raw.PerPage),
		Orderings: orderings,
	}, nil
}

// Query serves a RawPageRequest over items. cfg supplies everything except
// the page size, which comes from the request.
func Query[T any](items []T, raw RawPageRequest, getters Getters[T], cfg Config) (*PageInfo[T], error) {
	req, err := Decode(raw, getters)
	if err != nil {
		return nil, err
	}

	cfg.ItemsPerPage = req.PerPage
	p, err := NewPaginatorWithConfig(items, cfg)
	if err != nil {
		return nil, err
	}

	return p.PaginateOrdered(req.Page, req.Orderings, getters)
}
