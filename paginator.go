package slicepager

import (
	"fmt"
	"iter"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// PageInfo describes a single page. It is rebuilt on every call and never
// shared between calls.
type PageInfo[T any] struct {
	CurrentPage  int  `json:"currentPage"`
	HasPrevious  bool `json:"hasPrevious"`
	HasNext      bool `json:"hasNext"`
	TotalPages   int  `json:"totalPages"`
	TotalItems   int  `json:"totalItems"`
	ItemsPerPage int  `json:"itemsPerPage"`

	// Items page elements. The slice shares memory with the paginated
	// sequence but its capacity is capped at the page end.
	Items []T `json:"items"`

	// StartIndex, EndIndex 1-indexed inclusive bounds of Items within the
	// sequence. Both are 0 for an empty sequence.
	StartIndex int `json:"startIndex"`
	EndIndex   int `json:"endIndex"`

	// PreviousPageURL, NextPageURL nil when there is no such page.
	PreviousPageURL *string `json:"previousPageUrl"`
	NextPageURL     *string `json:"nextPageUrl"`
}

// Paginator splits a fixed in-memory sequence into pages.
//
// The sequence is referenced, not copied: the caller must not modify it while
// the Paginator is in use. A Paginator is not safe for concurrent use when
// SetCustomTemplate or WithLogger may run alongside other calls.
type Paginator[T any] struct {
	items    []T
	cfg      Config
	template *Template
	logger   zerolog.Logger
}

// NewPaginator creates a Paginator over items using DefaultConfig(itemsPerPage).
func NewPaginator[T any](items []T, itemsPerPage int) (*Paginator[T], error) {
	return NewPaginatorWithConfig(items, DefaultConfig(itemsPerPage))
}

// NewPaginatorWithConfig creates a Paginator over items. Returns an error
// wrapping ErrInvalidConfig if cfg is invalid or if items is empty while
// cfg.RejectEmpty is set.
func NewPaginatorWithConfig[T any](items []T, cfg Config) (*Paginator[T], error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("cannot create paginator: %w", err)
	}

	if cfg.RejectEmpty && len(items) == 0 {
		return nil, fmt.Errorf("cannot create paginator: %w: empty sequence is rejected", ErrInvalidConfig)
	}

	return &Paginator[T]{
		items:  items,
		cfg:    cfg,
		logger: zerolog.Nop(),
	}, nil
}

// WithLogger sets the logger used for debug events.
func (p *Paginator[T]) WithLogger(logger zerolog.Logger) *Paginator[T] {
	p.logger = logger

	return p
}

// Config returns the effective configuration.
func (p *Paginator[T]) Config() Config {
	return p.cfg
}

// TotalItems returns the length of the sequence.
func (p *Paginator[T]) TotalItems() int {
	return len(p.items)
}

// TotalPages returns the number of pages. An empty sequence has exactly one
// (empty) page. A trailing page with fewer than Orphans elements is folded
// into its predecessor.
func (p *Paginator[T]) TotalPages() int {
	return countPages(len(p.items), p.cfg.ItemsPerPage, p.cfg.Orphans)
}

func countPages(total, perPage, orphans int) int {
	if total == 0 {
		return 1
	}

	pages := (total + perPage - 1) / perPage
	if last := total - (pages-1)*perPage; pages > 1 && last < orphans {
		pages--
	}

	return pages
}

func (p *Paginator[T]) validatePage(page int) error {
	if total := p.TotalPages(); page < 1 || page > total {
		return fmt.Errorf("%w: page %d is not within [1, %d]", ErrOutOfRange, page, total)
	}

	return nil
}

// bounds returns the half-open [start, end) range of page within the
// sequence. The page must be valid.
func (p *Paginator[T]) bounds(page int) (int, int) {
	total := len(p.items)
	start := (page - 1) * p.cfg.ItemsPerPage
	end := min(start+p.cfg.ItemsPerPage, total)

	// The last page absorbs a merged orphan page.
	if page == p.TotalPages() && end < total {
		p.logger.Debug().
			Int("page", page).
			Int("orphans", total-end).
			Msg("merging orphan elements into last page")
		end = total
	}

	return start, end
}

func (p *Paginator[T]) slice(page int) []T {
	start, end := p.bounds(page)

	return p.items[start:end:end]
}

// GetPage returns the elements of page. Returns an error wrapping
// ErrOutOfRange if page is not within [1, TotalPages()].
func (p *Paginator[T]) GetPage(page int) ([]T, error) {
	if err := p.validatePage(page); err != nil {
		return nil, fmt.Errorf("cannot get page: %w", err)
	}

	return p.slice(page), nil
}

// GetPaginatedItems is GetPage that returns nil instead of an error.
func (p *Paginator[T]) GetPaginatedItems(page int) []T {
	items, err := p.GetPage(page)
	if err != nil {
		return nil
	}

	return items
}

// HasPrevious reports whether a valid page precedes page.
func (p *Paginator[T]) HasPrevious(page int) bool {
	return page > 1 && page <= p.TotalPages()
}

// HasNext reports whether a page follows page.
func (p *Paginator[T]) HasNext(page int) bool {
	return page < p.TotalPages()
}

// GetPageRange returns the page numbers for navigation controls around
// current; see PageRange. The window radius comes from Config.OnEachSide.
func (p *Paginator[T]) GetPageRange(current, numPages, leftEdge, rightEdge int) ([]RangeItem, error) {
	return PageRange(current, numPages, leftEdge, rightEdge, p.cfg.OnEachSide)
}

// GetPageURL builds "<baseURL>?<queryParam>=<page>". An empty queryParam
// means DefaultQueryParam. Returns an error wrapping ErrOutOfRange under the
// same rule as GetPage.
func (p *Paginator[T]) GetPageURL(page int, baseURL, queryParam string) (string, error) {
	if err := p.validatePage(page); err != nil {
		return "", fmt.Errorf("cannot build page url: %w", err)
	}

	return PageURL(baseURL, lo.Ternary(queryParam == "", DefaultQueryParam, queryParam), page), nil
}

// GetPageInfo assembles the navigation metadata of page. URLs use
// Config.BaseURL and Config.QueryParam.
func (p *Paginator[T]) GetPageInfo(page int) (*PageInfo[T], error) {
	if err := p.validatePage(page); err != nil {
		return nil, fmt.Errorf("cannot get page info: %w", err)
	}

	start, end := p.bounds(page)
	info := &PageInfo[T]{
		CurrentPage:  page,
		HasPrevious:  p.HasPrevious(page),
		HasNext:      p.HasNext(page),
		TotalPages:   p.TotalPages(),
		TotalItems:   len(p.items),
		ItemsPerPage: p.cfg.ItemsPerPage,
		Items:        p.items[start:end:end],
		StartIndex:   lo.Ternary(end > start, start+1, 0),
		EndIndex:     end,
	}

	if info.HasPrevious {
		info.PreviousPageURL = lo.ToPtr(PageURL(p.cfg.BaseURL, p.cfg.QueryParam, page-1))
	}
	if info.HasNext {
		info.NextPageURL = lo.ToPtr(PageURL(p.cfg.BaseURL, p.cfg.QueryParam, page+1))
	}

	p.logger.Debug().
		Int("page", page).
		Int("total_pages", info.TotalPages).
		Int("start_index", info.StartIndex).
		Int("end_index", info.EndIndex).
		Msg("page computed")

	return info, nil
}

// view returns a Paginator over items sharing the receiver's settings.
func (p *Paginator[T]) view(items []T) *Paginator[T] {
	return &Paginator[T]{
		items:    items,
		cfg:      p.cfg,
		template: p.template,
		logger:   p.logger,
	}
}

// Paginate returns the PageInfo of page. When sortKey is not nil the whole
// sequence is sorted first (see Sort); the sorted order is used for this
// call only and the Paginator keeps its original sequence.
func (p *Paginator[T]) Paginate(page int, sortKey KeyFunc[T], reverse bool) (*PageInfo[T], error) {
	if sortKey == nil {
		return p.GetPageInfo(page)
	}

	sorted, err := Sort(p.items, sortKey, reverse)
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	p.logger.Debug().Bool("reverse", reverse).Int("total_items", len(sorted)).Msg("sequence sorted")

	return p.view(sorted).GetPageInfo(page)
}

// PaginateOrdered is Paginate with a multi-key ordering. Empty orderings
// leave the sequence as is.
func (p *Paginator[T]) PaginateOrdered(page int, orderings Orderings, getters Getters[T]) (*PageInfo[T], error) {
	if len(orderings) == 0 {
		return p.GetPageInfo(page)
	}

	sorted, err := SortOrdered(p.items, orderings, getters)
	if err != nil {
		return nil, fmt.Errorf("cannot paginate: %w", err)
	}

	p.logger.Debug().Str("orderings", orderings.String()).Msg("sequence sorted")

	return p.view(sorted).GetPageInfo(page)
}

// Pages iterates over all pages in order. Concatenating the yielded slices
// reproduces the sequence.
func (p *Paginator[T]) Pages() iter.Seq2[int, []T] {
	return func(yield func(int, []T) bool) {
		for page := 1; page <= p.TotalPages(); page++ {
			if !yield(page, p.slice(page)) {
				return
			}
		}
	}
}
