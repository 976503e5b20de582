// Package slicepager provides in-memory pagination and sorting primitives.
//
// Overview
//
// slicepager splits a fully materialized slice into fixed-size pages and
// computes everything needed to navigate them:
//   - Paginator: page slices, previous/next checks, PageInfo metadata, page
//     URLs and rendered navigation controls. An optional orphan threshold
//     folds a nearly empty trailing page into its predecessor.
//   - PageRange: compact page number lists with Ellipsis markers.
//   - Sort, SortBy, SortOrdered: stable sorts applied before slicing; the
//     paginated sequence itself is never reordered.
//   - Template: a minimal {field} placeholder template for custom markup.
//
// Key concepts
//   - Pages are 1-indexed. Invalid page numbers return ErrOutOfRange, never
//     a clamped page. An empty sequence has a single empty page.
//   - Orderings and Getters: multi-column ordering with explicit directions,
//     and the mapping from column names to element keys.
//   - RawPageRequest: API payload decoding with page size normalization.
//
// See examples/basic for a runnable walkthrough.
package slicepager
