package slicepager

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Direction defines the sort direction for a single ordering key.
type Direction string

const (
	DirectionASC  Direction = "ASC"
	DirectionDESC Direction = "DESC"
)

// Valid reports whether o is DirectionASC or DirectionDESC.
func (o Direction) Valid() bool {
	return o == DirectionASC || o == DirectionDESC
}

// Reverse reports whether the direction negates the natural order.
func (o Direction) Reverse() bool {
	return o == DirectionDESC
}

type (
	Orderings []OrderBy
	OrderBy   struct {
		Column    string
		Direction Direction
	}
)

// Getters maps a column name to the key of an element in that column.
// Only columns listed here can be used in Orderings.
//
//	slicepager.Getters[Product]{
//		"id":    func(p Product) any { return p.ID },
//		"price": func(p Product) any { return p.Price },
//	}
type Getters[T any] map[string]func(T) any

// String converts Orderings to "<column_1> <direction_1>, <column_2> <direction_2>".
// Example: for [{"a", "ASC"}, {"b", "DESC"}] returns "a ASC, b DESC".
func (o Orderings) String() string {
	return strings.Join(lo.Map(o, func(ordering OrderBy, _ int) string {
		return fmt.Sprintf("%s %s", ordering.Column, ordering.Direction)
	}), ", ")
}

func validateOrderings[T any](o Orderings, getters Getters[T]) error {
	for _, ordering := range o {
		if !ordering.Direction.Valid() {
			return fmt.Errorf("%w: invalid ordering direction '%s'", ErrInvalidConfig, ordering.Direction)
		}

		if _, ok := getters[ordering.Column]; !ok {
			return fmt.Errorf("%w: no getter for ordering column '%s'", ErrInvalidConfig, ordering.Column)
		}
	}

	return nil
}

// ParseSort builds Orderings from a list of strings in the format
// "column asc|desc". Columns are checked against getters; an unknown column
// is reported together with the closest known one.
func ParseSort[T any](stringsOrderings []string, getters Getters[T]) (Orderings, error) {
	ret := make(Orderings, 0, len(stringsOrderings))
	columns := lo.Keys(getters)

	for _, stringOrdering := range stringsOrderings {
		cutStringOrdering := strings.Fields(stringOrdering)
		if len(cutStringOrdering) != 2 {
			return nil, fmt.Errorf("%w: invalid ordering string format '%s'", ErrInvalidConfig, stringOrdering)
		}

		column := cutStringOrdering[0]
		direction := Direction(strings.ToUpper(cutStringOrdering[1]))
		if !direction.Valid() {
			return nil, fmt.Errorf("%w: invalid ordering direction '%s'", ErrInvalidConfig, cutStringOrdering[1])
		}

		if !slices.Contains(columns, column) {
			return nil, fmt.Errorf("%w: unknown sort column '%s'. closest: '%s'",
				ErrInvalidConfig, column, closest(column, columns))
		}

		ret = append(ret, OrderBy{
			Column:    column,
			Direction: direction,
		})
	}

	return ret, nil
}

// SortOrdered returns a stably sorted copy of items ordered by each OrderBy
// in turn, as if calling OrderBy(o1).ThenBy(o2).ThenBy(o3)...
// Empty orderings return an unsorted copy.
func SortOrdered[T any](items []T, orderings Orderings, getters Getters[T]) ([]T, error) {
	if err := validateOrderings(orderings, getters); err != nil {
		return nil, fmt.Errorf("cannot sort: %w", err)
	}

	keys := lo.Map(items, func(item T, _ int) []any {
		return lo.Map(orderings, func(ordering OrderBy, _ int) any {
			return getters[ordering.Column](item)
		})
	})
	order := lo.Range(len(items))

	var cmpErr error
	slices.SortStableFunc(order, func(i, j int) int {
		for k, ordering := range orderings {
			c, err := Compare(keys[i][k], keys[j][k])
			if err != nil {
				if cmpErr == nil {
					cmpErr = fmt.Errorf("column '%s': %w", ordering.Column, err)
				}
				return 0
			}

			if c != 0 {
				return lo.Ternary(ordering.Direction.Reverse(), -c, c)
			}
		}

		return 0
	})
	if cmpErr != nil {
		return nil, fmt.Errorf("cannot sort: %w", cmpErr)
	}

	return lo.Map(order, func(i int, _ int) T { return items[i] }), nil
}
