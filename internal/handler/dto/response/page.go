package response

import "ecopoints/internal/usecase/queries"

// PageResponse is one keyset page. NextCursor is omitted on the last page.
type PageResponse[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor,omitempty"`
}

func NewPage[V any, T any](views []V, next *queries.Cursor, mapFn func(V) T) PageResponse[T] {
	items := make([]T, len(views))
	for i, v := range views {
		items[i] = mapFn(v)
	}
	page := PageResponse[T]{Items: items}
	if next != nil {
		after := next.After
		page.NextCursor = &after
	}
	return page
}
