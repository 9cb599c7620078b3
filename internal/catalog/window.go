package catalog

import "fmt"

// DefaultPageSize is the number of entries requested per index page.
const DefaultPageSize = 20

// PageWindow is an (offset, limit) slice of the remote catalog's ordered list.
type PageWindow struct {
	Offset int
	Limit  int
}

// Validate checks offset >= 0 and limit > 0.
func (w PageWindow) Validate() error {
	if w.Offset < 0 {
		return fmt.Errorf("offset must be non-negative, got %d", w.Offset)
	}
	if w.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", w.Limit)
	}
	return nil
}

// Next returns the window immediately following w.
func (w PageWindow) Next() PageWindow {
	return PageWindow{Offset: w.Offset + w.Limit, Limit: w.Limit}
}

func (w PageWindow) String() string {
	return fmt.Sprintf("offset=%d limit=%d", w.Offset, w.Limit)
}
