package worldmap

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed maps/default.map
var defaultMapText string

// parseDefault runs at most once; the bundled map is a compile-time
// constant and the resulting layout is never mutated.
var parseDefault = sync.OnceValues(func() (*WorldLayout, error) {
	return Parse(defaultMapText)
})

// Default returns the bundled default map, parsed lazily on first use.
// An error here means the embedded asset is broken and is a programming
// mistake, not a user input problem.
func Default() (*WorldLayout, error) {
	layout, err := parseDefault()
	if err != nil {
		return nil, fmt.Errorf("worldmap: bundled default map is invalid: %w", err)
	}
	return layout, nil
}

// DefaultText returns the raw text of the bundled default map.
func DefaultText() string {
	return defaultMapText
}
