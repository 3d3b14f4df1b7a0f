package board

import (
	"fmt"
	"sort"
)

// Variant names accepted by NewVariant.
const (
	VariantCheckers = "checkers"
	VariantChess    = "chess"
)

type constructor func(options ...Option) (*Board, error)

var variants = map[string]constructor{
	VariantCheckers: func(options ...Option) (*Board, error) {
		cb, err := NewCheckersBoard(options...)
		if err != nil {
			return nil, err
		}
		return cb.Board, nil
	},
	VariantChess: func(options ...Option) (*Board, error) {
		cb, err := NewChessBoard(options...)
		if err != nil {
			return nil, err
		}
		return cb.Board, nil
	},
}

// NewVariant builds the named board.
func NewVariant(name string, options ...Option) (*Board, error) {
	build, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	return build(options...)
}

// Variants returns the sorted variant names.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
