package board

import "errors"

var (
	// ErrBoardShapeMismatch is returned when a populator places a piece
	// outside the board or the board dimensions are unusable.
	ErrBoardShapeMismatch = errors.New("board: shape mismatch")
	// ErrUnknownPiece is returned for (kind, color) pairs with no glyph.
	ErrUnknownPiece = errors.New("board: unknown piece")
	// ErrUnknownVariant is returned by NewVariant for unregistered names.
	ErrUnknownVariant = errors.New("board: unknown variant")
)
