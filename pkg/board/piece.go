package board

import (
	"fmt"
	"sort"
)

// Kind classifies a piece.
type Kind int

const (
	Draught Kind = iota
	Pawn
	Rook
	Knight
	Bishop
	King
	Queen
)

var kindNames = [...]string{
	Draught: "DRAUGHT",
	Pawn:    "PAWN",
	Rook:    "ROOK",
	Knight:  "KNIGHT",
	Bishop:  "BISHOP",
	King:    "KING",
	Queen:   "QUEEN",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Color is the side a piece belongs to.
type Color int

const (
	Black Color = iota
	White
)

func (c Color) String() string {
	switch c {
	case Black:
		return "BLACK"
	case White:
		return "WHITE"
	default:
		return fmt.Sprintf("Color(%d)", int(c))
	}
}

// Piece is an immutable game piece. Its identity is its glyph.
type Piece struct {
	glyph rune
	kind  Kind
	color Color
}

// Glyph returns the Unicode character drawn for the piece.
func (p Piece) Glyph() rune { return p.glyph }

// Kind returns the piece classification.
func (p Piece) Kind() Kind { return p.kind }

// Color returns the side the piece belongs to.
func (p Piece) Color() Color { return p.color }

// String returns the glyph.
func (p Piece) String() string { return string(p.glyph) }

type pieceKey struct {
	kind  Kind
	color Color
}

var glyphs = map[pieceKey]rune{
	{Draught, Black}: '⛂',
	{Draught, White}: '⛀',
	{Pawn, Black}:    '♟',
	{Pawn, White}:    '♙',
	{Rook, Black}:    '♜',
	{Rook, White}:    '♖',
	{Knight, Black}:  '♞',
	{Knight, White}:  '♘',
	{Bishop, Black}:  '♝',
	{Bishop, White}:  '♗',
	{King, Black}:    '♚',
	{King, White}:    '♔',
	{Queen, Black}:   '♛',
	{Queen, White}:   '♕',
}

// CreatePiece returns a fresh piece of the requested kind and colour.
func CreatePiece(kind Kind, color Color) (Piece, error) {
	glyph, ok := glyphs[pieceKey{kind, color}]
	if !ok {
		return Piece{}, fmt.Errorf("%w: %s %s", ErrUnknownPiece, color, kind)
	}
	return Piece{glyph: glyph, kind: kind, color: color}, nil
}

// Pieces lists one piece per registry entry, ordered by kind then colour.
func Pieces() []Piece {
	out := make([]Piece, 0, len(glyphs))
	for key, glyph := range glyphs {
		out = append(out, Piece{glyph: glyph, kind: key.kind, color: key.color})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].kind == out[j].kind {
			return out[i].color < out[j].color
		}
		return out[i].kind < out[j].kind
	})
	return out
}
