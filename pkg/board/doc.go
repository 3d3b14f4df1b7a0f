// Package board builds game boards through a factory method. Board owns the
// grid and the piece registry; concrete boards (CheckersBoard, ChessBoard)
// supply the PopulateBoard hook that decides which pieces go where.
//
// Pieces are a single value type tagged with a kind and a colour; the glyph
// comes from a fixed table of fourteen entries.
package board
