package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-patterns/pkg/console"
)

// ErrBoardSealed is returned when pieces are placed after construction.
var ErrBoardSealed = errors.New("board: board already populated")

// Populator is the factory hook a concrete board implements. It is called
// exactly once, while the board is being constructed.
type Populator interface {
	PopulateBoard(b *Board) error
}

// Option configures a Board.
type Option func(*Board)

// WithConsole selects the character-cell console used by String. The
// default is console.ANSI().
func WithConsole(c console.Console) Option {
	return func(b *Board) {
		if c != nil {
			b.console = c
		}
	}
}

// Board is a fixed-size grid of optional pieces.
type Board struct {
	rows    int
	columns int
	cells   [][]Piece
	console console.Console
	sealed  bool
}

// New allocates a rows×columns board and hands it to the populator.
func New(rows, columns int, populator Populator, options ...Option) (*Board, error) {
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: %dx%d is not a board", ErrBoardShapeMismatch, rows, columns)
	}
	if populator == nil {
		return nil, errors.New("board: populator is required")
	}

	b := &Board{
		rows:    rows,
		columns: columns,
		cells:   make([][]Piece, rows),
		console: console.ANSI(),
	}
	for row := range b.cells {
		b.cells[row] = make([]Piece, columns)
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(b)
	}

	if err := populator.PopulateBoard(b); err != nil {
		return nil, err
	}
	b.sealed = true
	return b, nil
}

// Rows reports the number of rows.
func (b *Board) Rows() int { return b.rows }

// Columns reports the number of columns.
func (b *Board) Columns() int { return b.columns }

// CreatePiece is the factory method populators use to obtain pieces.
func (b *Board) CreatePiece(kind Kind, color Color) (Piece, error) {
	return CreatePiece(kind, color)
}

// Place puts piece at (row, column). It is only valid while the board is
// being populated.
func (b *Board) Place(row, column int, piece Piece) error {
	if b.sealed {
		return ErrBoardSealed
	}
	if !b.inRange(row, column) {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d", ErrBoardShapeMismatch, row, column, b.rows, b.columns)
	}
	b.cells[row][column] = piece
	return nil
}

// PlaceNew creates a piece through CreatePiece and places it.
func (b *Board) PlaceNew(row, column int, kind Kind, color Color) error {
	piece, err := b.CreatePiece(kind, color)
	if err != nil {
		return err
	}
	return b.Place(row, column, piece)
}

// At returns the piece at (row, column) and whether the cell is occupied.
func (b *Board) At(row, column int) (Piece, bool) {
	if !b.inRange(row, column) {
		return Piece{}, false
	}
	piece := b.cells[row][column]
	return piece, piece.glyph != 0
}

// Count reports how many pieces of color are on the board.
func (b *Board) Count(color Color) int {
	n := 0
	for _, row := range b.cells {
		for _, piece := range row {
			if piece.glyph != 0 && piece.color == color {
				n++
			}
		}
	}
	return n
}

// Dark reports whether (row, column) is a dark square.
func Dark(row, column int) bool {
	return (row+column)%2 == 1
}

// Format renders the board one row per line through c. Dark squares get a
// black background, light squares a white one.
func (b *Board) Format(c console.Console) string {
	var sb strings.Builder
	for y, row := range b.cells {
		for x, piece := range row {
			bg := console.White
			if Dark(y, x) {
				bg = console.Black
			}
			glyph := ""
			if piece.glyph != 0 {
				glyph = piece.String()
			}
			sb.WriteString(c.Cell(glyph, bg))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// String formats the board through its configured console. Every row,
// including the last, ends in a newline, so fmt.Println output carries one
// more newline than the board has rows.
func (b *Board) String() string {
	return b.Format(b.console)
}

func (b *Board) inRange(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}
