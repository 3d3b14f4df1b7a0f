package formbuilder

import (
	"fmt"
	"sort"
)

// Builder is the construction protocol a director drives. Coordinates are
// zero-based grid positions; each (row, column) may be written once.
type Builder interface {
	AddTitle(title string) error
	AddLabel(text string, row, column int, opts ...Option) error
	AddEntry(variable string, row, column int, opts ...Option) error
	AddButton(text string, row, column int, opts ...Option) error
	// Form finalizes the builder and returns the complete artifact. Calling
	// it again returns the same artifact.
	Form() (string, error)
}

// Cell is a grid position.
type Cell struct {
	Row    int
	Column int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Column)
}

// base carries the state every builder shares: the title and whether Form
// has been called.
type base struct {
	title  string
	sealed bool
}

func (b *base) setTitle(title string) {
	b.title = title
}

func (b *base) checkOpen() error {
	if b.sealed {
		return ErrFinalized
	}
	return nil
}

// grid maps cells to per-builder payloads and yields them row by row in
// ascending (row, column) order.
type grid[T any] struct {
	cells map[Cell]T
}

func (g *grid[T]) put(row, column int, value T) error {
	cell := Cell{Row: row, Column: column}
	if row < 0 || column < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCell, cell)
	}
	if g.cells == nil {
		g.cells = make(map[Cell]T)
	}
	if _, exists := g.cells[cell]; exists {
		return fmt.Errorf("%w: %s", ErrCellOccupied, cell)
	}
	g.cells[cell] = value
	return nil
}

func (g *grid[T]) sorted() []Cell {
	keys := make([]Cell, 0, len(g.cells))
	for cell := range g.cells {
		keys = append(keys, cell)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].Row == keys[j].Row {
			return keys[i].Column < keys[j].Column
		}
		return keys[i].Row < keys[j].Row
	})
	return keys
}

// rows groups the payloads by row. Empty rows between occupied ones are not
// emitted.
func (g *grid[T]) rows() [][]T {
	var out [][]T
	current := -1
	for _, cell := range g.sorted() {
		if len(out) == 0 || cell.Row != current {
			out = append(out, nil)
			current = cell.Row
		}
		out[len(out)-1] = append(out[len(out)-1], g.cells[cell])
	}
	return out
}

// columns reports one past the highest occupied column.
func (g *grid[T]) columns() int {
	n := 0
	for cell := range g.cells {
		if cell.Column+1 > n {
			n = cell.Column + 1
		}
	}
	return n
}
