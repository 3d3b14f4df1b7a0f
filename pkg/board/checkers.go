package board

// CheckersBoard is a 10×10 draughts board.
type CheckersBoard struct {
	*Board
}

// NewCheckersBoard builds a checkers board with both sides in place.
func NewCheckersBoard(options ...Option) (*CheckersBoard, error) {
	cb := &CheckersBoard{}
	b, err := New(10, 10, cb, options...)
	if err != nil {
		return nil, err
	}
	cb.Board = b
	return cb, nil
}

// PopulateBoard puts black draughts on the dark squares of rows 0-3 and white
// draughts on the dark squares of rows 6-9.
func (cb *CheckersBoard) PopulateBoard(b *Board) error {
	for row := 0; row < 4; row++ {
		for column := 0; column < b.Columns(); column++ {
			if !Dark(row, column) {
				continue
			}
			if err := b.PlaceNew(row, column, Draught, Black); err != nil {
				return err
			}
			if err := b.PlaceNew(row+6, column, Draught, White); err != nil {
				return err
			}
		}
	}
	return nil
}
