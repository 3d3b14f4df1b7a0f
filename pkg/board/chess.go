package board

// backRank is the piece order on each side's home row, from column 0.
var backRank = [...]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// ChessBoard is an 8×8 chess board.
type ChessBoard struct {
	*Board
}

// NewChessBoard builds a chess board in the starting position.
func NewChessBoard(options ...Option) (*ChessBoard, error) {
	cb := &ChessBoard{}
	b, err := New(8, 8, cb, options...)
	if err != nil {
		return nil, err
	}
	cb.Board = b
	return cb, nil
}

// PopulateBoard places black on rows 0 and 1 and white on rows 6 and 7.
func (cb *ChessBoard) PopulateBoard(b *Board) error {
	for column, kind := range backRank {
		if err := b.PlaceNew(0, column, kind, Black); err != nil {
			return err
		}
		if err := b.PlaceNew(1, column, Pawn, Black); err != nil {
			return err
		}
		if err := b.PlaceNew(6, column, Pawn, White); err != nil {
			return err
		}
		if err := b.PlaceNew(7, column, kind, White); err != nil {
			return err
		}
	}
	return nil
}
