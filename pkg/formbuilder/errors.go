package formbuilder

import "errors"

var (
	// ErrUnknownOption is returned when a widget call carries an option key
	// the builder does not recognise.
	ErrUnknownOption = errors.New("formbuilder: unknown option")
	// ErrMissingOption is returned when a widget call lacks a required option.
	ErrMissingOption = errors.New("formbuilder: missing option")
	// ErrCellOccupied is returned when a (row, column) is written twice.
	ErrCellOccupied = errors.New("formbuilder: cell already occupied")
	// ErrInvalidCell is returned for negative coordinates.
	ErrInvalidCell = errors.New("formbuilder: invalid cell")
	// ErrFinalized is returned when widgets are added after Form.
	ErrFinalized = errors.New("formbuilder: form already finalized")
	// ErrUnknownBuilder is returned by the registry for unregistered names.
	ErrUnknownBuilder = errors.New("formbuilder: unknown builder")
)
