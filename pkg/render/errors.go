package render

import "errors"

var (
	// ErrWrongAdapter is returned when a Page is given a renderer that does
	// not expose every Renderer operation.
	ErrWrongAdapter = errors.New("render: wrong adapter")
	// ErrUnknownRenderer is returned by the registry for unregistered names.
	ErrUnknownRenderer = errors.New("render: unknown renderer")
)
