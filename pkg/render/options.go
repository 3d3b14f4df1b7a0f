package render

// Options carries the settings a renderer factory may honour. Factories
// ignore fields that do not apply to their medium.
type Options struct {
	// Width is the target line width in terminal cells. Zero lets the
	// renderer pick its default.
	Width int
}
