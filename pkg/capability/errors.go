package capability

import "errors"

// ErrMissingCapability is returned when a candidate lacks one or more of the
// methods a Set requires.
var ErrMissingCapability = errors.New("capability: missing capability")
