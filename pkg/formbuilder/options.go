package formbuilder

import (
	"fmt"
	"strings"
)

// Option keys understood by the built-in builders.
const (
	KeyTarget = "target"
	KeyKind   = "kind"
)

// Input kinds for entries.
const (
	KindText     = "text"
	KindPassword = "password"
)

// Option is a keyword-style attribute attached to a widget call.
type Option struct {
	Key   string
	Value string
}

// Target binds a label to the entry with the given variable name.
func Target(name string) Option {
	return Option{Key: KeyTarget, Value: name}
}

// Kind sets the input kind of an entry, e.g. KindPassword.
func Kind(kind string) Option {
	return Option{Key: KeyKind, Value: kind}
}

// Attr builds an arbitrary option. Builders reject keys they do not know.
func Attr(key, value string) Option {
	return Option{Key: key, Value: value}
}

// collect folds opts into a map, failing with ErrUnknownOption on keys not
// listed in allowed. Later options override earlier ones.
func collect(widget string, opts []Option, allowed ...string) (map[string]string, error) {
	out := make(map[string]string, len(opts))
	for _, opt := range opts {
		key := strings.TrimSpace(opt.Key)
		if !contains(allowed, key) {
			return nil, fmt.Errorf("%w: %s does not accept %q", ErrUnknownOption, widget, key)
		}
		out[key] = opt.Value
	}
	return out, nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
