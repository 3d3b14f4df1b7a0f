package capability

import (
	"fmt"
	"reflect"
	"strings"
)

// Set is an ordered, de-duplicated collection of method names.
type Set struct {
	methods []string
}

// HasMethods builds a Set requiring every named method. Blank names are
// skipped and duplicates keep their first position.
func HasMethods(methods ...string) Set {
	return Set{}.with(methods...)
}

// Methods returns a copy of the required method names.
func (s Set) Methods() []string {
	return append([]string(nil), s.methods...)
}

// Len reports how many methods the set requires.
func (s Set) Len() int {
	return len(s.methods)
}

// Union returns a set requiring the methods of s and of every other set.
func (s Set) Union(others ...Set) Set {
	out := Set{}.with(s.methods...)
	for _, other := range others {
		out = out.with(other.methods...)
	}
	return out
}

// Missing lists the required methods the candidate does not expose, in set
// order. A nil candidate is missing everything.
func (s Set) Missing(candidate any) []string {
	typ := reflect.TypeOf(candidate)
	var missing []string
	for _, name := range s.methods {
		if typ == nil || !hasMethod(typ, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

// Satisfied reports whether the candidate exposes every required method.
func (s Set) Satisfied(candidate any) bool {
	return candidate != nil && len(s.Missing(candidate)) == 0
}

// Check returns ErrMissingCapability naming the absent methods, or nil.
func (s Set) Check(candidate any) error {
	missing := s.Missing(candidate)
	if candidate != nil && len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s lacks %s", ErrMissingCapability, typeName(candidate), strings.Join(missing, ", "))
}

// String renders the set as a brace-delimited list.
func (s Set) String() string {
	return "{" + strings.Join(s.methods, ", ") + "}"
}

func (s Set) with(methods ...string) Set {
	seen := make(map[string]struct{}, len(s.methods)+len(methods))
	out := make([]string, 0, len(s.methods)+len(methods))
	for _, name := range append(append([]string(nil), s.methods...), methods...) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return Set{methods: out}
}

// hasMethod follows Go method-set rules: a value whose methods use pointer
// receivers does not expose them.
func hasMethod(typ reflect.Type, name string) bool {
	_, ok := typ.MethodByName(name)
	return ok
}

func typeName(candidate any) string {
	if candidate == nil {
		return "<nil>"
	}
	return reflect.TypeOf(candidate).String()
}
