package capability

import "reflect"

// maxDepth bounds the embedding walk so self-referencing pointer embeds
// cannot recurse forever.
const maxDepth = 32

// Declarer is implemented by types that name the methods they need.
type Declarer interface {
	RequiredMethods() []string
}

// Requirer is embedded by an abstraction to declare the methods its concrete
// refinements must provide. Requirements found at every level of the
// embedding chain are unioned.
//
//	type Shape struct{ capability.Requirer }
//	type Solid struct{ Shape }
//
//	func NewShape() Shape { return Shape{capability.Requires("Area")} }
type Requirer struct {
	needs Set
}

// Requires returns a Requirer declaring the named methods.
func Requires(methods ...string) Requirer {
	return Requirer{needs: HasMethods(methods...)}
}

// RequiredMethods implements Declarer.
func (r Requirer) RequiredMethods() []string {
	return r.needs.Methods()
}

// Requirements walks the candidate and every embedded field, following
// pointers, and returns the union of what each level declares. Both embedded
// Requirer values and any Declarer met along the way contribute.
func Requirements(candidate any) Set {
	var acc Set
	if candidate == nil {
		return acc
	}
	collect(reflect.ValueOf(candidate), &acc, 0)
	return acc
}

// Require checks the candidate against the union of its declared
// requirements. It fails with ErrMissingCapability when any method is absent.
func Require(candidate any) error {
	return Requirements(candidate).Check(candidate)
}

var requirerType = reflect.TypeOf(Requirer{})

func collect(v reflect.Value, acc *Set, depth int) {
	if depth > maxDepth || !v.IsValid() {
		return
	}
	if (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil() {
		return
	}
	declared(v, acc)

	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return
		}
		v = v.Elem()
	}
	if v.Type() == requirerType {
		*acc = acc.with(requirerMethods(v)...)
		return
	}
	declared(v, acc)

	if v.Kind() != reflect.Struct {
		return
	}
	typ := v.Type()
	for i := 0; i < v.NumField(); i++ {
		if !typ.Field(i).Anonymous {
			continue
		}
		collect(v.Field(i), acc, depth+1)
	}
}

func declared(v reflect.Value, acc *Set) {
	if !v.CanInterface() {
		return
	}
	if d, ok := v.Interface().(Declarer); ok {
		*acc = acc.with(d.RequiredMethods()...)
	}
}

// requirerMethods reads the declared names without going through Interface,
// so Requirers embedded in unexported fields are still seen.
func requirerMethods(v reflect.Value) []string {
	methods := v.Field(0).Field(0)
	out := make([]string, 0, methods.Len())
	for i := 0; i < methods.Len(); i++ {
		out = append(out, methods.Index(i).String())
	}
	return out
}
