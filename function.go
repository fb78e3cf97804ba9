package erfagen

import (
	"fmt"
	"strings"
)

// ReturnName is the fixed name of the synthetic return slot.
const ReturnName = "ret"

// Param is one slot of a function's argument model: either a formal
// parameter recovered from the C declaration, or the synthetic slot
// standing in for a scalar return value. The two variants share the
// accessor surface and are told apart by Direction == Ret.
type Param struct {
	// Def is the original declaration fragment, e.g. "double *ra".
	// Empty for the return slot.
	Def string
	// Name is the parameter name, or ReturnName for the return slot.
	Name string
	// CType is the normalized type spelling, e.g. "double[2][3]".
	CType string
	// CTypePtr is the pointer-collapsed spelling used when building the
	// native call signature.
	CTypePtr string
	// Dtype is the resolved storage descriptor for the binding layer.
	Dtype string

	Direction Direction
}

func (p Param) prop(name string) string {
	switch name {
	case "name":
		return p.Name
	case "ctype":
		return p.CType
	case "ctype_ptr":
		return p.CTypePtr
	case "dtype":
		return p.Dtype
	case "def":
		return p.Def
	default:
		panic(fmt.Sprintf("erfagen: unknown projection %q", name))
	}
}

// Function is the extracted model of one C function. It is built once
// from a source buffer and immutable afterwards; the downstream
// renderer only reads it.
type Function struct {
	// Name is the C name, e.g. "eraSepp".
	Name string
	// ShortName is the binding-facing name: the library prefix
	// stripped, lower-cased, e.g. "sepp".
	ShortName string
	// Path is the source file the definition was located in.
	Path string
	// ReturnType is the declared C return type.
	ReturnType string
	// Args holds the parameters in declaration order, with a trailing
	// return slot when ReturnType is the scalar numeric type.
	Args []Param
	// Doc is the documentation block the directions were derived from.
	Doc *FunctionDoc
}

// ByDirection returns the arguments whose direction is in filter
// ("in|inout"), preserving declaration order.
func (f *Function) ByDirection(filter string) []Param {
	var out []Param
	for _, a := range f.Args {
		if a.Direction.Matches(filter) {
			out = append(out, a)
		}
	}
	return out
}

// PropByDirection projects a single field of the filtered arguments.
// Recognized projections: "name", "ctype", "ctype_ptr", "dtype", "def".
func (f *Function) PropByDirection(filter, prop string) []string {
	args := f.ByDirection(filter)
	out := make([]string, 0, len(args))
	for _, a := range args {
		out = append(out, a.prop(prop))
	}
	return out
}

// JoinByDirection is PropByDirection joined into one delimited string,
// as consumed by the binding templates.
func (f *Function) JoinByDirection(filter, prop, sep string) string {
	return strings.Join(f.PropByDirection(filter, prop), sep)
}

// Decl reconstructs the C declaration, without the return slot, for the
// extern block of the generated binding.
func (f *Function) Decl() string {
	defs := make([]string, 0, len(f.Args))
	for _, a := range f.Args {
		if a.Direction == Ret {
			continue
		}
		defs = append(defs, a.Def)
	}
	return fmt.Sprintf("%s %s(%s)", f.ReturnType, f.Name, strings.Join(defs, ", "))
}
