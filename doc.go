package erfagen

import "strings"

// ArgDoc is a single parsed entry from a documentation section: the
// parameter name, the type as written in the comment (informational
// only), and the free-text description. Name may be a comma-joined list
// of parameter names sharing one description, e.g. "date1,date2".
type ArgDoc struct {
	Name string
	Type string
	Doc  string
}

// Covers reports whether this entry documents the given parameter name.
// The name list is split on commas; the joined string is never matched
// as a whole.
func (a ArgDoc) Covers(name string) bool {
	for _, n := range strings.Split(a.Name, ",") {
		if n == name {
			return true
		}
	}
	return false
}

// FunctionDoc is the parsed documentation block of one function.
// Entries from the "Given" and "Given and returned" sections appear in
// Inputs, entries from "Returned" and "Given and returned" in Outputs,
// in comment order. A FunctionDoc is built once, when its owning
// Function is built, and read-only afterwards.
type FunctionDoc struct {
	Inputs  []ArgDoc
	Outputs []ArgDoc
}

// DirectionOf derives the direction of a parameter from its section
// membership: input-only is In, output-only is Out, both is InOut.
// A name documented in neither section yields Unknown, never an error.
func (d *FunctionDoc) DirectionOf(name string) Direction {
	dir := Unknown
	for _, in := range d.Inputs {
		if in.Covers(name) {
			dir = In
		}
	}
	for _, out := range d.Outputs {
		if out.Covers(name) {
			if dir == In {
				dir = InOut
			} else {
				dir = Out
			}
		}
	}
	return dir
}
