package erfagen

import "fmt"

// LocationError reports that a function's declaration and trailing
// documentation comment could not be located in its source file, or
// that a caller-supplied anchor line never appeared. These are
// deterministic parse failures over static input; no retry applies.
type LocationError struct {
	Function string
	Path     string
	// Pattern is the search pattern that found no match.
	Pattern string
	// Anchor, when set, is the anchor line that was not found.
	Anchor string
}

func (e *LocationError) Error() string {
	if e.Anchor != "" {
		return fmt.Sprintf("locating %s: anchor line %q not found in %q",
			e.Function, e.Anchor, e.Path)
	}
	return fmt.Sprintf("locating %s in %q: no match for pattern %s",
		e.Function, e.Path, e.Pattern)
}

// EnumerationInvariantError reports that a header subsection listed a
// function name whose declaration line could not be recovered from the
// same text block. The header/source contract is assumed total, so this
// is an unrecoverable invariant violation.
type EnumerationInvariantError struct {
	Function   string
	Section    string
	Subsection string
}

func (e *EnumerationInvariantError) Error() string {
	return fmt.Sprintf("header section %s/%s names %s but holds no declaration line for it",
		e.Section, e.Subsection, e.Function)
}

// UnknownTypeError reports a type spelling outside the closed TypeMap
// vocabulary. The closed set is a deliberate completeness contract over
// the target library's types, not an extensible registry.
type UnknownTypeError struct {
	CType string
}

func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("no storage descriptor for C type %q", e.CType)
}
