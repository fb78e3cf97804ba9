package erfagen

import "github.com/huandu/go-clone"

// TypeMap maps a normalized C type spelling to the storage descriptor
// the binding layer allocates buffers with. The key set is a closed
// contract over the target library's type vocabulary; resolving any
// other spelling is a hard error, not a default.
//
// Array spellings key their own entries: "int[4]" and "int *" are both
// pointers at the call boundary, but the shape matters for storage
// layout, so the map is keyed on the full annotated spelling.
type TypeMap map[string]string

// DefaultTypes returns the ERFA vocabulary. Callers get a fresh value;
// there is no process-wide table.
func DefaultTypes() TypeMap {
	return TypeMap{
		"double":       "numpy.double",
		"double *":     "numpy.double",
		"int":          "numpy.int",
		"int *":        "numpy.int",
		"int[4]":       "numpy.dtype([('', 'i', (4,))])",
		"double[2]":    "numpy.dtype([('', 'd', (2,))])",
		"double[3]":    "numpy.dtype([('p', 'd', (3,))])",
		"double[2][3]": "numpy.dtype([('pv', 'd', (2,3))])",
		"double[3][3]": "numpy.dtype([('r', 'd', (3,3))])",
		"eraASTROM *":  "dt_eraASTROM",
		"char *":       "numpy.dtype('S1')",
	}
}

// Resolve looks up the descriptor for a type spelling.
func (m TypeMap) Resolve(ctype string) (string, error) {
	d, ok := m[ctype]
	if !ok {
		return "", &UnknownTypeError{CType: ctype}
	}
	return d, nil
}

// Clone returns an independent copy, so the vocabulary of a different
// library version can be derived without touching the original.
func (m TypeMap) Clone() TypeMap {
	return clone.Clone(m).(TypeMap)
}
