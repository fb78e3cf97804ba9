// Package generate extracts function signature models from the ERFA C
// sources and renders the binding layer from them.
//
// The accepted declaration grammar is the restricted shape set the
// library actually uses: single values, pointers, fixed-size arrays up
// to two dimensions, and the opaque eraASTROM pointer. It is matched
// with fixed patterns, not a C parser.
package generate

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/mhvk/erfagen"
	"github.com/mhvk/erfagen/log"
)

const tracerName = "erfagen"

// Extractor builds Function models from a source tree. It carries the
// type vocabulary and the library name prefix as explicit configuration
// so differing library versions can coexist in one process.
type Extractor struct {
	types  erfagen.TypeMap
	prefix string
}

func NewExtractor(types erfagen.TypeMap, prefix string) *Extractor {
	return &Extractor{types: types, prefix: prefix}
}

// shortName strips the library prefix and lower-cases the remainder,
// giving the binding-facing name and the per-function file stem.
func (e *Extractor) shortName(name string) string {
	parts := strings.Split(name, e.prefix)
	return strings.ToLower(parts[len(parts)-1])
}

// Function locates the definition of name under sourcePath and builds
// its model. sourcePath is either a directory holding one file per
// function (shortName + ".c") or a single combined source file. A
// non-empty matchLine skips the scan to the first line starting with
// that text; it disambiguates the true definition from an earlier call
// site of the same name in a combined file.
func (e *Extractor) Function(name, sourcePath, matchLine string) (*erfagen.Function, error) {
	short := e.shortName(name)
	path := sourcePath
	if info, err := os.Stat(sourcePath); err == nil && info.IsDir() {
		path = filepath.Join(sourcePath, short+".c")
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading source of %s", name)
	}
	contents := string(raw)

	if matchLine != "" {
		contents, err = seekAnchor(contents, matchLine)
		if err != nil {
			return nil, &erfagen.LocationError{Function: name, Path: path, Anchor: matchLine}
		}
	}

	// The declaration line, anchored at a line start, then the nearest
	// following block comment.
	declRe := regexp.MustCompile(`(?s)\n([^\n]+` + name + ` ?\(([^)]+)\)).+?(/\*.+?\*/)`)
	m := declRe.FindStringSubmatch(contents)
	if m == nil {
		return nil, &erfagen.LocationError{Function: name, Path: path, Pattern: declRe.String()}
	}
	decl, rawArgs, comment := m[1], m[2], m[3]

	doc := parseDoc(comment)

	fn := &erfagen.Function{
		Name:      name,
		ShortName: short,
		Path:      path,
		Doc:       doc,
	}

	// Top-level comma split. The grammar guarantees no nested
	// parentheses inside a fragment; argument rejects any that turn up
	// rather than mis-splitting silently.
	for _, frag := range strings.Split(rawArgs, ",") {
		arg, err := e.argument(frag, doc)
		if err != nil {
			return nil, errors.Wrapf(err, "function %s in %s", name, path)
		}
		fn.Args = append(fn.Args, arg)
	}

	retRe := regexp.MustCompile(`^(.*)` + name)
	fn.ReturnType = strings.TrimSpace(retRe.FindStringSubmatch(decl)[1])

	if fn.ReturnType == "double" {
		slot, err := e.returnSlot(fn.ReturnType)
		if err != nil {
			return nil, errors.Wrapf(err, "function %s in %s", name, path)
		}
		fn.Args = append(fn.Args, slot)
	}

	return fn, nil
}

// seekAnchor drops everything before the first line starting with
// anchor, keeping that line. The leading newline keeps the declaration
// pattern anchored at a line start.
func seekAnchor(contents, anchor string) (string, error) {
	lines := strings.Split(contents, "\n")
	for i, line := range lines {
		if strings.HasPrefix(line, anchor) {
			return "\n" + strings.Join(lines[i:], "\n"), nil
		}
	}
	return "", errors.Errorf("anchor %q not found", anchor)
}

// argument parses one declaration fragment into a Param, consulting the
// documentation block for its direction.
func (e *Extractor) argument(frag string, doc *erfagen.FunctionDoc) (erfagen.Param, error) {
	def := strings.TrimSpace(frag)
	if strings.Contains(def, "(") {
		// A parenthesis inside a fragment means the comma split above
		// was wrong (function pointer parameter).
		return erfagen.Param{}, errors.Errorf("unsupported parameter shape %q", def)
	}

	var name, ctype string
	if i := strings.Index(def, "*"); i >= 0 {
		ctype = def[:i] + "*"
		name = strings.TrimSpace(def[i+1:])
	} else {
		i := strings.LastIndex(def, " ")
		if i < 0 {
			return erfagen.Param{}, errors.Errorf("unsupported parameter shape %q", def)
		}
		ctype = def[:i]
		name = def[i+1:]
		// An array dimension suffix belongs to the type, not the name:
		// "double pv[2][3]" is a "double[2][3]" named "pv".
		if j := strings.Index(name, "["); j >= 0 {
			ctype += name[j:]
			name = name[:j]
		}
	}

	dir := doc.DirectionOf(name)
	if dir == erfagen.Unknown {
		log.Debug().Str("param", name).Msg("parameter not documented, direction unknown")
	}

	dtype, err := e.types.Resolve(ctype)
	if err != nil {
		return erfagen.Param{}, err
	}

	return erfagen.Param{
		Def:       def,
		Name:      name,
		CType:     ctype,
		CTypePtr:  ptrType(ctype),
		Dtype:     dtype,
		Direction: dir,
	}, nil
}

// returnSlot builds the synthetic slot for a scalar return value. It
// never appears in the documentation block.
func (e *Extractor) returnSlot(ctype string) (erfagen.Param, error) {
	dtype, err := e.types.Resolve(ctype)
	if err != nil {
		return erfagen.Param{}, err
	}
	return erfagen.Param{
		Name:      erfagen.ReturnName,
		CType:     ctype,
		CTypePtr:  ctype,
		Dtype:     dtype,
		Direction: erfagen.Ret,
	}, nil
}

// ptrType collapses a type spelling to the form used in the native call
// signature: array shapes become pointers to the base type and a const
// qualifier is dropped.
func ptrType(ctype string) string {
	switch {
	case strings.HasSuffix(ctype, "]"):
		return ctype[:strings.Index(ctype, "[")] + " *"
	case strings.HasPrefix(ctype, "const "):
		return strings.TrimPrefix(ctype, "const ")
	default:
		return ctype
	}
}
