package generate

import (
	"regexp"
	"strings"

	"github.com/mhvk/erfagen"
	"github.com/mhvk/erfagen/log"
)

var (
	// "/* Section/Subsection */" markers group the header's declaration
	// blocks; a blank line closes a block.
	sectionRe = regexp.MustCompile(`(?s)/\* (\w*)/(\w*) \*/\n(.*?)\n\n`)

	funcNameRe = regexp.MustCompile(`(?s) (\w+)\(.*?\);`)
)

// HeaderFunc names one function enumerated from the library header,
// with the anchor line used to locate its definition in a combined
// source file. The anchor is the return-type-and-name prefix of the
// header declaration: header and source parameter names need not agree,
// so the prefix stops before the opening parenthesis.
type HeaderFunc struct {
	Name      string
	MatchLine string
}

// ScanHeader enumerates the functions of one top-level documentation
// section of the library header, in header order.
func ScanHeader(header, section string) ([]HeaderFunc, error) {
	var funcs []HeaderFunc
	for _, block := range sectionRe.FindAllStringSubmatch(header, -1) {
		if block[1] != section {
			continue
		}
		subsection, body := block[2], block[3]
		log.Debug().Str("section", section).Str("subsection", subsection).Msg("scanning header block")

		for _, m := range funcNameRe.FindAllStringSubmatch(body, -1) {
			name := m[1]
			anchor, ok := matchLine(body, name)
			if !ok {
				return nil, &erfagen.EnumerationInvariantError{
					Function:   name,
					Section:    section,
					Subsection: subsection,
				}
			}
			funcs = append(funcs, HeaderFunc{Name: name, MatchLine: anchor})
		}
	}
	return funcs, nil
}

// matchLine recovers the anchor for name from the block that named it:
// the first line containing the name, trailing character dropped,
// truncated at the opening parenthesis.
func matchLine(body, name string) (string, bool) {
	for _, line := range strings.Split(body, "\n") {
		if strings.Contains(line, name) {
			head, _, _ := strings.Cut(line[:len(line)-1], "(")
			return head, true
		}
	}
	return "", false
}
