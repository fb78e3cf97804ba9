package generate

import (
	"regexp"
	"strings"

	"github.com/mhvk/erfagen"
)

// Section capture: a header line like "Given:" or "Returned (function
// value):", then everything up to the sentinel line consisting of
// exactly two spaces. No sentinel means the section is absent, not an
// error. Note that the "Given" pattern also matches a lone "Given and
// returned" header; the original generator behaves the same way and the
// duplicate entries are harmless for membership tests.
var (
	givenRe       = regexp.MustCompile(`(?s)Given[^\n]*:\n(.+?)  \n`)
	returnedRe    = regexp.MustCompile(`(?s)Returned[^\n]*:\n(.+?)  \n`)
	givenAndRetRe = regexp.MustCompile(`(?s)Given and returned[^\n]*:\n(.+?)  \n`)

	// Entry contract: leading whitespace, name token, type token, then
	// the description. Blank separators and continuation lines don't
	// match and are skipped.
	entryRe = regexp.MustCompile(`^ +([^ ]+) +([^ ]+) +(.+)`)
)

var commentNormalizer = strings.NewReplacer("**", "  ", "/*", "  ", "*/", "  ")

// parseDoc builds the full documentation model in one pass; nothing is
// recomputed on later reads. It never fails: malformed or missing
// sections just contribute no entries.
func parseDoc(comment string) *erfagen.FunctionDoc {
	text := commentNormalizer.Replace(comment)

	doc := &erfagen.FunctionDoc{}
	both := parseSection(givenAndRetRe, text)
	doc.Inputs = append(parseSection(givenRe, text), both...)
	doc.Outputs = append(parseSection(returnedRe, text), both...)
	return doc
}

func parseSection(re *regexp.Regexp, text string) []erfagen.ArgDoc {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return nil
	}

	var entries []erfagen.ArgDoc
	for _, line := range strings.Split(m[1], "\n") {
		e := entryRe.FindStringSubmatch(line)
		if e == nil {
			continue
		}
		entries = append(entries, erfagen.ArgDoc{Name: e[1], Type: e[2], Doc: e[3]})
	}
	return entries
}
