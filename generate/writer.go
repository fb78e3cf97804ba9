package generate

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/iancoleman/strcase"
	"github.com/pkg/errors"

	"github.com/mhvk/erfagen"
)

//go:embed templates/erfa.pyx.tmpl
var templatesFS embed.FS

// Writer renders the binding layer for an ordered list of extracted
// functions into a single output file.
type Writer struct {
	funcs []*erfagen.Function
	path  string
}

func NewWriter(funcs []*erfagen.Function, path string) *Writer {
	return &Writer{
		funcs: funcs,
		path:  path,
	}
}

func (w *Writer) Write() error {
	tmpl, err := template.New("erfa.pyx.tmpl").
		Funcs(template.FuncMap{
			"join":     strings.Join,
			"toCamel":  strcase.ToCamel,
			"prefix":   prefixAll,
			"postfix":  postfixAll,
			"surround": surroundAll,
		}).
		ParseFS(templatesFS, "templates/*.tmpl")
	if err != nil {
		return errors.Wrap(err, "parsing binding template")
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, map[string]interface{}{
		"Funcs": w.funcs,
	})
	if err != nil {
		return errors.Wrap(err, "executing binding template")
	}

	if dir := filepath.Dir(w.path); dir != "." {
		err = os.MkdirAll(dir, os.ModePerm)
		if err != nil {
			return errors.Wrap(err, "creating output directory")
		}
	}

	err = os.WriteFile(w.path, buf.Bytes(), 0o644)
	return errors.Wrap(err, "writing binding file")
}

func prefixAll(list []string, pre string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, pre+s)
	}
	return out
}

func postfixAll(list []string, post string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, s+post)
	}
	return out
}

func surroundAll(list []string, pre, post string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		out = append(out, pre+s+post)
	}
	return out
}
