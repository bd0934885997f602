package manifest

import (
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"
)

//go:embed templates/Move.toml.tmpl
var manifestTemplate string

var bareKey = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

var tmpl = template.Must(template.New(FileName).Funcs(template.FuncMap{
	"quote": Quote,
	"key":   Key,
}).Parse(manifestTemplate))

// Render writes the manifest for doc to w.
func Render(w io.Writer, doc Document) error {
	if err := tmpl.Execute(w, doc); err != nil {
		return fmt.Errorf("executing manifest template: %w", err)
	}
	return nil
}

// Key returns s as a TOML key, quoting it when it is not a valid bare key.
func Key(s string) string {
	if bareKey.MatchString(s) {
		return s
	}
	return Quote(s)
}

// Quote returns s as a TOML basic string.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
