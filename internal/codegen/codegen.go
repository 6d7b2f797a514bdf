// File: internal/codegen/codegen.go

// Package codegen turns stylesheet text into a Go source file exposing one
// exported handle variable per named rule, so applications get compile-time
// checked references to their styles instead of string lookups.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/xkilldash9x/peacock/pkg/style"
)

// Options controls the shape of the generated file.
type Options struct {
	// Package is the package name of the generated file.
	Package string
	// VarPrefix is prepended to every exported handle variable.
	VarPrefix string
}

// fileTemplate is the full generated file. The stylesheet source is embedded
// as a raw string literal and recompiled at init time, so the generated file
// stays readable and the handles share one registry.
const fileTemplate = `// Code generated by peacock gen; DO NOT EDIT.

package {{.Package}}

import (
	"github.com/xkilldash9x/peacock/pkg/engine"
)

// Sheet holds every rule compiled from the source stylesheet.
var Sheet = engine.MustCompileStyleSheet(` + "`{{.Source}}`" + `)

var (
{{- range .Rules}}
	{{.Ident}} = Sheet.Handle({{printf "%q" .Name}})
{{- end}}
)
`

type ruleBinding struct {
	Name  string
	Ident string
}

type fileData struct {
	Package string
	Source  string
	Rules   []ruleBinding
}

// Generate compiles stylesheet text and renders the handle file. The result
// is gofmt'ed; any parse or naming error aborts the whole generation.
func Generate(input string, opts Options) ([]byte, error) {
	if !token.IsIdentifier(opts.Package) {
		return nil, fmt.Errorf("invalid package name %q", opts.Package)
	}
	if strings.ContainsRune(input, '`') {
		// The source is embedded as a raw string literal.
		return nil, fmt.Errorf("stylesheet must not contain a backquote")
	}

	rules, err := style.ParseStyleSheet(input)
	if err != nil {
		return nil, fmt.Errorf("compiling stylesheet: %w", err)
	}
	if len(rules) == 0 {
		return nil, fmt.Errorf("stylesheet defines no rules")
	}

	bindings := make([]ruleBinding, 0, len(rules))
	seen := map[string]string{"Sheet": "(registry)"}
	for _, rule := range rules {
		ident, err := ExportedName(opts.VarPrefix, rule.Name)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[ident]; dup {
			return nil, fmt.Errorf("rule %q collides with %s on generated name %s", rule.Name, prev, ident)
		}
		seen[ident] = fmt.Sprintf("rule %q", rule.Name)
		bindings = append(bindings, ruleBinding{Name: rule.Name, Ident: ident})
	}
	sort.Slice(bindings, func(i, j int) bool { return bindings[i].Ident < bindings[j].Ident })

	tmpl, err := template.New("handles").Parse(fileTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing handle template: %w", err)
	}
	var buf bytes.Buffer
	data := fileData{Package: opts.Package, Source: "\n" + strings.TrimSpace(input) + "\n", Rules: bindings}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering handle file: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

// ExportedName maps a rule name like "side_bar" or "MAIN" to an exported Go
// identifier ("SideBar", "Main"), with the prefix prepended verbatim.
func ExportedName(prefix, name string) (string, error) {
	var b strings.Builder
	b.WriteString(prefix)

	upperNext := true
	for _, r := range name {
		switch {
		case r == '_' || r == '-':
			upperNext = true
		case upperNext:
			b.WriteRune(unicode.ToUpper(r))
			upperNext = false
		default:
			// SCREAMING_CASE words fold to lowercase so MAIN becomes Main.
			b.WriteRune(unicode.ToLower(r))
		}
	}

	ident := b.String()
	if !token.IsIdentifier(ident) || !token.IsExported(ident) {
		return "", fmt.Errorf("rule %q does not map to an exported Go identifier (got %q)", name, ident)
	}
	return ident, nil
}
