package gen

// Package gen renders Go source for payload descriptors. Output is formatted
// with golang.org/x/tools/imports, so a rendered file is byte-stable for a
// given catalog.

import (
	"bytes"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"golang.org/x/tools/imports"

	"github.com/reoring/botschema"
	"github.com/reoring/botschema/internal/ir"
)

const runtimeImport = "github.com/reoring/botschema"

// File is one rendered output file.
type File struct {
	Name   string
	Source []byte
}

// Render validates c and renders one file per method plus the catalog file.
// source names the catalog in the generated header. Nothing is rendered when
// any descriptor fails validation.
func Render(c *ir.Catalog, source string) ([]File, error) {
	ds, err := c.Descriptors()
	if err != nil {
		return nil, err
	}
	out := make([]File, 0, len(ds)+1)
	for _, d := range ds {
		src, err := RenderMethod(c.Package, source, c.Imports, d)
		if err != nil {
			return nil, fmt.Errorf("gen: %s: %w", d.Method, err)
		}
		out = append(out, File{Name: FileName(d), Source: src})
	}
	src, err := RenderCatalog(c.Package, source, ds)
	if err != nil {
		return nil, fmt.Errorf("gen: catalog: %w", err)
	}
	out = append(out, File{Name: "catalog_gen.go", Source: src})
	return out, nil
}

// FileName returns the output file name for d, e.g. send_message_gen.go.
func FileName(d botschema.Descriptor) string {
	return ir.SnakeCase(d.Type) + "_gen.go"
}

type methodData struct {
	Source  string
	Package string
	Imports []string
	botschema.Descriptor
	Var      string
	Required []botschema.FieldDescriptor
	Optional []botschema.FieldDescriptor
}

// RenderMethod renders the payload type, constructor, setters and wire
// methods of d. pkgs maps package qualifiers used in field and result types
// to import paths.
func RenderMethod(pkg, source string, pkgs map[string]string, d botschema.Descriptor) ([]byte, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	paths, err := importsFor(d, pkgs)
	if err != nil {
		return nil, err
	}
	data := methodData{
		Source:     source,
		Package:    pkg,
		Imports:    paths,
		Descriptor: d,
		Var:        descriptorVar(d),
		Required:   d.Required(),
		Optional:   d.Optional(),
	}
	return execute(methodTmpl, data)
}

// RenderCatalog renders Catalog() listing every descriptor in order.
func RenderCatalog(pkg, source string, ds []botschema.Descriptor) ([]byte, error) {
	vars := make([]string, len(ds))
	for i, d := range ds {
		vars[i] = descriptorVar(d)
	}
	return execute(catalogTmpl, struct {
		Source  string
		Package string
		Vars    []string
	}{source, pkg, vars})
}

func execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := imports.Process("", buf.Bytes(), &imports.Options{
		FormatOnly: true,
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
	})
	if err != nil {
		return nil, fmt.Errorf("format: %w\n%s", err, buf.Bytes())
	}
	return src, nil
}

var qualifierExpr = regexp.MustCompile(`([A-Za-z_][A-Za-z0-9_]*)\.`)

// importsFor returns the sorted import paths d's types refer to.
func importsFor(d botschema.Descriptor, pkgs map[string]string) ([]string, error) {
	seen := map[string]bool{runtimeImport: true}
	out := []string{runtimeImport}
	typeNames := []string{d.Returns}
	for _, f := range d.Fields {
		typeNames = append(typeNames, f.Type)
	}
	for _, t := range typeNames {
		for _, m := range qualifierExpr.FindAllStringSubmatch(t, -1) {
			q := m[1]
			if q == "botschema" {
				continue
			}
			path, ok := pkgs[q]
			if !ok {
				return nil, fmt.Errorf("type %q uses package %q which has no import", t, q)
			}
			if !seen[path] {
				seen[path] = true
				out = append(out, path)
			}
		}
	}
	sort.Strings(out)
	return out, nil
}

func descriptorVar(d botschema.Descriptor) string {
	r := []rune(d.Type)
	r[0] = unicode.ToLower(r[0])
	return string(r) + "Descriptor"
}

func storage(f botschema.FieldDescriptor) string {
	switch {
	case f.Role == botschema.RoleRequired:
		return f.Type
	case f.Nullable:
		return "botschema.Nullable[" + f.Type + "]"
	}
	return "botschema.Optional[" + f.Type + "]"
}

func setterParam(f botschema.FieldDescriptor) string {
	if f.Into {
		return "botschema.Into[" + f.Type + "]"
	}
	return f.Type
}

func setterValue(f botschema.FieldDescriptor) string {
	switch {
	case f.Into:
		return "botschema.Some(v.Into())"
	case f.Nullable:
		return "botschema.Value(v)"
	}
	return "botschema.Some(v)"
}

// comment renders text as // lines indented by indent.
func comment(indent, text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteString(indent)
		if line = strings.TrimRight(line, " \t"); line == "" {
			b.WriteString("//\n")
			continue
		}
		b.WriteString("// ")
		b.WriteString(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func params(fs []botschema.FieldDescriptor) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = ir.ParamName(f.Name) + " " + f.Type
	}
	return strings.Join(parts, ", ")
}

func assigns(fs []botschema.FieldDescriptor) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = f.Name + ": " + ir.ParamName(f.Name)
	}
	return strings.Join(parts, ", ")
}

// fieldLiteral renders a FieldDescriptor composite literal on one line.
func fieldLiteral(f botschema.FieldDescriptor) string {
	role := "botschema.RoleOptional"
	if f.Role == botschema.RoleRequired {
		role = "botschema.RoleRequired"
	}
	s := fmt.Sprintf("{Name: %q, WireName: %q, Type: %q, Role: %s", f.Name, f.WireName, f.Type, role)
	if f.Into {
		s += ", Into: true"
	}
	if f.Nullable {
		s += ", Nullable: true"
	}
	if f.Doc != "" {
		s += fmt.Sprintf(", Doc: %q", f.Doc)
	}
	return s + "}"
}

var funcs = template.FuncMap{
	"comment":      comment,
	"storage":      storage,
	"setterParam":  setterParam,
	"setterValue":  setterValue,
	"params":       params,
	"assigns":      assigns,
	"fieldLiteral": fieldLiteral,
	"quote":        func(s string) string { return fmt.Sprintf("%q", s) },
}

var methodTmpl = template.Must(template.New("method").Funcs(funcs).Parse(`// Code generated by payloadgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// {{.Type}} is the payload of {{.Method}}.
{{if .Doc}}//
{{comment "" .Doc}}{{end -}}
type {{.Type}} struct {
{{- range $i, $f := .Fields}}
{{- if $i}}
{{end}}
{{comment "\t" $f.Doc}}	{{$f.Name}} {{storage $f}}
{{- end}}
}

var {{.Var}} = botschema.MustDescriptor(botschema.Descriptor{
	Method:  {{quote .Method}},
	Type:    {{quote .Type}},
	Returns: {{quote .Returns}},
{{- if .Doc}}
	Doc:     {{quote .Doc}},
{{- end}}
	Fields: []botschema.FieldDescriptor{
{{- range .Fields}}
		{{fieldLiteral .}},
{{- end}}
	},
})

var _ botschema.Method[{{.Returns}}] = {{.Type}}{}

// New{{.Type}} returns a {{.Method}} payload with every optional field absent.
func New{{.Type}}({{params .Required}}) {{.Type}} {
	return {{.Type}}{ {{- assigns .Required -}} }
}
{{range .Optional}}
// With{{.Name}} sets {{.WireName}}.
func (p {{$.Type}}) With{{.Name}}(v {{setterParam .}}) {{$.Type}} {
	p.{{.Name}} = {{setterValue .}}
	return p
}
{{if .Nullable}}
// With{{.Name}}Null sets {{.WireName}} to null.
func (p {{$.Type}}) With{{.Name}}Null() {{$.Type}} {
	p.{{.Name}} = botschema.Null[{{.Type}}]()
	return p
}
{{end}}
{{- end}}
// MethodName returns {{quote .Method}}.
func ({{.Type}}) MethodName() string { return {{quote .Method}} }

// Descriptor returns the definition {{.Type}} was generated from.
func ({{.Type}}) Descriptor() botschema.Descriptor { return {{.Var}} }

// DecodeResult decodes the result of {{.Method}}.
func ({{.Type}}) DecodeResult(data []byte) ({{.Returns}}, error) {
	return botschema.DecodeResult[{{.Returns}}](data)
}

// MarshalJSON writes the required fields, then the present optional fields.
func (p {{.Type}}) MarshalJSON() ([]byte, error) {
	return botschema.NewObjectEncoder().
{{- range .Required}}
		Field({{quote .WireName}}, p.{{.Name}}).
{{- end}}
{{- range .Optional}}
		Optional({{quote .WireName}}, p.{{.Name}}).
{{- end}}
		Bytes()
}
`))

var catalogTmpl = template.Must(template.New("catalog").Parse(`// Code generated by payloadgen from {{.Source}}. DO NOT EDIT.

package {{.Package}}

import (
	"github.com/reoring/botschema"
)

// Catalog returns the descriptor of every generated payload, sorted by method
// name.
func Catalog() []botschema.Descriptor {
	return []botschema.Descriptor{
{{- range .Vars}}
		{{.}},
{{- end}}
	}
}
`))
