package ir

// Package ir is the catalog model read by payloadgen: every remote method as
// data, converted to botschema descriptors before any code is rendered.
// This package is internal and not part of the public API.

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/reoring/botschema"
)

// Catalog is the root of schema.yaml.
type Catalog struct {
	Package string            `yaml:"package"`
	Imports map[string]string `yaml:"imports"` // package name -> import path
	Methods []Method          `yaml:"methods"`
}

// Method declares one remote method.
type Method struct {
	Name     string  `yaml:"name"`    // remote name, e.g. sendMessage
	Type     string  `yaml:"type"`    // Go type; defaults to Name with an upper-case first letter
	Returns  string  `yaml:"returns"` // Go type of the result
	Doc      string  `yaml:"doc"`
	Required []Field `yaml:"required"`
	Optional []Field `yaml:"optional"`
}

// Field declares one payload field.
type Field struct {
	Name     string `yaml:"name"` // Go field name
	Wire     string `yaml:"wire"` // defaults to the snake_case of Name
	Type     string `yaml:"type"`
	Doc      string `yaml:"doc"`
	Into     bool   `yaml:"into"`
	Nullable bool   `yaml:"nullable"`
}

// GoType returns the payload's Go type name.
func (m Method) GoType() string {
	if m.Type != "" {
		return m.Type
	}
	return exportName(m.Name)
}

// Descriptor converts m. Defaults are applied; validation is left to
// Descriptor.Validate.
func (m Method) Descriptor() botschema.Descriptor {
	d := botschema.Descriptor{
		Method:  m.Name,
		Type:    m.GoType(),
		Returns: m.Returns,
		Doc:     strings.TrimSpace(m.Doc),
		Fields:  make([]botschema.FieldDescriptor, 0, len(m.Required)+len(m.Optional)),
	}
	for _, f := range m.Required {
		d.Fields = append(d.Fields, f.descriptor(botschema.RoleRequired))
	}
	for _, f := range m.Optional {
		d.Fields = append(d.Fields, f.descriptor(botschema.RoleOptional))
	}
	return d
}

func (f Field) descriptor(role botschema.Role) botschema.FieldDescriptor {
	wire := f.Wire
	if wire == "" {
		wire = SnakeCase(f.Name)
	}
	return botschema.FieldDescriptor{
		Name:     f.Name,
		WireName: wire,
		Type:     f.Type,
		Role:     role,
		Into:     f.Into,
		Nullable: f.Nullable,
		Doc:      strings.TrimSpace(f.Doc),
	}
}

// Descriptors validates every method and returns their descriptors sorted by
// method name. Every failing method is reported; errors.As finds each
// *botschema.SchemaError.
func (c *Catalog) Descriptors() ([]botschema.Descriptor, error) {
	if c.Package == "" {
		return nil, fmt.Errorf("ir: catalog has no package name")
	}
	var (
		out   = make([]botschema.Descriptor, 0, len(c.Methods))
		errs  []error
		names = map[string]bool{}
		types = map[string]bool{}
	)
	for _, m := range c.Methods {
		d := m.Descriptor()
		if err := d.Validate(); err != nil {
			errs = append(errs, err)
			continue
		}
		if names[d.Method] {
			errs = append(errs, fmt.Errorf("ir: duplicate method %q", d.Method))
			continue
		}
		if types[d.Type] {
			errs = append(errs, fmt.Errorf("ir: duplicate type %q", d.Type))
			continue
		}
		names[d.Method], types[d.Type] = true, true
		out = append(out, d)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Method < out[j].Method })
	return out, nil
}

// SnakeCase converts a Go identifier to snake_case, keeping initialisms
// together: ChatID -> chat_id, URLPath -> url_path.
func SnakeCase(s string) string {
	r := []rune(s)
	var b strings.Builder
	for i, c := range r {
		if unicode.IsUpper(c) {
			prevLower := i > 0 && !unicode.IsUpper(r[i-1])
			nextLower := i > 0 && i+1 < len(r) && unicode.IsLower(r[i+1]) && unicode.IsUpper(r[i-1])
			if prevLower || nextLower {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(c))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// ParamName converts an exported Go field name to a parameter name:
// ChatID -> chatID, URLPath -> urlPath, ID -> id.
func ParamName(s string) string {
	r := []rune(s)
	n := 0
	for n < len(r) && unicode.IsUpper(r[n]) {
		n++
	}
	switch {
	case n == 0:
	case n == len(r) || n == 1:
		for i := 0; i < n; i++ {
			r[i] = unicode.ToLower(r[i])
		}
	default:
		for i := 0; i < n-1; i++ {
			r[i] = unicode.ToLower(r[i])
		}
	}
	out := string(r)
	if reserved[out] {
		out += "_"
	}
	return out
}

var reserved = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

func exportName(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
