package botschema

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/reoring/botschema/i18n"
	js "github.com/reoring/botschema/jsonschema"
)

// Role states how a payload field is supplied.
type Role string

const (
	RoleRequired Role = "required" // Constructor argument; always serialized.
	RoleOptional Role = "optional" // Builder setter; serialized only when present.
)

// Descriptor declares one remote method: its name, response type and ordered
// fields. Generated payloads carry their descriptor so documentation and wire
// metadata are available at runtime.
type Descriptor struct {
	Method  string `validate:"required,wirename"`
	Type    string `validate:"required,goexported"` // Go type name of the payload.
	Returns string `validate:"required,gotype"`     // Go type of the response.
	Doc     string
	Fields  []FieldDescriptor `validate:"dive"`
}

// FieldDescriptor declares one payload field.
type FieldDescriptor struct {
	Name     string `validate:"required,goexported"` // Go field name.
	WireName string `validate:"required,wirename"`
	Type     string `validate:"required,gotype"` // Go type of the stored value.
	Role     Role   `validate:"oneof=required optional"`
	Into     bool   // Setter accepts Into[Type].
	Nullable bool   // Field may be set to an explicit null.
	Doc      string
}

var (
	validate     = newValidator()
	wireNameExpr = regexp.MustCompile(`^[a-z][a-z0-9_]*$|^[a-z][a-zA-Z0-9]*$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("wirename", func(fl validator.FieldLevel) bool {
		return wireNameExpr.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("goexported", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return token.IsIdentifier(s) && token.IsExported(s)
	})
	_ = v.RegisterValidation("gotype", func(fl validator.FieldLevel) bool {
		return isGoType(fl.Field().String())
	})
	return v
}

// isGoType accepts the type expressions payload fields are declared with:
// names, qualified names, pointers, slices and maps of those.
func isGoType(s string) bool {
	e, err := parser.ParseExpr(s)
	return err == nil && typeExpr(e)
}

func typeExpr(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.Ident:
		return true
	case *ast.SelectorExpr:
		_, ok := e.X.(*ast.Ident)
		return ok
	case *ast.StarExpr:
		return typeExpr(e.X)
	case *ast.ArrayType:
		return e.Len == nil && typeExpr(e.Elt)
	case *ast.MapType:
		return typeExpr(e.Key) && typeExpr(e.Value)
	}
	return false
}

// generatedMethods are declared on every payload type and cannot be used as
// field names.
var generatedMethods = []string{"Descriptor", "MethodName", "DecodeResult", "MarshalJSON"}

// methodSet returns the methods generated for d, keyed by name, with the
// index of the field that produced each setter (-1 for fixed methods).
func (d Descriptor) methodSet() (map[string]int, Issues) {
	set := make(map[string]int, len(generatedMethods)+2*len(d.Fields))
	for _, m := range generatedMethods {
		set[m] = -1
	}
	var iss Issues
	add := func(i int, f FieldDescriptor, name string) {
		if first, dup := set[name]; dup {
			it := Root().Field("Fields").Index(i).Issue(CodeConflictingRole, i18n.T(CodeConflictingRole, nil))
			it.Field = f.WireName
			if first < 0 {
				it.Hint = fmt.Sprintf("setter %s collides with a generated method", name)
			} else {
				it.Hint = fmt.Sprintf("setter %s already generated for field %d", name, first)
			}
			iss = append(iss, it)
			return
		}
		set[name] = i
	}
	for i, f := range d.Fields {
		if f.Role != RoleOptional || f.Name == "" {
			continue
		}
		add(i, f, "With"+f.Name)
		if f.Nullable {
			add(i, f, "With"+f.Name+"Null")
		}
	}
	return set, iss
}

// Required returns the required fields in declaration order.
func (d Descriptor) Required() []FieldDescriptor { return d.byRole(RoleRequired) }

// Optional returns the optional fields in declaration order.
func (d Descriptor) Optional() []FieldDescriptor { return d.byRole(RoleOptional) }

func (d Descriptor) byRole(r Role) []FieldDescriptor {
	var out []FieldDescriptor
	for _, f := range d.Fields {
		if f.Role == r {
			out = append(out, f)
		}
	}
	return out
}

// Validate checks the definition contract and returns a *SchemaError listing
// every violation.
func (d Descriptor) Validate() error {
	var iss Issues
	root := Root()

	if err := validate.Struct(d); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return &SchemaError{Name: d.Method, Issues: Issues{root.Issue(CodeInvalidDescriptor, err.Error())}}
		}
		for _, fe := range verrs {
			iss = append(iss, Issue{
				Path:    validatorPointer(fe.Namespace()),
				Field:   fe.Field(),
				Code:    CodeInvalidDescriptor,
				Message: i18n.T(CodeInvalidDescriptor, nil),
				Hint:    fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()),
			})
		}
	}

	methods, clashes := d.methodSet()
	iss = append(iss, clashes...)
	wires := make(map[string]int, len(d.Fields))
	names := make(map[string]int, len(d.Fields))
	seenOptional := false
	for i, f := range d.Fields {
		p := root.Field("Fields").Index(i)
		if first, dup := wires[f.WireName]; dup && f.WireName != "" {
			it := p.Issue(CodeDuplicateField, i18n.T(CodeDuplicateField, map[string]string{"key": f.WireName}))
			it.Field = f.WireName
			it.Hint = fmt.Sprintf("wire name %q already used by field %d", f.WireName, first)
			iss = append(iss, it)
		} else {
			wires[f.WireName] = i
		}
		if first, dup := names[f.Name]; dup && f.Name != "" {
			it := p.Issue(CodeDuplicateField, i18n.T(CodeDuplicateField, map[string]string{"key": f.Name}))
			it.Field = f.WireName
			it.Hint = fmt.Sprintf("field name %q already used by field %d", f.Name, first)
			iss = append(iss, it)
		} else {
			names[f.Name] = i
		}
		if _, clash := methods[f.Name]; clash {
			it := p.Issue(CodeConflictingRole, i18n.T(CodeConflictingRole, nil))
			it.Field = f.WireName
			it.Hint = fmt.Sprintf("field name %q is also a method of %s", f.Name, d.Type)
			iss = append(iss, it)
		}
		switch f.Role {
		case RoleRequired:
			if f.Into || f.Nullable {
				it := p.Issue(CodeConflictingRole, i18n.T(CodeConflictingRole, nil))
				it.Field = f.WireName
				it.Hint = "required fields take their exact type and cannot be null"
				iss = append(iss, it)
			}
			if seenOptional {
				it := p.Issue(CodeConflictingRole, i18n.T(CodeConflictingRole, nil))
				it.Field = f.WireName
				it.Hint = "required fields must precede optional fields"
				iss = append(iss, it)
			}
		case RoleOptional:
			seenOptional = true
			if f.Into && f.Nullable {
				it := p.Issue(CodeConflictingRole, i18n.T(CodeConflictingRole, nil))
				it.Field = f.WireName
				it.Hint = "a field is either into-converted or nullable"
				iss = append(iss, it)
			}
		}
	}
	if len(iss) > 0 {
		return &SchemaError{Name: d.Method, Issues: iss}
	}
	return nil
}

// MustDescriptor validates d and panics with a *SchemaError on failure.
// Generated code calls it from package-level vars so a broken definition
// fails before any payload can be constructed.
func MustDescriptor(d Descriptor) Descriptor {
	if err := d.Validate(); err != nil {
		panic(err)
	}
	return d
}

// JSONSchema projects the request side of d into a JSON Schema object.
func (d Descriptor) JSONSchema() *js.Schema {
	out := &js.Schema{
		Type:                 "object",
		Title:                d.Method,
		Description:          d.Doc,
		Properties:           make(map[string]*js.Schema, len(d.Fields)),
		AdditionalProperties: false,
	}
	for _, f := range d.Fields {
		ps := &js.Schema{Type: goTypeKind(f.Type), Description: f.Doc}
		if f.Nullable {
			ps.Nullable = true
		}
		out.Properties[f.WireName] = ps
		if f.Role == RoleRequired {
			out.Required = append(out.Required, f.WireName)
		}
	}
	return out
}

// goTypeKind maps a declared Go type name to its JSON kind, or "" when the
// kind is decided by the type's own marshaling.
func goTypeKind(t string) string {
	switch {
	case t == "string":
		return KindString
	case t == "bool":
		return KindBoolean
	case strings.HasPrefix(t, "int"), strings.HasPrefix(t, "uint"):
		return KindInteger
	case strings.HasPrefix(t, "float"):
		return KindNumber
	case strings.HasPrefix(t, "[]"):
		return KindArray
	case strings.HasPrefix(t, "map["):
		return KindObject
	}
	return ""
}

// validatorPointer turns "Descriptor.Fields[2].WireName" into "/Fields/2/WireName".
func validatorPointer(ns string) string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	} else {
		return "/"
	}
	r := strings.NewReplacer("[", ".", "]", "")
	return "/" + strings.ReplaceAll(r.Replace(ns), ".", "/")
}
