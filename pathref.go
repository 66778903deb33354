package botschema

import (
	"strconv"
	"strings"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
// The zero value is the document root.
type PathRef struct {
	parts []string
	field string
}

// Root returns the root path ("/").
func Root() PathRef { return PathRef{} }

// Field returns the path of the named member below p.
func (p PathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return PathRef{parts: append(append([]string{}, p.parts...), esc), field: name}
}

// Index returns the path of the i-th element below p. The innermost field
// name is inherited so array issues still name the field that holds them.
func (p PathRef) Index(i int) PathRef {
	return PathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i)), field: p.field}
}

// Pointer renders p as a JSON Pointer.
func (p PathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Issue creates an Issue located at p.
func (p PathRef) Issue(code, msg string) Issue {
	return Issue{Path: p.Pointer(), Field: p.field, Code: code, Message: msg}
}

// rebase moves issues produced relative to a nested document under p.
func (p PathRef) rebase(iss Issues) Issues {
	if len(p.parts) == 0 {
		return iss
	}
	out := make(Issues, len(iss))
	base := p.Pointer()
	for i, it := range iss {
		if it.Path == "" || it.Path == "/" {
			it.Path = base
			if it.Field == "" {
				it.Field = p.field
			}
		} else {
			it.Path = base + it.Path
		}
		out[i] = it
	}
	return out
}
