package botschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissingField         = "missing_field"
	CodeTypeMismatch         = "type_mismatch"
	CodeUnknownKey           = "unknown_key"
	CodeParseError           = "parse_error"
	CodeDuplicateKey         = "duplicate_key"
	CodeDiscriminatorMissing = "discriminator_missing"
	CodeDiscriminatorUnknown = "discriminator_unknown"

	// Definition-time codes, reported inside SchemaError.
	CodeDuplicateField    = "duplicate_field"
	CodeConflictingRole   = "conflicting_role"
	CodeInvalidDescriptor = "invalid_descriptor"
)

// JSON kinds used in Issue.Expected and Issue.Actual.
const (
	KindString  = "string"
	KindInteger = "integer"
	KindNumber  = "number"
	KindBoolean = "boolean"
	KindObject  = "object"
	KindArray   = "array"
	KindNull    = "null"
)

// Issue represents a single decode or definition problem.
type Issue struct {
	Path     string // JSON Pointer (for example: /result/file_size).
	Field    string // Wire name of the innermost field; empty for the root.
	Code     string // One of the codes listed above.
	Message  string
	Expected string // type_mismatch only: declared JSON kind.
	Actual   string // type_mismatch only: JSON kind found on the wire.
	Hint     string // Optional: remediation hints, variant names, etc.
	Cause    error  // Optional: underlying error.
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := min(n, maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. type_mismatch at /file_size (expected integer, got string)
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		if it.Code == CodeTypeMismatch {
			fmt.Fprintf(b, " (expected %s, got %s)", it.Expected, it.Actual)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IsMissingField reports whether err carries a missing_field issue for the
// given wire name.
func IsMissingField(err error, field string) bool {
	return hasIssue(err, CodeMissingField, field)
}

// IsTypeMismatch reports whether err carries a type_mismatch issue for the
// given wire name.
func IsTypeMismatch(err error, field string) bool {
	return hasIssue(err, CodeTypeMismatch, field)
}

func hasIssue(err error, code, field string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code && it.Field == field {
			return true
		}
	}
	return false
}

// SchemaError reports a descriptor or response shape that violates the
// definition contract: duplicate wire names, conflicting field roles or
// invalid names. It is a build-time failure; MustDescriptor and MustBuild
// panic with it.
type SchemaError struct {
	Name   string // Method or type name.
	Issues Issues
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("botschema: invalid definition %q: %s", e.Name, e.Issues.Error())
}

func (e *SchemaError) Unwrap() error { return e.Issues }

// TransportError wraps a failure returned by the Transport. The wrapped error
// is not inspected.
type TransportError struct {
	Method string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("botschema: %s: transport: %v", e.Method, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
