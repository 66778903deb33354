// Package types holds the domain values exchanged with the bot API.
//
// Response types decode through botschema shapes: strict members fail with
// missing_field when absent, lenient members substitute a documented
// sentinel. Leniency covers absence only; a member of the wrong JSON kind
// always fails.
package types
