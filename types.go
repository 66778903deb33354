package botschema

// UnknownPolicy controls how unknown response keys are handled.
type UnknownPolicy int

const (
	UnknownStrip  UnknownPolicy = iota // Drop unknown keys (default for responses).
	UnknownStrict                      // Reject unknown keys with an unknown_key issue.
)
