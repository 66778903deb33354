package botschema

// Presence is the bit flag collected by DecodeWithMeta.
type Presence uint8

const (
	PresenceSeen           Presence = 1 << iota // Field appeared in the input.
	PresenceWasNull                             // Field value was null.
	PresenceDefaultApplied                      // Sentinel was substituted for an absent field.
)

// PresenceMap maps JSON Pointers to Presence flags.
type PresenceMap map[string]Presence

// Decoded carries the decoded value along with presence metadata.
type Decoded[T any] struct {
	Value    T
	Presence PresenceMap
}

// Defaulted reports whether the field at the given JSON Pointer was absent
// and filled with its sentinel. It is the only way to tell a substituted
// sentinel from a value that genuinely equals it.
func (d Decoded[T]) Defaulted(pointer string) bool {
	p := d.Presence[pointer]
	return p&PresenceDefaultApplied != 0 && p&PresenceSeen == 0
}

// Seen reports whether the field at the given JSON Pointer was present.
func (d Decoded[T]) Seen(pointer string) bool {
	return d.Presence[pointer]&PresenceSeen != 0
}
