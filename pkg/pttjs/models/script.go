package models

// ScriptKind selects the collection a script entry belongs to.
type ScriptKind string

const (
	// KindTyping entries are terminated by "=>".
	KindTyping ScriptKind = "typing"
	// KindExpression entries are terminated by "=".
	KindExpression ScriptKind = "expression"
	// KindStyle entries are terminated by "<=".
	KindStyle ScriptKind = "style"
)

// Operator returns the address terminator of the kind.
func (k ScriptKind) Operator() string {
	switch k {
	case KindTyping:
		return "=>"
	case KindStyle:
		return "<="
	default:
		return "="
	}
}

// ScriptEntry attaches a function call tree to an address.
type ScriptEntry struct {
	// Address is the target of the entry.
	Address ScriptAddress `json:"address" yaml:"address" cbor:"address"`
	// Call is the parsed function call.
	Call *Call `json:"call" yaml:"call" cbor:"call"`
}
