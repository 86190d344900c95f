package models

import (
	"encoding/json"
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// Arg is a function call argument: a nested *Call, a Literal, or a
// CellAddress (expression entries only).
type Arg interface {
	isArg()
}

// Literal is a plain text argument.
type Literal string

func (Literal) isArg()     {}
func (CellAddress) isArg() {}
func (*Call) isArg()       {}

// Call is a node of a function call tree such as SUM(A(1,2),3).
type Call struct {
	// Name is the function name (never empty).
	Name string
	// Args are the call arguments in source order.
	Args []Arg
}

// NewCall builds a call node.
func NewCall(name string, args ...Arg) *Call {
	return &Call{Name: name, Args: args}
}

// Tree returns the call in array form: the name followed by the
// arguments, with nested calls as nested arrays.
func (c *Call) Tree() []any {
	tree := make([]any, 0, len(c.Args)+1)
	tree = append(tree, c.Name)
	for _, arg := range c.Args {
		switch v := arg.(type) {
		case *Call:
			tree = append(tree, v.Tree())
		case Literal:
			tree = append(tree, string(v))
		case CellAddress:
			tree = append(tree, v)
		}
	}
	return tree
}

// MarshalJSON encodes the call in array form.
func (c *Call) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Tree())
}

// MarshalYAML encodes the call in array form.
func (c *Call) MarshalYAML() (interface{}, error) {
	return c.Tree(), nil
}

var canonicalCBOR cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("models: failed to create CBOR encoder: %v", err))
	}
	canonicalCBOR = em
}

// MarshalCBOR encodes the call in array form.
func (c *Call) MarshalCBOR() ([]byte, error) {
	return canonicalCBOR.Marshal(c.Tree())
}
