package flexkit

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrKind is the sentinel every taxonomy error unwraps to, so callers can
// use errors.Is(err, ErrInvalidValue) without inspecting the detail payload.
type ErrKind struct{ name string }

func (k *ErrKind) Error() string { return k.name }

// Sentinels for the three error kinds spec.md §7 defines. Layout itself
// (CalculateLayout) has no error path: indefinite bases resolve to 0,
// percentages against indefinite bases are indefinite, negative computed
// sizes clamp to 0, and setters reject NaN before it can enter the tree.
var (
	ErrInvalidValue    = &ErrKind{"InvalidValue"}
	ErrUnknownProperty = &ErrKind{"UnknownProperty"}
	ErrTreeMisuse      = &ErrKind{"TreeMisuse"}
)

// FieldError reports a rejected setter argument: a non-finite number, a
// negative flexGrow/flexShrink, a non-numeric order, or a malformed
// aspect-ratio/value string.
type FieldError struct {
	kind  *ErrKind
	Field string
	Value any
	cause error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: field %q got invalid value %v", e.kind.name, e.Field, e.Value)
}

func (e *FieldError) Unwrap() error { return e.kind }

func errInvalidValue(field string, value any) error {
	return errors.WithStack(&FieldError{kind: ErrInvalidValue, Field: field, Value: value})
}

// PropertyError reports set(key, _) / style({key: _}) called with a key
// the façade does not recognise.
type PropertyError struct {
	Key string
}

func (e *PropertyError) Error() string {
	return fmt.Sprintf("UnknownProperty: %q is not a recognised style key", e.Key)
}

func (e *PropertyError) Unwrap() error { return ErrUnknownProperty }

func errUnknownProperty(key string) error {
	return errors.WithStack(&PropertyError{Key: key})
}

// TreeError reports appendChild being asked to create a cycle: appending
// a node to itself or to one of its own descendants. A node that already
// has another parent is detached from it rather than reported.
type TreeError struct {
	Parent *Node
	Child  *Node
	Reason string
}

func (e *TreeError) Error() string {
	return fmt.Sprintf("TreeMisuse: %s", e.Reason)
}

func (e *TreeError) Unwrap() error { return ErrTreeMisuse }

func errTreeMisuse(parent, child *Node, reason string) error {
	return errors.WithStack(&TreeError{Parent: parent, Child: child, Reason: reason})
}
