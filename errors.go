package scrollfx

import (
	"errors"
	"fmt"
)

// ErrMissingTarget reports a descriptor whose Target (or Trigger) Ref does not
// resolve to a live node. Registration treats it as a silent no-op: the node
// may simply not be attached yet.
var ErrMissingTarget = errors.New("scrollfx: target not attached")

// InvalidDescriptorError reports a malformed descriptor. Descriptors that fail
// validation are never registered.
type InvalidDescriptorError struct {
	Field  string
	Reason string
	Err    error
}

func (e *InvalidDescriptorError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scrollfx: invalid descriptor %s: %s: %v", e.Field, e.Reason, e.Err)
	}
	return fmt.Sprintf("scrollfx: invalid descriptor %s: %s", e.Field, e.Reason)
}

func (e *InvalidDescriptorError) Unwrap() error {
	return e.Err
}

func invalid(field, reason string) error {
	return &InvalidDescriptorError{Field: field, Reason: reason}
}
