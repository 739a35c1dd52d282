package formstate

import "errors"

var (
	// ErrUnknownField is returned when a mutation targets a name outside the
	// fixed field set.
	ErrUnknownField = errors.New("formstate: unknown field")
	// ErrNilState guards calls on a nil *State.
	ErrNilState = errors.New("formstate: state is nil")
)
