package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when an operation is given a value it
	// cannot accept (bad option, unknown view mode, nil surface).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidViewMode is an ErrInvalidArgument for view modes.
	ErrInvalidViewMode = fmt.Errorf("%w: invalid view mode", ErrInvalidArgument)

	// ErrGroupCycle indicates that group parent references loop back on
	// themselves.
	ErrGroupCycle = fmt.Errorf("%w: group parent cycle", ErrInvalidArgument)

	// ErrNotFound is used by lookups that need an error value; update and
	// remove operations report absence with a boolean instead.
	ErrNotFound = errors.New("not found")

	// ErrDestroyed is returned by chart operations after Destroy.
	ErrDestroyed = errors.New("chart destroyed")
)
