package catalog

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an asset does not exist for an index.
var ErrNotFound = errors.New("asset not found")

// LookupError names the asset that failed to resolve.
type LookupError struct {
	Kind  Kind
	Index int
	Err   error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %s: %v", Key(e.Kind, e.Index), e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}

func notFound(kind Kind, index int) error {
	return &LookupError{Kind: kind, Index: index, Err: ErrNotFound}
}
