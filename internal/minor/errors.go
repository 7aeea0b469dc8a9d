package minor

import (
	"errors"
	"fmt"
)

// ErrInvalidK is returned by NewChecker when k < 1, an input error:
// the caller gave this package a malformed problem.
var ErrInvalidK = errors.New("minor: k must be >= 1")

// ErrIndeterminate is returned by Run when ctx is already done when Run
// is called, or its deadline expires before the solver reaches a
// verdict. A cancellation that arrives while the solver is running is
// not observed. Unlike the
// panics below, this is an ordinary runtime outcome a caller is
// expected to handle: the tool simply makes no positive claim about
// containment.
var ErrIndeterminate = errors.New("minor: cancelled or timed out before a verdict was reached")

// usageError is panicked by Checker accessors that require Run to
// have already produced a verdict. It signals a bug in the caller
// (querying a result that does not exist yet), not a condition normal
// control flow should recover from.
type usageError string

func (e usageError) Error() string { return string(e) }

// internalInconsistencyError is panicked when the solver reports the
// formula satisfiable but the independent validator rejects the
// decoded assignment. This can only indicate a bug in the encoder or
// decoder, never a property of the input graph, and is never silently
// recovered.
type internalInconsistencyError struct {
	reason error
}

func (e internalInconsistencyError) Error() string {
	return fmt.Sprintf("minor: internal inconsistency: solver reported a model but validation failed: %s", e.reason)
}
