// Package errors provides standardized, fatal error messaging for the
// type-system engine. These are raised only for programmer mistakes — the
// engine's own API misuse, not ordinary query failures, which flow back as
// *types.Problem values instead.
package errors

import (
	"fmt"
	"runtime"
)

// ErrorCategory represents different categories of fatal engine errors.
type ErrorCategory string

const (
	CategoryIdentifierConflict ErrorCategory = "IDENTIFIER_CONFLICT"
	CategoryKindMisuse         ErrorCategory = "KIND_MISUSE"
	CategoryArity              ErrorCategory = "ARITY"
	CategoryLifecycle          ErrorCategory = "LIFECYCLE"
)

// StandardError provides a consistent fatal-error format.
type StandardError struct {
	Category ErrorCategory
	Code     string
	Message  string
	Context  map[string]interface{}
	Caller   string
}

// Error implements the error interface.
func (e *StandardError) Error() string {
	return fmt.Sprintf("[%s:%s] %s (caller: %s)", e.Category, e.Code, e.Message, e.Caller)
}

// NewStandardError creates a new standardized error, tagging it with its
// caller for diagnosability.
func NewStandardError(category ErrorCategory, code, message string, context map[string]interface{}) *StandardError {
	pc, _, _, ok := runtime.Caller(1)

	caller := "unknown"
	if ok {
		if fn := runtime.FuncForPC(pc); fn != nil {
			caller = fn.Name()
		}
	}

	return &StandardError{
		Category: category,
		Code:     code,
		Message:  message,
		Context:  context,
		Caller:   caller,
	}
}

// DuplicateIdentifier is raised when a host asks two kinds to mint types
// under the same identifier.
func DuplicateIdentifier(id string, existingKind, requestedKind string) *StandardError {
	return NewStandardError(CategoryIdentifierConflict, "DUPLICATE_IDENTIFIER",
		fmt.Sprintf("identifier %q already denotes a %s type, cannot also denote a %s type", id, existingKind, requestedKind),
		map[string]interface{}{"id": id, "existingKind": existingKind, "requestedKind": requestedKind})
}

// NegativeArity is raised when a kind factory is asked to build a type with
// a negative parameter count.
func NegativeArity(kind string, arity int) *StandardError {
	return NewStandardError(CategoryArity, "NEGATIVE_ARITY",
		fmt.Sprintf("%s type cannot have negative arity %d", kind, arity),
		map[string]interface{}{"kind": kind, "arity": arity})
}

// KindMisuse is raised when engine-internal code is asked to compare or
// combine two types whose kinds are structurally incompatible with the
// requested operation (not the ordinary KindConflict Problem, which is an
// expected, returned value — this is for cases that should never happen
// given the engine's own invariants).
func KindMisuse(operation string, kindName string) *StandardError {
	return NewStandardError(CategoryKindMisuse, "KIND_MISUSE",
		fmt.Sprintf("operation %q is not valid for kind %q", operation, kindName),
		map[string]interface{}{"operation": operation, "kind": kindName})
}

// LifecycleViolation is raised when engine-internal code observes a type
// lifecycle invariant broken (e.g. a completed type's payload mutated).
func LifecycleViolation(detail string) *StandardError {
	return NewStandardError(CategoryLifecycle, "LIFECYCLE_VIOLATION", detail, nil)
}
