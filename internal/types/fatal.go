package types

import (
	stderrors "github.com/latticefold/tysys/internal/errors"
)

// Fatal engine-misuse panics wrap internal/errors.StandardError so a
// recovering host gets a structured value, not a bare string.

func errorsDuplicateIdentifier(id, existingKind, requestedKind string) error {
	return stderrors.DuplicateIdentifier(id, existingKind, requestedKind)
}

func errorsNegativeArity(kind string, arity int) error {
	return stderrors.NegativeArity(kind, arity)
}

func errorsKindMisuse(operation, kindName string) error {
	return stderrors.KindMisuse(operation, kindName)
}
