package types

import (
	"fmt"
	"strings"
)

// ProblemKind tags a Problem with the relation or service that produced it.
type ProblemKind string

const (
	ProblemKindConflict       ProblemKind = "KindConflict"
	ProblemTypeEquality       ProblemKind = "TypeEqualityProblem"
	ProblemSubType            ProblemKind = "SubTypeProblem"
	ProblemConversion         ProblemKind = "ConversionProblem"
	ProblemAssignability      ProblemKind = "AssignabilityProblem"
	ProblemInference          ProblemKind = "InferenceProblem"
	ProblemRuleNotApplicable  ProblemKind = "InferenceRuleNotApplicable"
	ProblemAmbiguousOverload  ProblemKind = "AmbiguousOverload"
	ProblemInitializationFail ProblemKind = "InitializationError"
)

// Problem is a structured, nested problem value. Problems are returned,
// never thrown; every engine query that can fail returns one instead of an
// error, reserving panics for programmer mistakes.
type Problem struct {
	Kind          ProblemKind
	Message       string
	InvolvedTypes []string
	Nested        []*Problem

	// CorrelationID is a unique id for this one problem, letting a host track
	// it across its logs and diagnostics surface. Set only by validation rules
	// that choose to stamp one (EnsureNodeIsAssignable stamps a fresh id on
	// each failure); relation-service problems leave it empty.
	CorrelationID string
}

// Error lets a Problem satisfy the standard error interface, which is
// convenient for (*Type, error)-shaped Go signatures; callers that need the
// structured value type-assert the error back to *Problem.
func (p *Problem) Error() string {
	if p == nil {
		return ""
	}

	return p.String()
}

func (p *Problem) String() string {
	if p == nil {
		return ""
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s", p.Kind, p.Message)

	if len(p.InvolvedTypes) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(p.InvolvedTypes, ", "))
	}

	for _, n := range p.Nested {
		fmt.Fprintf(&b, "\n  - %s", n.String())
	}

	return b.String()
}

func newProblem(kind ProblemKind, message string, involved ...string) *Problem {
	return &Problem{
		Kind:          kind,
		Message:       message,
		InvolvedTypes: involved,
	}
}

func (p *Problem) withNested(nested ...*Problem) *Problem {
	p.Nested = append(p.Nested, nested...)
	return p
}
