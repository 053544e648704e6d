// Package tysys is the thin, stable-surface re-export of internal/types for
// embedding hosts. It exists so a host can depend on
// "github.com/latticefold/tysys" without reaching into internal packages.
// Types, constants and rule builders are direct aliases; the constructor and
// helper functions are thin wrappers that forward to internal/types.
package tysys

import (
	"github.com/latticefold/tysys/internal/types"
)

type (
	Engine       = types.Engine
	EngineConfig = types.EngineConfig
	Node         = types.Node
	Type         = types.Type
	Kind         = types.Kind
	State        = types.State
	Problem      = types.Problem
	ProblemKind  = types.ProblemKind
	Edge         = types.Edge
	EdgeLabel    = types.EdgeLabel

	ConversionMode = types.ConversionMode

	PrimitiveDetails        = types.PrimitiveDetails
	ClassDetails             = types.ClassDetails
	ClassField               = types.ClassField
	ClassIdentityPolicy      = types.ClassIdentityPolicy
	ClassVariancePolicy      = types.ClassVariancePolicy
	FunctionDetails          = types.FunctionDetails
	Parameter                = types.Parameter
	FixedParametersDetails  = types.FixedParametersDetails
	FixedParametersFamily   = types.FixedParametersFamily
	ParameterVariance        = types.ParameterVariance

	InferenceRule     = types.InferenceRule
	InferenceOutcome  = types.InferenceOutcome
	ChildRequest      = types.ChildRequest
	ValidationRule    = types.ValidationRule
	OverloadResolution = types.OverloadResolution
	AssignabilityResult = types.AssignabilityResult
)

const (
	StateInvalid      = types.StateInvalid
	StateIdentifiable = types.StateIdentifiable
	StateCompleted    = types.StateCompleted

	ConversionNone             = types.ConversionNone
	ConversionImplicitExplicit = types.ConversionImplicitExplicit
	ConversionExplicit         = types.ConversionExplicit

	ClassIdentityNominal    = types.ClassIdentityNominal
	ClassIdentityStructural = types.ClassIdentityStructural
	ClassFieldsInvariant    = types.ClassFieldsInvariant
	ClassFieldsCovariant    = types.ClassFieldsCovariant

	VarianceEqualType      = types.VarianceEqualType
	VarianceSubType        = types.VarianceSubType
	VarianceAssignableType = types.VarianceAssignableType

	ProblemKindConflict       = types.ProblemKindConflict
	ProblemTypeEquality       = types.ProblemTypeEquality
	ProblemSubType            = types.ProblemSubType
	ProblemConversion         = types.ProblemConversion
	ProblemAssignability      = types.ProblemAssignability
	ProblemInference          = types.ProblemInference
	ProblemRuleNotApplicable  = types.ProblemRuleNotApplicable
	ProblemAmbiguousOverload  = types.ProblemAmbiguousOverload
	ProblemInitializationFail = types.ProblemInitializationFail
)

// NewEngine constructs a fresh, independent type universe.
func NewEngine(config EngineConfig) *Engine { return types.NewEngine(config) }

var (
	Primitives = types.Primitives
	Classes    = types.Classes
	Functions  = types.Functions
	Operators  = types.Operators
	Top        = types.Top
	Bottom     = types.Bottom
)

// NewFixedParametersFamily declares a reusable generic-container family,
// e.g. `List<T>`.
func NewFixedParametersFamily(baseName string, paramNames []string, variance ParameterVariance) *FixedParametersFamily {
	return types.NewFixedParametersFamily(baseName, paramNames, variance)
}

// RuleNotApplicable, RuleFinal, RuleChildren, and RuleContextual build an
// InferenceOutcome for the four shapes a rule may return.
var (
	RuleNotApplicable = types.RuleNotApplicable
	RuleFinal         = types.RuleFinal
	RuleChildren       = types.RuleChildren
	RuleContextual     = types.RuleContextual
)

// CallInferenceRule builds the standard two-step inference rule shared by
// function and operator calls.
func CallInferenceRule(name string, extractOperands func(node Node) ([]Node, bool)) InferenceRule {
	return types.CallInferenceRule(name, extractOperands)
}

// EnsureNodeIsAssignable is the stock validation rule checking one node's
// inferred type against another's.
func EnsureNodeIsAssignable(actualNode, expectedNode Node, messageFn func(actual, expected *Type) string) ValidationRule {
	return types.EnsureNodeIsAssignable(actualNode, expectedNode, messageFn)
}
