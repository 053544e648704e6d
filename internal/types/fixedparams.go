package types

import (
	"fmt"
	"strings"
)

// ParameterVariance selects how FixedParameters compares two instances'
// parameter types for subtyping.
type ParameterVariance int

const (
	// VarianceEqualType requires parameter types to be identical.
	VarianceEqualType ParameterVariance = iota
	// VarianceSubType requires parameter types to be pairwise subtypes
	// (covariant).
	VarianceSubType
	// VarianceAssignableType requires parameter types to be pairwise
	// assignable, position by position.
	VarianceAssignableType
)

// FixedParametersDetails are the creation details for a fixed-parameters
// type instance, e.g. `List<int>`.
type FixedParametersDetails struct {
	ParameterTypes []*Type
}

type fixedParamsPayload struct {
	family         *FixedParametersFamily
	parameterTypes []*Type
}

type fixedParamsKind struct{}

var fixedParamsKindSingleton Kind = &fixedParamsKind{}

func (*fixedParamsKind) Name() string { return "fixed-parameters" }

// DeriveID: `Name<id1, …, idn>`.
func (*fixedParamsKind) DeriveID(details any) (string, error) {
	d := details.(*fixedParamsCreation)

	ids := make([]string, len(d.parameterTypes))
	for i, t := range d.parameterTypes {
		ids[i] = t.ID()
	}

	return fmt.Sprintf("%s<%s>", d.baseName, strings.Join(ids, ",")), nil
}

type fixedParamsCreation struct {
	baseName       string
	parameterTypes []*Type
}

// AnalyzeEquality: same base name and pairwise equal parameter types.
func (*fixedParamsKind) AnalyzeEquality(e *Engine, a, b *Type) (bool, *Problem) {
	pa := a.payload.(*fixedParamsPayload)
	pb := b.payload.(*fixedParamsPayload)

	if pa.family.baseName != pb.family.baseName {
		return false, newProblem(ProblemTypeEquality, "fixed-parameters types have different base names", a.id, b.id)
	}

	if len(pa.parameterTypes) != len(pb.parameterTypes) {
		return false, newProblem(ProblemTypeEquality, "fixed-parameters types have different arities", a.id, b.id)
	}

	for i := range pa.parameterTypes {
		if ok, _ := e.AreTypesEqual(pa.parameterTypes[i], pb.parameterTypes[i]); !ok {
			return false, newProblem(ProblemTypeEquality,
				fmt.Sprintf("parameter %d types differ", i), a.id, b.id)
		}
	}

	return true, nil
}

// AnalyzeSubtype: same base name required; parameter-type comparison follows
// the instance's configured variance policy.
func (*fixedParamsKind) AnalyzeSubtype(e *Engine, sub, sup *Type) (bool, *Problem) {
	subP := sub.payload.(*fixedParamsPayload)
	supP := sup.payload.(*fixedParamsPayload)

	if subP.family.baseName != supP.family.baseName {
		return false, newProblem(ProblemSubType, "fixed-parameters types have different base names", sub.id, sup.id)
	}

	if len(subP.parameterTypes) != len(supP.parameterTypes) {
		return false, newProblem(ProblemSubType, "fixed-parameters types have different arities", sub.id, sup.id)
	}

	variance := subP.family.variance

	var nested []*Problem

	for i := range subP.parameterTypes {
		s, t := subP.parameterTypes[i], supP.parameterTypes[i]

		var ok bool

		switch variance {
		case VarianceEqualType:
			ok, _ = e.AreTypesEqual(s, t)
		case VarianceSubType:
			ok, _ = e.IsSubType(s, t)
		case VarianceAssignableType:
			result := e.GetAssignabilityResult(s, t)
			ok = result.Assignable
		}

		if !ok {
			paramName := ""
			if i < len(subP.family.paramNames) {
				paramName = subP.family.paramNames[i]
			}

			nested = append(nested, newProblem(ProblemSubType,
				fmt.Sprintf("parameter %q violates variance policy", paramName), s.id, t.id))
		}
	}

	if len(nested) > 0 {
		return false, newProblem(ProblemSubType, "fixed-parameters subtyping failed", sub.id, sup.id).withNested(nested...)
	}

	return true, nil
}

func (*fixedParamsKind) Print(t *Type) string {
	p := t.payload.(*fixedParamsPayload)

	names := make([]string, len(p.parameterTypes))
	for i, pt := range p.parameterTypes {
		names[i] = pt.String()
	}

	return fmt.Sprintf("%s<%s>", p.family.baseName, strings.Join(names, ", "))
}

// FixedParametersFamily is a reusable generic-container declaration, e.g.
// `List<T>`: a base name, its formal parameter names, and a variance policy
// shared by every instance created from it. Instances hold a pointer back
// to their family rather than a copy of its variance, so SetVariance
// retroactively changes the answer of subtype queries against already-
// created instances too.
type FixedParametersFamily struct {
	baseName   string
	paramNames []string
	variance   ParameterVariance
	instances  []*Type
}

// NewFixedParametersFamily declares a generic-container family.
func NewFixedParametersFamily(baseName string, paramNames []string, variance ParameterVariance) *FixedParametersFamily {
	return &FixedParametersFamily{baseName: baseName, paramNames: paramNames, variance: variance}
}

// SetVariance reconfigures the family's variance policy. The change is
// visible immediately to both future and already-created instances, since
// AnalyzeSubtype reads it through the instance's family pointer; generation
// counters are bumped so memoized subtype results invalidate.
func (f *FixedParametersFamily) SetVariance(v ParameterVariance) {
	f.variance = v

	for _, t := range f.instances {
		t.generation++
	}
}

// Create builds (or returns the existing) fixed-parameters type instance
// for the given parameter types.
func (f *FixedParametersFamily) Create(e *Engine, details FixedParametersDetails) (*Type, *Problem) {
	if len(details.ParameterTypes) != len(f.paramNames) {
		panic(errorsNegativeArity("fixed-parameters", len(details.ParameterTypes)-len(f.paramNames)))
	}

	id, _ := fixedParamsKindSingleton.DeriveID(&fixedParamsCreation{baseName: f.baseName, parameterTypes: details.ParameterTypes})

	if existing, ok := e.graph.GetType(id); ok {
		if existing.kind.Name() != "fixed-parameters" {
			panic(errorsDuplicateIdentifier(id, existing.kind.Name(), "fixed-parameters"))
		}

		return existing, nil
	}

	t := newType(fixedParamsKindSingleton, id)
	t.payload = &fixedParamsPayload{family: f, parameterTypes: details.ParameterTypes}

	canonical := e.graph.AddNode(t)
	canonical.markIdentifiable()
	canonical.markCompleted()

	f.instances = append(f.instances, canonical)

	return canonical, nil
}
