package types

import "fmt"

// PrimitiveDetails are the creation details for a primitive type.
type PrimitiveDetails struct {
	Name           string
	InferenceRules []InferenceRule
}

type primitiveKind struct{}

// Primitives is the primitive-kind factory facet.
var Primitives primitiveFactory

type primitiveFactory struct{}

func (primitiveFactory) kind() Kind { return primitiveKindSingleton }

var primitiveKindSingleton Kind = &primitiveKind{}

func (*primitiveKind) Name() string { return "primitive" }

func (*primitiveKind) DeriveID(details any) (string, error) {
	d := details.(PrimitiveDetails)
	if d.Name == "" {
		return "", fmt.Errorf("primitive type requires a non-empty name")
	}

	return d.Name, nil
}

// AnalyzeEquality: primitives are equal iff they are the same identifier.
func (*primitiveKind) AnalyzeEquality(_ *Engine, a, b *Type) (bool, *Problem) {
	if a.id == b.id {
		return true, nil
	}

	return false, newProblem(ProblemTypeEquality,
		"distinct primitive types are never equal", a.id, b.id)
}

// AnalyzeSubtype: primitives have no implicit subtype relations of their
// own; only explicit SubTypeEdges (or Top/Bottom) make one a subtype of
// another.
func (*primitiveKind) AnalyzeSubtype(_ *Engine, sub, sup *Type) (bool, *Problem) {
	if sub.id == sup.id {
		return true, nil
	}

	return false, newProblem(ProblemSubType,
		"no intrinsic subtype relation between distinct primitive types", sub.id, sup.id)
}

func (*primitiveKind) Print(t *Type) string { return t.id }

// Create builds (or returns the existing) primitive type named details.Name,
// then registers any inference rules the host attaches directly to it.
func (primitiveFactory) Create(e *Engine, details PrimitiveDetails) (*Type, *Problem) {
	id, err := primitiveKindSingleton.DeriveID(details)
	if err != nil {
		return nil, newProblem(ProblemInitializationFail, err.Error())
	}

	if existing, ok := e.graph.GetType(id); ok {
		if existing.kind.Name() != "primitive" {
			panic(errorsDuplicateIdentifier(id, existing.kind.Name(), "primitive"))
		}

		return existing, nil
	}

	t := newType(primitiveKindSingleton, id)

	init := newInitializer(e, t, nil, nil)

	canonical, problem := init.Run()
	if problem != nil {
		return nil, problem
	}

	for _, rule := range details.InferenceRules {
		e.inference.Add(rule, canonical)
	}

	return canonical, nil
}
