package types

import "testing"

// TestAreTypesEqualIsSymmetric covers property 2: equality is symmetric.
func TestAreTypesEqualIsSymmetric(t *testing.T) {
	e := newTestEngine()

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})
	s, _ := Primitives.Create(e, PrimitiveDetails{Name: "string"})

	forward, forwardProblem := e.AreTypesEqual(i, s)
	backward, backwardProblem := e.AreTypesEqual(s, i)

	if forward != backward {
		t.Fatalf("expected symmetric equality, got i==s:%v s==i:%v", forward, backward)
	}

	if (forwardProblem == nil) != (backwardProblem == nil) {
		t.Fatalf("expected symmetric problem presence, got %v and %v", forwardProblem, backwardProblem)
	}

	cls, _ := Classes.Create(e, ClassDetails{Name: "Box", Identity: ClassIdentityNominal})

	forward, _ = e.AreTypesEqual(cls, cls)
	backward, _ = e.AreTypesEqual(cls, cls)

	if !forward || !backward {
		t.Fatal("expected equal types to remain equal symmetrically")
	}
}

// TestBottomRemainsSubtypeOfTypesAddedAfterIt covers property 3: Bottom is a
// subtype of types created strictly after Bottom was first materialized.
func TestBottomRemainsSubtypeOfTypesAddedAfterIt(t *testing.T) {
	e := newTestEngine()

	bottom := Bottom.Get(e)

	laterType, _ := Primitives.Create(e, PrimitiveDetails{Name: "addedLater"})

	ok, problem := e.IsSubType(bottom, laterType)
	if !ok || problem != nil {
		t.Fatalf("expected Bottom <: addedLater, got ok=%v problem=%v", ok, problem)
	}
}

// TestTopRemainsSupertypeOfTypesAddedAfterIt covers property 4: Top is a
// supertype of types created strictly after Top was first materialized.
func TestTopRemainsSupertypeOfTypesAddedAfterIt(t *testing.T) {
	e := newTestEngine()

	top := Top.Get(e)

	laterType, _ := Primitives.Create(e, PrimitiveDetails{Name: "addedLater"})

	ok, problem := e.IsSubType(laterType, top)
	if !ok || problem != nil {
		t.Fatalf("expected addedLater <: Top, got ok=%v problem=%v", ok, problem)
	}
}

// TestMarkAsSubTypeCanFormCycleWhenCycleCheckDisabled covers property 6's
// other half: checkForCycles: false allows a cycle-forming edge through.
func TestMarkAsSubTypeCanFormCycleWhenCycleCheckDisabled(t *testing.T) {
	e := newTestEngine()

	a, _ := Primitives.Create(e, PrimitiveDetails{Name: "A"})
	b, _ := Primitives.Create(e, PrimitiveDetails{Name: "B"})

	if problem := e.MarkAsSubType(a, b, true); problem != nil {
		t.Fatalf("mark A <: B: %v", problem)
	}

	if problem := e.MarkAsSubType(b, a, false); problem != nil {
		t.Fatalf("expected B <: A to be permitted with cycle checking disabled, got %v", problem)
	}

	if len(e.graph.Outgoing(b, EdgeSubType)) != 1 {
		t.Fatalf("expected exactly one SubTypeEdge from B once the cycle check is bypassed")
	}
}

// TestInferenceRuleOrderEarlierRegisteredWins covers property 7: when two
// rules both match the same node, the earlier-registered rule's answer wins.
func TestInferenceRuleOrderEarlierRegisteredWins(t *testing.T) {
	e := newTestEngine()

	first, _ := Primitives.Create(e, PrimitiveDetails{Name: "first"})
	second, _ := Primitives.Create(e, PrimitiveDetails{Name: "second"})

	matchAnything := func(result *Type) InferenceRule {
		return func(_ *Engine, node Node, _ *Type) InferenceOutcome {
			if node.NodeKind() != "ambiguous" {
				return RuleNotApplicable()
			}

			return RuleFinal(result)
		}
	}

	e.AddInferenceRule(matchAnything(first), nil)
	e.AddInferenceRule(matchAnything(second), nil)

	result, problem := e.InferType(ambiguousNode{}, nil)
	if problem != nil {
		t.Fatalf("infer ambiguous node: %v", problem)
	}

	if result != first {
		t.Fatalf("expected the earlier-registered rule to win, got %s", result.String())
	}
}

type ambiguousNode struct{}

func (ambiguousNode) NodeKind() string { return "ambiguous" }
