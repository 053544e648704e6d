package types

import "testing"

// literalNode is a minimal test-only Node carrying a fixed type, used to
// drive InferType without depending on any concrete host grammar.
type literalNode struct {
	t *Type
}

func (literalNode) NodeKind() string { return "literal" }

// callNode is a minimal test-only Node representing a call to a named
// overload group with the given operand nodes.
type callNode struct {
	name     string
	operands []Node
}

func (callNode) NodeKind() string { return "call" }

func literalRule(e *Engine, node Node, _ *Type) InferenceOutcome {
	lit, ok := node.(literalNode)
	if !ok {
		return RuleNotApplicable()
	}

	return RuleFinal(lit.t)
}

func extractCallOperands(name string) func(Node) ([]Node, bool) {
	return func(node Node) ([]Node, bool) {
		call, ok := node.(callNode)
		if !ok || call.name != name {
			return nil, false
		}

		return call.operands, true
	}
}

// buildPlusOverloadSet declares S2's binary + operator over (i,i), (d,d),
// (s,s), (b,b) atop the S1 conversion-chain lattice.
func buildPlusOverloadSet(t *testing.T, e *Engine) (b, i, d, s *Type) {
	t.Helper()

	b, i, d, s = buildConversionChainLattice(t, e)

	e.AddInferenceRule(literalRule, nil)

	callRule := CallInferenceRule("+", extractCallOperands("+"))

	for _, pair := range []struct{ operand *Type }{{i}, {d}, {s}, {b}} {
		_, problem := Operators.CreateBinary(e, "+", pair.operand, pair.operand, pair.operand, callRule)
		if problem != nil {
			t.Fatalf("declare +(%s,%s): %v", pair.operand.ID(), pair.operand.ID(), problem)
		}
	}

	return b, i, d, s
}

func inferPlus(t *testing.T, e *Engine, left, right *Type) (*Type, *Problem) {
	t.Helper()

	node := callNode{name: "+", operands: []Node{literalNode{t: left}, literalNode{t: right}}}

	return e.InferType(node, nil)
}

func TestInferPlusBestMatchAcrossConversionChain(t *testing.T) {
	e := newTestEngine()
	b, i, d, s := buildPlusOverloadSet(t, e)

	result, problem := inferPlus(t, e, i, s)
	if problem != nil {
		t.Fatalf("+(integer,string): %v", problem)
	}
	if result != s {
		t.Fatalf("expected +(integer,string) to infer string, got %s", result.String())
	}

	result, problem = inferPlus(t, e, d, i)
	if problem != nil {
		t.Fatalf("+(double,integer): %v", problem)
	}
	if result != d {
		t.Fatalf("expected +(double,integer) to infer double, got %s", result.String())
	}

	result, problem = inferPlus(t, e, i, b)
	if problem != nil {
		t.Fatalf("+(integer,boolean): %v", problem)
	}
	if result != i {
		t.Fatalf("expected +(integer,boolean) to infer integer, got %s", result.String())
	}
}

func TestInferTypeNoRuleAppliesIsRuleNotApplicableProblem(t *testing.T) {
	e := newTestEngine()

	_, problem := e.InferType(callNode{name: "nonexistent"}, nil)
	if problem == nil || problem.Kind != ProblemRuleNotApplicable {
		t.Fatalf("expected ProblemRuleNotApplicable, got %v", problem)
	}
}

func TestInferTypeLiteralFinalShape(t *testing.T) {
	e := newTestEngine()

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})
	e.AddInferenceRule(literalRule, nil)

	result, problem := e.InferType(literalNode{t: i}, nil)
	if problem != nil {
		t.Fatalf("infer literal: %v", problem)
	}

	if result != i {
		t.Fatalf("expected literal to infer its own type, got %s", result.String())
	}
}

func TestInferTypeContextualRuleRequiresContextType(t *testing.T) {
	e := newTestEngine()

	contextual := func(_ *Engine, node Node, _ *Type) InferenceOutcome {
		if node.NodeKind() != "needs-context" {
			return RuleNotApplicable()
		}

		return RuleContextual(true)
	}

	e.AddInferenceRule(contextual, nil)

	_, problem := e.InferType(needsContextNode{}, nil)
	if problem == nil || problem.Kind != ProblemInference {
		t.Fatalf("expected ProblemInference when no context type is supplied, got %v", problem)
	}

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})

	result, problem := e.InferType(needsContextNode{}, i)
	if problem != nil {
		t.Fatalf("infer with context: %v", problem)
	}

	if result != i {
		t.Fatalf("expected contextual rule to resolve to the supplied context type, got %s", result.String())
	}
}

type needsContextNode struct{}

func (needsContextNode) NodeKind() string { return "needs-context" }
