package types

import "testing"

func TestValidateRunsRulesInRegistrationOrder(t *testing.T) {
	e := newTestEngine()

	var order []string

	e.AddValidationRule(func(_ *Engine, _ Node) []*Problem {
		order = append(order, "first")
		return nil
	})

	e.AddValidationRule(func(_ *Engine, _ Node) []*Problem {
		order = append(order, "second")
		return nil
	})

	e.Validate(literalNode{})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Fatalf("expected rules to run in registration order, got %v", order)
	}
}

func TestValidateConcatenatesProblemsFromEveryRule(t *testing.T) {
	e := newTestEngine()

	e.AddValidationRule(func(_ *Engine, _ Node) []*Problem {
		return []*Problem{newProblem(ProblemSubType, "first problem")}
	})

	e.AddValidationRule(func(_ *Engine, _ Node) []*Problem {
		return []*Problem{newProblem(ProblemSubType, "second problem A"), newProblem(ProblemSubType, "second problem B")}
	})

	problems := e.Validate(literalNode{})
	if len(problems) != 3 {
		t.Fatalf("expected 3 concatenated problems, got %d", len(problems))
	}
}

func TestEnsureNodeIsAssignableStampsCorrelationIDOnFailure(t *testing.T) {
	e := newTestEngine()

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})
	s, _ := Primitives.Create(e, PrimitiveDetails{Name: "string"})
	e.AddInferenceRule(literalRule, nil)

	rule := EnsureNodeIsAssignable(literalNode{t: s}, literalNode{t: i}, func(actual, expected *Type) string {
		return actual.String() + " is not assignable to " + expected.String()
	})

	problems := rule(e, literalNode{})
	if len(problems) != 1 {
		t.Fatalf("expected exactly one problem, got %d", len(problems))
	}

	if problems[0].CorrelationID == "" {
		t.Fatal("expected a non-empty correlation id on the assignability failure")
	}

	if problems[0].Kind != ProblemAssignability {
		t.Fatalf("expected ProblemAssignability, got %s", problems[0].Kind)
	}
}

func TestEnsureNodeIsAssignablePassesWithoutProblems(t *testing.T) {
	e := newTestEngine()

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})
	e.AddInferenceRule(literalRule, nil)

	rule := EnsureNodeIsAssignable(literalNode{t: i}, literalNode{t: i}, func(actual, expected *Type) string {
		return "unreachable"
	})

	problems := rule(e, literalNode{})
	if len(problems) != 0 {
		t.Fatalf("expected no problems for a reflexively assignable pair, got %v", problems)
	}
}
