package types

import "testing"

func TestInitializerDeferredUntilPreconditionsExist(t *testing.T) {
	e := newTestEngine()

	pending := newType(classKindSingleton, "Pending")
	pending.payload = &classPayload{name: "Pending", identity: ClassIdentityNominal}

	init := newInitializer(e, pending, []string{"MissingPrecondition"}, nil)

	result, problem := init.Run()
	if problem != nil {
		t.Fatalf("expected no problem while preconditions are unmet, got %v", problem)
	}

	if result.State() != StateInvalid {
		t.Fatalf("expected the type to stay invalid until its precondition exists, got %s", result.State())
	}

	Primitives.Create(e, PrimitiveDetails{Name: "MissingPrecondition"})

	result, problem = init.Run()
	if problem != nil {
		t.Fatalf("expected no problem once the precondition exists, got %v", problem)
	}

	if result.State() != StateCompleted {
		t.Fatalf("expected the type to complete once its precondition is satisfied, got %s", result.State())
	}
}

func TestInitializerRunDedupesAgainstExistingCanonical(t *testing.T) {
	e := newTestEngine()

	first, problem := Primitives.Create(e, PrimitiveDetails{Name: "Shared"})
	if problem != nil {
		t.Fatalf("create Shared: %v", problem)
	}

	duplicate := newType(primitiveKindSingleton, "Shared")

	init := newInitializer(e, duplicate, nil, nil)

	canonical, problem := init.Run()
	if problem != nil {
		t.Fatalf("run duplicate initializer: %v", problem)
	}

	if canonical != first {
		t.Fatal("expected the duplicate initializer to resolve to the already-canonical node")
	}
}

func TestInitializerInvalidateCascadesAcrossSubtypeEdges(t *testing.T) {
	e := newTestEngine()

	a, _ := Primitives.Create(e, PrimitiveDetails{Name: "A"})
	b, _ := Primitives.Create(e, PrimitiveDetails{Name: "B"})

	if problem := e.MarkAsSubType(a, b, true); problem != nil {
		t.Fatalf("mark A <: B: %v", problem)
	}

	init := newInitializer(e, b, nil, nil)
	init.t.state = StateCompleted // simulate an already-completed type being retracted
	init.Invalidate()

	if b.State() != StateInvalid {
		t.Fatalf("expected B to become invalid, got %s", b.State())
	}

	if a.State() != StateInvalid {
		t.Fatalf("expected A to cascade to invalid since it depends on B via a SubTypeEdge, got %s", a.State())
	}
}
