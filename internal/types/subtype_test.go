package types

import "testing"

func TestIsSubTypeReflexive(t *testing.T) {
	e := newTestEngine()

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})

	ok, problem := e.IsSubType(i, i)
	if !ok || problem != nil {
		t.Fatalf("expected reflexive subtype, got ok=%v problem=%v", ok, problem)
	}
}

func TestIsSubTypeTransitiveAcrossExplicitEdges(t *testing.T) {
	e := newTestEngine()

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})
	d, _ := Primitives.Create(e, PrimitiveDetails{Name: "double"})
	s, _ := Primitives.Create(e, PrimitiveDetails{Name: "scalar"})

	if problem := e.MarkAsSubType(i, d, true); problem != nil {
		t.Fatalf("mark integer <: double: %v", problem)
	}

	if problem := e.MarkAsSubType(d, s, true); problem != nil {
		t.Fatalf("mark double <: scalar: %v", problem)
	}

	ok, problem := e.IsSubType(i, s)
	if !ok || problem != nil {
		t.Fatalf("expected integer <: scalar transitively, got ok=%v problem=%v", ok, problem)
	}
}

func TestMarkAsSubTypeRefusesCycle(t *testing.T) {
	e := newTestEngine()

	a, _ := Primitives.Create(e, PrimitiveDetails{Name: "A"})
	b, _ := Primitives.Create(e, PrimitiveDetails{Name: "B"})

	if problem := e.MarkAsSubType(a, b, true); problem != nil {
		t.Fatalf("mark A <: B: %v", problem)
	}

	problem := e.MarkAsSubType(b, a, true)
	if problem == nil {
		t.Fatal("expected marking B <: A to be refused as a cycle")
	}

	if len(e.graph.Outgoing(b, EdgeSubType)) != 0 {
		t.Fatalf("expected no SubTypeEdge from B after refused cycle, found %d", len(e.graph.Outgoing(b, EdgeSubType)))
	}
}

func TestTopIsSupertypeOfEverything(t *testing.T) {
	e := newTestEngine()

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})
	top := Top.Get(e)

	ok, problem := e.IsSubType(i, top)
	if !ok || problem != nil {
		t.Fatalf("expected integer <: Top, got ok=%v problem=%v", ok, problem)
	}

	ok, _ = e.IsSubType(top, i)
	if ok {
		t.Fatal("expected Top not to be a subtype of integer")
	}
}

func TestBottomIsSubtypeOfEverything(t *testing.T) {
	e := newTestEngine()

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})
	bottom := Bottom.Get(e)

	ok, problem := e.IsSubType(bottom, i)
	if !ok || problem != nil {
		t.Fatalf("expected Bottom <: integer, got ok=%v problem=%v", ok, problem)
	}

	ok, _ = e.IsSubType(i, bottom)
	if ok {
		t.Fatal("expected integer not to be a subtype of Bottom")
	}
}

func TestClassRecursionEquality(t *testing.T) {
	e := newTestEngine()

	node := Classes.Declare(e, "Node", ClassFieldsInvariant)

	if problem := Classes.Finish(e, node, []ClassField{{Name: "next", Type: node}}, nil); problem != nil {
		t.Fatalf("finish Node class: %v", problem)
	}

	ok, problem := e.AreTypesEqual(node, node)
	if !ok || problem != nil {
		t.Fatalf("expected Node equal to itself, got ok=%v problem=%v", ok, problem)
	}

	payload := node.Payload().(*classPayload)
	if payload.fields[0].Type != node {
		t.Fatalf("expected Node's own field to reference the same canonical node")
	}
}
