package types

import "testing"

func TestFunctionsCreateDedupesIdenticalSignature(t *testing.T) {
	e := newTestEngine()

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})
	s, _ := Primitives.Create(e, PrimitiveDetails{Name: "string"})

	first, problem := Functions.Create(e, FunctionDetails{
		Name:   "describe",
		Inputs: []Parameter{{Name: "x", Type: i}},
		Output: Parameter{Name: "result", Type: s},
	})
	if problem != nil {
		t.Fatalf("create describe: %v", problem)
	}

	second, problem := Functions.Create(e, FunctionDetails{
		Name:   "describe",
		Inputs: []Parameter{{Name: "x", Type: i}},
		Output: Parameter{Name: "result", Type: s},
	})
	if problem != nil {
		t.Fatalf("re-create describe: %v", problem)
	}

	if first != second {
		t.Fatal("expected two creations of the identical signature to dedupe to one canonical type")
	}
}

func TestFunctionEqualityComparesParameterAndOutputTypes(t *testing.T) {
	e := newTestEngine()

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})
	d, _ := Primitives.Create(e, PrimitiveDetails{Name: "double"})
	s, _ := Primitives.Create(e, PrimitiveDetails{Name: "string"})

	f1, _ := Functions.Create(e, FunctionDetails{
		Name:   "f1",
		Inputs: []Parameter{{Name: "x", Type: i}},
		Output: Parameter{Name: "result", Type: s},
	})

	f2, _ := Functions.Create(e, FunctionDetails{
		Name:   "f2",
		Inputs: []Parameter{{Name: "x", Type: i}},
		Output: Parameter{Name: "result", Type: s},
	})

	ok, problem := e.AreTypesEqual(f1, f2)
	if !ok || problem != nil {
		t.Fatalf("expected functions with identical parameter/output types to be equal despite different names, got ok=%v problem=%v", ok, problem)
	}

	f3, _ := Functions.Create(e, FunctionDetails{
		Name:   "f3",
		Inputs: []Parameter{{Name: "x", Type: d}},
		Output: Parameter{Name: "result", Type: s},
	})

	ok, problem = e.AreTypesEqual(f1, f3)
	if ok || problem == nil {
		t.Fatalf("expected functions with differing parameter types to be unequal, got ok=%v problem=%v", ok, problem)
	}
}

func TestFunctionsAreNotRelatedBySubtypingUnlessIdentical(t *testing.T) {
	e := newTestEngine()

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})
	s, _ := Primitives.Create(e, PrimitiveDetails{Name: "string"})

	f1, _ := Functions.Create(e, FunctionDetails{
		Name:   "f1",
		Inputs: []Parameter{{Name: "x", Type: i}},
		Output: Parameter{Name: "result", Type: s},
	})

	f2, _ := Functions.Create(e, FunctionDetails{
		Name:   "f2",
		Inputs: []Parameter{{Name: "x", Type: s}},
		Output: Parameter{Name: "result", Type: i},
	})

	ok, problem := e.IsSubType(f1, f2)
	if ok || problem == nil {
		t.Fatalf("expected unrelated function signatures not to be subtypes, got ok=%v problem=%v", ok, problem)
	}

	ok, problem = e.IsSubType(f1, f1)
	if !ok || problem != nil {
		t.Fatalf("expected a function type to be a subtype of itself, got ok=%v problem=%v", ok, problem)
	}
}

func TestOperatorsCreateBinaryRegistersOverloadCandidate(t *testing.T) {
	e := newTestEngine()

	i, _ := Primitives.Create(e, PrimitiveDetails{Name: "integer"})

	_, problem := Operators.CreateBinary(e, "+", i, i, i, nil)
	if problem != nil {
		t.Fatalf("create +(int,int): %v", problem)
	}

	resolution := e.ResolveOverload("+", []*Type{i, i})
	if resolution.Problem != nil {
		t.Fatalf("resolve +(int,int): %v", resolution.Problem)
	}

	if resolution.Best == nil {
		t.Fatal("expected the binary operator to be resolvable as an overload candidate")
	}
}
