package types

// OverloadResolution is the outcome of resolving a call's candidate set down
// to a single best-matching function type.
type OverloadResolution struct {
	Best    *Type
	Problem *Problem
}

// ResolveOverload finds the best-matching function type registered under
// name with the given argument types. Applicability is per-argument
// assignability; cost is the assignability path length per argument;
// dominance picks the unique candidate whose per-argument costs are never
// worse and somewhere strictly better than every other applicable
// candidate. No unique dominator is reported as AmbiguousOverload.
func (e *Engine) ResolveOverload(name string, argTypes []*Type) *OverloadResolution {
	candidates := e.overloadGroups[name]

	type scored struct {
		fn    *Type
		costs []int
	}

	var applicable []scored

	for _, fn := range candidates {
		payload, ok := fn.payload.(*functionPayload)
		if !ok || len(payload.inputs) != len(argTypes) {
			continue
		}

		costs := make([]int, len(argTypes))
		ok = true

		for i, arg := range argTypes {
			result := e.GetAssignabilityResult(arg, payload.inputs[i].Type)
			if !result.Assignable {
				ok = false
				break
			}

			costs[i] = pathCost(result.Path)
		}

		if ok {
			applicable = append(applicable, scored{fn: fn, costs: costs})
		}
	}

	if len(applicable) == 0 {
		return &OverloadResolution{Problem: newProblem(ProblemAssignability,
			"no overload of "+name+" is applicable to the given argument types")}
	}

	if len(applicable) == 1 {
		return &OverloadResolution{Best: applicable[0].fn}
	}

	var dominators []scored

	for _, candidate := range applicable {
		dominatesAll := true

		for _, other := range applicable {
			if other.fn == candidate.fn {
				continue
			}

			if !dominates(candidate.costs, other.costs) {
				dominatesAll = false
				break
			}
		}

		if dominatesAll {
			dominators = append(dominators, candidate)
		}
	}

	if len(dominators) != 1 {
		tied := make([]string, 0, len(applicable))
		for _, c := range applicable {
			tied = append(tied, c.fn.id)
		}

		return &OverloadResolution{Problem: newProblem(ProblemAmbiguousOverload,
			"no unique best overload for "+name, tied...)}
	}

	return &OverloadResolution{Best: dominators[0].fn}
}

// dominates reports whether a's per-position costs are never worse, and
// somewhere strictly better, than b's.
func dominates(a, b []int) bool {
	strictlyBetter := false

	for i := range a {
		if a[i] > b[i] {
			return false
		}

		if a[i] < b[i] {
			strictlyBetter = true
		}
	}

	return strictlyBetter
}

// CallInferenceRule builds the two-step inference rule shared by function
// and operator calls: extractOperands pattern-matches node into its operand
// subnodes (returning ok == false if node does not match this call shape at
// all), the engine infers each operand's type, and the resulting types are
// resolved against name's overload group.
func CallInferenceRule(name string, extractOperands func(node Node) (operands []Node, ok bool)) InferenceRule {
	return func(e *Engine, node Node, _ *Type) InferenceOutcome {
		operands, ok := extractOperands(node)
		if !ok {
			return RuleNotApplicable()
		}

		children := make([]ChildRequest, len(operands))
		for i, n := range operands {
			children[i] = ChildRequest{Node: n}
		}

		return RuleChildren(children, func(childTypes []*Type) (*Type, *Problem) {
			resolution := e.ResolveOverload(name, childTypes)
			if resolution.Problem != nil {
				return nil, resolution.Problem
			}

			payload := resolution.Best.payload.(*functionPayload)

			return payload.output.Type, nil
		})
	}
}
