package types

// ChildRequest asks the engine to infer the type of a subnode before a
// two-step inference rule concludes.
type ChildRequest struct {
	Node Node
}

type outcomeShape int

const (
	outcomeNotApplicable outcomeShape = iota
	outcomeFinal
	outcomeChildren
	outcomeContextual
)

// InferenceOutcome is what an InferenceRule returns: exactly one of "not
// applicable", a final type, a two-step child request with a continuation,
// or a contextual match/no-match boolean.
type InferenceOutcome struct {
	shape        outcomeShape
	finalType    *Type
	children     []ChildRequest
	continuation func(childTypes []*Type) (*Type, *Problem)
	matched      bool
}

// RuleNotApplicable means this rule does not handle the node at all; the
// composite dispatcher moves on to the next rule.
func RuleNotApplicable() InferenceOutcome { return InferenceOutcome{shape: outcomeNotApplicable} }

// RuleFinal is a one-step rule's concluded answer.
func RuleFinal(t *Type) InferenceOutcome { return InferenceOutcome{shape: outcomeFinal, finalType: t} }

// RuleChildren starts a two-step rule: the engine infers every request's
// node, then calls continuation with their types in the same order. This is
// the shape function and operator call rules use: children are the operand
// subnodes; continuation finds the matching overload group and selects the
// best signature (see ResolveOverload), returning its output type.
func RuleChildren(children []ChildRequest, continuation func(childTypes []*Type) (*Type, *Problem)) InferenceOutcome {
	return InferenceOutcome{shape: outcomeChildren, children: children, continuation: continuation}
}

// RuleContextual reports a final match using the ambient expected type
// already known to the caller (matched == true), or that this rule does not
// apply (matched == false).
func RuleContextual(matched bool) InferenceOutcome { return InferenceOutcome{shape: outcomeContextual, matched: matched} }

// InferenceRule inspects node and optionally uses contextType, the expected
// type supplied by whatever is asking for node's type (nil if none).
type InferenceRule func(e *Engine, node Node, contextType *Type) InferenceOutcome

type inferenceEntry struct {
	rule    InferenceRule
	boundTo *Type // nil means unbound: always considered
}

// InferenceRegistry holds every registered inference rule in registration
// order, plus the type bindings used to evict rules when their type is
// removed from the graph.
type InferenceRegistry struct {
	entries []*inferenceEntry
}

func newInferenceRegistry() *InferenceRegistry {
	return &InferenceRegistry{}
}

// Add registers rule. When boundTo is non-nil, the rule is automatically
// removed if boundTo is later removed from the graph.
func (r *InferenceRegistry) Add(rule InferenceRule, boundTo *Type) {
	r.entries = append(r.entries, &inferenceEntry{rule: rule, boundTo: boundTo})
}

// removeRulesBoundTo drops every entry bound to t, keeping unbound entries
// and entries bound to other types. The registry has no operation that
// removes an individual rule.
func (r *InferenceRegistry) removeRulesBoundTo(t *Type) {
	kept := r.entries[:0]

	for _, e := range r.entries {
		if e.boundTo != t {
			kept = append(kept, e)
		}
	}

	r.entries = kept
}

// InferType runs every registered rule in registration order against node,
// with contextType as the ambient expected type (nil if none). The first
// rule to return a final answer wins.
func (e *Engine) InferType(node Node, contextType *Type) (*Type, *Problem) {
	for _, entry := range e.inference.entries {
		outcome := entry.rule(e, node, contextType)

		switch outcome.shape {
		case outcomeNotApplicable:
			continue

		case outcomeFinal:
			return outcome.finalType, nil

		case outcomeContextual:
			if !outcome.matched {
				continue
			}

			if contextType == nil {
				return nil, newProblem(ProblemInference, "contextual rule matched but no expected type was supplied", node.NodeKind())
			}

			return contextType, nil

		case outcomeChildren:
			childTypes := make([]*Type, len(outcome.children))

			for i, req := range outcome.children {
				childType, problem := e.InferType(req.Node, nil)
				if problem != nil {
					return nil, newProblem(ProblemInference, "failed to infer child node type", node.NodeKind()).withNested(problem)
				}

				childTypes[i] = childType
			}

			return outcome.continuation(childTypes)
		}
	}

	return nil, newProblem(ProblemRuleNotApplicable, "no registered inference rule applies to this node")
}

// AddInferenceRule registers rule, optionally bound to a type for automatic
// eviction.
func (e *Engine) AddInferenceRule(rule InferenceRule, boundTo *Type) {
	e.inference.Add(rule, boundTo)
}
