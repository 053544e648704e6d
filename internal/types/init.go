package types

// Initializer drives a single Type through invalid → identifiable →
// completed. Primitives.Create builds one per new primitive; the other kind
// factories add and complete their nodes directly without an Initializer.
type Initializer struct {
	engine        *Engine
	t             *Type
	preconditions []string // identifiers of types that must exist first
	finalize      func(*Type) *Problem
}

// newInitializer wraps t, requiring every identifier in preconditions to
// resolve to a graph node before t can become identifiable.
func newInitializer(e *Engine, t *Type, preconditions []string, finalize func(*Type) *Problem) *Initializer {
	return &Initializer{
		engine:        e,
		t:             t,
		preconditions: preconditions,
		finalize:      finalize,
	}
}

// AddListener registers a listener for this type's remaining lifecycle
// transitions.
func (init *Initializer) AddListener(l Listener) {
	init.t.addListener(l)
}

// Run attempts to drive t forward as far as its preconditions currently
// allow, publishing the canonical (deduplicated) node to the graph once t
// becomes identifiable. If a node with the same identifier already exists,
// the freshly built t is discarded and the existing node is returned
// instead — callers must use the returned *Type from this point on.
func (init *Initializer) Run() (*Type, *Problem) {
	for _, id := range init.preconditions {
		if _, ok := init.engine.graph.GetType(id); !ok {
			// Not yet satisfiable; t stays invalid until re-run (e.g. by
			// the precondition type itself becoming identifiable and the
			// host re-invoking the initializer).
			return init.t, nil
		}
	}

	init.t.markIdentifiable()

	canonical := init.engine.graph.AddNode(init.t)
	if canonical != init.t {
		// A node with this identifier already existed (e.g. two branches
		// of a recursive class definition resolving to the same name):
		// discard the new node, let callers observe the canonical one.
		return canonical, nil
	}

	if init.finalize != nil {
		if problem := init.finalize(canonical); problem != nil {
			canonical.markInvalid()
			return canonical, problem
		}
	}

	canonical.markCompleted()

	return canonical, nil
}

// Invalidate cascades an invalid state to t and to every type that depends
// on it through a SubTypeEdge or ConversionEdge, per the "any → invalid:
// precondition removed" transition.
func (init *Initializer) Invalidate() {
	invalidateCascade(init.engine, init.t, make(map[string]bool))
}

func invalidateCascade(e *Engine, t *Type, seen map[string]bool) {
	if seen[t.id] {
		return
	}

	seen[t.id] = true
	t.markInvalid()

	for _, label := range []EdgeLabel{EdgeSubType, EdgeConversion, EdgeClassSuperclass, EdgeFixedParamSlot, EdgeFunctionParam} {
		for _, edge := range e.graph.Incoming(t, label) {
			invalidateCascade(e, edge.From, seen)
		}
	}
}
