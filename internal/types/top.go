package types

// topKind is the singleton Kind for the universal supertype.
type topKind struct{}

func (*topKind) Name() string { return "top" }

func (*topKind) DeriveID(any) (string, error) { return "$Top", nil }

func (*topKind) AnalyzeEquality(_ *Engine, a, b *Type) (bool, *Problem) {
	return a.id == b.id, nil // there is only ever one Top per engine
}

// AnalyzeSubtype: Top is a supertype of every type; it is a subtype only of
// itself.
func (*topKind) AnalyzeSubtype(_ *Engine, sub, sup *Type) (bool, *Problem) {
	if sup.kind.Name() == "top" {
		return true, nil
	}

	if sub.kind.Name() == "top" {
		return false, newProblem(ProblemSubType, "Top is not a subtype of a non-Top type", sub.id, sup.id)
	}

	return false, newProblem(ProblemKindConflict, "AnalyzeSubtype(top) called for a non-Top pair", sub.id, sup.id)
}

func (*topKind) Print(*Type) string { return "Top" }

var topKindSingleton Kind = &topKind{}

// Top is the Top factory facet.
type topFactory struct{}

var Top topFactory

// newTopType constructs the engine's Top singleton and subscribes it to the
// graph so every subsequently added type gets a materialized SubTypeEdge to
// Top, letting the Assignability BFS walk it as an ordinary edge.
func newTopType(e *Engine) *Type {
	t := newType(topKindSingleton, "$Top")
	canonical := e.graph.AddNode(t)
	canonical.markIdentifiable()
	canonical.markCompleted()

	e.graph.AddListener(topListener{e: e, top: canonical})

	return canonical
}

type topListener struct {
	e   *Engine
	top *Type
}

func (l topListener) OnAddedType(t *Type) {
	if t == l.top {
		return
	}

	l.e.graph.AddEdge(&Edge{Label: EdgeSubType, From: t, To: l.top})
}

func (topListener) OnRemovedType(*Type) {}

// Get returns the engine's Top singleton.
func (topFactory) Get(e *Engine) *Type { return e.top }
