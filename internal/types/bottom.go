package types

// bottomKind is the singleton Kind for the universal subtype.
type bottomKind struct{}

func (*bottomKind) Name() string { return "bottom" }

func (*bottomKind) DeriveID(any) (string, error) { return "$Bottom", nil }

func (*bottomKind) AnalyzeEquality(_ *Engine, a, b *Type) (bool, *Problem) {
	return a.id == b.id, nil
}

// AnalyzeSubtype: Bottom is a subtype of every type; it is a supertype only
// of itself.
func (*bottomKind) AnalyzeSubtype(_ *Engine, sub, sup *Type) (bool, *Problem) {
	if sub.kind.Name() == "bottom" {
		return true, nil
	}

	if sup.kind.Name() == "bottom" {
		return false, newProblem(ProblemSubType, "only Bottom is a subtype of Bottom", sub.id, sup.id)
	}

	return false, newProblem(ProblemKindConflict, "AnalyzeSubtype(bottom) called for a non-Bottom pair", sub.id, sup.id)
}

func (*bottomKind) Print(*Type) string { return "Bottom" }

var bottomKindSingleton Kind = &bottomKind{}

// Bottom is the Bottom factory facet.
type bottomFactory struct{}

var Bottom bottomFactory

// newBottomType constructs the engine's Bottom singleton. On construction it
// marks itself as subtype of every existing type and subscribes to the
// graph so every type added afterward also receives a SubTypeEdge from
// Bottom, bypassing the usual cycle check.
func newBottomType(e *Engine) *Type {
	t := newType(bottomKindSingleton, "$Bottom")
	canonical := e.graph.AddNode(t)
	canonical.markIdentifiable()
	canonical.markCompleted()

	for _, existing := range e.graph.AllTypes() {
		if existing == canonical {
			continue
		}

		e.graph.AddEdge(&Edge{Label: EdgeSubType, From: canonical, To: existing})
	}

	e.graph.AddListener(bottomListener{e: e, bottom: canonical})

	return canonical
}

type bottomListener struct {
	e      *Engine
	bottom *Type
}

func (l bottomListener) OnAddedType(t *Type) {
	if t == l.bottom {
		return
	}

	l.e.graph.AddEdge(&Edge{Label: EdgeSubType, From: l.bottom, To: t})
}

func (bottomListener) OnRemovedType(*Type) {}

// Get returns the engine's Bottom singleton.
func (bottomFactory) Get(e *Engine) *Type { return e.bottom }
