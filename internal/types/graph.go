package types

// EdgeLabel discriminates the kind of relationship an Edge records.
type EdgeLabel string

const (
	EdgeSubType         EdgeLabel = "SubTypeEdge"
	EdgeConversion      EdgeLabel = "ConversionEdge"
	EdgeFunctionParam   EdgeLabel = "FunctionParamEdge"
	EdgeFixedParamSlot  EdgeLabel = "FixedParamEdge"
	EdgeClassSuperclass EdgeLabel = "ClassSuperclassEdge"
)

// ConversionMode is the payload of a ConversionEdge.
type ConversionMode string

const (
	ConversionNone            ConversionMode = "NONE"
	ConversionImplicitExplicit ConversionMode = "IMPLICIT_EXPLICIT"
	ConversionExplicit         ConversionMode = "EXPLICIT"
)

// Edge is a directed, typed, first-class relationship between two types, so
// that relation results (e.g. an assignability path) can hand back the
// exact edges that proved them.
type Edge struct {
	Label   EdgeLabel
	From    *Type
	To      *Type
	Payload any
}

// GraphListener observes node add/remove events on the Graph, in
// registration order.
type GraphListener interface {
	OnAddedType(t *Type)
	OnRemovedType(t *Type)
}

// Graph is the engine's type graph: deduplicated nodes plus labeled
// adjacency in both directions, with synchronous, registration-ordered
// listener dispatch.
type Graph struct {
	types     map[string]*Type
	order     []string
	outgoing  map[string]map[EdgeLabel][]*Edge
	incoming  map[string]map[EdgeLabel][]*Edge
	listeners []GraphListener

	eventQueue []func()
	draining   bool
}

// NewGraph creates an empty type graph.
func NewGraph() *Graph {
	return &Graph{
		types:    make(map[string]*Type),
		outgoing: make(map[string]map[EdgeLabel][]*Edge),
		incoming: make(map[string]map[EdgeLabel][]*Edge),
	}
}

// publish enqueues an event for FIFO delivery. Re-entrant mutation from
// within a listener enqueues further events instead of recursing, so
// delivery order matches occurrence order even when a listener itself
// triggers new graph mutations.
func (g *Graph) publish(event func()) {
	g.eventQueue = append(g.eventQueue, event)

	if g.draining {
		return
	}

	g.draining = true
	for len(g.eventQueue) > 0 {
		next := g.eventQueue[0]
		g.eventQueue = g.eventQueue[1:]
		next()
	}
	g.draining = false
}

// AddNode adds t to the graph. If a type with the same identifier already
// exists, that existing node is returned unchanged and no add event is
// emitted.
func (g *Graph) AddNode(t *Type) *Type {
	if existing, ok := g.types[t.id]; ok {
		return existing
	}

	g.types[t.id] = t
	g.order = append(g.order, t.id)
	g.outgoing[t.id] = make(map[EdgeLabel][]*Edge)
	g.incoming[t.id] = make(map[EdgeLabel][]*Edge)

	for _, l := range g.listeners {
		listener := l
		g.publish(func() { listener.OnAddedType(t) })
	}

	return t
}

// RemoveNode detaches every incident edge first and then removes the type
// itself, notifying listeners of the type removal in registration order.
// Detached edges are not reported to listeners.
func (g *Graph) RemoveNode(t *Type) {
	if _, ok := g.types[t.id]; !ok {
		return
	}

	for _, edges := range g.outgoing[t.id] {
		for _, e := range append([]*Edge(nil), edges...) {
			g.RemoveEdge(e)
		}
	}

	for _, edges := range g.incoming[t.id] {
		for _, e := range append([]*Edge(nil), edges...) {
			g.RemoveEdge(e)
		}
	}

	delete(g.types, t.id)
	delete(g.outgoing, t.id)
	delete(g.incoming, t.id)

	for i, id := range g.order {
		if id == t.id {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	t.removed = true

	for _, l := range g.listeners {
		listener := l
		g.publish(func() { listener.OnRemovedType(t) })
	}
}

// GetType looks up a type by identifier.
func (g *Graph) GetType(id string) (*Type, bool) {
	t, ok := g.types[id]
	return t, ok
}

// AddEdge records a new directed edge. Adding an edge bumps both endpoints'
// generation counters so relation caches keyed on them invalidate.
func (g *Graph) AddEdge(e *Edge) {
	g.outgoing[e.From.id][e.Label] = append(g.outgoing[e.From.id][e.Label], e)
	g.incoming[e.To.id][e.Label] = append(g.incoming[e.To.id][e.Label], e)
	e.From.generation++
	e.To.generation++
}

// RemoveEdge deletes a previously added edge, if present.
func (g *Graph) RemoveEdge(e *Edge) {
	g.outgoing[e.From.id][e.Label] = removeEdge(g.outgoing[e.From.id][e.Label], e)
	g.incoming[e.To.id][e.Label] = removeEdge(g.incoming[e.To.id][e.Label], e)
	e.From.generation++
	e.To.generation++
}

func removeEdge(edges []*Edge, target *Edge) []*Edge {
	result := edges[:0]

	for _, e := range edges {
		if e != target {
			result = append(result, e)
		}
	}

	return result
}

// Outgoing returns the edges of the given label leaving t, in insertion
// order.
func (g *Graph) Outgoing(t *Type, label EdgeLabel) []*Edge {
	return g.outgoing[t.id][label]
}

// Incoming returns the edges of the given label arriving at t, in insertion
// order.
func (g *Graph) Incoming(t *Type, label EdgeLabel) []*Edge {
	return g.incoming[t.id][label]
}

// AllTypes returns every live type, in the order it was added.
func (g *Graph) AllTypes() []*Type {
	result := make([]*Type, 0, len(g.order))
	for _, id := range g.order {
		result = append(result, g.types[id])
	}

	return result
}

// AddListener registers l; it will observe every subsequent add/remove in
// the order listeners were registered.
func (g *Graph) AddListener(l GraphListener) {
	g.listeners = append(g.listeners, l)
}

// RemoveListener unregisters l.
func (g *Graph) RemoveListener(l GraphListener) {
	for i, existing := range g.listeners {
		if existing == l {
			g.listeners = append(g.listeners[:i], g.listeners[i+1:]...)
			return
		}
	}
}
