package types

// IsSubType reports whether sub is a subtype of sup: reflexive, and
// transitive across explicit SubTypeEdges plus each kind's intrinsic
// subtyping rule. Memoized on the ordered pair.
func (e *Engine) IsSubType(sub, sup *Type) (bool, *Problem) {
	if sub.id == sup.id {
		return true, nil
	}

	k := key(sub, sup)
	if cached, ok := e.subtypeCache[k]; ok && e.subtypeGeneration[k] == gen(sub, sup) {
		return cached, nil
	}

	ok, problem := e.analyzeSubtype(sub, sup)

	e.subtypeCache[k] = ok
	e.subtypeGeneration[k] = gen(sub, sup)

	return ok, problem
}

func (e *Engine) analyzeSubtype(sub, sup *Type) (bool, *Problem) {
	if e.subtypeEdgeReaches(sub, sup) {
		return true, nil
	}

	if sub.kind.Name() == sup.kind.Name() {
		if ok, _ := sub.kind.AnalyzeSubtype(e, sub, sup); ok {
			return true, nil
		}
	}

	if sub.kind.Name() == "top" || sup.kind.Name() == "top" {
		if ok, _ := topKindSingleton.AnalyzeSubtype(e, sub, sup); ok {
			return true, nil
		}
	}

	if sub.kind.Name() == "bottom" || sup.kind.Name() == "bottom" {
		if ok, _ := bottomKindSingleton.AnalyzeSubtype(e, sub, sup); ok {
			return true, nil
		}
	}

	return false, newProblem(ProblemSubType, "no subtype relation found", sub.id, sup.id)
}

// subtypeEdgeReaches is a plain BFS over outgoing SubTypeEdges, bounded by
// maxPathLength.
func (e *Engine) subtypeEdgeReaches(from, to *Type) bool {
	if from.id == to.id {
		return true
	}

	visited := map[string]bool{from.id: true}
	frontier := []*Type{from}

	for step := 0; step < e.maxPathLength() && len(frontier) > 0; step++ {
		var next []*Type

		for _, t := range frontier {
			for _, edge := range e.graph.Outgoing(t, EdgeSubType) {
				if edge.To.id == to.id {
					return true
				}

				if !visited[edge.To.id] {
					visited[edge.To.id] = true
					next = append(next, edge.To)
				}
			}
		}

		frontier = next
	}

	return false
}

// MarkAsSubType declares sub a direct subtype of sup by adding a SubTypeEdge.
// When checkForCycles is true (as every caller in this package passes; the
// Top and Bottom edges bypass MarkAsSubType entirely), the edge is refused
// if sup can already reach sub through existing SubTypeEdges, which would
// close a cycle.
func (e *Engine) MarkAsSubType(sub, sup *Type, checkForCycles bool) *Problem {
	if checkForCycles && e.subtypeEdgeReaches(sup, sub) {
		return newProblem(ProblemSubType, "marking this subtype edge would close a cycle", sub.id, sup.id)
	}

	e.graph.AddEdge(&Edge{Label: EdgeSubType, From: sub, To: sup})
	e.invalidateSubtypeCache(nil)

	return nil
}

// invalidateSubtypeCache drops every memoized subtype and assignability
// result, not just entries keyed on t. A cached path can pass through any
// number of interior types as hops; the pair key only stamps the two
// endpoints' generations, so a mutation at an interior hop (e.g. a new edge
// between two types already bridged by other cached paths) would otherwise
// leave stale results keyed on endpoints whose own generation never changed.
// Whole-cache invalidation is the baseline this trades correctness for
// precision against.
func (e *Engine) invalidateSubtypeCache(*Type) {
	e.subtypeCache = make(map[pairKey]bool)
	e.subtypeGeneration = make(map[pairKey]uint64)
	e.assignabilityCache = make(map[pairKey]*AssignabilityResult)
	e.assignabilityGeneration = make(map[pairKey]uint64)
}
