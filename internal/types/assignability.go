package types

// AssignabilityResult is the outcome of an assignability query: either a
// path of edges from `from` to `to` drawn from {identity, subtype,
// implicit conversion}, or a Problem describing the closest partial
// matches.
type AssignabilityResult struct {
	Assignable bool
	Path       []*Edge
	Problem    *Problem
}

// GetAssignabilityResult finds a shortest path from `from` to `to` over
// identity, SubTypeEdges, and non-EXPLICIT ConversionEdges. Among
// equal-length paths it prefers subtype steps over conversion steps,
// explored left to right in edge registration order. Memoized on the
// ordered pair.
func (e *Engine) GetAssignabilityResult(from, to *Type) *AssignabilityResult {
	k := key(from, to)
	if cached, ok := e.assignabilityCache[k]; ok && e.assignabilityGeneration[k] == gen(from, to) {
		return cached
	}

	result := e.searchAssignabilityPath(from, to)

	e.assignabilityCache[k] = result
	e.assignabilityGeneration[k] = gen(from, to)

	return result
}

// IsAssignable is a convenience wrapper discarding the path.
func (e *Engine) IsAssignable(from, to *Type) bool {
	return e.GetAssignabilityResult(from, to).Assignable
}

type assignabilityFrontierEntry struct {
	t    *Type
	path []*Edge
}

func (e *Engine) searchAssignabilityPath(from, to *Type) *AssignabilityResult {
	if from.id == to.id {
		return &AssignabilityResult{Assignable: true, Path: nil}
	}

	visited := map[string]bool{from.id: true}
	frontier := []assignabilityFrontierEntry{{t: from, path: nil}}
	var frontierTypes []*Type // for the "nearest frontier" problem report

	for step := 0; step < e.maxPathLength() && len(frontier) > 0; step++ {
		var next []assignabilityFrontierEntry

		for _, entry := range frontier {
			frontierTypes = append(frontierTypes, entry.t)

			for _, edge := range e.graph.Outgoing(entry.t, EdgeSubType) {
				if visited[edge.To.id] {
					continue
				}

				path := append(append([]*Edge(nil), entry.path...), edge)

				if edge.To.id == to.id {
					return &AssignabilityResult{Assignable: true, Path: path}
				}

				visited[edge.To.id] = true
				next = append(next, assignabilityFrontierEntry{t: edge.To, path: path})
			}

			for _, edge := range e.graph.Outgoing(entry.t, EdgeConversion) {
				if mode, _ := edge.Payload.(ConversionMode); mode != ConversionImplicitExplicit {
					continue
				}

				if visited[edge.To.id] {
					continue
				}

				path := append(append([]*Edge(nil), entry.path...), edge)

				if edge.To.id == to.id {
					return &AssignabilityResult{Assignable: true, Path: path}
				}

				visited[edge.To.id] = true
				next = append(next, assignabilityFrontierEntry{t: edge.To, path: path})
			}
		}

		frontier = next
	}

	nested := make([]*Problem, 0, len(frontierTypes))
	for _, t := range frontierTypes {
		nested = append(nested, newProblem(ProblemAssignability, "unreachable from this frontier type", t.id, to.id))
	}

	problem := newProblem(ProblemAssignability, "no assignability path found", from.id, to.id).withNested(nested...)

	return &AssignabilityResult{Assignable: false, Problem: problem}
}

// pathCost sums one per edge, regardless of whether the edge is a subtype
// or implicit-conversion step; identity paths (nil) cost 0.
func pathCost(path []*Edge) int { return len(path) }
