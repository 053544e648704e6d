package types

// AreTypesEqual reports whether a and b denote the same type. Reflexive and
// symmetric; memoized per ordered identifier pair, so (a, b) and (b, a) are
// cached as separate entries.
func (e *Engine) AreTypesEqual(a, b *Type) (bool, *Problem) {
	if a.id == b.id {
		return true, nil
	}

	k := key(a, b)
	if cached, ok := e.equalityCache[k]; ok && e.equalityGeneration[k] == gen(a, b) {
		return cached, nil
	}

	ok, problem := e.analyzeEquality(a, b)

	e.equalityCache[k] = ok
	e.equalityGeneration[k] = gen(a, b)

	return ok, problem
}

func (e *Engine) analyzeEquality(a, b *Type) (bool, *Problem) {
	if a.kind.Name() != b.kind.Name() {
		return false, newProblem(ProblemKindConflict, "cannot compare types of different kinds for equality", a.id, b.id)
	}

	return a.kind.AnalyzeEquality(e, a, b)
}

func (e *Engine) invalidateEqualityCache(t *Type) {
	for k := range e.equalityCache {
		if k.a == t.id || k.b == t.id {
			delete(e.equalityCache, k)
			delete(e.equalityGeneration, k)
		}
	}
}
