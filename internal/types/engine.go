package types

import (
	"log"
)

// EngineConfig controls cross-cutting engine behavior.
type EngineConfig struct {
	// MaxPathLength bounds the assignability/overload BFS frontier. Zero
	// means "use the graph's current node count".
	MaxPathLength int

	// Trace is an optional logger kept with the config. No engine operation
	// writes to it.
	Trace *log.Logger
}

// Engine is the single entry point embedding hosts construct: one Engine
// instance is one independent type universe, with its own graph, caches,
// overload groups, inference rules, and validation rules.
type Engine struct {
	graph  *Graph
	config EngineConfig

	equalityCache      map[pairKey]bool
	equalityGeneration map[pairKey]uint64

	subtypeCache      map[pairKey]bool
	subtypeGeneration map[pairKey]uint64

	assignabilityCache      map[pairKey]*AssignabilityResult
	assignabilityGeneration map[pairKey]uint64

	overloadGroups map[string][]*Type // function name -> candidate function types

	inference  *InferenceRegistry
	validation *Collector

	top    *Type
	bottom *Type
}

type pairKey struct{ a, b string }

// NewEngine constructs an empty engine: an empty graph, a Top and Bottom
// singleton already registered, and empty relation/inference/validation
// registries.
func NewEngine(config EngineConfig) *Engine {
	if config.MaxPathLength <= 0 {
		config.MaxPathLength = 0 // resolved dynamically against graph size
	}

	e := &Engine{
		graph:                   NewGraph(),
		config:                  config,
		equalityCache:           make(map[pairKey]bool),
		equalityGeneration:      make(map[pairKey]uint64),
		subtypeCache:            make(map[pairKey]bool),
		subtypeGeneration:       make(map[pairKey]uint64),
		assignabilityCache:      make(map[pairKey]*AssignabilityResult),
		assignabilityGeneration: make(map[pairKey]uint64),
		overloadGroups:          make(map[string][]*Type),
		inference:               newInferenceRegistry(),
		validation:              newCollector(),
	}

	e.top = newTopType(e)
	e.bottom = newBottomType(e)

	e.graph.AddListener(cacheInvalidationListener{e: e})

	return e
}

// cacheInvalidationListener purges cached relation results once a node is
// gone: its generation counter stops being a reliable invalidation signal,
// and any cached path that used the removed node as an interior hop needs to
// go too, so subtype/assignability invalidation is whole-cache (see
// invalidateSubtypeCache).
type cacheInvalidationListener struct{ e *Engine }

func (l cacheInvalidationListener) OnAddedType(*Type) {}

func (l cacheInvalidationListener) OnRemovedType(t *Type) {
	l.e.invalidateEqualityCache(t)
	l.e.invalidateSubtypeCache(t)

	for name, candidates := range l.e.overloadGroups {
		l.e.overloadGroups[name] = removeTypeFromSlice(candidates, t)
	}

	l.e.inference.removeRulesBoundTo(t)
}

func removeTypeFromSlice(types []*Type, target *Type) []*Type {
	result := types[:0]

	for _, t := range types {
		if t != target {
			result = append(result, t)
		}
	}

	return result
}

// registerOverloadCandidate adds t to name's overload group, used by
// Functions.Create to make every function type discoverable by
// Overload Resolution.
func (e *Engine) registerOverloadCandidate(name string, t *Type) {
	for _, existing := range e.overloadGroups[name] {
		if existing == t {
			return
		}
	}

	e.overloadGroups[name] = append(e.overloadGroups[name], t)
}

// Graph exposes the read-only infrastructure facet.
func (e *Engine) Graph() *Graph { return e.graph }

func (e *Engine) trace(format string, args ...any) {
	if e.config.Trace != nil {
		e.config.Trace.Printf(format, args...)
	}
}

func (e *Engine) maxPathLength() int {
	if e.config.MaxPathLength > 0 {
		return e.config.MaxPathLength
	}

	n := len(e.graph.AllTypes())
	if n == 0 {
		return 1
	}

	return n
}

func key(a, b *Type) pairKey { return pairKey{a.id, b.id} }

func gen(a, b *Type) uint64 { return a.generation*31 + b.generation }
