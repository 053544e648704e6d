// Package types is the core of the type-system engine: the type graph, the
// Kind-polymorphic Type entity, and the relation/inference/overload services
// built on top of it. The package has no knowledge of any particular host
// grammar; a host embeds the engine by implementing Node and wiring kinds
// and inference rules for its own constructs.
package types

import (
	"fmt"

	stderrors "github.com/latticefold/tysys/internal/errors"
)

// Node is the opaque AST node type supplied by the embedding host. The
// engine never inspects a Node directly; it only ever hands nodes to
// host-registered inference and validation rules.
type Node interface {
	// NodeKind is a host-defined discriminator, used only to label
	// inference problems; the engine never switches on it.
	NodeKind() string
}

// State is the lifecycle state of a Type.
type State int

const (
	StateInvalid State = iota
	StateIdentifiable
	StateCompleted
)

func (s State) String() string {
	switch s {
	case StateInvalid:
		return "invalid"
	case StateIdentifiable:
		return "identifiable"
	case StateCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Kind is the small interface every type family implements: identifier
// derivation, equality/subtype analysis, and a printable signature. Concrete
// kinds (primitive, top, bottom, class, function, fixed-parameters) each own
// one file in this package.
type Kind interface {
	// Name is the kind's `$name`, e.g. "primitive", "class", "function".
	Name() string

	// DeriveID computes the globally unique identifier for a type from its
	// creation details. Called once, before the type is added to the graph.
	DeriveID(details any) (string, error)

	// AnalyzeEquality compares two types of this kind structurally. Callers
	// (Equality service) guarantee a.Kind() == b.Kind() == this kind.
	AnalyzeEquality(e *Engine, a, b *Type) (bool, *Problem)

	// AnalyzeSubtype reports whether sub is an intrinsic subtype of sup,
	// independent of any explicit SubTypeEdge. Callers guarantee
	// sub.Kind() == sup.Kind() == this kind, except for the Top/Bottom
	// singletons which are consulted regardless of the other side's kind.
	AnalyzeSubtype(e *Engine, sub, sup *Type) (bool, *Problem)

	// Print renders a type of this kind as a human-readable signature.
	Print(t *Type) string
}

// Type is a node in the type graph: an identity, a Kind, a lifecycle state,
// and a kind-specific payload. Types are created through a Kind's factory
// and deduplicated by identifier — creating an existing identifier returns
// the existing node.
type Type struct {
	kind       Kind
	payload    any
	id         string
	listeners  []Listener
	generation uint64
	state      State
	removed    bool
}

// Listener observes a single Type's lifecycle transitions.
type Listener struct {
	// WaitForIdentifiable, when true, makes OnIdentifiable fire immediately
	// at registration if the type is already identifiable or completed.
	// OnIdentifiable fires on a later transition to StateIdentifiable
	// whatever this flag says.
	WaitForIdentifiable bool
	OnIdentifiable      func(canonical *Type)
	OnCompleted         func(t *Type)
	OnInvalidated       func(t *Type)
}

func newType(kind Kind, id string) *Type {
	return &Type{
		kind:  kind,
		id:    id,
		state: StateInvalid,
	}
}

// ID returns the type's deduplication identifier.
func (t *Type) ID() string { return t.id }

// Kind returns the type's Kind descriptor.
func (t *Type) Kind() Kind { return t.kind }

// State returns the current lifecycle state.
func (t *Type) State() State { return t.state }

// Generation is bumped on every structural mutation prior to completion; it
// lets relation caches invalidate cheaply by comparing a stamped generation
// against the current one instead of clearing the whole cache.
func (t *Type) Generation() uint64 { return t.generation }

// Payload returns the kind-specific data attached to this type. Kind
// implementations type-assert it to their own concrete struct.
func (t *Type) Payload() any { return t.payload }

// SetPayload replaces the kind-specific payload and bumps the generation
// counter. It is exported and performs no lifecycle-state check.
func (t *Type) SetPayload(p any) {
	t.payload = p
	t.generation++
}

func (t *Type) String() string {
	if t == nil {
		return "<nil>"
	}

	return t.kind.Print(t)
}

// addListener registers l against this type and fires it immediately if its
// wait condition is already satisfied.
func (t *Type) addListener(l Listener) {
	t.listeners = append(t.listeners, l)

	if t.state >= StateIdentifiable && l.OnIdentifiable != nil && l.WaitForIdentifiable {
		l.OnIdentifiable(t)
	}
}

func (t *Type) markIdentifiable() {
	if t.state != StateInvalid {
		return
	}

	t.state = StateIdentifiable
	t.generation++

	for _, l := range t.listeners {
		if l.OnIdentifiable != nil {
			l.OnIdentifiable(t)
		}
	}
}

func (t *Type) markCompleted() {
	if t.state != StateIdentifiable {
		return
	}

	t.state = StateCompleted

	for _, l := range t.listeners {
		if l.OnCompleted != nil {
			l.OnCompleted(t)
		}
	}
}

func (t *Type) markInvalid() {
	t.state = StateInvalid
	t.generation++

	for _, l := range t.listeners {
		if l.OnInvalidated != nil {
			l.OnInvalidated(t)
		}
	}
}

// mustCompleted panics with a lifecycle-violation error when op is asked to
// operate on a type that never finished initializing. No function in this
// package calls it.
func mustCompleted(t *Type, op string) {
	if t.state != StateCompleted {
		panic(stderrors.LifecycleViolation(fmt.Sprintf("%s called on non-completed type %q (state=%s)", op, t.id, t.state)))
	}
}
