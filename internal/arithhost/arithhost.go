// Package arithhost is a tiny illustrative host grammar — arithmetic
// expressions over boolean/integer/double/string literals with the
// conversion/subtype lattice from the worked scenarios — wiring the
// type-system engine the way a real language frontend would.
package arithhost

import (
	"github.com/latticefold/tysys/internal/types"
)

// Node kinds in the illustrative grammar.
const (
	KindLiteral = "literal"
	KindBinary  = "binary"
)

// Literal is a leaf node carrying a concrete type directly, e.g. a parsed
// integer constant.
type Literal struct {
	ValueType *types.Type
}

func (Literal) NodeKind() string { return KindLiteral }

// Binary is `left OP right`, e.g. `x + y`.
type Binary struct {
	Op    string
	Left  types.Node
	Right types.Node
}

func (Binary) NodeKind() string { return KindBinary }

// Lattice holds the four primitive types and the edges connecting them,
// matching the worked scenario: `boolean <:conv integer <:sub double
// <:conv string`.
type Lattice struct {
	Boolean *types.Type
	Integer *types.Type
	Double  *types.Type
	String  *types.Type
}

// BuildLattice creates the four primitives and wires the scenario's edges.
func BuildLattice(e *types.Engine) (*Lattice, *types.Problem) {
	boolean, problem := types.Primitives.Create(e, types.PrimitiveDetails{Name: "boolean"})
	if problem != nil {
		return nil, problem
	}

	integer, problem := types.Primitives.Create(e, types.PrimitiveDetails{Name: "integer"})
	if problem != nil {
		return nil, problem
	}

	double, problem := types.Primitives.Create(e, types.PrimitiveDetails{Name: "double"})
	if problem != nil {
		return nil, problem
	}

	str, problem := types.Primitives.Create(e, types.PrimitiveDetails{Name: "string"})
	if problem != nil {
		return nil, problem
	}

	e.MarkAsConvertible(boolean, integer, types.ConversionImplicitExplicit)

	if problem := e.MarkAsSubType(integer, double, true); problem != nil {
		return nil, problem
	}

	e.MarkAsConvertible(double, str, types.ConversionImplicitExplicit)

	return &Lattice{Boolean: boolean, Integer: integer, Double: double, String: str}, nil
}

// DeclareArithmeticPlus registers the binary `+` overload group used by the
// worked scenarios: `(i,i)→i`, `(d,d)→d`, `(s,s)→s`, `(b,b)→b`.
func (l *Lattice) DeclareArithmeticPlus(e *types.Engine) *types.Problem {
	pairs := []struct {
		operand *types.Type
	}{{l.Integer}, {l.Double}, {l.String}, {l.Boolean}}

	for _, p := range pairs {
		if _, problem := types.Operators.CreateBinary(e, "+", p.operand, p.operand, p.operand, PlusCallRule); problem != nil {
			return problem
		}
	}

	return nil
}

// PlusCallRule is the two-step inference rule for `+`: its operands are a
// Binary node's Left and Right, resolved against the `+` overload group.
var PlusCallRule = types.CallInferenceRule("+", func(node types.Node) ([]types.Node, bool) {
	b, ok := node.(Binary)
	if !ok || b.Op != "+" {
		return nil, false
	}

	return []types.Node{b.Left, b.Right}, true
})

// LiteralRule is the trivial one-step rule for Literal nodes: their type is
// already known, no children to resolve.
var LiteralRule types.InferenceRule = func(_ *types.Engine, node types.Node, _ *types.Type) types.InferenceOutcome {
	lit, ok := node.(Literal)
	if !ok {
		return types.RuleNotApplicable()
	}

	return types.RuleFinal(lit.ValueType)
}

// RegisterBaseRules wires the grammar-wide rules (literal resolution; the
// per-operator call rules are bound per function type when the operator is
// declared).
func RegisterBaseRules(e *types.Engine) {
	e.AddInferenceRule(LiteralRule, nil)
}
