package types

import (
	"fmt"
	"strings"
)

// Parameter is one named, typed input or output of a function type.
type Parameter struct {
	Name string
	Type *Type
}

// FunctionDetails are the creation details for a function type.
type FunctionDetails struct {
	Name                    string
	Output                  Parameter
	Inputs                  []Parameter
	InferenceRuleForCalls   InferenceRule
	InferenceRuleForDecl    InferenceRule
	ValidationForCall       ValidationRule
}

type functionPayload struct {
	name   string
	output Parameter
	inputs []Parameter
}

type functionKind struct{}

var functionKindSingleton Kind = &functionKind{}

func (*functionKind) Name() string { return "function" }

// DeriveID: `name(p1:T1, p2:T2, …) → R`.
func (*functionKind) DeriveID(details any) (string, error) {
	d := details.(FunctionDetails)
	if d.Name == "" {
		return "", fmt.Errorf("function type requires a non-empty name")
	}

	return functionSignatureID(d.Name, d.Inputs, d.Output), nil
}

func functionSignatureID(name string, inputs []Parameter, output Parameter) string {
	parts := make([]string, 0, len(inputs))
	for _, p := range inputs {
		parts = append(parts, fmt.Sprintf("%s:%s", p.Name, p.Type.ID()))
	}

	return fmt.Sprintf("%s(%s)->%s", name, strings.Join(parts, ","), output.Type.ID())
}

// AnalyzeEquality: identical output plus identical input sequence, compared
// by component-type equality.
func (*functionKind) AnalyzeEquality(e *Engine, a, b *Type) (bool, *Problem) {
	pa := a.payload.(*functionPayload)
	pb := b.payload.(*functionPayload)

	if len(pa.inputs) != len(pb.inputs) {
		return false, newProblem(ProblemTypeEquality, "function arities differ", a.id, b.id)
	}

	for i := range pa.inputs {
		if ok, _ := e.AreTypesEqual(pa.inputs[i].Type, pb.inputs[i].Type); !ok {
			return false, newProblem(ProblemTypeEquality,
				fmt.Sprintf("parameter %d types differ", i), a.id, b.id)
		}
	}

	if ok, _ := e.AreTypesEqual(pa.output.Type, pb.output.Type); !ok {
		return false, newProblem(ProblemTypeEquality, "output types differ", a.id, b.id)
	}

	return true, nil
}

// AnalyzeSubtype: functions have no subtype relation; any pair of distinct
// function types is a kind conflict for subtyping purposes.
func (*functionKind) AnalyzeSubtype(_ *Engine, sub, sup *Type) (bool, *Problem) {
	if sub.id == sup.id {
		return true, nil
	}

	return false, newProblem(ProblemKindConflict, "functions are not related by subtyping unless identical", sub.id, sup.id)
}

func (*functionKind) Print(t *Type) string {
	p := t.payload.(*functionPayload)

	parts := make([]string, 0, len(p.inputs))
	for _, in := range p.inputs {
		parts = append(parts, fmt.Sprintf("%s: %s", in.Name, in.Type.String()))
	}

	return fmt.Sprintf("%s(%s) -> %s", p.name, strings.Join(parts, ", "), p.output.Type.String())
}

// Functions is the function-kind factory facet.
var Functions functionFactory

type functionFactory struct{}

// Create builds (or returns the existing) function type, registers it in
// its name's overload group, and wires any inference/validation rules the
// host supplied.
func (functionFactory) Create(e *Engine, details FunctionDetails) (*Type, *Problem) {
	id, err := functionKindSingleton.DeriveID(details)
	if err != nil {
		return nil, newProblem(ProblemInitializationFail, err.Error())
	}

	if existing, ok := e.graph.GetType(id); ok {
		if existing.kind.Name() != "function" {
			panic(errorsDuplicateIdentifier(id, existing.kind.Name(), "function"))
		}

		return existing, nil
	}

	t := newType(functionKindSingleton, id)
	t.payload = &functionPayload{name: details.Name, output: details.Output, inputs: details.Inputs}

	canonical := e.graph.AddNode(t)
	canonical.markIdentifiable()
	canonical.markCompleted()

	e.registerOverloadCandidate(details.Name, canonical)

	if details.InferenceRuleForCalls != nil {
		e.inference.Add(details.InferenceRuleForCalls, canonical)
	}

	if details.InferenceRuleForDecl != nil {
		e.inference.Add(details.InferenceRuleForDecl, canonical)
	}

	if details.ValidationForCall != nil {
		e.validation.Add(details.ValidationForCall)
	}

	return canonical, nil
}

// OperatorArity is the number of operands an operator factory builds a
// function signature for.
type OperatorArity int

const (
	OperatorUnary  OperatorArity = 1
	OperatorBinary OperatorArity = 2
	OperatorTernary OperatorArity = 3
)

// Operators is the operator-kind factory facet: operators are function
// types whose declaration rule is absent. Only a call rule ever applies.
var Operators operatorFactory

type operatorFactory struct{}

func (operatorFactory) createN(e *Engine, symbol string, operandNames []string, operandTypes []*Type, output Parameter, callRule InferenceRule) (*Type, *Problem) {
	inputs := make([]Parameter, len(operandTypes))
	for i, t := range operandTypes {
		inputs[i] = Parameter{Name: operandNames[i], Type: t}
	}

	return Functions.Create(e, FunctionDetails{
		Name:                  symbol,
		Output:                output,
		Inputs:                inputs,
		InferenceRuleForCalls: callRule,
	})
}

// CreateUnary builds a unary operator's function signature, e.g. `-x`.
func (f operatorFactory) CreateUnary(e *Engine, symbol string, operand *Type, output *Type, callRule InferenceRule) (*Type, *Problem) {
	return f.createN(e, symbol, []string{"operand"}, []*Type{operand}, Parameter{Name: "result", Type: output}, callRule)
}

// CreateBinary builds a binary operator's function signature, e.g. `a + b`.
func (f operatorFactory) CreateBinary(e *Engine, symbol string, left, right *Type, output *Type, callRule InferenceRule) (*Type, *Problem) {
	return f.createN(e, symbol, []string{"left", "right"}, []*Type{left, right}, Parameter{Name: "result", Type: output}, callRule)
}

// CreateTernary builds a ternary operator's function signature, e.g.
// `a ? b : c`.
func (f operatorFactory) CreateTernary(e *Engine, symbol string, a, b, c *Type, output *Type, callRule InferenceRule) (*Type, *Problem) {
	return f.createN(e, symbol, []string{"first", "second", "third"}, []*Type{a, b, c}, Parameter{Name: "result", Type: output}, callRule)
}

// CreateGeneric builds an operator signature of arbitrary arity, for hosts
// with variadic or unusually-shaped operators.
func (f operatorFactory) CreateGeneric(e *Engine, symbol string, operandNames []string, operandTypes []*Type, output *Type, callRule InferenceRule) (*Type, *Problem) {
	return f.createN(e, symbol, operandNames, operandTypes, Parameter{Name: "result", Type: output}, callRule)
}
