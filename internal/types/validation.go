package types

import (
	"github.com/google/uuid"
)

// ValidationRule inspects node and returns the problems it finds, if any.
// Rules never panic on an ordinary check failure; they report a message.
type ValidationRule func(e *Engine, node Node) []*Problem

// Collector holds an ordered list of validation rules and runs all of them
// against a node, concatenating their messages.
type Collector struct {
	rules []ValidationRule
}

func newCollector() *Collector { return &Collector{} }

// Add registers rule, to run on every future Validate call.
func (c *Collector) Add(rule ValidationRule) { c.rules = append(c.rules, rule) }

// Validate runs every registered rule against node, in registration order.
func (e *Engine) Validate(node Node) []*Problem {
	var problems []*Problem

	for _, rule := range e.validation.rules {
		problems = append(problems, rule(e, node)...)
	}

	return problems
}

// AddValidationRule registers rule with the engine's Collector.
func (e *Engine) AddValidationRule(rule ValidationRule) { e.validation.Add(rule) }

// EnsureNodeIsAssignable is the constraint library's stock rule for the most
// common validation shape: the actual node's inferred type must be
// assignable to the expected node's inferred type. messageFn builds the
// problem's message from the two resolved types when the check fails.
func EnsureNodeIsAssignable(actualNode, expectedNode Node, messageFn func(actual, expected *Type) string) ValidationRule {
	return func(e *Engine, _ Node) []*Problem {
		actual, problem := e.InferType(actualNode, nil)
		if problem != nil {
			return []*Problem{problem}
		}

		expected, problem := e.InferType(expectedNode, nil)
		if problem != nil {
			return []*Problem{problem}
		}

		if e.IsAssignable(actual, expected) {
			return nil
		}

		p := newProblem(ProblemAssignability, messageFn(actual, expected), actual.id, expected.id)
		p.CorrelationID = uuid.NewString()

		return []*Problem{p}
	}
}
