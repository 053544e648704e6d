package types

import (
	"fmt"
	"sort"
	"strings"
)

// ClassIdentityPolicy selects how a class type's identifier (and therefore
// its equality) is computed.
type ClassIdentityPolicy int

const (
	ClassIdentityNominal ClassIdentityPolicy = iota
	ClassIdentityStructural
)

// ClassVariancePolicy selects how structural width/depth subtyping compares
// field types.
type ClassVariancePolicy int

const (
	ClassFieldsInvariant ClassVariancePolicy = iota
	ClassFieldsCovariant
)

// ClassField is a single named, typed field of a class.
type ClassField struct {
	Name string
	Type *Type
}

// ClassDetails are the creation details for a class type.
type ClassDetails struct {
	Name         string
	Fields       []ClassField
	SuperClasses []*Type
	Identity     ClassIdentityPolicy
	Variance     ClassVariancePolicy
}

type classPayload struct {
	name         string
	fields       []ClassField
	superClasses []*Type
	identity     ClassIdentityPolicy
	variance     ClassVariancePolicy
}

type classKind struct{}

var classKindSingleton Kind = &classKind{}

func (*classKind) Name() string { return "class" }

// DeriveID: qualified name alone under nominal identity; qualified name plus
// a canonical (name, type-id) field encoding, sorted by field name, under
// structural identity.
func (*classKind) DeriveID(details any) (string, error) {
	d := details.(ClassDetails)
	if d.Name == "" {
		return "", fmt.Errorf("class type requires a non-empty name")
	}

	if d.Identity == ClassIdentityNominal {
		return d.Name, nil
	}

	return structuralClassID(d.Name, d.Fields), nil
}

func structuralClassID(name string, fields []ClassField) string {
	sorted := append([]ClassField(nil), fields...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	parts := make([]string, 0, len(sorted))
	for _, f := range sorted {
		parts = append(parts, fmt.Sprintf("%s:%s", f.Name, f.Type.ID()))
	}

	return fmt.Sprintf("%s{%s}", name, strings.Join(parts, ","))
}

func (*classKind) AnalyzeEquality(_ *Engine, a, b *Type) (bool, *Problem) {
	pa := a.payload.(*classPayload)
	pb := b.payload.(*classPayload)

	if pa.identity == ClassIdentityNominal || pb.identity == ClassIdentityNominal {
		if a.id == b.id {
			return true, nil
		}

		return false, newProblem(ProblemTypeEquality, "distinct nominal classes are never equal", a.id, b.id)
	}

	// Structural: compare fields directly, independent of the identifier.
	if len(pa.fields) != len(pb.fields) {
		return false, newProblem(ProblemTypeEquality, "structural classes have different field counts", a.id, b.id)
	}

	byName := make(map[string]*Type, len(pb.fields))
	for _, f := range pb.fields {
		byName[f.Name] = f.Type
	}

	for _, f := range pa.fields {
		other, ok := byName[f.Name]
		if !ok || other.ID() != f.Type.ID() {
			return false, newProblem(ProblemTypeEquality,
				fmt.Sprintf("field %q differs between structural classes", f.Name), a.id, b.id)
		}
	}

	return true, nil
}

// AnalyzeSubtype handles the structural width/depth case only: nominal
// superclass relationships are materialized as SubTypeEdges (through
// MarkAsSubType) when the class is created or finished, so Subtype's own
// transitive-closure walk
// already accounts for them without consulting this analyzer.
func (*classKind) AnalyzeSubtype(e *Engine, sub, sup *Type) (bool, *Problem) {
	subP := sub.payload.(*classPayload)
	supP := sup.payload.(*classPayload)

	if subP.identity != ClassIdentityStructural && supP.identity != ClassIdentityStructural {
		return false, newProblem(ProblemSubType, "nominal classes are related only via declared superclasses", sub.id, sup.id)
	}

	subFields := make(map[string]*Type, len(subP.fields))
	for _, f := range subP.fields {
		subFields[f.Name] = f.Type
	}

	var nested []*Problem

	for _, want := range supP.fields {
		have, ok := subFields[want.Name]
		if !ok {
			nested = append(nested, newProblem(ProblemSubType,
				fmt.Sprintf("missing field %q required by supertype", want.Name), sub.id, sup.id))

			continue
		}

		if have.ID() == want.Type.ID() {
			continue
		}

		if subP.variance == ClassFieldsCovariant {
			if ok, _ := e.IsSubType(have, want.Type); ok {
				continue
			}
		}

		nested = append(nested, newProblem(ProblemSubType,
			fmt.Sprintf("field %q has incompatible type", want.Name), have.ID(), want.Type.ID()))
	}

	if len(nested) > 0 {
		return false, newProblem(ProblemSubType, "structural width/depth subtyping failed", sub.id, sup.id).withNested(nested...)
	}

	return true, nil
}

func (*classKind) Print(t *Type) string {
	p := t.payload.(*classPayload)
	if p.identity == ClassIdentityNominal {
		return p.name
	}

	fields := make([]string, 0, len(p.fields))
	for _, f := range p.fields {
		fields = append(fields, fmt.Sprintf("%s: %s", f.Name, f.Type.String()))
	}

	return fmt.Sprintf("%s { %s }", p.name, strings.Join(fields, ", "))
}

// Classes is the class-kind factory facet.
var Classes classFactory

type classFactory struct{}

// Create builds (or returns the existing) class type described by details
// in one shot — the common case where every field type already exists.
// Self-referential classes use Declare/Finish instead.
func (classFactory) Create(e *Engine, details ClassDetails) (*Type, *Problem) {
	id, err := classKindSingleton.DeriveID(details)
	if err != nil {
		return nil, newProblem(ProblemInitializationFail, err.Error())
	}

	if existing, ok := e.graph.GetType(id); ok {
		if existing.kind.Name() != "class" {
			panic(errorsDuplicateIdentifier(id, existing.kind.Name(), "class"))
		}

		return existing, nil
	}

	t := newType(classKindSingleton, id)
	t.payload = &classPayload{
		name:         details.Name,
		fields:       details.Fields,
		superClasses: details.SuperClasses,
		identity:     details.Identity,
		variance:     details.Variance,
	}

	canonical := e.graph.AddNode(t)
	canonical.markIdentifiable()

	for _, sc := range details.SuperClasses {
		if problem := e.MarkAsSubType(canonical, sc, true); problem != nil {
			canonical.markInvalid()
			return nil, problem
		}
	}

	canonical.markCompleted()

	return canonical, nil
}

// Declare begins a nominally-identified class: the node is added to the
// graph immediately (invalid → identifiable, with no fields yet) so its
// identifier can be published and referenced — including by the class's own
// field types — before Finish supplies the field list. This is the pattern
// for recursive classes like `class Node { next: Node }`.
func (classFactory) Declare(e *Engine, name string, variance ClassVariancePolicy) *Type {
	id := name

	if existing, ok := e.graph.GetType(id); ok {
		return existing
	}

	t := newType(classKindSingleton, id)
	t.payload = &classPayload{name: name, identity: ClassIdentityNominal, variance: variance}

	canonical := e.graph.AddNode(t)
	canonical.markIdentifiable()

	return canonical
}

// Finish completes a class previously returned by Declare: it attaches
// fields and superclasses and transitions the type to completed.
func (classFactory) Finish(e *Engine, t *Type, fields []ClassField, superClasses []*Type) *Problem {
	p, ok := t.payload.(*classPayload)
	if !ok || t.state != StateIdentifiable {
		panic(errorsKindMisuse("Finish", "class"))
	}

	p.fields = fields
	p.superClasses = superClasses
	t.generation++

	for _, sc := range superClasses {
		if problem := e.MarkAsSubType(t, sc, true); problem != nil {
			t.markInvalid()
			return problem
		}
	}

	t.markCompleted()

	return nil
}
