// Presentation layer for type-system Problem values: human-readable
// rendering with no notion of locale or source position, both of which
// belong to the embedding host.
package diagnostic

import (
	"fmt"
	"sort"
	"strings"

	"github.com/latticefold/tysys/internal/types"
)

// Level is the severity a host chooses to present a Problem at. The engine
// itself makes no severity distinction between Problem kinds; Level is
// purely a presentation concern layered on top.
type Level int

const (
	LevelError Level = iota
	LevelWarning
	LevelInfo
	LevelHint
)

func (l Level) String() string {
	switch l {
	case LevelError:
		return "error"
	case LevelWarning:
		return "warning"
	case LevelInfo:
		return "info"
	case LevelHint:
		return "hint"
	default:
		return "unknown"
	}
}

// Diagnostic pairs an engine Problem with presentation metadata the engine
// itself has no opinion about: severity, and an opaque location string the
// host derives from its own source-position tracking.
type Diagnostic struct {
	Level    Level
	Problem  *types.Problem
	Location string
	Tags     []string
}

// Builder assembles a Diagnostic with a fluent API.
type Builder struct {
	d *Diagnostic
}

// New starts building a Diagnostic around problem, defaulting to LevelError.
func New(problem *types.Problem) *Builder {
	return &Builder{d: &Diagnostic{Level: LevelError, Problem: problem}}
}

func (b *Builder) Error() *Builder   { b.d.Level = LevelError; return b }
func (b *Builder) Warning() *Builder { b.d.Level = LevelWarning; return b }
func (b *Builder) Info() *Builder    { b.d.Level = LevelInfo; return b }
func (b *Builder) Hint() *Builder    { b.d.Level = LevelHint; return b }

// At attaches a host-owned location description, e.g. "line 12, column 4"
// or a file path — whatever the host's own source tracking produces.
func (b *Builder) At(location string) *Builder {
	b.d.Location = location
	return b
}

func (b *Builder) Tag(tag string) *Builder {
	b.d.Tags = append(b.d.Tags, tag)
	return b
}

func (b *Builder) Build() *Diagnostic { return b.d }

// Renderer collects Diagnostics and renders them as plain text, sorted by
// severity then by problem kind.
type Renderer struct {
	config      RendererConfig
	diagnostics []*Diagnostic
}

// RendererConfig controls rendering behavior.
type RendererConfig struct {
	WarningsAsErrors bool
	ShowNested       bool
	MaxDiagnostics   int
}

func NewRenderer(config RendererConfig) *Renderer {
	return &Renderer{config: config}
}

// Add records d, promoting it to LevelError first if WarningsAsErrors is set.
func (r *Renderer) Add(d *Diagnostic) {
	if r.config.WarningsAsErrors && d.Level == LevelWarning {
		d.Level = LevelError
	}

	r.diagnostics = append(r.diagnostics, d)
}

// AddProblems wraps each problem as a LevelError Diagnostic with no
// location, the common case for relation-service failures surfaced without
// host-side position tracking.
func (r *Renderer) AddProblems(problems []*types.Problem) {
	for _, p := range problems {
		r.Add(New(p).Build())
	}
}

// HasErrors reports whether any collected diagnostic is at LevelError.
func (r *Renderer) HasErrors() bool {
	for _, d := range r.diagnostics {
		if d.Level == LevelError {
			return true
		}
	}

	return false
}

// Diagnostics returns every collected diagnostic, sorted by severity and
// then by problem kind, truncated to MaxDiagnostics if set.
func (r *Renderer) Diagnostics() []*Diagnostic {
	sorted := append([]*Diagnostic(nil), r.diagnostics...)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Level != sorted[j].Level {
			return sorted[i].Level < sorted[j].Level
		}

		return sorted[i].Problem.Kind < sorted[j].Problem.Kind
	})

	if r.config.MaxDiagnostics > 0 && len(sorted) > r.config.MaxDiagnostics {
		sorted = sorted[:r.config.MaxDiagnostics]
	}

	return sorted
}

// Render formats every collected diagnostic as one line per diagnostic
// (plus indented nested problems when ShowNested is set), in severity order.
func (r *Renderer) Render() string {
	var b strings.Builder

	for _, d := range r.Diagnostics() {
		b.WriteString(RenderOne(d, r.config.ShowNested))
		b.WriteByte('\n')
	}

	return b.String()
}

// RenderOne formats a single diagnostic.
func RenderOne(d *Diagnostic, showNested bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s: %s", d.Level, d.Problem.Message)

	if d.Location != "" {
		fmt.Fprintf(&b, " (%s)", d.Location)
	}

	if len(d.Problem.InvolvedTypes) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(d.Problem.InvolvedTypes, ", "))
	}

	if d.Problem.CorrelationID != "" {
		fmt.Fprintf(&b, " {%s}", d.Problem.CorrelationID)
	}

	if showNested {
		renderNested(&b, d.Problem.Nested, 1)
	}

	return b.String()
}

func renderNested(b *strings.Builder, nested []*types.Problem, depth int) {
	for _, n := range nested {
		fmt.Fprintf(b, "\n%s- %s: %s", strings.Repeat("  ", depth), n.Kind, n.Message)
		renderNested(b, n.Nested, depth+1)
	}
}
