// Package diagnostics implements Tsonic's error-as-value reporting contract
// (spec.md §7): every phase appends to a Collector instead of returning a
// bare Go error for expected failures. Internal invariant violations are a
// different animal entirely (see ICE below) and are never diagnostics.
package diagnostics

import (
	"fmt"
	"sort"
)

// Phase identifies which stage of the pipeline raised a diagnostic.
type Phase string

const (
	PhaseResolver      Phase = "resolver"
	PhaseBindings      Phase = "bindings"
	PhaseCatalog       Phase = "catalog"
	PhaseValidator     Phase = "validator"
	PhaseConverter     Phase = "converter"
	PhaseSpecializer   Phase = "specializer"
	PhaseSoundnessGate Phase = "soundness"
)

// Severity classifies a diagnostic's impact on compilation.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Code is a stable diagnostic code of the form TSN####, grouped by family
// per spec.md §6: TSN1xxx resolution/imports, TSN2xxx unsupported features,
// TSN3xxx language restrictions, TSN5xxx numeric contract, TSN6xxx
// field/member shadowing, TSN71xx generic restrictions, TSN72xx structural
// restrictions, TSN74xx IR soundness.
type Code string

const (
	// TSN1xxx — resolution & imports
	CodeModuleNotFound     Code = "TSN1001"
	CodeImportCycle        Code = "TSN1002"
	CodeUnknownImportKind  Code = "TSN1003"
	CodeAmbiguousImport    Code = "TSN1004"
	CodeDuplicateAssembly  Code = "TSN1050"
	CodeDefaultImportLocal Code = "TSN1090"

	// TSN2xxx — unsupported source features
	CodeDynamicImport        Code = "TSN2001"
	CodeImportMeta           Code = "TSN2002"
	CodeWithStatement        Code = "TSN2003"
	CodeRecursiveAlias       Code = "TSN2004"
	CodeRecursiveMapped      Code = "TSN2005"
	CodeConditionalInfer     Code = "TSN2006"
	CodeThisAsTypeName       Code = "TSN2007"
	CodeVariadicTypeParam    Code = "TSN2008"
	CodeSymbolIndexSig       Code = "TSN2009"
	CodeForbiddenUtilType    Code = "TSN2010"
	CodeDuplicateNamedExport Code = "TSN2011"

	// TSN3xxx — language restrictions
	CodePromiseChain Code = "TSN3001"

	// TSN5xxx — numeric contract (INV-NUM)
	CodeIntLiteralToDouble  Code = "TSN5110"
	CodeNumericWideningLost Code = "TSN5111"

	// TSN6xxx — field/member shadowing (INV-CLR)
	CodeSourceShadowsAssembly Code = "TSN6001"

	// TSN71xx — generic restrictions
	CodeUnresolvedFormal     Code = "TSN7101"
	CodeGenericArityMismatch Code = "TSN7102"

	// TSN72xx — structural restrictions
	CodeUnresolvedReference Code = "TSN7201"

	// TSN74xx — IR soundness
	CodeResidualAny          Code = "TSN7401"
	CodeUnrepresentableShape Code = "TSN7402"
	CodeOpenDictionaryValue  Code = "TSN7403"
	CodeEscapingTypeParam    Code = "TSN7404"
)

var templates = map[Code]string{
	CodeModuleNotFound:       "module not found: %s",
	CodeImportCycle:          "circular import detected: %s",
	CodeUnknownImportKind:    "unrecognized import specifier: %s",
	CodeAmbiguousImport:      "import specifier %s resolves to more than one kind",
	CodeDuplicateAssembly:    "stable id %s already loaded from assembly %s; keeping first-loaded assembly",
	CodeDefaultImportLocal:   "default import from local module %s",
	CodeDynamicImport:        "dynamic import() is not supported",
	CodeImportMeta:           "import.meta is not supported",
	CodeWithStatement:        "'with' statements are not supported",
	CodeRecursiveAlias:       "recursive structural alias: %s",
	CodeRecursiveMapped:      "recursive mapped type: %s",
	CodeConditionalInfer:     "conditional types with 'infer' are not supported",
	CodeThisAsTypeName:       "'this' cannot be used as a type name here",
	CodeVariadicTypeParam:    "variadic type parameters are not supported",
	CodeSymbolIndexSig:       "index signatures keyed by symbol are not supported",
	CodeForbiddenUtilType:    "utility type %s is not supported as a generic argument",
	CodeDuplicateNamedExport: "duplicate named export: %s",
	CodePromiseChain:         "promise chain method %s is not supported; use await",
	CodeIntLiteralToDouble:   "integer literal %s used where a double is expected; write it as a floating literal or add an explicit cast",
	CodeNumericWideningLost:  "implicit numeric widening from %s to %s is not permitted here",
	CodeSourceShadowsAssembly: "source declaration %s shadows assembly type with the same stable id",
	CodeUnresolvedFormal:     "unresolved type parameter %s at call site %s",
	CodeGenericArityMismatch: "generic %s expects %d type argument(s), got %d",
	CodeUnresolvedReference:  "reference to unresolved type %s",
	CodeResidualAny:          "value of type 'any' survived validation and reached the soundness gate",
	CodeUnrepresentableShape: "anonymous object type cannot be represented in a type position",
	CodeOpenDictionaryValue:  "dictionary type has no specified value type",
	CodeEscapingTypeParam:    "open generic parameter %s escapes into a position requiring a concrete type",
}

// Location is a source position. Column is 1-based, Line is 1-based.
type Location struct {
	File   string
	Line   int
	Column int
}

func (l Location) String() string {
	if l.Line == 0 {
		return l.File
	}
	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// Diagnostic is a single reported compiler message.
type Diagnostic struct {
	Code     Code
	Phase    Phase
	Severity Severity
	Location Location
	Args     []interface{}
	Hint     string
}

// Message renders the diagnostic's templated text.
func (d *Diagnostic) Message() string {
	tmpl, ok := templates[d.Code]
	if !ok {
		return fmt.Sprintf("unknown diagnostic code: %s", d.Code)
	}
	return fmt.Sprintf(tmpl, d.Args...)
}

func (d *Diagnostic) Error() string {
	loc := ""
	if d.Location.File != "" {
		loc = d.Location.String() + ": "
	}
	phase := ""
	if d.Phase != "" {
		phase = fmt.Sprintf("[%s] ", d.Phase)
	}
	msg := fmt.Sprintf("%s%s%s [%s]: %s", loc, phase, d.Severity, d.Code, d.Message())
	if d.Hint != "" {
		msg += "\n  hint: " + d.Hint
	}
	return msg
}

// New builds an error-severity diagnostic.
func New(phase Phase, code Code, loc Location, args ...interface{}) *Diagnostic {
	return &Diagnostic{Code: code, Phase: phase, Severity: SeverityError, Location: loc, Args: args}
}

// NewWarning builds a warning-severity diagnostic.
func NewWarning(phase Phase, code Code, loc Location, args ...interface{}) *Diagnostic {
	return &Diagnostic{Code: code, Phase: phase, Severity: SeverityWarning, Location: loc, Args: args}
}

// WithHint attaches a hint and returns the same diagnostic for chaining.
func (d *Diagnostic) WithHint(hint string) *Diagnostic {
	d.Hint = hint
	return d
}

// ICE (Internal Compiler Error) signals an invariant violation, such as an
// AST or IR node kind an exhaustive switch doesn't handle, or a TypeId the
// catalog never registered. A residual `any` that reaches the soundness
// gate is not an ICE: the gate reports it as a TSN7401 diagnostic. Per
// spec.md §7, ICEs abort the compilation; they are programming errors in Tsonic itself, not
// diagnosable user mistakes, so they panic rather than accumulate.
type ICE struct {
	Phase   Phase
	Message string
}

func (e *ICE) Error() string {
	return fmt.Sprintf("internal compiler error in %s phase: %s", e.Phase, e.Message)
}

// Raise panics with an ICE. Nothing in this module recovers it, so the
// panic propagates out of pkg/compiler's Compile and aborts the
// compilation.
func Raise(phase Phase, format string, args ...interface{}) {
	panic(&ICE{Phase: phase, Message: fmt.Sprintf(format, args...)})
}

// Collector accumulates diagnostics across phases. It is append-only; per
// spec.md §5 it may be shared across parallel modules behind a mutex by the
// caller (Collector itself does no locking — a single compilation unit is
// single-threaded per spec.md §5, so internal callers never need to).
type Collector struct {
	items []*Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a diagnostic.
func (c *Collector) Add(d *Diagnostic) {
	c.items = append(c.items, d)
}

// Errorf is a convenience for Add(New(...)).
func (c *Collector) Errorf(phase Phase, code Code, loc Location, args ...interface{}) {
	c.Add(New(phase, code, loc, args...))
}

// Warnf is a convenience for Add(NewWarning(...)).
func (c *Collector) Warnf(phase Phase, code Code, loc Location, args ...interface{}) {
	c.Add(NewWarning(phase, code, loc, args...))
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (c *Collector) HasErrors() bool {
	for _, d := range c.items {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}

// All returns diagnostics sorted by (file, line, column) per spec.md §7.
func (c *Collector) All() []*Diagnostic {
	sorted := make([]*Diagnostic, len(c.items))
	copy(sorted, c.items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Location, sorted[j].Location
		if a.File != b.File {
			return a.File < b.File
		}
		if a.Line != b.Line {
			return a.Line < b.Line
		}
		return a.Column < b.Column
	})
	return sorted
}

// Len reports how many diagnostics have been recorded.
func (c *Collector) Len() int { return len(c.items) }
