// Package irdump is a deliberately minimal text dumper over a finalized
// ir.Module, standing in for the real target-language emitter spec.md §1
// places out of scope. It exists only so this repo has something concrete
// satisfying the Emitter Contract's input shape (spec.md §4.8: a finalized
// IR tree with every TypeId resolved) — it is not a target-language
// printer and makes no attempt at one. Grounded on
// mcgru-funxy/internal/prettyprinter/tree_printer.go's indent-tracking
// bytes.Buffer writer, applied to the IR's tagged-variant tree instead of
// the source AST it was built to print.
package irdump

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/ir"
)

// Dumper renders an ir.Module as an indented text tree.
type Dumper struct {
	buf    bytes.Buffer
	indent int
	cat    *catalog.UnifiedTypeCatalog
}

// New returns a Dumper resolving TypeIds against cat for readable output
// (TsName instead of a bare numeric TypeId).
func New(cat *catalog.UnifiedTypeCatalog) *Dumper {
	return &Dumper{cat: cat}
}

// Dump renders mod and returns the accumulated text. Safe to call once per
// Dumper; construct a fresh Dumper per module.
func (d *Dumper) Dump(mod *ir.Module) string {
	d.line("Module: %s", mod.Path)
	d.indent++
	for _, s := range mod.Statements {
		d.statement(s)
	}
	d.indent--
	return d.buf.String()
}

func (d *Dumper) line(format string, args ...interface{}) {
	d.buf.WriteString(strings.Repeat("  ", d.indent))
	fmt.Fprintf(&d.buf, format, args...)
	d.buf.WriteString("\n")
}

func (d *Dumper) typeName(t catalog.TypeId) string {
	if t == catalog.NoType {
		return "?"
	}
	return d.cat.Entry(t).TsName
}

// statement dumps every ir.Statement shape this package cares to render in
// any detail; anything it doesn't special-case (a bare ir.Expression used
// directly as a statement, per ir.Expression's dual Statement embedding)
// falls through to a generic line — still a valid, non-panicking dump, just
// a terse one, matching this package's stated non-goal of being a real
// printer.
func (d *Dumper) statement(s ir.Statement) {
	switch n := s.(type) {
	case *ir.FuncDecl:
		d.line("Func %s(%s) -> %s", n.Name, d.paramList(n.Params), d.typeName(n.ReturnType))
		d.indent++
		d.block(n.Body)
		d.indent--
	case *ir.ClassDecl:
		d.line("Class %s", n.Name)
		d.indent++
		for _, f := range n.Fields {
			d.line("Field %s: %s", f.Name, d.typeName(f.Type))
		}
		for _, m := range n.Methods {
			d.statement(m)
		}
		d.indent--
	case *ir.VarDecl:
		d.line("Var %s: %s", n.Name, d.typeName(n.DeclaredType))
	case *ir.Return:
		d.line("Return")
	case *ir.If:
		d.line("If")
	case *ir.While:
		d.line("While")
	case *ir.Block:
		d.block(n)
	default:
		d.line("%T", s)
	}
}

func (d *Dumper) block(b *ir.Block) {
	if b == nil {
		return
	}
	for _, s := range b.Statements {
		d.statement(s)
	}
}

func (d *Dumper) paramList(params []*ir.Param) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Name + ": " + d.typeName(p.Type)
	}
	return strings.Join(parts, ", ")
}
