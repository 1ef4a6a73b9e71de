package bindings

import (
	"strings"
	"testing"

	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
	"github.com/tsoniclang/tsonic/internal/handles"
)

const sampleManifest = `{
	"schema": "tsonic.bindings/v1",
	"assembly": "System.Collections",
	"namespaces": [
		{
			"name": "System.Collections.Generic",
			"types": [
				{
					"alias": "List",
					"clrName": "System.Collections.Generic.List_1",
					"stableId": "scg.List1",
					"kind": "class",
					"members": [
						{"name": "Count", "kind": "property", "type": "int"}
					]
				}
			]
		}
	]
}`

func TestDecodeRejectsWrongSchema(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"schema":"other/v9","namespaces":[]}`))
	if err == nil {
		t.Fatal("expected an error for a mismatched schema version")
	}
}

func TestDecodeRejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"schema":"tsonic.bindings/v1","bogus":true,"namespaces":[]}`))
	if err == nil {
		t.Fatal("expected an error for an unknown top-level field")
	}
}

func TestLoadRegistersTypesAndIsIdempotentViaCache(t *testing.T) {
	reg := handles.NewRegistry()
	cat := catalog.New(reg)
	col := diagnostics.NewCollector()
	cache, err := OpenCache(":memory:")
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	defer cache.Close()

	layer := NewBindingLayer(cat, col, cache, nil)
	raw := []byte(sampleManifest)
	m, err := Decode(strings.NewReader(sampleManifest))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if err := layer.Load(diagnostics.Location{}, raw, m); err != nil {
		t.Fatalf("Load: %v", err)
	}
	id, ok := cat.ResolveTsName("List")
	if !ok {
		t.Fatal("expected List to be registered in the catalog")
	}
	entry := cat.Entry(id)
	if entry.Kind != catalog.KindClass {
		t.Errorf("expected KindClass, got %v", entry.Kind)
	}
	if len(entry.Members) != 1 || entry.Members[0].Name != "Count" {
		t.Fatalf("expected one Count member, got %+v", entry.Members)
	}

	// Loading the identical manifest a second time must not duplicate the
	// member list nor produce a duplicate-assembly diagnostic, since the
	// cache short-circuits before DefineAssembly is reached again.
	if err := layer.Load(diagnostics.Location{}, raw, m); err != nil {
		t.Fatalf("second Load: %v", err)
	}
	if len(entry.Members) != 1 {
		t.Errorf("expected member list unchanged after reload, got %d members", len(entry.Members))
	}
	if col.Len() != 0 {
		t.Errorf("expected no diagnostics, got %v", col.All())
	}
}

func TestSignatureOverlayNullableOf(t *testing.T) {
	overlay, err := ParseSignatureOverlay(`{"types":[{"clrName":"Foo","members":[{"name":"Bar","nullable":true}]}]}`)
	if err != nil {
		t.Fatalf("ParseSignatureOverlay: %v", err)
	}
	if !overlay.NullableOf("Foo", "Bar") {
		t.Error("expected Foo.Bar to be nullable")
	}
	if overlay.NullableOf("Foo", "Baz") {
		t.Error("expected Foo.Baz to default to non-nullable")
	}
}

func TestSignatureOverlayConstraintsOf(t *testing.T) {
	overlay, err := ParseSignatureOverlay(`{"types":[{"clrName":"Foo","members":[{"name":"Bar","generics":{"T":{"constraints":["IComparable"]}}}]}]}`)
	if err != nil {
		t.Fatalf("ParseSignatureOverlay: %v", err)
	}
	got := overlay.ConstraintsOf("Foo", "Bar", "T")
	if len(got) != 1 || got[0] != "IComparable" {
		t.Errorf("expected [IComparable], got %v", got)
	}
	if got := overlay.ConstraintsOf("Foo", "Bar", "U"); got != nil {
		t.Errorf("expected nil constraints for unknown type param, got %v", got)
	}
}
