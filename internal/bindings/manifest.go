// Package bindings loads the bindings.json manifest that tells Tsonic what
// types, members, and signatures a foreign CLR assembly exposes (spec.md
// §4.2). The manifest's fixed schema is decoded with encoding/json (grounded
// on sunholo-data-ailang's internal/manifest/manifest.go — another
// fixed-shape JSON document decoded straight into Go structs with no schema
// validation library, since the shape here is no less fixed than that
// project's own example manifest); an adjacent, optional metadata overlay
// carrying richer signature detail is read with github.com/tidwall/gjson
// (metadata.go) because that file's shape varies per assembly and gjson's
// path queries tolerate the variance better than a second fixed struct
// would.
package bindings

import (
	"encoding/json"
	"fmt"
	"io"
)

// SchemaVersion is the bindings.json schema version this loader accepts.
const SchemaVersion = "tsonic.bindings/v1"

// Manifest is the decoded form of one bindings.json file: an assembly's
// namespaces, each holding the types it exports.
type Manifest struct {
	Schema     string                 `json:"schema"`
	Assembly   string                 `json:"assembly"`
	Namespaces []ManifestNamespace    `json:"namespaces"`
}

// ManifestNamespace groups the types declared under one CLR namespace.
type ManifestNamespace struct {
	Name  string         `json:"name"`
	Types []ManifestType `json:"types"`
}

// ManifestType is one exported type: its alias (the name Tsonic source
// sees), its fully qualified CLR name, its declaration kind, and its
// member list.
type ManifestType struct {
	Alias         string           `json:"alias"`
	ClrName       string           `json:"clrName"`
	StableId      string           `json:"stableId"`
	Kind          string           `json:"kind"` // "class", "interface", "enum", "struct", "delegate"
	Accessibility string           `json:"accessibility"`
	TypeParams    []string         `json:"typeParams,omitempty"`
	Heritage      []string         `json:"heritage,omitempty"`
	Members       []ManifestMember `json:"members"`
}

// ManifestMember is one member of a ManifestType.
type ManifestMember struct {
	Name          string   `json:"name"`
	Kind          string   `json:"kind"` // "property", "method", "field", "event", "indexer", "constructor"
	Static        bool     `json:"static"`
	Accessibility string   `json:"accessibility"`
	Type          string   `json:"type,omitempty"`   // resolved CLR type name, for properties/fields
	Params        []string `json:"params,omitempty"` // resolved CLR type names, for methods
	Return        string   `json:"return,omitempty"` // resolved CLR type name, for methods
}

// Decode parses a bindings.json document from r.
func Decode(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("bindings: decode manifest: %w", err)
	}
	if m.Schema != "" && m.Schema != SchemaVersion {
		return nil, fmt.Errorf("bindings: unsupported schema %q, want %q", m.Schema, SchemaVersion)
	}
	return &m, nil
}
