package bindings

import (
	"fmt"

	"github.com/tidwall/gjson"
)

// SignatureOverlay reads an adjacent, optional "<assembly>.signatures.json"
// file that some assemblies ship alongside bindings.json with fuller
// generic-constraint and nullability detail than the fixed Manifest schema
// models. Its shape varies per assembly (some carry a "generics" object,
// some don't; array nesting for overload sets differs), so it is queried
// with gjson path expressions rather than decoded into a second fixed
// struct.
type SignatureOverlay struct {
	raw string
}

// ParseSignatureOverlay wraps raw JSON text for path-based querying. It does
// not validate the document's shape up front — queries that don't match
// simply return gjson's zero Result, which NullableOf/ConstraintsOf below
// treat as "no richer information available."
func ParseSignatureOverlay(raw string) (*SignatureOverlay, error) {
	if !gjson.Valid(raw) {
		return nil, fmt.Errorf("bindings: signature overlay is not valid JSON")
	}
	return &SignatureOverlay{raw: raw}, nil
}

// NullableOf reports whether the overlay marks a given type's member as
// nullable (INV-NULLABLE), falling back to false when the overlay has no
// opinion.
func (o *SignatureOverlay) NullableOf(clrTypeName, memberName string) bool {
	path := fmt.Sprintf(`types.#(clrName==%q).members.#(name==%q).nullable`, clrTypeName, memberName)
	return gjson.Get(o.raw, path).Bool()
}

// ConstraintsOf returns the generic constraint trait names the overlay
// records for one type parameter of a member, or nil when absent.
func (o *SignatureOverlay) ConstraintsOf(clrTypeName, memberName, typeParam string) []string {
	path := fmt.Sprintf(`types.#(clrName==%q).members.#(name==%q).generics.%s.constraints`, clrTypeName, memberName, typeParam)
	result := gjson.Get(o.raw, path)
	if !result.Exists() {
		return nil
	}
	var out []string
	for _, v := range result.Array() {
		out = append(out, v.String())
	}
	return out
}
