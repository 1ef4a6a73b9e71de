package bindings

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/tsoniclang/tsonic/internal/catalog"
	"github.com/tsoniclang/tsonic/internal/diagnostics"
)

// kindMap translates a ManifestType's textual kind into the catalog's Kind
// enum. "struct" and "delegate" both map onto KindClass/KindFunction
// respectively since the catalog has no separate representation for either —
// spec.md §4.2 treats a CLR struct as a reference-shaped class for Tsonic's
// purposes (value-type semantics are out of scope) and a delegate as a named
// function type.
var kindMap = map[string]catalog.Kind{
	"class":     catalog.KindClass,
	"interface": catalog.KindInterface,
	"enum":      catalog.KindEnum,
	"struct":    catalog.KindClass,
	"delegate":  catalog.KindFunction,
}

// BindingLayer loads one or more assemblies' bindings.json manifests into a
// catalog, consulting an optional signature overlay for richer nullability
// and generic-constraint detail, and an optional on-disk cache so repeated
// loads of an unchanged assembly within a compiler session are idempotent
// (spec.md §4.2).
type BindingLayer struct {
	cat     *catalog.UnifiedTypeCatalog
	col     *diagnostics.Collector
	cache   *Cache
	overlay *SignatureOverlay
}

// NewBindingLayer returns a BindingLayer writing into cat and col. cache may
// be nil, in which case every Load passes its manifest's types to
// DefineAssembly again: the first registration of a stable id and its
// member list are kept unchanged, and each repeated stable id raises a
// TSN1050 warning.
// overlay may also be nil.
func NewBindingLayer(cat *catalog.UnifiedTypeCatalog, col *diagnostics.Collector, cache *Cache, overlay *SignatureOverlay) *BindingLayer {
	return &BindingLayer{cat: cat, col: col, cache: cache, overlay: overlay}
}

// hashManifest derives a stable content hash for a manifest, used as the
// cache's assembly identity key so edits to bindings.json invalidate the
// cache without any version bookkeeping on the caller's part.
func hashManifest(raw []byte) string {
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}

// Load registers every type in a decoded Manifest into the catalog. raw is
// the manifest's original bytes, used only to derive the cache key; it need
// not be re-parsed. Load reports CodeDuplicateAssembly only through the
// catalog's own DefineAssembly call; a type the cache already records for
// this manifest hash is skipped before that call, so it raises no warning
// and is not registered again.
func (l *BindingLayer) Load(loc diagnostics.Location, raw []byte, m *Manifest) error {
	assemblyHash := hashManifest(raw)
	for _, ns := range m.Namespaces {
		for _, t := range ns.Types {
			if l.cache != nil {
				skip, err := l.cache.AlreadyLoaded(assemblyHash, t.StableId)
				if err != nil {
					return fmt.Errorf("bindings: cache lookup for %s: %w", t.StableId, err)
				}
				if skip {
					continue
				}
			}
			l.loadType(loc, &t)
			if l.cache != nil {
				if err := l.cache.MarkLoaded(assemblyHash, t.StableId, t.ClrName); err != nil {
					return fmt.Errorf("bindings: cache record for %s: %w", t.StableId, err)
				}
			}
		}
	}
	return nil
}

// loadType registers one ManifestType and its members. A member's CLR type
// reference may name a type from a namespace not yet processed in this same
// manifest; ResolveClrName simply returns NoType for those until a later
// Load call (or a later type in this same manifest) registers it, matching
// bindings.json's documented out-of-order namespace ordering.
func (l *BindingLayer) loadType(loc diagnostics.Location, t *ManifestType) {
	kind, ok := kindMap[t.Kind]
	if !ok {
		kind = catalog.KindClass
	}
	_, existed := l.cat.ResolveStableId(t.StableId)
	id := l.cat.DefineAssembly(l.col, loc, t.Alias, t.ClrName, t.StableId, kind)
	if existed {
		return
	}

	entry := l.cat.Entry(id)
	for _, m := range t.Members {
		memberType, _ := l.cat.ResolveClrName(m.Return)
		if memberType == catalog.NoType {
			memberType, _ = l.cat.ResolveClrName(m.Type)
		}
		returnType := catalog.NoType
		if m.Return != "" {
			returnType = memberType
		}
		entry.Members = append(entry.Members, &catalog.MemberEntry{
			Name:          m.Name,
			Static:        m.Static,
			Accessibility: m.Accessibility,
			Type:          memberType,
			Return:        returnType,
		})
	}
}

// Nullable reports whether the signature overlay marks a loaded type's
// member as nullable (INV-NULLABLE), false when no overlay is attached.
func (l *BindingLayer) Nullable(clrTypeName, memberName string) bool {
	if l.overlay == nil {
		return false
	}
	return l.overlay.NullableOf(clrTypeName, memberName)
}
