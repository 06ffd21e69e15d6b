package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"crate-resolver/internal/shared"
	"crate-resolver/internal/types"
)

// Extractor walks a decoded manifest and builds the canonical-name →
// resolution table. It reads the document only; absent sections yield
// zero entries rather than errors.
type Extractor struct{}

func NewExtractor() Extractor {
	return Extractor{}
}

// ExtractCrateNames collects the crate's own package name plus every
// declaration from `dependencies` and `dev-dependencies`, including the
// per-condition tables nested under `target`. Conditional entries are
// flattened next to unconditional ones; condition keys are never
// inspected. Duplicate canonical names overwrite in iteration order,
// with the self entry merged first.
func (e Extractor) ExtractCrateNames(ctx context.Context, doc types.Table, buildCtx types.BuildContext) types.ResolutionTable {
	table := types.ResolutionTable{}

	if name, ok := packageName(doc); ok {
		table[name] = selfResolution(name, buildCtx)
	}

	for _, deps := range depTables(doc) {
		for declaredKey, value := range deps {
			table[canonicalName(declaredKey, value)] = types.Named(shared.SanitizeCrateName(declaredKey))
		}
	}
	for _, deps := range targetDepTables(doc) {
		for declaredKey, value := range deps {
			table[canonicalName(declaredKey, value)] = types.Named(shared.SanitizeCrateName(declaredKey))
		}
	}

	log.Ctx(ctx).Debug().Int("entries", len(table)).Msg("crate names extracted")
	return table
}

// selfResolution maps the crate's own name. A secondary artifact (an
// integration test or example) cannot refer to the primary artifact as
// itself, so it goes through the sanitized crate name instead.
func selfResolution(name string, buildCtx types.BuildContext) types.Resolution {
	if buildCtx == types.BuildContextSecondary {
		return types.Named(shared.SanitizeCrateName(name))
	}
	return types.Itself()
}

// canonicalName is the published name of a dependency: the `package`
// sub-key when the declaration renamed it, the declared key otherwise.
// A bare version string always means canonical = declared key.
func canonicalName(declaredKey string, value any) string {
	if spec, ok := types.AsTable(value); ok {
		if pkg, ok := spec.String("package"); ok {
			return pkg
		}
	}
	return declaredKey
}

func packageName(doc types.Table) (string, bool) {
	pkg, ok := doc.Table("package")
	if !ok {
		return "", false
	}
	return pkg.String("name")
}

func depTables(doc types.Table) []types.Table {
	var tables []types.Table
	for _, key := range []string{"dependencies", "dev-dependencies"} {
		if deps, ok := doc.Table(key); ok {
			tables = append(tables, deps)
		}
	}
	return tables
}

func targetDepTables(doc types.Table) []types.Table {
	target, ok := doc.Table("target")
	if !ok {
		return nil
	}
	var tables []types.Table
	for _, value := range target {
		// Condition keys (cfg expressions, target triples) are opaque;
		// anything that is not a table is skipped.
		condition, ok := types.AsTable(value)
		if !ok {
			continue
		}
		tables = append(tables, depTables(condition)...)
	}
	return tables
}
