package filter

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/YousefHaggy/salesforce-sobjects-oas-filter/internal/config"
	"github.com/YousefHaggy/salesforce-sobjects-oas-filter/internal/types"
)

// Filter removes sObject schemas that were not requested and keeps the
// SObjectType enum consistent with what remains.
type Filter struct {
	enumSchemaName string
	refMarker      string
}

// New creates a Filter from the given config.
// A nil config falls back to Salesforce defaults.
func New(cfg *config.FilterConfig) *Filter {
	if cfg == nil {
		cfg = config.NewDefaultFilterConfig()
	}
	return &Filter{
		enumSchemaName: cfg.EnumSchemaName,
		refMarker:      cfg.RefMarker,
	}
}

// Result describes the outcome of a filtering pass.
// Doc is a new document, the input is never mutated.
type Result struct {
	Doc Document

	// Kept and Removed list sObject schema names, sorted.
	Kept    []string
	Removed []string

	// EnumRemoved lists the values dropped from the type enum, original order.
	EnumRemoved []string

	// Unmatched lists requested names with no sObject schema in the document.
	Unmatched []string
}

// Apply partitions components.schemas into keep/drop sets and rewrites the
// type enum. Common (non-sObject) components always survive.
// A document without components.schemas is returned as-is with a warning.
func (f *Filter) Apply(doc Document, keep KeepSet) *Result {
	res := &Result{Doc: doc}

	schemas := doc.Schemas()
	if schemas == nil {
		slog.Warn("no schemas found in document, nothing to filter")
		return res
	}

	filtered := make(map[string]any, len(schemas))
	var sobjectNames []string

	for name, schema := range schemas {
		if !f.isSObjectSchema(schema) {
			filtered[name] = schema
			continue
		}

		sobjectNames = append(sobjectNames, name)
		if keep[name] {
			filtered[name] = schema
			res.Kept = append(res.Kept, name)
		} else {
			res.Removed = append(res.Removed, name)
		}
	}

	for _, name := range keep.Names() {
		if !types.SliceContains(sobjectNames, name) {
			res.Unmatched = append(res.Unmatched, name)
			slog.Warn("requested sObject has no schema in document", "name", name)
		}
	}

	res.EnumRemoved = f.rewriteEnum(filtered, keep)

	out := types.CopyMap(doc)
	components, _ := doc["components"].(map[string]any)
	newComponents := types.CopyMap(components)
	newComponents["schemas"] = filtered
	out["components"] = newComponents
	res.Doc = out

	sort.Strings(res.Kept)
	sort.Strings(res.Removed)

	return res
}

// isSObjectSchema reports whether a schema definition carries the Salesforce
// marker: an allOf member whose $ref contains the configured substring.
func (f *Filter) isSObjectSchema(schema any) bool {
	m, ok := schema.(map[string]any)
	if !ok {
		return false
	}

	allOf, ok := m["allOf"].([]any)
	if !ok {
		return false
	}

	for _, item := range allOf {
		entry, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if ref, ok := entry["$ref"].(string); ok && strings.Contains(ref, f.refMarker) {
			return true
		}
	}

	return false
}

// rewriteEnum replaces the type enum with its intersection with the keep set,
// preserving the original order. The entry itself is copied, not mutated.
func (f *Filter) rewriteEnum(schemas map[string]any, keep KeepSet) []string {
	entry, ok := schemas[f.enumSchemaName].(map[string]any)
	if !ok {
		return nil
	}

	enum, ok := entry["enum"].([]any)
	if !ok {
		return nil
	}

	kept := make([]any, 0, len(enum))
	var removed []string

	for _, value := range enum {
		if name, isString := value.(string); isString && keep[name] {
			kept = append(kept, value)
			continue
		}
		removed = append(removed, types.ToString(value))
	}

	newEntry := types.CopyMap(entry)
	newEntry["enum"] = kept
	schemas[f.enumSchemaName] = newEntry

	return removed
}
