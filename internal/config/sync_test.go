// SPDX-License-Identifier: MPL-2.0

package config

import (
	"reflect"
	"strings"
	"testing"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

// These tests verify Go struct JSON tags match CUE schema field names, so a
// renamed field cannot be silently dropped by the loader.

// extractCUEFields returns the regular field names of a CUE struct definition.
func extractCUEFields(t *testing.T, val cue.Value) map[string]bool {
	t.Helper()

	fields := make(map[string]bool)
	iter, err := val.Fields(cue.Definitions(false), cue.Optional(true))
	if err != nil {
		t.Fatalf("failed to iterate CUE fields: %v", err)
	}
	for iter.Next() {
		sel := iter.Selector()
		if sel.LabelType().IsHidden() || sel.IsDefinition() {
			continue
		}
		fields[strings.TrimSuffix(sel.String(), "?")] = true
	}
	return fields
}

// extractGoJSONTags returns the JSON names of the direct exported fields of typ.
func extractGoJSONTags(t *testing.T, typ reflect.Type) map[string]bool {
	t.Helper()

	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		t.Fatalf("expected struct type, got %s", typ.Kind())
	}

	fields := make(map[string]bool)
	for i := range typ.NumField() {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			continue
		}
		fields[name] = true
	}
	return fields
}

func assertFieldsSync(t *testing.T, structName string, cueFields, goFields map[string]bool) {
	t.Helper()

	for field := range cueFields {
		if !goFields[field] {
			t.Errorf("[%s] CUE field %q not found in Go struct (missing JSON tag)", structName, field)
		}
	}
	for field := range goFields {
		if !cueFields[field] {
			t.Errorf("[%s] Go JSON tag %q not found in CUE schema (missing CUE field)", structName, field)
		}
	}
}

func lookupDefinition(t *testing.T, defPath string) cue.Value {
	t.Helper()

	schema := cuecontext.New().CompileString(configSchema)
	if schema.Err() != nil {
		t.Fatalf("failed to compile CUE schema: %v", schema.Err())
	}
	def := schema.LookupPath(cue.ParsePath(defPath))
	if def.Err() != nil {
		t.Fatalf("failed to lookup CUE definition %s: %v", defPath, def.Err())
	}
	return def
}

func TestConfigSchemaSync(t *testing.T) {
	t.Parallel()

	assertFieldsSync(t, "Config",
		extractCUEFields(t, lookupDefinition(t, "#Config")),
		extractGoJSONTags(t, reflect.TypeFor[Config]()))
}

func TestUIConfigSchemaSync(t *testing.T) {
	t.Parallel()

	assertFieldsSync(t, "UIConfig",
		extractCUEFields(t, lookupDefinition(t, "#UIConfig")),
		extractGoJSONTags(t, reflect.TypeFor[UIConfig]()))
}

func TestDefaultConfigSatisfiesSchema(t *testing.T) {
	t.Parallel()

	def := lookupDefinition(t, "#Config")
	defaults := DefaultConfig()
	value := def.Context().Encode(defaults)
	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		t.Fatalf("DefaultConfig() does not satisfy #Config: %v", err)
	}
}
