// Package schemas provides JSON Schema shape checking for structured-data
// candidates. The schemas are shape-level only: they assert field presence
// and basic types, not Schema.org semantics.
package schemas

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	"github.com/drmixer/seogenix-schema/internal/types"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// compiled schemas are cached per archetype after first use
var (
	cache   = make(map[types.Archetype]*gojsonschema.Schema)
	cacheMu sync.Mutex
)

// ShapeError reports the field-level findings of a failed shape check.
type ShapeError struct {
	Archetype types.Archetype
	Issues    []types.Issue
}

func (e *ShapeError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s shape check failed:", e.Archetype)
	for _, issue := range e.Issues {
		fmt.Fprintf(&sb, " %s: %s;", issue.Path, issue.Message)
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// CheckShape validates a JSON document against the embedded schema for the
// archetype. A nil return means the document has the expected shape.
func CheckShape(arch types.Archetype, jsonText string) error {
	schema, err := load(arch)
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(jsonText))
	if err != nil {
		return fmt.Errorf("failed to run shape check for %s: %w", arch, err)
	}

	if result.Valid() {
		return nil
	}

	shapeErr := &ShapeError{Archetype: arch}
	for _, desc := range result.Errors() {
		shapeErr.Issues = append(shapeErr.Issues, types.Issue{
			Path:    desc.Field(),
			Message: desc.Description(),
		})
	}
	return shapeErr
}

// load compiles and caches the schema for an archetype.
func load(arch types.Archetype) (*gojsonschema.Schema, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if schema, ok := cache[arch]; ok {
		return schema, nil
	}

	filename := strings.ToLower(string(arch)) + ".schema.json"
	data, err := schemaFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", filename, err)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema %s: %w", filename, err)
	}

	cache[arch] = schema
	return schema, nil
}
