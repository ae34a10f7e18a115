package quizgen

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// batchSchemaDef is the structural contract for a decoded reply: an
// array of 7-element string arrays. Content rules (non-empty options,
// label in A-D) are enforced when building QuestionRecords.
var batchSchemaDef = map[string]any{
	"type": "array",
	"items": map[string]any{
		"type":     "array",
		"minItems": fieldsPerEntry,
		"maxItems": fieldsPerEntry,
		"items": map[string]any{
			"type": "string",
		},
	},
}

var (
	batchSchemaOnce sync.Once
	batchSchema     *jsonschema.Schema
	batchSchemaErr  error
)

// validateBatchShape checks a decoded generic tree against the batch
// schema. Returns a GenerationError describing the first violation.
func validateBatchShape(tree any) error {
	batchSchemaOnce.Do(compileBatchSchema)
	if batchSchemaErr != nil {
		return generationErr("compile batch schema", batchSchemaErr)
	}

	if err := batchSchema.Validate(tree); err != nil {
		return generationErr("reply does not match the expected shape", err)
	}
	return nil
}

func compileBatchSchema() {
	// The jsonschema library expects a parsed JSON value (any), not raw
	// Go maps with typed numbers. Marshal then unmarshal to normalize.
	defBytes, err := json.Marshal(batchSchemaDef)
	if err != nil {
		batchSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
		return
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		batchSchemaErr = fmt.Errorf("parse schema definition: %w", err)
		return
	}

	c := jsonschema.NewCompiler()
	const schemaURL = "schema://question-batch.json"
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		batchSchemaErr = fmt.Errorf("add resource: %w", err)
		return
	}
	batchSchema, batchSchemaErr = c.Compile(schemaURL)
}
