package syncer

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// One JSON schema per wire-shape variant. The variants are mutually
// exclusive: canonical entries require a slot field, positioned entries
// require a position field, the slot map is an object keyed by slot
// numbers, and the id list is an array of bare strings.
var variantSchemas = map[entriesShape]string{
	shapeCanonical: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["slot", "content_id"],
			"properties": {
				"slot": {"type": "integer", "minimum": 0},
				"content_id": {"type": "string"},
				"interval": {"type": "integer"},
				"distractor_tier": {"type": "integer"},
				"perfect_count": {"type": "integer"},
				"last_completed_at": {"type": "string"}
			}
		}
	}`,
	shapeSlotMap: `{
		"type": "object",
		"patternProperties": {
			"^[0-9]+$": {
				"type": "object",
				"required": ["content_id"],
				"properties": {"content_id": {"type": "string"}}
			}
		},
		"additionalProperties": false
	}`,
	shapePositioned: `{
		"type": "array",
		"items": {
			"type": "object",
			"required": ["position", "content_id"],
			"properties": {
				"position": {"type": "integer", "minimum": 0},
				"content_id": {"type": "string"}
			}
		}
	}`,
	shapeIDList: `{
		"type": "array",
		"items": {"type": "string"}
	}`,
}

// detectionOrder fixes which variant an ambiguous value (such as an
// empty array) resolves to.
var detectionOrder = []entriesShape{shapeCanonical, shapeSlotMap, shapePositioned, shapeIDList}

var (
	compileOnce sync.Once
	compiled    map[entriesShape]*jsonschema.Schema
	compileErr  error
)

func compiledVariantSchemas() (map[entriesShape]*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled = make(map[entriesShape]*jsonschema.Schema, len(variantSchemas))
		for shape, def := range variantSchemas {
			var parsed any
			if err := json.Unmarshal([]byte(def), &parsed); err != nil {
				compileErr = fmt.Errorf("parse %v schema: %w", shape, err)
				return
			}
			c := jsonschema.NewCompiler()
			url := fmt.Sprintf("schema://wire/%s.json", shape)
			if err := c.AddResource(url, parsed); err != nil {
				compileErr = fmt.Errorf("add %v schema: %w", shape, err)
				return
			}
			s, err := c.Compile(url)
			if err != nil {
				compileErr = fmt.Errorf("compile %v schema: %w", shape, err)
				return
			}
			compiled[shape] = s
		}
	})
	return compiled, compileErr
}

// detectEntriesShape validates raw against each variant schema in
// detection order and returns the first match.
func detectEntriesShape(raw json.RawMessage) (entriesShape, error) {
	schemas, err := compiledVariantSchemas()
	if err != nil {
		return 0, err
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return 0, fmt.Errorf("parse entries: %w", err)
	}

	for _, shape := range detectionOrder {
		if schemas[shape].Validate(parsed) == nil {
			return shape, nil
		}
	}
	return 0, fmt.Errorf("entries match no known wire shape")
}
