package server

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"
)

const pointSchema = `{
	"type": "object",
	"required": ["x", "y"],
	"properties": {
		"x": {"type": "number"},
		"y": {"type": "number"}
	}
}`

var curveSchema = fmt.Sprintf(`{
	"type": "object",
	"required": ["points"],
	"properties": {
		"points": {"type": "array", "items": %s},
		"tension": {"type": "number"},
		"closed": {"type": "boolean"},
		"segments": {"type": "integer", "minimum": 1, "maximum": 1024}
	},
	"additionalProperties": false
}`, pointSchema)

var containsSchema = fmt.Sprintf(`{
	"type": "object",
	"required": ["polygon", "points"],
	"properties": {
		"polygon": {"type": "array", "items": %[1]s},
		"points": {"type": "array", "items": %[1]s},
		"line_type": {"enum": ["straight", "line", "curve"]},
		"legacy_early_exit": {"type": "boolean"}
	},
	"additionalProperties": false
}`, pointSchema)

var scaleSchema = fmt.Sprintf(`{
	"type": "object",
	"required": ["points", "factor"],
	"properties": {
		"points": {"type": "array", "items": %s},
		"factor": {"type": "number"}
	},
	"additionalProperties": false
}`, pointSchema)

// Validator checks request bodies against a JSON schema before they are
// decoded.
type Validator struct {
	schema *gojsonschema.Schema
}

func NewValidator(schema string) (*Validator, error) {
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schema))
	if err != nil {
		return nil, errors.Wrap(err, "compiling schema")
	}
	return &Validator{schema: compiled}, nil
}

func mustValidator(schema string) *Validator {
	v, err := NewValidator(schema)
	if err != nil {
		panic(err)
	}
	return v
}

// Validate returns an error listing every schema violation in body.
func (v *Validator) Validate(body []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return errors.Wrap(err, "invalid JSON")
	}
	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return errors.Errorf("validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}
