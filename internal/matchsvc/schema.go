// Package matchsvc provides the HTTP client for the remote candidate-matching service.
package matchsvc

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// searchResponseSchema describes the wire contract of the matching service's
// search endpoint. Responses are checked against it before decoding so shape
// drift in the remote service fails loudly instead of producing
// half-populated results.
const searchResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["query", "results"],
  "properties": {
    "query": { "type": "string" },
    "results": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name", "score", "rationale"],
        "properties": {
          "name": { "type": "string", "minLength": 1 },
          "role": { "type": ["string", "null"] },
          "score": { "type": "integer", "minimum": 0, "maximum": 100 },
          "rationale": { "type": "string" },
          "evidence": { "type": "array", "items": { "type": "string" } },
          "email": { "type": ["string", "null"] },
          "phone": { "type": ["string", "null"] }
        }
      }
    }
  }
}`

// validateSearchResponse checks raw JSON against the search response schema.
func validateSearchResponse(raw []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(searchResponseSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("search response is not valid JSON: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("search response failed schema validation:")
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		sb.WriteString(fmt.Sprintf(" %s: %s;", field, desc.Description()))
	}
	return fmt.Errorf("%s", strings.TrimSuffix(sb.String(), ";"))
}
