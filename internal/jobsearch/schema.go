package jobsearch

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// payloadSchema is the contract the provider payload must satisfy
// before decoding. Listings missing a job_id or job_title are useless
// for ranking, so the schema requires both per item.
const payloadSchema = `{
	"type": "object",
	"required": ["data"],
	"properties": {
		"data": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["job_id", "job_title"],
				"properties": {
					"job_id": {"type": "string", "minLength": 1},
					"job_title": {"type": "string", "minLength": 1},
					"employer_name": {"type": "string"},
					"job_location": {"type": "string"},
					"job_description": {"type": "string"},
					"job_required_skills": {"type": "array", "items": {"type": "string"}},
					"job_apply_link": {"type": "string"},
					"job_posted_at": {"type": "string"}
				}
			}
		}
	}
}`

var schemaLoader = gojsonschema.NewStringLoader(payloadSchema)

// validatePayload checks the raw provider payload against the schema.
func validatePayload(body []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(body))
	if err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	if !result.Valid() {
		errs := result.Errors()
		if len(errs) > 0 {
			return fmt.Errorf("payload does not match schema: %s", errs[0].String())
		}
		return fmt.Errorf("payload does not match schema")
	}
	return nil
}
