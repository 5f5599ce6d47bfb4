package mcptool

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

type searchAIMLJobsArgs struct {
	Location           string   `json:"location,omitempty" jsonschema_description:"Job location (e.g. \"Remote\", \"San Francisco, CA\", \"New York, NY\")"`
	MaxResults         int      `json:"maxResults,omitempty" jsonschema:"minimum=1" jsonschema_description:"Maximum number of results to return"`
	IncludeInternships bool     `json:"includeInternships,omitempty" jsonschema_description:"Include internship positions"`
	IncludeFullTime    bool     `json:"includeFullTime,omitempty" jsonschema_description:"Include full-time positions"`
	Keywords           []string `json:"keywords,omitempty" jsonschema_description:"Additional keywords to search for (e.g. [\"machine learning\", \"deep learning\", \"NLP\"])"`
}

type searchSpecificSiteArgs struct {
	Site       string `json:"site" jsonschema:"required,enum=linkedin,enum=indeed,enum=glassdoor,enum=ziprecruiter,enum=monster" jsonschema_description:"Job site to search"`
	Location   string `json:"location,omitempty" jsonschema_description:"Job location"`
	MaxResults int    `json:"maxResults,omitempty" jsonschema:"minimum=1" jsonschema_description:"Maximum number of results to return"`
}

// generateSchema reflects a tool argument struct into the JSON schema shape
// the protocol expects (inlined definitions, no extra properties).
func generateSchema[T any]() json.RawMessage {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T
	schema := reflector.Reflect(v)
	raw, err := json.Marshal(schema)
	if err != nil {
		// Reflection over our own static structs cannot fail at runtime.
		panic(err)
	}
	return raw
}

var (
	searchAIMLJobsSchema     = generateSchema[searchAIMLJobsArgs]()
	searchSpecificSiteSchema = generateSchema[searchSpecificSiteArgs]()
)
