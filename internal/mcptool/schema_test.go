package mcptool

import (
	"encoding/json"
	"strings"
	"testing"
)

func decodeSchema(t *testing.T, raw json.RawMessage) map[string]any {
	t.Helper()
	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}
	return schema
}

func TestSearchAIMLJobsSchema(t *testing.T) {
	schema := decodeSchema(t, searchAIMLJobsSchema)

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("missing properties: %v", schema)
	}
	for _, name := range []string{"location", "maxResults", "includeInternships", "includeFullTime", "keywords"} {
		if _, ok := props[name]; !ok {
			t.Errorf("missing property %q", name)
		}
	}
	if add, ok := schema["additionalProperties"].(bool); !ok || add {
		t.Error("expected additionalProperties false")
	}

	maxResults, ok := props["maxResults"].(map[string]any)
	if !ok {
		t.Fatal("missing maxResults property")
	}
	if min, ok := maxResults["minimum"].(float64); !ok || min != 1 {
		t.Errorf("expected maxResults minimum 1, got %v", maxResults["minimum"])
	}
}

func TestSearchSpecificSiteSchema(t *testing.T) {
	schema := decodeSchema(t, searchSpecificSiteSchema)

	props, ok := schema["properties"].(map[string]any)
	if !ok {
		t.Fatalf("missing properties: %v", schema)
	}
	site, ok := props["site"].(map[string]any)
	if !ok {
		t.Fatal("missing site property")
	}

	enum, ok := site["enum"].([]any)
	if !ok {
		t.Fatalf("site enum missing: %v", site)
	}
	var sites []string
	for _, v := range enum {
		sites = append(sites, v.(string))
	}
	want := []string{"linkedin", "indeed", "glassdoor", "ziprecruiter", "monster"}
	if strings.Join(sites, ",") != strings.Join(want, ",") {
		t.Fatalf("unexpected site enum %v", sites)
	}

	required, _ := schema["required"].([]any)
	foundSite := false
	for _, v := range required {
		if v == "site" {
			foundSite = true
		}
	}
	if !foundSite {
		t.Errorf("expected site to be required, got %v", required)
	}
}
