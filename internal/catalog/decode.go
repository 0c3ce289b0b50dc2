package catalog

import (
	"encoding/json"
	"strings"
)

// Entity is one element of a serialized genres/cast/crew blob, e.g.
// [{"id": 28, "name": "Action"}] or [{"name": "James Cameron", "job": "Director"}].
type Entity struct {
	Name string `json:"name"`
	Job  string `json:"job"`
}

// DecodeEntities parses a serialized entity list. All "maybe malformed
// external data" handling lives here: empty, non-JSON or wrongly shaped
// input decodes to nil, never an error.
func DecodeEntities(raw string) []Entity {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == "null" {
		return nil
	}
	var entities []Entity
	if err := json.Unmarshal([]byte(raw), &entities); err != nil {
		return nil
	}
	return entities
}

// EntityNames collects the non-empty names from a decoded entity list.
func EntityNames(entities []Entity) []string {
	var names []string
	for _, e := range entities {
		if e.Name != "" {
			names = append(names, e.Name)
		}
	}
	return names
}

// SplitPlain handles sources that ship genre or director columns as plain
// comma-separated text rather than a serialized blob. Input that looks like
// a blob is left to DecodeEntities and yields nil here.
func SplitPlain(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.HasPrefix(raw, "[") || strings.HasPrefix(raw, "{") {
		return nil
	}
	var names []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}
