package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/datatypes"
)

// Helpers for the JSON-encoded text columns. Writes always produce
// well-formed JSON; reads tolerate legacy rows that stored a bare string
// or a comma-separated list and degrade to an empty value rather than
// erroring.

// EncodeJSONField marshals v for storage. The field name is only used to
// build an actionable error message for the caller's 400 response.
func EncodeJSONField(field string, v interface{}) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s value: %w", field, err)
	}
	return datatypes.JSON(b), nil
}

// DecodeStringList reads a column expected to hold a JSON string array.
func DecodeStringList(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		if list == nil {
			return []string{}
		}
		return list
	}
	// Legacy rows stored plain or comma-separated strings.
	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return splitLegacyList(single)
	}
	return splitLegacyList(string(raw))
}

// DecodeObject reads a column expected to hold a JSON object.
func DecodeObject(raw datatypes.JSON) map[string]interface{} {
	if len(raw) == 0 {
		return map[string]interface{}{}
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		return map[string]interface{}{}
	}
	return obj
}

func splitLegacyList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
