package validation

import (
	"bytes"
	"encoding/json"
)

// DecodeJSON unmarshals a request body into dst and also returns the raw
// field map so callers can tell an absent field from one set to null. An
// empty body decodes as an empty object.
func DecodeJSON(data []byte, dst interface{}) (map[string]json.RawMessage, error) {
	raw := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(data)) == 0 {
		return raw, nil
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return nil, err
	}

	return raw, nil
}

func hasJSONField(raw map[string]json.RawMessage, field string) bool {
	_, ok := raw[field]
	return ok
}

func isJSONNull(value json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
