package utils

import "encoding/json"

// Unmarshal decodes data into a fresh T.
func Unmarshal[T any](data []byte) (*T, error) {
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MustMarshal is for payloads known to marshal cleanly, typically fixtures.
func MustMarshal(v any) []byte {
	raw, _ := json.Marshal(v)
	return raw
}
