package schema

import "encoding/json"

// Stringify returns the indented JSON form of v, or the marshal error text
func Stringify[T any](v T) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err.Error()
	}
	return string(data)
}
