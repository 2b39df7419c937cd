package schema

import (
	"encoding/json"
	"fmt"

	// Packages
	gjson "github.com/tidwall/gjson"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Response is the undecoded JSON body returned for a completion or chat
// completion request
type Response []byte

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewErrorResponse returns a response carrying an API-level error object
func NewErrorResponse(code int, message string) Response {
	data, err := json.Marshal(map[string]any{
		"error": map[string]any{
			"code":    code,
			"message": message,
		},
	})
	if err != nil {
		// Marshalling a map of a string and int cannot fail
		panic(err)
	}
	return Response(data)
}

////////////////////////////////////////////////////////////////////////////////
// JSON

func (r Response) MarshalJSON() ([]byte, error) {
	if len(r) == 0 {
		return []byte("null"), nil
	}
	return []byte(r), nil
}

func (r *Response) UnmarshalJSON(data []byte) error {
	*r = append((*r)[0:0], data...)
	return nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r Response) String() string {
	return string(r)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// APIError returns the message of a top-level "error" key, and true if the
// key is present
func (r Response) APIError() (string, bool) {
	v := gjson.GetBytes(r, "error")
	if !v.Exists() {
		return "", false
	}
	switch {
	case v.Get("message").Exists():
		if code := v.Get("code"); code.Exists() {
			return fmt.Sprintf("%s (code %s)", v.Get("message").String(), code.String()), true
		}
		return v.Get("message").String(), true
	case v.Type == gjson.String:
		return v.String(), true
	case v.Type == gjson.Null:
		return "unknown error", true
	}
	return v.Raw, true
}

// HasChoice returns true if the response has a populated choices[0]
func (r Response) HasChoice() bool {
	v := gjson.GetBytes(r, "choices.0")
	return v.Exists() && v.Type != gjson.Null
}

// Text returns the text of the first choice, for either surface
func (r Response) Text() string {
	choice := gjson.GetBytes(r, "choices.0")
	if text := choice.Get("text"); text.Exists() {
		return text.String()
	}
	return choice.Get("message.content").String()
}
