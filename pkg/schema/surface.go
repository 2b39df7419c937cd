package schema

import (
	"fmt"
	"strings"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Surface is the request shape a model is probed against
type Surface int

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	_ Surface = iota
	Completion
	ChatCompletion
)

// Surfaces in the order they are probed by default
var Surfaces = []Surface{Completion, ChatCompletion}

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ParseSurface returns the surface for a name, which is matched case-insensitively.
// Both "chat_completion" and "chat-completion" are accepted.
func ParseSurface(name string) (Surface, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_") {
	case "completion":
		return Completion, nil
	case "chat_completion":
		return ChatCompletion, nil
	}
	return 0, fmt.Errorf("unsupported surface %q", name)
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (s Surface) String() string {
	switch s {
	case Completion:
		return "completion"
	case ChatCompletion:
		return "chat_completion"
	}
	return fmt.Sprintf("surface(%d)", int(s))
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Valid returns true if the surface is one of the known surfaces
func (s Surface) Valid() bool {
	return s == Completion || s == ChatCompletion
}

func (s Surface) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("unsupported surface %d", int(s))
	}
	return []byte(s.String()), nil
}

func (s *Surface) UnmarshalText(text []byte) error {
	v, err := ParseSurface(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
