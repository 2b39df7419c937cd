package schema

import (
	"encoding/json"
	"fmt"
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// OutcomeKind tags the outcome of a probe
type OutcomeKind int

// Outcome is the result of a single probe. Exactly one of the kinds is set:
// Reason is only populated for Failed, and Err only for Errored.
type Outcome struct {
	Kind   OutcomeKind
	Reason string
	Err    error
}

// ProbeTask is a scheduled probe of one model on one surface
type ProbeTask struct {
	Descriptor  ModelDescriptor
	Surface     Surface
	Prompt      string
	LaunchDelay time.Duration
}

// ProbeResult is the outcome of one ProbeTask
type ProbeResult struct {
	Descriptor ModelDescriptor
	Outcome    Outcome
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	_ OutcomeKind = iota
	Working
	Failed
	Errored
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewWorking returns a Working outcome
func NewWorking() Outcome {
	return Outcome{Kind: Working}
}

// NewFailed returns a Failed outcome with an API-level reason
func NewFailed(reason string) Outcome {
	return Outcome{Kind: Failed, Reason: reason}
}

// NewErrored returns an Errored outcome for a request which did not complete
func NewErrored(err error) Outcome {
	if err == nil {
		err = fmt.Errorf("unknown error")
	}
	return Outcome{Kind: Errored, Err: err}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (k OutcomeKind) String() string {
	switch k {
	case Working:
		return "working"
	case Failed:
		return "failed"
	case Errored:
		return "errored"
	}
	return fmt.Sprintf("outcome(%d)", int(k))
}

func (k OutcomeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (o Outcome) String() string {
	switch o.Kind {
	case Failed:
		return fmt.Sprintf("%v: %s", o.Kind, o.Reason)
	case Errored:
		return fmt.Sprintf("%v: %v", o.Kind, o.Err)
	}
	return o.Kind.String()
}

func (o Outcome) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Kind   OutcomeKind `json:"outcome"`
		Reason string      `json:"reason,omitempty"`
	}{
		Kind:   o.Kind,
		Reason: o.Detail(),
	})
}

func (r ProbeResult) String() string {
	return fmt.Sprintf("%s: %v", r.Descriptor.ID, r.Outcome)
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// IsWorking returns true if the outcome is Working
func (o Outcome) IsWorking() bool {
	return o.Kind == Working
}

// Detail returns the failure reason or the error text, or an empty string
// for a Working outcome
func (o Outcome) Detail() string {
	switch o.Kind {
	case Failed:
		return o.Reason
	case Errored:
		if o.Err != nil {
			return o.Err.Error()
		}
	}
	return ""
}
