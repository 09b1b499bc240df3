package interview

import (
	"errors"
	"fmt"
	"strings"
)

type Kind string

const (
	KindMissingInput           Kind = "MISSING_INPUT"
	KindInvalidAssessmentInput Kind = "INVALID_ASSESSMENT_INPUT"
	KindConfiguration          Kind = "CONFIGURATION_ERROR"
	KindMalformedOutput        Kind = "MALFORMED_MODEL_OUTPUT"
	KindUpstream               Kind = "UPSTREAM_FAILURE"
)

// Error carries the failure kind of an operation so the HTTP layer can map
// it to a status code without inspecting messages.
type Error struct {
	Kind   Kind
	Op     string
	Fields []string // missing request fields, for input errors
	Reason string
	Err    error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(strings.ToLower(strings.ReplaceAll(string(e.Kind), "_", " ")))
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	}
	if len(e.Fields) > 0 {
		fmt.Fprintf(&b, " [%s]", strings.Join(e.Fields, ", "))
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind of err, or "" when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func malformed(op, reason string, err error) *Error {
	return &Error{Kind: KindMalformedOutput, Op: op, Reason: reason, Err: err}
}
