package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEncode is a local serialization failure. Well-formed orders never hit it.
	ErrEncode = errors.New("encode order")
	// ErrTransport covers connectivity failures where no response body arrived.
	ErrTransport = errors.New("transport failure")
	// ErrDecode means a payload could not be read back as an Order.
	ErrDecode = errors.New("decode order")

	ErrRuleExecutionFailed = errors.New("rule execution failed")
	ErrRulePackNotFound    = errors.New("rule pack not found")
)

// SubmissionError is what a failed checkout returns. Kind is one of
// ErrEncode, ErrTransport or ErrDecode; Err is the underlying cause.
type SubmissionError struct {
	Kind error
	Err  error
}

func NewSubmissionError(kind, err error) *SubmissionError {
	return &SubmissionError{Kind: kind, Err: err}
}

func (e *SubmissionError) Error() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *SubmissionError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

// Cause returns the underlying error text, the part a user gets to see.
func (e *SubmissionError) Cause() string {
	if e.Err == nil {
		return e.Kind.Error()
	}
	return e.Err.Error()
}
