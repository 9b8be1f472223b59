package parser

import (
	"errors"
	"fmt"
)

type Reason string

const (
	ReasonMalformedFieldCount Reason = "MalformedFieldCount"
	ReasonInvalidAddress      Reason = "InvalidAddress"
	ReasonInvalidPort         Reason = "InvalidPort"
	ReasonEmptyCredential     Reason = "EmptyCredential"
)

var (
	ErrMalformedFieldCount = errors.New("expected ADDRESS:PORT:USERNAME:PASSWORD")
	ErrInvalidAddress      = errors.New("invalid ip address")
	ErrInvalidPort         = errors.New("invalid port number")
	ErrEmptyCredential     = errors.New("missing username or password")
)

var sentinels = map[Reason]error{
	ReasonMalformedFieldCount: ErrMalformedFieldCount,
	ReasonInvalidAddress:      ErrInvalidAddress,
	ReasonInvalidPort:         ErrInvalidPort,
	ReasonEmptyCredential:     ErrEmptyCredential,
}

// ParseError rejects a single line. It never aborts a batch.
type ParseError struct {
	Reason Reason
	Line   string

	// Value is the offending field, empty when the whole line is at fault.
	Value string
	Cause error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := fmt.Sprintf("%s: %v", e.Reason, sentinels[e.Reason])
	if e.Value != "" {
		msg += fmt.Sprintf(" %q", e.Value)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *ParseError) Unwrap() error { return e.Cause }

func (e *ParseError) Is(target error) bool {
	return target != nil && sentinels[e.Reason] == target
}
