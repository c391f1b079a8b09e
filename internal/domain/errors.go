package domain

import (
	"errors"
	"fmt"
)

// ErrProbeDeadline is returned by a probe which gave up because its deadline elapsed.
var ErrProbeDeadline = errors.New("probe deadline exceeded")

// TransportError means the directory could not be retrieved.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to fetch directory from %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// DecodeError means the directory payload is malformed. Line is 1-based, 0 refers to the whole payload.
type DecodeError struct {
	Line int
	Err  error
}

func (e *DecodeError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("failed to decode directory: %v", e.Err)
	}

	return fmt.Sprintf("failed to decode directory at line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

type UnknownEndpointError struct {
	Name string
}

func (e *UnknownEndpointError) Error() string {
	return fmt.Sprintf("unknown endpoint %q", e.Name)
}

// ConfigurationError means an endpoint address can not be turned into a dialable address.
type ConfigurationError struct {
	Name    string
	Address string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid address %q of endpoint %q: %v", e.Address, e.Name, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
