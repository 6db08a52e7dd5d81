// Copyright 2026 The QLLNV Authors
// SPDX-License-Identifier: Apache-2.0

package hrapi

import (
	"errors"
	"fmt"
)

// TransportError means the request never produced a usable response:
// connection refused, DNS failure, timeout, or an unreadable body. The
// screen that triggered it stays interactive with whatever data it
// already has.
type TransportError struct {
	// Op names the operation for diagnostics ("login", "profile", ...).
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ServerError means the backend answered and rejected the request:
// either a success:false envelope or a non-2xx status without a valid
// envelope. Message carries the backend's reason verbatim so the UI can
// show exactly what the server said.
type ServerError struct {
	Op      string
	Status  int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

// ValidationError is a client-side precondition failure. It is raised
// before any network call and never reaches the transport.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError with fmt.Sprintf semantics.
func Validationf(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var validation *ValidationError
	return errors.As(err, &validation)
}

// IsTransport reports whether err is (or wraps) a TransportError.
func IsTransport(err error) bool {
	var transport *TransportError
	return errors.As(err, &transport)
}

// IsServer reports whether err is (or wraps) a ServerError.
func IsServer(err error) bool {
	var server *ServerError
	return errors.As(err, &server)
}
