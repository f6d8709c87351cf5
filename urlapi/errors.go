/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package urlapi

import (
	"errors"
	"fmt"
)

// Errors reported by the parser and the accessor API. Parse failures are
// returned wrapped in a *ParseError; use errors.Is to test for a category.
var (
	ErrBadHandle         = errors.New("invalid URL handle")
	ErrMalformedInput    = errors.New("malformed input")
	ErrBadPortNumber     = errors.New("bad port number")
	ErrUnsupportedScheme = errors.New("unsupported scheme")
	ErrURLDecode         = errors.New("URL decode error")
	ErrUserNotAllowed    = errors.New("user not allowed")
	ErrUnknownPart       = errors.New("unknown URL part")
)

// Missing-part errors, one per part, returned by Get for an unset part.
var (
	ErrNoScheme   = errors.New("no scheme")
	ErrNoUser     = errors.New("no user")
	ErrNoPassword = errors.New("no password")
	ErrNoOptions  = errors.New("no options")
	ErrNoHost     = errors.New("no host")
	ErrNoPort     = errors.New("no port")
	ErrNoPath     = errors.New("no path")
	ErrNoQuery    = errors.New("no query")
	ErrNoFragment = errors.New("no fragment")
)

// ParseError is the error type returned when a URL string cannot be turned
// into a Handle. It carries a descriptive message and wraps the category
// error, so errors.Is(err, ErrMalformedInput) and friends work on it.
type ParseError struct {
	Message string
	Err     error
}

// Error returns the string representation of the parse error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("URL parse error: %s", e.Message)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError creates a new ParseError wrapping err.
// It returns nil if the input error is nil.
func newParseError(err error) *ParseError {
	if err == nil {
		return nil
	}
	return &ParseError{Message: err.Error(), Err: err}
}

// kindError attaches the offending byte or text to a category error.
type kindError struct {
	kind    error
	char    byte
	details string
}

// Error formats the category message with the character or details, if any.
func (e *kindError) Error() string {
	msg := e.kind.Error()
	if e.char != 0 {
		msg = fmt.Sprintf("%s '%c'", msg, e.char)
	} else if e.details != "" {
		msg = fmt.Sprintf("%s '%s'", msg, e.details)
	}
	return msg
}

// Unwrap returns the category error.
func (e *kindError) Unwrap() error {
	return e.kind
}
