package countries

import (
	"errors"
	"fmt"
)

// ErrorKind is the normalized failure taxonomy of the data access layer
type ErrorKind string

const (
	// KindFetchFailed indicates the list-all query failed
	KindFetchFailed ErrorKind = "FetchFailed"

	// KindSearchFailed indicates the name substring query failed
	KindSearchFailed ErrorKind = "SearchFailed"

	// KindFilterFailed indicates the region query failed, including not-found
	KindFilterFailed ErrorKind = "FilterFailed"

	// KindFetchDetailFailed indicates a single-country lookup failed
	KindFetchDetailFailed ErrorKind = "FetchDetailFailed"

	// KindCountryNotFound indicates the requested country does not exist
	KindCountryNotFound ErrorKind = "CountryNotFound"
)

var messages = map[ErrorKind]string{
	KindFetchFailed:       "Failed to load countries",
	KindSearchFailed:      "Search failed",
	KindFilterFailed:      "Filter failed",
	KindFetchDetailFailed: "Failed to fetch country",
	KindCountryNotFound:   "Country not found",
}

// Message returns the user-displayable text for a kind
func (k ErrorKind) Message() string {
	if m, ok := messages[k]; ok {
		return m
	}
	return "Something went wrong"
}

// Error wraps a failed request with its kind. Transport errors, bad statuses
// and undecodable bodies all carry the kind of the operation that issued them.
type Error struct {
	Kind   ErrorKind
	Op     string
	Status int // HTTP status, 0 when no response was received
	Err    error
}

// Error implements the error interface
func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("countries %s [%s]: %v", e.Op, e.Kind, e.Err)
	case e.Status != 0:
		return fmt.Sprintf("countries %s [%s]: http status %d", e.Op, e.Kind, e.Status)
	default:
		return fmt.Sprintf("countries %s [%s]", e.Op, e.Kind)
	}
}

// Unwrap supports error unwrapping
func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the stable text shown to the user
func (e *Error) Message() string {
	return e.Kind.Message()
}

// KindOf extracts the error kind from err. The second result is false when err
// did not originate in this package.
func KindOf(err error) (ErrorKind, bool) {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind, true
	}
	return "", false
}

// IsNotFound reports whether err is a CountryNotFound error
func IsNotFound(err error) bool {
	kind, ok := KindOf(err)
	return ok && kind == KindCountryNotFound
}
