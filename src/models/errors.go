// errors.go - Error types produced by the startup fetch.
// TransportError is a closed set: the unexported marker method means only the
// variants in this file can satisfy it, so consumers may type-switch over all
// of them without a default arm.

package models

import "fmt"

// TransportError is one of the five ways the startup fetch can fail.
type TransportError interface {
	error
	transportError()
}

// BadURLError reports a request URL that could not be parsed.
type BadURLError struct {
	URL string
}

func (e *BadURLError) Error() string {
	return fmt.Sprintf("bad url %q", e.URL)
}

func (e *BadURLError) transportError() {}

// TimeoutError reports that the fetch did not complete within the client deadline.
type TimeoutError struct{}

func (e *TimeoutError) Error() string {
	return "request timed out"
}

func (e *TimeoutError) transportError() {}

// NetworkError reports a transport-level failure other than a timeout.
type NetworkError struct{}

func (e *NetworkError) Error() string {
	return "network error"
}

func (e *NetworkError) transportError() {}

// BadStatusError reports a non-2xx HTTP response.
type BadStatusError struct {
	Code int
}

func (e *BadStatusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.Code)
}

func (e *BadStatusError) transportError() {}

// BadBodyError reports a response body that could not be read or decoded.
type BadBodyError struct {
	Message string
}

func (e *BadBodyError) Error() string {
	return e.Message
}

func (e *BadBodyError) transportError() {}

// DecodeError identifies the element and field that made a response body
// undecodable. Index is -1 when the top-level value itself is malformed.
type DecodeError struct {
	Index   int
	Field   string
	Message string
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return e.Message
	}
	if e.Field == "" {
		return fmt.Sprintf("element %d: %s", e.Index, e.Message)
	}
	return fmt.Sprintf("element %d: field %q: %s", e.Index, e.Field, e.Message)
}
