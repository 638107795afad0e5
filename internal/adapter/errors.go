package adapter

import "errors"

var (
	// ErrTransport is returned when the request never produced a usable
	// response (connection refused, timeout, DNS failure).
	ErrTransport = errors.New("transport failure")

	// ErrUnexpectedStatus is returned when the endpoint answered with a
	// non-2xx status code.
	ErrUnexpectedStatus = errors.New("unexpected http status")

	// ErrMalformedResponse is returned when a 2xx response body cannot be
	// decoded into the expected shape.
	ErrMalformedResponse = errors.New("malformed response body")
)
