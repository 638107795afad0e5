package service

import "errors"

var (
	// ErrMissingCredential is returned when the account lacks a field the
	// requested operation needs. Wrapped with the field name.
	ErrMissingCredential = errors.New("account is missing a required credential")

	// ErrSessionNotAuthenticated is returned when the supplied session does
	// not carry the authenticated-session marker cookie.
	ErrSessionNotAuthenticated = errors.New("session is not authenticated")

	// ErrOperationInFlight is returned when a listing or action call arrives
	// while another one is still running.
	ErrOperationInFlight = errors.New("another confirmation operation is in flight")

	// ErrServerRejected is returned when the endpoint answered with a
	// well-formed body reporting success=false.
	ErrServerRejected = errors.New("server rejected the operation")
)
