// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for the platform's
// mobile-confirmation endpoints.
//
// The primary abstraction is [ConfirmationAdapter], which decouples the
// service layer from the underlying protocol. The package ships an HTTP
// implementation on resty ([NewConfirmationHTTPAdapter]); both endpoints are
// plain GETs authenticated by a signed query string plus the captured session
// cookies, forwarded verbatim.
//
// Error values defined in errors.go are mapped from transport and decoding
// failures so that callers can use [errors.Is] for transport-agnostic error
// handling.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-steam-guard/models"
)

// Wire values of the "op" parameter accepted by the action endpoint.
const (
	OperationAllow  = "allow"
	OperationCancel = "cancel"
)

// ConfirmationAdapter defines transport-agnostic communication with the
// mobile-confirmation endpoints. Implementations are responsible for query
// assembly, cookie forwarding, and mapping transport-level failures to the
// sentinel values defined in this package. Server-reported outcomes
// (success=false) are returned in the decoded body, not as errors; the
// service layer decides how to surface them.
type ConfirmationAdapter interface {
	// GetList fetches the pending-confirmation list with the signed query
	// and the session's cookies. A single attempt, no retries. Returns the
	// decoded body, or an error wrapping [ErrTransport],
	// [ErrUnexpectedStatus], or [ErrMalformedResponse].
	GetList(ctx context.Context, query models.ConfirmationQuery, session models.Session) (models.ConfirmationListResponse, error)

	// Act submits an allow or cancel for one confirmation, identified by its
	// id ("cid") and correlation key ("ck"), using the same signed query
	// scheme as GetList. op must be [OperationAllow] or [OperationCancel].
	Act(ctx context.Context, op string, confirmation models.Confirmation, query models.ConfirmationQuery, session models.Session) (models.ConfirmationActionResponse, error)
}
