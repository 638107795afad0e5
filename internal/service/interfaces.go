// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service contains the client-side domain logic built on top of the
// crypto, store, and adapter packages: the confirmation workflow (list,
// accept, decline) and the periodic login-code refresh job.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-steam-guard/models"
)

// ConfirmationService owns the in-memory confirmation state for one client
// session: the current list, the loading flag, and the latest human-readable
// status message (overwritten on every operation, not a log).
//
// At most one List/Accept/Decline call may be in flight at a time; a second
// call while one is running fails with ErrOperationInFlight. Accessors are
// safe to call concurrently with an in-flight operation.
type ConfirmationService interface {
	// List fetches the pending confirmations for account using the supplied
	// session and replaces the published list on success. On any failure the
	// existing list is preserved and only the status message changes.
	List(ctx context.Context, account models.Account, session models.Session) error

	// Accept approves one pending confirmation. On success the confirmation
	// is removed from the published list immediately and a reconciling List
	// is scheduled after a short delay.
	Accept(ctx context.Context, confirmation models.Confirmation, account models.Account, session models.Session) error

	// Decline cancels one pending confirmation. Same state transitions as
	// Accept, with the opposite operation on the wire.
	Decline(ctx context.Context, confirmation models.Confirmation, account models.Account, session models.Session) error

	// Confirmations returns a copy of the current confirmation list.
	Confirmations() []models.Confirmation

	// Loading reports whether an operation is currently in flight.
	Loading() bool

	// Status returns the latest status message.
	Status() string
}

// CodeRefreshJob periodically regenerates the login code for one account and
// delivers each result to a callback. The job is idle until Start is called.
type CodeRefreshJob interface {
	// Start stops any previously running job, then launches a background
	// goroutine that regenerates account's code every interval and passes the
	// result to deliver. The first code is delivered immediately. The
	// goroutine exits when ctx is cancelled or Stop is called.
	Start(ctx context.Context, account models.Account, interval time.Duration, deliver func(models.CodeResult))

	// Stop cancels the background goroutine and blocks until it has exited.
	// Safe to call when the job is not running.
	Stop()
}
