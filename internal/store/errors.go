package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrReadingAccountsDir is returned when the writable accounts directory
	// cannot be listed at all. Individual unreadable or undecodable files
	// inside the directory are skipped, not surfaced.
	ErrReadingAccountsDir = errors.New("error reading accounts directory")

	// ErrReadingSourceFile is returned by Import when the externally chosen
	// source file cannot be read (permissions, missing file).
	ErrReadingSourceFile = errors.New("error reading source account file")

	// ErrWritingAccountFile is returned by Import when the copy into the
	// writable accounts directory fails (permissions, disk full).
	ErrWritingAccountFile = errors.New("error writing account file")

	// ErrDeletingAccountFile is returned by Delete when the backing file
	// exists but cannot be removed.
	ErrDeletingAccountFile = errors.New("error deleting account file")

	// ErrAccountNotFound is returned by Import when the copied file does not
	// decode into an account (so the freshly loaded collection has no entry
	// backed by it), and by Delete when the account is not present in the
	// in-memory collection.
	ErrAccountNotFound = errors.New("account was not found")
)
