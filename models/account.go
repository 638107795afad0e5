package models

import (
	"encoding/json"
	"errors"
	"strconv"
)

// ErrAccountFileInvalid is returned by [Account.UnmarshalJSON] when a candidate
// account file lacks one of the mandatory fields (shared_secret, account_name).
var ErrAccountFileInvalid = errors.New("account file is missing mandatory fields")

// Account represents one registered Steam Guard credential set, typically
// imported from a .maFile produced by a desktop authenticator.
// Two accounts with the same AccountName are the same logical account.
type Account struct {
	// SharedSecret is the base64-encoded key used to derive the rotating
	// login code. Mandatory.
	SharedSecret string `json:"shared_secret"`

	// IdentitySecret is the base64-encoded key used to sign
	// mobile-confirmation requests. Optional; required only for
	// confirmation operations.
	IdentitySecret string `json:"identity_secret,omitempty"`

	// AccountName is the display and lookup key of the account.
	// Mandatory; uniqueness is enforced by the repository.
	AccountName string `json:"account_name"`

	// DeviceID identifies the device the confirmations are scoped to,
	// in "android:<uuid>" form. Optional; required only for confirmation
	// operations.
	DeviceID string `json:"device_id,omitempty"`

	// SteamID is the numeric account identifier carried as a string.
	// Optional; required only for confirmation operations. Populated from
	// the file's Session.SteamID, top-level numeric steamid, or top-level
	// string steamid, in that priority order.
	SteamID string `json:"steamid,omitempty"`

	// SourceFilename is the name of the backing file inside the accounts
	// directory. Empty for accounts bundled at build time, which have no
	// backing file and cannot be deleted from disk.
	SourceFilename string `json:"-"`
}

// accountFile mirrors the on-disk maFile layout for decoding.
type accountFile struct {
	SharedSecret   *string         `json:"shared_secret"`
	IdentitySecret string          `json:"identity_secret"`
	AccountName    *string         `json:"account_name"`
	DeviceID       string          `json:"device_id"`
	Session        *accountSession `json:"Session"`
	SteamID        json.RawMessage `json:"steamid"`
}

type accountSession struct {
	SteamID *uint64 `json:"SteamID"`
}

// UnmarshalJSON decodes an account file. shared_secret and account_name are
// mandatory; a file missing either fails with [ErrAccountFileInvalid].
// The steamid is resolved from Session.SteamID (number), then a top-level
// numeric steamid, then a top-level string steamid; first success wins.
func (a *Account) UnmarshalJSON(data []byte) error {
	var file accountFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}

	if file.SharedSecret == nil || file.AccountName == nil {
		return ErrAccountFileInvalid
	}

	a.SharedSecret = *file.SharedSecret
	a.IdentitySecret = file.IdentitySecret
	a.AccountName = *file.AccountName
	a.DeviceID = file.DeviceID
	a.SteamID = resolveSteamID(file)

	return nil
}

func resolveSteamID(file accountFile) string {
	if file.Session != nil && file.Session.SteamID != nil {
		return strconv.FormatUint(*file.Session.SteamID, 10)
	}

	if len(file.SteamID) == 0 {
		return ""
	}

	var asNumber uint64
	if err := json.Unmarshal(file.SteamID, &asNumber); err == nil {
		return strconv.FormatUint(asNumber, 10)
	}

	var asString string
	if err := json.Unmarshal(file.SteamID, &asString); err == nil {
		return asString
	}

	return ""
}

// Bundled reports whether the account was loaded from the read-only bundled
// set rather than from the writable accounts directory.
func (a Account) Bundled() bool {
	return a.SourceFilename == ""
}
