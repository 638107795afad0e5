package crypto

import "github.com/MKhiriev/go-steam-guard/models"

// GuardService owns the Steam Guard key material math. It knows nothing
// about accounts, files, or the network; both methods are pure functions of
// their inputs.
//
// Scheme:
//
//	CodeResult = GenerateCode(sharedSecret, t)          (login codes)
//	k          = SignConfirmation(identitySecret, t, tag) (confirmation auth)
type GuardService interface {
	// GenerateCode derives the 5-character login code for the 30-second
	// window containing unixTime, together with the fraction of the window
	// still remaining. sharedSecret is the base64-encoded shared secret from
	// the account file. Returns [ErrInvalidSecret] if the secret is not
	// valid base64.
	GenerateCode(sharedSecret string, unixTime int64) (models.CodeResult, error)

	// SignConfirmation computes the confirmation-request hash: HMAC-SHA1
	// over the 8-byte big-endian unixTime followed by the UTF-8 bytes of
	// tag, keyed with the decoded identity secret, base64-encoded without
	// truncation. Returns [ErrInvalidSecret] if the secret is not valid
	// base64.
	SignConfirmation(identitySecret string, unixTime int64, tag string) (string, error)
}
