package crypto

import "errors"

// ErrInvalidSecret is returned when a shared or identity secret cannot be
// base64-decoded. Callers should use [errors.Is] to match against it.
var ErrInvalidSecret = errors.New("secret is not valid base64")
