package models

import "net/http"

// loginMarkerCookie is the cookie the Steam web login flow sets once the
// browser session is authenticated.
const loginMarkerCookie = "steamLoginSecure"

// Session is an externally captured authenticated browser session with the
// platform, represented as an opaque cookie set. The core only reads the
// cookies to build request headers; it never mutates or persists them.
type Session struct {
	// Cookies is the full cookie set captured by the login flow,
	// forwarded verbatim on every confirmation request.
	Cookies []*http.Cookie
}

// Authenticated reports whether the cookie set contains the authenticated
// session marker that the login flow waits for.
func (s Session) Authenticated() bool {
	for _, c := range s.Cookies {
		if c != nil && c.Name == loginMarkerCookie {
			return true
		}
	}
	return false
}
