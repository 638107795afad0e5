package models

import "net/http"

func sessionWithCookies(names ...string) Session {
	cookies := make([]*http.Cookie, 0, len(names))
	for _, name := range names {
		cookies = append(cookies, &http.Cookie{Name: name, Value: "v"})
	}
	return Session{Cookies: cookies}
}
