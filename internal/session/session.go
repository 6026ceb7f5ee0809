// Package session exposes the externally owned login state as a read-only
// capability.
package session

import "strings"

// Provider reports the current credential token. ok is false when nobody is
// logged in.
type Provider interface {
	CurrentToken() (token string, ok bool)
}

// LoggedIn reports whether p currently holds a non-empty token.
func LoggedIn(p Provider) bool {
	if p == nil {
		return false
	}
	_, ok := p.CurrentToken()
	return ok
}

// Static is a Provider with a fixed token. The zero value is logged out.
type Static string

func (s Static) CurrentToken() (string, bool) {
	t := strings.TrimSpace(string(s))
	return t, t != ""
}
