package tui

import "sync/atomic"

var sessionUsername atomic.Value // string

func setSessionUsername(username string) {
	sessionUsername.Store(username)
}

func getSessionUsername() string {
	v, ok := sessionUsername.Load().(string)
	if !ok {
		return ""
	}
	return v
}

func clearSession() {
	sessionUsername.Store("")
}
