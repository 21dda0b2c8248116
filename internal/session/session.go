// Package session identifies the owner of per-shopper state. A session is
// either a signed-in user or an anonymous device; the two never share
// storage keys.
package session

import "strconv"

// Session identifies the owner of cart and wishlist state. The key is the
// storage owner key; Authenticated selects the remote store over the
// per-device one.
type Session struct {
	Key           string
	Authenticated bool
}

// User is the session of a signed-in user
func User(userID uint) Session {
	return Session{Key: "user:" + strconv.FormatUint(uint64(userID), 10), Authenticated: true}
}

// Device is the session of an anonymous device
func Device(deviceID string) Session {
	return Session{Key: "device:" + deviceID}
}
