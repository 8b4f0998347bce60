// Package uid provides opaque unique identifiers for stored records.
package uid

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// UID is an opaque record identifier. It is an immutable value type:
// equality and map keying work by string value, and any string is a
// valid UID (Parse performs no format validation).
type UID string

// randomBytes is the entropy drawn for each generated UID.
const randomBytes = 12

// New generates a UID from 12 cryptographically random bytes followed
// by the current UTC timestamp. The random prefix makes collisions
// overwhelmingly unlikely across process lifetimes; the timestamp
// suffix keeps identifiers time-ordered within one.
func New() UID {
	buf := make([]byte, randomBytes)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand does not fail on supported platforms.
		panic("uid: entropy source unavailable: " + err.Error())
	}
	return UID(hex.EncodeToString(buf) + time.Now().UTC().Format(time.RFC3339Nano))
}

// Parse converts a string into a UID. Parse(u.String()) == u holds for
// every UID.
func Parse(s string) UID {
	return UID(s)
}

// String returns the UID's string value.
func (u UID) String() string {
	return string(u)
}

// IsZero reports whether the UID is empty.
func (u UID) IsZero() bool {
	return u == ""
}
