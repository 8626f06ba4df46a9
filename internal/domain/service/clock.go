// Package service declares the ports the usecases depend on for work that
// lives outside the domain: hashing, tokens, storage, events and time.
package service

import "time"

// Clock supplies the current time so membership expiry can be tested at exact boundaries.
type Clock interface {
	Now() time.Time
}
