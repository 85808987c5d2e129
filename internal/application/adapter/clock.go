// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "time"

// Clock provides the current time. Derivation and policy logic never read
// ambient time; callers inject a Clock so behavior stays deterministic
// under test.
type Clock interface {
	// Now returns the current time in UTC.
	Now() time.Time
}
