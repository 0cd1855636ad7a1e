package alignment

import "sync/atomic"

// Guard is the staleness protocol for slow asynchronous ranking work. Each
// computation begins by taking a token, does its (possibly slow) fetch, and
// checks the token immediately before writing any result. If a newer
// computation has begun in the meantime the token reads stale and the result
// must be discarded. The in-flight network work itself is never cancelled;
// only its write is suppressed.
type Guard struct {
	version atomic.Uint64
}

// Token identifies one computation against the shared counter
type Token struct {
	guard   *Guard
	version uint64
}

// Begin advances the shared counter and returns this computation's token,
// which supersedes every token issued before it.
func (g *Guard) Begin() Token {
	return Token{guard: g, version: g.version.Add(1)}
}

// Invalidate supersedes all outstanding tokens without starting a new
// computation. Used by the full-state reset on a new address search.
func (g *Guard) Invalidate() {
	g.version.Add(1)
}

// Stale reports whether a newer computation (or a reset) has superseded this
// one. A stale computation performs no further state mutation; the discard is
// a deliberate no-op, not a failure.
func (t Token) Stale() bool {
	return t.guard.version.Load() != t.version
}
