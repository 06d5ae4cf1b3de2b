// Package token inspects session tokens the backend happens to issue as
// JWTs. The backend contract treats the token as opaque and the SDK never
// validates it locally; the first request with a stale token is what
// discovers invalidity. Inspection exists purely so a presentation layer
// can display "session expires at ..." without a network round-trip.
package token
