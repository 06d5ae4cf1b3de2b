// Package transport implements the biztrack SDK's HTTP request pipeline:
// JSON requests against a fixed base URL with two interception points. On
// the way out, the current bearer token is read from a TokenSource at each
// dispatch and attached to the Authorization header. On the way in, a 401
// response invokes the single registered unauthorized handler before the
// error is returned to the caller.
//
// The pipeline never retries and never swallows a failure: every call site
// receives either the decoded response, an *HTTPError carrying the status
// and body, or a *NetworkError when no response arrived at all.
package transport
