// Package biztrack is a Go client SDK for the biztrack small-business
// invoicing backend: authentication, clients, items, estimates, invoices,
// payments, expenses, company settings, and the dashboard summary.
//
// The package centers on the session lifecycle. A [Manager] owns the
// in-memory session (token, user profile, loading flag) and mirrors it into
// a [credstore.Store] so sessions survive process restarts. Every request
// goes through the shared transport core, which reads the token at dispatch
// time and attaches it as a bearer credential; a 401 from any endpoint
// flows back into the manager and ends the session, exactly as an explicit
// logout would.
//
// # Architecture boundaries
//
// biztrack is the public surface: [Builder], [Config], [Client], the
// resource services, and value types. Credential persistence lives in
// package credstore, the request pipeline in package transport, and token
// metadata display in package token. The backend is an external
// collaborator; no business calculation happens client-side.
//
// # Construction
//
//	client, err := biztrack.New().
//		WithConfig(cfg).
//		WithCredentialStore(store).
//		Build()
//
// Build wires the manager's session-expiry path into the transport's
// unauthorized slot before returning, so no request can observe a missing
// handler.
//
// # Concurrency
//
// All Client and Manager methods are safe for concurrent use after Build.
// Concurrent in-flight requests each read the token at their own dispatch
// time; a logout mid-burst means later dispatches go out unauthenticated.
// The session's in-memory state is the source of truth for what a
// presentation layer renders; persisted state is best-effort mirroring.
package biztrack
